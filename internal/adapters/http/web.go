package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/email"
	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/http/middleware"
	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/http/perf"
	classStore "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage/class"
	scheduleStore "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage/schedule"
	trainerStore "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage/trainer"
)

// Stores holds all storage dependencies.
type Stores struct {
	TrainerStore  trainerStore.Store
	ClassStore    classStore.Store
	ScheduleStore scheduleStore.Store
}

// loadCSRFKey reads the CSRF secret from FITNESS_CSRF_KEY (hex-encoded,
// 32 bytes). In production the key MUST be set. In development a random
// key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FITNESS_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FITNESS_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FITNESS_ENV") == "production" {
		log.Fatal("FITNESS_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FITNESS_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// envInt reads a positive integer from the environment, 0 if unset or
// malformed.
func envInt(key string) int {
	n, _ := strconv.Atoi(os.Getenv(key))
	if n < 0 {
		return 0
	}
	return n
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Dashboard defaults, overridable via FITNESS_TOP_N and
// FITNESS_PAGE_SIZE. Zero means "use the built-in default".
var defaultTopN int
var defaultPageSize int

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var digestRecipients []string

// SetEmailSender sets the global email sender and digest configuration.
func SetEmailSender(sender email.Sender, from string, digestTo []string) {
	emailSender = sender
	emailFromAddress = from
	digestRecipients = digestTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	defaultTopN = envInt("FITNESS_TOP_N")
	defaultPageSize = envInt("FITNESS_PAGE_SIZE")

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
