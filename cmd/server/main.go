package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	emailPkg "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/email"
	web "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/http"
	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/http/perf"
	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage"
	classStore "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage/class"
	scheduleStore "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage/schedule"
	trainerStore "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage/trainer"
	"github.com/FurkanArikk/fitness-center-sub002/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("FITNESS_DB_PATH", "fitness.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	trStore := trainerStore.NewSQLiteStore(timedDB)
	clStore := classStore.NewSQLiteStore(timedDB)
	scStore := scheduleStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		TrainerStore:  trStore,
		ClassStore:    clStore,
		ScheduleStore: scStore,
	}

	// Seed synthetic data for development only
	if os.Getenv("FITNESS_ENV") != "production" {
		synDeps := orchestrators.SyntheticSeedDeps{
			TrainerStore:  trStore,
			ClassStore:    clStore,
			ScheduleStore: scStore,
		}
		if err := orchestrators.ExecuteSeedSynthetic(context.Background(), synDeps); err != nil {
			log.Fatalf("failed to seed synthetic data: %v", err)
		}
		log.Println("Synthetic seed data loaded (dev mode)")
	}

	// Configure email sender for the weekly activity digest
	resendKey := os.Getenv("FITNESS_RESEND_KEY")
	emailFrom := envOrDefault("FITNESS_RESEND_FROM", "Fitness Center <noreply@fitness-center.example>")
	digestTo := splitAddresses(os.Getenv("FITNESS_DIGEST_TO"))
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, digestTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, digestTo)
		if os.Getenv("FITNESS_ENV") == "production" {
			log.Println("WARNING: FITNESS_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set FITNESS_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + perf endpoint)
	mux := web.NewMux("static", stores, collector)

	// Start server
	addr := envOrDefault("FITNESS_ADDR", ":8080")
	log.Printf("Fitness Center %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("FITNESS_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitAddresses parses a comma-separated address list from the
// environment.
func splitAddresses(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
