package web

import (
	"net/http"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
)

// registerRoutes wires the JSON API onto the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", handleHealthz)

	mux.HandleFunc("/api/trainers", handleRosterList(roster.KindTrainer))
	mux.HandleFunc("/api/classes", handleRosterList(roster.KindClass))

	mux.HandleFunc("/api/analytics/trainer-activity", handleActivityMatrix(roster.KindTrainer))
	mux.HandleFunc("/api/analytics/class-activity", handleActivityMatrix(roster.KindClass))
	mux.HandleFunc("/api/analytics/top-trainers", handleTopTrainers)

	mux.HandleFunc("/api/dashboard", handleDashboard)

	mux.HandleFunc("/api/schedules", handleSchedules)
	mux.HandleFunc("/api/schedules/", handleScheduleByID)
	mux.HandleFunc("/api/import/schedules", handleImportSchedules)

	mux.HandleFunc("/api/admin/digest", handleSendDigest)
	mux.HandleFunc("/api/admin/perf", handleAdminPerf)
}
