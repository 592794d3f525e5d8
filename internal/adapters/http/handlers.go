package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FurkanArikk/fitness-center-sub002/internal/application/listutil"
	"github.com/FurkanArikk/fitness-center-sub002/internal/application/orchestrators"
	"github.com/FurkanArikk/fitness-center-sub002/internal/application/projections"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
	scheduleDomain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to
// the client. This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// rosterPage is the JSON shape of a filtered, paginated roster listing.
type rosterPage struct {
	Items  []roster.Entry    `json:"items"`
	Page   listutil.PageInfo `json:"page"`
	Facets []string          `json:"facets"`
}

// handleRosterList serves GET /api/trainers and GET /api/classes.
// Query params: q (search term), facet, page, page_size.
// Changing the filter on the client resets the page; the server simply
// clamps whatever page it is given.
func handleRosterList(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		entries, err := projections.RosterEntries(r.Context(), kind, dashboardDeps())
		if err != nil {
			internalError(w, err)
			return
		}

		q := r.URL.Query()
		filtered := listutil.FilterRoster(entries, listutil.ParseFilterState(q))
		params := listutil.ParsePageParams(q)
		if q.Get("page_size") == "" && defaultPageSize > 0 {
			params.PageSize = defaultPageSize
		}
		pageInfo := listutil.NewPageInfo(params.Page, params.PageSize, len(filtered))
		items := listutil.Slice(filtered, pageInfo.Page, pageInfo.PageSize)
		if items == nil {
			items = []roster.Entry{}
		}

		writeJSON(w, http.StatusOK, rosterPage{
			Items:  items,
			Page:   pageInfo,
			Facets: listutil.FacetOptions(entries),
		})
	}
}

// handleActivityMatrix serves GET /api/analytics/trainer-activity and
// GET /api/analytics/class-activity.
// Query params: mode (weekly|daily, default weekly), date (YYYY-MM-DD,
// daily mode only).
func handleActivityMatrix(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = projections.ModeWeekly
		}
		if mode != projections.ModeWeekly && mode != projections.ModeDaily {
			http.Error(w, "mode must be weekly or daily", http.StatusBadRequest)
			return
		}

		result, err := projections.QueryGetActivityMatrix(r.Context(), projections.GetActivityMatrixQuery{
			Kind: kind,
			Mode: mode,
			Date: r.URL.Query().Get("date"),
			Now:  timeNow(),
		}, projections.GetActivityMatrixDeps{
			TrainerStore:  stores.TrainerStore,
			ClassStore:    stores.ClassStore,
			ScheduleStore: stores.ScheduleStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// handleTopTrainers serves GET /api/analytics/top-trainers?n=5.
func handleTopTrainers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	if n <= 0 {
		n = defaultTopN
	}
	ranked, err := projections.QueryGetTopTrainers(r.Context(), projections.GetTopTrainersQuery{N: n}, projections.GetTopTrainersDeps{
		TrainerStore:  stores.TrainerStore,
		ScheduleStore: stores.ScheduleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if ranked == nil {
		ranked = []projections.RankedEntry{}
	}
	writeJSON(w, http.StatusOK, ranked)
}

// handleDashboard serves GET /api/dashboard.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	n, _ := strconv.Atoi(r.URL.Query().Get("top_n"))
	if n <= 0 {
		n = defaultTopN
	}
	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{TopN: n, Now: timeNow()}, dashboardDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func dashboardDeps() projections.GetDashboardDeps {
	return projections.GetDashboardDeps{
		TrainerStore:  stores.TrainerStore,
		ClassStore:    stores.ClassStore,
		ScheduleStore: stores.ScheduleStore,
	}
}

// scheduleInput is the JSON shape for creating or updating a schedule
// record.
type scheduleInput struct {
	EntityID        int    `json:"entity_id"`
	EntityType      string `json:"entity_type"`
	Day             string `json:"day"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
}

func (in scheduleInput) toRecord(id string) scheduleDomain.Record {
	status := strings.ToLower(in.Status)
	if status == "" {
		status = scheduleDomain.StatusActive
	}
	return scheduleDomain.Record{
		ID:              id,
		EntityID:        in.EntityID,
		EntityType:      strings.ToLower(in.EntityType),
		Day:             in.Day,
		Date:            in.Date,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		DurationMinutes: in.DurationMinutes,
		Status:          status,
	}
}

// handleSchedules serves /api/schedules.
// GET lists records, optionally filtered by ?day= or ?status=. POST
// creates one.
func handleSchedules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		var records []scheduleDomain.Record
		var err error
		q := r.URL.Query()
		switch {
		case q.Get("day") != "":
			records, err = stores.ScheduleStore.ListByDay(r.Context(), q.Get("day"))
		case q.Get("status") != "":
			records, err = stores.ScheduleStore.ListByStatus(r.Context(), strings.ToLower(q.Get("status")))
		default:
			records, err = stores.ScheduleStore.List(r.Context())
		}
		if err != nil {
			internalError(w, err)
			return
		}
		if records == nil {
			records = []scheduleDomain.Record{}
		}
		writeJSON(w, http.StatusOK, records)

	case "POST":
		var in scheduleInput
		if err := strictDecode(r, &in); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		rec := in.toRecord(generateID())
		if err := rec.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ScheduleStore.Save(r.Context(), rec); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("schedule_created", "record_id", rec.ID, "entity_type", rec.EntityType, "entity_id", rec.EntityID, "day", rec.Day)
		writeJSON(w, http.StatusCreated, rec)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleScheduleByID serves /api/schedules/{id} for GET, PUT, DELETE.
func handleScheduleByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/schedules/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case "GET":
		rec, err := stores.ScheduleStore.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "schedule record not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)

	case "PUT":
		if _, err := stores.ScheduleStore.GetByID(r.Context(), id); err != nil {
			http.Error(w, "schedule record not found", http.StatusNotFound)
			return
		}
		var in scheduleInput
		if err := strictDecode(r, &in); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		rec := in.toRecord(id)
		if err := rec.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ScheduleStore.Save(r.Context(), rec); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("schedule_updated", "record_id", rec.ID)
		writeJSON(w, http.StatusOK, rec)

	case "DELETE":
		if err := stores.ScheduleStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("schedule_deleted", "record_id", id)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleImportSchedules serves POST /api/import/schedules.
// The body is a JSON array of schedule objects in any supported export
// shape; ?dry_run=1 validates without writing.
func handleImportSchedules(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.ImportSchedulesInput{
		Reader: r.Body,
		DryRun: r.URL.Query().Get("dry_run") == "1",
	}
	result, err := orchestrators.ExecuteImportSchedules(r.Context(), input, orchestrators.ImportSchedulesDeps{
		ScheduleStore: stores.ScheduleStore,
		GenerateID:    generateID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleSendDigest serves POST /api/admin/digest. Recipients default to
// the configured digest list; a JSON body {"to": [...]} overrides them.
func handleSendDigest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if emailSender == nil {
		http.Error(w, "email sender not configured", http.StatusServiceUnavailable)
		return
	}

	to := digestRecipients
	if r.ContentLength > 0 {
		var body struct {
			To []string `json:"to"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if len(body.To) > 0 {
			to = body.To
		}
	}

	result, err := orchestrators.ExecuteSendActivityDigest(r.Context(), orchestrators.ActivityDigestInput{
		To:   to,
		From: emailFromAddress,
		TopN: defaultTopN,
		Now:  timeNow(),
	}, orchestrators.ActivityDigestDeps{
		TrainerStore:  stores.TrainerStore,
		ScheduleStore: stores.ScheduleStore,
		EmailSender:   emailSender,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message_id": result.MessageID})
}

// handleAdminPerf serves GET /api/admin/perf with aggregated request
// and query timings from the last hour.
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collector not configured", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(timeNow().Add(-time.Hour), 10))
}

// handleHealthz serves GET /healthz.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
