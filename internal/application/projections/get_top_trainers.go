package projections

import (
	"context"
	"fmt"
	"sort"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
)

// DefaultTopN is the ranking size used when the caller supplies none.
const DefaultTopN = 5

// RankedEntry is one row of a top-N ranking.
type RankedEntry struct {
	EntityID    int
	Rank        int // 1-based, dense
	WeeklyCount int
	DisplayName string
	Tag         string
	Active      bool
}

// GetTopTrainersQuery carries input for the ranking projection.
type GetTopTrainersQuery struct {
	N int // defaults to DefaultTopN when <= 0
}

// GetTopTrainersDeps holds dependencies for the ranking projection.
type GetTopTrainersDeps struct {
	TrainerStore  TrainerStore
	ScheduleStore ScheduleStore
}

// QueryGetTopTrainers ranks trainers by weekly active class count.
// PRE: stores are non-nil
// POST: Returns at most N entries, deterministic for identical inputs
func QueryGetTopTrainers(ctx context.Context, query GetTopTrainersQuery, deps GetTopTrainersDeps) ([]RankedEntry, error) {
	trainers, err := deps.TrainerStore.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := deps.ScheduleStore.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]roster.Entry, 0, len(trainers))
	for i := range trainers {
		entries = append(entries, trainers[i].RosterEntry())
	}

	n := query.N
	if n <= 0 {
		n = DefaultTopN
	}
	return RankEntities(entries, records, roster.KindTrainer, n), nil
}

// RankEntities is the pure core of the ranking projection. Every roster
// entity gets a weekly count of its active records (day validity is not
// required here; only day-bucketed aggregates exclude malformed days).
// Zero-count entities are dropped, the rest are sorted descending with
// roster order breaking ties, truncated to n, and assigned dense
// 1-based ranks.
// PRE: n >= 1; entries share one kind
// POST: stable and deterministic; re-running on the same input yields
// the same order
func RankEntities(entries []roster.Entry, records []schedule.Record, kind string, n int) []RankedEntry {
	counts := make(map[int]int, len(entries))
	known := make(map[int]bool, len(entries))
	for _, e := range entries {
		known[e.ID] = true
	}
	for i := range records {
		r := &records[i]
		if r.IsActive() && r.EntityType == kind && known[r.EntityID] {
			counts[r.EntityID]++
		}
	}

	ranked := make([]RankedEntry, 0, len(entries))
	for _, e := range entries {
		if counts[e.ID] == 0 {
			continue
		}
		ranked = append(ranked, RankedEntry{
			EntityID:    e.ID,
			WeeklyCount: counts[e.ID],
			DisplayName: e.DisplayName,
			Tag:         e.Tag,
			Active:      e.Active,
		})
	}

	// Stable sort keeps roster order on equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeeklyCount > ranked[j].WeeklyCount
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// FormatRankLine renders one ranked entry for digest output.
func FormatRankLine(e RankedEntry) string {
	return fmt.Sprintf("%d. %s (%d classes)", e.Rank, e.DisplayName, e.WeeklyCount)
}
