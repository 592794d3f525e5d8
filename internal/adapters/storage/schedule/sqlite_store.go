package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage"
	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ScheduleStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const recordColumns = "id, entity_id, entity_type, day, date, start_time, end_time, duration_minutes, status"

// GetByID retrieves a Record by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM schedule WHERE id = ?", id)
	var entity domain.Record
	err := row.Scan(&entity.ID, &entity.EntityID, &entity.EntityType, &entity.Day, &entity.Date, &entity.StartTime, &entity.EndTime, &entity.DurationMinutes, &entity.Status)
	if err == sql.ErrNoRows {
		return domain.Record{}, fmt.Errorf("schedule record not found: %w", err)
	}
	return entity, err
}

// Save persists a Record to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Record) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO schedule ("+recordColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET entity_id=excluded.entity_id, entity_type=excluded.entity_type, day=excluded.day, date=excluded.date, start_time=excluded.start_time, end_time=excluded.end_time, duration_minutes=excluded.duration_minutes, status=excluded.status",
		entity.ID, entity.EntityID, entity.EntityType, entity.Day, entity.Date, entity.StartTime, entity.EndTime, entity.DurationMinutes, entity.Status,
	)
	return err
}

// Delete removes a Record from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM schedule WHERE id = ?", id)
	return err
}

// List retrieves all Records.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Record, error) {
	return s.queryRecords(ctx, "SELECT "+recordColumns+" FROM schedule ORDER BY day, start_time, id")
}

// ListByDay retrieves Records for a specific day.
// PRE: day is a canonical day name
// POST: Returns records for the given day ordered by start time
func (s *SQLiteStore) ListByDay(ctx context.Context, day string) ([]domain.Record, error) {
	return s.queryRecords(ctx, "SELECT "+recordColumns+" FROM schedule WHERE day = ? ORDER BY start_time, id", day)
}

// ListByEntity retrieves Records for a specific trainer or class.
// PRE: entityType is trainer or class; entityID is positive
// POST: Returns records for the given entity ordered by day and start time
func (s *SQLiteStore) ListByEntity(ctx context.Context, entityType string, entityID int) ([]domain.Record, error) {
	return s.queryRecords(ctx, "SELECT "+recordColumns+" FROM schedule WHERE entity_type = ? AND entity_id = ? ORDER BY day, start_time, id", entityType, entityID)
}

// ListByStatus retrieves Records with the given status.
// PRE: status is a status constant
// POST: Returns matching records ordered by day and start time
func (s *SQLiteStore) ListByStatus(ctx context.Context, status string) ([]domain.Record, error) {
	return s.queryRecords(ctx, "SELECT "+recordColumns+" FROM schedule WHERE status = ? ORDER BY day, start_time, id", status)
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Record
	for rows.Next() {
		var entity domain.Record
		if err := rows.Scan(&entity.ID, &entity.EntityID, &entity.EntityType, &entity.Day, &entity.Date, &entity.StartTime, &entity.EndTime, &entity.DurationMinutes, &entity.Status); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
