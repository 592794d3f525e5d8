package trainer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage"
	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new TrainerStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const trainerColumns = "id, first_name, last_name, email, specialization, active, weekly_days"

// GetByID retrieves a Trainer by its ID.
// PRE: id is positive
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id int) (domain.Trainer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+trainerColumns+" FROM trainer WHERE id = ?", id)
	entity, err := scanTrainer(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Trainer{}, fmt.Errorf("trainer not found: %w", err)
	}
	return entity, err
}

// Save persists a Trainer to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Trainer) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trainer ("+trainerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET first_name=excluded.first_name, last_name=excluded.last_name, email=excluded.email, specialization=excluded.specialization, active=excluded.active, weekly_days=excluded.weekly_days",
		entity.ID, entity.FirstName, entity.LastName, entity.Email, entity.Specialization, entity.Active, encodeWeeklyDays(entity.WeeklyDays),
	)
	return err
}

// Delete removes a Trainer from the database.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM trainer WHERE id = ?", id)
	return err
}

// List retrieves all Trainers in id order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Trainer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+trainerColumns+" FROM trainer ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Trainer
	for rows.Next() {
		entity, err := scanTrainer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanTrainer(scan func(dest ...any) error) (domain.Trainer, error) {
	var entity domain.Trainer
	var days sql.NullString
	err := scan(&entity.ID, &entity.FirstName, &entity.LastName, &entity.Email, &entity.Specialization, &entity.Active, &days)
	if err != nil {
		return domain.Trainer{}, err
	}
	entity.WeeklyDays = decodeWeeklyDays(days)
	return entity, nil
}

// encodeWeeklyDays stores the day override as JSON. A nil slice maps to
// NULL so "no override" and "override with no days" stay distinct.
func encodeWeeklyDays(days []string) sql.NullString {
	if days == nil {
		return sql.NullString{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func decodeWeeklyDays(raw sql.NullString) []string {
	if !raw.Valid {
		return nil
	}
	days := []string{}
	if err := json.Unmarshal([]byte(raw.String), &days); err != nil {
		return nil
	}
	return days
}
