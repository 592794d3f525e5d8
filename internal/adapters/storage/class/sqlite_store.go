package class

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage"
	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ClassStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const classColumns = "id, name, category, trainer_id, capacity, active, weekly_days"

// GetByID retrieves a Class by its ID.
// PRE: id is positive
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id int) (domain.Class, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+classColumns+" FROM class WHERE id = ?", id)
	entity, err := scanClass(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Class{}, fmt.Errorf("class not found: %w", err)
	}
	return entity, err
}

// Save persists a Class to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Class) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO class ("+classColumns+") VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET name=excluded.name, category=excluded.category, trainer_id=excluded.trainer_id, capacity=excluded.capacity, active=excluded.active, weekly_days=excluded.weekly_days",
		entity.ID, entity.Name, entity.Category, entity.TrainerID, entity.Capacity, entity.Active, encodeWeeklyDays(entity.WeeklyDays),
	)
	return err
}

// Delete removes a Class from the database.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM class WHERE id = ?", id)
	return err
}

// List retrieves all Classes in id order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Class, error) {
	return s.queryClasses(ctx, "SELECT "+classColumns+" FROM class ORDER BY id")
}

// ListByTrainerID retrieves Classes assigned to a specific trainer.
// PRE: trainerID is positive
// POST: Returns classes for the given trainer in id order
func (s *SQLiteStore) ListByTrainerID(ctx context.Context, trainerID int) ([]domain.Class, error) {
	return s.queryClasses(ctx, "SELECT "+classColumns+" FROM class WHERE trainer_id = ? ORDER BY id", trainerID)
}

func (s *SQLiteStore) queryClasses(ctx context.Context, query string, args ...any) ([]domain.Class, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Class
	for rows.Next() {
		entity, err := scanClass(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanClass(scan func(dest ...any) error) (domain.Class, error) {
	var entity domain.Class
	var days sql.NullString
	err := scan(&entity.ID, &entity.Name, &entity.Category, &entity.TrainerID, &entity.Capacity, &entity.Active, &days)
	if err != nil {
		return domain.Class{}, err
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
