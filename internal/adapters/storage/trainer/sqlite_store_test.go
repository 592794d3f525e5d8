package trainer

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/FurkanArikk/fitness-center-sub002/internal/adapters/storage"
	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
)

func openStoreTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db, ":memory:"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// TestSQLiteStore_WeeklyDaysRoundTrip verifies the three distinct
// weekly_days states survive storage: no override (nil), an explicit
// empty override, and a populated override.
func TestSQLiteStore_WeeklyDaysRoundTrip(t *testing.T) {
	store := NewSQLiteStore(openStoreTestDB(t))
	ctx := context.Background()

	cases := []struct {
		name string
		days []string
	}{
		{"no override", nil},
		{"empty override", []string{}},
		{"populated override", []string{"Monday", "Friday"}},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.Trainer{ID: i + 1, FirstName: "T", Active: true, WeeklyDays: tc.days}
			if err := store.Save(ctx, in); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := store.GetByID(ctx, in.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !reflect.DeepEqual(got.WeeklyDays, tc.days) {
				t.Errorf("WeeklyDays = %#v, want %#v", got.WeeklyDays, tc.days)
			}
			if (got.WeeklyDays == nil) != (tc.days == nil) {
				t.Errorf("nil-ness lost: got nil=%v, want nil=%v", got.WeeklyDays == nil, tc.days == nil)
			}
		})
	}
}

// TestSQLiteStore_SaveUpdatesInPlace verifies Save upserts by id.
func TestSQLiteStore_SaveUpdatesInPlace(t *testing.T) {
	store := NewSQLiteStore(openStoreTestDB(t))
	ctx := context.Background()

	if err := store.Save(ctx, domain.Trainer{ID: 1, FirstName: "Elif", Active: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, domain.Trainer{ID: 1, FirstName: "Elif", LastName: "Demir", Active: false}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all[0].LastName != "Demir" || all[0].Active {
		t.Errorf("updated = %+v", all[0])
	}
}
