package trainer_test

import (
	"testing"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
)

// TestTrainer_DisplayName tests display name composition and fallback.
func TestTrainer_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		tr   trainer.Trainer
		want string
	}{
		{
			name: "first and last joined with one space",
			tr:   trainer.Trainer{ID: 1, FirstName: "Elif", LastName: "Demir"},
			want: "Elif Demir",
		},
		{
			name: "first only",
			tr:   trainer.Trainer{ID: 2, FirstName: "Elif"},
			want: "Elif",
		},
		{
			name: "last only",
			tr:   trainer.Trainer{ID: 3, LastName: "Demir"},
			want: "Demir",
		},
		{
			name: "no names falls back to id form",
			tr:   trainer.Trainer{ID: 42},
			want: "Trainer #42",
		},
		{
			name: "whitespace-only names fall back",
			tr:   trainer.Trainer{ID: 5, FirstName: "  ", LastName: " "},
			want: "Trainer #5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestTrainer_RosterEntry tests conversion into the canonical roster view.
func TestTrainer_RosterEntry(t *testing.T) {
	tr := trainer.Trainer{
		ID:             42,
		FirstName:      "Elif",
		LastName:       "Demir",
		Specialization: "Yoga",
		Active:         true,
		WeeklyDays:     []string{"Monday", "Wednesday"},
	}

	e := tr.RosterEntry()
	if e.ID != 42 || e.Kind != "trainer" {
		t.Fatalf("entry identity = (%d, %q), want (42, trainer)", e.ID, e.Kind)
	}
	if e.DisplayName != "Elif Demir" {
		t.Errorf("DisplayName = %q", e.DisplayName)
	}
	if e.Tag != "Yoga" {
		t.Errorf("Tag = %q, want Yoga", e.Tag)
	}
	if !e.Active {
		t.Error("Active = false, want true")
	}
	if len(e.WeeklyDays) != 2 {
		t.Errorf("WeeklyDays = %v", e.WeeklyDays)
	}

	// Search fields must carry both id renderings.
	want := map[string]bool{"Elif Demir": true, "Yoga": true, "42": true, "#42": true}
	if len(e.SearchFields) != len(want) {
		t.Fatalf("SearchFields = %v, want %d fields", e.SearchFields, len(want))
	}
	for _, f := range e.SearchFields {
		if !want[f] {
			t.Errorf("unexpected search field %q", f)
		}
	}
}

// TestTrainer_Validate tests basic field validation.
func TestTrainer_Validate(t *testing.T) {
	valid := trainer.Trainer{ID: 1, FirstName: "Elif"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid trainer: unexpected error %v", err)
	}

	noID := trainer.Trainer{FirstName: "Elif"}
	if err := noID.Validate(); err == nil {
		t.Error("zero id: expected error")
	}
}
