package class_test

import (
	"testing"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
)

// TestClass_DisplayName tests the name fallback.
func TestClass_DisplayName(t *testing.T) {
	named := class.Class{ID: 7, Name: "Morning Yoga"}
	if got := named.DisplayName(); got != "Morning Yoga" {
		t.Errorf("DisplayName() = %q, want Morning Yoga", got)
	}

	unnamed := class.Class{ID: 7}
	if got := unnamed.DisplayName(); got != "Class #7" {
		t.Errorf("DisplayName() = %q, want Class #7", got)
	}
}

// TestClass_RosterEntry tests conversion into the canonical roster view.
func TestClass_RosterEntry(t *testing.T) {
	c := class.Class{ID: 7, Name: "Morning Yoga", Category: "Yoga", Active: true}

	e := c.RosterEntry()
	if e.Kind != "class" || e.ID != 7 {
		t.Fatalf("entry identity = (%d, %q), want (7, class)", e.ID, e.Kind)
	}
	if e.Tag != "Yoga" {
		t.Errorf("Tag = %q, want Yoga", e.Tag)
	}

	found := map[string]bool{}
	for _, f := range e.SearchFields {
		found[f] = true
	}
	for _, want := range []string{"Morning Yoga", "Yoga", "7", "#7"} {
		if !found[want] {
			t.Errorf("SearchFields missing %q: %v", want, e.SearchFields)
		}
	}
}

// TestClass_Validate tests basic field validation.
func TestClass_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       class.Class
		wantErr bool
	}{
		{name: "valid", c: class.Class{ID: 1, Name: "Spin", Capacity: 20}, wantErr: false},
		{name: "zero id", c: class.Class{Name: "Spin"}, wantErr: true},
		{name: "negative capacity", c: class.Class{ID: 1, Capacity: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
