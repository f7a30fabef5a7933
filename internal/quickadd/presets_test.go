package quickadd_test

import (
	"strings"
	"testing"

	"lifedesk/internal/model"
	"lifedesk/internal/quickadd"
)

func TestSchoolPreset(t *testing.T) {
	p := quickadd.New(quickadd.SchoolPreset(), clock)

	t.Run("course code extracted before generic pipeline", func(t *testing.T) {
		got := p.Parse("CS101 Assignment 3 due tomorrow", "", nil)

		if got.Course != "CS101" {
			t.Errorf("Course = %q, want %q", got.Course, "CS101")
		}
		if got.DueDate == nil || !got.DueDate.Equal(*day(1)) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, day(1))
		}
		if got.Title != "Assignment 3 due" {
			t.Errorf("Title = %q, want %q", got.Title, "Assignment 3 due")
		}
		if got.Kind != model.KindTask || got.Subtype != "assignment" {
			t.Errorf("Kind/Subtype = %q/%q, want task/assignment", got.Kind, got.Subtype)
		}
	})

	t.Run("longer course codes", func(t *testing.T) {
		got := p.Parse("MATH221B problem set friday", "", nil)
		if got.Course != "MATH221B" {
			t.Errorf("Course = %q, want %q", got.Course, "MATH221B")
		}
		if got.Title != "problem set" {
			t.Errorf("Title = %q, want %q", got.Title, "problem set")
		}
	})

	t.Run("exam keywords classify as event", func(t *testing.T) {
		got := p.Parse("biology midterm 3/20", "", nil)
		if got.Kind != model.KindEvent || got.Subtype != "exam" {
			t.Errorf("Kind/Subtype = %q/%q, want event/exam", got.Kind, got.Subtype)
		}
	})

	t.Run("no course code leaves field unset", func(t *testing.T) {
		got := p.Parse("read chapter 4", "", nil)
		if got.Course != "" {
			t.Errorf("Course = %q, want empty", got.Course)
		}
	})
}

func TestWorkPreset(t *testing.T) {
	p := quickadd.New(quickadd.WorkPreset(), clock)

	t.Run("meeting keywords classify as event", func(t *testing.T) {
		got := p.Parse("standup sync with platform team", "", nil)
		if got.Kind != model.KindEvent || got.Subtype != "meeting" {
			t.Errorf("Kind/Subtype = %q/%q, want event/meeting", got.Kind, got.Subtype)
		}
	})

	t.Run("deliverable keywords stay tasks", func(t *testing.T) {
		got := p.Parse("ship billing fix tomorrow", "", nil)
		if got.Kind != model.KindTask || got.Subtype != "deliverable" {
			t.Errorf("Kind/Subtype = %q/%q, want task/deliverable", got.Kind, got.Subtype)
		}
		if got.DueDate == nil || !got.DueDate.Equal(*day(1)) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, day(1))
		}
	})

	t.Run("time match still forces event and skips buckets", func(t *testing.T) {
		got := p.Parse("ship billing fix 5pm", "", nil)
		if got.Kind != model.KindEvent {
			t.Errorf("Kind = %q, want event", got.Kind)
		}
		if got.Subtype != "" {
			t.Errorf("Subtype = %q, want empty (classification skipped)", got.Subtype)
		}
	})
}

func TestShoppingPreset(t *testing.T) {
	p := quickadd.New(quickadd.ShoppingPreset(), clock)

	t.Run("supplement with quantity and servings", func(t *testing.T) {
		got := p.Parse("Vitamin D 2000 IU 2 per day", "", nil)

		if got.Quantity != "2000 IU" {
			t.Errorf("Quantity = %q, want %q", got.Quantity, "2000 IU")
		}
		if got.ServingsPerDay != 2 {
			t.Errorf("ServingsPerDay = %d, want 2", got.ServingsPerDay)
		}
		if got.Subtype != "supplement" {
			t.Errorf("Subtype = %q, want supplement", got.Subtype)
		}
		if got.Title != "Vitamin D" {
			t.Errorf("Title = %q, want %q", got.Title, "Vitamin D")
		}
	})

	t.Run("overflowing servings count does not match", func(t *testing.T) {
		got := p.Parse("Vitamin D 99999999999999999999 per day", "", nil)
		if got.ServingsPerDay != 0 {
			t.Errorf("ServingsPerDay = %d, want 0", got.ServingsPerDay)
		}
		if !strings.Contains(got.Title, "per day") {
			t.Errorf("Title = %q, want the unmatched fragment kept", got.Title)
		}
	})

	t.Run("brand extraction", func(t *testing.T) {
		got := p.Parse("protein powder by Optimum", "", nil)
		if got.Brand != "Optimum" {
			t.Errorf("Brand = %q, want %q", got.Brand, "Optimum")
		}
		if got.Subtype != "supplement" {
			t.Errorf("Subtype = %q, want supplement", got.Subtype)
		}
	})

	t.Run("food routing", func(t *testing.T) {
		got := p.Parse("milk and bread", "", nil)
		if got.Subtype != "food" {
			t.Errorf("Subtype = %q, want food", got.Subtype)
		}
	})

	t.Run("unrecognized items stay generic", func(t *testing.T) {
		got := p.Parse("birthday card", "", nil)
		if got.Subtype != "" {
			t.Errorf("Subtype = %q, want empty", got.Subtype)
		}
		if got.Kind != model.KindTask {
			t.Errorf("Kind = %q, want task", got.Kind)
		}
	})
}

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"school", "school"},
		{"Work", "work"},
		{"SHOPPING", "shopping"},
		{"", "general"},
		{"unknown", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quickadd.PresetByName(tt.name)
			if got.Name != tt.want {
				t.Errorf("PresetByName(%q).Name = %q, want %q", tt.name, got.Name, tt.want)
			}
		})
	}
}
