package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nhle/daybrief/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "state.json"))
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	got := s.Load()
	want := model.DefaultBriefingState()

	if got.Summary != want.Summary {
		t.Errorf("Summary = %q, want default", got.Summary)
	}
	if got.Active != model.ActiveCurrent {
		t.Errorf("Active = %q, want current", got.Active)
	}
	if got.CurrentBriefing != nil || got.PreviousBriefing != nil {
		t.Error("default state should have no history")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	cur := "current text"
	prev := "previous text"
	curTime := "Aug 28, 9:30 AM"

	state := model.BriefingState{
		Summary:          "current text",
		LastUpdatedLabel: "Updated: Just now",
		PreviousBriefing: &prev,
		CurrentBriefing:  &cur,
		UpdateTime:       &curTime,
		Active:           model.ActiveCurrent,
	}

	if err := s.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.Load()

	if got.Summary != state.Summary {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.CurrentBriefing == nil || *got.CurrentBriefing != cur {
		t.Errorf("CurrentBriefing = %v", got.CurrentBriefing)
	}
	if got.PreviousBriefing == nil || *got.PreviousBriefing != prev {
		t.Errorf("PreviousBriefing = %v", got.PreviousBriefing)
	}
	if got.PreviousUpdateTime != nil {
		t.Errorf("PreviousUpdateTime = %v, want nil preserved", got.PreviousUpdateTime)
	}
	if got.UpdateTime == nil || *got.UpdateTime != curTime {
		t.Errorf("UpdateTime = %v", got.UpdateTime)
	}
}

func TestLoadCorruptFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	got := New(path).Load()

	if got.Summary != model.DefaultBriefingState().Summary {
		t.Errorf("corrupt file should yield default state, got %+v", got)
	}
}

func TestLoadUnknownActiveSlotReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	doc := `{"summary":"x","last_updated_label":"y","active":"sideways"}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("writing state file: %v", err)
	}

	got := New(path).Load()

	if got.Active != model.ActiveCurrent {
		t.Errorf("Active = %q, want default current", got.Active)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s := New(path)

	if err := s.Save(model.DefaultBriefingState()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file not created: %v", err)
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	s := newTestStore(t)

	first := model.DefaultBriefingState()
	first.Summary = "a much longer summary that should be fully replaced on the next write"
	if err := s.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := model.DefaultBriefingState()
	second.Summary = "short"
	if err := s.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := s.Load(); got.Summary != "short" {
		t.Errorf("Summary = %q, want %q", got.Summary, "short")
	}
}
