package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/nhle/daybrief/internal/model"
	"github.com/nhle/daybrief/tests/testutil"
)

func TestAppendFillsIDAndTimestamp(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.Append(ctx, model.BriefingRecord{
		Text:    "Good day, Apex.",
		Outcome: model.OutcomeOK,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	recs, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].ID == "" {
		t.Error("Append did not assign an ID")
	}
	if recs[0].CreatedAt.IsZero() {
		t.Error("Append did not assign a timestamp")
	}
	if recs[0].Text != "Good day, Apex." {
		t.Errorf("Text = %q", recs[0].Text)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	for i, text := range []string{"oldest", "middle", "newest"} {
		err := s.Append(ctx, model.BriefingRecord{
			Text:      text,
			Outcome:   model.OutcomeOK,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Append %q: %v", text, err)
		}
	}

	recs, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Text != "newest" || recs[1].Text != "middle" {
		t.Errorf("order = [%q, %q], want newest first", recs[0].Text, recs[1].Text)
	}
}

func TestAppendRecordsErrorOutcome(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.Append(ctx, model.BriefingRecord{
		Text:    "Error: connection refused",
		Outcome: model.OutcomeError,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	recs, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if recs[0].Outcome != model.OutcomeError {
		t.Errorf("Outcome = %q, want error", recs[0].Outcome)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := s.Append(ctx, model.BriefingRecord{
			Text:      "briefing",
			Outcome:   model.OutcomeOK,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if err := s.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	recs, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d records after prune, want 2", len(recs))
	}
}
