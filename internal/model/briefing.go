package model

import "time"

// ActiveSlot identifies which briefing slot is currently displayed.
type ActiveSlot string

const (
	ActivePrevious ActiveSlot = "previous"
	ActiveCurrent  ActiveSlot = "current"
)

// BriefingState is the persisted state of the briefing history.
// It keeps exactly one level of history: the current briefing and the
// one before it. The optional fields are nil until the first refresh
// completes.
type BriefingState struct {
	// Summary is the text currently on screen.
	Summary string `json:"summary"`

	// LastUpdatedLabel is the human-readable status line shown under
	// the summary.
	LastUpdatedLabel string `json:"last_updated_label"`

	// PreviousBriefing holds the briefing that was current before the
	// latest refresh.
	PreviousBriefing *string `json:"previous_briefing"`

	// CurrentBriefing holds the most recently completed briefing,
	// including error briefings.
	CurrentBriefing *string `json:"current_briefing"`

	// PreviousUpdateTime is the formatted timestamp for PreviousBriefing.
	PreviousUpdateTime *string `json:"previous_update_time"`

	// UpdateTime is the formatted timestamp for CurrentBriefing.
	UpdateTime *string `json:"update_time"`

	// Active selects which slot Summary currently mirrors.
	Active ActiveSlot `json:"active"`
}

// DefaultBriefingState returns the state used on first start or when
// the persisted state file is absent or unreadable.
func DefaultBriefingState() BriefingState {
	return BriefingState{
		Summary: "You have a quiet morning. \n\n" +
			"There are no urgent blockers in your inbox. \n\n",
		LastUpdatedLabel: "Last updated: Just now",
		Active:           ActiveCurrent,
	}
}

// BriefingOutcome classifies how a refresh ended.
type BriefingOutcome string

const (
	OutcomeOK    BriefingOutcome = "ok"
	OutcomeError BriefingOutcome = "error"
)

// BriefingRecord is one archived briefing in the local history
// database. Unlike BriefingState, the archive is append-only and keeps
// more than one level of history.
type BriefingRecord struct {
	ID        string          `db:"id"`
	Text      string          `db:"text"`
	Outcome   BriefingOutcome `db:"outcome"`
	CreatedAt time.Time       `db:"created_at"`
}
