package briefing

import (
	"context"
	"log/slog"
	"time"

	"github.com/nhle/daybrief/internal/model"
)

// Mode tracks whether a refresh is in flight. A second refresh request
// while one is running is rejected rather than racing the first on the
// persisted state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRefreshing
)

// StatePersister saves the briefing state document.
type StatePersister interface {
	Save(model.BriefingState) error
}

// Archive records completed briefings in the local history database
// and trims it to a configured depth.
type Archive interface {
	Append(ctx context.Context, rec model.BriefingRecord) error
	Prune(ctx context.Context, keep int) error
}

// timeFormat is the human-readable timestamp shown in the status line.
const timeFormat = "Jan 2, 3:04 PM"

// foreverAgo is shown when a slot has no recorded timestamp.
const foreverAgo = "Forever ago"

// Placeholder strings shown while a refresh is in flight.
const (
	refreshingLabel   = "Refreshing..."
	refreshingSummary = "Reading inbox..."
)

// Controller owns the BriefingState. All mutations go through its
// event methods and are persisted synchronously before they return.
// It is not safe for concurrent use; drive it from a single goroutine
// (the Bubble Tea update loop).
type Controller struct {
	state        model.BriefingState
	mode         Mode
	persister    StatePersister
	archive      Archive
	historyLimit int
	now          func() time.Time
	logger       *slog.Logger
}

// NewController creates a controller around a previously loaded state.
// archive may be nil to disable the history database. historyLimit is
// the archive depth kept after each append; non-positive disables
// pruning.
func NewController(
	initial model.BriefingState,
	persister StatePersister,
	archive Archive,
	historyLimit int,
	logger *slog.Logger,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		state:        initial,
		mode:         ModeIdle,
		persister:    persister,
		archive:      archive,
		historyLimit: historyLimit,
		now:          time.Now,
		logger:       logger,
	}
}

// State returns a snapshot for rendering.
func (c *Controller) State() model.BriefingState {
	return c.state
}

// Mode returns whether a refresh is currently in flight.
func (c *Controller) Mode() Mode {
	return c.mode
}

// RefreshRequested shifts the current briefing into the previous slot,
// shows the in-progress placeholders, persists, and enters Refreshing.
// It reports whether the caller should actually start the pipeline;
// false means a refresh is already running.
func (c *Controller) RefreshRequested() bool {
	if c.mode == ModeRefreshing {
		c.logger.Warn("refresh requested while one is in flight, ignoring")
		return false
	}

	c.state.PreviousBriefing = c.state.CurrentBriefing
	c.state.PreviousUpdateTime = c.state.UpdateTime
	c.state.LastUpdatedLabel = refreshingLabel
	c.state.Summary = refreshingSummary

	c.persist()
	c.mode = ModeRefreshing
	return true
}

// RefreshCompleted records the pipeline outcome. A failed refresh is
// recorded as a briefing too, prefixed "Error: ", so the latest outcome
// is always visible and navigable. The controller returns to Idle
// either way.
func (c *Controller) RefreshCompleted(text string, err error) {
	outcome := model.OutcomeOK
	label := "Updated: Just now"

	if err != nil {
		text = "Error: " + err.Error()
		label = "Error"
		outcome = model.OutcomeError
	}

	now := c.now().Format(timeFormat)

	c.state.Summary = text
	c.state.CurrentBriefing = &text
	c.state.UpdateTime = &now
	c.state.LastUpdatedLabel = label
	c.state.Active = model.ActiveCurrent

	c.persist()
	c.mode = ModeIdle

	if c.archive != nil {
		rec := model.BriefingRecord{
			Text:      text,
			Outcome:   outcome,
			CreatedAt: c.now(),
		}
		if err := c.archive.Append(context.Background(), rec); err != nil {
			c.logger.Warn("archiving briefing failed", "error", err)
		} else if c.historyLimit > 0 {
			if err := c.archive.Prune(context.Background(), c.historyLimit); err != nil {
				c.logger.Warn("pruning briefing history failed", "error", err)
			}
		}
	}
}

// ViewPrevious switches the display to the previous briefing. It is a
// no-op (returning false) when no previous briefing exists. The
// pipeline is never touched.
func (c *Controller) ViewPrevious() bool {
	if c.state.PreviousBriefing == nil {
		return false
	}

	c.state.Summary = *c.state.PreviousBriefing
	c.state.LastUpdatedLabel = "Last Updated at: " + orForeverAgo(c.state.PreviousUpdateTime)
	c.state.Active = model.ActivePrevious

	c.persist()
	return true
}

// ViewCurrent switches the display back to the current briefing.
func (c *Controller) ViewCurrent() bool {
	if c.state.CurrentBriefing == nil {
		return false
	}

	c.state.Summary = *c.state.CurrentBriefing
	c.state.LastUpdatedLabel = "Last Updated at: " + orForeverAgo(c.state.UpdateTime)
	c.state.Active = model.ActiveCurrent

	c.persist()
	return true
}

// persist writes the state synchronously. A failed write is logged and
// the in-memory state stays authoritative; the next successful write
// catches the file up.
func (c *Controller) persist() {
	if c.persister == nil {
		return
	}
	if err := c.persister.Save(c.state); err != nil {
		c.logger.Warn("persisting briefing state failed", "error", err)
	}
}

func orForeverAgo(t *string) string {
	if t == nil {
		return foreverAgo
	}
	return *t
}
