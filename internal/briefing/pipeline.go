// Package briefing orchestrates the refresh pipeline and the
// current/previous briefing state machine behind the presentation
// layer.
package briefing

import (
	"context"
	"log/slog"
	"time"

	"github.com/nhle/daybrief/internal/digest"
	"github.com/nhle/daybrief/internal/mail"
	"github.com/nhle/daybrief/internal/model"
)

// Fetcher locates and returns the raw messages for one refresh window.
type Fetcher interface {
	FetchSince(ctx context.Context, since time.Time) ([][]byte, error)
}

// Summarizer turns a non-empty digest into briefing text.
type Summarizer interface {
	Summarize(ctx context.Context, digest string) (string, error)
}

// defaultTimeout bounds one end-to-end refresh when no timeout is
// configured.
const defaultTimeout = 60 * time.Second

// Pipeline runs one full refresh: fetch, extract, format, summarize.
// Stages run sequentially; there is no per-message fan-out.
type Pipeline struct {
	fetcher    Fetcher
	summarizer Summarizer
	timeout    time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// NewPipeline creates a refresh pipeline. A non-positive timeout
// selects the default.
func NewPipeline(f Fetcher, s Summarizer, timeout time.Duration, logger *slog.Logger) *Pipeline {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		fetcher:    f,
		summarizer: s,
		timeout:    timeout,
		now:        time.Now,
		logger:     logger,
	}
}

// PreviousDayStart returns midnight at the start of the calendar day
// before now, in now's location. IMAP SINCE is date-granular, so the
// window is a calendar-day boundary rather than a rolling 24 hours.
func PreviousDayStart(now time.Time) time.Time {
	y := now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, now.Location())
}

// Refresh executes the pipeline once and returns the briefing text.
// An empty inbox window yields "" without calling the summarizer.
// Any error is fatal to this refresh; the controller turns it into an
// error briefing.
func (p *Pipeline) Refresh(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	since := PreviousDayStart(p.now())
	raws, err := p.fetcher.FetchSince(ctx, since)
	if err != nil {
		return "", err
	}

	records := make([]model.EmailRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, mail.Extract(raw))
	}

	doc := digest.Format(records)
	if doc == "" {
		p.logger.Info("no qualifying messages, skipping summarization")
		return "", nil
	}

	p.logger.Info("summarizing digest", "messages", len(records))
	return p.summarizer.Summarize(ctx, doc)
}
