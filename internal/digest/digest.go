// Package digest renders extracted email records into the single text
// document handed to the summarizer.
package digest

import (
	"fmt"
	"strings"

	"github.com/nhle/daybrief/internal/model"
)

// Separator is the horizontal rule between records. There is no
// trailing separator after the last record.
const Separator = "-----------\n"

// Format renders the records as labeled Subject/From/Body blocks joined
// by Separator. An empty input produces the empty string, which means
// "nothing to summarize" and short-circuits the summarization call.
func Format(records []model.EmailRecord) string {
	if len(records) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, fmt.Sprintf(
			"Subject: %s\nFrom: %s\nBody: %s\n",
			r.Subject, r.Sender, r.Body,
		))
	}

	return strings.Join(blocks, Separator)
}
