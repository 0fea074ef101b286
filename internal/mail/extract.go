package mail

import (
	"bytes"
	"io"
	"mime"
	netmail "net/mail"
	"strings"

	"github.com/emersion/go-message"

	// Register charset decoders (windows-1252, iso-8859-*, koi8-r, etc.)
	_ "github.com/emersion/go-message/charset"

	"github.com/nhle/daybrief/internal/model"
)

// Extract parses one raw message into an EmailRecord. It never fails:
// missing or unreadable fields degrade to the sentinel strings so a
// malformed message can't knock out the batch it arrived in.
func Extract(raw []byte) model.EmailRecord {
	rec := model.EmailRecord{
		Subject: model.NoSubject,
		Sender:  model.UnknownSender,
		Body:    model.NoBody,
	}

	ent, err := message.Read(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		// Structural parse failure: salvage what the header section
		// still offers and keep the sentinel body.
		salvageHeaders(raw, &rec)
		return rec
	}

	if s := headerText(ent.Header, "Subject"); s != "" {
		rec.Subject = s
	}
	if f := headerText(ent.Header, "From"); f != "" {
		rec.Sender = f
	}

	if body := selectBody(ent); strings.TrimSpace(body) != "" {
		rec.Body = body
	}

	return rec
}

// headerText returns the decoded value of the first occurrence of the
// named header, matched case-insensitively. Undecodable encoded words
// fall back to the raw value.
func headerText(h message.Header, name string) string {
	v, err := h.Text(name)
	if err != nil || v == "" {
		v = h.Get(name)
	}
	return strings.TrimSpace(v)
}

// selectBody picks the best-effort plain-text body:
//
//  1. a text/* top-level part is used directly
//  2. else the first direct child with exactly text/plain
//  3. else the first direct child with any text/* subtype
//  4. else the top-level body decoded as-is
//
// Real-world mail prefers HTML; summarization prefers plain text, so
// text/plain outranks sibling text/html even inside multipart/alternative.
func selectBody(ent *message.Entity) string {
	ctype, _, err := ent.Header.ContentType()
	if err == nil && strings.HasPrefix(ctype, "text/") {
		return readAll(ent.Body)
	}

	mr := ent.MultipartReader()
	if mr == nil {
		return readAll(ent.Body)
	}

	type childPart struct {
		ctype string
		body  string
	}

	var children []childPart
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil && !message.IsUnknownCharset(err) {
			break
		}

		pt, _, err := part.Header.ContentType()
		if err != nil {
			continue
		}

		child := childPart{ctype: pt}
		if strings.HasPrefix(pt, "text/") {
			child.body = readAll(part.Body)
		}
		children = append(children, child)
	}

	for _, child := range children {
		if child.ctype == "text/plain" {
			return child.body
		}
	}
	for _, child := range children {
		if strings.HasPrefix(child.ctype, "text/") {
			return child.body
		}
	}

	// No text part anywhere; the multipart walk consumed the body, so
	// this degrades to the sentinel upstream.
	return readAll(ent.Body)
}

func readAll(r io.Reader) string {
	if r == nil {
		return ""
	}
	// A short read still yields usable text; decoding errors surface
	// as a truncated body, not a dropped message.
	b, _ := io.ReadAll(r)
	return string(b)
}

// salvageHeaders makes a second, more lenient pass over the header
// section with net/mail when go-message can't parse the message
// structure at all.
func salvageHeaders(raw []byte, rec *model.EmailRecord) {
	msg, err := netmail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return
	}

	if s := decodeWords(msg.Header.Get("Subject")); s != "" {
		rec.Subject = s
	}
	if f := decodeWords(msg.Header.Get("From")); f != "" {
		rec.Sender = f
	}
}

func decodeWords(s string) string {
	dec := new(mime.WordDecoder)
	out, err := dec.DecodeHeader(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(out)
}
