package mail

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakeCursor struct {
	msgs []fakeMessage
	pos  int
}

type fakeMessage struct {
	raw []byte
	err error
}

func (f *fakeCursor) Next() ([]byte, bool, error) {
	if f.pos >= len(f.msgs) {
		return nil, false, nil
	}
	m := f.msgs[f.pos]
	f.pos++
	return m.raw, true, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollectBodiesSkipsFailedMessage(t *testing.T) {
	cur := &fakeCursor{msgs: []fakeMessage{
		{raw: []byte("first")},
		{err: errors.New("stream reset")},
		{raw: []byte("third")},
	}}

	raws := collectBodies(cur, discardLogger())

	if len(raws) != 2 {
		t.Fatalf("got %d bodies, want 2", len(raws))
	}
	if string(raws[0]) != "first" || string(raws[1]) != "third" {
		t.Errorf("bodies = [%q, %q], want surviving messages in order", raws[0], raws[1])
	}
}

func TestCollectBodiesSkipsMissingBodySection(t *testing.T) {
	cur := &fakeCursor{msgs: []fakeMessage{
		{raw: []byte("kept")},
		{raw: nil},
	}}

	raws := collectBodies(cur, discardLogger())

	if len(raws) != 1 || string(raws[0]) != "kept" {
		t.Errorf("bodies = %q, want only the message with a body", raws)
	}
}

func TestCollectBodiesAllFailed(t *testing.T) {
	cur := &fakeCursor{msgs: []fakeMessage{
		{err: errors.New("boom")},
		{err: errors.New("boom")},
	}}

	if raws := collectBodies(cur, discardLogger()); len(raws) != 0 {
		t.Errorf("got %d bodies, want 0", len(raws))
	}
}

func TestCollectBodiesEmptyStream(t *testing.T) {
	if raws := collectBodies(&fakeCursor{}, discardLogger()); raws != nil {
		t.Errorf("got %v, want nil for an empty stream", raws)
	}
}
