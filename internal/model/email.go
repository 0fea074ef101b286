package model

// Sentinel values used when a message is missing or hides a field.
const (
	NoSubject     = "(No Subject)"
	UnknownSender = "(Unknown Sender)"
	NoBody        = "(No Body)"
)

// EmailRecord is the normalized content extracted from one raw message.
// Every field is always populated; extraction substitutes sentinels
// rather than leaving a field empty.
type EmailRecord struct {
	Subject string
	Sender  string
	Body    string
}
