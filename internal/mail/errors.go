package mail

import (
	"errors"
	"fmt"
)

// ConnectionError indicates the TCP connection to the IMAP server
// could not be established.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to IMAP %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TLSError indicates the TLS handshake failed, including certificate
// and hostname verification failures.
type TLSError struct {
	Host string
	Err  error
}

func (e *TLSError) Error() string {
	return fmt.Sprintf("TLS handshake with %s: %v", e.Host, e.Err)
}

func (e *TLSError) Unwrap() error { return e.Err }

// AuthError indicates the server rejected the login. Reason carries
// the server's rejection text; the password is never included.
type AuthError struct {
	Username string
	Reason   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %s", e.Username, e.Reason)
}

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// MailboxError indicates the mailbox could not be selected.
type MailboxError struct {
	Mailbox string
	Err     error
}

func (e *MailboxError) Error() string {
	return fmt.Sprintf("selecting %s: %v", e.Mailbox, e.Err)
}

func (e *MailboxError) Unwrap() error { return e.Err }

// SearchError indicates the server rejected the search command.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("searching messages: %v", e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// FetchError indicates the fetch channel itself broke. Failures on
// individual messages are skipped instead, so this only fires when the
// whole batch is lost.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching messages: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
