package mail

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"github.com/nhle/daybrief/internal/model"
)

// dialTimeout bounds the initial TCP connection attempt.
const dialTimeout = 30 * time.Second

// Client wraps go-imap v2 for retrieving recent raw messages from a
// single mailbox over implicit TLS.
type Client struct {
	host     string
	port     string
	username string
	password string
	mailbox  string
	logger   *slog.Logger
}

// NewClient creates a new IMAP client configuration. The password is
// kept separate from MailConfig so it never travels through the
// config file.
func NewClient(cfg model.MailConfig, password string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	mailbox := cfg.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	return &Client{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: password,
		mailbox:  mailbox,
		logger:   logger,
	}
}

// Connect establishes a TLS connection to the IMAP server, verifies
// the server identity against the configured hostname, and
// authenticates. The caller is responsible for calling Logout/Close on
// the returned client.
//
// Failures map to ConnectionError (dial), TLSError (handshake or
// certificate verification), and AuthError (login rejection).
func (c *Client) Connect(ctx context.Context) (*imapclient.Client, error) {
	addr := net.JoinHostPort(c.host, c.port)

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	tlsConn := tls.Client(conn, &tls.Config{ServerName: c.host})
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, &TLSError{Host: c.host, Err: err}
	}

	client := imapclient.New(tlsConn, nil)

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		_ = client.Logout().Wait()
		_ = client.Close()
		return nil, &AuthError{
			Username: c.username,
			Reason:   err.Error(),
		}
	}

	return client, nil
}

// FetchSince connects, selects the configured mailbox, searches for
// messages received on or after since, and fetches their full raw
// content in one batched request. Messages are returned in server
// response order.
//
// A failure on a single message is logged and that message skipped;
// only a broken fetch channel fails the whole batch. Zero search
// matches return an empty result without issuing a fetch.
func (c *Client) FetchSince(ctx context.Context, since time.Time) ([][]byte, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(c.mailbox, nil).Wait(); err != nil {
		return nil, &MailboxError{Mailbox: c.mailbox, Err: err}
	}

	criteria := &imap.SearchCriteria{
		Since: since,
	}

	searchData, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, &SearchError{Err: err}
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	bodySection := &imap.FetchItemBodySection{
		Peek: true,
	}

	fetchOpts := &imap.FetchOptions{
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}

	fetchCmd := client.Fetch(imap.UIDSetNum(uids...), fetchOpts)
	defer fetchCmd.Close()

	raws := collectBodies(&fetchCmdCursor{cmd: fetchCmd, section: bodySection}, c.logger)

	if err := fetchCmd.Close(); err != nil {
		return nil, &FetchError{Err: err}
	}

	return raws, nil
}

// messageCursor yields raw message bodies from an in-flight fetch.
type messageCursor interface {
	// Next returns the raw body of the next message. ok is false once
	// the stream is exhausted. A non-nil error applies to that single
	// message, not to the stream.
	Next() (raw []byte, ok bool, err error)
}

// fetchCmdCursor adapts a live fetch command to messageCursor.
type fetchCmdCursor struct {
	cmd     *imapclient.FetchCommand
	section *imap.FetchItemBodySection
}

func (c *fetchCmdCursor) Next() ([]byte, bool, error) {
	msg := c.cmd.Next()
	if msg == nil {
		return nil, false, nil
	}
	buf, err := msg.Collect()
	if err != nil {
		return nil, true, err
	}
	return buf.FindBodySection(c.section), true, nil
}

// collectBodies drains the cursor. A message that fails to collect or
// carries no body section is logged and skipped; the rest of the batch
// survives.
func collectBodies(cur messageCursor, logger *slog.Logger) [][]byte {
	var raws [][]byte
	for {
		raw, ok, err := cur.Next()
		if !ok {
			return raws
		}
		if err != nil {
			logger.Warn("skipping message with fetch error", "error", err)
			continue
		}
		if raw == nil {
			logger.Warn("skipping message without body section")
			continue
		}
		raws = append(raws, raw)
	}
}
