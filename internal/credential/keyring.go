// Package credential stores the IMAP password and Gemini API key in
// the system keyring, with environment variables taking precedence so
// a .env file is all that's needed in development.
package credential

import (
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

const serviceName = "daybrief"

// Keys under which the two secrets are stored.
const (
	KeyIMAPPassword = "imap-password"
	KeyGeminiAPIKey = "gemini-api-key"
)

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/daybrief/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("daybrief-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  key,
		Data: []byte(value),
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// GetOrEnv returns the environment variable envVar if set, otherwise
// the keyring entry under ringKey. An empty result means the secret is
// simply not configured.
func GetOrEnv(envVar, ringKey string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}

	v, err := Get(ringKey)
	if err != nil {
		return ""
	}
	return v
}
