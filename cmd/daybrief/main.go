// daybrief is a terminal app that summarizes your recent inbox into a
// morning briefing. Run `daybrief setup` once to store the server and
// credentials, then `daybrief` to read and refresh briefings, and
// `daybrief history` to list the archived ones.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"

	"github.com/nhle/daybrief/internal/ai"
	"github.com/nhle/daybrief/internal/briefing"
	"github.com/nhle/daybrief/internal/credential"
	"github.com/nhle/daybrief/internal/mail"
	"github.com/nhle/daybrief/internal/model"
	"github.com/nhle/daybrief/internal/statefile"
	"github.com/nhle/daybrief/internal/store"
	"github.com/nhle/daybrief/internal/ui"
)

func main() {
	// A .env next to the binary is enough to configure everything in
	// development, mirroring IMAP_SERVER/IMAP_USERNAME/IMAP_PASSWORD
	// and GEMINI_API_KEY.
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "setup":
			if err := runSetup(); err != nil {
				fmt.Fprintf(os.Stderr, "daybrief setup: %v\n", err)
				os.Exit(1)
			}
			return
		case "history":
			if err := runHistory(); err != nil {
				fmt.Fprintf(os.Stderr, "daybrief history: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "daybrief: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	if cfg.Mail.Host == "" || cfg.Mail.Username == "" {
		return fmt.Errorf("no mail account configured; run `daybrief setup` or set IMAP_SERVER and IMAP_USERNAME")
	}

	statePath, err := statefile.DefaultPath()
	if err != nil {
		return err
	}
	appDir := filepath.Dir(statePath)

	logger, closeLog, err := newLogger(filepath.Join(appDir, "daybrief.log"))
	if err != nil {
		return err
	}
	defer closeLog()

	archive, err := store.NewBriefingStore(filepath.Join(appDir, "history.db"))
	if err != nil {
		return err
	}
	defer archive.Close()

	password := credential.GetOrEnv("IMAP_PASSWORD", credential.KeyIMAPPassword)
	apiKey := credential.GetOrEnv(ai.CredentialKey, credential.KeyGeminiAPIKey)

	fetcher := mail.NewClient(cfg.Mail, password, logger)
	summarizer := ai.New(apiKey, cfg.AI.Model)
	pipeline := briefing.NewPipeline(
		fetcher,
		summarizer,
		time.Duration(cfg.RefreshTimeoutSec)*time.Second,
		logger,
	)

	states := statefile.New(statePath)
	ctrl := briefing.NewController(states.Load(), states, archive, cfg.HistoryLimit, logger)

	program := tea.NewProgram(ui.New(ctrl, pipeline), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}

	return nil
}

// newLogger opens an append-only log file for the app. The TUI owns
// stdout, so all logging goes to the file.
func newLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { _ = f.Close() }, nil
}

// runHistory prints the archived briefings, newest first, up to the
// configured history depth.
func runHistory() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	statePath, err := statefile.DefaultPath()
	if err != nil {
		return err
	}

	archive, err := store.NewBriefingStore(filepath.Join(filepath.Dir(statePath), "history.db"))
	if err != nil {
		return err
	}
	defer archive.Close()

	recs, err := archive.Recent(context.Background(), cfg.HistoryLimit)
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("No briefings recorded yet.")
		return nil
	}

	for _, rec := range recs {
		heading := rec.CreatedAt.Format("Jan 2, 3:04 PM")
		if rec.Outcome == model.OutcomeError {
			heading += " [error]"
		}
		fmt.Printf("%s\n%s\n\n", heading, rec.Text)
	}

	return nil
}

// runSetup collects the mail account and API key interactively and
// stores the secrets in the system keyring and the rest in the config
// file.
func runSetup() error {
	cfgPath := model.DefaultConfigPath()
	cfg, err := model.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	var password, apiKey string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("IMAP server host").
				Placeholder("imap.example.com").
				Value(&cfg.Mail.Host),
			huh.NewInput().
				Title("IMAP username").
				Placeholder("you@example.com").
				Value(&cfg.Mail.Username),
			huh.NewInput().
				Title("IMAP password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
			huh.NewInput().
				Title("Gemini API key").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("collecting settings: %w", err)
	}

	if err := model.SaveConfig(cfgPath, cfg); err != nil {
		return err
	}

	if password != "" {
		if err := credential.Set(credential.KeyIMAPPassword, password); err != nil {
			return err
		}
	}
	if apiKey != "" {
		if err := credential.Set(credential.KeyGeminiAPIKey, apiKey); err != nil {
			return err
		}
	}

	fmt.Println("Configuration saved to", cfgPath)
	return nil
}
