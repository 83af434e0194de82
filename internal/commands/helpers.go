package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gerunddev/notekeep/internal/config"
	"github.com/gerunddev/notekeep/internal/logger"
	"github.com/gerunddev/notekeep/internal/notes"
)

// session bundles what every command needs: config, logger and a store
// seeded with the welcome note plus anything under notes_dir.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *notes.Store
	cleanup func()
}

func (s *session) Close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

// openSession loads configuration, sets up file logging and imports the
// configured notes directory. Logging falls back to discard when the log
// file cannot be opened.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	s := &session{cfg: cfg, log: logger.Discard()}
	if l, cleanup, err := logger.NewFileLogger(cfg.LogFile, cfg.LogLevel); err == nil {
		s.log = l
		s.cleanup = cleanup
	}
	s.log.ConfigLoaded(cfg.NotesDir, cfg.PreviewWidth)

	s.store = notes.NewStore(s.log)
	if cfg.NotesDir != "" {
		if _, err := s.store.ImportDir(cfg.NotesDir); err != nil {
			s.Close()
			return nil, fmt.Errorf("error importing notes: %w", err)
		}
	}

	return s, nil
}

// readSource reads the file named by the first positional argument, or
// stdin when it is "-" or missing.
func readSource(args []string) (string, error) {
	path := "-"
	for i := 0; i < len(args); i++ {
		if args[i] == "--width" {
			i++
			continue
		}
		path = args[i]
		break
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// parseWidth returns the --width flag value, or fallback if absent.
func parseWidth(args []string, fallback int) (int, error) {
	for i, arg := range args {
		if arg == "--width" && i+1 < len(args) {
			w, err := strconv.Atoi(args[i+1])
			if err != nil || w <= 0 {
				return 0, fmt.Errorf("invalid width %q", args[i+1])
			}
			return w, nil
		}
	}
	return fallback, nil
}

func fail(msg string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+msg+": "+err.Error()))
	os.Exit(1)
}
