package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/config"
	"github.com/fitfriend/fitfriend/internal/storage"
	"github.com/fitfriend/fitfriend/internal/storage/file"
	"github.com/fitfriend/fitfriend/internal/storage/memory"
	"github.com/fitfriend/fitfriend/internal/storage/sqlite"
	"github.com/mattn/go-isatty"
)

// sqliteFile is the database name inside the data directory.
const sqliteFile = "fitfriend.db"

// appEnv is what a command needs from the environment: the resolved home
// directory, the effective config and a store over the configured backend.
type appEnv struct {
	homeDir string
	cfg     *config.Config
	store   *attendance.Store
	closer  func() error
}

// openEnv resolves the home directory, reads the config, applies environment
// overrides and opens the configured backend.
func openEnv() (*appEnv, error) {
	homeDir, err := config.HomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Read(homeDir)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	backend, closer, err := openBackend(cfg, homeDir)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	store := attendance.NewStore(backend,
		attendance.WithRoster(cfg.Roster),
		attendance.WithLogger(logger),
	)
	logger.Debug("store opened", "backend", cfg.Backend, "home", homeDir, "quota_bytes", cfg.QuotaBytes)

	return &appEnv{homeDir: homeDir, cfg: cfg, store: store, closer: closer}, nil
}

// Close releases the backend.
func (e *appEnv) Close() {
	if err := e.closer(); err != nil {
		slog.Default().Warn("closing storage backend failed", "backend", e.cfg.Backend, "error", err)
	}
}

// openBackend builds the backend named by cfg.Backend. The "none" kind
// yields a nil backend, which the store treats as storage being unavailable.
func openBackend(cfg *config.Config, homeDir string) (storage.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case storage.KindFile:
		return storage.WithQuota(file.New(config.DataDir(homeDir)), cfg.QuotaBytes), noop, nil
	case storage.KindSQLite:
		db, err := sqlite.New(filepath.Join(config.DataDir(homeDir), sqliteFile))
		if err != nil {
			return nil, noop, fmt.Errorf("opening sqlite backend: %w", err)
		}
		return storage.WithQuota(db, cfg.QuotaBytes), db.Close, nil
	case storage.KindMemory:
		return storage.WithQuota(memory.New(), cfg.QuotaBytes), noop, nil
	case storage.KindNone:
		return nil, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown backend '%s'", cfg.Backend)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// interactive reports whether prompts can be shown: both stdin and the
// command's output must be terminals.
func interactive(w io.Writer) bool {
	return isTerminal(os.Stdin) && isTerminal(w)
}

// promptKitFor returns the huh prompts when running interactively, and an
// empty kit otherwise so that defaults are used.
func promptKitFor(w io.Writer) PromptKit {
	if interactive(w) {
		return NewPromptKit()
	}
	return PromptKit{}
}

// confirmFor picks the confirmation strategy for destructive commands.
// Without --yes and without a terminal there is nobody to ask, so the
// command refuses rather than proceeding.
func confirmFor(w io.Writer, yes bool) ConfirmFunc {
	if yes {
		return AlwaysYes()
	}
	if interactive(w) {
		return NewConfirmFunc()
	}
	return nil
}

var nowFn = time.Now
