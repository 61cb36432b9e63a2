package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gravitrone/printdb/internal/api"
	"github.com/gravitrone/printdb/internal/config"
	"github.com/gravitrone/printdb/internal/store"
)

// Options are the root command flags. Set values override the config file.
type Options struct {
	URL     string
	LocalDB string
	LogFile string
	NoColor bool
}

// LoadConfig reads the config file, falling back to defaults when it does
// not exist, then applies the environment and the flags.
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	if opts.URL != "" {
		cfg.BaseURL = opts.URL
	}
	if opts.LocalDB != "" {
		cfg.LocalDB = opts.LocalDB
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.NoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenCatalog returns the local store when one is configured and the REST
// client otherwise. The returned func releases it.
func OpenCatalog(cfg *config.Config) (api.Catalog, func() error, error) {
	if cfg.LocalDB != "" {
		s, err := store.Open(expandHome(cfg.LocalDB))
		if err != nil {
			return nil, nil, fmt.Errorf("open local catalog: %w", err)
		}
		return s, s.Close, nil
	}
	client := api.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout())
	return client, func() error { return nil }, nil
}

// NewLogger opens the debug log. Without a path everything is discarded,
// since the TUI owns stdout.
func NewLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(expandHome(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "printdb",
	})
	return logger, f.Close, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
