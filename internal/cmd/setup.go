package cmd

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gravitrone/printdb/internal/config"
)

const (
	backendService = "service"
	backendLocal   = "local"
)

// setupAnswers mirrors the setup form fields as strings.
type setupAnswers struct {
	Backend string
	BaseURL string
	APIKey  string
	LocalDB string
	Timeout string
	LogFile string
	NoColor bool
}

func answersFrom(cfg *config.Config) setupAnswers {
	ans := setupAnswers{
		Backend: backendService,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		LocalDB: cfg.LocalDB,
		Timeout: strconv.Itoa(cfg.TimeoutSeconds),
		LogFile: cfg.LogFile,
		NoColor: cfg.NoColor,
	}
	if cfg.LocalDB != "" {
		ans.Backend = backendLocal
	}
	return ans
}

func validateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("enter an http(s) URL")
	}
	return nil
}

func validateTimeout(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a number of seconds")
	}
	return nil
}

func buildSetupForm(ans *setupAnswers) *huh.Form {
	backendGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Catalog").
			Description("Talk to the catalog service or keep a local SQLite file.").
			Key("backend").
			Options(
				huh.NewOption("Catalog service", backendService),
				huh.NewOption("Local file", backendLocal),
			).
			Value(&ans.Backend),
	)

	serviceGroup := huh.NewGroup(
		huh.NewInput().
			Title("Service URL").
			Key("base_url").
			Validate(validateURL).
			Value(&ans.BaseURL),
		huh.NewInput().
			Title("API key").
			Description("Leave empty if the service is open.").
			Key("api_key").
			EchoMode(huh.EchoModePassword).
			Value(&ans.APIKey),
		huh.NewInput().
			Title("Timeout (seconds)").
			Key("timeout").
			Validate(validateTimeout).
			Value(&ans.Timeout),
	).WithHideFunc(func() bool { return ans.Backend != backendService })

	localGroup := huh.NewGroup(
		huh.NewInput().
			Title("Database file").
			Key("local_db").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("enter a file path")
				}
				return nil
			}).
			Value(&ans.LocalDB),
	).WithHideFunc(func() bool { return ans.Backend != backendLocal })

	extraGroup := huh.NewGroup(
		huh.NewInput().
			Title("Debug log file").
			Description("Optional. The editor logs nothing when empty.").
			Key("log_file").
			Value(&ans.LogFile),
		huh.NewConfirm().
			Title("Disable colors?").
			Key("no_color").
			Value(&ans.NoColor),
	)

	return huh.NewForm(backendGroup, serviceGroup, localGroup, extraGroup)
}

// applySetup validates the answers and writes them onto cfg.
func applySetup(cfg *config.Config, ans setupAnswers) error {
	switch ans.Backend {
	case backendService:
		if err := validateURL(ans.BaseURL); err != nil {
			return fmt.Errorf("service URL: %w", err)
		}
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(ans.BaseURL), "/")
		cfg.APIKey = strings.TrimSpace(ans.APIKey)
		cfg.LocalDB = ""
	case backendLocal:
		if strings.TrimSpace(ans.LocalDB) == "" {
			return fmt.Errorf("database file is required")
		}
		cfg.LocalDB = strings.TrimSpace(ans.LocalDB)
	default:
		return fmt.Errorf("unknown catalog backend %q", ans.Backend)
	}
	if err := validateTimeout(ans.Timeout); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	if t := strings.TrimSpace(ans.Timeout); t != "" {
		cfg.TimeoutSeconds, _ = strconv.Atoi(t)
	}
	cfg.LogFile = strings.TrimSpace(ans.LogFile)
	cfg.NoColor = ans.NoColor
	return cfg.Validate()
}

// RunSetup shows the setup form seeded from the current config and saves
// the result.
func RunSetup(out io.Writer) error {
	cfg, err := LoadConfig(Options{})
	if err != nil {
		cfg = config.Default()
	}
	ans := answersFrom(cfg)
	if err := buildSetupForm(&ans).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if err := applySetup(cfg, ans); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// SetupCmd returns the `printdb setup` command.
func SetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure the catalog connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunSetup(cmd.OutOrStdout())
		},
	}
}
