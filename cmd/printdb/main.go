package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/printdb/internal/api"
	"github.com/gravitrone/printdb/internal/cmd"
	"github.com/gravitrone/printdb/internal/ui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cmd.Options
	root := &cobra.Command{
		Use:   "printdb",
		Short: "printdb - 3D print catalog editor",
		Long:  "printdb: browse, edit and tag the records of a 3D print catalog from the terminal.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.URL, "url", "", "catalog service URL")
	flags.StringVar(&opts.LocalDB, "local", "", "use a local SQLite catalog file instead of the service")
	flags.StringVar(&opts.LogFile, "log-file", "", "write debug logs to this file")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable colors")

	opener := func() (api.Catalog, func() error, error) {
		cfg, err := cmd.LoadConfig(opts)
		if err != nil {
			return nil, nil, err
		}
		return cmd.OpenCatalog(cfg)
	}

	root.AddCommand(cmd.SetupCmd())
	root.AddCommand(cmd.RefsCmd(opener))
	root.AddCommand(cmd.RecordsCmd(opener))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the printdb version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintf(c.OutOrStdout(), "printdb %s\n", version)
		},
	})
	return root
}

func runTUI(opts cmd.Options) error {
	cfg, err := cmd.LoadConfig(opts)
	if err != nil {
		return err
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("the editor needs a terminal; use 'printdb records' or 'printdb refs' instead")
	}

	logger, closeLog, err := cmd.NewLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ui.ApplyColorProfile(cfg.NoColor)

	catalog, closeCatalog, err := cmd.OpenCatalog(cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	logger.Info("starting", "local", cfg.LocalDB != "", "url", cfg.BaseURL)
	p := tea.NewProgram(ui.NewApp(catalog, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
