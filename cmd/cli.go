package cmd

import (
	"fmt"
	"io"

	"fleet/internal/adapters/out/sqlite"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X fleet/cmd.Version=...".
var Version = "dev"

// NewRootCommand builds the fleet CLI. Without a subcommand it runs the menu.
func NewRootCommand() *cobra.Command {
	var configPath string

	runMenu := func(c *cobra.Command, _ []string) error {
		return RunMenu(c, configPath, c.InOrStdin(), c.OutOrStdout())
	}

	rootCmd := &cobra.Command{
		Use:   "fleet",
		Short: "Container fleet registry",
		Long: `fleet keeps a registry of cargo containers and container ships.
Containers are created in a free pool, filled with cargo and loaded onto ships
that accept them within their container count and weight limits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the config file (default: ./fleet.yaml if present)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(c.OutOrStdout(), "fleet %s\n", Version)
		},
	})

	return rootCmd
}

// RunMenu loads the configuration, opens the registry and serves the menu on
// in and out until it exits.
func RunMenu(c *cobra.Command, configPath string, in io.Reader, out io.Writer) error {
	ctx := c.Context()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := NewLogger(cfg.Logging)
	if err != nil {
		return err
	}

	db, err := sqlite.NewConnection(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sqlite.Close(db); closeErr != nil {
			logger.ErrorContext(ctx, "failed to close database", "error", closeErr)
		}
	}()

	root, err := NewCompositionRoot(ctx, cfg, db, logger, out)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "fleet started", "version", Version, "dsn", cfg.Database.DSN)
	return root.CreateMenu(in, out).Run(ctx)
}
