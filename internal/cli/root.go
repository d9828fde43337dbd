package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"strategy-builder/internal/catalog"
	"strategy-builder/internal/config"
	"strategy-builder/internal/logging"
	"strategy-builder/internal/submit"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Catalog   *catalog.Catalog
	Submitter *submit.Client
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Submitter = submit.NewClient(cfg.Submission.Endpoint, logger)

	rootCmd := &cobra.Command{
		Use:   "builder",
		Short: "Strategy Builder - author and submit algorithmic trading strategies",
		Long: `Strategy Builder authors algorithmic trading strategies for the Indian
F&O market and submits them as validated specification documents.

Drafts are plain JSON files; 'builder validate' checks a draft against
the validation rules and 'builder submit' assembles and submits it.
'builder serve' runs the catalog and persistence API service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return app.loadCatalog(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default ~/.config/strategy-builder)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newIndicatorsCmd(app))
	rootCmd.AddCommand(newValidateCmd(app))
	rootCmd.AddCommand(newSubmitCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadCatalog resolves the indicator catalog per configuration. A failed
// remote fetch leaves an explicitly empty catalog rather than a partial
// one.
func (a *App) loadCatalog(ctx context.Context) error {
	if a.Config.Catalog.Source == "remote" {
		client := catalog.NewClient(a.Config.Catalog.URL, a.Logger)
		cat, err := client.Fetch(ctx)
		if err != nil {
			a.Logger.Warn().Err(err).Msg("Falling back to empty catalog")
			a.Catalog = catalog.Empty()
			return nil
		}
		a.Catalog = cat
		return nil
	}
	a.Catalog = catalog.Builtin()
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			NewOutput(cmd).Printf("strategy-builder %s\n", Version)
		},
	}
}
