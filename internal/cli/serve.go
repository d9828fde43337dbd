package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"strategy-builder/internal/server"
	"strategy-builder/internal/store"
	"strategy-builder/internal/stream"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog and strategy persistence API service",
		Long: `Run the HTTP API service: the indicator catalog read boundary, the
strategy submission boundary backed by the local SQLite store, and a
WebSocket stream of strategy lifecycle events.`,
		Example: `  builder serve
  builder serve --listen :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			addr, _ := cmd.Flags().GetString("listen")
			if addr == "" {
				addr = app.Config.Server.ListenAddr
			}

			st, err := store.NewSQLiteStore(app.Config.Database.Path)
			if err != nil {
				output.Error("Failed to open strategy store: %v", err)
				return err
			}
			defer st.Close()

			hub := stream.NewHub()
			srv := server.New(app.Catalog, st, hub, app.Logger)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(addr) }()

			output.Success("API service listening on %s", addr)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				output.Println("Shutting down...")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().String("listen", "", "listen address (overrides config)")
	return cmd
}
