package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/taxfootprint/footprint-calculator/internal/config"
	"github.com/taxfootprint/footprint-calculator/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().String(config.KeyAddr, ":8080", "listen address")
	_ = a.v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup(config.KeyAddr))
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func (a *app) serve(ctx context.Context) error {
	srv := server.NewHTTPServer(a.cfg.Addr, a.engine, a.log)

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.cfg.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info("server stopped")
	return nil
}
