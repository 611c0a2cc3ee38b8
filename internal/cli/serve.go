package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the booking slice over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) (err error) {
	slice, b, err := a.newSlice()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, b.Close())
	}()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	slice.RegisterRoutes(router)

	server := &http.Server{
		Addr:    a.cfg.HTTPAddr,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pkgApp.LogInfo(ctx, a.logger, "starting HTTP server", map[string]interface{}{
			"address":   a.cfg.HTTPAddr,
			"transport": string(a.cfg.Transport),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		pkgApp.LogInfo(shutdownCtx, a.logger, "shutting down HTTP server", nil)
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
