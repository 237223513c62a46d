package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"poketrainers/internal/logging"
	"poketrainers/internal/web"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON web API",
	Long: `Serves the trainer API over HTTP. Accounts persist in the SQLite database
named by db_path; Prometheus metrics are exposed at /metrics.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := logging.New("web")
	addr := serveFlags.addr
	if addr == "" {
		addr = cfg.Addr
	}

	api, err := newAPI()
	if err != nil {
		return err
	}
	accounts, st, err := openAccounts()
	if err != nil {
		return err
	}
	defer st.Close()

	srv := web.New(web.Deps{
		Accounts: accounts,
		Dex:      newDex(api),
		Lines:    newResolver(api),
	}, web.WithLogger(logger), web.WithSessionTTL(cfg.SessionTTL.Std()))

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
