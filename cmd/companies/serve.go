package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"companies-engine/internal/events"
	"companies-engine/internal/httpapi"
	"companies-engine/internal/logging"
	"companies-engine/internal/scheduler"
	"companies-engine/internal/store"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Hour
)

type serveOptions struct {
	host string
	port int
}

func newServeCmd(opts *globalOptions) *cobra.Command {
	var so serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the company directory over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, so)
		},
	}
	cmd.Flags().StringVar(&so.host, "host", "", "listen host (overrides app.host)")
	cmd.Flags().IntVarP(&so.port, "port", "p", 0, "listen port (overrides app.port)")
	return cmd
}

func runServe(ctx context.Context, opts *globalOptions, so serveOptions) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, cfgPath, err := opts.loadConfig(log)
	if err != nil {
		return err
	}
	if so.host != "" {
		cfg.App.Host = so.host
	}
	if so.port != 0 {
		cfg.App.Port = so.port
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	deps, err := httpapi.NewDeps(db.Pool, cfg, events.NewHub(), log)
	if err != nil {
		return err
	}
	deps.ConfigPath = cfgPath

	token := os.Getenv("COMPANIES_SHUTDOWN_TOKEN")
	if token == "" {
		if token, err = randomToken(16); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, log)

	deps.Shutdown = shutdownHandler(token, stop)

	addr := net.JoinHostPort(cfg.App.Host, strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           httpapi.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	log.Info("listening",
		zap.String("addr", "http://"+ln.Addr().String()),
		zap.String("base_url", cfg.Site.BaseURL),
		zap.String("config", cfgPath),
		zap.String("db", db.Path),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		scheduler.Every(gctx, cleanupInterval, "cleanup_old_listings", func(ctx context.Context) error {
			if cfg.Store.CleanupAfter <= 0 {
				return nil
			}
			n, err := store.CleanupOldListings(ctx, db.Pool, cfg.Store.CleanupAfter)
			if err == nil && n > 0 {
				logging.FromContext(ctx).Info("old listings removed", zap.Int64("deleted", n))
			}
			return err
		})
		return nil
	})

	return g.Wait()
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// shutdownHandler stops the server for a loopback caller holding the token.
func shutdownHandler(token string, stop context.CancelFunc) http.Handler {
	return httpapi.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))
		stop()
	}), httpapi.LocalOnly, requireToken(token))
}

func requireToken(token string) httpapi.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Shutdown-Token")
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				httpapi.WriteError(w, r, http.StatusUnauthorized, "unauthorized", "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
