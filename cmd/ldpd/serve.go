package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/err0r500/go-ldp-server/config"
	"github.com/err0r500/go-ldp-server/constraint"
	"github.com/err0r500/go-ldp-server/cookies"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/logger"
	"github.com/err0r500/go-ldp-server/resources"
	"github.com/err0r500/go-ldp-server/server"
	"github.com/err0r500/go-ldp-server/sparql"
	"github.com/err0r500/go-ldp-server/store"
	"github.com/err0r500/go-ldp-server/store/badgerstore"
	"github.com/err0r500/go-ldp-server/store/boltstore"
	"github.com/err0r500/go-ldp-server/store/cache"
	"github.com/err0r500/go-ldp-server/store/memory"
	"github.com/err0r500/go-ldp-server/store/sqlitestore"
	"github.com/err0r500/go-ldp-server/uc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the partition over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

var cookieCmd = &cobra.Command{
	Use:   "cookie <agent>",
	Short: "Print a session cookie value for an agent IRI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(cfg.CookieHashKey) == 0 {
			return errors.New("a cookie hash key is required")
		}
		value, err := sessions(cfg).Value(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", cookies.Name, value)
		return nil
	},
}

// key decodes a hex key, falling back to the raw bytes
func key(s string) []byte {
	if b, err := hex.DecodeString(s); err == nil {
		return b
	}
	return []byte(s)
}

func sessions(cfg *domain.ServerConfig) cookies.Sessions {
	return cookies.New(key(cfg.CookieHashKey), key(cfg.CookieBlockKey), cfg.CookieAge)
}

// openBackend opens the store driver of cfg, behind a cache when one is
// configured
func openBackend(ctx context.Context, cfg *domain.ServerConfig) (store.Backend, error) {
	var (
		backend store.Backend
		err     error
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		backend = memory.New()
	case config.DriverBolt:
		backend, err = boltstore.New(cfg.StorePath)
	case config.DriverBadger:
		backend, err = badgerstore.New(cfg.StorePath)
	case config.DriverSQLite:
		backend, err = sqlitestore.New(ctx, cfg.StorePath)
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	if cfg.CacheSize > 0 {
		backend = cache.New(backend, cfg.CacheSize)
	}
	return backend, nil
}

func serve(ctx context.Context, cfg *domain.ServerConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.New(os.Stderr, cfg.Debug)

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	rs := store.New(backend)
	defer rs.Close()

	interactor := uc.NewInteractor(rs, sparql.New(), constraint.New(), resources.New(cfg.BinaryRoot), log,
		uc.WithDefaultProfile(cfg.DefaultJSONLDProfile))

	srv := &http.Server{
		Addr:         cfg.ListenHTTP,
		Handler:      server.New(cfg, rs, interactor, sessions(cfg), log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("starting ldp server", "addr", cfg.ListenHTTP, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errs:
		return err
	case <-quit:
	}

	log.Info("shutting down server")
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}
