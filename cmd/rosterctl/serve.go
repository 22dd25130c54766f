package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/cfbdynasty/roster-stats/internal/cache"
	"github.com/cfbdynasty/roster-stats/internal/handlers"
	"github.com/cfbdynasty/roster-stats/internal/logic"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the roster analysis API",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.logger.Sync()
			log := e.logger.Sugar()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var tables logic.TableCache
			var pinger handlers.Pinger
			if e.cfg.RedisURL != "" {
				tc, client, err := cache.Open(ctx, e.cfg.RedisURL, e.cfg.CacheTTL)
				if err != nil {
					return err
				}
				defer client.Close()
				tables = tc
				pinger = redisPinger{client.Ping}
				log.Infow("Table cache enabled", "ttl", e.cfg.CacheTTL)
			}

			h := handlers.New(handlers.Config{
				Roster:         logic.NewRosterService(e.source, tables, e.logger),
				Registry:       e.registry,
				Cache:          pinger,
				AllowedOrigins: e.cfg.AllowedOrigins,
				Logger:         e.logger,
			})

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", e.cfg.Port),
				Handler:           h.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Infow("Server starting", "port", e.cfg.Port, "env", e.cfg.Env)
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

			log.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

type redisPinger struct {
	ping func(ctx context.Context) *redis.StatusCmd
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.ping(ctx).Err()
}
