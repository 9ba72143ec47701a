package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wyfcoding/poseidon/internal/auth/infrastructure/persistence/memory"
	"github.com/wyfcoding/poseidon/internal/server"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/ratelimit"
)

const sweepInterval = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	rt, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer rt.close()
	cfg := rt.cfg

	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Database.AutoMigrate {
		if err := server.Migrate(ctx, rt.db.DB); err != nil {
			return err
		}
	}

	app, err := server.New(server.Deps{
		Config:    cfg,
		DB:        rt.db.DB,
		Redis:     rt.redisClient(),
		Publisher: rt.publisher,
		Metrics:   rt.metrics,
	})
	if err != nil {
		return err
	}
	if err := app.Bootstrap(ctx, cfg.Bootstrap); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(gctx, "Starting HTTP server", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	store, _ := app.Sessions.(*memory.SessionRepository)
	limiter, _ := app.Limiter.(*ratelimit.LocalRateLimiter)
	if store != nil || limiter != nil {
		g.Go(func() error {
			sweep(gctx, store, limiter)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info(context.Background(), "Server exiting")
	return nil
}

// sweep 定期清理进程内的过期会话与已回满的限流桶
func sweep(ctx context.Context, store *memory.SessionRepository, limiter *ratelimit.LocalRateLimiter) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if store != nil {
				if n := store.Sweep(); n > 0 {
					logger.Debug(ctx, "expired sessions removed", "count", n, "remaining", store.Len())
				}
			}
			if limiter != nil {
				if n := limiter.Prune(); n > 0 {
					logger.Debug(ctx, "idle rate limit buckets removed", "count", n, "remaining", limiter.Len())
				}
			}
		}
	}
}
