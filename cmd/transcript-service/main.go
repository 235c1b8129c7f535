// Command transcript-service runs the YouTube transcript HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/yt-transcript-service/internal/api"
	"github.com/skillsenselab/yt-transcript-service/internal/config"
	"github.com/skillsenselab/yt-transcript-service/internal/logger"
	"github.com/skillsenselab/yt-transcript-service/internal/observability"
	"github.com/skillsenselab/yt-transcript-service/internal/server"
	"github.com/skillsenselab/yt-transcript-service/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewDefault(api.ServiceName).Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log := logger.New(cfg.Log, cfg.Base.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := observability.InitTracer(ctx, cfg.Tracing, cfg.Base.Name, cfg.Base.Version, cfg.Base.Environment)
	if err != nil {
		log.Fatal("Failed to initialize tracing", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Error("Tracer shutdown failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}()
	}

	yt, err := youtube.New(cfg.YouTube, log)
	if err != nil {
		log.Fatal("Failed to create YouTube client", map[string]interface{}{
			"error": err.Error(),
		})
	}

	srv := server.New(cfg.Server, log)
	api.NewHandler(yt, log).Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Failed to start server", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Service ready", map[string]interface{}{
		"environment": cfg.Base.Environment,
		"version":     cfg.Base.Version,
		"proxy":       cfg.YouTube.Proxy() != nil,
	})

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
