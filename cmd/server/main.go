package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/config"
	"creator-toolkit/internal/keywords"
	"creator-toolkit/internal/logger"
	"creator-toolkit/internal/monitoring"
	"creator-toolkit/internal/research"
	"creator-toolkit/internal/server"
	"creator-toolkit/internal/session"
	"creator-toolkit/internal/thumbnails"
	"creator-toolkit/internal/trends"
	"creator-toolkit/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	youtubeClient, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}
	aiClient, err := ai.NewClient(ctx, &cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	trendsClient := trends.NewClient(&cfg.Trends)

	store := session.NewStore(time.Duration(cfg.Session.TTL))
	researcher := research.New(youtubeClient, logger.New("research"))
	generator := keywords.NewGenerator(aiClient, trendsClient, logger.New("keywords"))
	thumbs := thumbnails.NewHelper(aiClient, aiClient, cfg.Server.DataDir, logger.New("thumbnails"))
	monitor := monitoring.NewMonitor(logger.New("monitoring"))

	mainLog := logger.New("server")

	// Expired sessions are reaped on a schedule rather than per request.
	c := cron.New()
	if _, err := c.AddFunc(cfg.Session.SweepSchedule, func() {
		if n := store.Sweep(); n > 0 {
			mainLog.Info("swept expired sessions", "count", n)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule session sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	srv := server.New(cfg, store, researcher, aiClient, generator, thumbs, monitor, mainLog)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			mainLog.Error("shutdown error", "err", err)
		}
	}()

	mainLog.Info("listening", "addr", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}
