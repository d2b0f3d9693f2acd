package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "pizzadesk/analytics-svc/internal/api/http"
	"pizzadesk/analytics-svc/internal/service"
	"pizzadesk/analytics-svc/internal/storage"
	"pizzadesk/config"

	"golang.org/x/sync/errgroup"
)

func main() {
	config.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	svc := service.NewAnalyticsService(storage.NewPostgresStore(db), storage.NewLeaderboard(rdb))
	srv := httpapi.NewServer(config.ListenAddr("8083"), httpapi.NewRouter(httpapi.NewHandler(svc)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Analytics Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Analytics Service stopped:", err)
	}
	log.Println("Analytics Service stopped")
}
