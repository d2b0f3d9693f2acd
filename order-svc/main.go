package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pizzadesk/config"
	httpapi "pizzadesk/order-svc/internal/api/http"
	"pizzadesk/order-svc/internal/service"
	"pizzadesk/order-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

func main() {
	config.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("TRACKING_BASE_URL", "http://localhost:8080")}
	handler := httpapi.NewHandler(
		service.NewTenantService(repo),
		service.NewMenuService(repo),
		service.NewCustomerService(repo),
		service.NewOrderService(repo, storage.NewKafkaPublisher(writer), qr),
	)

	srv := httpapi.NewServer(config.ListenAddr("8081"), httpapi.NewRouter(handler))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Order Service starting on %s", srv.Addr)
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
		log.Fatal("Order Service stopped:", err)
	}
	log.Println("Order Service stopped")
}
