package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"pizzadesk/agg-svc/internal/service"
	"pizzadesk/agg-svc/internal/storage"
	"pizzadesk/config"

	"golang.org/x/sync/errgroup"
)

func main() {
	config.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, config.GetEnv("KAFKA_GROUP_ID", "agg-svc-consumer"))
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return consumer.Start(gctx) })

	if err := g.Wait(); err != nil {
		log.Fatal("Aggregation Service stopped:", err)
	}
	log.Println("Aggregation Service stopped")
}
