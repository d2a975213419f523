package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ariefcatur/go-shopfront.git/internal/checkout"
	"github.com/ariefcatur/go-shopfront.git/internal/config"
	kafkax "github.com/ariefcatur/go-shopfront.git/internal/kafka"
	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
	"github.com/ariefcatur/go-shopfront.git/internal/notify"
	"github.com/joho/godotenv"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis buat dedup + cache status
	rdb := kvstore.NewRedisClient(cfg.RedisAddr)
	defer rdb.Close()

	// Producer follow-up event
	prod := kafkax.NewProducer(cfg.KafkaBrokers, checkout.TopicOrderNotified, 1024)
	prod.Start(ctx)

	svc := &notify.Service{
		Redis:       rdb,
		Producer:    prod,
		ServiceName: cfg.ServiceName + "-notifier",
	}

	group := getenv("NOTIFIER_GROUP", "shopfront-notifier")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, checkout.TopicOrderPlaced, workers)

	go func() {
		log.Printf("notifier consumer started: group=%s topic=%s workers=%d", group, checkout.TopicOrderPlaced, workers)
		if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
	prod.WaitClosed() // cancel ctx sudah bikin loop flush inbox lalu exit
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
