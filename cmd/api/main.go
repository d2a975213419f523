package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-shopfront.git/internal/catalog"
	"github.com/ariefcatur/go-shopfront.git/internal/checkout"
	"github.com/ariefcatur/go-shopfront.git/internal/config"
	"github.com/ariefcatur/go-shopfront.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-shopfront.git/internal/kafka"
	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
	"github.com/ariefcatur/go-shopfront.git/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store backend per sesi
	var newStore func(sid string) kvstore.Store
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := kvstore.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		newStore = func(sid string) kvstore.Store { return kvstore.NewPostgres(pool, sid) }
	case "memory":
		// mode standalone: record hilang saat proses mati
		newStore = func(sid string) kvstore.Store { return kvstore.NewMemory() }
	default:
		rdb := kvstore.NewRedisClient(cfg.RedisAddr)
		defer rdb.Close()
		newStore = func(sid string) kvstore.Store { return kvstore.NewRedis(rdb, sid) }
	}

	// Kafka producer buat event order placed
	prod := kafkax.NewProducer(cfg.KafkaBrokers, checkout.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// Sesi + katalog statis
	sessions := session.NewManager(newStore, prod, cfg.ServiceName)
	home := catalog.Home()
	men := catalog.Men()

	// Router & handlers
	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Sections: map[string]*catalog.Catalog{
		"home": home,
		"men":  men,
	}}).Register(router)
	(&httpx.CartHandler{Sessions: sessions, Catalogs: []*catalog.Catalog{home, men}}).Register(router)
	(&httpx.CheckoutHandler{Sessions: sessions}).Register(router)
	(&httpx.AuthHandler{Sessions: sessions}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // tutup inbox -> flush & close writer
	prod.WaitClosed() // tunggu loop selesai; ctx baru di-cancel via defer
}
