package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/cache"
	"github.com/lemonteaau/the-wild-oasis-website/internal/config"
	"github.com/lemonteaau/the-wild-oasis-website/internal/database"
	"github.com/lemonteaau/the-wild-oasis-website/internal/handler"
	"github.com/lemonteaau/the-wild-oasis-website/internal/middleware"
	"github.com/lemonteaau/the-wild-oasis-website/internal/queue"
	"github.com/lemonteaau/the-wild-oasis-website/internal/repository"
	"github.com/lemonteaau/the-wild-oasis-website/internal/router"
	"github.com/lemonteaau/the-wild-oasis-website/internal/service"
	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	oauthCfg := config.LoadOAuthConfig()

	db, err := database.Open(cfg.DB())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; view cache and rate limiting disabled")
	}
	views := cache.NewViewCache(rdb, config.LoadViewCacheConfig())

	amqpURL := os.Getenv("RABBITMQ_URL")
	if amqpURL == "" {
		amqpURL = os.Getenv("AMQP_URL")
	}
	events := queue.NewPublisher(amqpURL)
	if amqpURL != "" {
		go func() {
			if err := queue.StartBookingConsumer(amqpURL); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	guestRepo := repository.NewGuestRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	cabinRepo := repository.NewCabinRepo(db)

	guestSvc := service.NewGuestService(guestRepo, views)
	bookingSvc := service.NewBookingService(bookingRepo, views, events)

	flow := session.NewOAuthFlow(oauthCfg.Google())

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, flow, guestRepo))
	router.RegisterPublic(e, handler.NewCabinHandler(cabinRepo), middleware.ViewCacheMiddleware(views))
	router.RegisterAccount(e,
		handler.NewGuestHandler(guestSvc),
		handler.NewBookingHandler(bookingSvc),
		cfg.JWTSecret,
		middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
