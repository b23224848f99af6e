package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"github.com/layer-3/vouch/adapters/events"
	"github.com/layer-3/vouch/adapters/hasher"
	"github.com/layer-3/vouch/adapters/otp"
	"github.com/layer-3/vouch/adapters/store"
	"github.com/layer-3/vouch/adapters/tokenizer"
	"github.com/layer-3/vouch/config"
	"github.com/layer-3/vouch/ports"
	"github.com/layer-3/vouch/service"
	"github.com/layer-3/vouch/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	wmLogger := watermill.NewStdLogger(false, false)

	var userStore ports.UserStore
	var publisher message.Publisher

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)

		publisher, err = redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			wmLogger,
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}

		userStore = store.NewRedisStore(redisClient)
	} else {
		// Single-process fallback for local development
		publisher = gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
		userStore = store.NewMemoryStore()
	}

	authService := service.NewAuthService(
		userStore,
		hasher.NewBcryptHasher(cfg.BcryptCost),
		otp.NewTOTPEngine(cfg.TOTPIssuer),
		tokenizer.NewJWTTokenizer([]byte(cfg.JWTSecret)),
		events.NewWatermillPublisher(publisher),
		logger,
	)

	// Setup Gin router
	router := http.SetupRouter(authService)

	logger.Info("starting server", "addr", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
