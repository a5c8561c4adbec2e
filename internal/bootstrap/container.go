package bootstrap

import (
	"context"
	"log"
	"time"

	"hackteam-be/internal/config"
	"hackteam-be/internal/controller"
	"hackteam-be/internal/handler"
	"hackteam-be/internal/localrecord"
	"hackteam-be/internal/pkg/logger"
	"hackteam-be/internal/repository/memory"
	"hackteam-be/internal/repository/unitofwork"
	"hackteam-be/internal/seed"
	"hackteam-be/internal/service"
	"hackteam-be/internal/store/chat"
	"hackteam-be/internal/store/session"
	"hackteam-be/internal/websocket"
	pktNats "hackteam-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	ChatController       controller.IChatController
	HackathonController  controller.IHackathonController
	TeamFinderController controller.ITeamFinderController

	// WebSockets & real-time updates
	UpdatesHandler *handler.UpdatesHandler
	WebSocketHub   *websocket.Hub

	// Background services (exposed for main.go to run)
	UpdatesService *service.UpdatesService

	// Issued-token registry; the JWT middleware checks it so logout can
	// revoke tokens before their expiry
	TokenRepository *memory.TokenRepository

	// Stores, exposed for tests and diagnostics
	SessionStore *session.Store
	ChatStore    *chat.Store
}

// NewContainer wires the application. db may be nil, in which case the
// hackathon catalog and teammate directory are served from the embedded
// fixtures instead of Postgres.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. In-process event bus for store updates
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Durable local record for the current session
	records, err := localrecord.NewFileStore(cfg.Session.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare session data dir: %v", err)
	}

	sessionStore, err := session.New(records, pubSub, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize session store: %v", err)
	}
	chatStore := chat.New(seed.Conversations(), seed.Messages(), pubSub, sysLogger)

	// 4. Catalog/directory repositories: Postgres when configured, embedded
	// fixtures otherwise.
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		log.Println("[INFO] DB not configured, serving catalog from embedded fixtures")
		uowFactory = unitofwork.NewSeedRepositoryFactory(seed.Hackathons(), seed.Teammates())
	}

	// 5. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/updates.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 6. Services
	tokenRepo := memory.NewTokenRepository(time.Hour * time.Duration(cfg.Auth.TokenExpiryHour))

	authService := service.NewAuthService(sessionStore, tokenRepo, cfg.Auth, natsPub, sysLogger)
	userService := service.NewUserService(sessionStore)
	chatService := service.NewChatService(chatStore, sessionStore, natsPub, sysLogger)
	hackathonService := service.NewHackathonService(uowFactory)
	teamFinderService := service.NewTeamFinderService(uowFactory)

	updatesService := service.NewUpdatesService(pubSub, natsSub, wsHub, wsLogger)

	// 7. Handlers & controllers
	updatesHandler := handler.NewUpdatesHandler(wsHub, cfg.Auth.JWTSecret, wsLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		ChatController:       controller.NewChatController(chatService),
		HackathonController:  controller.NewHackathonController(hackathonService),
		TeamFinderController: controller.NewTeamFinderController(teamFinderService),

		UpdatesHandler: updatesHandler,
		WebSocketHub:   wsHub,
		UpdatesService: updatesService,

		TokenRepository: tokenRepo,

		SessionStore: sessionStore,
		ChatStore:    chatStore,
	}
}
