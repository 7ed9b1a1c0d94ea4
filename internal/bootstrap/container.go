package bootstrap

import (
	"context"
	"log"

	"voicemart-be/internal/config"
	"voicemart-be/internal/controller"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/implementation"
	"voicemart-be/internal/repository/memory"
	"voicemart-be/internal/service"
	"voicemart-be/internal/websocket"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	CatalogController controller.ICatalogController
	CartController    controller.ICartController
	OrderController   controller.IOrderController
	FraudController   controller.IFraudController

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure
	// Redis is optional; the hub degrades to single-instance fanout without it.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/session_events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	catalogRepo := implementation.NewCatalogRepository(cfg.Data.CatalogFile, sysLogger)
	orderRepo := implementation.NewOrderRepository(cfg.Data.OrderFile, sysLogger)
	fraudCaseRepo := implementation.NewFraudCaseRepository(cfg.Data.FraudCasesFile, sysLogger)

	shoppingSessions := memory.NewShoppingSessionRepository()
	fraudSessions := memory.NewFraudSessionRepository()

	// 4. Services
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(catalogService, orderRepo, shoppingSessions, wsHub, sysLogger)
	orderService := service.NewOrderService(catalogService, orderRepo, shoppingSessions, wsHub, sysLogger, cfg.Order.StageDuration)
	fraudService := service.NewFraudService(fraudCaseRepo, fraudSessions, wsHub, sysLogger)

	// 5. Controllers
	return &Container{
		CatalogController: controller.NewCatalogController(catalogService),
		CartController:    controller.NewCartController(cartService),
		OrderController:   controller.NewOrderController(orderService),
		FraudController:   controller.NewFraudController(fraudService),

		WebSocketHub: wsHub,
		Logger:       sysLogger,
	}
}
