package bootstrap

import (
	"context"
	"log"

	"crm-hub-be/internal/config"
	"crm-hub-be/internal/controller"
	"crm-hub-be/internal/handler"
	"crm-hub-be/internal/pkg/logger"
	"crm-hub-be/internal/pkg/mailer"
	"crm-hub-be/internal/repository/memory"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/internal/service"
	"crm-hub-be/internal/websocket"

	pktNats "crm-hub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ContactController   controller.IContactController
	CompanyController   controller.ICompanyController
	DealController      controller.IDealController
	TicketController    controller.ITicketController
	CampaignController  controller.ICampaignController
	ArticleController   controller.IArticleController
	ChatController      controller.IChatController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ChatSyncService service.IChatSyncService

	// WebSockets
	ChatStreamHandler *handler.ChatStreamHandler
	WebSocketHub      *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS mirrors change events across instances; single-node deployments
	// run fine without it.
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
	}

	// WebSocket Hub
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	wsHub := websocket.NewHub(rdb, chatLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, natsPub)
	dashboardCache := memory.NewDashboardCache(cfg.App.DashboardCacheTTL)

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	contactService := service.NewContactService(uowFactory)
	companyService := service.NewCompanyService(uowFactory)
	dealService := service.NewDealService(uowFactory)
	ticketService := service.NewTicketService(uowFactory)
	campaignService := service.NewCampaignService(uowFactory, emailService, sysLogger)
	articleService := service.NewArticleService(uowFactory)
	chatService := service.NewChatService(uowFactory, publisherService, chatLogger)
	dashboardService := service.NewDashboardService(uowFactory, dashboardCache)

	chatSyncService := service.NewChatSyncService(chatService, wsHub, pubSub, natsSub, chatLogger)

	// WebSocket Handler
	chatStreamHandler := handler.NewChatStreamHandler(wsHub, chatLogger)

	// 4. Controllers
	return &Container{
		ChatStreamHandler:   chatStreamHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		ContactController:   controller.NewContactController(contactService),
		CompanyController:   controller.NewCompanyController(companyService),
		DealController:      controller.NewDealController(dealService),
		TicketController:    controller.NewTicketController(ticketService),
		CampaignController:  controller.NewCampaignController(campaignService),
		ArticleController:   controller.NewArticleController(articleService),
		ChatController:      controller.NewChatController(chatService),
		DashboardController: controller.NewDashboardController(dashboardService),

		ChatSyncService: chatSyncService,
	}
}
