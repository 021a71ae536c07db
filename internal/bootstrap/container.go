package bootstrap

import (
	"context"
	"log"

	"consultly-be/internal/config"
	"consultly-be/internal/controller"
	"consultly-be/internal/handler"
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/logger"
	"consultly-be/internal/pkg/mailer"
	"consultly-be/internal/repository/unitofwork"
	"consultly-be/internal/service"
	"consultly-be/internal/websocket"
	pktNats "consultly-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PromptController    controller.IPromptController
	PostController      controller.IPostController
	WorkflowController  controller.IWorkflowController
	KnowledgeController controller.IKnowledgeController
	ContactController   controller.IContactController
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	DashboardController controller.IDashboardController

	// Background services (exposed for main.go to run)
	IndexerService service.IIndexerService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// File-ingestion entry points reused by the ingest binary.
	PostService      service.IPostService
	KnowledgeService service.IKnowledgeService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	policy := authz.NewOwnerPolicy(cfg.Auth.OwnerEmail)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. In-process event bus for the reindex pipeline
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

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

	// WebSocket hub for the admin activity feed
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Ingest.ReindexTopic, pubSub)
	indexerService := service.NewIndexerService(pubSub, uowFactory, cfg.Ingest)

	promptService := service.NewPromptService(uowFactory)
	postService := service.NewPostService(uowFactory, natsPub, rdb)
	workflowService := service.NewWorkflowService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, cfg.Ingest)
	contactService := service.NewContactService(uowFactory, emailService, natsPub, cfg.Auth.OwnerEmail)
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth)
	dashboardService := service.NewDashboardService(uowFactory)

	// 3.5 Notification system
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		PromptController:    controller.NewPromptController(promptService, policy),
		PostController:      controller.NewPostController(postService, policy),
		WorkflowController:  controller.NewWorkflowController(workflowService, policy),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService, policy),
		ContactController:   controller.NewContactController(contactService, policy),
		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService),
		DashboardController: controller.NewDashboardController(dashboardService, sysLogger, policy),

		IndexerService: indexerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		PostService:      postService,
		KnowledgeService: knowledgeService,
	}
}
