package bootstrap

import (
	"context"
	"log"
	"time"

	"digital-sales-be/internal/config"
	"digital-sales-be/internal/constant"
	"digital-sales-be/internal/controller"
	"digital-sales-be/internal/handler"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/pkg/mailer"
	"digital-sales-be/internal/repository/memory"
	"digital-sales-be/internal/repository/unitofwork"
	"digital-sales-be/internal/service"
	"digital-sales-be/internal/websocket"
	"digital-sales-be/pkg/audio"
	"digital-sales-be/pkg/crossmint"
	"digital-sales-be/pkg/simulate"
	"digital-sales-be/pkg/upstream"

	pktNats "digital-sales-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController       controller.IHealthController
	ConversationController controller.IConversationController
	OnboardingController   controller.IOnboardingController
	ProspectController     controller.IProspectController
	EmailController        controller.IEmailController
	WorkflowController     controller.IWorkflowController
	RewardController       controller.IRewardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	ProbeService    service.IProbeService

	// WebSockets & Events
	SalesEventHandler *handler.SalesEventHandler
	WebSocketHub      *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	mailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-memory session storage for live conversations
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// The services take the publisher as an interface; keep it a true nil
	// when the connection failed so their nil checks hold.
	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
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
	wsLogger := logger.NewIsolatedLogger("logs/session_events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Upstream agent backend + connectivity probe
	agentClient := upstream.NewClient(cfg.Agent.BaseURL, cfg.Agent.Timeout)
	probeService := service.NewProbeService(agentClient, cfg.Agent.ProbeInterval, sysLogger)
	probeService.Start(context.Background())
	if cfg.Agent.DemoMode {
		// Forced demo runs without an upstream; polling it is pointless.
		// A live conversation request resumes the probe.
		probeService.Suspend()
	}

	audioAdapter := audio.NewAdapter(nil, nil)

	crossmintClient := crossmint.NewClient(crossmint.Config{
		APIKey:      cfg.Crossmint.APIKey,
		ProjectID:   cfg.Crossmint.ProjectID,
		Environment: cfg.Crossmint.Environment,
	})

	// 4. Services
	publisherService := service.NewPublisherService(constant.WorkflowTopic, pubSub)

	conversationService := service.NewConversationService(
		sessionRepo,
		agentClient,
		probeService,
		uowFactory,
		eventPublisher,
		audioAdapter,
		simulate.RealClock(),
		func(sessionID, partial string) {
			wsHub.SendToSession(sessionID, "typing", partial)
		},
		time.Now().UnixNano(),
		cfg.Agent.SalesAgentID,
		sysLogger,
	)

	onboardingService := service.NewOnboardingService(uowFactory, eventPublisher, sysLogger)
	prospectService := service.NewProspectService(uowFactory, sysLogger)
	emailService := service.NewColdEmailService(
		uowFactory,
		mailService,
		cfg.App.ClientURL,
		cfg.SMTP.TestRecipient,
		sysLogger,
	)
	workflowService := service.NewWorkflowService(uowFactory, sessionRepo, sysLogger)
	rewardService := service.NewRewardService(uowFactory, crossmintClient, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		constant.WorkflowTopic,
		prospectService,
		emailService,
		mailService,
		eventPublisher,
		cfg.SMTP.SummaryEmail,
	)

	// 5. Event Handler (NATS -> rewards, pipeline, websocket fan-out)
	salesEventHandler := handler.NewSalesEventHandler(natsSub, rewardService, publisherService, wsHub, wsLogger)
	if natsSub != nil {
		if err := salesEventHandler.Register(); err != nil {
			log.Printf("[WARN] Failed to register event subscriptions: %v", err)
		}
	}

	// 6. Controllers
	return &Container{
		HealthController:       controller.NewHealthController(probeService),
		ConversationController: controller.NewConversationController(conversationService, cfg.Agent.DemoMode),
		OnboardingController:   controller.NewOnboardingController(onboardingService),
		ProspectController:     controller.NewProspectController(prospectService),
		EmailController:        controller.NewEmailController(emailService),
		WorkflowController:     controller.NewWorkflowController(workflowService),
		RewardController:       controller.NewRewardController(rewardService),

		ConsumerService: consumerService,
		ProbeService:    probeService,

		SalesEventHandler: salesEventHandler,
		WebSocketHub:      wsHub,
	}
}
