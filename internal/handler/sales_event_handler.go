package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/service"
	internalWS "digital-sales-be/internal/websocket"
	"digital-sales-be/pkg/events"
	pktNats "digital-sales-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SalesEventHandler bridges the NATS event stream into the process: deal
// closures go to the reward service, workflow kickoffs go onto the pipeline
// bus, and session updates fan out to websocket subscribers.
type SalesEventHandler struct {
	subscriber    *pktNats.Subscriber
	rewardService service.IRewardService
	pipeline      service.IPublisherService
	hub           *internalWS.Hub
	logger        logger.ILogger
}

func NewSalesEventHandler(
	subscriber *pktNats.Subscriber,
	rewardService service.IRewardService,
	pipeline service.IPublisherService,
	hub *internalWS.Hub,
	log logger.ILogger,
) *SalesEventHandler {
	return &SalesEventHandler{
		subscriber:    subscriber,
		rewardService: rewardService,
		pipeline:      pipeline,
		hub:           hub,
		logger:        log,
	}
}

// Register subscribes the durable consumers. Call once at startup.
func (h *SalesEventHandler) Register() error {
	if err := h.subscriber.Subscribe("events."+events.TypeDealClosed, "reward-processor", h.handleDealClosed); err != nil {
		return fmt.Errorf("failed to subscribe to deal closures: %w", err)
	}
	if err := h.subscriber.Subscribe("events."+events.TypeWorkflowInitiated, "workflow-pipeline", h.handleWorkflowInitiated); err != nil {
		return fmt.Errorf("failed to subscribe to workflow events: %w", err)
	}
	if err := h.subscriber.Subscribe("events."+events.TypeSessionUpdated, "session-broadcast", h.handleSessionUpdated); err != nil {
		return fmt.Errorf("failed to subscribe to session updates: %w", err)
	}
	return nil
}

func (h *SalesEventHandler) handleDealClosed(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	closure := service.DealClosure{
		SessionID:      stringField(payload, "session_id"),
		ConversationID: stringField(payload, "conversation_id"),
		ProspectID:     stringField(payload, "prospect_id"),
		CustomerEmail:  stringField(payload, "customer_email"),
		SalesAgentID:   stringField(payload, "sales_agent_id"),
	}
	if amount, ok := payload["amount"].(float64); ok {
		closure.Amount = amount
	}

	h.logger.Info("SalesEventHandler", "Processing deal closure", map[string]interface{}{
		"session_id": closure.SessionID,
		"amount":     closure.Amount,
	})

	res, err := h.rewardService.ProcessDealClosure(ctx, closure)
	if err != nil {
		return err
	}

	if h.hub != nil {
		h.hub.SendToSession(closure.SessionID, "deal_closed", res)
	}
	return nil
}

func (h *SalesEventHandler) handleWorkflowInitiated(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	msg := dto.WorkflowInitiatedMessage{
		ProfileId:    stringField(payload, "profile_id"),
		BusinessGoal: stringField(payload, "business_goal"),
		TargetMarket: stringField(payload, "target_market"),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return h.pipeline.Publish(ctx, data)
}

func (h *SalesEventHandler) handleSessionUpdated(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	sessionID := stringField(payload, "session_id")
	if h.hub != nil {
		h.hub.SendToSession(sessionID, "session_update", payload)
	}
	return nil
}

// ServeWs upgrades a dashboard connection. The session_id query parameter
// scopes the stream; absent, the client watches every session.
func (h *SalesEventHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = internalWS.SessionWildcard
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SalesEventHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("SalesEventHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func stringField(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
