package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"digital-sales-be/internal/constant"
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/repository/memory"
	"digital-sales-be/internal/repository/specification"
	"digital-sales-be/internal/repository/unitofwork"
	"digital-sales-be/pkg/audio"
	"digital-sales-be/pkg/events"
	"digital-sales-be/pkg/simulate"
	"digital-sales-be/pkg/store"
	"digital-sales-be/pkg/upstream"

	"github.com/google/uuid"
)

// EventPublisher is the slice of the NATS publisher the services need.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TypingSink receives simulated partial agent messages for live display.
// Wired to the websocket hub; nil disables streaming.
type TypingSink func(sessionID, partial string)

type IConversationService interface {
	StartConversation(ctx context.Context, req *dto.StartConversationRequest) (*dto.StartConversationResponse, error)
	SendMessage(ctx context.Context, sessionID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	EndSession(ctx context.Context, sessionID string) error
	SetMuted(muted bool)
	Muted() bool
}

type conversationService struct {
	sessions   *memory.SessionRepository
	gateway    AgentGateway
	probe      IProbeService
	uowFactory unitofwork.RepositoryFactory
	publisher  EventPublisher
	audio      *audio.Adapter
	clock      simulate.Clock
	typingSink TypingSink
	seed       int64
	agentID    string
	logger     logger.ILogger

	mu         sync.Mutex
	simulators map[string]*simulate.Simulator
	// conversationIds maps live session id to its persistent conversation row.
	conversationIds map[string]uuid.UUID
}

func NewConversationService(
	sessions *memory.SessionRepository,
	gateway AgentGateway,
	probe IProbeService,
	uowFactory unitofwork.RepositoryFactory,
	publisher EventPublisher,
	audioAdapter *audio.Adapter,
	clock simulate.Clock,
	typingSink TypingSink,
	seed int64,
	agentID string,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions:        sessions,
		gateway:         gateway,
		probe:           probe,
		uowFactory:      uowFactory,
		publisher:       publisher,
		audio:           audioAdapter,
		clock:           clock,
		typingSink:      typingSink,
		seed:            seed,
		agentID:         agentID,
		logger:          log,
		simulators:      make(map[string]*simulate.Simulator),
		conversationIds: make(map[string]uuid.UUID),
	}
}

func (s *conversationService) StartConversation(ctx context.Context, req *dto.StartConversationRequest) (*dto.StartConversationResponse, error) {
	sess := store.NewSession(uuid.NewString(), req.ProspectId)
	sess.SetDemoMode(req.DemoMode)

	seedMessage := req.UserMessage
	if seedMessage == "" {
		seedMessage = constant.SeedProspectMessage
	}
	sess.AppendMessage(store.Message{
		ID:        uuid.NewString(),
		Sender:    store.SenderProspect,
		Content:   seedMessage,
		Timestamp: time.Now(),
	})

	res := &dto.StartConversationResponse{
		Status:    "conversation_started",
		SessionId: sess.ID,
	}

	if req.DemoMode {
		s.startDemo(sess)
		res.InitialResponse = constant.ConversationGreeting
	} else if !s.backendReachable(ctx) {
		s.logger.Warn("ConversationService", "Agent backend unreachable, starting in demo mode", map[string]interface{}{
			"session_id": sess.ID,
		})
		sess.SetDemoMode(true)
		s.startDemo(sess)
		res.InitialResponse = constant.ConversationGreeting
	} else {
		upstreamRes, err := s.gateway.StartConversation(ctx, &upstream.StartConversationRequest{
			ProspectID:  req.ProspectId,
			UserMessage: seedMessage,
		})
		if err != nil {
			s.logger.Warn("ConversationService", "Start failed upstream, degrading to demo mode", map[string]interface{}{
				"session_id": sess.ID,
				"error":      err.Error(),
			})
			sess.SetDemoMode(true)
			s.startDemo(sess)
			res.InitialResponse = constant.ConversationGreeting
		} else {
			sess.SetConversationID(upstreamRes.ConversationID)
			sess.SetStage(store.StageActive)
			res.ConversationId = upstreamRes.ConversationID
			res.InitialResponse = upstreamRes.InitialResponse
			res.AudioUrl = upstreamRes.AudioURL
			s.appendAgentTurn(ctx, sess, upstreamRes.InitialResponse, upstreamRes.AudioURL)
		}
	}

	s.sessions.Save(sess)
	s.persistStart(ctx, sess, seedMessage, res.InitialResponse)
	s.publishSessionUpdate(ctx, sess)

	res.Session = sessionToDTO(sess)
	return res, nil
}

// backendReachable runs a fresh connectivity check before any upstream
// attempt. A live session request also resumes polling that forced demo
// mode paused. Without a probe the gateway call itself is the check.
func (s *conversationService) backendReachable(ctx context.Context) bool {
	if s.probe == nil {
		return true
	}
	s.probe.Resume()
	return s.probe.Probe(ctx).AgentStatus == "connected"
}

// startDemo runs the simulated connection sequence and types the greeting.
func (s *conversationService) startDemo(sess *store.Session) {
	sim := simulate.New(s.clock, s.seed)
	s.mu.Lock()
	s.simulators[sess.ID] = sim
	s.mu.Unlock()

	sim.SimulateConnectionSequence(simulate.DefaultConnectionSequence, constant.ConnectionStageStep, func(stage simulate.ConnectionStage) {
		switch stage.Stage {
		case "connected":
			sess.SetStage(store.StageActive)
		case "partial":
			sess.SetStage(store.StageConnecting)
		default:
			sess.SetStage(store.StageDisconnected)
		}
		s.publishSessionUpdate(context.Background(), sess)
	})

	sim.SimulateTyping(constant.ConversationGreeting, constant.TypingInterval, func(partial string) {
		if s.typingSink != nil {
			s.typingSink(sess.ID, partial)
		}
	}, func() {
		s.appendAgentTurn(context.Background(), sess, constant.ConversationGreeting, "")
	})
}

func (s *conversationService) SendMessage(ctx context.Context, sessionID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Message)
	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.TornDown() || text == "" {
		// Stale dashboards and empty sends are ignored, not failed.
		res := &dto.SendMessageResponse{Status: "ignored"}
		if ok {
			res.Session = sessionToDTO(sess)
		}
		return res, nil
	}

	// Optimistic local mutations happen before any network round trip.
	sess.AppendMessage(store.Message{
		ID:        uuid.NewString(),
		Sender:    store.SenderProspect,
		Content:   text,
		Timestamp: time.Now(),
	})
	sess.BumpEngagement(constant.EngagementStep)

	res := &dto.SendMessageResponse{Status: "success"}
	snap := sess.Snapshot()

	switch {
	case snap.DemoMode:
		s.demoReply(sess)
	case s.probe != nil && s.probe.Status().AgentStatus != "connected":
		// Known-dead backend: answer from the canned pool instead of a
		// doomed round trip.
		s.demoReply(sess)
	default:
		upstreamRes, err := s.gateway.SendMessage(ctx, snap.ConversationID, &upstream.MessageRequest{Message: text})
		switch {
		case err != nil:
			s.logger.Warn("ConversationService", "Message failed upstream", map[string]interface{}{
				"session_id": sess.ID,
				"error":      err.Error(),
			})
			res.Status = "error"
			res.AgentResponse = constant.SendFallbackResponse
			s.appendAgentTurn(ctx, sess, constant.SendFallbackResponse, "")
		case upstreamRes.AgentResponse == "":
			res.AgentResponse = constant.ErrorFallbackResponse
			s.appendAgentTurn(ctx, sess, constant.ErrorFallbackResponse, "")
		default:
			res.AgentResponse = upstreamRes.AgentResponse
			res.AudioUrl = upstreamRes.AudioURL
			s.appendAgentTurn(ctx, sess, upstreamRes.AgentResponse, upstreamRes.AudioURL)
		}
	}

	s.persistMessageTurn(ctx, sess, text, res.AgentResponse)
	s.publishSessionUpdate(ctx, sess)

	res.Session = sessionToDTO(sess)
	return res, nil
}

// demoReply schedules a canned agent reply after a human-feeling delay.
func (s *conversationService) demoReply(sess *store.Session) {
	s.mu.Lock()
	sim := s.simulators[sess.ID]
	s.mu.Unlock()
	if sim == nil {
		sim = simulate.New(s.clock, s.seed)
		s.mu.Lock()
		s.simulators[sess.ID] = sim
		s.mu.Unlock()
	}

	sim.SimulateAgentReply(constant.SalesResponses, constant.DemoReplyDelay, func(reply string) {
		s.appendAgentTurn(context.Background(), sess, reply, "")
		s.publishSessionUpdate(context.Background(), sess)
	})
}

// classifyDealSignals inspects an agent turn for deal language and fires
// the one-shot reward flow on the first closure cue.
func (s *conversationService) classifyDealSignals(ctx context.Context, sess *store.Session, text string) {
	lower := strings.ToLower(text)

	for _, cue := range constant.InterestCues {
		if strings.Contains(lower, cue) {
			sess.RaiseDealPotential(store.DealPotentialMedium)
			break
		}
	}

	for _, cue := range constant.DealClosureCues {
		if !strings.Contains(lower, cue) {
			continue
		}
		firstHigh := sess.RaiseDealPotential(store.DealPotentialHigh)
		if firstHigh && sess.MarkRewardTriggered() && s.publisher != nil {
			snap := sess.Snapshot()
			event := events.NewDealClosedEvent(
				snap.ID,
				snap.ConversationID,
				snap.ProspectID,
				constant.DefaultDealAmount,
				"", // customer email resolved by the reward consumer
				s.agentID,
			)
			if err := s.publisher.Publish(ctx, event); err != nil {
				s.logger.Error("ConversationService", "Failed to publish deal closed event", map[string]interface{}{
					"session_id": sess.ID,
					"error":      err.Error(),
				})
			}
		}
		break
	}
}

// appendAgentTurn records an agent message, scans it for deal cues and
// speaks it.
func (s *conversationService) appendAgentTurn(ctx context.Context, sess *store.Session, content, audioRef string) {
	appended := sess.AppendMessage(store.Message{
		ID:        uuid.NewString(),
		Sender:    store.SenderAgent,
		Content:   content,
		Timestamp: time.Now(),
		AudioRef:  audioRef,
	})
	if !appended {
		return
	}
	s.classifyDealSignals(ctx, sess, content)
	if s.audio != nil {
		s.audio.Play(ctx, audioRef, content)
	}
}

func (s *conversationService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil
	}
	res := sessionToDTO(sess)
	return &res, nil
}

// EndSession tears the session down. Pending simulator timers are cancelled
// before state is discarded so no callback lands afterwards.
func (s *conversationService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sim := s.simulators[sessionID]
	delete(s.simulators, sessionID)
	convID := s.conversationIds[sessionID]
	delete(s.conversationIds, sessionID)
	s.mu.Unlock()

	if sim != nil {
		sim.Cancel()
	}
	if s.audio != nil {
		s.audio.Stop()
	}

	sess, ok := s.sessions.Get(sessionID)
	if ok {
		s.persistEnd(ctx, sess, convID)
	}
	s.sessions.Delete(sessionID)
	return nil
}

func (s *conversationService) SetMuted(muted bool) {
	if s.audio != nil {
		s.audio.SetMuted(muted)
	}
}

func (s *conversationService) Muted() bool {
	return s.audio != nil && s.audio.Muted()
}

func (s *conversationService) publishSessionUpdate(ctx context.Context, sess *store.Session) {
	if s.publisher == nil {
		return
	}
	snap := sess.Snapshot()
	event := events.NewSessionUpdatedEvent(snap.ID, snap.Stage, snap.EngagementScore, snap.DealPotential)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("ConversationService", "Failed to publish session update", map[string]interface{}{
			"session_id": snap.ID,
			"error":      err.Error(),
		})
	}
}

// Persistence is best effort: conversation history loss must never break a
// live session.

func (s *conversationService) persistStart(ctx context.Context, sess *store.Session, prospectMessage, agentMessage string) {
	if s.uowFactory == nil {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	snap := sess.Snapshot()

	prospectId, err := uuid.Parse(snap.ProspectID)
	if err != nil {
		prospectId = uuid.Nil
	}

	conversation := &entity.Conversation{
		Id:              uuid.New(),
		ProspectId:      prospectId,
		UpstreamId:      snap.ConversationID,
		Status:          entity.ConversationStatusActive,
		EngagementScore: snap.EngagementScore,
		DealPotential:   snap.DealPotential,
		StartedAt:       time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		s.logger.Error("ConversationService", "Failed to persist conversation", map[string]interface{}{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.conversationIds[sess.ID] = conversation.Id
	s.mu.Unlock()

	messages := []*entity.ConversationMessage{{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         store.SenderProspect,
		Content:        prospectMessage,
		MessageType:    "text",
	}}
	if agentMessage != "" {
		messages = append(messages, &entity.ConversationMessage{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Sender:         store.SenderAgent,
			Content:        agentMessage,
			MessageType:    "text",
		})
	}
	if err := uow.ConversationMessageRepository().CreateBatch(ctx, messages); err != nil {
		s.logger.Error("ConversationService", "Failed to persist opening messages", map[string]interface{}{"error": err.Error()})
	}
}

func (s *conversationService) persistMessageTurn(ctx context.Context, sess *store.Session, prospectMessage, agentMessage string) {
	if s.uowFactory == nil {
		return
	}
	s.mu.Lock()
	convID, ok := s.conversationIds[sess.ID]
	s.mu.Unlock()
	if !ok {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages := []*entity.ConversationMessage{{
		Id:             uuid.New(),
		ConversationId: convID,
		Sender:         store.SenderProspect,
		Content:        prospectMessage,
		MessageType:    "text",
	}}
	if agentMessage != "" {
		messages = append(messages, &entity.ConversationMessage{
			Id:             uuid.New(),
			ConversationId: convID,
			Sender:         store.SenderAgent,
			Content:        agentMessage,
			MessageType:    "text",
		})
	}
	if err := uow.ConversationMessageRepository().CreateBatch(ctx, messages); err != nil {
		s.logger.Error("ConversationService", "Failed to persist message turn", map[string]interface{}{"error": err.Error()})
		return
	}

	snap := sess.Snapshot()
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: convID})
	if err != nil || conversation == nil {
		return
	}
	conversation.EngagementScore = snap.EngagementScore
	conversation.DealPotential = snap.DealPotential
	conversation.DealClosed = snap.DealClosed
	conversation.RewardTriggered = snap.RewardTriggered
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		s.logger.Error("ConversationService", "Failed to update conversation state", map[string]interface{}{"error": err.Error()})
	}
}

func (s *conversationService) persistEnd(ctx context.Context, sess *store.Session, convID uuid.UUID) {
	if s.uowFactory == nil || convID == uuid.Nil {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: convID})
	if err != nil || conversation == nil {
		return
	}
	snap := sess.Snapshot()
	now := time.Now()
	conversation.Status = entity.ConversationStatusCompleted
	conversation.EngagementScore = snap.EngagementScore
	conversation.DealPotential = snap.DealPotential
	conversation.DealClosed = snap.DealClosed
	conversation.RewardTriggered = snap.RewardTriggered
	conversation.EndedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		s.logger.Error("ConversationService", "Failed to close conversation", map[string]interface{}{"error": err.Error()})
	}
}

func sessionToDTO(sess *store.Session) dto.SessionResponse {
	snap := sess.Snapshot()
	messages := make([]dto.MessageResponse, len(snap.Messages))
	for i, m := range snap.Messages {
		messages[i] = dto.MessageResponse{
			Id:        m.ID,
			Sender:    m.Sender,
			Content:   m.Content,
			Timestamp: m.Timestamp,
			AudioRef:  m.AudioRef,
		}
	}
	return dto.SessionResponse{
		Id:              snap.ID,
		ProspectId:      snap.ProspectID,
		ConversationId:  snap.ConversationID,
		Stage:           snap.Stage,
		DemoMode:        snap.DemoMode,
		EngagementScore: snap.EngagementScore,
		DealPotential:   snap.DealPotential,
		DealClosed:      snap.DealClosed,
		Messages:        messages,
	}
}
