package service

import (
	"context"
	"strings"
	"time"

	"digital-sales-be/internal/constant"
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/repository/unitofwork"
	"digital-sales-be/pkg/events"
	"digital-sales-be/pkg/utils"

	"github.com/google/uuid"
)

type IOnboardingService interface {
	Converse(ctx context.Context, req *dto.OnboardingTurnRequest) (*dto.OnboardingTurnResponse, error)
	Complete(ctx context.Context, req *dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error)
	CurrentProfile(ctx context.Context) (*dto.BusinessProfileResponse, error)
	Status(ctx context.Context) (*dto.OnboardingStatusResponse, error)
}

type onboardingService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  EventPublisher
	logger     logger.ILogger
}

func NewOnboardingService(uowFactory unitofwork.RepositoryFactory, publisher EventPublisher, log logger.ILogger) IOnboardingService {
	return &onboardingService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

// Converse drives the staged business interview. The frontend sends
// "start_conversation" as the opening turn; every later turn is matched
// against topic keyword tables to decide which question is still missing.
func (s *onboardingService) Converse(ctx context.Context, req *dto.OnboardingTurnRequest) (*dto.OnboardingTurnResponse, error) {
	var agentResponse string

	if req.Message == "start_conversation" {
		agentResponse = constant.OnboardingGreeting
	} else {
		// State flags from the frontend win; keyword scanning over the whole
		// interview is the backup when the client tracks nothing.
		allUserText := collectUserText(req)

		hasBusiness := req.ConversationState.AskedAboutBusiness || utils.ContainsAny(allUserText, constant.BusinessKeywords)
		hasTarget := req.ConversationState.AskedAboutTarget || utils.ContainsAny(allUserText, constant.TargetKeywords)
		hasValue := req.ConversationState.AskedAboutValue || utils.ContainsAny(allUserText, constant.ValueKeywords)

		switch {
		case !hasBusiness:
			agentResponse = constant.OnboardingAskBusiness
		case !hasTarget:
			agentResponse = constant.OnboardingAskTarget
		case !hasValue:
			agentResponse = constant.OnboardingAskValue
		default:
			agentResponse = constant.OnboardingComplete
		}
	}

	complete := agentResponse == constant.OnboardingComplete

	return &dto.OnboardingTurnResponse{
		Status:               "success",
		AgentResponse:        agentResponse,
		NextQuestion:         !complete,
		ConversationComplete: complete,
	}, nil
}

// collectUserText joins every prospect-side turn of the interview plus the
// current message into one lowercase haystack for keyword matching.
func collectUserText(req *dto.OnboardingTurnRequest) string {
	var parts []string
	for _, msg := range req.History {
		if msg.Sender == "user" || msg.Sender == constant.MessageSenderProspect {
			parts = append(parts, strings.ToLower(msg.Content))
		}
	}
	parts = append(parts, strings.ToLower(req.Message))
	return strings.Join(parts, " ")
}

// Complete stores the business profile and kicks off the automated sales
// workflow by publishing a workflow event for the pipeline consumer.
func (s *onboardingService) Complete(ctx context.Context, req *dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error) {
	s.logger.Info("OnboardingService", "Completing onboarding", map[string]interface{}{
		"business_goal": req.BusinessGoal,
	})

	now := time.Now()
	profile := &entity.BusinessProfile{
		Id:                    uuid.New(),
		BusinessGoal:          req.BusinessGoal,
		ProductDescription:    req.ProductDescription,
		TargetMarket:          req.TargetMarket,
		ValueProposition:      req.ValueProposition,
		PricingModel:          req.PricingModel,
		WorkflowInitiated:     true,
		OnboardingCompletedAt: &now,
	}

	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.BusinessProfileRepository().Create(ctx, profile); err != nil {
			s.logger.Error("OnboardingService", "Failed to store business profile", map[string]interface{}{
				"error": err.Error(),
			})
			return nil, err
		}
	}

	workflowInitiated := true
	if s.publisher != nil {
		event := events.NewWorkflowInitiatedEvent(profile.Id.String(), profile.BusinessGoal, profile.TargetMarket)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("OnboardingService", "Failed to publish workflow event", map[string]interface{}{
				"error": err.Error(),
			})
			workflowInitiated = false
		}
	}

	return &dto.CompleteOnboardingResponse{
		Status:            "success",
		Message:           "Onboarding completed! Your AI sales agents are now working automatically.",
		WorkflowInitiated: workflowInitiated,
		BusinessInfo:      profileToDTO(profile),
		NextSteps: []string{
			"Prospect research initiated",
			"Email campaigns will be generated",
			"Voice conversations will be ready for incoming prospects",
		},
	}, nil
}

// CurrentProfile returns the latest stored business profile, nil when the
// workspace never onboarded.
func (s *onboardingService) CurrentProfile(ctx context.Context) (*dto.BusinessProfileResponse, error) {
	if s.uowFactory == nil {
		return nil, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.BusinessProfileRepository().FindLatest(ctx)
	if err != nil || profile == nil {
		return nil, err
	}
	res := profileToDTO(profile)
	return &res, nil
}

// Status tells the dashboard whether to redirect into onboarding. Completion
// means every core interview field is filled, not merely that a row exists.
func (s *onboardingService) Status(ctx context.Context) (*dto.OnboardingStatusResponse, error) {
	profile, err := s.CurrentProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &dto.OnboardingStatusResponse{OnboardingCompleted: false}, nil
	}
	completed := profile.BusinessGoal != "" &&
		profile.ProductDescription != "" &&
		profile.TargetMarket != "" &&
		profile.ValueProposition != ""
	return &dto.OnboardingStatusResponse{
		OnboardingCompleted: completed,
		BusinessInfo:        profile,
	}, nil
}

func profileToDTO(profile *entity.BusinessProfile) dto.BusinessProfileResponse {
	return dto.BusinessProfileResponse{
		Id:                    profile.Id,
		BusinessGoal:          profile.BusinessGoal,
		ProductDescription:    profile.ProductDescription,
		TargetMarket:          profile.TargetMarket,
		ValueProposition:      profile.ValueProposition,
		PricingModel:          profile.PricingModel,
		WorkflowInitiated:     profile.WorkflowInitiated,
		OnboardingCompletedAt: profile.OnboardingCompletedAt,
	}
}

// IndustryFromTargetMarket maps a free-form target market description to a
// coarse industry bucket used by prospect research.
func IndustryFromTargetMarket(targetMarket string) string {
	lower := strings.ToLower(targetMarket)
	switch {
	case strings.Contains(lower, "saas") || strings.Contains(lower, "software"):
		return "Technology"
	case strings.Contains(lower, "fintech") || strings.Contains(lower, "finance"):
		return "FinTech"
	case strings.Contains(lower, "healthcare") || strings.Contains(lower, "medical"):
		return "Healthcare"
	case strings.Contains(lower, "ecommerce") || strings.Contains(lower, "retail"):
		return "E-commerce"
	default:
		return "Technology"
	}
}

// KeywordsFromBusinessGoal pulls research keywords out of a business goal.
var businessGoalKeywords = []string{"automation", "ai", "sales", "crm", "marketing"}

func KeywordsFromBusinessGoal(businessGoal string) []string {
	matched := utils.MatchedKeywords(businessGoal, businessGoalKeywords)
	if len(matched) == 0 {
		return []string{"business", "growth"}
	}
	return matched
}
