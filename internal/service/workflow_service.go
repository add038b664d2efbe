package service

import (
	"context"
	"fmt"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/repository/memory"
	"digital-sales-be/internal/repository/specification"
	"digital-sales-be/internal/repository/unitofwork"
)

type IWorkflowService interface {
	Status(ctx context.Context) (*dto.WorkflowStatusResponse, error)
	Analytics(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type workflowService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	logger     logger.ILogger
}

func NewWorkflowService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository, log logger.ILogger) IWorkflowService {
	return &workflowService{
		uowFactory: uowFactory,
		sessions:   sessions,
		logger:     log,
	}
}

// Status summarizes how far the automated sales workflow has progressed,
// aggregated from stored rows and live sessions.
func (s *workflowService) Status(ctx context.Context) (*dto.WorkflowStatusResponse, error) {
	res := &dto.WorkflowStatusResponse{
		ResearchStatus: "pending",
		LastActivity:   "Waiting for onboarding",
		NextAction:     "Complete the onboarding interview",
	}

	if s.sessions != nil {
		res.ConversationsActive = int64(len(s.sessions.All()))
	}
	if s.uowFactory == nil {
		return res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.BusinessProfileRepository().FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	res.OnboardingCompleted = profile != nil && profile.Complete()

	prospectCount, err := uow.ProspectRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	if prospectCount > 0 {
		res.ResearchStatus = "completed"
	} else if res.OnboardingCompleted {
		res.ResearchStatus = "in_progress"
	}

	if res.EmailsGenerated, err = uow.ColdEmailRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.EmailsSent, err = uow.ColdEmailRepository().Count(ctx, specification.ByStatus{Status: entity.EmailStatusSent}); err != nil {
		return nil, err
	}
	if res.DealsInProgress, err = uow.ConversationRepository().Count(ctx, specification.ByStatus{Status: entity.ConversationStatusActive}); err != nil {
		return nil, err
	}

	switch {
	case res.EmailsSent > 0:
		res.LastActivity = "Email sent to prospect"
		res.NextAction = "Waiting for prospect responses"
	case res.EmailsGenerated > 0:
		res.LastActivity = "Cold emails generated"
		res.NextAction = "Sending email campaign"
	case prospectCount > 0:
		res.LastActivity = "Prospect research completed"
		res.NextAction = "Generating personalized cold emails"
	case res.OnboardingCompleted:
		res.LastActivity = "Onboarding completed"
		res.NextAction = "Researching prospects"
	}

	return res, nil
}

// Analytics aggregates funnel counters for the dashboard.
func (s *workflowService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	res := &dto.AnalyticsResponse{ConversionRate: "0%"}

	if s.sessions != nil {
		res.ActiveConversations = int64(len(s.sessions.All()))
	}
	if s.uowFactory == nil {
		return res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var err error
	if res.TotalProspects, err = uow.ProspectRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.EmailsGenerated, err = uow.ColdEmailRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.EmailsSent, err = uow.ColdEmailRepository().Count(ctx, specification.ByStatus{Status: entity.EmailStatusSent}); err != nil {
		return nil, err
	}
	if res.DealsClosed, err = uow.DealRepository().Count(ctx); err != nil {
		return nil, err
	}

	if res.TotalProspects > 0 {
		rate := float64(res.DealsClosed) / float64(res.TotalProspects) * 100
		res.ConversionRate = fmt.Sprintf("%.1f%%", rate)
	}

	return res, nil
}
