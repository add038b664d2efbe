package service

import (
	"context"
	"fmt"
	"time"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/repository/specification"
	"digital-sales-be/internal/repository/unitofwork"
	"digital-sales-be/pkg/crossmint"

	"github.com/google/uuid"
)

// CrossmintGateway is the slice of the Crossmint client the reward flow
// needs. *crossmint.Client satisfies it.
type CrossmintGateway interface {
	Enabled() bool
	ProcessDealPayment(ctx context.Context, dealID string, amount float64, customerEmail, salesAgentID string) (*crossmint.DealPaymentResult, error)
}

// DealClosure is the payload of a closed-deal event.
type DealClosure struct {
	SessionID      string
	ConversationID string
	ProspectID     string
	Amount         float64
	CustomerEmail  string
	SalesAgentID   string
}

type IRewardService interface {
	ProcessDealClosure(ctx context.Context, closure DealClosure) (*dto.DealPaymentResponse, error)
	ProcessDealPayment(ctx context.Context, req *dto.DealPaymentRequest) (*dto.DealPaymentResponse, error)
}

type rewardService struct {
	uowFactory unitofwork.RepositoryFactory
	crossmint  CrossmintGateway
	logger     logger.ILogger
}

func NewRewardService(uowFactory unitofwork.RepositoryFactory, gateway CrossmintGateway, log logger.ILogger) IRewardService {
	return &rewardService{
		uowFactory: uowFactory,
		crossmint:  gateway,
		logger:     log,
	}
}

// ProcessDealClosure handles a closed-deal event end to end: it records the
// deal, runs the Crossmint payment and reward legs, and stores the outcome.
// Reward processing must be idempotent per conversation since the event bus
// may redeliver.
func (s *rewardService) ProcessDealClosure(ctx context.Context, closure DealClosure) (*dto.DealPaymentResponse, error) {
	dealId := uuid.New()

	conversationId := resolveUUID(closure.SessionID)
	if conversationId != uuid.Nil && s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		existing, err := uow.DealRepository().FindByConversationId(ctx, conversationId)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.logger.Info("RewardService", "Deal already processed, skipping", map[string]interface{}{
				"conversation_id": conversationId.String(),
			})
			return &dto.DealPaymentResponse{
				Status:           existing.Status,
				DealId:           existing.Id.String(),
				TotalAmount:      existing.Amount,
				CommissionAmount: existing.CommissionAmount,
				Message:          "Deal already processed",
			}, nil
		}
	}

	deal := &entity.Deal{
		Id:             dealId,
		ConversationId: conversationId,
		ProspectId:     resolveUUID(closure.ProspectID),
		Amount:         closure.Amount,
		CustomerEmail:  closure.CustomerEmail,
		SalesAgentId:   closure.SalesAgentID,
		Status:         entity.DealStatusPending,
		CreatedAt:      time.Now(),
	}

	result, payErr := s.crossmint.ProcessDealPayment(ctx, dealId.String(), closure.Amount, closure.CustomerEmail, closure.SalesAgentID)

	switch {
	case payErr != nil:
		deal.Status = entity.DealStatusFailed
	case result.Status == crossmint.StatusDisabled:
		deal.Status = entity.DealStatusDisabled
	default:
		deal.Status = entity.DealStatusRewarded
		deal.CommissionAmount = result.CommissionAmount
		if result.Payment != nil {
			deal.PaymentId = result.Payment.PaymentID
		}
		if result.Commission != nil {
			deal.TransactionHash = result.Commission.TransactionHash
		}
	}

	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.DealRepository().Create(ctx, deal); err != nil {
			s.logger.Error("RewardService", "Failed to store deal", map[string]interface{}{
				"deal_id": dealId.String(),
				"error":   err.Error(),
			})
		}
		s.markProspectClosed(ctx, uow, deal.ProspectId)
	}

	if payErr != nil {
		return nil, fmt.Errorf("deal payment failed: %w", payErr)
	}

	return &dto.DealPaymentResponse{
		Status:           deal.Status,
		DealId:           dealId.String(),
		TotalAmount:      deal.Amount,
		CommissionAmount: deal.CommissionAmount,
		Message:          result.Message,
	}, nil
}

// ProcessDealPayment is the REST entry point for manually settling a deal.
func (s *rewardService) ProcessDealPayment(ctx context.Context, req *dto.DealPaymentRequest) (*dto.DealPaymentResponse, error) {
	result, err := s.crossmint.ProcessDealPayment(ctx, req.DealId, req.Amount, req.CustomerEmail, req.SalesAgentId)
	if err != nil {
		return nil, fmt.Errorf("deal payment failed: %w", err)
	}

	return &dto.DealPaymentResponse{
		Status:           result.Status,
		DealId:           req.DealId,
		TotalAmount:      req.Amount,
		CommissionAmount: result.CommissionAmount,
		Message:          result.Message,
	}, nil
}

func (s *rewardService) markProspectClosed(ctx context.Context, uow unitofwork.UnitOfWork, prospectId uuid.UUID) {
	if prospectId == uuid.Nil {
		return
	}
	prospect, err := uow.ProspectRepository().FindOne(ctx, specification.ByID{ID: prospectId})
	if err != nil || prospect == nil {
		return
	}
	prospect.DealStage = entity.DealStageClosed
	if err := uow.ProspectRepository().Update(ctx, prospect); err != nil {
		s.logger.Warn("RewardService", "Failed to mark prospect closed", map[string]interface{}{
			"prospect_id": prospectId.String(),
			"error":       err.Error(),
		})
	}
}

// resolveUUID parses an identifier that may not be a UUID. Session ids are
// generated as UUIDs; foreign ids fall back to nil.
func resolveUUID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return parsed
}
