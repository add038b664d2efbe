package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/pkg/crossmint"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCrossmint struct {
	mu       sync.Mutex
	enabled  bool
	err      error
	calls    int
	lastDeal string
}

func (c *fakeCrossmint) Enabled() bool { return c.enabled }

func (c *fakeCrossmint) ProcessDealPayment(ctx context.Context, dealID string, amount float64, customerEmail, salesAgentID string) (*crossmint.DealPaymentResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.lastDeal = dealID
	if c.err != nil {
		return &crossmint.DealPaymentResult{Status: crossmint.StatusError, Message: c.err.Error()}, c.err
	}
	if !c.enabled {
		return &crossmint.DealPaymentResult{Status: crossmint.StatusDisabled, Message: "Crossmint not configured"}, nil
	}
	return &crossmint.DealPaymentResult{
		Status:           crossmint.StatusSuccess,
		DealID:           dealID,
		Payment:          &crossmint.PaymentResult{Status: crossmint.StatusSuccess, PaymentID: "pay_123"},
		Commission:       &crossmint.CommissionResult{Status: crossmint.StatusSuccess, TransactionHash: "0xabc"},
		TotalAmount:      amount,
		CommissionAmount: amount * crossmint.CommissionRate,
	}, nil
}

func TestProcessDealClosureRewardsAndStores(t *testing.T) {
	factory := newFakeUowFactory()
	prospect := seedProspect(t, factory)
	gateway := &fakeCrossmint{enabled: true}
	svc := NewRewardService(factory, gateway, noopLogger{})

	res, err := svc.ProcessDealClosure(context.Background(), DealClosure{
		SessionID:     uuid.NewString(),
		ProspectID:    prospect.Id.String(),
		Amount:        5000,
		CustomerEmail: "buyer@example.com",
		SalesAgentID:  "default_agent",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DealStatusRewarded, res.Status)
	assert.InDelta(t, 750.0, res.CommissionAmount, 0.001)

	deals, err := factory.uow.deals.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "pay_123", deals[0].PaymentId)
	assert.Equal(t, "0xabc", deals[0].TransactionHash)

	updated, err := factory.uow.prospects.FindOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DealStageClosed, updated.DealStage)
}

func TestProcessDealClosureIdempotentPerConversation(t *testing.T) {
	factory := newFakeUowFactory()
	gateway := &fakeCrossmint{enabled: true}
	svc := NewRewardService(factory, gateway, noopLogger{})

	sessionID := uuid.NewString()
	closure := DealClosure{
		SessionID:     sessionID,
		Amount:        5000,
		CustomerEmail: "buyer@example.com",
		SalesAgentID:  "default_agent",
	}

	first, err := svc.ProcessDealClosure(context.Background(), closure)
	require.NoError(t, err)
	second, err := svc.ProcessDealClosure(context.Background(), closure)
	require.NoError(t, err)

	assert.Equal(t, first.DealId, second.DealId)
	assert.Equal(t, 1, gateway.calls)

	deals, _ := factory.uow.deals.FindAll(context.Background())
	assert.Len(t, deals, 1)
}

func TestProcessDealClosureDisabledCrossmint(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewRewardService(factory, &fakeCrossmint{enabled: false}, noopLogger{})

	res, err := svc.ProcessDealClosure(context.Background(), DealClosure{
		SessionID:    uuid.NewString(),
		Amount:       5000,
		SalesAgentID: "default_agent",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusDisabled, res.Status)

	deals, _ := factory.uow.deals.FindAll(context.Background())
	require.Len(t, deals, 1)
	assert.Equal(t, entity.DealStatusDisabled, deals[0].Status)
}

func TestProcessDealClosurePaymentFailure(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewRewardService(factory, &fakeCrossmint{enabled: true, err: errors.New("payment rejected")}, noopLogger{})

	_, err := svc.ProcessDealClosure(context.Background(), DealClosure{
		SessionID:    uuid.NewString(),
		Amount:       5000,
		SalesAgentID: "default_agent",
	})
	require.Error(t, err)

	// The failed attempt is still recorded for reconciliation.
	deals, _ := factory.uow.deals.FindAll(context.Background())
	require.Len(t, deals, 1)
	assert.Equal(t, entity.DealStatusFailed, deals[0].Status)
}

func TestProcessDealPaymentManual(t *testing.T) {
	svc := NewRewardService(nil, &fakeCrossmint{enabled: true}, noopLogger{})

	res, err := svc.ProcessDealPayment(context.Background(), &dto.DealPaymentRequest{
		DealId:        "deal_1",
		Amount:        1000,
		CustomerEmail: "buyer@example.com",
		SalesAgentId:  "default_agent",
	})
	require.NoError(t, err)
	assert.Equal(t, crossmint.StatusSuccess, res.Status)
	assert.InDelta(t, 150.0, res.CommissionAmount, 0.001)
}
