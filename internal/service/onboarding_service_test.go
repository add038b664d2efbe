package service

import (
	"context"
	"testing"

	"digital-sales-be/internal/constant"
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOnboardingService(publisher *fakePublisher) IOnboardingService {
	return NewOnboardingService(nil, publisher, noopLogger{})
}

func TestConverseOpensWithGreeting(t *testing.T) {
	svc := newOnboardingService(&fakePublisher{})

	res, err := svc.Converse(context.Background(), &dto.OnboardingTurnRequest{Message: "start_conversation"})
	require.NoError(t, err)
	assert.Equal(t, constant.OnboardingGreeting, res.AgentResponse)
	assert.True(t, res.NextQuestion)
	assert.False(t, res.ConversationComplete)
}

func TestConverseAsksForMissingTopicsInOrder(t *testing.T) {
	svc := newOnboardingService(&fakePublisher{})

	// No topic covered yet.
	res, err := svc.Converse(context.Background(), &dto.OnboardingTurnRequest{Message: "hello there"})
	require.NoError(t, err)
	assert.Equal(t, constant.OnboardingAskBusiness, res.AgentResponse)

	// Business covered, target still missing.
	res, err = svc.Converse(context.Background(), &dto.OnboardingTurnRequest{
		Message: "We sell accounting software for freelancers",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.OnboardingAskTarget, res.AgentResponse)

	// Business and target covered, value missing.
	res, err = svc.Converse(context.Background(), &dto.OnboardingTurnRequest{
		Message: "We target small business owners",
		History: []dto.OnboardingMessage{
			{Sender: "user", Content: "We sell accounting software"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, constant.OnboardingAskValue, res.AgentResponse)
}

func TestConverseCompletesWhenAllTopicsCovered(t *testing.T) {
	svc := newOnboardingService(&fakePublisher{})

	res, err := svc.Converse(context.Background(), &dto.OnboardingTurnRequest{
		Message: "Our unique advantage is premium quality at a fair price",
		History: []dto.OnboardingMessage{
			{Sender: "user", Content: "We sell accounting software"},
			{Sender: "user", Content: "We target B2B companies in retail"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, constant.OnboardingComplete, res.AgentResponse)
	assert.True(t, res.ConversationComplete)
	assert.False(t, res.NextQuestion)
}

func TestConverseHonorsFrontendStateFlags(t *testing.T) {
	svc := newOnboardingService(&fakePublisher{})

	// The message mentions nothing, but the client already marked every topic.
	res, err := svc.Converse(context.Background(), &dto.OnboardingTurnRequest{
		Message: "ok",
		ConversationState: dto.OnboardingStateFlags{
			AskedAboutBusiness: true,
			AskedAboutTarget:   true,
			AskedAboutValue:    true,
		},
	})
	require.NoError(t, err)
	assert.True(t, res.ConversationComplete)
}

func TestCompletePublishesWorkflowEvent(t *testing.T) {
	publisher := &fakePublisher{}
	svc := newOnboardingService(publisher)

	res, err := svc.Complete(context.Background(), &dto.CompleteOnboardingRequest{
		BusinessGoal:       "Automate our sales outreach",
		ProductDescription: "AI-powered CRM assistant",
		TargetMarket:       "B2B SaaS companies",
		ValueProposition:   "Cuts outreach time by 80%",
	})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.True(t, res.WorkflowInitiated)
	assert.Len(t, res.NextSteps, 3)
	assert.Equal(t, "Automate our sales outreach", res.BusinessInfo.BusinessGoal)
	assert.NotNil(t, res.BusinessInfo.OnboardingCompletedAt)

	initiated := publisher.ofType(events.TypeWorkflowInitiated)
	require.Len(t, initiated, 1)
	assert.Equal(t, "B2B SaaS companies", initiated[0].Payload()["target_market"])
}

func TestStatusReflectsStoredProfile(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewOnboardingService(factory, &fakePublisher{}, noopLogger{})

	// Fresh workspace: nothing stored yet.
	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.OnboardingCompleted)
	assert.Nil(t, status.BusinessInfo)

	// A half-finished interview row does not count as onboarded.
	require.NoError(t, factory.uow.profiles.Create(context.Background(), &entity.BusinessProfile{
		Id:           uuid.New(),
		BusinessGoal: "Automate our sales outreach",
	}))
	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.OnboardingCompleted)

	_, err = svc.Complete(context.Background(), &dto.CompleteOnboardingRequest{
		BusinessGoal:       "Automate our sales outreach",
		ProductDescription: "AI-powered CRM assistant",
		TargetMarket:       "B2B SaaS companies",
		ValueProposition:   "Cuts outreach time by 80%",
	})
	require.NoError(t, err)

	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.OnboardingCompleted)
	require.NotNil(t, status.BusinessInfo)
	assert.Equal(t, "B2B SaaS companies", status.BusinessInfo.TargetMarket)
}

func TestIndustryFromTargetMarket(t *testing.T) {
	assert.Equal(t, "Technology", IndustryFromTargetMarket("B2B SaaS startups"))
	assert.Equal(t, "FinTech", IndustryFromTargetMarket("finance teams"))
	assert.Equal(t, "Healthcare", IndustryFromTargetMarket("medical practices"))
	assert.Equal(t, "E-commerce", IndustryFromTargetMarket("retail brands"))
	assert.Equal(t, "Technology", IndustryFromTargetMarket(""))
}

func TestKeywordsFromBusinessGoal(t *testing.T) {
	assert.Equal(t, []string{"automation", "sales"}, KeywordsFromBusinessGoal("Sales automation for our team"))
	assert.Equal(t, []string{"business", "growth"}, KeywordsFromBusinessGoal("expand into new regions"))
}
