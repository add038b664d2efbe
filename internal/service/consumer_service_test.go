package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishWorkflowMessage(t *testing.T, pubSub *gochannel.GoChannel, topic string, payload dto.WorkflowInitiatedMessage) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), data)))
}

func TestConsumerRunsFullWorkflow(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	factory := newFakeUowFactory()
	mail := &fakeMailer{}
	publisher := &fakePublisher{}
	prospects := NewProspectService(factory, noopLogger{})
	emails := NewColdEmailService(factory, mail, "http://localhost:3000", "", noopLogger{})

	consumer := NewConsumerService(pubSub, "workflow_initiated", prospects, emails, mail, publisher, "")
	require.NoError(t, consumer.Consume(context.Background()))

	publishWorkflowMessage(t, pubSub, "workflow_initiated", dto.WorkflowInitiatedMessage{
		ProfileId:    "profile-1",
		BusinessGoal: "automate outreach",
		TargetMarket: "fintech startups",
	})

	assert.Eventually(t, func() bool {
		stored, _ := factory.uow.emails.FindAll(context.Background())
		return len(stored) == 2
	}, 2*time.Second, 10*time.Millisecond)

	stored, err := factory.uow.prospects.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, p := range stored {
		assert.Equal(t, "FinTech", p.Industry)
		assert.Equal(t, entity.DealStageContacted, p.DealStage)
	}
	assert.Len(t, mail.sent, 2)
	assert.Len(t, publisher.ofType(events.TypeColdEmailQueued), 2)
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	factory := newFakeUowFactory()
	prospects := NewProspectService(factory, noopLogger{})
	emails := NewColdEmailService(factory, &fakeMailer{}, "http://localhost:3000", "", noopLogger{})

	consumer := NewConsumerService(pubSub, "workflow_initiated", prospects, emails, nil, nil, "")
	require.NoError(t, consumer.Consume(context.Background()))

	require.NoError(t, pubSub.Publish("workflow_initiated", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	// The channel delivers in order and redelivers on nack, so a poisoned
	// message that was not dropped would block this one forever.
	publishWorkflowMessage(t, pubSub, "workflow_initiated", dto.WorkflowInitiatedMessage{
		ProfileId:    "profile-3",
		TargetMarket: "fintech startups",
	})

	assert.Eventually(t, func() bool {
		stored, _ := factory.uow.prospects.FindAll(context.Background())
		return len(stored) == 2
	}, 2*time.Second, 10*time.Millisecond)

	stored, _ := factory.uow.prospects.FindAll(context.Background())
	for _, p := range stored {
		assert.Equal(t, "FinTech", p.Industry, "only the valid message ran the pipeline")
	}
}

func TestConsumerKeepsGoingWhenDeliveryFails(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	factory := newFakeUowFactory()
	mail := &fakeMailer{sendErr: errors.New("smtp unreachable")}
	prospects := NewProspectService(factory, noopLogger{})
	emails := NewColdEmailService(factory, mail, "http://localhost:3000", "", noopLogger{})

	consumer := NewConsumerService(pubSub, "workflow_initiated", prospects, emails, nil, nil, "")
	require.NoError(t, consumer.Consume(context.Background()))

	publishWorkflowMessage(t, pubSub, "workflow_initiated", dto.WorkflowInitiatedMessage{
		ProfileId:    "profile-2",
		TargetMarket: "healthcare providers",
	})

	assert.Eventually(t, func() bool {
		stored, _ := factory.uow.emails.FindAll(context.Background())
		if len(stored) != 2 {
			return false
		}
		for _, e := range stored {
			if e.Status != entity.EmailStatusFailed {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
}
