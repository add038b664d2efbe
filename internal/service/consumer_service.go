// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/mailer"
	"digital-sales-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the automated sales pipeline worker. One workflow
// message drives the whole chain: research prospects, generate a cold email
// per prospect, send each one, then mail the seller a summary.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	prospectService IProspectService
	emailService    IColdEmailService
	mailer          mailer.IEmailService
	publisher       EventPublisher
	summaryEmail    string
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	prospectService IProspectService,
	emailService IColdEmailService,
	mailService mailer.IEmailService,
	publisher EventPublisher,
	summaryEmail string,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		prospectService: prospectService,
		emailService:    emailService,
		mailer:          mailService,
		publisher:       publisher,
		summaryEmail:    summaryEmail,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WorkflowInitiatedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal workflow message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Starting automated sales workflow for profile %s", payload.ProfileId)

	research, err := cs.prospectService.ResearchProspects(ctx, &dto.ResearchProspectsRequest{
		Industry: IndustryFromTargetMarket(payload.TargetMarket),
	})
	if err != nil {
		log.Printf("[ERROR] Prospect research failed for profile %s: %v", payload.ProfileId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	log.Printf("[INFO] Research found %d prospects", research.ProspectsFound)

	emailsGenerated := 0
	for _, prospect := range research.Prospects {
		gen, err := cs.emailService.GenerateEmail(ctx, &dto.GenerateEmailRequest{
			ProspectId: prospect.Id.String(),
		})
		if err != nil {
			log.Printf("[ERROR] Email generation failed for prospect %s: %v", prospect.Id, err)
			continue
		}
		emailsGenerated++

		if cs.publisher != nil {
			contactEmail := ""
			if len(prospect.Contacts) > 0 {
				contactEmail = prospect.Contacts[0].Email
			}
			event := events.NewColdEmailQueuedEvent(gen.EmailId, prospect.Id.String(), contactEmail)
			if err := cs.publisher.Publish(ctx, event); err != nil {
				log.Printf("[WARN] Failed to publish email queued event: %v", err)
			}
		}

		if _, err := cs.emailService.SendEmail(ctx, &dto.SendEmailRequest{EmailId: gen.EmailId}); err != nil {
			// Delivery failures are recorded on the email row; the workflow
			// keeps moving so one bounced address cannot stall the campaign.
			log.Printf("[WARN] Email delivery failed for %s: %v", gen.EmailId, err)
		}
	}

	if cs.summaryEmail != "" && cs.mailer != nil {
		if err := cs.mailer.SendWorkflowSummary(cs.summaryEmail, research.ProspectsFound, emailsGenerated); err != nil {
			log.Printf("[WARN] Failed to send workflow summary: %v", err)
		}
	}

	log.Printf("[SUCCESS] Workflow completed for profile %s: %d prospects, %d emails",
		payload.ProfileId, research.ProspectsFound, emailsGenerated)
	msg.Ack()
}
