package service

import (
	"context"
	"fmt"
	"time"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/pkg/mailer"
	"digital-sales-be/internal/repository/specification"
	"digital-sales-be/internal/repository/unitofwork"
	"digital-sales-be/pkg/utils"

	"github.com/google/uuid"
)

const emailPreviewRunes = 200

type IColdEmailService interface {
	GenerateEmail(ctx context.Context, req *dto.GenerateEmailRequest) (*dto.GenerateEmailResponse, error)
	SendEmail(ctx context.Context, req *dto.SendEmailRequest) (*dto.SendEmailResponse, error)
}

type coldEmailService struct {
	uowFactory    unitofwork.RepositoryFactory
	mailer        mailer.IEmailService
	frontendURL   string
	testRecipient string
	logger        logger.ILogger
}

func NewColdEmailService(
	uowFactory unitofwork.RepositoryFactory,
	mailService mailer.IEmailService,
	frontendURL string,
	testRecipient string,
	log logger.ILogger,
) IColdEmailService {
	return &coldEmailService{
		uowFactory:    uowFactory,
		mailer:        mailService,
		frontendURL:   frontendURL,
		testRecipient: testRecipient,
		logger:        log,
	}
}

// GenerateEmail composes a personalized cold email for a prospect contact
// and stores it for a later send. The body weaves in the latest business
// profile so every mail pitches the seller's actual offering.
func (s *coldEmailService) GenerateEmail(ctx context.Context, req *dto.GenerateEmailRequest) (*dto.GenerateEmailResponse, error) {
	prospectId, err := uuid.Parse(req.ProspectId)
	if err != nil {
		return nil, fmt.Errorf("invalid prospect id: %w", err)
	}

	var (
		prospect *entity.Prospect
		profile  *entity.BusinessProfile
	)
	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		prospect, err = uow.ProspectRepository().FindOne(ctx, specification.ByID{ID: prospectId})
		if err != nil {
			return nil, err
		}
		profile, err = uow.BusinessProfileRepository().FindLatest(ctx)
		if err != nil {
			return nil, err
		}
	}
	if prospect == nil {
		return nil, fmt.Errorf("prospect %s not found", req.ProspectId)
	}

	contactName := req.ContactName
	contactEmail := req.ContactEmail
	if primary := prospect.PrimaryContact(); primary != nil {
		if contactName == "" {
			contactName = primary.Name
		}
		if contactEmail == "" {
			contactEmail = primary.Email
		}
	}
	if contactName == "" {
		contactName = "there"
	}

	subject := fmt.Sprintf("Quick question about %s's %s operations", prospect.CompanyName, prospect.Industry)
	talkToSalesLink := fmt.Sprintf("%s/conversations?prospect_id=%s", s.frontendURL, req.ProspectId)
	content := composeColdEmailBody(contactName, prospect, profile, talkToSalesLink)

	email := &entity.ColdEmail{
		Id:              uuid.New(),
		ProspectId:      prospectId,
		ContactName:     contactName,
		ContactEmail:    contactEmail,
		Subject:         subject,
		Content:         content,
		Preview:         utils.Preview(content, emailPreviewRunes),
		TalkToSalesLink: talkToSalesLink,
		Status:          entity.EmailStatusGenerated,
		CreatedAt:       time.Now(),
	}

	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.ColdEmailRepository().Create(ctx, email); err != nil {
			return nil, err
		}
		prospect.DealStage = entity.DealStageContacted
		if err := uow.ProspectRepository().Update(ctx, prospect); err != nil {
			s.logger.Warn("ColdEmailService", "Failed to update deal stage", map[string]interface{}{
				"prospect_id": req.ProspectId,
				"error":       err.Error(),
			})
		}
	}

	return &dto.GenerateEmailResponse{
		Status:  "success",
		Message: "Cold email generated",
		EmailId: email.Id.String(),
		EmailData: dto.EmailDataResponse{
			Subject:         subject,
			Preview:         email.Preview,
			TalkToSalesLink: talkToSalesLink,
			SentTo:          s.recipientFor(email),
		},
	}, nil
}

func composeColdEmailBody(contactName string, prospect *entity.Prospect, profile *entity.BusinessProfile, talkToSalesLink string) string {
	businessGoal := "We help companies optimize their operations"
	productDescription := "our innovative solutions"
	valueProposition := "achieve better results"
	if profile != nil {
		if profile.BusinessGoal != "" {
			businessGoal = profile.BusinessGoal
		}
		if profile.ProductDescription != "" {
			productDescription = profile.ProductDescription
		}
		if profile.ValueProposition != "" {
			valueProposition = profile.ValueProposition
		}
	}

	return fmt.Sprintf(`Hi %s,

I hope this email finds you well. I noticed %s works in the %s space.

%s through %s.

I'd love to have a quick conversation about how we might be able to help %s %s.

Would you be interested in a brief chat? You can talk to me directly here:
%s

Best regards,
Sales Agent

P.S. The conversation link above will connect you directly with our AI sales agent for an immediate discussion.`,
		contactName,
		prospect.CompanyName,
		prospect.Industry,
		businessGoal,
		productDescription,
		prospect.CompanyName,
		valueProposition,
		talkToSalesLink,
	)
}

// recipientFor picks where the email actually goes. A configured test
// recipient overrides the real contact address.
func (s *coldEmailService) recipientFor(email *entity.ColdEmail) string {
	if s.testRecipient != "" {
		return s.testRecipient
	}
	return email.ContactEmail
}

// SendEmail delivers a previously generated email over SMTP and records the
// outcome on the stored row.
func (s *coldEmailService) SendEmail(ctx context.Context, req *dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	emailId, err := uuid.Parse(req.EmailId)
	if err != nil {
		return nil, fmt.Errorf("invalid email id: %w", err)
	}
	if s.uowFactory == nil {
		return nil, fmt.Errorf("email storage not configured")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	email, err := uow.ColdEmailRepository().FindOne(ctx, specification.ByID{ID: emailId})
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, fmt.Errorf("email %s not found", req.EmailId)
	}

	recipient := s.recipientFor(email)
	if recipient == "" {
		return nil, fmt.Errorf("email %s has no recipient", req.EmailId)
	}

	sendErr := s.mailer.SendColdEmail(recipient, email.ContactName, email.Subject, email.Content, email.TalkToSalesLink)

	now := time.Now()
	if sendErr != nil {
		email.Status = entity.EmailStatusFailed
	} else {
		email.Status = entity.EmailStatusSent
		email.SentTo = recipient
		email.SentAt = &now
	}
	if err := uow.ColdEmailRepository().Update(ctx, email); err != nil {
		s.logger.Error("ColdEmailService", "Failed to record send outcome", map[string]interface{}{
			"email_id": req.EmailId,
			"error":    err.Error(),
		})
	}

	if sendErr != nil {
		return nil, fmt.Errorf("failed to send email: %w", sendErr)
	}

	return &dto.SendEmailResponse{
		Status:  "success",
		Message: fmt.Sprintf("Cold email sent to %s", recipient),
		EmailId: req.EmailId,
	}, nil
}
