package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (m *fakeMailer) SendColdEmail(toEmail, contactName, subject, body, talkToSalesLink string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

func (m *fakeMailer) SendWorkflowSummary(toEmail string, prospectsFound, emailsGenerated int) error {
	return nil
}

func seedProspect(t *testing.T, factory *fakeUowFactory) *entity.Prospect {
	t.Helper()
	prospect := &entity.Prospect{
		Id:          uuid.New(),
		CompanyName: "TechStart Inc",
		Domain:      "techstart.com",
		Industry:    "Technology",
		Contacts: []entity.Contact{{
			Name:          "John Smith",
			Email:         "john.smith@techstart.com",
			Title:         "CEO",
			DecisionMaker: true,
		}},
		DealStage: entity.DealStageProspect,
		CreatedAt: time.Now(),
	}
	require.NoError(t, factory.uow.prospects.Create(context.Background(), prospect))
	return prospect
}

func TestGenerateEmailPersonalizesFromProfile(t *testing.T) {
	factory := newFakeUowFactory()
	prospect := seedProspect(t, factory)
	require.NoError(t, factory.uow.profiles.Create(context.Background(), &entity.BusinessProfile{
		Id:                 uuid.New(),
		BusinessGoal:       "We automate sales outreach for B2B teams",
		ProductDescription: "an AI-driven outreach platform",
		TargetMarket:       "B2B SaaS",
		ValueProposition:   "triple reply rates",
	}))

	svc := NewColdEmailService(factory, &fakeMailer{}, "http://localhost:3000", "", noopLogger{})

	res, err := svc.GenerateEmail(context.Background(), &dto.GenerateEmailRequest{
		ProspectId: prospect.Id.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.NotEmpty(t, res.EmailId)
	assert.Equal(t, "Quick question about TechStart Inc's Technology operations", res.EmailData.Subject)
	assert.Equal(t, "http://localhost:3000/conversations?prospect_id="+prospect.Id.String(), res.EmailData.TalkToSalesLink)
	assert.Contains(t, res.EmailData.Preview, "Hi John Smith")

	stored, err := factory.uow.emails.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, entity.EmailStatusGenerated, stored[0].Status)
	assert.Contains(t, stored[0].Content, "We automate sales outreach for B2B teams")
	assert.Contains(t, stored[0].Content, "triple reply rates")
	assert.Equal(t, "john.smith@techstart.com", stored[0].ContactEmail)

	// Generating the first email moves the prospect along the pipeline.
	updated, err := factory.uow.prospects.FindOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DealStageContacted, updated.DealStage)
}

func TestGenerateEmailFallbackCopyWithoutProfile(t *testing.T) {
	factory := newFakeUowFactory()
	prospect := seedProspect(t, factory)

	svc := NewColdEmailService(factory, &fakeMailer{}, "http://localhost:3000", "", noopLogger{})

	res, err := svc.GenerateEmail(context.Background(), &dto.GenerateEmailRequest{
		ProspectId:  prospect.Id.String(),
		ContactName: "Jane",
	})
	require.NoError(t, err)

	stored, _ := factory.uow.emails.FindAll(context.Background())
	require.Len(t, stored, 1)
	assert.Contains(t, stored[0].Content, "Hi Jane")
	assert.Contains(t, stored[0].Content, "We help companies optimize their operations")
	assert.Equal(t, "success", res.Status)
}

func TestGenerateEmailUnknownProspect(t *testing.T) {
	svc := NewColdEmailService(newFakeUowFactory(), &fakeMailer{}, "http://localhost:3000", "", noopLogger{})

	_, err := svc.GenerateEmail(context.Background(), &dto.GenerateEmailRequest{ProspectId: uuid.NewString()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSendEmailDeliversAndRecords(t *testing.T) {
	factory := newFakeUowFactory()
	prospect := seedProspect(t, factory)
	mail := &fakeMailer{}
	svc := NewColdEmailService(factory, mail, "http://localhost:3000", "", noopLogger{})

	gen, err := svc.GenerateEmail(context.Background(), &dto.GenerateEmailRequest{ProspectId: prospect.Id.String()})
	require.NoError(t, err)

	res, err := svc.SendEmail(context.Background(), &dto.SendEmailRequest{EmailId: gen.EmailId})
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Contains(t, res.Message, "john.smith@techstart.com")
	assert.Equal(t, []string{"john.smith@techstart.com"}, mail.sent)

	stored, _ := factory.uow.emails.FindAll(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, entity.EmailStatusSent, stored[0].Status)
	assert.NotNil(t, stored[0].SentAt)
}

func TestSendEmailTestRecipientOverride(t *testing.T) {
	factory := newFakeUowFactory()
	prospect := seedProspect(t, factory)
	mail := &fakeMailer{}
	svc := NewColdEmailService(factory, mail, "http://localhost:3000", "qa-inbox@example.com", noopLogger{})

	gen, err := svc.GenerateEmail(context.Background(), &dto.GenerateEmailRequest{ProspectId: prospect.Id.String()})
	require.NoError(t, err)

	_, err = svc.SendEmail(context.Background(), &dto.SendEmailRequest{EmailId: gen.EmailId})
	require.NoError(t, err)
	assert.Equal(t, []string{"qa-inbox@example.com"}, mail.sent)
}

func TestSendEmailFailureMarksRow(t *testing.T) {
	factory := newFakeUowFactory()
	prospect := seedProspect(t, factory)
	mail := &fakeMailer{sendErr: errors.New("smtp unreachable")}
	svc := NewColdEmailService(factory, mail, "http://localhost:3000", "", noopLogger{})

	gen, err := svc.GenerateEmail(context.Background(), &dto.GenerateEmailRequest{ProspectId: prospect.Id.String()})
	require.NoError(t, err)

	_, err = svc.SendEmail(context.Background(), &dto.SendEmailRequest{EmailId: gen.EmailId})
	require.Error(t, err)

	stored, _ := factory.uow.emails.FindAll(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, entity.EmailStatusFailed, stored[0].Status)
}

func TestSendEmailUnknownId(t *testing.T) {
	svc := NewColdEmailService(newFakeUowFactory(), &fakeMailer{}, "http://localhost:3000", "", noopLogger{})

	_, err := svc.SendEmail(context.Background(), &dto.SendEmailRequest{EmailId: uuid.NewString()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
