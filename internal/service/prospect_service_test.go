package service

import (
	"context"
	"testing"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchProspectsScoresAndStores(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewProspectService(factory, noopLogger{})

	res, err := svc.ResearchProspects(context.Background(), &dto.ResearchProspectsRequest{
		Industry: "FinTech",
	})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 2, res.ProspectsFound)
	require.Len(t, res.Prospects, 2)

	first := res.Prospects[0]
	assert.Equal(t, "FinTech Solutions Inc", first.CompanyName)
	assert.Equal(t, "fintech-company.com", first.Domain)
	assert.Equal(t, "FinTech", first.Industry)
	assert.Equal(t, entity.DealStageProspect, first.DealStage)
	require.Len(t, first.Contacts, 1)
	assert.True(t, first.Contacts[0].DecisionMaker)
	assert.Greater(t, first.LeadScore, 0.0)
	assert.Contains(t, []string{entity.LeadCategoryHot, entity.LeadCategoryWarm, entity.LeadCategoryCold}, first.Category)

	stored, err := factory.uow.prospects.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestResearchProspectsDefaultsIndustry(t *testing.T) {
	svc := NewProspectService(nil, noopLogger{})

	res, err := svc.ResearchProspects(context.Background(), &dto.ResearchProspectsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Technology Solutions Inc", res.Prospects[0].CompanyName)
	assert.Equal(t, "technology-company.com", res.Prospects[0].Domain)
}

func TestResearchProspectsHonorsDomainAndSize(t *testing.T) {
	svc := NewProspectService(nil, noopLogger{})

	res, err := svc.ResearchProspects(context.Background(), &dto.ResearchProspectsRequest{
		Industry:     "Healthcare",
		TargetDomain: "clinics.example.com",
		CompanySize:  "200-500",
	})
	require.NoError(t, err)
	for _, p := range res.Prospects {
		assert.Equal(t, "clinics.example.com", p.Domain)
		assert.Equal(t, "200-500", p.CompanySize)
	}
}

func TestQualifyLeadRescoresStoredProspect(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewProspectService(factory, noopLogger{})

	prospect := &entity.Prospect{
		Id:          uuid.New(),
		CompanyName: "TechStart Inc",
		Industry:    "Technology",
		Contacts: []entity.Contact{{
			Name:          "John Smith",
			Email:         "john.smith@techstart.com",
			Title:         "CEO",
			Department:    "Executive",
			DecisionMaker: true,
		}},
		DealStage: entity.DealStageProspect,
	}
	require.NoError(t, factory.uow.prospects.Create(context.Background(), prospect))

	res, err := svc.QualifyLead(context.Background(), &dto.QualifyLeadRequest{
		ProspectId: prospect.Id.String(),
		PainPoints: "urgent problem with manual processes, critical pain point",
		Timeline:   "we need this asap, this quarter",
	})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	// A decision-making CEO with urgent need and immediate timeline scores
	// well above the warm threshold.
	assert.GreaterOrEqual(t, res.BantScores["authority"], 9.0)
	assert.GreaterOrEqual(t, res.BantScores["timeline"], 8.0)
	assert.Greater(t, res.OverallScore, 6.0)

	stored, err := factory.uow.prospects.FindOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.OverallScore, stored.LeadScore)
	assert.Equal(t, res.Category, stored.Category)
}

func TestQualifyLeadUnknownProspect(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewProspectService(factory, noopLogger{})

	_, err := svc.QualifyLead(context.Background(), &dto.QualifyLeadRequest{
		ProspectId: uuid.NewString(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestQualifyLeadInvalidId(t *testing.T) {
	svc := NewProspectService(newFakeUowFactory(), noopLogger{})

	_, err := svc.QualifyLead(context.Background(), &dto.QualifyLeadRequest{ProspectId: "not-a-uuid"})
	require.Error(t, err)
}

func TestListProspects(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewProspectService(factory, noopLogger{})

	_, err := svc.ResearchProspects(context.Background(), &dto.ResearchProspectsRequest{Industry: "Technology"})
	require.NoError(t, err)

	list, err := svc.ListProspects(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
