package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/pkg/logger"
	"digital-sales-be/internal/repository/specification"
	"digital-sales-be/internal/repository/unitofwork"
	"digital-sales-be/pkg/leadscore"

	"github.com/google/uuid"
)

type IProspectService interface {
	ResearchProspects(ctx context.Context, req *dto.ResearchProspectsRequest) (*dto.ResearchProspectsResponse, error)
	QualifyLead(ctx context.Context, req *dto.QualifyLeadRequest) (*dto.QualifyLeadResponse, error)
	GetProspect(ctx context.Context, id uuid.UUID) (*dto.ProspectResponse, error)
	ListProspects(ctx context.Context) ([]dto.ProspectResponse, error)
}

type prospectService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewProspectService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IProspectService {
	return &prospectService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// researchSeed describes one fabricated prospect the research step produces
// when no external data provider is wired.
type researchSeed struct {
	companySuffix string
	companySize   string
	fundingStage  string
	revenue       string
	contact       entity.Contact
	painPoints    []string
	budgetSignals []string
}

// Research output is deterministic sample data shaped by the requested
// industry, mirroring what a data provider integration would return.
var researchSeeds = []researchSeed{
	{
		companySuffix: "Solutions Inc",
		companySize:   "50-100 employees",
		fundingStage:  "Series A",
		revenue:       "$5M-10M",
		contact: entity.Contact{
			Name:          "John Smith",
			Email:         "john.smith@techstart.com",
			Title:         "CEO",
			Department:    "Executive",
			DecisionMaker: true,
		},
		painPoints:    []string{"Manual processes", "Scaling challenges"},
		budgetSignals: []string{"Recent funding", "Growing team"},
	},
	{
		companySuffix: "Flow Ltd",
		companySize:   "100-200 employees",
		fundingStage:  "Series B",
		revenue:       "$10M-25M",
		contact: entity.Contact{
			Name:          "Sarah Johnson",
			Email:         "sarah.johnson@financeflow.com",
			Title:         "CTO",
			Department:    "Technology",
			DecisionMaker: true,
		},
		painPoints:    []string{"Compliance overhead", "Integration challenges"},
		budgetSignals: []string{"Strong revenue growth", "Recent expansion"},
	},
}

// ResearchProspects fabricates qualified prospects for the requested industry
// or domain, scores them, and stores them for the email pipeline.
func (s *prospectService) ResearchProspects(ctx context.Context, req *dto.ResearchProspectsRequest) (*dto.ResearchProspectsResponse, error) {
	industry := req.Industry
	if industry == "" {
		industry = "Technology"
	}
	domain := req.TargetDomain
	if domain == "" {
		domain = fmt.Sprintf("%s-company.com", strings.ToLower(strings.ReplaceAll(industry, " ", "-")))
	}

	s.logger.Info("ProspectService", "Researching prospects", map[string]interface{}{
		"industry": industry,
		"domain":   domain,
	})

	prospects := make([]*entity.Prospect, 0, len(researchSeeds))
	for _, seed := range researchSeeds {
		companySize := req.CompanySize
		if companySize == "" {
			companySize = seed.companySize
		}

		scores := leadscore.Score(
			leadscore.CompanySignals{
				FundingStage:     seed.fundingStage,
				Revenue:          seed.revenue,
				BudgetIndicators: seed.budgetSignals,
				PainPoints:       seed.painPoints,
			},
			leadscore.ContactSignals{
				Title:         seed.contact.Title,
				Department:    seed.contact.Department,
				DecisionMaker: seed.contact.DecisionMaker,
			},
			leadscore.ConversationSignals{
				PainPoints: strings.Join(seed.painPoints, ", "),
			},
		)

		prospects = append(prospects, &entity.Prospect{
			Id:             uuid.New(),
			CompanyName:    fmt.Sprintf("%s %s", industry, seed.companySuffix),
			Domain:         domain,
			Industry:       industry,
			CompanySize:    companySize,
			Contacts:       []entity.Contact{seed.contact},
			BudgetScore:    scores.Budget,
			AuthorityScore: scores.Authority,
			NeedScore:      scores.Need,
			TimelineScore:  scores.Timeline,
			LeadScore:      scores.Overall(),
			Category:       scores.Category(),
			DealStage:      entity.DealStageProspect,
			CreatedAt:      time.Now(),
		})
	}

	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		for _, p := range prospects {
			if err := uow.ProspectRepository().Create(ctx, p); err != nil {
				s.logger.Error("ProspectService", "Failed to store prospect", map[string]interface{}{
					"company": p.CompanyName,
					"error":   err.Error(),
				})
			}
		}
	}

	res := &dto.ResearchProspectsResponse{
		Status:         "success",
		Message:        fmt.Sprintf("Found prospects in %s", industry),
		ProspectsFound: len(prospects),
		Prospects:      make([]dto.ProspectResponse, len(prospects)),
	}
	for i, p := range prospects {
		res.Prospects[i] = prospectToDTO(p)
	}
	return res, nil
}

// QualifyLead rescores a stored prospect using BANT, blending in what the
// live conversation revealed.
func (s *prospectService) QualifyLead(ctx context.Context, req *dto.QualifyLeadRequest) (*dto.QualifyLeadResponse, error) {
	prospectId, err := uuid.Parse(req.ProspectId)
	if err != nil {
		return nil, fmt.Errorf("invalid prospect id: %w", err)
	}

	var prospect *entity.Prospect
	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		prospect, err = uow.ProspectRepository().FindOne(ctx, specification.ByID{ID: prospectId})
		if err != nil {
			return nil, err
		}
	}
	if prospect == nil {
		return nil, fmt.Errorf("prospect %s not found", req.ProspectId)
	}

	contact := leadscore.ContactSignals{Title: req.ContactTitle}
	if primary := prospect.PrimaryContact(); primary != nil {
		if contact.Title == "" {
			contact.Title = primary.Title
		}
		contact.Department = primary.Department
		contact.DecisionMaker = primary.DecisionMaker
	}

	scores := leadscore.Score(
		leadscore.CompanySignals{},
		contact,
		leadscore.ConversationSignals{
			PainPoints: req.PainPoints,
			Timeline:   req.Timeline,
		},
	)

	prospect.BudgetScore = scores.Budget
	prospect.AuthorityScore = scores.Authority
	prospect.NeedScore = scores.Need
	prospect.TimelineScore = scores.Timeline
	prospect.LeadScore = scores.Overall()
	prospect.Category = scores.Category()

	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.ProspectRepository().Update(ctx, prospect); err != nil {
			s.logger.Error("ProspectService", "Failed to store lead score", map[string]interface{}{
				"prospect_id": req.ProspectId,
				"error":       err.Error(),
			})
		}
	}

	return &dto.QualifyLeadResponse{
		Status:     "success",
		ProspectId: req.ProspectId,
		BantScores: map[string]float64{
			"budget":    scores.Budget,
			"authority": scores.Authority,
			"need":      scores.Need,
			"timeline":  scores.Timeline,
		},
		OverallScore: scores.Overall(),
		Category:     scores.Category(),
	}, nil
}

func (s *prospectService) GetProspect(ctx context.Context, id uuid.UUID) (*dto.ProspectResponse, error) {
	if s.uowFactory == nil {
		return nil, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	prospect, err := uow.ProspectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil || prospect == nil {
		return nil, err
	}
	res := prospectToDTO(prospect)
	return &res, nil
}

func (s *prospectService) ListProspects(ctx context.Context) ([]dto.ProspectResponse, error) {
	if s.uowFactory == nil {
		return nil, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	prospects, err := uow.ProspectRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProspectResponse, len(prospects))
	for i, p := range prospects {
		out[i] = prospectToDTO(p)
	}
	return out, nil
}

func prospectToDTO(p *entity.Prospect) dto.ProspectResponse {
	contacts := make([]dto.ContactResponse, len(p.Contacts))
	for i, c := range p.Contacts {
		contacts[i] = dto.ContactResponse{
			Name:          c.Name,
			Email:         c.Email,
			Title:         c.Title,
			DecisionMaker: c.DecisionMaker,
		}
	}
	return dto.ProspectResponse{
		Id:          p.Id,
		CompanyName: p.CompanyName,
		Domain:      p.Domain,
		Industry:    p.Industry,
		CompanySize: p.CompanySize,
		Contacts:    contacts,
		LeadScore:   p.LeadScore,
		Category:    p.Category,
		DealStage:   p.DealStage,
		CreatedAt:   p.CreatedAt,
	}
}
