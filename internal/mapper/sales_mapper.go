package mapper

import (
	"encoding/json"
	"time"

	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SalesMapper struct{}

func NewSalesMapper() *SalesMapper {
	return &SalesMapper{}
}

func softDeleteToPtr(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}

func ptrToSoftDelete(t *time.Time, isDeleted bool) gorm.DeletedAt {
	if t != nil {
		return gorm.DeletedAt{Time: *t, Valid: true}
	}
	if isDeleted {
		return gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return gorm.DeletedAt{}
}

func updatedAtToPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t
	return &u
}

func ptrToUpdatedAt(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// Prospect Mappers

func (m *SalesMapper) ProspectToEntity(p *model.Prospect) *entity.Prospect {
	if p == nil {
		return nil
	}

	var contacts []entity.Contact
	if len(p.Contacts) > 0 {
		// Corrupt contact JSON degrades to an empty list rather than failing
		// the whole read.
		_ = json.Unmarshal(p.Contacts, &contacts)
	}

	return &entity.Prospect{
		Id:             p.Id,
		CompanyName:    p.CompanyName,
		Domain:         p.Domain,
		Industry:       p.Industry,
		CompanySize:    p.CompanySize,
		Contacts:       contacts,
		BudgetScore:    p.BudgetScore,
		AuthorityScore: p.AuthorityScore,
		NeedScore:      p.NeedScore,
		TimelineScore:  p.TimelineScore,
		LeadScore:      p.LeadScore,
		Category:       p.Category,
		DealStage:      p.DealStage,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAtToPtr(p.UpdatedAt),
		DeletedAt:      softDeleteToPtr(p.DeletedAt),
		IsDeleted:      p.DeletedAt.Valid,
	}
}

func (m *SalesMapper) ProspectToModel(p *entity.Prospect) *model.Prospect {
	if p == nil {
		return nil
	}

	var contacts datatypes.JSON
	if p.Contacts != nil {
		if data, err := json.Marshal(p.Contacts); err == nil {
			contacts = data
		}
	}

	return &model.Prospect{
		Id:             p.Id,
		CompanyName:    p.CompanyName,
		Domain:         p.Domain,
		Industry:       p.Industry,
		CompanySize:    p.CompanySize,
		Contacts:       contacts,
		BudgetScore:    p.BudgetScore,
		AuthorityScore: p.AuthorityScore,
		NeedScore:      p.NeedScore,
		TimelineScore:  p.TimelineScore,
		LeadScore:      p.LeadScore,
		Category:       p.Category,
		DealStage:      p.DealStage,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      ptrToUpdatedAt(p.UpdatedAt),
		DeletedAt:      ptrToSoftDelete(p.DeletedAt, p.IsDeleted),
	}
}

// Conversation Mappers

func (m *SalesMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	return &entity.Conversation{
		Id:              c.Id,
		ProspectId:      c.ProspectId,
		UpstreamId:      c.UpstreamId,
		Status:          c.Status,
		EngagementScore: c.EngagementScore,
		DealPotential:   c.DealPotential,
		DealClosed:      c.DealClosed,
		RewardTriggered: c.RewardTriggered,
		StartedAt:       c.StartedAt,
		EndedAt:         c.EndedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAtToPtr(c.UpdatedAt),
		DeletedAt:       softDeleteToPtr(c.DeletedAt),
		IsDeleted:       c.DeletedAt.Valid,
	}
}

func (m *SalesMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	return &model.Conversation{
		Id:              c.Id,
		ProspectId:      c.ProspectId,
		UpstreamId:      c.UpstreamId,
		Status:          c.Status,
		EngagementScore: c.EngagementScore,
		DealPotential:   c.DealPotential,
		DealClosed:      c.DealClosed,
		RewardTriggered: c.RewardTriggered,
		StartedAt:       c.StartedAt,
		EndedAt:         c.EndedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       ptrToUpdatedAt(c.UpdatedAt),
		DeletedAt:       ptrToSoftDelete(c.DeletedAt, c.IsDeleted),
	}
}

func (m *SalesMapper) ConversationMessageToEntity(msg *model.ConversationMessage) *entity.ConversationMessage {
	if msg == nil {
		return nil
	}

	return &entity.ConversationMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Sender:         msg.Sender,
		Content:        msg.Content,
		AudioRef:       msg.AudioRef,
		MessageType:    msg.MessageType,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      updatedAtToPtr(msg.UpdatedAt),
		DeletedAt:      softDeleteToPtr(msg.DeletedAt),
		IsDeleted:      msg.DeletedAt.Valid,
	}
}

func (m *SalesMapper) ConversationMessageToModel(msg *entity.ConversationMessage) *model.ConversationMessage {
	if msg == nil {
		return nil
	}

	return &model.ConversationMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Sender:         msg.Sender,
		Content:        msg.Content,
		AudioRef:       msg.AudioRef,
		MessageType:    msg.MessageType,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      ptrToUpdatedAt(msg.UpdatedAt),
		DeletedAt:      ptrToSoftDelete(msg.DeletedAt, msg.IsDeleted),
	}
}

// BusinessProfile Mappers

func (m *SalesMapper) BusinessProfileToEntity(p *model.BusinessProfile) *entity.BusinessProfile {
	if p == nil {
		return nil
	}

	return &entity.BusinessProfile{
		Id:                    p.Id,
		BusinessGoal:          p.BusinessGoal,
		ProductDescription:    p.ProductDescription,
		TargetMarket:          p.TargetMarket,
		ValueProposition:      p.ValueProposition,
		PricingModel:          p.PricingModel,
		WorkflowInitiated:     p.WorkflowInitiated,
		OnboardingCompletedAt: p.OnboardingCompletedAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             updatedAtToPtr(p.UpdatedAt),
		DeletedAt:             softDeleteToPtr(p.DeletedAt),
		IsDeleted:             p.DeletedAt.Valid,
	}
}

func (m *SalesMapper) BusinessProfileToModel(p *entity.BusinessProfile) *model.BusinessProfile {
	if p == nil {
		return nil
	}

	return &model.BusinessProfile{
		Id:                    p.Id,
		BusinessGoal:          p.BusinessGoal,
		ProductDescription:    p.ProductDescription,
		TargetMarket:          p.TargetMarket,
		ValueProposition:      p.ValueProposition,
		PricingModel:          p.PricingModel,
		WorkflowInitiated:     p.WorkflowInitiated,
		OnboardingCompletedAt: p.OnboardingCompletedAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             ptrToUpdatedAt(p.UpdatedAt),
		DeletedAt:             ptrToSoftDelete(p.DeletedAt, p.IsDeleted),
	}
}

// ColdEmail Mappers

func (m *SalesMapper) ColdEmailToEntity(e *model.ColdEmail) *entity.ColdEmail {
	if e == nil {
		return nil
	}

	return &entity.ColdEmail{
		Id:              e.Id,
		ProspectId:      e.ProspectId,
		ContactName:     e.ContactName,
		ContactEmail:    e.ContactEmail,
		Subject:         e.Subject,
		Content:         e.Content,
		Preview:         e.Preview,
		TalkToSalesLink: e.TalkToSalesLink,
		Status:          e.Status,
		SentTo:          e.SentTo,
		SentAt:          e.SentAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAtToPtr(e.UpdatedAt),
		DeletedAt:       softDeleteToPtr(e.DeletedAt),
		IsDeleted:       e.DeletedAt.Valid,
	}
}

func (m *SalesMapper) ColdEmailToModel(e *entity.ColdEmail) *model.ColdEmail {
	if e == nil {
		return nil
	}

	return &model.ColdEmail{
		Id:              e.Id,
		ProspectId:      e.ProspectId,
		ContactName:     e.ContactName,
		ContactEmail:    e.ContactEmail,
		Subject:         e.Subject,
		Content:         e.Content,
		Preview:         e.Preview,
		TalkToSalesLink: e.TalkToSalesLink,
		Status:          e.Status,
		SentTo:          e.SentTo,
		SentAt:          e.SentAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       ptrToUpdatedAt(e.UpdatedAt),
		DeletedAt:       ptrToSoftDelete(e.DeletedAt, e.IsDeleted),
	}
}

// Deal Mappers

func (m *SalesMapper) DealToEntity(d *model.Deal) *entity.Deal {
	if d == nil {
		return nil
	}

	return &entity.Deal{
		Id:               d.Id,
		ConversationId:   d.ConversationId,
		ProspectId:       d.ProspectId,
		Amount:           d.Amount,
		CommissionAmount: d.CommissionAmount,
		CustomerEmail:    d.CustomerEmail,
		SalesAgentId:     d.SalesAgentId,
		PaymentId:        d.PaymentId,
		TransactionHash:  d.TransactionHash,
		Status:           d.Status,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAtToPtr(d.UpdatedAt),
		DeletedAt:        softDeleteToPtr(d.DeletedAt),
		IsDeleted:        d.DeletedAt.Valid,
	}
}

func (m *SalesMapper) DealToModel(d *entity.Deal) *model.Deal {
	if d == nil {
		return nil
	}

	return &model.Deal{
		Id:               d.Id,
		ConversationId:   d.ConversationId,
		ProspectId:       d.ProspectId,
		Amount:           d.Amount,
		CommissionAmount: d.CommissionAmount,
		CustomerEmail:    d.CustomerEmail,
		SalesAgentId:     d.SalesAgentId,
		PaymentId:        d.PaymentId,
		TransactionHash:  d.TransactionHash,
		Status:           d.Status,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        ptrToUpdatedAt(d.UpdatedAt),
		DeletedAt:        ptrToSoftDelete(d.DeletedAt, d.IsDeleted),
	}
}
