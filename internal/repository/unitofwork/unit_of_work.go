package unitofwork

import (
	"context"

	"digital-sales-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProspectRepository() contract.ProspectRepository
	ConversationRepository() contract.ConversationRepository
	ConversationMessageRepository() contract.ConversationMessageRepository
	BusinessProfileRepository() contract.BusinessProfileRepository
	ColdEmailRepository() contract.ColdEmailRepository
	DealRepository() contract.DealRepository
}
