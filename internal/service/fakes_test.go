package service

import (
	"context"
	"sort"
	"sync"

	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/repository/contract"
	"digital-sales-be/internal/repository/specification"
	"digital-sales-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. Only the lookups the
// services actually perform are supported: ByID filtering and ordering by
// insertion are enough here.

func specID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

type memProspectRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Prospect
	order []uuid.UUID
}

func newMemProspectRepo() *memProspectRepo {
	return &memProspectRepo{items: map[uuid.UUID]*entity.Prospect{}}
}

func (r *memProspectRepo) Create(ctx context.Context, p *entity.Prospect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.Id] = &cp
	r.order = append(r.order, p.Id)
	return nil
}

func (r *memProspectRepo) Update(ctx context.Context, p *entity.Prospect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.Id] = &cp
	return nil
}

func (r *memProspectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memProspectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prospect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := specID(specs); ok {
		if p, found := r.items[id]; found {
			cp := *p
			return &cp, nil
		}
		return nil, nil
	}
	for _, id := range r.order {
		if p, found := r.items[id]; found {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProspectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prospect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Prospect
	for _, id := range r.order {
		if p, found := r.items[id]; found {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProspectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memBusinessProfileRepo struct {
	mu    sync.Mutex
	items []*entity.BusinessProfile
}

func (r *memBusinessProfileRepo) Create(ctx context.Context, p *entity.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *memBusinessProfileRepo) Update(ctx context.Context, p *entity.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.Id == p.Id {
			cp := *p
			r.items[i] = &cp
		}
	}
	return nil
}

func (r *memBusinessProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *memBusinessProfileRepo) FindLatest(ctx context.Context) (*entity.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return nil, nil
	}
	cp := *r.items[len(r.items)-1]
	return &cp, nil
}

func (r *memBusinessProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessProfile, error) {
	return r.FindLatest(ctx)
}

type memColdEmailRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.ColdEmail
	order []uuid.UUID
}

func newMemColdEmailRepo() *memColdEmailRepo {
	return &memColdEmailRepo{items: map[uuid.UUID]*entity.ColdEmail{}}
}

func (r *memColdEmailRepo) Create(ctx context.Context, e *entity.ColdEmail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.Id] = &cp
	r.order = append(r.order, e.Id)
	return nil
}

func (r *memColdEmailRepo) Update(ctx context.Context, e *entity.ColdEmail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.Id] = &cp
	return nil
}

func (r *memColdEmailRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memColdEmailRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ColdEmail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := specID(specs); ok {
		if e, found := r.items[id]; found {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memColdEmailRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ColdEmail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ColdEmail
	for _, id := range r.order {
		if e, found := r.items[id]; found {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memColdEmailRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if byStatus, ok := s.(specification.ByStatus); ok {
			var n int64
			for _, e := range r.items {
				if e.Status == byStatus.Status {
					n++
				}
			}
			return n, nil
		}
	}
	return int64(len(r.items)), nil
}

type memDealRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Deal
}

func newMemDealRepo() *memDealRepo {
	return &memDealRepo{items: map[uuid.UUID]*entity.Deal{}}
}

func (r *memDealRepo) Create(ctx context.Context, d *entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.items[d.Id] = &cp
	return nil
}

func (r *memDealRepo) Update(ctx context.Context, d *entity.Deal) error {
	return r.Create(ctx, d)
}

func (r *memDealRepo) FindByConversationId(ctx context.Context, conversationId uuid.UUID) (*entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.items {
		if d.ConversationId == conversationId {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memDealRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Deal
	for _, d := range r.items {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memDealRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memConversationRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Conversation
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{items: map[uuid.UUID]*entity.Conversation{}}
}

func (r *memConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *memConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	return r.Create(ctx, c)
}

func (r *memConversationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := specID(specs); ok {
		if c, found := r.items[id]; found {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Conversation
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if byStatus, ok := s.(specification.ByStatus); ok {
			var n int64
			for _, c := range r.items {
				if c.Status == byStatus.Status {
					n++
				}
			}
			return n, nil
		}
	}
	return int64(len(r.items)), nil
}

type memConversationMessageRepo struct {
	mu    sync.Mutex
	items []*entity.ConversationMessage
}

func (r *memConversationMessageRepo) Create(ctx context.Context, m *entity.ConversationMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *memConversationMessageRepo) CreateBatch(ctx context.Context, messages []*entity.ConversationMessage) error {
	for _, m := range messages {
		if err := r.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *memConversationMessageRepo) DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	return nil
}

func (r *memConversationMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ConversationMessage
	for _, m := range r.items {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memConversationMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type fakeUow struct {
	prospects *memProspectRepo
	convs     *memConversationRepo
	msgs      *memConversationMessageRepo
	profiles  *memBusinessProfileRepo
	emails    *memColdEmailRepo
	deals     *memDealRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) ProspectRepository() contract.ProspectRepository { return u.prospects }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return u.convs
}
func (u *fakeUow) ConversationMessageRepository() contract.ConversationMessageRepository {
	return u.msgs
}
func (u *fakeUow) BusinessProfileRepository() contract.BusinessProfileRepository {
	return u.profiles
}
func (u *fakeUow) ColdEmailRepository() contract.ColdEmailRepository { return u.emails }
func (u *fakeUow) DealRepository() contract.DealRepository           { return u.deals }

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: &fakeUow{
		prospects: newMemProspectRepo(),
		convs:     newMemConversationRepo(),
		msgs:      &memConversationMessageRepo{},
		profiles:  &memBusinessProfileRepo{},
		emails:    newMemColdEmailRepo(),
		deals:     newMemDealRepo(),
	}}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
