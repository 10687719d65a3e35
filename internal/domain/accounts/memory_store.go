package accounts

import (
	"context"
	"sync"
	"time"

	"clipgenie/internal/domain/plans"
)

// MemoryStore keeps accounts in process memory. Used when no DB_URL is set and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*Account)}
}

func (s *MemoryStore) FindOrCreate(ctx context.Context, id, ownerID string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}

	now := time.Now()
	a := &Account{ID: id, OwnerID: ownerID, Plan: plans.Free, CreatedAt: now, UpdatedAt: now}
	s.accounts[id] = a
	cp := *a
	return &cp, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *MemoryStore) FindBySubscription(ctx context.Context, subscriptionID string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.StripeSubscriptionID != nil && *a.StripeSubscriptionID == subscriptionID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SetPlan(ctx context.Context, id string, plan plans.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	a.Plan = plan
	a.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) ApplyBilling(ctx context.Context, id string, u BillingUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	applyBilling(a, u)
	a.UpdatedAt = time.Now()
	return nil
}
