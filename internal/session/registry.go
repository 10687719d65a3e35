// Package session keeps one brand-kit and team manager pair per account and
// serializes access to them.
package session

import (
	"fmt"
	"sync"
	"time"

	"clipgenie/internal/domain/brandkit"
	"clipgenie/internal/domain/plans"
	"clipgenie/internal/domain/team"

	"go.uber.org/zap"
)

// Session holds an account's managers. Its plan never changes; a plan change
// replaces the whole session.
type Session struct {
	mu sync.Mutex

	AccountID string
	Plan      plans.Plan
	BrandKit  *brandkit.Manager
	Team      *team.Manager

	// asOf is the account version the plan was read from. Guarded by the
	// registry lock.
	asOf time.Time
}

func newSession(accountID, ownerID string, plan plans.Plan, asOf time.Time) (*Session, error) {
	kit, err := brandkit.NewManager(plan)
	if err != nil {
		return nil, fmt.Errorf("session: brand kit: %w", err)
	}
	members, err := team.NewManager(ownerID, plan)
	if err != nil {
		return nil, fmt.Errorf("session: team: %w", err)
	}
	return &Session{AccountID: accountID, Plan: plan, BrandKit: kit, Team: members, asOf: asOf}, nil
}

// Do runs fn while holding the session lock.
func (s *Session) Do(fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{sessions: make(map[string]*Session), log: log}
}

// Get returns the account's session, creating it on first use. asOf is the
// version (update time) of the account record plan was read from. An existing
// session is replaced only when plan differs and asOf is newer than the
// session's, so a request holding a stale read cannot roll the account back
// and wipe its managers.
func (r *Registry) Get(accountID, ownerID string, plan plans.Plan, asOf time.Time) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[accountID]; ok {
		if !asOf.After(s.asOf) {
			return s, nil
		}
		if s.Plan == plan {
			s.asOf = asOf
			return s, nil
		}
		r.log.Info("plan changed, replacing session",
			zap.String("account_id", accountID),
			zap.String("from", string(s.Plan)),
			zap.String("to", string(plan)))
	}

	s, err := newSession(accountID, ownerID, plan, asOf)
	if err != nil {
		return nil, err
	}
	r.sessions[accountID] = s
	return s, nil
}

// Drop discards the account's session. The next Get starts from empty managers.
func (r *Registry) Drop(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[accountID]; ok {
		delete(r.sessions, accountID)
		r.log.Info("session dropped", zap.String("account_id", accountID))
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
