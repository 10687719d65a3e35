package team

import (
	"fmt"
	"slices"

	"clipgenie/internal/domain/access"
	"clipgenie/internal/domain/plans"
)

const DefaultRole = "member"

// Member is a user sharing a Business-plan account.
type Member struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Manager manages the members of one account. All checks run before any
// write, so a failed call leaves the team unchanged. Not safe for concurrent use.
type Manager struct {
	ownerID string
	plan    plans.Plan
	members map[string]*Member
	order   []string // insertion order of members' user IDs
}

func NewManager(ownerID string, plan plans.Plan) (*Manager, error) {
	if _, err := plans.GetPlanFeatures(plan); err != nil {
		return nil, err
	}
	return &Manager{
		ownerID: ownerID,
		plan:    plan,
		members: map[string]*Member{},
	}, nil
}

// OwnerID is the account owner the team belongs to. The owner is not a member.
func (m *Manager) OwnerID() string {
	return m.ownerID
}

// Plan is the plan the manager was built for.
func (m *Manager) Plan() plans.Plan {
	return m.plan
}

// Count is the number of members, owner excluded.
func (m *Manager) Count() int {
	return len(m.order)
}

func (m *Manager) requireTeamAccess() error {
	return access.Require(m.plan, plans.FeatureTeamAccess, "Team access")
}

func (m *Manager) checkMemberLimit() error {
	limit := plans.MustFeatures(m.plan).MaxTeamMembers
	if limit.Allows(len(m.members)) {
		return nil
	}
	return &access.Error{
		Kind:    access.CapacityExceeded,
		Plan:    m.plan,
		Message: fmt.Sprintf("Team member limit of %d reached for the %q plan.", int(limit), string(m.plan)),
	}
}

// AddMember adds a member. An empty role means DefaultRole.
func (m *Manager) AddMember(userID, email, role string) (*Member, error) {
	if err := m.requireTeamAccess(); err != nil {
		return nil, err
	}
	if err := m.checkMemberLimit(); err != nil {
		return nil, err
	}
	if _, ok := m.members[userID]; ok {
		return nil, &access.Error{
			Kind:    access.DuplicateEntry,
			Plan:    m.plan,
			Message: fmt.Sprintf("User %q is already a team member.", userID),
		}
	}

	if role == "" {
		role = DefaultRole
	}
	member := &Member{UserID: userID, Email: email, Role: role}
	m.members[userID] = member
	m.order = append(m.order, userID)
	return member, nil
}

// RemoveMember removes a member and returns its last record.
func (m *Manager) RemoveMember(userID string) (*Member, error) {
	if err := m.requireTeamAccess(); err != nil {
		return nil, err
	}

	member, ok := m.members[userID]
	if !ok {
		return nil, &access.Error{
			Kind:    access.NotFound,
			Plan:    m.plan,
			Message: fmt.Sprintf("User %q is not a team member.", userID),
		}
	}

	delete(m.members, userID)
	m.order = slices.DeleteFunc(m.order, func(id string) bool { return id == userID })
	return member, nil
}

// ListMembers returns a snapshot of the team in insertion order.
func (m *Manager) ListMembers() ([]Member, error) {
	if err := m.requireTeamAccess(); err != nil {
		return nil, err
	}

	out := make([]Member, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.members[id])
	}
	return out, nil
}

// GetMember looks a member up. Absence is reported with ok == false, not an error.
func (m *Manager) GetMember(userID string) (member *Member, ok bool, err error) {
	if err := m.requireTeamAccess(); err != nil {
		return nil, false, err
	}
	member, ok = m.members[userID]
	return member, ok, nil
}
