package service

import (
	"slices"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// AddGroup appends a group. Zero timestamps are set to the current time.
func (s *LedgerService) AddGroup(group models.Group) models.Group {
	now := s.now()
	if group.CreatedAt.IsZero() {
		group.CreatedAt = now
	}
	if group.UpdatedAt.IsZero() {
		group.UpdatedAt = now
	}

	group = s.store.AddGroup(group)
	s.metrics.Mutation("group", "add")
	s.log.Info("Group created",
		"group_id", group.ID,
		"name", group.Name,
		"members_count", len(group.Members),
	)
	return group
}

// UpdateGroup merges update into the group and refreshes UpdatedAt.
func (s *LedgerService) UpdateGroup(id string, update models.GroupUpdate) {
	now := s.now()
	n := s.store.UpdateGroup(id, func(g *models.Group) {
		update.Apply(g)
		g.UpdatedAt = now
	})
	s.logUpdate("group", id, n)
}

// DeleteGroup removes the group together with its expenses and settlements.
func (s *LedgerService) DeleteGroup(id string) {
	res := s.store.DeleteGroup(id)
	if res.Groups == 0 && res.Expenses == 0 && res.Settlements == 0 {
		s.log.Debug("Delete matched nothing", "entity", "group", "id", id)
		return
	}
	s.metrics.Mutation("group", "delete")
	s.log.Info("Group deleted",
		"group_id", id,
		"expenses_removed", res.Expenses,
		"settlements_removed", res.Settlements,
	)
}

// AddUserToGroup appends userID to the member list. Duplicates are not prevented.
func (s *LedgerService) AddUserToGroup(groupID, userID string) {
	now := s.now()
	n := s.store.UpdateGroup(groupID, func(g *models.Group) {
		g.Members = append(g.Members, userID)
		g.UpdatedAt = now
	})
	if n == 0 {
		s.log.Debug("Update matched nothing", "entity", "group", "id", groupID)
		return
	}
	s.metrics.Mutation("group", "add_member")
	s.log.Info("Member added", "group_id", groupID, "user_id", userID)
}

// RemoveUserFromGroup removes every occurrence of userID from the member list.
// Expenses that reference the user are kept.
func (s *LedgerService) RemoveUserFromGroup(groupID, userID string) {
	now := s.now()
	n := s.store.UpdateGroup(groupID, func(g *models.Group) {
		g.Members = slices.DeleteFunc(g.Members, func(m string) bool { return m == userID })
		g.UpdatedAt = now
	})
	if n == 0 {
		s.log.Debug("Update matched nothing", "entity", "group", "id", groupID)
		return
	}
	s.metrics.Mutation("group", "remove_member")
	s.log.Info("Member removed", "group_id", groupID, "user_id", userID)
}

// Groups returns a snapshot of every group.
func (s *LedgerService) Groups() []models.Group {
	return s.store.Groups()
}

// FindGroup returns the first group with the given ID.
func (s *LedgerService) FindGroup(id string) (models.Group, bool) {
	for _, g := range s.store.Groups() {
		if g.ID == id {
			return g, true
		}
	}
	return models.Group{}, false
}

// HasGroup reports whether a group with the given ID exists.
func (s *LedgerService) HasGroup(id string) bool {
	_, ok := s.FindGroup(id)
	return ok
}

// GetUserGroups returns the groups that list userID as a member.
func (s *LedgerService) GetUserGroups(userID string) []models.Group {
	var out []models.Group
	for _, g := range s.store.Groups() {
		if g.HasMember(userID) {
			out = append(out, g)
		}
	}
	return out
}

// GetGroupBalances returns every participant's net balance within the group
// and the simplified payments that would settle it. An unknown group yields
// empty balances.
func (s *LedgerService) GetGroupBalances(groupID string) calculator.GroupBalances {
	group, ok := s.FindGroup(groupID)
	if !ok {
		return calculator.GroupBalances{GroupID: groupID}
	}
	return calculator.CalculateGroupBalances(group, s.store.Expenses(), s.store.Settlements())
}
