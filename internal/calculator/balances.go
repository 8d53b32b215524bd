package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// settleThreshold is the smallest residue treated as a real debt.
var settleThreshold = decimal.New(1, -2)

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	UserID     string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// GroupBalances is the balance sheet of one group.
type GroupBalances struct {
	GroupID string
	Members []MemberBalance
	Debts   []DebtEdge
}

// UserBalance computes the net amount userID is owed (positive) or owes
// (negative) across the given expenses and settlements.
//
// Algorithm:
// - Expense paid by the user: every other participant's share is owed to them
// - Expense paid by someone else: the user's own share(s) are owed by them
// - Completed settlement from the user: their debt shrinks by the amount
// - Completed settlement to the user: what they are owed shrinks by the amount
// - Pending settlements are ignored
//
// The settlement sign is chosen so that settling a debt in full brings both
// parties back to zero: the payer's balance rises and the receiver's falls.
func UserBalance(expenses []models.Expense, settlements []models.Settlement, userID string) decimal.Decimal {
	balance := decimal.Zero

	for _, e := range expenses {
		if e.PaidBy == userID {
			for _, p := range e.Participants {
				if p.UserID != userID {
					balance = balance.Add(p.Amount)
				}
			}
			continue
		}
		for _, p := range e.Participants {
			if p.UserID == userID {
				balance = balance.Sub(p.Amount)
			}
		}
	}

	for _, s := range settlements {
		if !s.IsCompleted() {
			continue
		}
		// A self-settlement counts once, as the payer.
		if s.FromUserID == userID {
			balance = balance.Add(s.Amount)
		} else if s.ToUserID == userID {
			balance = balance.Sub(s.Amount)
		}
	}

	return balance
}

// CalculateGroupBalances computes the balance of every member of the group,
// plus anyone who appears in the group's expenses or settlements, and the
// simplified list of payments that would settle the group.
//
// Only expenses and settlements carrying the group's ID are considered.
// Members are listed in group order followed by outsiders in first-seen order.
func CalculateGroupBalances(group models.Group, expenses []models.Expense, settlements []models.Settlement) GroupBalances {
	var groupExpenses []models.Expense
	for _, e := range expenses {
		if e.GroupID == group.ID {
			groupExpenses = append(groupExpenses, e)
		}
	}
	var groupSettlements []models.Settlement
	for _, s := range settlements {
		if s.GroupID == group.ID {
			groupSettlements = append(groupSettlements, s)
		}
	}

	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	for _, m := range group.Members {
		add(m)
	}
	for _, e := range groupExpenses {
		add(e.PaidBy)
		for _, p := range e.Participants {
			add(p.UserID)
		}
	}
	for _, s := range groupSettlements {
		add(s.FromUserID)
		add(s.ToUserID)
	}

	members := make([]MemberBalance, 0, len(ids))
	for _, id := range ids {
		members = append(members, MemberBalance{
			UserID:     id,
			NetBalance: UserBalance(groupExpenses, groupSettlements, id),
		})
	}

	return GroupBalances{
		GroupID: group.ID,
		Members: members,
		Debts:   SimplifyDebts(members),
	}
}

// SimplifyDebts turns net balances into a short list of payments.
//
// Greedy algorithm: match the largest debtor with the largest creditor,
// settle the smaller of the two amounts, and repeat. Ties are broken by
// user ID so the result is deterministic. Residues of a cent or less are dropped.
func SimplifyDebts(balances []MemberBalance) []DebtEdge {
	var creditors, debtors []MemberBalance
	for _, b := range balances {
		if b.NetBalance.IsPositive() {
			creditors = append(creditors, b)
		} else if b.NetBalance.IsNegative() {
			debtors = append(debtors, MemberBalance{UserID: b.UserID, NetBalance: b.NetBalance.Neg()})
		}
	}

	byAmountDesc := func(a, b MemberBalance) int {
		if c := b.NetBalance.Cmp(a.NetBalance); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	}
	slices.SortFunc(creditors, byAmountDesc)
	slices.SortFunc(debtors, byAmountDesc)

	var debtEdges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := decimal.Min(debtor.NetBalance, creditor.NetBalance)

		if amount.GreaterThan(settleThreshold) {
			debtEdges = append(debtEdges, DebtEdge{
				From:   debtor.UserID,
				To:     creditor.UserID,
				Amount: amount,
			})
		}

		debtor.NetBalance = debtor.NetBalance.Sub(amount)
		creditor.NetBalance = creditor.NetBalance.Sub(amount)

		// Move to next debtor/creditor if fully settled
		if debtor.NetBalance.LessThanOrEqual(settleThreshold) {
			i++
		}
		if creditor.NetBalance.LessThanOrEqual(settleThreshold) {
			j++
		}
	}

	return debtEdges
}
