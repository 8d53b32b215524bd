// Package validation implements the optional strict checks for incoming
// expenses. The ledger itself trusts its callers; this package is for
// callers that want referential and arithmetic checks before insertion.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// ErrInvalidExpense wraps every validation failure.
var ErrInvalidExpense = errors.New("invalid expense")

var (
	// ErrUnknownGroup indicates the expense references a group that does not exist.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrUnknownUser indicates the payer or a participant does not exist.
	ErrUnknownUser = errors.New("unknown user")

	// ErrSplitMismatch indicates the participant shares do not add up to the amount.
	ErrSplitMismatch = errors.New("participant shares do not sum to amount")

	// ErrNonPositiveAmount indicates a zero or negative expense amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Directory answers existence questions about users and groups.
type Directory interface {
	HasUser(id string) bool
	HasGroup(id string) bool
}

type participantInput struct {
	UserID string `validate:"required"`
}

type expenseInput struct {
	GroupID      string             `validate:"required"`
	Title        string             `validate:"required,max=200"`
	PaidBy       string             `validate:"required"`
	Category     string             `validate:"required,oneof=food transportation entertainment shopping utilities rent other"`
	Participants []participantInput `validate:"required,min=1,dive"`
}

// Validator runs struct-level and referential checks on expenses.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateExpense checks expense against the directory. The returned error
// wraps ErrInvalidExpense and, where applicable, one of the more specific
// sentinels in this package.
func (v *Validator) ValidateExpense(expense models.Expense, dir Directory) error {
	in := expenseInput{
		GroupID:  expense.GroupID,
		Title:    strings.TrimSpace(expense.Title),
		PaidBy:   expense.PaidBy,
		Category: string(expense.Category),
	}
	for _, p := range expense.Participants {
		in.Participants = append(in.Participants, participantInput{UserID: p.UserID})
	}

	if err := v.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %s", ErrInvalidExpense, describe(fieldErrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalidExpense, err)
	}

	if !expense.Amount.IsPositive() {
		return fmt.Errorf("%w: %w: got %s", ErrInvalidExpense, ErrNonPositiveAmount, expense.Amount)
	}
	if !dir.HasGroup(expense.GroupID) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidExpense, ErrUnknownGroup, expense.GroupID)
	}
	if !dir.HasUser(expense.PaidBy) {
		return fmt.Errorf("%w: %w: payer %s", ErrInvalidExpense, ErrUnknownUser, expense.PaidBy)
	}
	for _, p := range expense.Participants {
		if !dir.HasUser(p.UserID) {
			return fmt.Errorf("%w: %w: participant %s", ErrInvalidExpense, ErrUnknownUser, p.UserID)
		}
	}
	if !calculator.SplitMatches(expense) {
		return fmt.Errorf("%w: %w", ErrInvalidExpense, ErrSplitMismatch)
	}

	return nil
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
