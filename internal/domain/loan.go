package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Loan records one circulation of one item by one user. ItemKind is
// snapshotted at checkout so due-date and fine logic keep working even if
// the catalog entry is later removed.
type Loan struct {
	ID           uuid.UUID
	ItemID       string
	ItemKind     ItemKind
	UserID       string
	CheckedOutAt time.Time
	DueAt        time.Time
	ReturnedAt   *time.Time
	Renewals     int
}

// NewLoan opens a loan for item to user starting at the given instant.
// The due date is computed by the item variant against the user's role.
func NewLoan(item Item, user User, at time.Time) Loan {
	return Loan{
		ID:           uuid.New(),
		ItemID:       item.Meta().ID,
		ItemKind:     item.Kind(),
		UserID:       user.ID,
		CheckedOutAt: at,
		DueAt:        item.DueDate(at, user.Role),
	}
}

// IsActive reports whether the item is still out.
func (l Loan) IsActive() bool { return l.ReturnedAt == nil }

// IsOverdue reports whether the loan is open and past due at the given
// instant. EBook loans never go overdue regardless of their due date.
func (l Loan) IsOverdue(at time.Time) bool {
	if !l.IsActive() || l.ItemKind == ItemKindEBook {
		return false
	}
	return at.After(l.DueAt)
}

// DaysOverdue counts started days past due at the given instant.
func (l Loan) DaysOverdue(at time.Time) int {
	if !l.IsOverdue(at) {
		return 0
	}
	return DaysLate(l.DueAt, at)
}

// DaysUntilDue counts whole days from the given instant to the due date:
// zero for closed loans, negative once the loan is past due.
func (l Loan) DaysUntilDue(at time.Time) int {
	if !l.IsActive() {
		return 0
	}
	return int(math.Floor(l.DueAt.Sub(at).Hours() / 24))
}

// Fine prices the loan's lateness as of the given instant, typically the
// moment of return. EBook loans are never fined.
func (l Loan) Fine(at time.Time, dailyRate float64) float64 {
	if l.ItemKind == ItemKindEBook {
		return 0
	}
	return OverdueFine(l.DueAt, at, dailyRate)
}
