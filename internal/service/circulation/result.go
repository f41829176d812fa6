package circulation

import "github.com/openshelf/circulation/internal/domain"

// ReturnResult reports everything a return did: the closed loan, how late
// it came back, the fine charged, and the successor loan when a queued
// hold was fulfilled. DaysLate is captured at close; the loan itself no
// longer counts as overdue once returned.
type ReturnResult struct {
	Loan          domain.Loan
	DaysLate      int
	Fine          float64
	FulfilledHold *domain.Hold
	NextLoan      *domain.Loan
}

// OverdueLoan pairs an open past-due loan with its charge so far.
type OverdueLoan struct {
	Loan     domain.Loan
	DaysLate int
	Fine     float64
}

// UserStatus is a borrower snapshot: the record itself, open loans, and
// every hold they placed.
type UserStatus struct {
	User  domain.User
	Loans []domain.Loan
	Holds []domain.Hold
}
