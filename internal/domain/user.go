package domain

import "strings"

// User is a registered borrower. FineBalance accrues overdue charges in
// currency units, rounded to cents.
type User struct {
	ID          string
	Name        string
	Role        Role
	FineBalance float64
}

// NewUser validates and normalizes a borrower record. Any non-empty role
// label is accepted: labels outside the known set simply borrow on the
// standard tier.
func NewUser(id, name string, role Role) (User, error) {
	id = strings.TrimSpace(id)
	name = NormalizeName(name)

	var errs []FieldError
	if id == "" {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if role == "" {
		errs = append(errs, FieldError{Field: "role", Message: "required"})
	}
	if len(errs) > 0 {
		return User{}, NewValidationErrors(errs)
	}

	return User{ID: id, Name: name, Role: role}, nil
}

// AddFine accrues a charge on the borrower's balance. Non-positive
// amounts are ignored.
func (u *User) AddFine(amount float64) {
	if amount <= 0 {
		return
	}
	u.FineBalance = roundCents(u.FineBalance + amount)
}

// PayFine settles part or all of the borrower's balance. Payments must be
// positive and may not exceed what is owed.
func (u *User) PayFine(amount float64) error {
	if amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}
	if amount > u.FineBalance {
		return NewValidationError("amount", "exceeds outstanding balance")
	}
	u.FineBalance = roundCents(u.FineBalance - amount)
	return nil
}
