package circulation

import (
	"time"

	"github.com/openshelf/circulation/internal/domain"
)

// CheckoutInput holds the parameters for checking an item out.
type CheckoutInput struct {
	ItemID string
	UserID string
	At     time.Time
}

// Validate checks all fields and collects all errors.
func (i *CheckoutInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == "" {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.At.IsZero() {
		errs = append(errs, domain.FieldError{Field: "checkout_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReturnInput holds the parameters for returning an item.
type ReturnInput struct {
	ItemID string
	At     time.Time
}

// Validate checks all fields and collects all errors.
func (i *ReturnInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == "" {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.At.IsZero() {
		errs = append(errs, domain.FieldError{Field: "return_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PlaceHoldInput holds the parameters for queueing a hold.
type PlaceHoldInput struct {
	ItemID string
	UserID string
	At     time.Time
}

// Validate checks all fields and collects all errors.
func (i *PlaceHoldInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == "" {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.At.IsZero() {
		errs = append(errs, domain.FieldError{Field: "request_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenewInput holds the parameters for renewing an open loan.
type RenewInput struct {
	ItemID string
	UserID string
	At     time.Time
}

// Validate checks all fields and collects all errors.
func (i *RenewInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == "" {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.At.IsZero() {
		errs = append(errs, domain.FieldError{Field: "renew_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
