package domain

import (
	"fmt"
	"strings"
)

// ItemKind identifies the concrete variant of a catalog item. The string
// value doubles as the human-readable type label exposed to callers.
type ItemKind string

const (
	ItemKindBook    ItemKind = "Book"
	ItemKindJournal ItemKind = "Journal"
	ItemKindDVD     ItemKind = "DVD"
	ItemKindEBook   ItemKind = "EBook"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindBook, ItemKindJournal, ItemKindDVD, ItemKindEBook:
		return true
	}
	return false
}

// ParseItemKind resolves a label to its canonical ItemKind, ignoring case.
func ParseItemKind(s string) (ItemKind, error) {
	for _, k := range []ItemKind{ItemKindBook, ItemKindJournal, ItemKindDVD, ItemKindEBook} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("item kind %q: %w", s, ErrUnknownItemKind)
}

// Role represents a user's borrowing-privilege tier. Books and Journals
// grant longer loan periods to the extended tier.
type Role string

const (
	RoleStudent Role = "Student"
	RoleFaculty Role = "Faculty"
	RoleStaff   Role = "Staff"
	RoleAdmin   Role = "Admin"
	RolePublic  Role = "Public"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleStaff, RoleAdmin, RolePublic:
		return true
	}
	return false
}

// IsExtended reports whether the role carries extended borrowing
// privileges. Any role outside the recognized extended set resolves to
// the standard tier, so checkout keeps working for unanticipated roles.
func (r Role) IsExtended() bool {
	switch r {
	case RoleFaculty, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// ParseRole resolves a label to its canonical Role, ignoring case. Labels
// outside the recognized set pass through as typed; such roles borrow at
// the standard tier.
func ParseRole(s string) Role {
	for _, r := range []Role{RoleStudent, RoleFaculty, RoleStaff, RoleAdmin, RolePublic} {
		if strings.EqualFold(s, string(r)) {
			return r
		}
	}
	return Role(s)
}

// HoldStatus represents the state of a hold in its queue.
type HoldStatus string

const (
	HoldStatusActive    HoldStatus = "ACTIVE"
	HoldStatusFulfilled HoldStatus = "FULFILLED"
	HoldStatusCancelled HoldStatus = "CANCELLED"
)

func (s HoldStatus) String() string { return string(s) }

func (s HoldStatus) IsValid() bool {
	switch s {
	case HoldStatusActive, HoldStatusFulfilled, HoldStatusCancelled:
		return true
	}
	return false
}
