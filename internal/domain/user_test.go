package domain

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	u, err := NewUser(" u-1 ", "  grace   HOPPER ", RoleFaculty)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.ID != "u-1" {
		t.Errorf("ID = %q", u.ID)
	}
	if u.Name != "Grace Hopper" {
		t.Errorf("Name = %q", u.Name)
	}
	if u.Role != RoleFaculty {
		t.Errorf("Role = %q", u.Role)
	}
	if u.FineBalance != 0 {
		t.Errorf("FineBalance = %v, want 0", u.FineBalance)
	}
}

func TestNewUser_UnlistedRoleAccepted(t *testing.T) {
	t.Parallel()

	u, err := NewUser("u-2", "Eve Visitor", Role("Alumni"))
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Role.IsExtended() {
		t.Error("unlisted role should borrow on the standard tier")
	}
}

func TestNewUser_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		user string
		role Role
	}{
		{name: "missing id", id: "", user: "Grace Hopper", role: RoleStaff},
		{name: "blank id", id: "  ", user: "Grace Hopper", role: RoleStaff},
		{name: "missing name", id: "u-1", user: "", role: RoleStaff},
		{name: "blank name", id: "u-1", user: "   ", role: RoleStaff},
		{name: "missing role", id: "u-1", user: "Grace Hopper", role: Role("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tt.id, tt.user, tt.role)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUser_AddFine(t *testing.T) {
	t.Parallel()

	u := User{ID: "u-1", Name: "Grace Hopper", Role: RoleStudent}

	u.AddFine(0.75)
	if u.FineBalance != 0.75 {
		t.Fatalf("FineBalance = %v, want 0.75", u.FineBalance)
	}

	u.AddFine(0.1)
	u.AddFine(0.1)
	u.AddFine(0.1)
	if u.FineBalance != 1.05 {
		t.Fatalf("FineBalance = %v, want 1.05", u.FineBalance)
	}

	u.AddFine(0)
	u.AddFine(-5)
	if u.FineBalance != 1.05 {
		t.Fatalf("non-positive amounts should be ignored, got %v", u.FineBalance)
	}
}

func TestUser_PayFine(t *testing.T) {
	t.Parallel()

	u := User{ID: "u-1", Name: "Grace Hopper", Role: RoleStudent, FineBalance: 1.05}

	if err := u.PayFine(0.55); err != nil {
		t.Fatalf("PayFine: %v", err)
	}
	if u.FineBalance != 0.50 {
		t.Fatalf("FineBalance = %v, want 0.50", u.FineBalance)
	}

	if err := u.PayFine(0.50); err != nil {
		t.Fatalf("PayFine: %v", err)
	}
	if u.FineBalance != 0 {
		t.Fatalf("FineBalance = %v, want 0", u.FineBalance)
	}
}

func TestUser_PayFine_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
	}{
		{name: "zero", amount: 0},
		{name: "negative", amount: -1},
		{name: "over balance", amount: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := User{ID: "u-1", Name: "Grace Hopper", Role: RoleStudent, FineBalance: 1}
			if err := u.PayFine(tt.amount); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if u.FineBalance != 1 {
				t.Fatalf("rejected payment should not touch the balance, got %v", u.FineBalance)
			}
		})
	}
}
