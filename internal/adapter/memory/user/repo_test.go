package user

import (
	"context"
	"errors"
	"testing"

	"github.com/openshelf/circulation/internal/domain"
)

func TestRepo_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New()
	u := domain.User{ID: "u-1", Name: "Grace Hopper", Role: domain.RoleFaculty}

	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Grace Hopper" || got.Role != domain.RoleFaculty {
		t.Errorf("got %+v", got)
	}

	if err := repo.Create(ctx, u); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate Create: expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	_, err := New().GetByID(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRepo_AddFine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New()
	if err := repo.Create(ctx, domain.User{ID: "u-1", Name: "Grace Hopper", Role: domain.RoleStudent}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.AddFine(ctx, "u-1", 0.75)
	if err != nil {
		t.Fatalf("AddFine: %v", err)
	}
	if updated.FineBalance != 0.75 {
		t.Errorf("FineBalance = %v, want 0.75", updated.FineBalance)
	}

	updated, err = repo.AddFine(ctx, "u-1", 0.25)
	if err != nil {
		t.Fatalf("AddFine: %v", err)
	}
	if updated.FineBalance != 1.00 {
		t.Errorf("FineBalance = %v, want 1.00", updated.FineBalance)
	}

	got, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FineBalance != 1.00 {
		t.Errorf("stored FineBalance = %v, want 1.00", got.FineBalance)
	}

	if _, err := repo.AddFine(ctx, "ghost", 1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRepo_List_Ordering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New()
	for _, id := range []string{"u-2", "u-3", "u-1"} {
		if err := repo.Create(ctx, domain.User{ID: id, Name: "User " + id, Role: domain.RolePublic}); err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len = %d, want 3", len(users))
	}
	for i, want := range []string{"u-1", "u-2", "u-3"} {
		if users[i].ID != want {
			t.Errorf("users[%d].ID = %q, want %q", i, users[i].ID, want)
		}
	}
}

func TestRepo_PayFine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New()
	if err := repo.Create(ctx, domain.User{ID: "u-1", Name: "Grace Hopper", Role: domain.RoleStudent, FineBalance: 1.00}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.PayFine(ctx, "u-1", 0.75)
	if err != nil {
		t.Fatalf("PayFine: %v", err)
	}
	if updated.FineBalance != 0.25 {
		t.Errorf("FineBalance = %v, want 0.25", updated.FineBalance)
	}

	got, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FineBalance != 0.25 {
		t.Errorf("stored FineBalance = %v, want 0.25", got.FineBalance)
	}

	if _, err := repo.PayFine(ctx, "u-1", 5); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for overpayment, got %v", err)
	}
	if got, _ = repo.GetByID(ctx, "u-1"); got.FineBalance != 0.25 {
		t.Errorf("rejected payment should not touch the stored balance, got %v", got.FineBalance)
	}

	if _, err := repo.PayFine(ctx, "ghost", 1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
