package circulation

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	catalogmem "github.com/openshelf/circulation/internal/adapter/memory/catalog"
	holdmem "github.com/openshelf/circulation/internal/adapter/memory/hold"
	loanmem "github.com/openshelf/circulation/internal/adapter/memory/loan"
	usermem "github.com/openshelf/circulation/internal/adapter/memory/user"
	"github.com/openshelf/circulation/internal/config"
	"github.com/openshelf/circulation/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields) for error injection
// ===========================================================================

type mockCatalogRepo struct {
	GetByIDFunc func(ctx context.Context, itemID string) (domain.Item, error)
}

func (m *mockCatalogRepo) GetByID(ctx context.Context, itemID string) (domain.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, itemID)
	}
	return nil, domain.ErrItemNotFound
}

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, userID string) (domain.User, error)
	AddFineFunc func(ctx context.Context, userID string, amount float64) (domain.User, error)
	PayFineFunc func(ctx context.Context, userID string, amount float64) (domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID string) (domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (m *mockUserRepo) AddFine(ctx context.Context, userID string, amount float64) (domain.User, error) {
	if m.AddFineFunc != nil {
		return m.AddFineFunc(ctx, userID, amount)
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (m *mockUserRepo) PayFine(ctx context.Context, userID string, amount float64) (domain.User, error) {
	if m.PayFineFunc != nil {
		return m.PayFineFunc(ctx, userID, amount)
	}
	return domain.User{}, domain.ErrUserNotFound
}

type mockLoanRepo struct {
	GetActiveByItemFunc  func(ctx context.Context, itemID string) (domain.Loan, error)
	ListActiveFunc       func(ctx context.Context) ([]domain.Loan, error)
	ListActiveByUserFunc func(ctx context.Context, userID string) ([]domain.Loan, error)
	ListByItemFunc       func(ctx context.Context, itemID string) ([]domain.Loan, error)
	CreateFunc           func(ctx context.Context, l domain.Loan) error
	UpdateFunc           func(ctx context.Context, l domain.Loan) error
}

func (m *mockLoanRepo) GetActiveByItem(ctx context.Context, itemID string) (domain.Loan, error) {
	if m.GetActiveByItemFunc != nil {
		return m.GetActiveByItemFunc(ctx, itemID)
	}
	return domain.Loan{}, domain.ErrNoActiveLoan
}

func (m *mockLoanRepo) ListActive(ctx context.Context) ([]domain.Loan, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockLoanRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	if m.ListActiveByUserFunc != nil {
		return m.ListActiveByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockLoanRepo) ListByItem(ctx context.Context, itemID string) ([]domain.Loan, error) {
	if m.ListByItemFunc != nil {
		return m.ListByItemFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockLoanRepo) Create(ctx context.Context, l domain.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *mockLoanRepo) Update(ctx context.Context, l domain.Loan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

type mockHoldRepo struct {
	GetByIDFunc    func(ctx context.Context, holdID uuid.UUID) (domain.Hold, error)
	ListByItemFunc func(ctx context.Context, itemID string) ([]domain.Hold, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]domain.Hold, error)
	CreateFunc     func(ctx context.Context, h domain.Hold) error
	UpdateFunc     func(ctx context.Context, h domain.Hold) error
}

func (m *mockHoldRepo) GetByID(ctx context.Context, holdID uuid.UUID) (domain.Hold, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, holdID)
	}
	return domain.Hold{}, domain.ErrHoldNotFound
}

func (m *mockHoldRepo) ListByItem(ctx context.Context, itemID string) ([]domain.Hold, error) {
	if m.ListByItemFunc != nil {
		return m.ListByItemFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockHoldRepo) ListByUser(ctx context.Context, userID string) ([]domain.Hold, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockHoldRepo) Create(ctx context.Context, h domain.Hold) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, h)
	}
	return nil
}

func (m *mockHoldRepo) Update(ctx context.Context, h domain.Hold) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

// ===========================================================================
// Helpers
// ===========================================================================

func defaultCfg() config.CirculationConfig {
	return config.CirculationConfig{
		FineDailyRate: 0.25,
		MaxRenewals:   2,
		RenewOverdue:  false,
		HoldTTLDays:   7,
	}
}

type mockDeps struct {
	items *mockCatalogRepo
	users *mockUserRepo
	loans *mockLoanRepo
	holds *mockHoldRepo
}

// newMockService wires the service against func-field mocks, for tests
// that inject storage failures.
func newMockService(cfg config.CirculationConfig) (*Service, *mockDeps) {
	deps := &mockDeps{
		items: &mockCatalogRepo{},
		users: &mockUserRepo{},
		loans: &mockLoanRepo{},
		holds: &mockHoldRepo{},
	}
	svc := NewService(slog.Default(), deps.items, deps.users, deps.loans, deps.holds, cfg)
	return svc, deps
}

type memDeps struct {
	items *catalogmem.Repo
	users *usermem.Repo
	loans *loanmem.Repo
	holds *holdmem.Repo
}

// newMemService wires the service against the real in-memory stores, for
// whole-flow tests.
func newMemService(t *testing.T, cfg config.CirculationConfig) (*Service, *memDeps) {
	t.Helper()
	deps := &memDeps{
		items: catalogmem.New(),
		users: usermem.New(),
		loans: loanmem.New(),
		holds: holdmem.New(),
	}
	svc := NewService(slog.Default(), deps.items, deps.users, deps.loans, deps.holds, cfg)
	return svc, deps
}

func (d *memDeps) addBook(t *testing.T, id, title string) {
	t.Helper()
	b, err := domain.NewBook(domain.ItemMeta{ID: id, Title: title}, "")
	require.NoError(t, err)
	require.NoError(t, d.items.Create(context.Background(), b))
}

func (d *memDeps) addItem(t *testing.T, kind domain.ItemKind, id, title string) {
	t.Helper()
	item, err := domain.NewItem(kind, domain.ItemMeta{ID: id, Title: title})
	require.NoError(t, err)
	require.NoError(t, d.items.Create(context.Background(), item))
}

func (d *memDeps) addUser(t *testing.T, id, name string, role domain.Role) {
	t.Helper()
	u, err := domain.NewUser(id, name, role)
	require.NoError(t, err)
	require.NoError(t, d.users.Create(context.Background(), u))
}

func day(d int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d-1)
}
