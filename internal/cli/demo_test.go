package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmem "github.com/openshelf/circulation/internal/adapter/memory/catalog"
	holdmem "github.com/openshelf/circulation/internal/adapter/memory/hold"
	loanmem "github.com/openshelf/circulation/internal/adapter/memory/loan"
	usermem "github.com/openshelf/circulation/internal/adapter/memory/user"
	"github.com/openshelf/circulation/internal/app"
	"github.com/openshelf/circulation/internal/config"
	"github.com/openshelf/circulation/internal/seed"
	catalogsvc "github.com/openshelf/circulation/internal/service/catalog"
	circsvc "github.com/openshelf/circulation/internal/service/circulation"
)

// newDemoApp wires the object graph by hand so the walkthrough runs
// without touching process env or config files.
func newDemoApp(t *testing.T) *app.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.Library.Name = "Test Library"
	cfg.Circulation = config.CirculationConfig{
		FineDailyRate: 0.25,
		MaxRenewals:   2,
		RenewOverdue:  false,
		HoldTTLDays:   7,
	}

	a := &app.App{
		Cfg:   cfg,
		Log:   slog.Default(),
		Items: catalogmem.New(),
		Users: usermem.New(),
		Loans: loanmem.New(),
		Holds: holdmem.New(),
	}

	loader := seed.NewLoader(a.Log, a.Items, a.Users)
	_, err := loader.Load(context.Background(), seed.Default())
	require.NoError(t, err)

	a.Catalog = catalogsvc.NewService(a.Log, a.Items)
	a.Circulation = circsvc.NewService(a.Log, a.Items, a.Users, a.Loans, a.Holds, cfg.Circulation)
	return a
}

func TestRunDemo(t *testing.T) {
	t.Parallel()

	a := newDemoApp(t)
	var buf bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &buf, a))

	out := buf.String()

	// Checkouts for both tiers.
	assert.Contains(t, out, "BK001 out to U100, due 2025-03-15")
	assert.Contains(t, out, "DV001 out to U200, due 2025-03-08")
	assert.Contains(t, out, "U200 cannot have BK001")

	// The hold blocks the renewal, then claims the return.
	assert.Contains(t, out, "hold expires 2025-03-09")
	assert.Contains(t, out, "now good through 2025-03-12")
	assert.Contains(t, out, "U100 renewal refused")
	assert.Contains(t, out, "BK001 back on 2025-03-05, fine $0.00")
	assert.Contains(t, out, "hold fulfilled: BK001 straight out to U200, due 2025-04-02")

	// Overdue report, the late DVD, and the payment settling most of it.
	assert.Contains(t, out, "held by U200, 2 days late, fine so far $0.50")
	assert.Contains(t, out, "DV001 back 3 days late, fine $0.75 charged to U200")
	assert.Contains(t, out, "U200 pays $0.50 at the desk, balance now $0.25")

	// Closing snapshot.
	assert.Contains(t, out, "Alice Student: 0 open loan(s), balance $0.00")
	assert.Contains(t, out, "Bob Faculty: 1 open loan(s), balance $0.25")
	assert.Contains(t, out, "BK001 has circulated 2 time(s)")
}

func TestRunDemo_Reruns(t *testing.T) {
	t.Parallel()

	// Two walkthroughs over separate stores produce the same story.
	first, second := new(bytes.Buffer), new(bytes.Buffer)
	require.NoError(t, runDemo(context.Background(), first, newDemoApp(t)))
	require.NoError(t, runDemo(context.Background(), second, newDemoApp(t)))
	assert.Equal(t, first.String(), second.String())
}
