package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation/internal/app"
	"github.com/openshelf/circulation/internal/domain"
	"github.com/openshelf/circulation/internal/service/circulation"
)

// demoDay anchors the walkthrough so its output is reproducible.
const demoDay = "2025-03-01"

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay a scripted circulation walkthrough",
		Long: `Runs a scripted day at the circulation desk against the seeded
collection: checkouts for both privilege tiers, a refused double
checkout, a hold placed and extended, a blocked renewal, an overdue
report, and a late return whose fine is paid down at the desk.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New(cmd.Context(), configPath(cmd))
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), a)
		},
	}
}

func runDemo(ctx context.Context, w io.Writer, a *app.App) error {
	day1, err := domain.ParseDate(demoDay)
	if err != nil {
		return err
	}
	day := func(n int) time.Time { return day1.AddDate(0, 0, n-1) }
	date := func(t time.Time) string { return t.Format(domain.DateLayout) }

	fmt.Fprintln(w, titleStyle.Render(a.Cfg.Library.Name+" circulation desk"))

	section(w, "The collection")
	items, err := a.Catalog.List(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		meta := item.Meta()
		fmt.Fprintf(w, "  %s  %s %s\n",
			kindLabel(item.Kind()),
			meta.Title,
			dimStyle.Render("by "+strings.Join(meta.Creators, ", ")))
	}

	section(w, "Borrowers")
	users, err := a.Users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(w, "  %s  %s %s\n",
			labelStyle.Render(u.ID), u.Name, dimStyle.Render(u.Role.String()))
	}

	section(w, "Due dates are polymorphic")
	for _, u := range users {
		fmt.Fprintf(w, "  for %s (%s), checking out on %s:\n", u.Name, u.Role, date(day(1)))
		for _, item := range items {
			due, err := a.Circulation.DueDateFor(ctx, item.Meta().ID, u.ID, day(1))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "    %s  due %s\n", kindLabel(item.Kind()), date(due))
		}
	}

	section(w, "Checkout")
	bookLoan, err := a.Circulation.Checkout(ctx, circulation.CheckoutInput{
		ItemID: "BK001", UserID: "U100", At: day(1),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s\n", successStyle.Render(
		fmt.Sprintf("BK001 out to U100, due %s", date(bookLoan.DueAt))))

	dvdLoan, err := a.Circulation.Checkout(ctx, circulation.CheckoutInput{
		ItemID: "DV001", UserID: "U200", At: day(1),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s\n", successStyle.Render(
		fmt.Sprintf("DV001 out to U200, due %s", date(dvdLoan.DueAt))))

	if _, err := a.Circulation.Checkout(ctx, circulation.CheckoutInput{
		ItemID: "BK001", UserID: "U200", At: day(2),
	}); err != nil {
		fmt.Fprintf(w, "  %s\n", errorStyle.Render("U200 cannot have BK001: "+err.Error()))
	}

	section(w, "Hold")
	hold, err := a.Circulation.PlaceHold(ctx, circulation.PlaceHoldInput{
		ItemID: "BK001", UserID: "U200", At: day(2),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  U200 queued for BK001, hold expires %s\n", date(hold.ExpiresAt))

	extended, err := a.Circulation.ExtendHold(ctx, hold.ID, 3, day(2))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  U200 extends the hold, now good through %s\n", date(extended.ExpiresAt))

	section(w, "Renewal")
	if _, err := a.Circulation.Renew(ctx, circulation.RenewInput{
		ItemID: "BK001", UserID: "U100", At: day(3),
	}); err != nil {
		fmt.Fprintf(w, "  %s\n", errorStyle.Render("U100 renewal refused: "+err.Error()))
	}

	section(w, "Return resolves the queue")
	res, err := a.Circulation.Return(ctx, circulation.ReturnInput{ItemID: "BK001", At: day(5)})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  BK001 back on %s, fine $%.2f\n", date(day(5)), res.Fine)
	if res.NextLoan != nil {
		fmt.Fprintf(w, "  %s\n", successStyle.Render(fmt.Sprintf(
			"hold fulfilled: BK001 straight out to %s, due %s",
			res.NextLoan.UserID, date(res.NextLoan.DueAt))))
	}

	section(w, "Overdue report")
	overdue, err := a.Circulation.ListOverdue(ctx, day(10))
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		fmt.Fprintf(w, "  nothing overdue as of %s\n", date(day(10)))
	}
	for _, o := range overdue {
		fmt.Fprintf(w, "  %s held by %s, %d days late, fine so far $%.2f\n",
			labelStyle.Render(o.Loan.ItemID), o.Loan.UserID, o.DaysLate, o.Fine)
	}

	section(w, "Late return")
	late, err := a.Circulation.Return(ctx, circulation.ReturnInput{ItemID: "DV001", At: day(11)})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s\n", errorStyle.Render(fmt.Sprintf(
		"DV001 back %d days late, fine $%.2f charged to %s",
		late.DaysLate, late.Fine, late.Loan.UserID)))

	payer, err := a.Circulation.PayFine(ctx, late.Loan.UserID, 0.50)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s pays $0.50 at the desk, balance now $%.2f\n",
		payer.ID, payer.FineBalance)

	section(w, "Where things stand")
	for _, u := range users {
		status, err := a.Circulation.UserStatus(ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s: %d open loan(s), balance $%.2f\n",
			status.User.Name, len(status.Loans), status.User.FineBalance)
	}

	history, err := a.Circulation.ItemHistory(ctx, "BK001")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  BK001 has circulated %d time(s)\n", len(history))

	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("== "+title+" =="))
}

func kindLabel(kind domain.ItemKind) string {
	return labelStyle.Render(fmt.Sprintf("%-7s", kind))
}
