package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation/internal/app"
	"github.com/openshelf/circulation/internal/domain"
)

func newDueCmd() *cobra.Command {
	var (
		itemID string
		userID string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Compute the due date an item would get for a borrower",
		Long: `Answers "if this borrower checked this item out on this date, when
would it be due?" without changing any state. The rule depends on the
item variant and the borrower's role.`,
		Example: `  circ due --item BK001 --user U100
  circ due --item JR001 --user U200 --date 2025-03-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := app.New(ctx, configPath(cmd))
			if err != nil {
				return err
			}

			at := time.Now().UTC()
			if date != "" {
				if at, err = domain.ParseDate(date); err != nil {
					return err
				}
			}

			due, err := a.Circulation.DueDateFor(ctx, itemID, userID, at)
			if err != nil {
				return err
			}
			item, err := a.Catalog.Get(ctx, itemID)
			if err != nil {
				return err
			}

			kind := labelStyle.Render(item.Kind().String())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n  checked out %s, due %s\n",
				kind,
				item.Meta().Title,
				at.Format(domain.DateLayout),
				successStyle.Render(due.Format(domain.DateLayout)))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "item identifier")
	cmd.Flags().StringVar(&userID, "user", "", "user identifier")
	cmd.Flags().StringVar(&date, "date", "", "checkout date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
