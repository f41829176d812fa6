package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation/internal/domain"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List item variants and their loan rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Item variants"))

			// The rules are read off the variants themselves rather than
			// restated here.
			epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			kinds := []domain.ItemKind{
				domain.ItemKindBook,
				domain.ItemKindJournal,
				domain.ItemKindDVD,
				domain.ItemKindEBook,
			}

			for _, kind := range kinds {
				item, err := domain.NewItem(kind, domain.ItemMeta{ID: "probe", Title: "probe"})
				if err != nil {
					return err
				}

				std := loanDays(item, epoch, domain.RoleStudent)
				ext := loanDays(item, epoch, domain.RoleFaculty)

				var rule string
				switch {
				case std == 0 && ext == 0:
					rule = "due at checkout, never overdue"
				case std == ext:
					rule = fmt.Sprintf("%d days for every role", std)
				default:
					rule = fmt.Sprintf("%d days standard, %d days extended", std, ext)
				}

				fmt.Fprintf(out, "  %s  %s\n",
					labelStyle.Render(fmt.Sprintf("%-7s", kind)), rule)
			}
			return nil
		},
	}
}

func loanDays(item domain.Item, checkout time.Time, role domain.Role) int {
	return int(item.DueDate(checkout, role).Sub(checkout).Hours() / 24)
}
