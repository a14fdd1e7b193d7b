package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cardforge/internal/catalog"
)

// CatalogCmd returns the catalog command group for inspecting card files.
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect card catalog files",
	}
	cmd.AddCommand(catalogValidateCmd())
	cmd.AddCommand(catalogListCmd())
	return cmd
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a catalog file and report whether it is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := catalog.Load(args[0])
			if err != nil {
				return fmt.Errorf("catalog %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d cards in %s\n",
				color.New(color.FgGreen).Sprint("OK"), len(cards), args[0])
			return nil
		},
	}
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the cards in a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := catalog.Load(args[0])
			if err != nil {
				return fmt.Errorf("catalog %s: %w", args[0], err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOST\tTAGS\tEFFECT")
			for _, c := range cards {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					c.ID, c.Name, c.Cost, strings.Join(c.Tags, ","), c.Behavior().Description())
			}
			return w.Flush()
		},
	}
}
