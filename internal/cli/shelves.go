package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/organize"
)

func (a *app) runShelves(cmd *cobra.Command, args []string) error {
	store, err := a.loadStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, lib := range store.Libraries() {
		in := organize.Insights(lib)
		fmt.Fprintln(out, Styles.Title.Render(lib.Name))
		if lib.Description != "" {
			fmt.Fprintln(out, Styles.Muted.Render(lib.Description))
		}
		fmt.Fprintf(out, "%d shelves, %d/%d books, %s full\n", in.ShelfCount, in.TotalBooks, in.TotalCapacity, in.Percent())

		for _, shelf := range lib.Shelves {
			p := organize.Progress(shelf)
			fmt.Fprintf(out, "  %-20s %s %d/%d\n", p.Name, progressBar(p.Fraction), p.Count, p.Capacity)
			for _, placement := range shelf.Books {
				fmt.Fprintf(out, "    %3d  %s %s\n", placement.Position, placement.Book.Title,
					Styles.Muted.Render("("+placement.Orientation.Label()+")"))
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}
