package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/filter"
)

func (a *app) runBooks(cmd *cobra.Command, args []string) error {
	store, err := a.loadStore()
	if err != nil {
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	genres, _ := cmd.Flags().GetStringSlice("genre")
	shelves, _ := cmd.Flags().GetStringSlice("shelf")

	state := filter.State{SearchText: query}
	for _, g := range genres {
		state.SetGenre(g, true)
	}
	for _, s := range shelves {
		id, ok := resolveShelf(store, s)
		if !ok {
			log.Printf("Shelf %q not found in catalog", s)
		}
		state.SetShelf(id, true)
	}

	books := state.FilteredBooks(store)
	names := shelfNames(store)
	out := cmd.OutOrStdout()

	if len(books) == 0 {
		fmt.Fprintln(out, Styles.Muted.Render("No books match."))
		return nil
	}

	fmt.Fprintln(out, Styles.Title.Render(fmt.Sprintf("Books (%d)", len(books))))
	for _, book := range books {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s  %s\n", Styles.Bold.Render(book.Title), Styles.Subtitle.Render(strings.Join(book.AuthorNames(), ", ")))

		var tags []string
		for _, g := range book.Genres {
			tags = append(tags, Styles.Tag.Render(g))
		}
		if len(tags) > 0 {
			fmt.Fprintf(out, "  %s\n", strings.Join(tags, " "))
		}

		var onShelves []string
		for _, id := range store.ShelfIDs(book) {
			onShelves = append(onShelves, names[id])
		}
		if len(onShelves) == 0 {
			fmt.Fprintf(out, "  %s\n", Styles.Muted.Render("not shelved"))
		} else {
			fmt.Fprintf(out, "  %s %s\n", Styles.Muted.Render("shelves:"), strings.Join(onShelves, ", "))
		}

		if book.EstimatedPrice != nil {
			fmt.Fprintf(out, "  %s %s\n", Styles.Muted.Render("price:"), book.EstimatedPrice.StringFixed(2))
		}
	}
	return nil
}
