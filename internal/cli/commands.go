// Package cli implements the bookshelf command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
)

type app struct {
	version     string
	catalogPath string
	cfg         *config.Config
}

// NewRootCommand builds the command tree. Running the root command without a
// subcommand starts the HTTP server.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Catalog your home library",
		Long:    "Bookshelf keeps track of books, the cabinets and shelves they stand on, and suggests how to arrange them.",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.NewConfig()
			if a.catalogPath != "" {
				a.cfg.Catalog.Path = a.catalogPath
			}
		},
		Run: a.runServe,
	}
	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "YAML catalog file (overrides CATALOG_PATH)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		Run:   a.runServe,
	}

	booksCmd := &cobra.Command{
		Use:   "books",
		Short: "List books, optionally filtered by text, genre and shelf",
		Args:  cobra.NoArgs,
		RunE:  a.runBooks,
	}
	booksCmd.Flags().StringP("query", "q", "", "search title, authors and genres")
	booksCmd.Flags().StringSliceP("genre", "g", nil, "genre to include (repeatable)")
	booksCmd.Flags().StringSliceP("shelf", "s", nil, "shelf name or id to include (repeatable)")

	shelvesCmd := &cobra.Command{
		Use:   "shelves",
		Short: "Show every cabinet and how full its shelves are",
		Args:  cobra.NoArgs,
		RunE:  a.runShelves,
	}

	adviceCmd := &cobra.Command{
		Use:   "advice [cabinet]",
		Short: "Suggest how to arrange a cabinet",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runAdvice,
	}
	adviceCmd.Flags().String("strategy", "by-genre", "by-genre, by-color, by-usage or by-size")

	rootCmd.AddCommand(serveCmd, booksCmd, shelvesCmd, adviceCmd)
	return rootCmd
}

func (a *app) runServe(cmd *cobra.Command, args []string) {
	entrypoint.Run(a.cfg, a.version)
}

func (a *app) loadStore() (*catalog.Store, error) {
	return entrypoint.LoadCatalog(a.cfg)
}

// resolveShelf accepts a shelf id or a case-insensitive shelf name. Ids are
// passed through as given; a name that matches no shelf yields a fresh id, so
// the shelf filter selects nothing rather than failing.
func resolveShelf(store *catalog.Store, value string) (uuid.UUID, bool) {
	if id, err := uuid.Parse(value); err == nil {
		_, ok := store.Shelf(id)
		return id, ok
	}
	for _, lib := range store.Libraries() {
		for _, shelf := range lib.Shelves {
			if strings.EqualFold(shelf.Name, value) {
				return shelf.ID, true
			}
		}
	}
	return uuid.New(), false
}

// resolveLibrary accepts a cabinet id or name. Without a value the first
// cabinet is used.
func resolveLibrary(store *catalog.Store, value string) (entities.Library, error) {
	libraries := store.Libraries()
	if len(libraries) == 0 {
		return entities.Library{}, fmt.Errorf("catalog has no cabinets")
	}
	if value == "" {
		return libraries[0], nil
	}
	if id, err := uuid.Parse(value); err == nil {
		if lib, ok := store.Library(id); ok {
			return lib, nil
		}
	}
	for _, lib := range libraries {
		if strings.EqualFold(lib.Name, value) {
			return lib, nil
		}
	}
	return entities.Library{}, fmt.Errorf("cabinet %q not found", value)
}

// shelfNames maps shelf ids to display names.
func shelfNames(store *catalog.Store) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for _, lib := range store.Libraries() {
		for _, shelf := range lib.Shelves {
			names[shelf.ID] = shelf.Name
		}
	}
	return names
}
