package catalog

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// fileCatalog is the YAML layout accepted by LoadFile. Books are referenced
// from placements by their key; ids are optional and generated when absent.
type fileCatalog struct {
	Books     []fileBook    `yaml:"books"`
	Libraries []fileLibrary `yaml:"libraries"`
}

type fileBook struct {
	Key        string         `yaml:"key"`
	ID         string         `yaml:"id"`
	Title      string         `yaml:"title"`
	Authors    []fileAuthor   `yaml:"authors"`
	Edition    fileEdition    `yaml:"edition"`
	Dimensions fileDimensions `yaml:"dimensions"`
	Price      string         `yaml:"price"`
	Genres     []string       `yaml:"genres"`
	Notes      string         `yaml:"notes"`
	Cover      string         `yaml:"cover"`
}

type fileAuthor struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type fileEdition struct {
	Publisher string `yaml:"publisher"`
	Year      int    `yaml:"year"`
	ISBN      string `yaml:"isbn"`
	Language  string `yaml:"language"`
}

type fileDimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Weight float64 `yaml:"weight"`
	Unit   string  `yaml:"unit"`
}

type fileLibrary struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Shelves     []fileShelf `yaml:"shelves"`
}

type fileShelf struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Capacity   int             `yaml:"capacity"`
	Placements []filePlacement `yaml:"placements"`
}

type filePlacement struct {
	ID          string `yaml:"id"`
	Book        string `yaml:"book"`
	Position    int    `yaml:"position"`
	Orientation string `yaml:"orientation"`
}

// LoadFile reads a YAML catalog from disk and builds a store from it.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return store, nil
}

// Parse builds a store from YAML catalog data.
func Parse(data []byte) (*Store, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	books := make([]entities.Book, 0, len(fc.Books))
	byKey := make(map[string]entities.Book, len(fc.Books))
	seenIDs := make(map[uuid.UUID]struct{}, len(fc.Books))
	for i, fb := range fc.Books {
		book, err := fb.toEntity()
		if err != nil {
			return nil, fmt.Errorf("book #%d (%q): %w", i+1, fb.Title, err)
		}
		key := fb.Key
		if key == "" {
			key = book.ID.String()
		}
		if _, dup := byKey[key]; dup {
			return nil, fmt.Errorf("book #%d: duplicate key %q", i+1, key)
		}
		if _, dup := seenIDs[book.ID]; dup {
			return nil, fmt.Errorf("book #%d: duplicate id %s", i+1, book.ID)
		}
		seenIDs[book.ID] = struct{}{}
		byKey[key] = book
		books = append(books, book)
	}

	libraries := make([]entities.Library, 0, len(fc.Libraries))
	for _, fl := range fc.Libraries {
		lib, err := fl.toEntity(byKey)
		if err != nil {
			return nil, fmt.Errorf("library %q: %w", fl.Name, err)
		}
		libraries = append(libraries, lib)
	}

	return NewStore(books, libraries), nil
}

func (fb fileBook) toEntity() (entities.Book, error) {
	id, err := parseOrNewID(fb.ID)
	if err != nil {
		return entities.Book{}, err
	}

	unit := entities.LengthUnitCentimeters
	if fb.Dimensions.Unit != "" {
		unit = entities.LengthUnit(fb.Dimensions.Unit)
		if !unit.Valid() {
			return entities.Book{}, fmt.Errorf("unknown length unit %q", fb.Dimensions.Unit)
		}
	}

	var price *decimal.Decimal
	if fb.Price != "" {
		p, err := decimal.NewFromString(fb.Price)
		if err != nil {
			return entities.Book{}, fmt.Errorf("invalid price %q: %w", fb.Price, err)
		}
		price = &p
	}

	authors := make([]entities.Author, 0, len(fb.Authors))
	for _, a := range fb.Authors {
		author := entities.NewAuthor(a.Name)
		if a.Role != "" {
			author.Role = a.Role
		}
		authors = append(authors, author)
	}

	return entities.Book{
		ID:      id,
		Title:   fb.Title,
		Authors: authors,
		Edition: entities.Edition{
			Publisher: fb.Edition.Publisher,
			Year:      fb.Edition.Year,
			ISBN:      fb.Edition.ISBN,
			Language:  fb.Edition.Language,
		},
		Dimensions: entities.Dimensions{
			Width:  fb.Dimensions.Width,
			Height: fb.Dimensions.Height,
			Depth:  fb.Dimensions.Depth,
			Weight: fb.Dimensions.Weight,
			Unit:   unit,
		},
		EstimatedPrice: price,
		Genres:         fb.Genres,
		Notes:          fb.Notes,
		CoverImageName: fb.Cover,
	}, nil
}

func (fl fileLibrary) toEntity(books map[string]entities.Book) (entities.Library, error) {
	id, err := parseOrNewID(fl.ID)
	if err != nil {
		return entities.Library{}, err
	}

	shelves := make([]entities.Shelf, 0, len(fl.Shelves))
	for _, fs := range fl.Shelves {
		shelfID, err := parseOrNewID(fs.ID)
		if err != nil {
			return entities.Library{}, fmt.Errorf("shelf %q: %w", fs.Name, err)
		}

		placements := make([]entities.BookPlacement, 0, len(fs.Placements))
		seen := make(map[uuid.UUID]struct{}, len(fs.Placements))
		for _, fp := range fs.Placements {
			book, ok := books[fp.Book]
			if !ok {
				return entities.Library{}, fmt.Errorf("shelf %q: unknown book %q", fs.Name, fp.Book)
			}
			placement := entities.NewPlacement(book, fp.Position)
			if fp.ID != "" {
				if placement.ID, err = uuid.Parse(fp.ID); err != nil {
					return entities.Library{}, fmt.Errorf("shelf %q: invalid placement id %q: %w", fs.Name, fp.ID, err)
				}
			}
			if _, dup := seen[placement.ID]; dup {
				return entities.Library{}, fmt.Errorf("shelf %q: duplicate placement id %s", fs.Name, placement.ID)
			}
			seen[placement.ID] = struct{}{}
			if fp.Orientation != "" {
				placement.Orientation, err = parseOrientation(fp.Orientation)
				if err != nil {
					return entities.Library{}, fmt.Errorf("shelf %q: %w", fs.Name, err)
				}
			}
			placements = append(placements, placement)
		}

		shelves = append(shelves, entities.Shelf{
			ID:       shelfID,
			Name:     fs.Name,
			Capacity: fs.Capacity,
			Books:    placements,
		})
	}

	return entities.Library{
		ID:          id,
		Name:        fl.Name,
		Description: fl.Description,
		Shelves:     shelves,
	}, nil
}

func parseOrNewID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}

func parseOrientation(raw string) (entities.Orientation, error) {
	for _, o := range entities.AllOrientations {
		if string(o) == raw {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown orientation %q", raw)
}
