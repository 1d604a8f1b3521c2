package catalog

import (
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// SampleData returns a ready-to-use store with three books, one cabinet and
// three shelves. Ids are freshly generated on every call.
func SampleData() *Store {
	books := []entities.Book{
		{
			ID:             uuid.New(),
			Title:          "Атлант расправил плечи",
			Authors:        []entities.Author{entities.NewAuthor("Айн Рэнд")},
			Edition:        entities.Edition{Publisher: "АСТ", Year: 2020, ISBN: "978-5-17-118366-7", Language: "ru"},
			Dimensions:     entities.Dimensions{Width: 15.5, Height: 24.0, Depth: 5.5, Weight: 950, Unit: entities.LengthUnitCentimeters},
			EstimatedPrice: entities.Price("1999"),
			Genres:         []string{"Философия", "Роман"},
			Notes:          "Коллекционное издание",
			CoverImageName: "atlas_shrugged",
		},
		{
			ID:             uuid.New(),
			Title:          "Sapiens: Краткая история человечества",
			Authors:        []entities.Author{entities.NewAuthor("Юваль Ной Харари")},
			Edition:        entities.Edition{Publisher: "Синдбад", Year: 2021, ISBN: "978-5-00159-306-0", Language: "ru"},
			Dimensions:     entities.Dimensions{Width: 16.0, Height: 24.0, Depth: 4.0, Weight: 870, Unit: entities.LengthUnitCentimeters},
			EstimatedPrice: entities.Price("1490"),
			Genres:         []string{"История", "Научпоп"},
			Notes:          "Любимое издание",
			CoverImageName: "sapiens",
		},
		{
			ID:             uuid.New(),
			Title:          "Clean Code",
			Authors:        []entities.Author{{Name: "Robert C. Martin", Role: "Author"}},
			Edition:        entities.Edition{Publisher: "Prentice Hall", Year: 2018, ISBN: "9780132350884", Language: "en"},
			Dimensions:     entities.Dimensions{Width: 17.0, Height: 23.5, Depth: 3.0, Weight: 650, Unit: entities.LengthUnitCentimeters},
			EstimatedPrice: entities.Price("3290"),
			Genres:         []string{"Программирование"},
			Notes:          "Рабочий экземпляр",
			CoverImageName: "clean_code",
		},
	}

	philosophy := entities.Shelf{
		ID:       uuid.New(),
		Name:     "Философия",
		Capacity: 25,
		Books: []entities.BookPlacement{
			entities.NewPlacement(books[0], 1),
			entities.NewPlacement(books[1], 2),
		},
	}

	science := entities.Shelf{
		ID:       uuid.New(),
		Name:     "Научпоп",
		Capacity: 30,
		Books: []entities.BookPlacement{
			entities.NewPlacement(books[1], 1),
		},
	}

	it := entities.Shelf{
		ID:       uuid.New(),
		Name:     "IT",
		Capacity: 40,
		Books: []entities.BookPlacement{
			entities.NewPlacement(books[2], 1).WithOrientation(entities.OrientationFrontCover),
		},
	}

	libraries := []entities.Library{
		{
			ID:          uuid.New(),
			Name:        "Главный шкаф",
			Description: "Большой дубовый шкаф в гостиной",
			Shelves:     []entities.Shelf{philosophy, science, it},
		},
	}

	return NewStore(books, libraries)
}
