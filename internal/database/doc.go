// Package database stores the placement move journal.
//
// The catalog itself is never persisted; it lives in memory for the
// lifetime of the process. The journal records every relocation so the
// history of a shelf can be inspected while the process runs (or across
// runs, when DATABASE_PATH points at a file).
//
//	database/
//	├── database.go   # Connection setup and migrations
//	└── history/      # PlacementMove repository
//
// Usage:
//
//	db, err := database.NewDatabase(database.InMemoryPath)
//	repo := history.NewRepository(db.DB)
//	err = repo.LogMove(&entities.PlacementMove{...})
package database
