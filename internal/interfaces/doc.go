// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Catalog Interfaces
//
//   - filter.Catalog: book list and shelf membership read by the filter (internal/filter/filter.go)
//   - services.PlacementStore: atomic Relocate (internal/services/interfaces.go)
//   - metrics.Store: change subscription for gauges (internal/metrics/metrics.go)
//   - http.CatalogStore: read access for controllers (internal/http/stores.go)
//
// All four are satisfied by *catalog.Store, the single in-memory source of truth.
//
// ## Move Journal Interfaces
//
//   - services.MoveRecorder: append a move (internal/services/interfaces.go)
//   - http.HistoryReader: paginated reads (internal/http/stores.go)
//   - scheduler.MoveJournal: retention cleanup (internal/scheduler/history_cleanup.go)
//
// # Adding a New Organization Strategy
//
//  1. Add the constant to internal/organize and append it to AllStrategies
//
//  2. Give it a Title, Description, Steps entry and an Advice case
//
//  3. The HTTP insights endpoint and the advice command pick it up through ParseStrategy
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/<domain>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Register the entity in database.NewDatabase's AutoMigrate call
//
//  4. Add compile-time check in checks.go:
//
//     var _ SomeStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
