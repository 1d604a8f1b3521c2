package config

const (
	// DefaultDatabasePath keeps the move journal in memory for the lifetime of the process
	DefaultDatabasePath = "file::memory:?cache=shared"

	DefaultHistoryCleanupSchedule = "0 3 * * *" // Daily at 03:00
)
