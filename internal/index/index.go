// Package index provides the SQLite-backed persistent tool store: the
// durable backing populated by the one-shot CSV migration and loaded
// into a catalog snapshot at startup.
package index

// ToolIndex defines the persistent store operations. Consumers should
// depend on this interface rather than the concrete *DB type to
// facilitate testing with mocks.
type ToolIndex interface {
	UpsertTool(row ToolRow) error
	DeleteTool(slug string) error
	GetTool(slug string) (*ToolRow, error)
	AllTools() ([]ToolRow, error)
	Count() (int, error)
	Close() error
}

// Verify *DB satisfies ToolIndex at compile time.
var _ ToolIndex = (*DB)(nil)
