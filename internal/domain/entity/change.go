// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ChangeOperation is the kind of row-level mutation a change event reports.
type ChangeOperation string

const (
	ChangeInsert ChangeOperation = "insert"
	ChangeUpdate ChangeOperation = "update"
	ChangeDelete ChangeOperation = "delete"
)

// ChangeEvent is a single row-level notification from the external store.
// It carries no payload beyond "something in this table changed"; consumers
// are expected to re-query current state rather than apply deltas.
type ChangeEvent struct {
	Table     string          // The watched table the change happened in.
	Operation ChangeOperation // Insert, update or delete.
}

// WatchedTables is the fixed set of tables the change aggregator listens on.
var WatchedTables = []string{
	"accounts",
	"groups",
	"matches",
	"competitions",
	"memberships",
	"pending_memberships",
}
