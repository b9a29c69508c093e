package models

import "time"

// ArchivedResult is the database row for a saved assessment. The full
// result structure is stored as an opaque JSON payload; only the columns
// needed for listing and eviction are first-class.
type ArchivedResult struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	Payload   string    `db:"payload"`
	SavedAt   time.Time `db:"saved_at"`
}
