package domain

import (
	"context"
	"time"
)

// ArchivedResult is one completed assessment kept in the saved-results
// archive, newest first per session.
type ArchivedResult struct {
	ID        string
	SessionID string
	Result    *Result
	SavedAt   time.Time
}

// ResultArchive is the port for the persistent saved-results list. The
// archive keeps at most a configured number of results per session;
// storing beyond the cap evicts the oldest entries.
type ResultArchive interface {
	Save(ctx context.Context, record *ArchivedResult) error
	List(ctx context.Context, sessionID string) ([]*ArchivedResult, error)
	GetByID(ctx context.Context, sessionID, id string) (*ArchivedResult, error)
	Delete(ctx context.Context, sessionID, id string) error
	DeleteAll(ctx context.Context, sessionID string) error
	Count(ctx context.Context, sessionID string) (int, error)
}
