package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxResultArchive implements domain.ResultArchive using sqlx over the
// embedded SQLite database.
type sqlxResultArchive struct {
	db            *sqlx.DB
	maxPerSession int
}

// NewSQLXResultArchive creates a new instance of sqlxResultArchive.
// maxPerSession caps the number of kept results per session; saving
// beyond the cap evicts the oldest rows.
func NewSQLXResultArchive(db *sqlx.DB, maxPerSession int) domain.ResultArchive {
	return &sqlxResultArchive{db: db, maxPerSession: maxPerSession}
}

func toDomainArchivedResult(m *models.ArchivedResult) (*domain.ArchivedResult, error) {
	var result domain.Result
	if err := json.Unmarshal([]byte(m.Payload), &result); err != nil {
		return nil, domain.NewInternalError("failed to unmarshal archived result payload", err)
	}
	return &domain.ArchivedResult{
		ID:        m.ID,
		SessionID: m.SessionID,
		Result:    &result,
		SavedAt:   m.SavedAt,
	}, nil
}

func fromDomainArchivedResult(r *domain.ArchivedResult) (*models.ArchivedResult, error) {
	payload, err := json.Marshal(r.Result)
	if err != nil {
		return nil, domain.NewInternalError("failed to marshal result payload for archive", err)
	}
	return &models.ArchivedResult{
		ID:        r.ID,
		SessionID: r.SessionID,
		Payload:   string(payload),
		SavedAt:   r.SavedAt,
	}, nil
}

// Save inserts the record and evicts the oldest rows beyond the
// per-session cap.
func (r *sqlxResultArchive) Save(ctx context.Context, record *domain.ArchivedResult) error {
	if record == nil || record.Result == nil {
		return domain.NewInvalidInputError("cannot archive nil result")
	}

	model, err := fromDomainArchivedResult(record)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewInternalError("failed to begin archive transaction", err)
	}
	defer tx.Rollback()

	const insertQuery = `
		INSERT INTO archived_results (id, session_id, payload, saved_at)
		VALUES (:id, :session_id, :payload, :saved_at)`
	if _, err := tx.NamedExecContext(ctx, insertQuery, model); err != nil {
		return domain.NewInternalError("failed to insert archived result", err)
	}

	if r.maxPerSession > 0 {
		const evictQuery = `
			DELETE FROM archived_results
			WHERE session_id = ?
			  AND id NOT IN (
				SELECT id FROM archived_results
				WHERE session_id = ?
				ORDER BY saved_at DESC, id DESC
				LIMIT ?
			  )`
		if _, err := tx.ExecContext(ctx, evictQuery, model.SessionID, model.SessionID, r.maxPerSession); err != nil {
			return domain.NewInternalError("failed to evict old archived results", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewInternalError("failed to commit archive transaction", err)
	}
	return nil
}

// List returns a session's archived results, newest first.
func (r *sqlxResultArchive) List(ctx context.Context, sessionID string) ([]*domain.ArchivedResult, error) {
	const query = `
		SELECT id, session_id, payload, saved_at
		FROM archived_results
		WHERE session_id = ?
		ORDER BY saved_at DESC, id DESC`

	var rows []models.ArchivedResult
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, domain.NewInternalError("failed to list archived results", err)
	}

	out := make([]*domain.ArchivedResult, 0, len(rows))
	for i := range rows {
		record, err := toDomainArchivedResult(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// GetByID returns one archived result, or nil when not found.
func (r *sqlxResultArchive) GetByID(ctx context.Context, sessionID, id string) (*domain.ArchivedResult, error) {
	const query = `
		SELECT id, session_id, payload, saved_at
		FROM archived_results
		WHERE session_id = ? AND id = ?`

	var row models.ArchivedResult
	if err := r.db.GetContext(ctx, &row, query, sessionID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get archived result", err)
	}
	return toDomainArchivedResult(&row)
}

// Delete removes one archived result. Deleting an unknown ID is a
// not-found error so callers can report it.
func (r *sqlxResultArchive) Delete(ctx context.Context, sessionID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM archived_results WHERE session_id = ? AND id = ?`, sessionID, id)
	if err != nil {
		return domain.NewInternalError("failed to delete archived result", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewInternalError("failed to read delete result", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("archived result not found: " + id)
	}
	return nil
}

// DeleteAll removes every archived result of a session.
func (r *sqlxResultArchive) DeleteAll(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM archived_results WHERE session_id = ?`, sessionID); err != nil {
		return domain.NewInternalError("failed to delete archived results", err)
	}
	return nil
}

// Count returns the number of archived results for a session.
func (r *sqlxResultArchive) Count(ctx context.Context, sessionID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM archived_results WHERE session_id = ?`, sessionID); err != nil {
		return 0, domain.NewInternalError("failed to count archived results", err)
	}
	return count, nil
}
