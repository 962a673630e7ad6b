package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ExistingExternalIDs returns which of the given external identifiers are
// already persisted in the journal. One query for the whole batch; callers
// must not loop this per transaction.
func (s *Store) ExistingExternalIDs(ctx context.Context, journalID uuid.UUID, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	query := `
		SELECT external_id
		FROM statement_lines
		WHERE journal_id = $1 AND external_id = ANY($2)
	`

	rows, err := s.db.QueryContext(ctx, query, journalID, ids)
	if err != nil {
		return nil, fmt.Errorf("querying existing identifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning identifier: %w", err)
		}

		existing[id] = struct{}{}
	}

	return existing, rows.Err()
}

func journalLockKey(journalID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(journalID.String()))

	return int64(h.Sum64())
}

// BulkCreate inserts all lines in one database transaction, holding a
// per-journal advisory lock so two overlapping syncs of the same journal
// cannot interleave their write phases.
func (s *Store) BulkCreate(ctx context.Context, lines []*statement.Line) error {
	if len(lines) == 0 {
		return nil
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning bulk create: %w", err)
	}
	defer dbTx.Rollback()

	lockKey := journalLockKey(lines[0].JournalID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		return fmt.Errorf("acquiring journal lock: %w", err)
	}

	query := `
		INSERT INTO statement_lines (journal_id, external_id, date, amount, payment_ref, partner_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	for _, line := range lines {
		var externalID sql.NullString
		if line.ExternalID != nil {
			externalID = sql.NullString{String: *line.ExternalID, Valid: true}
		}

		err := dbTx.QueryRowContext(ctx, query,
			line.JournalID,
			externalID,
			line.Date,
			line.Amount,
			line.PaymentRef,
			line.PartnerName,
		).Scan(&line.ID, &line.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating statement line: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing bulk create: %w", err)
	}

	return nil
}

// CountByJournal reports how many lines a journal holds; used by the
// dashboard listing.
func (s *Store) CountByJournal(ctx context.Context, journalID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM statement_lines WHERE journal_id = $1`, journalID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting statement lines: %w", err)
	}

	return count, nil
}
