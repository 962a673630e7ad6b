package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	id, connection_id, external_id, name, balance, currency_code, journal_id, sync_from, created_at, updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var acc account.Account

	var journalID *uuid.UUID

	var syncFrom sql.NullTime

	if err := s.Scan(
		&acc.ID, &acc.ConnectionID, &acc.ExternalID, &acc.Name, &acc.Balance,
		&acc.CurrencyCode, &journalID, &syncFrom, &acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.JournalID = journalID

	if syncFrom.Valid {
		acc.SyncFrom = &syncFrom.Time
	}

	return &acc, nil
}

// UpsertAccount creates the account or, when the (connection, external id)
// pair was seen before, updates it in place. The existing journal link is
// preserved and reported back on acc.
func (s *Store) UpsertAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO online_accounts (connection_id, external_id, name, balance, currency_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (connection_id, external_id) DO UPDATE
		SET name = EXCLUDED.name, balance = EXCLUDED.balance, currency_code = EXCLUDED.currency_code, updated_at = NOW()
		RETURNING id, journal_id, sync_from, created_at, updated_at
	`

	var journalID *uuid.UUID

	var syncFrom sql.NullTime

	err := s.db.QueryRowContext(ctx, query,
		acc.ConnectionID,
		acc.ExternalID,
		acc.Name,
		acc.Balance,
		acc.CurrencyCode,
	).Scan(&acc.ID, &journalID, &syncFrom, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting account: %w", err)
	}

	acc.JournalID = journalID

	if syncFrom.Valid {
		acc.SyncFrom = &syncFrom.Time
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM online_accounts WHERE id = $1`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

func (s *Store) ListByConnection(ctx context.Context, connectionID uuid.UUID) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM online_accounts
		WHERE connection_id = $1
		ORDER BY external_id ASC`

	rows, err := s.db.QueryContext(ctx, query, connectionID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) LinkJournal(ctx context.Context, accountID, journalID uuid.UUID) error {
	query := `
		UPDATE online_accounts
		SET journal_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, journalID, accountID)
	if err != nil {
		return fmt.Errorf("linking journal: %w", err)
	}

	return nil
}
