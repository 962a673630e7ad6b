package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/journal"
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

const selectJournalColumns = `
	id, name, type, code, currency_code, bank_account_number, online_account_id, created_at
`

func scanJournal(s scanner) (*journal.Journal, error) {
	var j journal.Journal

	var typeStr string

	var onlineAccountID *uuid.UUID

	if err := s.Scan(
		&j.ID, &j.Name, &typeStr, &j.Code, &j.CurrencyCode,
		&j.BankAccountNumber, &onlineAccountID, &j.CreatedAt,
	); err != nil {
		return nil, err
	}

	j.Type = journal.Type(typeStr)
	j.OnlineAccountID = onlineAccountID

	return &j, nil
}

func (s *Store) GetJournal(ctx context.Context, id uuid.UUID) (*journal.Journal, error) {
	query := `SELECT ` + selectJournalColumns + ` FROM journals WHERE id = $1`

	j, err := scanJournal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, journal.ErrNotFound
		}

		return nil, fmt.Errorf("getting journal: %w", err)
	}

	return j, nil
}

// FindBankByAccountNumber looks up a bank-type journal whose bank account
// number equals accountNumber. This is the auto-link match.
func (s *Store) FindBankByAccountNumber(ctx context.Context, accountNumber string) (*journal.Journal, error) {
	query := `SELECT ` + selectJournalColumns + `
		FROM journals
		WHERE type = $1 AND bank_account_number = $2
		LIMIT 1`

	j, err := scanJournal(s.db.QueryRowContext(ctx, query, journal.TypeBank, accountNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, journal.ErrNotFound
		}

		return nil, fmt.Errorf("finding journal by account number: %w", err)
	}

	return j, nil
}

func (s *Store) FindByOnlineAccount(ctx context.Context, accountID uuid.UUID) (*journal.Journal, error) {
	query := `SELECT ` + selectJournalColumns + `
		FROM journals
		WHERE online_account_id = $1
		LIMIT 1`

	j, err := scanJournal(s.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, journal.ErrNotFound
		}

		return nil, fmt.Errorf("finding journal by online account: %w", err)
	}

	return j, nil
}

// ListByConnection returns the journals linked to any online account under
// the given connection; backs the dashboard's linked-journal listing.
func (s *Store) ListByConnection(ctx context.Context, connectionID uuid.UUID) ([]*journal.Journal, error) {
	query := `SELECT j.id, j.name, j.type, j.code, j.currency_code, j.bank_account_number, j.online_account_id, j.created_at
		FROM journals j
		JOIN online_accounts a ON j.online_account_id = a.id
		WHERE a.connection_id = $1
		ORDER BY j.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, connectionID)
	if err != nil {
		return nil, fmt.Errorf("listing journals: %w", err)
	}
	defer rows.Close()

	var journals []*journal.Journal

	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal: %w", err)
		}

		journals = append(journals, j)
	}

	return journals, rows.Err()
}

func (s *Store) CreateJournal(ctx context.Context, j *journal.Journal) error {
	query := `
		INSERT INTO journals (name, type, code, currency_code, bank_account_number, online_account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		j.Name,
		j.Type,
		j.Code,
		j.CurrencyCode,
		j.BankAccountNumber,
		j.OnlineAccountID,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating journal: %w", err)
	}

	return nil
}

func (s *Store) LinkOnlineAccount(ctx context.Context, journalID, accountID uuid.UUID) error {
	query := `
		UPDATE journals
		SET online_account_id = $1
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, accountID, journalID)
	if err != nil {
		return fmt.Errorf("linking online account: %w", err)
	}

	return nil
}
