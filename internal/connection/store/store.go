package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/birbank"
	"github.com/MrJamesThe3rd/banklink/internal/connection"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectConnectionColumns = `
	id, name, environment, username, password, token, token_expiry,
	initial_sync_from, status, last_success_at, last_error, created_at, updated_at
`

func scanConnection(s scanner) (*connection.Connection, error) {
	var conn connection.Connection

	var envStr, statusStr string

	var token, lastError sql.NullString

	var tokenExpiry, lastSuccessAt sql.NullTime

	if err := s.Scan(
		&conn.ID, &conn.Name, &envStr, &conn.Username, &conn.Password,
		&token, &tokenExpiry, &conn.InitialSyncFrom, &statusStr,
		&lastSuccessAt, &lastError, &conn.CreatedAt, &conn.UpdatedAt,
	); err != nil {
		return nil, err
	}

	conn.Environment = birbank.Environment(envStr)
	conn.Status = connection.Status(statusStr)
	conn.Token = token.String
	conn.LastError = lastError.String

	if tokenExpiry.Valid {
		conn.TokenExpiry = &tokenExpiry.Time
	}

	if lastSuccessAt.Valid {
		conn.LastSuccessAt = &lastSuccessAt.Time
	}

	return &conn, nil
}

func (s *Store) CreateConnection(ctx context.Context, conn *connection.Connection) error {
	query := `
		INSERT INTO connections (name, environment, username, password, initial_sync_from, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		conn.Name,
		conn.Environment,
		conn.Username,
		conn.Password,
		conn.InitialSyncFrom,
		conn.Status,
	).Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating connection: %w", err)
	}

	return nil
}

func (s *Store) GetConnection(ctx context.Context, id uuid.UUID) (*connection.Connection, error) {
	query := `SELECT ` + selectConnectionColumns + ` FROM connections WHERE id = $1`

	conn, err := scanConnection(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, connection.ErrNotFound
		}

		return nil, fmt.Errorf("getting connection: %w", err)
	}

	return conn, nil
}

func (s *Store) ListConnections(ctx context.Context) ([]*connection.Connection, error) {
	query := `SELECT ` + selectConnectionColumns + ` FROM connections ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	var conns []*connection.Connection

	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}

		conns = append(conns, conn)
	}

	return conns, rows.Err()
}

// UpdateToken persists the token pair directly; these are system-maintained
// fields and bypass the normal update path.
func (s *Store) UpdateToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	query := `
		UPDATE connections
		SET token = $1, token_expiry = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, token, expiry, id)
	if err != nil {
		return fmt.Errorf("updating token: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status connection.Status) error {
	query := `
		UPDATE connections
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return nil
}

func (s *Store) MarkError(ctx context.Context, id uuid.UUID, msg string) error {
	query := `
		UPDATE connections
		SET status = $1, last_error = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, connection.StatusError, msg, id)
	if err != nil {
		return fmt.Errorf("marking error: %w", err)
	}

	return nil
}

func (s *Store) RecordSuccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE connections
		SET status = $1, last_success_at = $2, last_error = NULL, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, connection.StatusConnected, at, id)
	if err != nil {
		return fmt.Errorf("recording success: %w", err)
	}

	return nil
}
