package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/birbank"
	"github.com/MrJamesThe3rd/banklink/internal/connection"
	"github.com/MrJamesThe3rd/banklink/internal/journal"
)

//go:generate mockgen -source=reconciler.go -destination=reconciler_mock.go -package=account
type BankClient interface {
	ListAccounts(ctx context.Context, env birbank.Environment, token string) ([]birbank.AccountData, error)
}

type Connections interface {
	Get(ctx context.Context, id uuid.UUID) (*connection.Connection, error)
	Token(ctx context.Context, conn *connection.Connection, forceRefresh bool) (string, error)
	MarkError(ctx context.Context, id uuid.UUID, msg string) error
	RecordSuccess(ctx context.Context, id uuid.UUID) error
}

type Repository interface {
	UpsertAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListByConnection(ctx context.Context, connectionID uuid.UUID) ([]*Account, error)
	LinkJournal(ctx context.Context, accountID, journalID uuid.UUID) error
}

type Journals interface {
	FindBankByAccountNumber(ctx context.Context, accountNumber string) (*journal.Journal, error)
	FindByOnlineAccount(ctx context.Context, accountID uuid.UUID) (*journal.Journal, error)
	CreateJournal(ctx context.Context, j *journal.Journal) error
	LinkOnlineAccount(ctx context.Context, journalID, accountID uuid.UUID) error
}

// Reconciler maps remote account records onto local accounts and keeps them
// linked to host journals.
type Reconciler struct {
	client      BankClient
	connections Connections
	accounts    Repository
	journals    Journals
}

func NewReconciler(client BankClient, connections Connections, accounts Repository, journals Journals) *Reconciler {
	return &Reconciler{
		client:      client,
		connections: connections,
		accounts:    accounts,
		journals:    journals,
	}
}

// InitializeConnection refreshes the token, pulls the remote account list
// and upserts each account by external identifier, auto-linking journals by
// account number. Initialization is an explicit user action: any failure is
// recorded on the connection and returned as a blocking error.
func (r *Reconciler) InitializeConnection(ctx context.Context, connectionID uuid.UUID) error {
	conn, err := r.connections.Get(ctx, connectionID)
	if err != nil {
		return err
	}

	token, err := r.connections.Token(ctx, conn, true)
	if err != nil {
		return r.fail(ctx, connectionID, err)
	}

	remote, err := r.client.ListAccounts(ctx, conn.Environment, token)
	if err != nil {
		return r.fail(ctx, connectionID, err)
	}

	slog.Info("fetched remote accounts", "connection", connectionID, "count", len(remote))

	for _, data := range remote {
		if data.ExternalID == "" {
			slog.Warn("skipping remote account without identifier", "connection", connectionID, "name", data.Name)
			continue
		}

		acc := &Account{
			ConnectionID: conn.ID,
			ExternalID:   data.ExternalID,
			Name:         data.Name,
			Balance:      data.Balance,
			CurrencyCode: data.CurrencyCode,
		}

		if err := r.accounts.UpsertAccount(ctx, acc); err != nil {
			return r.fail(ctx, connectionID, fmt.Errorf("upserting account %s: %w", data.ExternalID, err))
		}

		if acc.JournalID != nil {
			continue
		}

		j, err := r.journals.FindBankByAccountNumber(ctx, data.ExternalID)
		if err != nil {
			if errors.Is(err, journal.ErrNotFound) {
				continue
			}

			return r.fail(ctx, connectionID, err)
		}

		if err := r.link(ctx, acc, j); err != nil {
			return r.fail(ctx, connectionID, err)
		}
	}

	return r.connections.RecordSuccess(ctx, connectionID)
}

// CreateJournalForAccount creates and links a bank journal for the account.
// A no-op when a journal is already linked; the returned journal is nil in
// that case.
func (r *Reconciler) CreateJournalForAccount(ctx context.Context, accountID uuid.UUID) (*journal.Journal, error) {
	acc, err := r.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if acc.JournalID != nil {
		return nil, nil
	}

	// The link may exist only on the journal side.
	if j, err := r.journals.FindByOnlineAccount(ctx, acc.ID); err == nil {
		if err := r.accounts.LinkJournal(ctx, acc.ID, j.ID); err != nil {
			return nil, err
		}

		return nil, nil
	} else if !errors.Is(err, journal.ErrNotFound) {
		return nil, err
	}

	name := acc.Name
	if name == "" {
		name = "Birbank Journal"
	}

	code := acc.CurrencyCode
	if code == "" {
		code = "BNK"
	}

	if len(code) > 3 {
		code = code[:3]
	}

	j := &journal.Journal{
		Name:              name,
		Type:              journal.TypeBank,
		Code:              code,
		CurrencyCode:      acc.CurrencyCode,
		BankAccountNumber: acc.ExternalID,
		OnlineAccountID:   &acc.ID,
	}

	if err := r.journals.CreateJournal(ctx, j); err != nil {
		return nil, err
	}

	if err := r.accounts.LinkJournal(ctx, acc.ID, j.ID); err != nil {
		return nil, err
	}

	return j, nil
}

func (r *Reconciler) List(ctx context.Context, connectionID uuid.UUID) ([]*Account, error) {
	return r.accounts.ListByConnection(ctx, connectionID)
}

func (r *Reconciler) link(ctx context.Context, acc *Account, j *journal.Journal) error {
	if err := r.journals.LinkOnlineAccount(ctx, j.ID, acc.ID); err != nil {
		return fmt.Errorf("linking journal %s: %w", j.ID, err)
	}

	if err := r.accounts.LinkJournal(ctx, acc.ID, j.ID); err != nil {
		return fmt.Errorf("linking account %s: %w", acc.ID, err)
	}

	acc.JournalID = &j.ID

	return nil
}

func (r *Reconciler) fail(ctx context.Context, connectionID uuid.UUID, err error) error {
	if markErr := r.connections.MarkError(ctx, connectionID, err.Error()); markErr != nil {
		slog.Error("failed to record connection error", "connection", connectionID, "error", markErr)
	}

	return fmt.Errorf("connection initialization failed: %w", err)
}
