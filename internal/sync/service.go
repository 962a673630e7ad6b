package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/account"
	"github.com/MrJamesThe3rd/banklink/internal/birbank"
	"github.com/MrJamesThe3rd/banklink/internal/connection"
	"github.com/MrJamesThe3rd/banklink/internal/journal"
	"github.com/MrJamesThe3rd/banklink/internal/statement"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=sync
type BankClient interface {
	ListTransactions(ctx context.Context, env birbank.Environment, token, accountNumber string, from, to time.Time) ([]birbank.TransactionData, error)
}

type Connections interface {
	Get(ctx context.Context, id uuid.UUID) (*connection.Connection, error)
	Token(ctx context.Context, conn *connection.Connection, forceRefresh bool) (string, error)
	MarkError(ctx context.Context, id uuid.UUID, msg string) error
	RecordSuccess(ctx context.Context, id uuid.UUID) error
}

type Accounts interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)
	ListByConnection(ctx context.Context, connectionID uuid.UUID) ([]*account.Account, error)
}

type Journals interface {
	GetJournal(ctx context.Context, id uuid.UUID) (*journal.Journal, error)
	FindByOnlineAccount(ctx context.Context, accountID uuid.UUID) (*journal.Journal, error)
}

type Lines interface {
	ExistingExternalIDs(ctx context.Context, journalID uuid.UUID, ids []string) (map[string]struct{}, error)
	BulkCreate(ctx context.Context, lines []*statement.Line) error
}

// Service is the transaction ingestion pipeline: it pulls transactions for
// one or all accounts of a connection, filters out statement lines that are
// already persisted and bulk-creates the rest.
type Service struct {
	client      BankClient
	connections Connections
	accounts    Accounts
	journals    Journals
	lines       Lines
	now         func() time.Time
}

func NewService(client BankClient, connections Connections, accounts Accounts, journals Journals, lines Lines) *Service {
	return &Service{
		client:      client,
		connections: connections,
		accounts:    accounts,
		journals:    journals,
		lines:       lines,
		now:         time.Now,
	}
}

type Options struct {
	// TargetAccountID narrows the run to one account; nil syncs every
	// account under the connection.
	TargetAccountID *uuid.UUID
	// OnError governs per-account persistence failures.
	OnError ErrorPolicy
}

type Result struct {
	Created int
	Failed  int
}

// Sync runs the pipeline. Accounts are processed sequentially, each a
// blocking round-trip; there is no cancellation mid-run beyond ctx.
func (s *Service) Sync(ctx context.Context, connectionID uuid.UUID, opts Options) (*Result, error) {
	conn, err := s.connections.Get(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.targetAccounts(ctx, conn, opts.TargetAccountID)
	if err != nil {
		return nil, err
	}

	token, err := s.connections.Token(ctx, conn, false)
	if err != nil {
		return nil, s.fail(ctx, conn.ID, err)
	}

	today := s.now()
	result := &Result{}

	for _, acc := range accounts {
		from := conn.InitialSyncFrom
		if acc.SyncFrom != nil {
			from = *acc.SyncFrom
		}

		transactions, err := s.client.ListTransactions(ctx, conn.Environment, token, acc.ExternalID, from, today)
		if err != nil {
			// The client swallows fetch errors itself; anything that
			// still surfaces here is treated like a failed account.
			if abortErr := s.accountFailed(ctx, conn.ID, acc, err, opts.OnError); abortErr != nil {
				return nil, abortErr
			}

			result.Failed++

			continue
		}

		if len(transactions) == 0 {
			slog.Info("no transactions returned", "account", acc.ExternalID)
			continue
		}

		created, err := s.persist(ctx, acc, transactions)
		if err != nil {
			if abortErr := s.accountFailed(ctx, conn.ID, acc, err, opts.OnError); abortErr != nil {
				return nil, abortErr
			}

			result.Failed++

			continue
		}

		result.Created += created
	}

	if err := s.finish(ctx, conn, opts.TargetAccountID, result); err != nil {
		slog.Error("failed to record sync outcome", "connection", conn.ID, "error", err)
	}

	return result, nil
}

func (s *Service) targetAccounts(ctx context.Context, conn *connection.Connection, targetID *uuid.UUID) ([]*account.Account, error) {
	if targetID == nil {
		return s.accounts.ListByConnection(ctx, conn.ID)
	}

	acc, err := s.accounts.GetAccount(ctx, *targetID)
	if err != nil {
		return nil, err
	}

	if acc.ConnectionID != conn.ID {
		return nil, fmt.Errorf("account %s does not belong to connection %s", acc.ID, conn.ID)
	}

	return []*account.Account{acc}, nil
}

// persist deduplicates the batch against already-persisted lines and
// bulk-creates the remainder, returning the number of new lines.
func (s *Service) persist(ctx context.Context, acc *account.Account, transactions []birbank.TransactionData) (int, error) {
	j, err := s.resolveJournal(ctx, acc)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(transactions))

	for _, t := range transactions {
		if t.ExternalID != "" {
			ids = append(ids, t.ExternalID)
		}
	}

	existing, err := s.lines.ExistingExternalIDs(ctx, j.ID, ids)
	if err != nil {
		return 0, fmt.Errorf("checking duplicates: %w", err)
	}

	var toCreate []*statement.Line

	for _, t := range transactions {
		// Transactions without an identifier are never deduplicated.
		if t.ExternalID != "" {
			if _, dup := existing[t.ExternalID]; dup {
				continue
			}
		}

		line := &statement.Line{
			JournalID:   j.ID,
			Date:        t.Date,
			Amount:      t.Amount,
			PaymentRef:  t.PaymentRef,
			PartnerName: t.PartnerName,
		}

		if t.ExternalID != "" {
			id := t.ExternalID
			line.ExternalID = &id
		}

		toCreate = append(toCreate, line)
	}

	if len(toCreate) == 0 {
		return 0, nil
	}

	if err := s.lines.BulkCreate(ctx, toCreate); err != nil {
		return 0, fmt.Errorf("persisting statement lines: %w", err)
	}

	return len(toCreate), nil
}

// resolveJournal finds the owning journal: direct link first, then a
// search by the online-account foreign key on the journal side.
func (s *Service) resolveJournal(ctx context.Context, acc *account.Account) (*journal.Journal, error) {
	if acc.JournalID != nil {
		j, err := s.journals.GetJournal(ctx, *acc.JournalID)
		if err == nil {
			return j, nil
		}

		if !errors.Is(err, journal.ErrNotFound) {
			return nil, err
		}
	}

	j, err := s.journals.FindByOnlineAccount(ctx, acc.ID)
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			return nil, &NoJournalError{AccountName: acc.Name}
		}

		return nil, err
	}

	return j, nil
}

// accountFailed records the failure on the connection and either raises it
// (Abort) or logs for a skip-and-continue run, in which case nil is returned.
func (s *Service) accountFailed(ctx context.Context, connectionID uuid.UUID, acc *account.Account, err error, policy ErrorPolicy) error {
	wrapped := fmt.Errorf("sync failed for account %s: %w", acc.ExternalID, err)

	if markErr := s.connections.MarkError(ctx, connectionID, wrapped.Error()); markErr != nil {
		slog.Error("failed to record connection error", "connection", connectionID, "error", markErr)
	}

	if policy == Abort {
		return wrapped
	}

	slog.Error("account sync failed, continuing", "account", acc.ExternalID, "error", err)

	return nil
}

// finish stamps connection-level success only when the run was clean and
// either covered everything (no target) or there was nothing else to cover
// (a single account under the connection). A partial multi-account run must
// not mark the whole connection healthy.
func (s *Service) finish(ctx context.Context, conn *connection.Connection, targetID *uuid.UUID, result *Result) error {
	if result.Failed > 0 {
		return nil
	}

	stamp := targetID == nil

	if !stamp {
		all, err := s.accounts.ListByConnection(ctx, conn.ID)
		if err != nil {
			return err
		}

		stamp = len(all) == 1
	}

	if !stamp {
		return nil
	}

	return s.connections.RecordSuccess(ctx, conn.ID)
}

func (s *Service) fail(ctx context.Context, connectionID uuid.UUID, err error) error {
	if markErr := s.connections.MarkError(ctx, connectionID, err.Error()); markErr != nil {
		slog.Error("failed to record connection error", "connection", connectionID, "error", markErr)
	}

	return err
}
