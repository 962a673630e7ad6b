package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/banklink/internal/account"
	"github.com/MrJamesThe3rd/banklink/internal/birbank"
	"github.com/MrJamesThe3rd/banklink/internal/connection"
	"github.com/MrJamesThe3rd/banklink/internal/journal"
	"github.com/MrJamesThe3rd/banklink/internal/statement"
)

type serviceMocks struct {
	client      *MockBankClient
	connections *MockConnections
	accounts    *MockAccounts
	journals    *MockJournals
	lines       *MockLines
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		client:      NewMockBankClient(ctrl),
		connections: NewMockConnections(ctrl),
		accounts:    NewMockAccounts(ctrl),
		journals:    NewMockJournals(ctrl),
		lines:       NewMockLines(ctrl),
	}

	svc := NewService(m.client, m.connections, m.accounts, m.journals, m.lines)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	return svc, m
}

func testConnection() *connection.Connection {
	return &connection.Connection{
		ID:              uuid.New(),
		Environment:     birbank.EnvLive,
		InitialSyncFrom: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func linkedAccount(connID uuid.UUID, externalID string) (*account.Account, *journal.Journal) {
	j := &journal.Journal{ID: uuid.New(), Type: journal.TypeBank}
	acc := &account.Account{
		ID:           uuid.New(),
		ConnectionID: connID,
		ExternalID:   externalID,
		JournalID:    &j.ID,
	}

	return acc, j
}

func TestService_Sync(t *testing.T) {
	t.Run("DeduplicatesByExternalID", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc, j := linkedAccount(conn.ID, "AZ01")

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().ListByConnection(gomock.Any(), conn.ID).Return([]*account.Account{acc}, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", conn.InitialSyncFrom, gomock.Any()).
			Return([]birbank.TransactionData{
				{ExternalID: "REF1", Amount: -2500, PaymentRef: "coffee"},
				{ExternalID: "REF2", Amount: 10000, PaymentRef: "salary"},
			}, nil)
		m.journals.EXPECT().GetJournal(gomock.Any(), j.ID).Return(j, nil)
		m.lines.EXPECT().
			ExistingExternalIDs(gomock.Any(), j.ID, []string{"REF1", "REF2"}).
			Return(map[string]struct{}{"REF1": {}}, nil)
		m.lines.EXPECT().
			BulkCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lines []*statement.Line) error {
				require.Len(t, lines, 1)
				require.NotNil(t, lines[0].ExternalID)
				assert.Equal(t, "REF2", *lines[0].ExternalID)
				assert.Equal(t, j.ID, lines[0].JournalID)
				return nil
			})
		m.connections.EXPECT().RecordSuccess(gomock.Any(), conn.ID).Return(nil)

		result, err := svc.Sync(context.Background(), conn.ID, Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("SecondRunCreatesNothing", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc, j := linkedAccount(conn.ID, "AZ01")

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().ListByConnection(gomock.Any(), conn.ID).Return([]*account.Account{acc}, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", gomock.Any(), gomock.Any()).
			Return([]birbank.TransactionData{{ExternalID: "REF1"}}, nil)
		m.journals.EXPECT().GetJournal(gomock.Any(), j.ID).Return(j, nil)
		m.lines.EXPECT().
			ExistingExternalIDs(gomock.Any(), j.ID, []string{"REF1"}).
			Return(map[string]struct{}{"REF1": {}}, nil)
		m.connections.EXPECT().RecordSuccess(gomock.Any(), conn.ID).Return(nil)

		result, err := svc.Sync(context.Background(), conn.ID, Options{})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
	})

	t.Run("MissingIdentifierAlwaysCreated", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc, j := linkedAccount(conn.ID, "AZ01")

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().ListByConnection(gomock.Any(), conn.ID).Return([]*account.Account{acc}, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", gomock.Any(), gomock.Any()).
			Return([]birbank.TransactionData{{Amount: -500, PaymentRef: "cash"}}, nil)
		m.journals.EXPECT().GetJournal(gomock.Any(), j.ID).Return(j, nil)
		m.lines.EXPECT().
			ExistingExternalIDs(gomock.Any(), j.ID, []string{}).
			Return(map[string]struct{}{}, nil)
		m.lines.EXPECT().
			BulkCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lines []*statement.Line) error {
				require.Len(t, lines, 1)
				assert.Nil(t, lines[0].ExternalID)
				return nil
			})
		m.connections.EXPECT().RecordSuccess(gomock.Any(), conn.ID).Return(nil)

		result, err := svc.Sync(context.Background(), conn.ID, Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("MissingJournalAborts", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc := &account.Account{ID: uuid.New(), ConnectionID: conn.ID, ExternalID: "AZ01", Name: "Main"}

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().GetAccount(gomock.Any(), acc.ID).Return(acc, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", gomock.Any(), gomock.Any()).
			Return([]birbank.TransactionData{{ExternalID: "REF1"}}, nil)
		m.journals.EXPECT().FindByOnlineAccount(gomock.Any(), acc.ID).Return(nil, journal.ErrNotFound)
		m.connections.EXPECT().MarkError(gomock.Any(), conn.ID, gomock.Any()).Return(nil)

		_, err := svc.Sync(context.Background(), conn.ID, Options{
			TargetAccountID: &acc.ID,
			OnError:         Abort,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoJournal))
	})

	t.Run("PartialFailureContinuesWithoutSuccessStamp", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()

		acc1, j1 := linkedAccount(conn.ID, "AZ01")
		acc2, j2 := linkedAccount(conn.ID, "AZ02")
		acc3, j3 := linkedAccount(conn.ID, "AZ03")

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().
			ListByConnection(gomock.Any(), conn.ID).
			Return([]*account.Account{acc1, acc2, acc3}, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)

		for i, tc := range []struct {
			acc *account.Account
			j   *journal.Journal
		}{{acc1, j1}, {acc2, j2}, {acc3, j3}} {
			ref := []string{"A", "B", "C"}[i]

			m.client.EXPECT().
				ListTransactions(gomock.Any(), birbank.EnvLive, "tok", tc.acc.ExternalID, gomock.Any(), gomock.Any()).
				Return([]birbank.TransactionData{{ExternalID: ref}}, nil)
			m.journals.EXPECT().GetJournal(gomock.Any(), tc.j.ID).Return(tc.j, nil)
			m.lines.EXPECT().
				ExistingExternalIDs(gomock.Any(), tc.j.ID, []string{ref}).
				Return(map[string]struct{}{}, nil)
		}

		m.lines.EXPECT().
			BulkCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lines []*statement.Line) error {
				if lines[0].JournalID == j2.ID {
					return errors.New("deadlock detected")
				}
				return nil
			}).
			Times(3)
		m.connections.EXPECT().MarkError(gomock.Any(), conn.ID, gomock.Any()).Return(nil)

		result, err := svc.Sync(context.Background(), conn.ID, Options{OnError: SkipAndContinue})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("EmptyFetchSkipsAccount", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc := &account.Account{ID: uuid.New(), ConnectionID: conn.ID, ExternalID: "AZ01"}

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().ListByConnection(gomock.Any(), conn.ID).Return([]*account.Account{acc}, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.connections.EXPECT().RecordSuccess(gomock.Any(), conn.ID).Return(nil)

		result, err := svc.Sync(context.Background(), conn.ID, Options{})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
	})

	t.Run("SingleTargetOnMultiAccountConnectionNotStamped", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc, j := linkedAccount(conn.ID, "AZ01")
		other := &account.Account{ID: uuid.New(), ConnectionID: conn.ID, ExternalID: "AZ02"}

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().GetAccount(gomock.Any(), acc.ID).Return(acc, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", gomock.Any(), gomock.Any()).
			Return([]birbank.TransactionData{{ExternalID: "REF1"}}, nil)
		m.journals.EXPECT().GetJournal(gomock.Any(), j.ID).Return(j, nil)
		m.lines.EXPECT().
			ExistingExternalIDs(gomock.Any(), j.ID, []string{"REF1"}).
			Return(map[string]struct{}{}, nil)
		m.lines.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).Return(nil)
		m.accounts.EXPECT().
			ListByConnection(gomock.Any(), conn.ID).
			Return([]*account.Account{acc, other}, nil)

		result, err := svc.Sync(context.Background(), conn.ID, Options{TargetAccountID: &acc.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("SingleTargetOnSingleAccountConnectionStamped", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc, j := linkedAccount(conn.ID, "AZ01")

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().GetAccount(gomock.Any(), acc.ID).Return(acc, nil)
		m.connections.EXPECT().Token(gomock.Any(), conn, false).Return("tok", nil)
		m.client.EXPECT().
			ListTransactions(gomock.Any(), birbank.EnvLive, "tok", "AZ01", gomock.Any(), gomock.Any()).
			Return([]birbank.TransactionData{{ExternalID: "REF1"}}, nil)
		m.journals.EXPECT().GetJournal(gomock.Any(), j.ID).Return(j, nil)
		m.lines.EXPECT().
			ExistingExternalIDs(gomock.Any(), j.ID, []string{"REF1"}).
			Return(map[string]struct{}{}, nil)
		m.lines.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).Return(nil)
		m.accounts.EXPECT().
			ListByConnection(gomock.Any(), conn.ID).
			Return([]*account.Account{acc}, nil)
		m.connections.EXPECT().RecordSuccess(gomock.Any(), conn.ID).Return(nil)

		_, err := svc.Sync(context.Background(), conn.ID, Options{TargetAccountID: &acc.ID})
		require.NoError(t, err)
	})

	t.Run("TokenFailureMarksConnection", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().ListByConnection(gomock.Any(), conn.ID).Return(nil, nil)
		m.connections.EXPECT().
			Token(gomock.Any(), conn, false).
			Return("", &birbank.AuthError{Status: 403})
		m.connections.EXPECT().MarkError(gomock.Any(), conn.ID, gomock.Any()).Return(nil)

		_, err := svc.Sync(context.Background(), conn.ID, Options{})
		require.Error(t, err)

		var authErr *birbank.AuthError
		assert.True(t, errors.As(err, &authErr))
	})

	t.Run("ForeignAccountRejected", func(t *testing.T) {
		svc, m := newTestService(t)
		conn := testConnection()
		acc := &account.Account{ID: uuid.New(), ConnectionID: uuid.New(), ExternalID: "AZ01"}

		m.connections.EXPECT().Get(gomock.Any(), conn.ID).Return(conn, nil)
		m.accounts.EXPECT().GetAccount(gomock.Any(), acc.ID).Return(acc, nil)

		_, err := svc.Sync(context.Background(), conn.ID, Options{TargetAccountID: &acc.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong")
	})
}

func TestNotifications(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		n := SuccessNotification(7)
		assert.Equal(t, "Sync Successful", n.Title)
		assert.Equal(t, "Process complete. Added 7 new transactions.", n.Message)
		assert.Equal(t, SeveritySuccess, n.Severity)
		assert.False(t, n.Sticky)
	})

	t.Run("Failure", func(t *testing.T) {
		n := FailureNotification(errors.New("boom"))
		assert.Equal(t, "Sync Failed", n.Title)
		assert.Equal(t, "System Error: boom", n.Message)
		assert.Equal(t, SeverityDanger, n.Severity)
		assert.True(t, n.Sticky)
	})
}
