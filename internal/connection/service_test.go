package connection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/banklink/internal/birbank"
)

func TestTokenValid(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	expiryIn := func(d time.Duration) *time.Time {
		e := now.Add(d)
		return &e
	}

	type testCase struct {
		name   string
		token  string
		expiry *time.Time
		want   bool
	}

	tests := []testCase{
		{name: "EmptyToken", token: "", expiry: expiryIn(time.Hour), want: false},
		{name: "NilExpiry", token: "abc", expiry: nil, want: false},
		{name: "WellWithinWindow", token: "abc", expiry: expiryIn(40 * time.Minute), want: true},
		{name: "JustOverMargin", token: "abc", expiry: expiryIn(5*time.Minute + time.Second), want: true},
		{name: "ExactlyAtMargin", token: "abc", expiry: expiryIn(5 * time.Minute), want: false},
		{name: "JustUnderMargin", token: "abc", expiry: expiryIn(4*time.Minute + 59*time.Second), want: false},
		{name: "Expired", token: "abc", expiry: expiryIn(-time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenValid(tt.token, tt.expiry, now, TokenMargin)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestService(t *testing.T, now time.Time) (*Service, *MockRepository, *MockAuthenticator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	auth := NewMockAuthenticator(ctrl)

	svc := NewService(repo, auth)
	svc.now = func() time.Time { return now }

	return svc, repo, auth
}

func TestService_Token(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	newConn := func(token string, expiry *time.Time) *Connection {
		return &Connection{
			ID:          uuid.New(),
			Environment: birbank.EnvLive,
			Username:    "user",
			Password:    "pass",
			Token:       token,
			TokenExpiry: expiry,
		}
	}

	t.Run("RefreshCachesFor50Minutes", func(t *testing.T) {
		svc, repo, auth := newTestService(t, now)
		conn := newConn("", nil)

		auth.EXPECT().
			Login(gomock.Any(), birbank.EnvLive, "user", "pass").
			Return("abc", nil)
		repo.EXPECT().
			UpdateToken(gomock.Any(), conn.ID, "abc", now.Add(50*time.Minute)).
			Return(nil)

		token, err := svc.Token(context.Background(), conn, false)
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
		assert.Equal(t, "abc", conn.Token)
		require.NotNil(t, conn.TokenExpiry)
		assert.Equal(t, now.Add(50*time.Minute), *conn.TokenExpiry)
	})

	t.Run("SecondCallReusesCache", func(t *testing.T) {
		svc, repo, auth := newTestService(t, now)
		conn := newConn("", nil)

		// At most one login within the session window.
		auth.EXPECT().
			Login(gomock.Any(), birbank.EnvLive, "user", "pass").
			Return("abc", nil).
			Times(1)
		repo.EXPECT().
			UpdateToken(gomock.Any(), conn.ID, "abc", gomock.Any()).
			Return(nil).
			Times(1)

		for i := 0; i < 2; i++ {
			token, err := svc.Token(context.Background(), conn, false)
			require.NoError(t, err)
			assert.Equal(t, "abc", token)
		}
	})

	t.Run("ExpiryJustOverMarginReused", func(t *testing.T) {
		svc, _, _ := newTestService(t, now)
		expiry := now.Add(5*time.Minute + time.Second)
		conn := newConn("cached", &expiry)

		token, err := svc.Token(context.Background(), conn, false)
		require.NoError(t, err)
		assert.Equal(t, "cached", token)
	})

	t.Run("ExpiryJustUnderMarginRefreshed", func(t *testing.T) {
		svc, repo, auth := newTestService(t, now)
		expiry := now.Add(4*time.Minute + 59*time.Second)
		conn := newConn("stale", &expiry)

		auth.EXPECT().
			Login(gomock.Any(), birbank.EnvLive, "user", "pass").
			Return("fresh", nil)
		repo.EXPECT().
			UpdateToken(gomock.Any(), conn.ID, "fresh", gomock.Any()).
			Return(nil)

		token, err := svc.Token(context.Background(), conn, false)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)
	})

	t.Run("ForceRefreshIgnoresCache", func(t *testing.T) {
		svc, repo, auth := newTestService(t, now)
		expiry := now.Add(time.Hour)
		conn := newConn("cached", &expiry)

		auth.EXPECT().
			Login(gomock.Any(), birbank.EnvLive, "user", "pass").
			Return("fresh", nil)
		repo.EXPECT().
			UpdateToken(gomock.Any(), conn.ID, "fresh", gomock.Any()).
			Return(nil)

		token, err := svc.Token(context.Background(), conn, true)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)
	})

	t.Run("LoginFailure", func(t *testing.T) {
		svc, _, auth := newTestService(t, now)
		conn := newConn("", nil)

		auth.EXPECT().
			Login(gomock.Any(), birbank.EnvLive, "user", "pass").
			Return("", &birbank.AuthError{Reason: "no token returned"})

		_, err := svc.Token(context.Background(), conn, false)
		require.Error(t, err)

		var authErr *birbank.AuthError
		assert.True(t, errors.As(err, &authErr))
	})
}

func TestService_Create(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("Defaults", func(t *testing.T) {
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().
			CreateConnection(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, conn *Connection) error {
				conn.ID = uuid.New()
				return nil
			})

		conn, err := svc.Create(context.Background(), CreateParams{
			Name:     "Main",
			Username: "user",
			Password: "pass",
		})
		require.NoError(t, err)

		assert.Equal(t, birbank.EnvLive, conn.Environment)
		assert.Equal(t, StatusNotConnected, conn.Status)
		assert.Equal(t, now.Add(-90*24*time.Hour), conn.InitialSyncFrom)
	})

	t.Run("UnknownEnvironment", func(t *testing.T) {
		svc, _, _ := newTestService(t, now)

		_, err := svc.Create(context.Background(), CreateParams{Environment: "staging"})
		assert.Error(t, err)
	})
}

func TestService_Reset(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(t, now)
	id := uuid.New()

	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, StatusNotConnected).
		Return(nil)

	require.NoError(t, svc.Reset(context.Background(), id))
}
