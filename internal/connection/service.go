package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/birbank"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=connection
type Repository interface {
	CreateConnection(ctx context.Context, conn *Connection) error
	GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error)
	ListConnections(ctx context.Context) ([]*Connection, error)

	UpdateToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	MarkError(ctx context.Context, id uuid.UUID, msg string) error
	RecordSuccess(ctx context.Context, id uuid.UUID, at time.Time) error
}

type Authenticator interface {
	Login(ctx context.Context, env birbank.Environment, username, password string) (string, error)
}

const (
	// The provider invalidates sessions server-side after roughly an hour;
	// 50 minutes is the session length we trust, not a server-supplied TTL.
	tokenSession = 50 * time.Minute

	defaultSyncWindow = 90 * 24 * time.Hour
)

type Service struct {
	repo Repository
	auth Authenticator
	now  func() time.Time
}

func NewService(repo Repository, auth Authenticator) *Service {
	return &Service{repo: repo, auth: auth, now: time.Now}
}

type CreateParams struct {
	Name            string
	Environment     birbank.Environment
	Username        string
	Password        string
	InitialSyncFrom *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Connection, error) {
	env := params.Environment
	if env == "" {
		env = birbank.EnvLive
	}

	if !env.Valid() {
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	syncFrom := s.now().Add(-defaultSyncWindow)
	if params.InitialSyncFrom != nil {
		syncFrom = *params.InitialSyncFrom
	}

	conn := &Connection{
		Name:            params.Name,
		Environment:     env,
		Username:        params.Username,
		Password:        params.Password,
		InitialSyncFrom: syncFrom,
		Status:          StatusNotConnected,
	}

	if err := s.repo.CreateConnection(ctx, conn); err != nil {
		return nil, err
	}

	return conn, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Connection, error) {
	return s.repo.GetConnection(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Connection, error) {
	return s.repo.ListConnections(ctx)
}

// Token returns a bearer token for the connection, reusing the cached one
// while it is still valid. The short-circuit is deliberate: the provider
// rate-limits its login endpoint. On refresh the new token and expiry are
// persisted and mirrored onto conn.
func (s *Service) Token(ctx context.Context, conn *Connection, forceRefresh bool) (string, error) {
	now := s.now()
	if !forceRefresh && TokenValid(conn.Token, conn.TokenExpiry, now, TokenMargin) {
		return conn.Token, nil
	}

	token, err := s.auth.Login(ctx, conn.Environment, conn.Username, conn.Password)
	if err != nil {
		return "", err
	}

	expiry := now.Add(tokenSession)
	if err := s.repo.UpdateToken(ctx, conn.ID, token, expiry); err != nil {
		return "", fmt.Errorf("persisting token: %w", err)
	}

	conn.Token = token
	conn.TokenExpiry = &expiry

	return token, nil
}

// MarkError records the failure message and flips the connection to error.
func (s *Service) MarkError(ctx context.Context, id uuid.UUID, msg string) error {
	return s.repo.MarkError(ctx, id, msg)
}

// RecordSuccess stamps the last successful sync, clears the error message
// and flips the connection to connected.
func (s *Service) RecordSuccess(ctx context.Context, id uuid.UUID) error {
	return s.repo.RecordSuccess(ctx, id, s.now())
}

// Reset puts the connection back to not_connected. Credentials, token and
// sync history are retained; only the status changes.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusNotConnected)
}
