package connection

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/birbank"
)

var ErrNotFound = errors.New("connection not found")

// Status is the health of a provider connection.
type Status string

const (
	StatusNotConnected Status = "not_connected"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

// Connection is one credential set against the provider. It persists
// indefinitely once created; every sync, initialization, and token refresh
// mutates it.
type Connection struct {
	ID          uuid.UUID
	Name        string
	Environment birbank.Environment
	Username    string
	Password    string

	// Cached bearer token. Trusted only while TokenValid holds; both
	// fields are system-maintained and persisted on every refresh.
	Token       string
	TokenExpiry *time.Time

	InitialSyncFrom time.Time
	Status          Status
	LastSuccessAt   *time.Time
	LastError       string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// TokenMargin is the safety margin before expiry within which a cached
// token is no longer trusted.
const TokenMargin = 5 * time.Minute

// TokenValid reports whether a cached token can still be used: it must be
// non-empty and expire more than margin after now.
func TokenValid(token string, expiry *time.Time, now time.Time, margin time.Duration) bool {
	return token != "" && expiry != nil && expiry.After(now.Add(margin))
}
