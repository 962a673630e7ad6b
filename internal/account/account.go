package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

// Account is a bank account reported by the provider, mirrored locally.
// ExternalID (the IBAN) is the reconciliation key: re-running initialization
// with the same identifier updates the record, never duplicates it.
type Account struct {
	ID           uuid.UUID
	ConnectionID uuid.UUID
	ExternalID   string
	Name         string
	Balance      int64 // in cents
	CurrencyCode string

	// JournalID is the linked host journal, nil until auto-linking or
	// explicit journal creation resolves one.
	JournalID *uuid.UUID

	// SyncFrom overrides the connection's initial sync date for this
	// account when set.
	SyncFrom *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}
