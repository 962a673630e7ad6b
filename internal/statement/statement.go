// Package statement models the host ledger's bank statement lines, the
// persisted form of a remote transaction.
package statement

import (
	"time"

	"github.com/google/uuid"
)

// Line is one persisted statement line in a journal.
type Line struct {
	ID        uuid.UUID
	JournalID uuid.UUID

	// ExternalID is the provider's transaction reference and the sole
	// deduplication key, scoped to the journal. Nil means the provider
	// omitted it; such lines are never deduplicated and every ingestion
	// of them creates a new row.
	ExternalID *string

	Date        time.Time
	Amount      int64 // in cents
	PaymentRef  string
	PartnerName string
	CreatedAt   time.Time
}
