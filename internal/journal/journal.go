// Package journal models the host accounting system's bank journals. The
// connector creates and links journals but the host owns them; everything
// here goes through the same create/search/link operations the host exposes.
package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("journal not found")

type Type string

const TypeBank Type = "bank"

// Journal is one bank journal. At most one online account is linked to a
// journal at a time; the match key is bank account number equality.
type Journal struct {
	ID                uuid.UUID
	Name              string
	Type              Type
	Code              string
	CurrencyCode      string
	BankAccountNumber string
	OnlineAccountID   *uuid.UUID
	CreatedAt         time.Time
}
