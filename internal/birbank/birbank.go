package birbank

import "time"

// Environment selects which Birbank Business host the client talks to.
type Environment string

const (
	EnvTest Environment = "test"
	EnvLive Environment = "live"
)

func (e Environment) Valid() bool {
	return e == EnvTest || e == EnvLive
}

// AccountData is one bank account as reported by the accounts endpoint.
type AccountData struct {
	ExternalID   string // IBAN / account number, the reconciliation key
	Name         string
	Balance      int64 // in cents
	CurrencyCode string
}

// TransactionData is one statement entry as reported by the statement endpoint.
// ExternalID may be empty; such transactions can never be deduplicated.
type TransactionData struct {
	ExternalID  string
	Date        time.Time
	Amount      int64 // in cents
	PaymentRef  string
	PartnerName string
}
