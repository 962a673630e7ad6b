package sync

import (
	"errors"
	"fmt"
)

// ErrNoJournal marks an account that cannot be synced until a journal is
// linked; user action is required before a retry can work.
var ErrNoJournal = errors.New("no journal linked")

type NoJournalError struct {
	AccountName string
}

func (e *NoJournalError) Error() string {
	return fmt.Sprintf("no journal linked to account %s, cannot save transactions", e.AccountName)
}

func (e *NoJournalError) Is(target error) bool { return target == ErrNoJournal }

// ErrorPolicy tells the pipeline what to do when one account's batch fails.
// Callers pass it explicitly instead of the pipeline guessing from context.
type ErrorPolicy int

const (
	// SkipAndContinue logs the failure, records it on the connection and
	// moves on to the next account.
	SkipAndContinue ErrorPolicy = iota
	// Abort raises the failure immediately; the right policy when the
	// caller targeted a single account and wants direct feedback.
	Abort
)

// Severity mirrors the host UI's notification levels.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// Notification is the payload handed back to the host UI layer after a
// sync or initialization run.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Sticky   bool     `json:"sticky"`
}

func SuccessNotification(created int) Notification {
	return Notification{
		Title:    "Sync Successful",
		Message:  fmt.Sprintf("Process complete. Added %d new transactions.", created),
		Severity: SeveritySuccess,
		Sticky:   false,
	}
}

func FailureNotification(err error) Notification {
	return Notification{
		Title:    "Sync Failed",
		Message:  fmt.Sprintf("System Error: %v", err),
		Severity: SeverityDanger,
		Sticky:   true,
	}
}
