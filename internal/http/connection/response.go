package connection

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/connection"
	"github.com/MrJamesThe3rd/banklink/internal/journal"
)

type connectionResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Environment     string     `json:"environment"`
	Status          string     `json:"status"`
	InitialSyncFrom time.Time  `json:"initial_sync_from"`
	LastSuccessAt   *time.Time `json:"last_success_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toResponse(conn *connection.Connection) connectionResponse {
	// Credentials and token never leave the service.
	return connectionResponse{
		ID:              conn.ID,
		Name:            conn.Name,
		Environment:     string(conn.Environment),
		Status:          string(conn.Status),
		InitialSyncFrom: conn.InitialSyncFrom,
		LastSuccessAt:   conn.LastSuccessAt,
		LastError:       conn.LastError,
		CreatedAt:       conn.CreatedAt,
	}
}

func toResponseList(conns []*connection.Connection) []connectionResponse {
	out := make([]connectionResponse, len(conns))
	for i, conn := range conns {
		out[i] = toResponse(conn)
	}

	return out
}

type journalResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	CurrencyCode      string    `json:"currency_code"`
	BankAccountNumber string    `json:"bank_account_number"`
	LineCount         int       `json:"line_count"`
}

func toJournalResponse(j *journal.Journal, lineCount int) journalResponse {
	return journalResponse{
		ID:                j.ID,
		Name:              j.Name,
		Code:              j.Code,
		CurrencyCode:      j.CurrencyCode,
		BankAccountNumber: j.BankAccountNumber,
		LineCount:         lineCount,
	}
}
