package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/account"
)

type Handler struct {
	reconciler *account.Reconciler
}

func NewHandler(reconciler *account.Reconciler) *Handler {
	return &Handler{reconciler: reconciler}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/{id}/journal", h.createJournal)
}

type accountResponse struct {
	ID           uuid.UUID  `json:"id"`
	ConnectionID uuid.UUID  `json:"connection_id"`
	ExternalID   string     `json:"external_id"`
	Name         string     `json:"name"`
	Balance      int64      `json:"balance"`
	CurrencyCode string     `json:"currency_code"`
	JournalID    *uuid.UUID `json:"journal_id,omitempty"`
	SyncFrom     *time.Time `json:"sync_from,omitempty"`
}

func toResponse(acc *account.Account) accountResponse {
	return accountResponse{
		ID:           acc.ID,
		ConnectionID: acc.ConnectionID,
		ExternalID:   acc.ExternalID,
		Name:         acc.Name,
		Balance:      acc.Balance,
		CurrencyCode: acc.CurrencyCode,
		JournalID:    acc.JournalID,
		SyncFrom:     acc.SyncFrom,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	connectionID, err := uuid.Parse(r.URL.Query().Get("connection_id"))
	if err != nil {
		http.Error(w, "invalid connection_id", http.StatusBadRequest)
		return
	}

	accounts, err := h.reconciler.List(r.Context(), connectionID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		out[i] = toResponse(acc)
	}

	writeJSON(w, http.StatusOK, out)
}

type createJournalResponse struct {
	Created bool       `json:"created"`
	ID      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name,omitempty"`
}

func (h *Handler) createJournal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	j, err := h.reconciler.CreateJournalForAccount(r.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	// Nil journal means the account was already linked; a no-op.
	if j == nil {
		writeJSON(w, http.StatusOK, createJournalResponse{Created: false})
		return
	}

	writeJSON(w, http.StatusCreated, createJournalResponse{Created: true, ID: &j.ID, Name: j.Name})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
