package connection

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/banklink/internal/account"
	"github.com/MrJamesThe3rd/banklink/internal/birbank"
	"github.com/MrJamesThe3rd/banklink/internal/connection"
	"github.com/MrJamesThe3rd/banklink/internal/journal"
	"github.com/MrJamesThe3rd/banklink/internal/sync"
)

type JournalLister interface {
	ListByConnection(ctx context.Context, connectionID uuid.UUID) ([]*journal.Journal, error)
}

type LineCounter interface {
	CountByJournal(ctx context.Context, journalID uuid.UUID) (int, error)
}

type Handler struct {
	svc        *connection.Service
	reconciler *account.Reconciler
	syncer     *sync.Service
	journals   JournalLister
	lines      LineCounter
}

func NewHandler(svc *connection.Service, reconciler *account.Reconciler, syncer *sync.Service, journals JournalLister, lines LineCounter) *Handler {
	return &Handler{svc: svc, reconciler: reconciler, syncer: syncer, journals: journals, lines: lines}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/journals", h.listJournals)
	r.Post("/{id}/initialize", h.initialize)
	r.Post("/{id}/sync", h.sync)
	r.Post("/{id}/reset", h.reset)
}

type createConnectionRequest struct {
	Name            string     `json:"name"`
	Environment     string     `json:"environment"`
	Username        string     `json:"username"`
	Password        string     `json:"password"`
	InitialSyncFrom *time.Time `json:"initial_sync_from"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.svc.Create(r.Context(), connection.CreateParams{
		Name:            req.Name,
		Environment:     birbank.Environment(req.Environment),
		Username:        req.Username,
		Password:        req.Password,
		InitialSyncFrom: req.InitialSyncFrom,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(conn))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	conns, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(conns))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	conn, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, connection.ErrNotFound) {
			http.Error(w, "connection not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(conn))
}

func (h *Handler) listJournals(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	journals, err := h.journals.ListByConnection(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]journalResponse, len(journals))

	for i, j := range journals {
		count, err := h.lines.CountByJournal(r.Context(), j.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out[i] = toJournalResponse(j, count)
	}

	writeJSON(w, http.StatusOK, out)
}

// initialize is the explicit connection setup action: it refreshes the
// token, pulls the remote account list and auto-links journals. Failures
// are blocking, not soft notifications.
func (h *Handler) initialize(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.reconciler.InitializeConnection(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sync.Notification{
		Title:    "Connection Successful",
		Message:  "Accounts fetched and linked.",
		Severity: sync.SeveritySuccess,
	})
}

// sync runs the ingestion pipeline. An optional account_id query parameter
// narrows the run to one account, which also switches the error policy to
// Abort for direct feedback.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	opts := sync.Options{OnError: sync.SkipAndContinue}

	if raw := r.URL.Query().Get("account_id"); raw != "" {
		accountID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid account_id", http.StatusBadRequest)
			return
		}

		opts.TargetAccountID = &accountID
		opts.OnError = sync.Abort
	}

	result, err := h.syncer.Sync(r.Context(), id, opts)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sync.SuccessNotification(result.Created))
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Reset(r.Context(), id); err != nil {
		if errors.Is(err, connection.ErrNotFound) {
			http.Error(w, "connection not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeFailure maps domain errors to statuses and ships the failure
// notification payload as the body.
func writeFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var authErr *birbank.AuthError

	var fetchErr *birbank.FetchError

	switch {
	case errors.Is(err, connection.ErrNotFound), errors.Is(err, account.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, sync.ErrNoJournal):
		status = http.StatusConflict
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
	case errors.As(err, &fetchErr):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, sync.FailureNotification(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
