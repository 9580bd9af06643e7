package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	applog "herbarium/internal/log"
	"herbarium/internal/repository"
)

const flashKey = "flash"

// Handlers carries the injected dependencies every route handler needs: the
// database handle, the two repositories owning multi-statement writes, and
// the session manager used for admin flash messages. Nothing here is package
// level; the set is constructed once at server start.
type Handlers struct {
	db        *gorm.DB
	sessions  *scs.SessionManager
	plantings *repository.Plantings
	plots     *repository.Plots
}

// New wires a handler set against a database handle and session manager.
func New(db *gorm.DB, sessions *scs.SessionManager) *Handlers {
	return &Handlers{
		db:        db,
		sessions:  sessions,
		plantings: repository.NewPlantings(db),
		plots:     repository.NewPlots(db),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseID extracts a numeric identifier from the remainder of a route path.
func parseID(segment string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(segment), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// writeRepositoryError maps the repository error taxonomy onto HTTP statuses:
// validation and conflict to 400, missing rows to 404, anything else to a
// generic 500 that does not leak driver detail.
func writeRepositoryError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConflict):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		applog.Error(r.Context(), fallback, "error", err)
		writeJSONError(w, http.StatusInternalServerError, fallback)
	}
}

// writePersistenceError is the equivalent for handlers that talk to gorm
// directly rather than through a repository.
func writePersistenceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		writeJSONError(w, http.StatusBadRequest, "a record with the same unique value already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		writeJSONError(w, http.StatusBadRequest, "referenced record is missing or still in use")
	default:
		applog.Error(r.Context(), fallback, "error", err)
		writeJSONError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *Handlers) putFlash(ctx context.Context, message string) {
	if h.sessions == nil {
		return
	}
	h.sessions.Put(ctx, flashKey, message)
}

func (h *Handlers) popFlash(ctx context.Context) string {
	if h.sessions == nil {
		return ""
	}
	return h.sessions.PopString(ctx, flashKey)
}
