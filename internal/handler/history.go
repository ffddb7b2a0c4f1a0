package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/session"
)

// SessionHandler handles the history and preference routes backed by the session cookie.
type SessionHandler struct {
	sessions *session.Store
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// HandleListHistory handles GET /api/v1/history requests.
func (h *SessionHandler) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, model.HistoryResponse{Entries: st.History.Entries()})
}

// HandleClearHistory handles DELETE /api/v1/history requests.
func (h *SessionHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	st.History = st.History.Clear()
	if err := h.sessions.Save(w, st); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteHistoryEntry handles DELETE /api/v1/history/{id} requests.
func (h *SessionHandler) HandleDeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 64 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid history id"))
		return
	}

	st := h.sessions.Load(r)
	next, found := st.History.Remove(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse("history entry not found"))
		return
	}
	st.History = next
	if err := h.sessions.Save(w, st); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetPreferences handles GET /api/v1/preferences requests.
func (h *SessionHandler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	writeJSON(w, http.StatusOK, model.PreferencesResponse{Theme: st.Theme})
}

// HandleToggleTheme handles POST /api/v1/preferences/theme requests.
func (h *SessionHandler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	st.Theme = session.ToggleTheme(st.Theme)
	if err := h.sessions.Save(w, st); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, model.PreferencesResponse{Theme: st.Theme})
}
