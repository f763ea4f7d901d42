package persona

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rokhoon/geo-briefing/internal/model/persona"
	"github.com/rokhoon/geo-briefing/pkg/utils"
)

// Handler exposes asker persona management over HTTP.
type Handler struct {
	personas *persona.Store
}

// New creates the persona handler.
func New(personas *persona.Store) *Handler {
	return &Handler{personas: personas}
}

// RegisterRoutes mounts the persona routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleList)
	r.Post("/personas", h.handleAdd)
	r.Put("/personas/{index}/active", h.handleSetActive)
	r.Delete("/personas/{index}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	personas := h.personas.Load()
	if personas == nil {
		personas = []persona.Persona{}
	}
	utils.RespondJSON(w, http.StatusOK, personas)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Prompt == "" {
		utils.RespondError(w, http.StatusBadRequest, "name and prompt are required")
		return
	}

	if err := h.personas.Add(req.Name, req.Prompt); err != nil {
		if errors.Is(err, persona.ErrLimitReached) {
			utils.RespondError(w, http.StatusConflict, "persona limit reached (max 5)")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to save persona")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (h *Handler) handleSetActive(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid persona index")
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "active flag is required")
		return
	}

	if err := h.personas.SetActive(index, req.Active); err != nil {
		utils.RespondError(w, http.StatusNotFound, "persona not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid persona index")
		return
	}

	if err := h.personas.Delete(index); err != nil {
		utils.RespondError(w, http.StatusNotFound, "persona not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
