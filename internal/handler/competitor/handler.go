package competitor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/pkg/utils"
)

// Handler exposes competitor brand and keyword management over HTTP.
type Handler struct {
	competitors *competitor.Store
}

// New creates the competitor handler.
func New(competitors *competitor.Store) *Handler {
	return &Handler{competitors: competitors}
}

// RegisterRoutes mounts the competitor routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/competitors", h.handleList)
	r.Post("/competitors", h.handleAdd)
	r.Put("/competitors/{index}", h.handleUpdate)
	r.Delete("/competitors/{index}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	competitors := h.competitors.Load()
	if competitors == nil {
		competitors = []competitor.Competitor{}
	}
	utils.RespondJSON(w, http.StatusOK, competitors)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || len(req.Keywords) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "name and keywords are required")
		return
	}

	if err := h.competitors.Add(req.Name, req.Keywords); err != nil {
		if errors.Is(err, competitor.ErrDuplicateName) {
			utils.RespondError(w, http.StatusConflict, "competitor name already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to save competitor")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid competitor index")
		return
	}

	var req struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || len(req.Keywords) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "name and keywords are required")
		return
	}

	if err := h.competitors.Update(index, req.Name, req.Keywords); err != nil {
		if errors.Is(err, competitor.ErrDuplicateName) {
			utils.RespondError(w, http.StatusConflict, "competitor name already exists")
			return
		}
		utils.RespondError(w, http.StatusNotFound, "competitor not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid competitor index")
		return
	}

	if err := h.competitors.Delete(index); err != nil {
		utils.RespondError(w, http.StatusNotFound, "competitor not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
