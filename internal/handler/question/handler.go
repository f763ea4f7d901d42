package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rokhoon/geo-briefing/internal/model/question"
	"github.com/rokhoon/geo-briefing/pkg/utils"
)

// Handler exposes the briefing question list over HTTP.
type Handler struct {
	questions *question.Store
}

// New creates the question handler.
func New(questions *question.Store) *Handler {
	return &Handler{questions: questions}
}

// RegisterRoutes mounts the question routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/questions", h.handleList)
	r.Post("/questions", h.handleAdd)
	r.Put("/questions", h.handleReplace)
	r.Put("/questions/{index}", h.handleUpdate)
	r.Delete("/questions/{index}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	questions := h.questions.Load()
	if questions == nil {
		questions = []string{}
	}
	utils.RespondJSON(w, http.StatusOK, questions)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		utils.RespondError(w, http.StatusBadRequest, "question text is required")
		return
	}

	if err := h.questions.Add(req.Text); err != nil {
		if errors.Is(err, question.ErrDuplicate) {
			utils.RespondError(w, http.StatusConflict, "question already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to save question")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// handleReplace swaps in a whole new question list, used to restore the
// question set from a historical run.
func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Questions []string `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "question list is required")
		return
	}

	if err := h.questions.Save(req.Questions); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save questions")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "replaced"})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		utils.RespondError(w, http.StatusBadRequest, "question text is required")
		return
	}

	if err := h.questions.Update(index, req.Text); err != nil {
		utils.RespondError(w, http.StatusNotFound, "question not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	if err := h.questions.Delete(index); err != nil {
		utils.RespondError(w, http.StatusNotFound, "question not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
