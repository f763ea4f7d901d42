package recipient

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rokhoon/geo-briefing/internal/model/recipient"
	"github.com/rokhoon/geo-briefing/pkg/utils"
)

// Handler exposes the email recipient list over HTTP.
type Handler struct {
	recipients *recipient.Store
}

// New creates the recipient handler.
func New(recipients *recipient.Store) *Handler {
	return &Handler{recipients: recipients}
}

// RegisterRoutes mounts the recipient routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/recipients", h.handleList)
	r.Post("/recipients", h.handleAdd)
	r.Delete("/recipients/{index}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	recipients := h.recipients.Load()
	if recipients == nil {
		recipients = []recipient.Recipient{}
	}
	utils.RespondJSON(w, http.StatusOK, recipients)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		utils.RespondError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if err := h.recipients.Add(req.Name, req.Email); err != nil {
		if errors.Is(err, recipient.ErrDuplicateEmail) {
			utils.RespondError(w, http.StatusConflict, "recipient email already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to save recipient")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid recipient index")
		return
	}

	if err := h.recipients.Delete(index); err != nil {
		utils.RespondError(w, http.StatusNotFound, "recipient not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
