package briefing

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	model "github.com/rokhoon/geo-briefing/internal/model/briefing"
	"github.com/rokhoon/geo-briefing/internal/model/history"
	"github.com/rokhoon/geo-briefing/internal/model/recipient"
	briefingService "github.com/rokhoon/geo-briefing/internal/service/briefing"
	"github.com/rokhoon/geo-briefing/internal/service/mail"
	"github.com/rokhoon/geo-briefing/internal/service/report"
	"github.com/rokhoon/geo-briefing/internal/service/stats"
	"github.com/rokhoon/geo-briefing/pkg/utils"
)

// Handler exposes briefing runs, the archive, stats, trend, and email
// delivery over HTTP.
type Handler struct {
	orchestrator *briefingService.Orchestrator
	history      *history.Store
	recipients   *recipient.Store
	renderer     *report.Renderer
	mailer       *mail.Sender
}

// New creates the briefing handler.
func New(orchestrator *briefingService.Orchestrator, hist *history.Store, recipients *recipient.Store, renderer *report.Renderer, mailer *mail.Sender) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		history:      hist,
		recipients:   recipients,
		renderer:     renderer,
		mailer:       mailer,
	}
}

// RegisterRoutes mounts the briefing routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/briefings/run", h.handleRun)
	r.Get("/briefings", h.handleListHistory)
	r.Get("/briefings/trend", h.handleTrend)
	r.Get("/briefings/{index}", h.handleGet)
	r.Get("/briefings/{index}/stats", h.handleStats)
	r.Get("/briefings/{index}/report", h.handleReport)
	r.Post("/briefings/{index}/email", h.handleEmail)
}

// runEvent is one SSE progress message emitted during a briefing run.
type runEvent struct {
	Completed int    `json:"completed,omitempty"`
	Total     int    `json:"total,omitempty"`
	Question  string `json:"question,omitempty"`
	EntryID   string `json:"entryId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Message   string `json:"message,omitempty"`
}

// handleRun executes a briefing run and streams progress over SSE: one
// "question" event per completed question, then "done" with the archived
// entry, or "error". Configuration problems are rejected with a plain JSON
// error before the stream opens.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.CheckReady(); err != nil {
		utils.RespondError(w, http.StatusPreconditionFailed, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEEvent(w, flusher, "start", runEvent{Message: "briefing started"})

	_, entry, err := h.orchestrator.Run(r.Context(), func(completed, total int, question string) {
		utils.SendSSEEvent(w, flusher, "question", runEvent{
			Completed: completed,
			Total:     total,
			Question:  question,
		})
	})
	if err != nil {
		log.Printf("[briefing] run failed: %v", err)
		utils.SendSSEEvent(w, flusher, "error", runEvent{Message: err.Error()})
		return
	}

	utils.SendSSEEvent(w, flusher, "done", runEvent{
		EntryID:   entry.ID,
		Timestamp: entry.Timestamp,
	})
}

// historySummary is the archive listing shape: enough to render the recent
// briefings strip without shipping every answer.
type historySummary struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Questions int    `json:"questions"`
}

func (h *Handler) handleListHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.history.Load()
	summaries := make([]historySummary, 0, len(entries))
	for i, e := range entries {
		summaries = append(summaries, historySummary{
			Index:     i,
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Questions: len(e.Results),
		})
	}
	utils.RespondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.entryFromRequest(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, entry)
}

// handleStats recomputes mention stats for an archived run using the
// competitor snapshot stored with it, not the live configuration.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.entryFromRequest(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats.Calculate(entry.Results, entry.Competitors))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.entryFromRequest(w, r)
	if !ok {
		return
	}

	html, err := h.renderer.Dashboard(entry.Results, entry.Competitors)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// handleEmail renders the archived run as an HTML report and sends it to
// every registered recipient. A transport failure is reported back; the
// archive is untouched either way.
func (h *Handler) handleEmail(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.entryFromRequest(w, r)
	if !ok {
		return
	}

	recipients := h.recipients.Load()
	if len(recipients) == 0 {
		utils.RespondError(w, http.StatusPreconditionFailed, "no recipients configured")
		return
	}

	body, err := h.renderer.Email(entry.Results, entry.Competitors)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	if err := h.mailer.Send(recipients, body); err != nil {
		utils.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "sent",
		"recipients": len(recipients),
	})
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, report.BuildTrend(h.history.Load()))
}

func (h *Handler) entryFromRequest(w http.ResponseWriter, r *http.Request) (model.Entry, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid briefing index")
		return model.Entry{}, false
	}

	entry, err := h.history.Get(index)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "briefing not found")
		return model.Entry{}, false
	}
	return entry, true
}
