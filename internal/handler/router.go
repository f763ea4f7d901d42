package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	briefingHandler "github.com/rokhoon/geo-briefing/internal/handler/briefing"
	competitorHandler "github.com/rokhoon/geo-briefing/internal/handler/competitor"
	personaHandler "github.com/rokhoon/geo-briefing/internal/handler/persona"
	questionHandler "github.com/rokhoon/geo-briefing/internal/handler/question"
	recipientHandler "github.com/rokhoon/geo-briefing/internal/handler/recipient"
	middlewarePkg "github.com/rokhoon/geo-briefing/internal/middleware"
	"github.com/rokhoon/geo-briefing/internal/model/history"
	"github.com/rokhoon/geo-briefing/internal/model/recipient"
	briefingService "github.com/rokhoon/geo-briefing/internal/service/briefing"
	"github.com/rokhoon/geo-briefing/internal/service/mail"
	"github.com/rokhoon/geo-briefing/internal/service/report"

	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/model/persona"
	"github.com/rokhoon/geo-briefing/internal/model/question"
)

// Stores bundles the file-backed settings stores shared across handlers.
type Stores struct {
	Questions   *question.Store
	Recipients  *recipient.Store
	Personas    *persona.Store
	Competitors *competitor.Store
	History     *history.Store
}

// NewRouter wires HTTP routes to the settings stores and the briefing
// pipeline.
func NewRouter(stores Stores, orchestrator *briefingService.Orchestrator, mailer *mail.Sender) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	renderer := report.New()

	r.Route("/api", func(api chi.Router) {
		questionHandler.New(stores.Questions).RegisterRoutes(api)
		recipientHandler.New(stores.Recipients).RegisterRoutes(api)
		personaHandler.New(stores.Personas).RegisterRoutes(api)
		competitorHandler.New(stores.Competitors).RegisterRoutes(api)
		briefingHandler.New(orchestrator, stores.History, stores.Recipients, renderer, mailer).RegisterRoutes(api)
	})

	return r
}
