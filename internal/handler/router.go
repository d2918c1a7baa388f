package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/mindmate-ai/backend/internal/handler/chat"
	moodHandler "github.com/mindmate-ai/backend/internal/handler/mood"
	middlewarePkg "github.com/mindmate-ai/backend/internal/middleware"
	"github.com/mindmate-ai/backend/internal/service/journal"
	"github.com/mindmate-ai/backend/internal/service/relay"
	"github.com/mindmate-ai/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(relaySvc *relay.Service, journalSvc *journal.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	chatHandler.New(relaySvc).RegisterRoutes(r)
	moodHandler.New(journalSvc).RegisterRoutes(r)

	return r
}
