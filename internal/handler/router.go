package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	flowHandler "github.com/kreators/easyslang/backend/internal/handler/flow"
	middlewarePkg "github.com/kreators/easyslang/backend/internal/middleware"
	flowService "github.com/kreators/easyslang/backend/internal/service/flow"
	"github.com/kreators/easyslang/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(flowSvc *flowService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		flowHandler.New(flowSvc).RegisterRoutes(api)
	})

	return r
}
