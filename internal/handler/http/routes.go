package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const listAssignmentsPath = "/api/deviceAssignments"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Post(h.assignmentsPath, h.updateDeviceAssignments)
	router.Get(listAssignmentsPath, h.listDeviceAssignments)

	router.Post(h.configPath, h.updateConfig)
	router.Get(h.configPath, h.getConfig)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
