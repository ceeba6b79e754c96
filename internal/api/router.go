package api

import (
	"github.com/gorilla/mux"

	"github.com/rs82696/Memeber-qa-Service/internal/api/recovery"
	"github.com/rs82696/Memeber-qa-Service/internal/api/requestid"
	"github.com/rs82696/Memeber-qa-Service/internal/services"
)

// NewRouter wires all HTTP routes to their handlers.
func NewRouter(svc *services.QAService) *mux.Router {
	root := mux.NewRouter()

	// request id first so the recovery log can carry it
	root.Use(requestid.Middleware)
	root.Use(recovery.Middleware)

	ask := NewAskHandler(svc)
	root.HandleFunc("/ask", ask.AskPost).Methods("POST")
	root.HandleFunc("/ask", ask.AskGet).Methods("GET")

	reload := NewReloadHandler(svc)
	root.HandleFunc("/reload", reload.Reload).Methods("POST")

	healthHandler := NewHealthHandler(svc)
	root.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	return root
}
