package routes

import (
	"chatconnect_server/controllers"
	"chatconnect_server/services"

	"github.com/gorilla/mux"
)

// RegisterSessionRoutes sets up routes for session bootstrap under /api/session
func RegisterSessionRoutes(r *mux.Router, users services.UserStore, locator services.Locator, pollIntervalMs int) {
	controller := controllers.NewSessionController(users, locator, pollIntervalMs)

	sessionRouter := r.PathPrefix("/api/session").Subrouter()
	sessionRouter.HandleFunc("", controller.CreateSession).Methods("POST")
}
