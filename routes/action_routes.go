package routes

import (
	"chatconnect_server/controllers"
	"chatconnect_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for in-room actions under /api/action
func RegisterActionRoutes(r *mux.Router, moderation *services.ModerationService) {
	controller := controllers.NewActionController(moderation)

	actionRouter := r.PathPrefix("/api/action").Subrouter()
	actionRouter.HandleFunc("/report", controller.Report).Methods("POST")
	actionRouter.HandleFunc("/block", controller.Block).Methods("POST")
}
