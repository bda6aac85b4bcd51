package routes

import (
	"chatconnect_server/controllers"
	"chatconnect_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the matchmaking poll endpoint. The path is
// /find_match at the root, matching what the chat page polls.
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	r.HandleFunc("/find_match", controller.FindMatch).Methods("GET")
}
