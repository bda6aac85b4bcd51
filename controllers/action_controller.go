package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatconnect_server/services"
	"chatconnect_server/utils"
)

// ActionController exposes the in-room report and block hooks
type ActionController struct {
	Moderation *services.ModerationService
}

// NewActionController creates a new ActionController instance
func NewActionController(moderation *services.ModerationService) *ActionController {
	return &ActionController{Moderation: moderation}
}

type actionRequest struct {
	Room string `json:"room"`
}

// Report handles a report raised against the user's counterpart in a room
func (ac *ActionController) Report(w http.ResponseWriter, r *http.Request) {
	ac.handle(w, r, ac.Moderation.Report, "report recorded")
}

// Block handles a block raised against the user's counterpart in a room
func (ac *ActionController) Block(w http.ResponseWriter, r *http.Request) {
	ac.handle(w, r, ac.Moderation.Block, "block recorded")
}

func (ac *ActionController) handle(w http.ResponseWriter, r *http.Request, action func(roomID, userID string) error, message string) {
	userID := utils.UserID(r)
	if userID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Room == "" {
		http.Error(w, "room is required", http.StatusBadRequest)
		return
	}

	if err := action(req.Room, userID); err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			http.Error(w, "not a member of this room", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
