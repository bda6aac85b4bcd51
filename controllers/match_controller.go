package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"chatconnect_server/services"
	"chatconnect_server/utils"
)

// MatchController handles the matchmaking poll endpoint
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// FindMatch resolves one poll for the calling user. Every matchmaking
// outcome is a 200 with a status field; clients keep polling on
// "waiting", join the room on "success", and go back to the start page on
// "error".
func (mc *MatchController) FindMatch(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserID(r)
	if userID == "" {
		writeMatchJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "user id is required",
		})
		return
	}

	result, err := mc.MatchService.FindMatch(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeMatchJSON(w, http.StatusOK, map[string]string{
				"status":  "error",
				"message": "User not found",
			})
			return
		}
		log.Printf("❌ find_match failed for %s: %v", userID, err)
		writeMatchJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "internal error",
		})
		return
	}

	switch result.Status {
	case services.MatchStatusMatched:
		writeMatchJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"room_id": result.RoomID,
		})
	case services.MatchStatusLimitReached:
		writeMatchJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "Maximum chat limit reached",
		})
	default:
		writeMatchJSON(w, http.StatusOK, map[string]string{
			"status": "waiting",
		})
	}
}

func writeMatchJSON(w http.ResponseWriter, code int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
