package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chatconnect_server/models"
	"chatconnect_server/services"
	"chatconnect_server/utils"

	"github.com/google/uuid"
)

// SessionController hands out the opaque session tokens that identify
// anonymous users on every later call.
type SessionController struct {
	Users          services.UserStore
	Locator        services.Locator
	PollIntervalMs int
}

// NewSessionController creates a new SessionController instance
func NewSessionController(users services.UserStore, locator services.Locator, pollIntervalMs int) *SessionController {
	return &SessionController{Users: users, Locator: locator, PollIntervalMs: pollIntervalMs}
}

// CreateSession mints a fresh user: a uuid token plus the city resolved
// from the caller's address. The client keeps the token and presents it on
// every subsequent request.
func (sc *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	user := models.User{
		ID:        uuid.NewString(),
		Location:  sc.Locator.Locate(r.Context(), utils.ClientIP(r)),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := sc.Users.Create(r.Context(), user); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create session: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"userId":         user.ID,
		"location":       user.Location,
		"pollIntervalMs": sc.PollIntervalMs,
	})
}
