package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatconnect_server/models"
	"chatconnect_server/routes"
	"chatconnect_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLocator struct {
	city string
	ips  []string
}

func (sl *staticLocator) Locate(_ context.Context, ip string) string {
	sl.ips = append(sl.ips, ip)
	return sl.city
}

func TestCreateSession(t *testing.T) {
	users := services.NewUserService()
	locator := &staticLocator{city: "chennai"}

	r := mux.NewRouter()
	routes.RegisterSessionRoutes(r, users, locator, models.DefaultPollIntervalMs)

	req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		UserID         string `json:"userId"`
		Location       string `json:"location"`
		PollIntervalMs int    `json:"pollIntervalMs"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body.UserID)
	assert.Equal(t, "chennai", body.Location)
	assert.Equal(t, models.DefaultPollIntervalMs, body.PollIntervalMs)
	assert.Equal(t, []string{"203.0.113.7"}, locator.ips, "lookup uses the forwarded client address")

	// the minted user is registered with a zero match count
	user, err := users.Get(context.Background(), body.UserID)
	require.NoError(t, err)
	assert.Equal(t, "chennai", user.Location)
	assert.Equal(t, 0, user.MatchCount)
}

func TestCreateSessionMintsDistinctTokens(t *testing.T) {
	users := services.NewUserService()
	r := mux.NewRouter()
	routes.RegisterSessionRoutes(r, users, &staticLocator{city: "mumbai"}, models.DefaultPollIntervalMs)

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/session", nil))
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		id := body["userId"].(string)
		_, dup := seen[id]
		require.False(t, dup, "session tokens must be unique")
		seen[id] = struct{}{}
	}
}
