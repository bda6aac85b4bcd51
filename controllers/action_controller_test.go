package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatconnect_server/routes"
	"chatconnect_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionAPI(t *testing.T) (*mux.Router, *services.ModerationService, string) {
	t.Helper()
	rooms := services.NewRoomService()
	room := rooms.Create("a", "b")
	moderation := services.NewModerationService(rooms)

	r := mux.NewRouter()
	routes.RegisterActionRoutes(r, moderation)
	return r, moderation, room.RoomID
}

func postAction(r *mux.Router, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestReportEndpoint(t *testing.T) {
	r, moderation, roomID := newActionAPI(t)

	rec := postAction(r, "/api/action/report", "a", `{"room": "`+roomID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	records := moderation.Records()
	require.Len(t, records, 1)
	assert.Equal(t, services.ModerationActionReport, records[0].Action)
	assert.Equal(t, "a", records[0].UserID)
}

func TestBlockEndpointRejectsNonMember(t *testing.T) {
	r, moderation, roomID := newActionAPI(t)

	rec := postAction(r, "/api/action/block", "stranger", `{"room": "`+roomID+`"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, moderation.Records())
}

func TestActionEndpointValidation(t *testing.T) {
	r, _, roomID := newActionAPI(t)

	rec := postAction(r, "/api/action/report", "", `{"room": "`+roomID+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postAction(r, "/api/action/report", "a", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postAction(r, "/api/action/report", "a", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
