package services

import (
	"testing"

	"chatconnect_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomServiceCreateAndMembers(t *testing.T) {
	rs := NewRoomService()

	room := rs.Create("a", "b")
	assert.NotEmpty(t, room.RoomID)
	assert.Equal(t, models.RoomStatusOpen, room.Status)

	a, b, err := rs.MembersOf(room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)

	// membership is stable across repeated queries
	a2, b2, err := rs.MembersOf(room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, a, a2)
	assert.Equal(t, b, b2)

	assert.True(t, rs.IsMember(room.RoomID, "a"))
	assert.True(t, rs.IsMember(room.RoomID, "b"))
	assert.False(t, rs.IsMember(room.RoomID, "c"))
}

func TestRoomServiceMembersOfMissing(t *testing.T) {
	rs := NewRoomService()

	_, _, err := rs.MembersOf("missing")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.False(t, rs.IsMember("missing", "a"))
	assert.False(t, rs.IsOpen("missing"))
}

func TestRoomServiceOpenRoomIndex(t *testing.T) {
	rs := NewRoomService()

	_, engaged := rs.OpenRoomFor("a")
	assert.False(t, engaged)

	room := rs.Create("a", "b")
	for _, userID := range []string{"a", "b"} {
		roomID, ok := rs.OpenRoomFor(userID)
		require.True(t, ok)
		assert.Equal(t, room.RoomID, roomID)
	}
}

func TestRoomServiceClose(t *testing.T) {
	rs := NewRoomService()
	room := rs.Create("a", "b")

	require.NoError(t, rs.Close(room.RoomID))
	assert.False(t, rs.IsOpen(room.RoomID))

	// both members are free again
	_, engaged := rs.OpenRoomFor("a")
	assert.False(t, engaged)
	_, engaged = rs.OpenRoomFor("b")
	assert.False(t, engaged)

	// membership survives closing
	assert.True(t, rs.IsMember(room.RoomID, "a"))

	// closing twice is a no-op, closing a missing room is not
	require.NoError(t, rs.Close(room.RoomID))
	assert.ErrorIs(t, rs.Close("missing"), ErrRoomNotFound)
}
