package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerationRecordsMemberActions(t *testing.T) {
	rooms := NewRoomService()
	room := rooms.Create("a", "b")
	mod := NewModerationService(rooms)

	require.NoError(t, mod.Report(room.RoomID, "a"))
	require.NoError(t, mod.Block(room.RoomID, "b"))

	records := mod.Records()
	require.Len(t, records, 2)
	assert.Equal(t, ModerationActionReport, records[0].Action)
	assert.Equal(t, "a", records[0].UserID)
	assert.Equal(t, ModerationActionBlock, records[1].Action)
	assert.Equal(t, room.RoomID, records[1].RoomID)
}

func TestModerationRejectsNonMembers(t *testing.T) {
	rooms := NewRoomService()
	room := rooms.Create("a", "b")
	mod := NewModerationService(rooms)

	assert.ErrorIs(t, mod.Report(room.RoomID, "stranger"), ErrUnauthorized)
	assert.ErrorIs(t, mod.Block("missing-room", "a"), ErrUnauthorized)
	assert.Empty(t, mod.Records())
}
