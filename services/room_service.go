package services

import (
	"sync"
	"time"

	"chatconnect_server/models"

	"github.com/google/uuid"
)

// RoomService owns the room table: roomId -> member pair plus an index of
// each user's currently open room. Membership is fixed at creation; the
// only transition a room ever makes is open -> closed.
type RoomService struct {
	mu         sync.RWMutex
	rooms      map[string]models.Room
	openByUser map[string]string // userId -> open roomId
}

func NewRoomService() *RoomService {
	return &RoomService{
		rooms:      make(map[string]models.Room),
		openByUser: make(map[string]string),
	}
}

// Create allocates a fresh open room for the given pair.
func (rs *RoomService) Create(memberA, memberB string) models.Room {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	room := models.Room{
		RoomID:    uuid.NewString(),
		MemberA:   memberA,
		MemberB:   memberB,
		Status:    models.RoomStatusOpen,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	rs.rooms[room.RoomID] = room
	rs.openByUser[memberA] = room.RoomID
	rs.openByUser[memberB] = room.RoomID
	return room
}

// MembersOf returns the room's member pair.
func (rs *RoomService) MembersOf(roomID string) (string, string, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	room, ok := rs.rooms[roomID]
	if !ok {
		return "", "", ErrRoomNotFound
	}
	return room.MemberA, room.MemberB, nil
}

// IsMember reports whether userID is one of the room's two members. Used
// by the relay and the moderation hooks to authorize access.
func (rs *RoomService) IsMember(roomID, userID string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	room, ok := rs.rooms[roomID]
	return ok && (room.MemberA == userID || room.MemberB == userID)
}

// IsOpen reports whether the room exists and has not been closed.
func (rs *RoomService) IsOpen(roomID string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	room, ok := rs.rooms[roomID]
	return ok && room.Status == models.RoomStatusOpen
}

// OpenRoomFor returns the id of the user's open room, if any. A user with
// an open room is engaged and must not be matched again.
func (rs *RoomService) OpenRoomFor(userID string) (string, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	roomID, ok := rs.openByUser[userID]
	return roomID, ok
}

// Close retires the room. Closing an already closed room is a no-op.
func (rs *RoomService) Close(roomID string) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	room, ok := rs.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	if room.Status == models.RoomStatusClosed {
		return nil
	}
	room.Status = models.RoomStatusClosed
	rs.rooms[roomID] = room
	delete(rs.openByUser, room.MemberA)
	delete(rs.openByUser, room.MemberB)
	return nil
}
