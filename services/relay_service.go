package services

import (
	"log"
	"sync"

	"chatconnect_server/models"
)

// Sink is one subscriber's outbound channel. The socket layer implements
// it on top of a live connection; tests implement it with an in-memory
// recorder.
type Sink interface {
	Deliver(msg models.MessagePayload) error
}

// RelayService fans a published message out to the subscribed members of a
// room, the sender included. Delivery is best effort: a failing sink is
// logged and skipped so one broken connection never starves the other
// member.
type RelayService struct {
	Rooms *RoomService

	mu   sync.RWMutex
	subs map[string]map[string]Sink // roomId -> userId -> sink
}

func NewRelayService(rooms *RoomService) *RelayService {
	return &RelayService{
		Rooms: rooms,
		subs:  make(map[string]map[string]Sink),
	}
}

// Subscribe attaches the user's sink to the room. Only members may
// subscribe; subscribing again replaces the sink and has no other effect.
func (rls *RelayService) Subscribe(roomID, userID string, sink Sink) error {
	if !rls.Rooms.IsMember(roomID, userID) {
		return ErrUnauthorized
	}

	rls.mu.Lock()
	defer rls.mu.Unlock()
	if _, ok := rls.subs[roomID]; !ok {
		rls.subs[roomID] = make(map[string]Sink)
	}
	rls.subs[roomID][userID] = sink
	return nil
}

// Unsubscribe detaches the user from the room. Unknown rooms or users are
// a no-op.
func (rls *RelayService) Unsubscribe(roomID, userID string) {
	rls.mu.Lock()
	defer rls.mu.Unlock()
	rls.dropLocked(roomID, userID)
}

// UnsubscribeAll detaches the user from every room they are subscribed to.
// Called when a connection goes away.
func (rls *RelayService) UnsubscribeAll(userID string) {
	rls.mu.Lock()
	defer rls.mu.Unlock()
	for roomID := range rls.subs {
		rls.dropLocked(roomID, userID)
	}
}

func (rls *RelayService) dropLocked(roomID, userID string) {
	members, ok := rls.subs[roomID]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(rls.subs, roomID)
	}
}

// Publish relays text from senderID to every subscribed member of the
// room. Non-members are rejected with ErrUnauthorized and nothing is
// delivered; retired rooms reject with ErrRoomClosed.
func (rls *RelayService) Publish(roomID, senderID, text string) error {
	if !rls.Rooms.IsMember(roomID, senderID) {
		return ErrUnauthorized
	}
	if !rls.Rooms.IsOpen(roomID) {
		return ErrRoomClosed
	}

	msg := models.MessagePayload{Room: roomID, User: senderID, Msg: text}

	rls.mu.RLock()
	sinks := make(map[string]Sink, len(rls.subs[roomID]))
	for userID, sink := range rls.subs[roomID] {
		sinks[userID] = sink
	}
	rls.mu.RUnlock()

	for userID, sink := range sinks {
		if err := sink.Deliver(msg); err != nil {
			log.Printf("❌ Failed to deliver to %s in room %s: %v", userID, roomID, err)
		}
	}
	return nil
}
