package services

import (
	"log"
	"sync"
	"time"
)

// ✅ Moderation actions
const (
	ModerationActionReport = "report"
	ModerationActionBlock  = "block"
)

type ModerationRecord struct {
	Action    string `json:"action"`
	RoomID    string `json:"roomId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// ModerationService records report and block actions raised from inside a
// room. The hooks authorize against room membership and keep an in-memory
// trail; anything beyond that is out of scope here.
type ModerationService struct {
	Rooms *RoomService

	mu      sync.Mutex
	records []ModerationRecord
}

func NewModerationService(rooms *RoomService) *ModerationService {
	return &ModerationService{Rooms: rooms}
}

// Report records that reporterID flagged their counterpart in the room.
func (mod *ModerationService) Report(roomID, reporterID string) error {
	return mod.record(ModerationActionReport, roomID, reporterID)
}

// Block records that blockerID blocked their counterpart in the room.
func (mod *ModerationService) Block(roomID, blockerID string) error {
	return mod.record(ModerationActionBlock, roomID, blockerID)
}

// Records returns a copy of everything recorded so far.
func (mod *ModerationService) Records() []ModerationRecord {
	mod.mu.Lock()
	defer mod.mu.Unlock()
	out := make([]ModerationRecord, len(mod.records))
	copy(out, mod.records)
	return out
}

func (mod *ModerationService) record(action, roomID, userID string) error {
	if !mod.Rooms.IsMember(roomID, userID) {
		return ErrUnauthorized
	}
	rec := ModerationRecord{
		Action:    action,
		RoomID:    roomID,
		UserID:    userID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	mod.mu.Lock()
	mod.records = append(mod.records, rec)
	mod.mu.Unlock()
	log.Printf("🚩 Moderation %s by %s in room %s", action, userID, roomID)
	return nil
}
