package services

import (
	"context"
	"fmt"
	"log"
	"sync"
)

type MatchStatus string

const (
	MatchStatusMatched      MatchStatus = "matched"
	MatchStatusWaiting      MatchStatus = "waiting"
	MatchStatusLimitReached MatchStatus = "limit_reached"
)

// MatchResult is the structured outcome of a FindMatch poll. RoomID is set
// only when Status is MatchStatusMatched.
type MatchResult struct {
	Status MatchStatus
	RoomID string
}

// MatchService pairs users that share a location. Waiting users sit in a
// per-city FIFO queue, so the longest-waiting eligible user is paired
// first. The whole check-then-pair sequence runs under one mutex: two
// concurrent polls can never claim the same candidate or double-count a
// matchCount.
type MatchService struct {
	Users      UserStore
	Rooms      *RoomService
	MaxMatches int

	mu      sync.Mutex
	waiting map[string][]string // location -> FIFO of waiting user ids
	queued  map[string]struct{}
}

func NewMatchService(users UserStore, rooms *RoomService, maxMatches int) *MatchService {
	return &MatchService{
		Users:      users,
		Rooms:      rooms,
		MaxMatches: maxMatches,
		waiting:    make(map[string][]string),
		queued:     make(map[string]struct{}),
	}
}

// FindMatch resolves one matchmaking poll for the requester. It never
// blocks waiting for a partner; callers are expected to poll again after a
// delay while the result is MatchStatusWaiting.
//
// A requester that already has an open room gets that room back, so both
// sides of a pairing converge on the same roomId no matter which of them
// created it, and repeated polls are idempotent.
func (ms *MatchService) FindMatch(ctx context.Context, requesterID string) (MatchResult, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	requester, err := ms.Users.Get(ctx, requesterID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("failed to look up requester %q: %w", requesterID, err)
	}

	if roomID, ok := ms.Rooms.OpenRoomFor(requesterID); ok {
		return MatchResult{Status: MatchStatusMatched, RoomID: roomID}, nil
	}

	if requester.MatchCount >= ms.MaxMatches {
		ms.removeFromQueue(requesterID)
		return MatchResult{Status: MatchStatusLimitReached}, nil
	}

	if candidateID, ok := ms.popCandidate(ctx, requester.Location, requesterID); ok {
		room := ms.Rooms.Create(requesterID, candidateID)
		ms.removeFromQueue(requesterID)
		if _, err := ms.Users.IncrementMatchCount(ctx, requesterID); err != nil {
			log.Printf("❌ Failed to bump matchCount for %s: %v", requesterID, err)
		}
		if _, err := ms.Users.IncrementMatchCount(ctx, candidateID); err != nil {
			log.Printf("❌ Failed to bump matchCount for %s: %v", candidateID, err)
		}
		log.Printf("🤝 Paired %s with %s in room %s (%s)", requesterID, candidateID, room.RoomID, requester.Location)
		return MatchResult{Status: MatchStatusMatched, RoomID: room.RoomID}, nil
	}

	ms.enqueue(requester.Location, requesterID)
	return MatchResult{Status: MatchStatusWaiting}, nil
}

// Leave ends the user's participation: their open room (if any) is closed,
// freeing both members for future matches, and any waiting-queue entry is
// dropped. Safe to call for users that are neither queued nor engaged.
func (ms *MatchService) Leave(ctx context.Context, userID string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if roomID, ok := ms.Rooms.OpenRoomFor(userID); ok {
		if err := ms.Rooms.Close(roomID); err != nil {
			log.Printf("❌ Failed to close room %s: %v", roomID, err)
		} else {
			log.Printf("👋 User %s left, room %s closed", userID, roomID)
		}
	}
	ms.removeFromQueue(userID)
}

// popCandidate scans the location's queue in arrival order and removes and
// returns the first eligible user. Stale entries (users that vanished, got
// engaged, or hit the cap) are discarded along the way; the requester's
// own entry is kept in place. Caller holds ms.mu.
func (ms *MatchService) popCandidate(ctx context.Context, location, requesterID string) (string, bool) {
	queue := ms.waiting[location]
	kept := queue[:0]
	var match string

	for i, id := range queue {
		if id == requesterID {
			kept = append(kept, id)
			continue
		}
		candidate, err := ms.Users.Get(ctx, id)
		if err != nil {
			delete(ms.queued, id)
			continue
		}
		if _, busy := ms.Rooms.OpenRoomFor(id); busy || candidate.MatchCount >= ms.MaxMatches {
			delete(ms.queued, id)
			continue
		}
		match = id
		delete(ms.queued, id)
		kept = append(kept, queue[i+1:]...)
		break
	}
	ms.waiting[location] = kept
	return match, match != ""
}

// enqueue adds the user to their city's queue exactly once. Caller holds ms.mu.
func (ms *MatchService) enqueue(location, userID string) {
	if _, ok := ms.queued[userID]; ok {
		return
	}
	ms.queued[userID] = struct{}{}
	ms.waiting[location] = append(ms.waiting[location], userID)
}

// removeFromQueue drops the user from whichever queue holds them. Caller holds ms.mu.
func (ms *MatchService) removeFromQueue(userID string) {
	if _, ok := ms.queued[userID]; !ok {
		return
	}
	delete(ms.queued, userID)
	for location, queue := range ms.waiting {
		for i, id := range queue {
			if id == userID {
				ms.waiting[location] = append(queue[:i], queue[i+1:]...)
				return
			}
		}
	}
}
