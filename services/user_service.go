package services

import (
	"context"
	"sync"

	"chatconnect_server/models"
)

// UserStore is the registry of known users. FindMatch and the session
// controller depend on this interface rather than a concrete store, so the
// in-memory registry and the DynamoDB-backed one are interchangeable.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	Get(ctx context.Context, id string) (models.User, error)
	IncrementMatchCount(ctx context.Context, id string) (int, error)
}

// UserService is the in-memory UserStore used by default. State lives in a
// mutex-guarded map owned by the service and injected where needed, never
// in package-level globals.
type UserService struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserService() *UserService {
	return &UserService{users: make(map[string]models.User)}
}

func (us *UserService) Create(_ context.Context, user models.User) error {
	us.mu.Lock()
	defer us.mu.Unlock()

	if _, exists := us.users[user.ID]; exists {
		return ErrDuplicateUser
	}
	us.users[user.ID] = user
	return nil
}

func (us *UserService) Get(_ context.Context, id string) (models.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()

	user, ok := us.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// IncrementMatchCount bumps the user's pairing counter and returns the new
// value. The counter only ever grows; the cap is enforced by MatchService.
func (us *UserService) IncrementMatchCount(_ context.Context, id string) (int, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	user, ok := us.users[id]
	if !ok {
		return 0, ErrUserNotFound
	}
	user.MatchCount++
	us.users[id] = user
	return user.MatchCount, nil
}
