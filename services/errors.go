package services

import "errors"

var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomClosed    = errors.New("room is closed")
	ErrUnauthorized  = errors.New("user is not a member of the room")
)
