package game

import "errors"

var (
	ErrNoExit        = errors.New("no exit in that direction")
	ErrRoomNotFound  = errors.New("room not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrUnknownEffect = errors.New("item has no usable effect")
)
