package generation

import "errors"

var (
	// ErrInvalidConfig is returned when generation settings are rejected at entry
	ErrInvalidConfig = errors.New("invalid cave settings")
	// ErrNoViableRooms is returned when pruning leaves no floor region large enough to be a room
	ErrNoViableRooms = errors.New("no viable rooms")
	// ErrUnreachableRooms is returned when the connector cannot attach a room to the main room
	ErrUnreachableRooms = errors.New("rooms unreachable from main room")
)
