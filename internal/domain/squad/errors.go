package squad

import "errors"

var (
	// ErrLocked rejects teamsheet edits once play has begun.
	ErrLocked = errors.New("squad is locked")
	// ErrAlreadyExists rejects creating a second squad for a
	// (fixture, side) pair.
	ErrAlreadyExists = errors.New("squad already exists")
	// ErrInvalidSlots flags a slot array violating the 15+15 shape.
	ErrInvalidSlots = errors.New("invalid squad slots")
	// ErrPlayerNotInLineup is returned when the outgoing player of a
	// substitution is not on the starting fifteen.
	ErrPlayerNotInLineup = errors.New("player not found in starting lineup")
	// ErrPlayerNotOnBench is returned when the incoming player of a
	// substitution is not on the bench.
	ErrPlayerNotOnBench = errors.New("player not found in bench")
)
