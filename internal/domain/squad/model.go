package squad

import (
	"fmt"
	"strings"
	"time"
)

// Side identifies which half of a fixture a squad belongs to.
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// ParseSide normalizes a side value from transport input.
func ParseSide(value string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(value))) {
	case SideHome:
		return SideHome, nil
	case SideAway:
		return SideAway, nil
	default:
		return "", fmt.Errorf("invalid side %q: valid values are HOME, AWAY", value)
	}
}

// Slot is one position on the teamsheet, starting or bench. The position
// number and name are fixed for the life of the squad; only the player
// assignment changes.
type Slot struct {
	PositionNo   int
	PositionName string
	PlayerID     string
	PlayerName   string
	JerseyNo     int
}

// Empty reports whether no player occupies the slot.
func (s Slot) Empty() bool {
	return s.PlayerID == "" && s.PlayerName == ""
}

// Substitution is one entry of the append-only in-game substitution log.
type Substitution struct {
	OccurredAt    time.Time
	MatchTimeSec  int
	PlayerOffID   string
	PlayerOffName string
	PlayerOnID    string
	PlayerOnName  string
}

// Squad is the full match-day teamsheet for one side of a fixture:
// 15 starting slots, 15 bench slots and the substitution log. Locked is
// business state set once play begins; it freezes the guarded edit path
// but not substitutions.
type Squad struct {
	ID        string
	FixtureID string
	Side      Side
	Starting  []Slot
	Bench     []Slot
	Subs      []Substitution
	Locked    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers can mutate freely.
func (s Squad) Clone() Squad {
	copied := s
	copied.Starting = append([]Slot(nil), s.Starting...)
	copied.Bench = append([]Slot(nil), s.Bench...)
	copied.Subs = append([]Substitution(nil), s.Subs...)
	return copied
}

// StartingIndexOf returns the starting slot index holding playerID.
func (s Squad) StartingIndexOf(playerID string) (int, bool) {
	return slotIndexOf(s.Starting, playerID)
}

// BenchIndexOf returns the bench slot index holding playerID.
func (s Squad) BenchIndexOf(playerID string) (int, bool) {
	return slotIndexOf(s.Bench, playerID)
}

func slotIndexOf(slots []Slot, playerID string) (int, bool) {
	if playerID == "" {
		return 0, false
	}
	for i, slot := range slots {
		if slot.PlayerID == playerID {
			return i, true
		}
	}
	return 0, false
}

// Validate checks the structural invariants of a persisted squad: full
// set of starting positions 1..15 with no duplicates, and a full bench.
func (s Squad) Validate() error {
	if s.FixtureID == "" {
		return fmt.Errorf("squad fixture id is required")
	}
	if s.Side != SideHome && s.Side != SideAway {
		return fmt.Errorf("invalid squad side: %s", s.Side)
	}
	if len(s.Starting) != StartingSize {
		return fmt.Errorf("%w: starting slots must number %d, got %d", ErrInvalidSlots, StartingSize, len(s.Starting))
	}
	if len(s.Bench) != BenchSize {
		return fmt.Errorf("%w: bench slots must number %d, got %d", ErrInvalidSlots, BenchSize, len(s.Bench))
	}

	seen := make(map[int]struct{}, StartingSize)
	for _, slot := range s.Starting {
		if slot.PositionNo < 1 || slot.PositionNo > StartingSize {
			return fmt.Errorf("%w: starting position %d out of range 1..%d", ErrInvalidSlots, slot.PositionNo, StartingSize)
		}
		if slot.PositionName == "" {
			return fmt.Errorf("%w: starting position %d has no name", ErrInvalidSlots, slot.PositionNo)
		}
		if _, ok := seen[slot.PositionNo]; ok {
			return fmt.Errorf("%w: duplicate starting position %d", ErrInvalidSlots, slot.PositionNo)
		}
		seen[slot.PositionNo] = struct{}{}
	}

	benchSeen := make(map[int]struct{}, BenchSize)
	for _, slot := range s.Bench {
		if slot.PositionNo < BenchFirstNo || slot.PositionNo > BenchLastNo {
			return fmt.Errorf("%w: bench position %d out of range %d..%d", ErrInvalidSlots, slot.PositionNo, BenchFirstNo, BenchLastNo)
		}
		if _, ok := benchSeen[slot.PositionNo]; ok {
			return fmt.Errorf("%w: duplicate bench position %d", ErrInvalidSlots, slot.PositionNo)
		}
		benchSeen[slot.PositionNo] = struct{}{}
	}

	return nil
}
