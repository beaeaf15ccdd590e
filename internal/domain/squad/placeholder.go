package squad

import (
	"fmt"
	"time"
)

// NewPlaceholderSquad builds an AWAY squad populated with synthetic
// player names ("Away #1".."Away #30"). The opposing club's roster is
// usually outside the system, but the match screens still need thirty
// slots to render; placeholder names keep every call site null-free.
func NewPlaceholderSquad(id, fixtureID string, now time.Time) Squad {
	starting := EmptyStartingSlots()
	for i := range starting {
		starting[i].PlayerName = placeholderName(starting[i].PositionNo)
	}

	bench := EmptyBenchSlots()
	for i := range bench {
		bench[i].PlayerName = placeholderName(bench[i].PositionNo)
	}

	return Squad{
		ID:        id,
		FixtureID: fixtureID,
		Side:      SideAway,
		Starting:  starting,
		Bench:     bench,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func placeholderName(positionNo int) string {
	return fmt.Sprintf("Away #%d", positionNo)
}

func benchName(positionNo int) string {
	return fmt.Sprintf("Bench %d", positionNo)
}
