package fixture

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Fixture represents one scheduled match. The home side is a club team
// managed in the system; the away side is usually just a name.
type Fixture struct {
	ID           string
	TeamID       string
	Competition  string
	HomeTeamName string
	AwayTeamName string
	ThrowInAt    time.Time
	Venue        string
	Status       string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}
