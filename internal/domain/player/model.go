package player

import "fmt"

// Player is one roster entry of a club team.
type Player struct {
	ID       string
	TeamID   string
	Name     string
	JerseyNo int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}
