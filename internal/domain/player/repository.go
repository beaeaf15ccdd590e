package player

import "context"

// Repository describes roster persistence needs from use cases. Create
// backs the quick-add flow on the lineup screen, which needs an id
// synchronously so the new player can be dropped straight into a slot.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) error
}
