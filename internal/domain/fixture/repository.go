package fixture

import "context"

// Repository exposes fixture read operations. Fixture CRUD itself is
// owned elsewhere; the squad manager only checks existence and lists a
// team's fixtures.
type Repository interface {
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Fixture, error)
}
