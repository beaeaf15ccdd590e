package squad

import "context"

// Repository exposes squad persistence operations.
type Repository interface {
	GetByFixtureAndSide(ctx context.Context, fixtureID string, side Side) (Squad, bool, error)
	ListByFixture(ctx context.Context, fixtureID string) ([]Squad, error)
	// Create persists a new squad and fails with ErrAlreadyExists when a
	// squad for the same (fixture, side) is already stored. Backed by a
	// uniqueness constraint so concurrent first-reads race safely.
	Create(ctx context.Context, item Squad) error
	Upsert(ctx context.Context, item Squad) error
	Update(ctx context.Context, item Squad) error
}
