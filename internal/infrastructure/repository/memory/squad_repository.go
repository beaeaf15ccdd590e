package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kilmacud/teamsheet/internal/domain/squad"
)

type SquadRepository struct {
	mu    sync.RWMutex
	items map[string]squad.Squad
}

func NewSquadRepository() *SquadRepository {
	return &SquadRepository{items: make(map[string]squad.Squad)}
}

func (r *SquadRepository) GetByFixtureAndSide(_ context.Context, fixtureID string, side squad.Side) (squad.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[squadKey(fixtureID, side)]
	if !ok {
		return squad.Squad{}, false, nil
	}

	return item.Clone(), true, nil
}

func (r *SquadRepository) ListByFixture(_ context.Context, fixtureID string) ([]squad.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var squads []squad.Squad
	for _, side := range []squad.Side{squad.SideHome, squad.SideAway} {
		if item, ok := r.items[squadKey(fixtureID, side)]; ok {
			squads = append(squads, item.Clone())
		}
	}

	return squads, nil
}

func (r *SquadRepository) Create(_ context.Context, item squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := squadKey(item.FixtureID, item.Side)
	if _, ok := r.items[key]; ok {
		return fmt.Errorf("%w: fixture=%s side=%s", squad.ErrAlreadyExists, item.FixtureID, item.Side)
	}

	r.items[key] = item.Clone()
	return nil
}

func (r *SquadRepository) Upsert(_ context.Context, item squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[squadKey(item.FixtureID, item.Side)] = item.Clone()
	return nil
}

func (r *SquadRepository) Update(_ context.Context, item squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := squadKey(item.FixtureID, item.Side)
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("squad fixture=%s side=%s does not exist", item.FixtureID, item.Side)
	}

	r.items[key] = item.Clone()
	return nil
}

func squadKey(fixtureID string, side squad.Side) string {
	return fixtureID + "::" + string(side)
}
