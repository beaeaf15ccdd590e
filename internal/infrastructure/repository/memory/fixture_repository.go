package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kilmacud/teamsheet/internal/domain/fixture"
)

type FixtureRepository struct {
	mu    sync.RWMutex
	items map[string]fixture.Fixture
}

func NewFixtureRepository(seed []fixture.Fixture) *FixtureRepository {
	items := make(map[string]fixture.Fixture, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}

	return &FixtureRepository{items: items}
}

func (r *FixtureRepository) GetByID(_ context.Context, id string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *FixtureRepository) ListByTeam(_ context.Context, teamID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var fixtures []fixture.Fixture
	for _, item := range r.items {
		if item.TeamID == teamID {
			fixtures = append(fixtures, item)
		}
	}

	sort.Slice(fixtures, func(i, j int) bool {
		if !fixtures[i].ThrowInAt.Equal(fixtures[j].ThrowInAt) {
			return fixtures[i].ThrowInAt.Before(fixtures[j].ThrowInAt)
		}
		return fixtures[i].ID < fixtures[j].ID
	})

	return fixtures, nil
}
