package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kilmacud/teamsheet/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}

	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var players []player.Player
	for _, item := range r.items {
		if item.TeamID == teamID {
			players = append(players, item)
		}
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].JerseyNo != players[j].JerseyNo {
			return players[i].JerseyNo < players[j].JerseyNo
		}
		return players[i].ID < players[j].ID
	})

	return players, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
