package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	order []string
	index map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{index: make(map[string]player.Player, len(players))}
	for _, p := range players {
		if _, ok := r.index[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		r.index[p.ID] = p
	}
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.index[id])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[item.ID]; ok {
		return fmt.Errorf("player %s already exists", item.ID)
	}
	r.order = append(r.order, item.ID)
	r.index[item.ID] = item
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[item.ID]; !ok {
		return fmt.Errorf("player %s not found", item.ID)
	}
	r.index[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[playerID]; !ok {
		return nil
	}
	delete(r.index, playerID)
	r.order = removeID(r.order, playerID)
	return nil
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
