package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
)

// OutingRepository keeps outings in insertion order. Values are deep-copied
// on the way in and out so callers never share at-bat slices with the store.
type OutingRepository struct {
	mu    sync.RWMutex
	order []string
	index map[string]outing.Outing
}

func NewOutingRepository(outings []outing.Outing) *OutingRepository {
	r := &OutingRepository{index: make(map[string]outing.Outing, len(outings))}
	for _, o := range outings {
		if _, ok := r.index[o.ID]; !ok {
			r.order = append(r.order, o.ID)
		}
		r.index[o.ID] = o.Clone()
	}
	return r
}

func (r *OutingRepository) List(_ context.Context) ([]outing.Outing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]outing.Outing, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.index[id].Clone())
	}
	return out, nil
}

func (r *OutingRepository) ListByPlayer(_ context.Context, playerID string) ([]outing.Outing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]outing.Outing, 0)
	for _, id := range r.order {
		if o := r.index[id]; o.PlayerID == playerID {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

func (r *OutingRepository) GetByID(_ context.Context, outingID string) (outing.Outing, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.index[outingID]
	if !ok {
		return outing.Outing{}, false, nil
	}
	return o.Clone(), true, nil
}

func (r *OutingRepository) Create(_ context.Context, item outing.Outing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[item.ID]; ok {
		return fmt.Errorf("outing %s already exists", item.ID)
	}
	r.order = append(r.order, item.ID)
	r.index[item.ID] = item.Clone()
	return nil
}

func (r *OutingRepository) Update(_ context.Context, item outing.Outing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[item.ID]; !ok {
		return fmt.Errorf("outing %s not found", item.ID)
	}
	r.index[item.ID] = item.Clone()
	return nil
}

func (r *OutingRepository) Delete(_ context.Context, outingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[outingID]; !ok {
		return nil
	}
	delete(r.index, outingID)
	r.order = removeID(r.order, outingID)
	return nil
}

func (r *OutingRepository) DeleteByPlayer(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.order[:0]
	for _, id := range r.order {
		if r.index[id].PlayerID == playerID {
			delete(r.index, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}
