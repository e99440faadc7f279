package cache

import (
	"context"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	basecache "github.com/riskibarqy/hitting-tracker/internal/platform/cache"
)

const (
	playerPrefix = "player"
	outingPrefix = "outing"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, basecache.Key(playerPrefix, "list"), func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, basecache.Key(playerPrefix, "id", playerID), func(ctx context.Context) (cachedPlayer, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return cachedPlayer{}, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, item)
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, playerID)
}

func (r *PlayerRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, playerPrefix+":")
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

// OutingRepository caches reads by id and by player. Any write drops every
// cached outing entry since a single outing appears under several keys.
type OutingRepository struct {
	next  outing.Repository
	cache *basecache.Store
}

func NewOutingRepository(next outing.Repository, cache *basecache.Store) *OutingRepository {
	return &OutingRepository{next: next, cache: cache}
}

func (r *OutingRepository) List(ctx context.Context) ([]outing.Outing, error) {
	items, err := basecache.Load(ctx, r.cache, basecache.Key(outingPrefix, "list"), func(ctx context.Context) ([]outing.Outing, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return cloneOutings(items), nil
}

func (r *OutingRepository) ListByPlayer(ctx context.Context, playerID string) ([]outing.Outing, error) {
	items, err := basecache.Load(ctx, r.cache, basecache.Key(outingPrefix, "player", playerID), func(ctx context.Context) ([]outing.Outing, error) {
		return r.next.ListByPlayer(ctx, playerID)
	})
	if err != nil {
		return nil, err
	}
	return cloneOutings(items), nil
}

func (r *OutingRepository) GetByID(ctx context.Context, outingID string) (outing.Outing, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, basecache.Key(outingPrefix, "id", outingID), func(ctx context.Context) (cachedOuting, error) {
		item, exists, err := r.next.GetByID(ctx, outingID)
		if err != nil {
			return cachedOuting{}, err
		}
		return cachedOuting{value: item, exists: exists}, nil
	})
	if err != nil {
		return outing.Outing{}, false, err
	}
	return cached.value.Clone(), cached.exists, nil
}

func (r *OutingRepository) Create(ctx context.Context, item outing.Outing) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, item)
}

func (r *OutingRepository) Update(ctx context.Context, item outing.Outing) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *OutingRepository) Delete(ctx context.Context, outingID string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, outingID)
}

func (r *OutingRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	defer r.invalidate(ctx)
	return r.next.DeleteByPlayer(ctx, playerID)
}

func (r *OutingRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, outingPrefix+":")
}

type cachedOuting struct {
	value  outing.Outing
	exists bool
}

func cloneOutings(items []outing.Outing) []outing.Outing {
	if items == nil {
		return nil
	}
	out := make([]outing.Outing, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
