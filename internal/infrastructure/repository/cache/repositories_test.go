package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	outingmock "github.com/riskibarqy/hitting-tracker/internal/mocks/domain/outing"
	playermock "github.com/riskibarqy/hitting-tracker/internal/mocks/domain/player"
	basecache "github.com/riskibarqy/hitting-tracker/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_CachesReadsUntilWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	avery := player.Player{ID: "p1", Name: "Avery", Bats: player.BatsRight}
	next.On("GetByID", mock.Anything, "p1").Return(avery, true, nil).Twice()
	next.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	for range 3 {
		got, ok, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Avery", got.Name)
	}

	require.NoError(t, repo.Update(ctx, avery))

	_, ok, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPlayerRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, "ghost").Return(player.Player{}, false, nil).Once()

	for range 2 {
		_, ok, err := repo.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestPlayerRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()
	next.On("List", mock.Anything).Return([]player.Player{{ID: "p1"}}, nil).Once()

	_, err := repo.List(ctx)
	require.Error(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOutingRepository_ReturnsIsolatedCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := outingmock.NewRepository(t)
	repo := NewOutingRepository(next, basecache.NewStore(time.Minute))

	velo := 90.0
	stored := []outing.Outing{{
		ID: "o1", PlayerID: "p1",
		AtBats: []outing.AtBat{{Result: outing.ResultSingle, ExitVelocity: &velo}},
	}}
	next.On("ListByPlayer", mock.Anything, "p1").Return(stored, nil).Once()

	first, err := repo.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	first[0].AtBats[0].Result = outing.ResultOut
	*first[0].AtBats[0].ExitVelocity = 10

	second, err := repo.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, outing.ResultSingle, second[0].AtBats[0].Result)
	assert.Equal(t, 90.0, *second[0].AtBats[0].ExitVelocity)
}

func TestOutingRepository_WriteInvalidatesAllOutingKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := outingmock.NewRepository(t)
	store := basecache.NewStore(time.Minute)
	repo := NewOutingRepository(next, store)

	next.On("ListByPlayer", mock.Anything, "p1").Return([]outing.Outing{{ID: "o1", PlayerID: "p1"}}, nil).Twice()
	next.On("GetByID", mock.Anything, "o1").Return(outing.Outing{ID: "o1"}, true, nil).Once()
	next.On("Delete", mock.Anything, "o1").Return(nil).Once()

	_, err := repo.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	_, _, err = repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	require.NoError(t, repo.Delete(ctx, "o1"))
	assert.Equal(t, 0, store.Len())

	_, err = repo.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
}
