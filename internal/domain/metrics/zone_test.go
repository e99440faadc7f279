package metrics

import (
	"testing"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/stretchr/testify/assert"
)

func TestZoneHeatMap(t *testing.T) {
	t.Parallel()

	pitches := []outing.Pitch{
		pitch(outing.OutcomeInPlayHit, 0, 0),
		pitch(outing.OutcomeInPlayOut, 0.1, -0.1),
		pitch(outing.OutcomeBall, -1.5, 1.5),
		pitch(outing.OutcomeBall, 1.5, -1.5),
		pitch(outing.OutcomeBall, 4, -9),
	}

	grid := ZoneHeatMap(pitches)

	center := grid[2][2]
	assert.Equal(t, 2, center.Total)
	assert.Equal(t, 1, center.Hits)
	assert.Equal(t, 0.5, center.HitRate)

	assert.Equal(t, 1, grid[0][0].Total)
	assert.Equal(t, 0.0, grid[0][0].HitRate)

	// the far corner and the out-of-range pitch both clamp into the last cell
	assert.Equal(t, 2, grid[4][4].Total)

	assert.Equal(t, -1.0, grid[1][3].HitRate)
	assert.Equal(t, 0, grid[1][3].Total)
}

func TestZoneHeatMap_Empty(t *testing.T) {
	t.Parallel()

	grid := ZoneHeatMap(nil)
	for r := range grid {
		for c := range grid[r] {
			assert.Equal(t, -1.0, grid[r][c].HitRate)
		}
	}
}
