package metrics

import (
	"math"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
)

// ZoneGridSize is the number of rows and columns of the heat map. The inner
// 3x3 covers the strike zone; the outer ring is off the plate.
const ZoneGridSize = 5

const zoneExtent = 1.5

// ZoneCell aggregates the pitches that landed in one heat map cell.
// HitRate is -1 when the cell saw no pitches.
type ZoneCell struct {
	Total   int
	Hits    int
	HitRate float64
}

// ZoneGrid is indexed [row][col] with row 0 at the top (high) and col 0 inside.
type ZoneGrid [ZoneGridSize][ZoneGridSize]ZoneCell

func ZoneHeatMap(pitches []outing.Pitch) ZoneGrid {
	var grid ZoneGrid
	for _, p := range pitches {
		col := zoneIndex((p.Location.X + zoneExtent) / (2 * zoneExtent))
		row := zoneIndex((zoneExtent - p.Location.Y) / (2 * zoneExtent))

		grid[row][col].Total++
		if p.Outcome == outing.OutcomeInPlayHit {
			grid[row][col].Hits++
		}
	}

	for r := range grid {
		for c := range grid[r] {
			cell := &grid[r][c]
			if cell.Total == 0 {
				cell.HitRate = -1
				continue
			}
			cell.HitRate = ratio(cell.Hits, cell.Total)
		}
	}
	return grid
}

func zoneIndex(normalized float64) int {
	idx := int(math.Floor(normalized * ZoneGridSize))
	return max(0, min(ZoneGridSize-1, idx))
}
