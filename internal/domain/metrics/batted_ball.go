package metrics

import "github.com/riskibarqy/hitting-tracker/internal/domain/outing"

// HardHitThreshold is the exit velocity, in mph, at which a ball counts as hard hit.
const HardHitThreshold = 95.0

// AvgExitVelocity is the mean exit velocity over points that recorded one.
// It returns 0 when no point has a velocity, so callers check > 0 before display.
func AvgExitVelocity(points []outing.SprayChartPoint) float64 {
	var sum float64
	var n int
	for _, p := range points {
		if v, ok := p.RecordedExitVelocity(); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func BarrelPercent(points []outing.SprayChartPoint) float64 {
	barrels := 0
	for _, p := range points {
		if p.IsBarrel {
			barrels++
		}
	}
	return percent(barrels, len(points))
}

// HardHitPercent is the share of all batted balls hit at or above
// HardHitThreshold. Balls without a recorded velocity count as not hard hit.
func HardHitPercent(points []outing.SprayChartPoint) float64 {
	hard := 0
	for _, p := range points {
		if v, ok := p.RecordedExitVelocity(); ok && v >= HardHitThreshold {
			hard++
		}
	}
	return percent(hard, len(points))
}

// SprayBreakdown counts batted balls by result and by hit type.
type SprayBreakdown struct {
	Total     int
	ByResult  map[outing.SprayResult]int
	ByHitType map[outing.HitType]int
}

func Spray(points []outing.SprayChartPoint) SprayBreakdown {
	out := SprayBreakdown{
		Total:     len(points),
		ByResult:  make(map[outing.SprayResult]int, len(outing.AllSprayResults)),
		ByHitType: make(map[outing.HitType]int, len(outing.AllHitTypes)),
	}
	for _, p := range points {
		out.ByResult[p.Result]++
		if p.HitType != "" {
			out.ByHitType[p.HitType]++
		}
	}
	return out
}
