package metrics

import (
	"slices"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
)

// OutingTrendPoint is one outing's line on the progression chart.
type OutingTrendPoint struct {
	OutingID   string
	Date       time.Time
	Type       outing.Type
	Label      string
	AtBats     int
	Hits       int
	Strikeouts int
	Walks      int
	Avg        float64
	ExitVelo   float64
	BarrelPct  float64
	WhiffRate  float64
	ContactPct float64
}

// OutingTrends returns one point per outing in ascending date order. Outings
// on the same date keep their input order. The input slice is not modified.
func OutingTrends(outings []outing.Outing) []OutingTrendPoint {
	sorted := slices.Clone(outings)
	slices.SortStableFunc(sorted, func(a, b outing.Outing) int {
		return a.Date.Compare(b.Date)
	})

	out := make([]OutingTrendPoint, 0, len(sorted))
	for _, o := range sorted {
		out = append(out, trendPoint(o))
	}
	return out
}

func trendPoint(o outing.Outing) OutingTrendPoint {
	var official, hits, strikeouts, walks int
	var pitches []outing.Pitch
	var balls []outing.SprayChartPoint
	for _, ab := range o.AtBats {
		if ab.Result.IsOfficialAtBat() {
			official++
		}
		if ab.Result.IsHit() {
			hits++
		}
		switch ab.Result {
		case outing.ResultStrikeout:
			strikeouts++
		case outing.ResultWalk:
			walks++
		}
		pitches = append(pitches, ab.Pitches...)
		if point, ok := BattedBall(ab); ok {
			balls = append(balls, point)
		}
	}

	c := countPitches(pitches)

	return OutingTrendPoint{
		OutingID:   o.ID,
		Date:       o.Date,
		Type:       o.Type,
		Label:      TrendLabel(o),
		AtBats:     official,
		Hits:       hits,
		Strikeouts: strikeouts,
		Walks:      walks,
		Avg:        ratio(hits, official),
		ExitVelo:   AvgExitVelocity(balls),
		BarrelPct:  BarrelPercent(balls),
		WhiffRate:  percent(c.whiffs, c.swings),
		ContactPct: percent(c.contacts, c.swings),
	}
}

// TrendLabel renders the chart axis label, e.g. "BP Mar 5".
func TrendLabel(o outing.Outing) string {
	return o.Type.Abbreviation() + " " + o.Date.Format("Jan 2")
}

// FilterTrends keeps points of the given outing type. An empty type keeps all.
func FilterTrends(points []OutingTrendPoint, t outing.Type) []OutingTrendPoint {
	if t == "" {
		return slices.Clone(points)
	}
	out := make([]OutingTrendPoint, 0, len(points))
	for _, p := range points {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// TrendMetric selects one charted series from a trend point.
type TrendMetric string

const (
	TrendAvg        TrendMetric = "avg"
	TrendExitVelo   TrendMetric = "exit_velo"
	TrendBarrelPct  TrendMetric = "barrel_pct"
	TrendWhiffRate  TrendMetric = "whiff_rate"
	TrendContactPct TrendMetric = "contact_pct"
)

var AllTrendMetrics = map[TrendMetric]struct{}{
	TrendAvg:        {},
	TrendExitVelo:   {},
	TrendBarrelPct:  {},
	TrendWhiffRate:  {},
	TrendContactPct: {},
}

func (m TrendMetric) Value(p OutingTrendPoint) float64 {
	switch m {
	case TrendExitVelo:
		return p.ExitVelo
	case TrendBarrelPct:
		return p.BarrelPct
	case TrendWhiffRate:
		return p.WhiffRate
	case TrendContactPct:
		return p.ContactPct
	default:
		return p.Avg
	}
}

// DefaultRollingWindow is the trailing window used by the progression chart.
const DefaultRollingWindow = 3

// RollingAverage returns the trailing mean at each index over up to window values.
func RollingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	for i := range values {
		start := max(0, i-window+1)
		var sum float64
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}

// Series extracts one metric from each point in order.
func Series(points []OutingTrendPoint, m TrendMetric) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = m.Value(p)
	}
	return out
}
