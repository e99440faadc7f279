// Package grading turns hitting statistics into 0-100 scores and letter grades.
//
// Each metric is scored against a fixed benchmark curve: an ascending list of
// checkpoints joined by straight lines and clamped at both ends. Lower-is-better
// metrics are encoded with scores that fall as the value rises, so a single
// interpolation routine serves every table.
package grading

import "slices"

// Checkpoint is one point on a benchmark curve.
type Checkpoint struct {
	Value float64
	Score float64
}

// Metric names a graded statistic.
type Metric string

const (
	MetricBarrelPct       Metric = "barrel_pct"
	MetricExitVelo        Metric = "exit_velo"
	MetricContactPct      Metric = "contact_pct"
	MetricBattingAvg      Metric = "batting_avg"
	MetricPitchesPerAB    Metric = "pitches_per_ab"
	MetricWhiffRate       Metric = "whiff_rate"
	MetricChaseRate       Metric = "chase_rate"
	MetricCalledStrikePct Metric = "called_strike_pct"
)

var barrelPctCurve = []Checkpoint{
	{0, 35}, {2, 55}, {5, 65}, {8, 75}, {12, 85}, {15, 95}, {20, 100},
}

var exitVeloCurve = []Checkpoint{
	{40, 30}, {50, 50}, {55, 60}, {60, 70}, {65, 80}, {70, 88}, {75, 95}, {85, 100},
}

var contactPctCurve = []Checkpoint{
	{50, 30}, {60, 45}, {65, 55}, {70, 65}, {75, 72}, {80, 80}, {85, 88}, {90, 95}, {95, 100},
}

var battingAvgCurve = []Checkpoint{
	{0, 20}, {.100, 35}, {.150, 45}, {.200, 58}, {.250, 70}, {.300, 80}, {.350, 90}, {.400, 97}, {.500, 100},
}

var pitchesPerABCurve = []Checkpoint{
	{2.0, 35}, {2.5, 50}, {3.0, 60}, {3.5, 72}, {4.0, 82}, {4.5, 90}, {5.0, 97}, {5.5, 100},
}

// lower is better from here on

var whiffRateCurve = []Checkpoint{
	{5, 100}, {10, 95}, {15, 88}, {20, 80}, {25, 70}, {30, 60}, {35, 50}, {45, 30},
}

var chaseRateCurve = []Checkpoint{
	{10, 100}, {15, 95}, {20, 88}, {25, 78}, {30, 68}, {35, 58}, {40, 48}, {50, 30},
}

var calledStrikeCurve = []Checkpoint{
	{5, 100}, {10, 93}, {15, 85}, {20, 75}, {25, 65}, {30, 55}, {40, 35},
}

var curves = map[Metric][]Checkpoint{
	MetricBarrelPct:       barrelPctCurve,
	MetricExitVelo:        exitVeloCurve,
	MetricContactPct:      contactPctCurve,
	MetricBattingAvg:      battingAvgCurve,
	MetricPitchesPerAB:    pitchesPerABCurve,
	MetricWhiffRate:       whiffRateCurve,
	MetricChaseRate:       chaseRateCurve,
	MetricCalledStrikePct: calledStrikeCurve,
}

// Benchmarks returns a copy of every benchmark curve keyed by metric.
func Benchmarks() map[Metric][]Checkpoint {
	out := make(map[Metric][]Checkpoint, len(curves))
	for m, c := range curves {
		out[m] = slices.Clone(c)
	}
	return out
}

// Score grades value on the benchmark curve of m. Unknown metrics score the
// neutral fallback.
func Score(m Metric, value float64) float64 {
	return InterpolateScore(value, curves[m])
}
