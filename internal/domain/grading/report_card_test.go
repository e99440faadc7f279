package grading

import (
	"math"
	"testing"

	"github.com/riskibarqy/hitting-tracker/internal/domain/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(c CategoryGrade) []string {
	out := make([]string, len(c.Metrics))
	for i, m := range c.Metrics {
		out[i] = m.Label
	}
	return out
}

func TestCalcReportCard_FullInput(t *testing.T) {
	t.Parallel()

	card := CalcReportCard(Input{
		BarrelPct:       15,
		AvgExitVelo:     70,
		ContactPct:      80,
		WhiffRate:       20,
		BattingAvg:      0.300,
		ChasePct:        20,
		CalledStrikePct: 15,
		AvgPitchesPerAB: 4.0,
		TotalAtBats:     10,
		TotalPitches:    50,
	})

	require.Len(t, card.Power.Metrics, 2)
	assert.Equal(t, 95.0, card.Power.Metrics[0].Score)
	assert.Equal(t, 88.0, card.Power.Metrics[1].Score)
	assert.Equal(t, 91.5, card.Power.Score)
	assert.Equal(t, GradeAMinus, card.Power.Grade)

	assert.Equal(t, []string{"Batting Avg", "Contact %", "Whiff Rate"}, labels(card.Contact))
	assert.Equal(t, 80.0, card.Contact.Score)
	assert.Equal(t, GradeBMinus, card.Contact.Grade)

	assert.Equal(t, []string{"Chase Rate", "Called Strike %", "Pitches / AB"}, labels(card.Discipline))
	assert.Equal(t, 85.0, card.Discipline.Score)
	assert.Equal(t, GradeB, card.Discipline.Grade)

	want := (91.5*0.30 + 80*0.35 + 85*0.35) / (0.30 + 0.35 + 0.35)
	assert.InDelta(t, want, card.Overall.Score, 1e-9)
	assert.InDelta(t, 85.2, card.Overall.Score, 1e-9)
	assert.Equal(t, GradeB, card.Overall.Grade)
	assert.True(t, card.HasEnoughData)

	assert.Equal(t, "15.0%", card.Power.Metrics[0].DisplayValue)
	assert.Equal(t, "70.0 mph", card.Power.Metrics[1].DisplayValue)
	assert.Equal(t, ".300", card.Contact.Metrics[0].DisplayValue)
	assert.Equal(t, "4.0", card.Discipline.Metrics[2].DisplayValue)
}

func TestCalcReportCard_ZeroInput(t *testing.T) {
	t.Parallel()

	card := CalcReportCard(Input{})

	assert.Equal(t, []string{"Barrel %"}, labels(card.Power))
	assert.Equal(t, 35.0, card.Power.Score)
	assert.Equal(t, []string{"Batting Avg"}, labels(card.Contact))
	assert.Equal(t, 20.0, card.Contact.Score)
	assert.Empty(t, card.Discipline.Metrics)
	assert.NotNil(t, card.Discipline.Metrics)
	assert.Equal(t, 50.0, card.Discipline.Score)
	assert.Equal(t, GradeF, card.Discipline.Grade)
	assert.InDelta(t, 35*0.30+20*0.35+50*0.35, card.Overall.Score, 1e-9)
	assert.False(t, card.HasEnoughData)
	assert.Equal(t, ".000", card.Contact.Metrics[0].DisplayValue)
	assert.Equal(t, "0.0%", card.Power.Metrics[0].DisplayValue)
}

func TestCalcReportCard_HasEnoughData(t *testing.T) {
	t.Parallel()

	for atBats := 0; atBats <= 8; atBats++ {
		card := CalcReportCard(Input{TotalAtBats: atBats})
		assert.Equalf(t, atBats >= 5, card.HasEnoughData, "at bats %d", atBats)
	}
}

func TestCalcReportCard_NoExitVelocity(t *testing.T) {
	t.Parallel()

	card := CalcReportCard(Input{BarrelPct: 8, TotalPitches: 10, TotalAtBats: 3})
	assert.Equal(t, []string{"Barrel %"}, labels(card.Power))
	assert.Equal(t, 75.0, card.Power.Score)
	assert.Len(t, card.Discipline.Metrics, 3)
}

func TestCalcReportCard_NeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []Input{
		{BarrelPct: math.NaN(), AvgExitVelo: math.Inf(1), TotalPitches: 1},
		{BattingAvg: -0.5, ChasePct: -20, TotalPitches: -3},
		{BattingAvg: 1, AvgPitchesPerAB: 50, TotalPitches: 100, TotalAtBats: 100},
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = CalcReportCard(in) })
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".063", formatAverage(0.0625))
	assert.Equal(t, ".275", formatAverage(0.275))
	assert.Equal(t, ".005", formatAverage(0.005))
	assert.Equal(t, ".1000", formatAverage(1))
	assert.Equal(t, "12.3%", formatPercent(12.34))
	assert.Equal(t, "0.3%", formatPercent(0.25))
	assert.Equal(t, "92.4 mph", formatMPH(92.4))
	assert.Equal(t, "1.0", toFixed(0.96, 1))
	assert.Equal(t, "10.0", toFixed(9.96, 1))
	assert.Equal(t, "-2.5", toFixed(-2.46, 1))
	assert.Equal(t, "3", toFixed(2.5, 0))
	assert.Equal(t, "NaN", toFixed(math.NaN(), 1))
}

func TestInputFromStats(t *testing.T) {
	t.Parallel()

	in := InputFromStats(
		metrics.HittingSummary{AtBats: 12, Avg: 0.25, BarrelPct: 10, AvgExitVelo: 81},
		metrics.PlateDisciplineStats{TotalPitches: 40, ContactPct: 70, WhiffRate: 30, ChasePct: 22, CalledStrikePct: 18, AvgPitchesPerAB: 3.3},
	)

	assert.Equal(t, Input{
		BarrelPct:       10,
		AvgExitVelo:     81,
		ContactPct:      70,
		WhiffRate:       30,
		BattingAvg:      0.25,
		ChasePct:        22,
		CalledStrikePct: 18,
		AvgPitchesPerAB: 3.3,
		TotalAtBats:     12,
		TotalPitches:    40,
	}, in)
}
