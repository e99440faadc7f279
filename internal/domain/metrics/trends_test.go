package metrics

import (
	"testing"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func TestOutingTrends_SortsByDateAndKeepsTies(t *testing.T) {
	t.Parallel()

	outings := []outing.Outing{
		{ID: "late", Type: outing.TypeGame, Date: day(time.April, 2)},
		{ID: "tie-first", Type: outing.TypeBattingPractice, Date: day(time.March, 5)},
		{ID: "tie-second", Type: outing.TypeCageSession, Date: day(time.March, 5)},
		{ID: "early", Type: outing.TypeLiveABs, Date: day(time.February, 20)},
	}

	got := OutingTrends(outings)
	require.Len(t, got, 4)

	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.OutingID
	}
	assert.Equal(t, []string{"early", "tie-first", "tie-second", "late"}, ids)
	assert.Equal(t, "BP Mar 5", got[1].Label)
	assert.Equal(t, "Live Feb 20", got[0].Label)

	// input order untouched
	assert.Equal(t, "late", outings[0].ID)
}

func TestOutingTrends_PointMetrics(t *testing.T) {
	t.Parallel()

	outings := []outing.Outing{{
		ID:   "o1",
		Type: outing.TypeGame,
		Date: day(time.May, 1),
		AtBats: []outing.AtBat{
			{ID: "1", Result: outing.ResultDouble, Pitches: []outing.Pitch{
				pitch(outing.OutcomeStrikeSwinging, 0, 0),
				pitch(outing.OutcomeInPlayHit, 0, 0),
			}, SprayPoint: &outing.SprayChartPoint{Result: outing.SprayDouble, ExitVelocity: velo(90), IsBarrel: true}},
			{ID: "2", Result: outing.ResultStrikeout, Pitches: []outing.Pitch{
				pitch(outing.OutcomeStrikeSwinging, 0, 0),
				pitch(outing.OutcomeFoul, 0, 0),
			}},
			{ID: "3", Result: outing.ResultWalk},
			{ID: "4", Result: outing.ResultHBP},
			{ID: "5", Result: outing.ResultOut, SprayPoint: &outing.SprayChartPoint{Result: outing.SprayOut, ExitVelocity: velo(70)}},
		},
	}}

	got := OutingTrends(outings)
	require.Len(t, got, 1)
	p := got[0]

	assert.Equal(t, 3, p.AtBats)
	assert.Equal(t, 1, p.Hits)
	assert.Equal(t, 1, p.Strikeouts)
	assert.Equal(t, 1, p.Walks)
	assert.InDelta(t, 0.333, p.Avg, 0.001)
	assert.Equal(t, 80.0, p.ExitVelo)
	assert.Equal(t, 50.0, p.BarrelPct)
	assert.Equal(t, 50.0, p.WhiffRate)
	assert.Equal(t, 50.0, p.ContactPct)
}

func TestOutingTrends_EmptyOutingIsZero(t *testing.T) {
	t.Parallel()

	got := OutingTrends([]outing.Outing{{ID: "o", Type: outing.TypeCageSession, Date: day(time.June, 9)}})
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Avg)
	assert.Equal(t, 0.0, got[0].ExitVelo)
	assert.Equal(t, 0.0, got[0].WhiffRate)
	assert.Empty(t, OutingTrends(nil))
}

func TestFilterTrends(t *testing.T) {
	t.Parallel()

	points := []OutingTrendPoint{
		{OutingID: "a", Type: outing.TypeGame},
		{OutingID: "b", Type: outing.TypeBattingPractice},
		{OutingID: "c", Type: outing.TypeGame},
	}

	games := FilterTrends(points, outing.TypeGame)
	require.Len(t, games, 2)
	assert.Equal(t, "c", games[1].OutingID)
	assert.Len(t, FilterTrends(points, ""), 3)
	assert.Empty(t, FilterTrends(points, outing.TypeLiveABs))
}

func TestRollingAverage(t *testing.T) {
	t.Parallel()

	got := RollingAverage([]float64{3, 6, 9, 12}, 3)
	assert.Equal(t, []float64{3, 4.5, 6, 9}, got)

	assert.Equal(t, []float64{1, 2}, RollingAverage([]float64{1, 2}, 0))
	assert.Empty(t, RollingAverage(nil, 3))
}

func TestSeries(t *testing.T) {
	t.Parallel()

	points := []OutingTrendPoint{
		{Avg: 0.25, ExitVelo: 80, BarrelPct: 10, WhiffRate: 20, ContactPct: 80},
		{Avg: 0.5, ExitVelo: 90, BarrelPct: 20, WhiffRate: 30, ContactPct: 70},
	}

	assert.Equal(t, []float64{0.25, 0.5}, Series(points, TrendAvg))
	assert.Equal(t, []float64{80, 90}, Series(points, TrendExitVelo))
	assert.Equal(t, []float64{10, 20}, Series(points, TrendBarrelPct))
	assert.Equal(t, []float64{20, 30}, Series(points, TrendWhiffRate))
	assert.Equal(t, []float64{80, 70}, Series(points, TrendContactPct))
}
