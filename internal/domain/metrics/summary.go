package metrics

import "github.com/riskibarqy/hitting-tracker/internal/domain/outing"

// HittingSummary is the counting and rate line for a set of outings.
// Avg and Slg are fractions; the *Pct fields are on a 0-100 scale.
type HittingSummary struct {
	PlateAppearances int
	AtBats           int
	Hits             int
	Singles          int
	Doubles          int
	Triples          int
	HomeRuns         int
	Strikeouts       int
	Walks            int
	HitByPitch       int
	Avg              float64
	Slg              float64
	BarrelPct        float64
	AvgExitVelo      float64
	HardHitPct       float64
	BattedBalls      int
}

func Summary(outings []outing.Outing) HittingSummary {
	return SummaryFromFlattened(Flatten(outings))
}

func SummaryFromFlattened(f Flattened) HittingSummary {
	var s HittingSummary
	totalBases := 0
	for _, ab := range f.AtBats {
		s.PlateAppearances++
		if ab.Result.IsOfficialAtBat() {
			s.AtBats++
		}
		if ab.Result.IsHit() {
			s.Hits++
		}
		totalBases += ab.Result.TotalBases()

		switch ab.Result {
		case outing.ResultSingle:
			s.Singles++
		case outing.ResultDouble:
			s.Doubles++
		case outing.ResultTriple:
			s.Triples++
		case outing.ResultHomeRun:
			s.HomeRuns++
		case outing.ResultStrikeout:
			s.Strikeouts++
		case outing.ResultWalk:
			s.Walks++
		case outing.ResultHBP:
			s.HitByPitch++
		}
	}

	s.Avg = ratio(s.Hits, s.AtBats)
	s.Slg = ratio(totalBases, s.AtBats)
	s.BattedBalls = len(f.BattedBalls)
	s.BarrelPct = BarrelPercent(f.BattedBalls)
	s.AvgExitVelo = AvgExitVelocity(f.BattedBalls)
	s.HardHitPct = HardHitPercent(f.BattedBalls)

	return s
}
