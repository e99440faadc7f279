// Package metrics reduces logged outings into hitting statistics.
//
// Every function is pure and total: empty or sparse input yields zero values,
// never NaN, so callers can render results without extra guards. Callers
// composing several statistics from the same outings should Flatten once and
// use the *FromFlattened variants.
package metrics

import "github.com/riskibarqy/hitting-tracker/internal/domain/outing"

// Flattened holds the nested outing log unrolled into flat collections.
type Flattened struct {
	AtBats      []outing.AtBat
	Pitches     []outing.Pitch
	BattedBalls []outing.SprayChartPoint
}

func Flatten(outings []outing.Outing) Flattened {
	var f Flattened
	for _, o := range outings {
		for _, ab := range o.AtBats {
			f.AtBats = append(f.AtBats, ab)
			f.Pitches = append(f.Pitches, ab.Pitches...)
			if point, ok := BattedBall(ab); ok {
				f.BattedBalls = append(f.BattedBalls, point)
			}
		}
	}
	return f
}

func AtBats(outings []outing.Outing) []outing.AtBat {
	var out []outing.AtBat
	for _, o := range outings {
		out = append(out, o.AtBats...)
	}
	return out
}

func Pitches(outings []outing.Outing) []outing.Pitch {
	var out []outing.Pitch
	for _, o := range outings {
		for _, ab := range o.AtBats {
			out = append(out, ab.Pitches...)
		}
	}
	return out
}

func BattedBalls(outings []outing.Outing) []outing.SprayChartPoint {
	var out []outing.SprayChartPoint
	for _, o := range outings {
		for _, ab := range o.AtBats {
			if point, ok := BattedBall(ab); ok {
				out = append(out, point)
			}
		}
	}
	return out
}

// BattedBall resolves the batted-ball record of an at-bat. The at-bat spray
// point wins, then the spray point of the in-play pitch, then a point built
// from the top-level exit velocity and barrel fields when the ball was put in
// play.
func BattedBall(ab outing.AtBat) (outing.SprayChartPoint, bool) {
	if ab.SprayPoint != nil {
		return *ab.SprayPoint, true
	}
	for i := len(ab.Pitches) - 1; i >= 0; i-- {
		if sp := ab.Pitches[i].SprayPoint; sp != nil {
			return *sp, true
		}
	}
	if !ab.Result.IsInPlay() || (ab.ExitVelocity == nil && ab.IsBarrel == nil) {
		return outing.SprayChartPoint{}, false
	}

	point := outing.SprayChartPoint{
		ID:           ab.ID,
		Result:       sprayResultOf(ab.Result),
		ExitVelocity: ab.ExitVelocity,
	}
	if ab.IsBarrel != nil {
		point.IsBarrel = *ab.IsBarrel
	}
	return point, true
}

func sprayResultOf(r outing.AtBatResult) outing.SprayResult {
	switch r {
	case outing.ResultSingle:
		return outing.SpraySingle
	case outing.ResultDouble:
		return outing.SprayDouble
	case outing.ResultTriple:
		return outing.SprayTriple
	case outing.ResultHomeRun:
		return outing.SprayHomeRun
	default:
		return outing.SprayOut
	}
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
