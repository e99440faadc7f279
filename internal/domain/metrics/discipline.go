package metrics

import "github.com/riskibarqy/hitting-tracker/internal/domain/outing"

// PlateDisciplineStats are swing-decision rates over a pitch log. Rates are
// percentages on a 0-100 scale except AvgPitchesPerAB.
type PlateDisciplineStats struct {
	TotalPitches       int
	Swings             int
	Takes              int
	SwingPct           float64
	WhiffRate          float64
	ChasePct           float64
	CalledStrikePct    float64
	FoulPct            float64
	ContactPct         float64
	FirstPitchSwingPct float64
	FirstPitchHitPct   float64
	AvgPitchesPerAB    float64
}

type pitchCounts struct {
	total         int
	swings        int
	whiffs        int
	fouls         int
	contacts      int
	calledStrikes int
	outOfZone     int
	chases        int
}

func countPitches(pitches []outing.Pitch) pitchCounts {
	var c pitchCounts
	for _, p := range pitches {
		c.total++
		swung := p.Outcome.IsSwing()
		if swung {
			c.swings++
		}
		if p.Outcome.IsWhiff() {
			c.whiffs++
		}
		if p.Outcome.IsFoul() {
			c.fouls++
		}
		if p.Outcome.IsContact() {
			c.contacts++
		}
		if p.Outcome == outing.OutcomeStrikeLooking {
			c.calledStrikes++
		}
		if !p.Location.InZone() {
			c.outOfZone++
			if swung {
				c.chases++
			}
		}
	}
	return c
}

func (c pitchCounts) takes() int {
	return c.total - c.swings
}

func PlateDiscipline(outings []outing.Outing) PlateDisciplineStats {
	return DisciplineFromFlattened(Flatten(outings))
}

// DisciplineFromFlattened computes plate discipline from a pre-flattened log.
func DisciplineFromFlattened(f Flattened) PlateDisciplineStats {
	if len(f.Pitches) == 0 {
		return PlateDisciplineStats{}
	}

	c := countPitches(f.Pitches)

	var trackedABs, firstSwings, firstHits, trackedPitches int
	for _, ab := range f.AtBats {
		if len(ab.Pitches) == 0 {
			continue
		}
		trackedABs++
		trackedPitches += len(ab.Pitches)
		first := ab.Pitches[0].Outcome
		if first.IsSwing() {
			firstSwings++
		}
		if first == outing.OutcomeInPlayHit {
			firstHits++
		}
	}

	return PlateDisciplineStats{
		TotalPitches:       c.total,
		Swings:             c.swings,
		Takes:              c.takes(),
		SwingPct:           percent(c.swings, c.total),
		WhiffRate:          percent(c.whiffs, c.swings),
		ChasePct:           percent(c.chases, c.outOfZone),
		CalledStrikePct:    percent(c.calledStrikes, c.takes()),
		FoulPct:            percent(c.fouls, c.swings),
		ContactPct:         percent(c.contacts, c.swings),
		FirstPitchSwingPct: percent(firstSwings, trackedABs),
		FirstPitchHitPct:   percent(firstHits, trackedABs),
		AvgPitchesPerAB:    ratio(trackedPitches, trackedABs),
	}
}
