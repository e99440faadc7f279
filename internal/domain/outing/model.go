package outing

import (
	"errors"
	"fmt"
	"time"
)

var ErrOutingComplete = errors.New("outing is already complete")

// Type is the kind of session an outing was logged from.
type Type string

const (
	TypeGame            Type = "game"
	TypeBattingPractice Type = "batting_practice"
	TypeCageSession     Type = "cage_session"
	TypeLiveABs         Type = "live_abs"
)

var AllTypes = map[Type]struct{}{
	TypeGame:            {},
	TypeBattingPractice: {},
	TypeCageSession:     {},
	TypeLiveABs:         {},
}

// Abbreviation is the short tag used on trend labels and filter pills.
func (t Type) Abbreviation() string {
	switch t {
	case TypeGame:
		return "Game"
	case TypeBattingPractice:
		return "BP"
	case TypeCageSession:
		return "Cage"
	case TypeLiveABs:
		return "Live"
	default:
		return string(t)
	}
}

// Outing is one practice or game session for a single player.
// AtBats are kept in the order they were logged.
type Outing struct {
	ID         string
	PlayerID   string
	Type       Type
	Date       time.Time
	Opponent   string
	AtBats     []AtBat
	Notes      string
	IsComplete bool
}

// AtBat is one plate appearance.
//
// ExitVelocity and IsBarrel mirror SprayPoint for producers that only fill the
// top-level fields. Readers should prefer SprayPoint when it is present.
type AtBat struct {
	ID           string
	Pitches      []Pitch
	Result       AtBatResult
	SprayPoint   *SprayChartPoint
	ExitVelocity *float64
	IsBarrel     *bool
	Notes        string
}

// Pitch is one pitch within an at-bat.
type Pitch struct {
	ID         string
	Location   Location
	PitchType  PitchType
	Outcome    PitchOutcome
	SprayPoint *SprayChartPoint
}

// Location is a normalized pitch location. X runs inside to outside and Y low
// to high, both within [-1.5, 1.5]. The strike zone edge sits at ±1.
type Location struct {
	X float64
	Y float64
}

func (l Location) InZone() bool {
	return l.X >= -1 && l.X <= 1 && l.Y >= -1 && l.Y <= 1
}

// SprayChartPoint is where a batted ball landed. X runs left to right field in
// [-1, 1], Y from home plate to the outfield (home runs may exceed 1).
type SprayChartPoint struct {
	ID           string
	X            float64
	Y            float64
	Result       SprayResult
	HitType      HitType
	ExitVelocity *float64
	IsBarrel     bool
}

// RecordedExitVelocity reports the exit velocity when one was captured.
// A zero reading is treated as missing.
func (p SprayChartPoint) RecordedExitVelocity() (float64, bool) {
	if p.ExitVelocity == nil || *p.ExitVelocity == 0 {
		return 0, false
	}
	return *p.ExitVelocity, true
}

func (o Outing) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("outing id is required")
	}
	if o.PlayerID == "" {
		return fmt.Errorf("outing player id is required")
	}
	if _, ok := AllTypes[o.Type]; !ok {
		return fmt.Errorf("invalid outing type: %s", o.Type)
	}
	if o.Date.IsZero() {
		return fmt.Errorf("outing date is required")
	}
	for i, ab := range o.AtBats {
		if err := ab.Validate(); err != nil {
			return fmt.Errorf("at bat %d: %w", i, err)
		}
	}

	return nil
}

func (ab AtBat) Validate() error {
	if _, ok := AllAtBatResults[ab.Result]; !ok {
		return fmt.Errorf("invalid at bat result: %s", ab.Result)
	}
	for i, p := range ab.Pitches {
		if _, ok := AllPitchOutcomes[p.Outcome]; !ok {
			return fmt.Errorf("pitch %d: invalid outcome: %s", i, p.Outcome)
		}
		if _, ok := AllPitchTypes[p.PitchType]; !ok && p.PitchType != "" {
			return fmt.Errorf("pitch %d: invalid pitch type: %s", i, p.PitchType)
		}
		if p.SprayPoint != nil {
			if err := p.SprayPoint.Validate(); err != nil {
				return fmt.Errorf("pitch %d: %w", i, err)
			}
		}
	}
	if ab.SprayPoint != nil {
		if err := ab.SprayPoint.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (p SprayChartPoint) Validate() error {
	if _, ok := AllSprayResults[p.Result]; !ok {
		return fmt.Errorf("invalid spray result: %s", p.Result)
	}
	if _, ok := AllHitTypes[p.HitType]; !ok {
		return fmt.Errorf("invalid hit type: %s", p.HitType)
	}
	if p.ExitVelocity != nil && *p.ExitVelocity < 0 {
		return fmt.Errorf("exit velocity must not be negative")
	}

	return nil
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clone returns a deep copy that shares no slices or pointers with o.
func (o Outing) Clone() Outing {
	if o.AtBats == nil {
		return o
	}
	atBats := make([]AtBat, len(o.AtBats))
	for i, ab := range o.AtBats {
		atBats[i] = ab.Clone()
	}
	o.AtBats = atBats
	return o
}

func (ab AtBat) Clone() AtBat {
	if ab.Pitches != nil {
		pitches := make([]Pitch, len(ab.Pitches))
		for i, p := range ab.Pitches {
			p.SprayPoint = p.SprayPoint.clone()
			pitches[i] = p
		}
		ab.Pitches = pitches
	}
	ab.SprayPoint = ab.SprayPoint.clone()
	if ab.ExitVelocity != nil {
		v := *ab.ExitVelocity
		ab.ExitVelocity = &v
	}
	if ab.IsBarrel != nil {
		v := *ab.IsBarrel
		ab.IsBarrel = &v
	}
	return ab
}

func (p *SprayChartPoint) clone() *SprayChartPoint {
	if p == nil {
		return nil
	}
	out := *p
	if p.ExitVelocity != nil {
		v := *p.ExitVelocity
		out.ExitVelocity = &v
	}
	return &out
}
