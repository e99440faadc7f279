package outing

// AtBatResult is the final result of a plate appearance.
type AtBatResult string

const (
	ResultStrikeout AtBatResult = "strikeout"
	ResultWalk      AtBatResult = "walk"
	ResultHBP       AtBatResult = "hbp"
	ResultSingle    AtBatResult = "single"
	ResultDouble    AtBatResult = "double"
	ResultTriple    AtBatResult = "triple"
	ResultHomeRun   AtBatResult = "hr"
	ResultOut       AtBatResult = "out"
)

var AllAtBatResults = map[AtBatResult]struct{}{
	ResultStrikeout: {},
	ResultWalk:      {},
	ResultHBP:       {},
	ResultSingle:    {},
	ResultDouble:    {},
	ResultTriple:    {},
	ResultHomeRun:   {},
	ResultOut:       {},
}

func (r AtBatResult) IsHit() bool {
	switch r {
	case ResultSingle, ResultDouble, ResultTriple, ResultHomeRun:
		return true
	default:
		return false
	}
}

// IsInPlay reports whether the at-bat ended with the ball put in play.
func (r AtBatResult) IsInPlay() bool {
	return r == ResultOut || r.IsHit()
}

// IsOfficialAtBat excludes walks and hit-by-pitch from the at-bat count.
func (r AtBatResult) IsOfficialAtBat() bool {
	return r != ResultWalk && r != ResultHBP
}

func (r AtBatResult) TotalBases() int {
	switch r {
	case ResultSingle:
		return 1
	case ResultDouble:
		return 2
	case ResultTriple:
		return 3
	case ResultHomeRun:
		return 4
	default:
		return 0
	}
}

// PitchOutcome is what happened on a single pitch.
type PitchOutcome string

const (
	OutcomeBall           PitchOutcome = "ball"
	OutcomeStrikeLooking  PitchOutcome = "strike_looking"
	OutcomeStrikeSwinging PitchOutcome = "strike_swinging"
	OutcomeFoul           PitchOutcome = "foul"
	OutcomeFoulTip        PitchOutcome = "foul_tip"
	OutcomeInPlayOut      PitchOutcome = "in_play_out"
	OutcomeInPlayHit      PitchOutcome = "in_play_hit"
)

var AllPitchOutcomes = map[PitchOutcome]struct{}{
	OutcomeBall:           {},
	OutcomeStrikeLooking:  {},
	OutcomeStrikeSwinging: {},
	OutcomeFoul:           {},
	OutcomeFoulTip:        {},
	OutcomeInPlayOut:      {},
	OutcomeInPlayHit:      {},
}

func (o PitchOutcome) IsSwing() bool {
	switch o {
	case OutcomeStrikeSwinging, OutcomeFoul, OutcomeFoulTip, OutcomeInPlayOut, OutcomeInPlayHit:
		return true
	default:
		return false
	}
}

func (o PitchOutcome) IsWhiff() bool {
	return o == OutcomeStrikeSwinging
}

func (o PitchOutcome) IsFoul() bool {
	return o == OutcomeFoul || o == OutcomeFoulTip
}

// IsContact is any swing where the bat touched the ball.
func (o PitchOutcome) IsContact() bool {
	return o.IsFoul() || o.IsInPlay()
}

func (o PitchOutcome) IsInPlay() bool {
	return o == OutcomeInPlayOut || o == OutcomeInPlayHit
}

// PitchType is the pitch classification when one was called.
type PitchType string

const (
	PitchUnknown     PitchType = "unknown"
	PitchFastball    PitchType = "fastball"
	PitchSinker      PitchType = "sinker"
	PitchCutter      PitchType = "cutter"
	PitchSlider      PitchType = "slider"
	PitchCurveball   PitchType = "curveball"
	PitchChangeup    PitchType = "changeup"
	PitchSplitter    PitchType = "splitter"
	PitchKnuckleball PitchType = "knuckleball"
)

var AllPitchTypes = map[PitchType]struct{}{
	PitchUnknown:     {},
	PitchFastball:    {},
	PitchSinker:      {},
	PitchCutter:      {},
	PitchSlider:      {},
	PitchCurveball:   {},
	PitchChangeup:    {},
	PitchSplitter:    {},
	PitchKnuckleball: {},
}

// SprayResult is the scored result of a batted ball.
type SprayResult string

const (
	SpraySingle  SprayResult = "single"
	SprayDouble  SprayResult = "double"
	SprayTriple  SprayResult = "triple"
	SprayHomeRun SprayResult = "hr"
	SprayOut     SprayResult = "out"
)

var AllSprayResults = map[SprayResult]struct{}{
	SpraySingle:  {},
	SprayDouble:  {},
	SprayTriple:  {},
	SprayHomeRun: {},
	SprayOut:     {},
}

type HitType string

const (
	HitGroundBall HitType = "ground_ball"
	HitLineDrive  HitType = "line_drive"
	HitFlyBall    HitType = "fly_ball"
	HitPopup      HitType = "popup"
)

var AllHitTypes = map[HitType]struct{}{
	HitGroundBall: {},
	HitLineDrive:  {},
	HitFlyBall:    {},
	HitPopup:      {},
}
