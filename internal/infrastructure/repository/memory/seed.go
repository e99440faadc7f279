package memory

import (
	"strconv"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
)

const (
	PlayerIDAveryCole   = "demo-avery-cole"
	PlayerIDMiaTorres   = "demo-mia-torres"
	PlayerIDJordanReyes = "demo-jordan-reyes"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDAveryCole, Name: "Avery Cole", Number: "7", Position: "SS", Bats: player.BatsRight},
		{ID: PlayerIDMiaTorres, Name: "Mia Torres", Number: "22", Position: "CF", Bats: player.BatsLeft},
		{ID: PlayerIDJordanReyes, Name: "Jordan Reyes", Number: "15", Position: "C", Bats: player.BatsSwitch},
	}
}

func SeedOutings() []outing.Outing {
	return []outing.Outing{
		{
			ID: "demo-outing-01", PlayerID: PlayerIDAveryCole, Type: outing.TypeBattingPractice,
			Date: seedDate(time.February, 20), IsComplete: true,
			AtBats: []outing.AtBat{
				seedAtBat("demo-ab-0101", outing.ResultSingle, seedBall(outing.HitLineDrive, outing.SpraySingle, -0.4, 0.5, 88, false),
					seedPitch(0, 0.2, outing.PitchFastball, outing.OutcomeBall),
					seedPitch(0.1, 0, outing.PitchFastball, outing.OutcomeInPlayHit)),
				seedAtBat("demo-ab-0102", outing.ResultOut, seedBall(outing.HitGroundBall, outing.SprayOut, 0.2, 0.3, 79, false),
					seedPitch(0.6, -0.4, outing.PitchChangeup, outing.OutcomeFoul),
					seedPitch(-0.3, -0.8, outing.PitchChangeup, outing.OutcomeInPlayOut)),
				seedAtBat("demo-ab-0103", outing.ResultHomeRun, seedBall(outing.HitFlyBall, outing.SprayHomeRun, -0.7, 1.2, 104, true),
					seedPitch(0, 0.5, outing.PitchFastball, outing.OutcomeInPlayHit)),
			},
		},
		{
			ID: "demo-outing-02", PlayerID: PlayerIDAveryCole, Type: outing.TypeGame, Opponent: "Riverside Hawks",
			Date: seedDate(time.March, 1), IsComplete: true,
			AtBats: []outing.AtBat{
				seedAtBat("demo-ab-0201", outing.ResultStrikeout, nil,
					seedPitch(1.3, -1.2, outing.PitchSlider, outing.OutcomeStrikeSwinging),
					seedPitch(0.4, 0.4, outing.PitchFastball, outing.OutcomeStrikeLooking),
					seedPitch(1.2, -1.3, outing.PitchSlider, outing.OutcomeStrikeSwinging)),
				seedAtBat("demo-ab-0202", outing.ResultWalk, nil,
					seedPitch(-1.4, 0.2, outing.PitchFastball, outing.OutcomeBall),
					seedPitch(1.3, 1.4, outing.PitchCurveball, outing.OutcomeBall),
					seedPitch(0, 0, outing.PitchFastball, outing.OutcomeStrikeLooking),
					seedPitch(-1.2, -1.4, outing.PitchChangeup, outing.OutcomeBall),
					seedPitch(1.4, 0, outing.PitchSlider, outing.OutcomeBall)),
				seedAtBat("demo-ab-0203", outing.ResultDouble, seedBall(outing.HitLineDrive, outing.SprayDouble, 0.8, 0.8, 97, true),
					seedPitch(0.3, 0.6, outing.PitchFastball, outing.OutcomeFoul),
					seedPitch(-0.2, 0.1, outing.PitchCutter, outing.OutcomeInPlayHit)),
			},
		},
		{
			ID: "demo-outing-03", PlayerID: PlayerIDAveryCole, Type: outing.TypeLiveABs,
			Date: seedDate(time.March, 5),
			AtBats: []outing.AtBat{
				seedAtBat("demo-ab-0301", outing.ResultOut, seedBall(outing.HitPopup, outing.SprayOut, 0.1, 0.2, 71, false),
					seedPitch(0.9, 1.1, outing.PitchFastball, outing.OutcomeInPlayOut)),
			},
		},
		{
			ID: "demo-outing-04", PlayerID: PlayerIDMiaTorres, Type: outing.TypeCageSession,
			Date: seedDate(time.February, 27), IsComplete: true,
			AtBats: []outing.AtBat{
				seedAtBat("demo-ab-0401", outing.ResultSingle, seedBall(outing.HitGroundBall, outing.SpraySingle, 0.5, 0.4, 84, false),
					seedPitch(-0.5, -0.5, outing.PitchSinker, outing.OutcomeInPlayHit)),
				seedAtBat("demo-ab-0402", outing.ResultTriple, seedBall(outing.HitLineDrive, outing.SprayTriple, 0.9, 0.95, 99, true),
					seedPitch(0.2, 0.3, outing.PitchFastball, outing.OutcomeBall),
					seedPitch(0.1, 0.1, outing.PitchFastball, outing.OutcomeInPlayHit)),
				seedAtBat("demo-ab-0403", outing.ResultStrikeout, nil,
					seedPitch(0, -1.3, outing.PitchSplitter, outing.OutcomeStrikeSwinging),
					seedPitch(0.2, 0.7, outing.PitchFastball, outing.OutcomeFoulTip),
					seedPitch(-0.1, -1.4, outing.PitchSplitter, outing.OutcomeStrikeSwinging)),
			},
		},
	}
}

func seedDate(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

func seedPitch(x, y float64, pitchType outing.PitchType, outcome outing.PitchOutcome) outing.Pitch {
	return outing.Pitch{Location: outing.Location{X: x, Y: y}, PitchType: pitchType, Outcome: outcome}
}

func seedBall(hitType outing.HitType, result outing.SprayResult, x, y, velo float64, barrel bool) *outing.SprayChartPoint {
	return &outing.SprayChartPoint{X: x, Y: y, Result: result, HitType: hitType, ExitVelocity: &velo, IsBarrel: barrel}
}

func seedAtBat(id string, result outing.AtBatResult, ball *outing.SprayChartPoint, pitches ...outing.Pitch) outing.AtBat {
	for i := range pitches {
		pitches[i].ID = id + "-p" + strconv.Itoa(i+1)
	}
	ab := outing.AtBat{ID: id, Result: result, Pitches: pitches, SprayPoint: ball}
	if ball != nil {
		ball.ID = id + "-spray"
	}
	return ab
}
