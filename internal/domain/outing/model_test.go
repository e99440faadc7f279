package outing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationInZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		loc  Location
		want bool
	}{
		{Location{X: 0, Y: 0}, true},
		{Location{X: 1, Y: 1}, true},
		{Location{X: -1, Y: -1}, true},
		{Location{X: 1.01, Y: 0}, false},
		{Location{X: 0, Y: -1.2}, false},
		{Location{X: -1.5, Y: 1.5}, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, tt.loc.InZone(), "location %+v", tt.loc)
	}
}

func TestPitchOutcomeClassification(t *testing.T) {
	t.Parallel()

	for outcome := range AllPitchOutcomes {
		if outcome.IsContact() || outcome.IsWhiff() {
			assert.Truef(t, outcome.IsSwing(), "%s should be a swing", outcome)
		}
		assert.Falsef(t, outcome.IsContact() && outcome.IsWhiff(), "%s cannot be contact and whiff", outcome)
	}
	assert.False(t, OutcomeBall.IsSwing())
	assert.False(t, OutcomeStrikeLooking.IsSwing())
	assert.True(t, OutcomeFoulTip.IsFoul())
}

func TestAtBatResultHelpers(t *testing.T) {
	t.Parallel()

	assert.False(t, ResultWalk.IsOfficialAtBat())
	assert.False(t, ResultHBP.IsOfficialAtBat())
	assert.True(t, ResultStrikeout.IsOfficialAtBat())
	assert.True(t, ResultHomeRun.IsHit())
	assert.False(t, ResultOut.IsHit())
	assert.True(t, ResultOut.IsInPlay())
	assert.True(t, ResultDouble.IsInPlay())
	assert.False(t, ResultStrikeout.IsInPlay())
	assert.False(t, ResultHBP.IsInPlay())
	assert.Equal(t, 4, ResultHomeRun.TotalBases())
	assert.Equal(t, 0, ResultWalk.TotalBases())
}

func TestTypeAbbreviation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BP", TypeBattingPractice.Abbreviation())
	assert.Equal(t, "Cage", TypeCageSession.Abbreviation())
	assert.Equal(t, "Live", TypeLiveABs.Abbreviation())
	assert.Equal(t, "Game", TypeGame.Abbreviation())
}

func TestOutingValidate(t *testing.T) {
	t.Parallel()

	velo := 88.0
	base := Outing{
		ID:       "o1",
		PlayerID: "p1",
		Type:     TypeCageSession,
		Date:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		AtBats: []AtBat{
			{
				ID:     "ab1",
				Result: ResultSingle,
				Pitches: []Pitch{
					{ID: "p1", Location: Location{X: 2.4, Y: -3}, Outcome: OutcomeInPlayHit},
				},
				SprayPoint: &SprayChartPoint{ID: "s1", Result: SpraySingle, HitType: HitLineDrive, ExitVelocity: &velo},
			},
		},
	}

	tests := []struct {
		name    string
		mutate  func(*Outing)
		wantErr bool
	}{
		{name: "valid with out of range location", mutate: func(*Outing) {}},
		{name: "missing player", mutate: func(o *Outing) { o.PlayerID = "" }, wantErr: true},
		{name: "bad type", mutate: func(o *Outing) { o.Type = "scrimmage" }, wantErr: true},
		{name: "zero date", mutate: func(o *Outing) { o.Date = time.Time{} }, wantErr: true},
		{name: "bad result", mutate: func(o *Outing) { o.AtBats[0].Result = "error" }, wantErr: true},
		{name: "bad outcome", mutate: func(o *Outing) { o.AtBats[0].Pitches[0].Outcome = "balk" }, wantErr: true},
		{name: "bad pitch type", mutate: func(o *Outing) { o.AtBats[0].Pitches[0].PitchType = "gyroball" }, wantErr: true},
		{name: "bad hit type", mutate: func(o *Outing) { o.AtBats[0].SprayPoint = &SprayChartPoint{Result: SprayOut, HitType: "bunt"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := base
			item.AtBats = []AtBat{base.AtBats[0]}
			item.AtBats[0].Pitches = append([]Pitch(nil), base.AtBats[0].Pitches...)
			tt.mutate(&item)
			err := item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecordedExitVelocity(t *testing.T) {
	t.Parallel()

	zero := 0.0
	fast := 101.3

	_, ok := SprayChartPoint{}.RecordedExitVelocity()
	assert.False(t, ok)
	_, ok = SprayChartPoint{ExitVelocity: &zero}.RecordedExitVelocity()
	assert.False(t, ok)
	v, ok := SprayChartPoint{ExitVelocity: &fast}.RecordedExitVelocity()
	assert.True(t, ok)
	assert.Equal(t, fast, v)
}

func TestOutingCloneIsDeep(t *testing.T) {
	t.Parallel()

	velo := 92.0
	barrel := true
	original := Outing{
		ID: "o1",
		AtBats: []AtBat{{
			Result:       ResultDouble,
			ExitVelocity: &velo,
			IsBarrel:     &barrel,
			SprayPoint:   &SprayChartPoint{Result: SprayDouble, HitType: HitLineDrive, ExitVelocity: &velo},
			Pitches: []Pitch{{
				Outcome:    OutcomeInPlayHit,
				SprayPoint: &SprayChartPoint{Result: SprayDouble, HitType: HitLineDrive},
			}},
		}},
	}

	clone := original.Clone()
	clone.AtBats[0].Result = ResultOut
	*clone.AtBats[0].ExitVelocity = 50
	clone.AtBats[0].SprayPoint.X = 0.7
	*clone.AtBats[0].SprayPoint.ExitVelocity = 10
	clone.AtBats[0].Pitches[0].Outcome = OutcomeBall
	clone.AtBats[0].Pitches[0].SprayPoint.Y = 0.9

	assert.Equal(t, ResultDouble, original.AtBats[0].Result)
	assert.Equal(t, 92.0, *original.AtBats[0].ExitVelocity)
	assert.Equal(t, 0.0, original.AtBats[0].SprayPoint.X)
	assert.Equal(t, 92.0, *original.AtBats[0].SprayPoint.ExitVelocity)
	assert.Equal(t, OutcomeInPlayHit, original.AtBats[0].Pitches[0].Outcome)
	assert.Equal(t, 0.0, original.AtBats[0].Pitches[0].SprayPoint.Y)
}
