package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/grading"
	"github.com/riskibarqy/hitting-tracker/internal/domain/metrics"
	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	"github.com/riskibarqy/hitting-tracker/internal/usecase"
)

const dateLayout = "2006-01-02"

type playerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Number      string `json:"number" validate:"omitempty,max=10"`
	Position    string `json:"position" validate:"omitempty,max=40"`
	Bats        string `json:"bats" validate:"required,oneof=L R S l r s"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
	PlaylistURL string `json:"playlist_url" validate:"omitempty,url"`
}

func (req playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		Name:        req.Name,
		Number:      req.Number,
		Position:    req.Position,
		Bats:        player.Bats(req.Bats),
		AvatarURL:   req.AvatarURL,
		PlaylistURL: req.PlaylistURL,
	}
}

type createOutingRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	outingRequest
}

type outingRequest struct {
	Type       string         `json:"type" validate:"required,oneof=game batting_practice cage_session live_abs"`
	Date       string         `json:"date" validate:"required"`
	Opponent   string         `json:"opponent" validate:"omitempty,max=100"`
	AtBats     []atBatRequest `json:"at_bats" validate:"omitempty,dive"`
	Notes      string         `json:"notes" validate:"omitempty,max=2000"`
	IsComplete bool           `json:"is_complete"`
}

type atBatRequest struct {
	ID           string             `json:"id" validate:"omitempty,max=64"`
	Pitches      []pitchRequest     `json:"pitches" validate:"omitempty,dive"`
	Result       string             `json:"result" validate:"required"`
	SprayPoint   *sprayPointRequest `json:"spray_point" validate:"omitempty"`
	ExitVelocity *float64           `json:"exit_velocity" validate:"omitempty,gte=0"`
	IsBarrel     *bool              `json:"is_barrel"`
	Notes        string             `json:"notes" validate:"omitempty,max=500"`
}

type pitchRequest struct {
	ID         string             `json:"id" validate:"omitempty,max=64"`
	Location   locationRequest    `json:"location"`
	PitchType  string             `json:"pitch_type"`
	Outcome    string             `json:"outcome" validate:"required"`
	SprayPoint *sprayPointRequest `json:"spray_point" validate:"omitempty"`
}

type locationRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sprayPointRequest struct {
	ID           string   `json:"id" validate:"omitempty,max=64"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Result       string   `json:"result" validate:"required"`
	HitType      string   `json:"hit_type" validate:"required"`
	ExitVelocity *float64 `json:"exit_velocity" validate:"omitempty,gte=0"`
	IsBarrel     bool     `json:"is_barrel"`
}

func (req outingRequest) toInput(playerID string) (usecase.OutingInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return usecase.OutingInput{}, err
	}

	atBats := make([]outing.AtBat, 0, len(req.AtBats))
	for _, ab := range req.AtBats {
		atBats = append(atBats, ab.toDomain())
	}

	return usecase.OutingInput{
		PlayerID:   playerID,
		Type:       outingType(req.Type),
		Date:       date,
		Opponent:   req.Opponent,
		AtBats:     atBats,
		Notes:      req.Notes,
		IsComplete: req.IsComplete,
	}, nil
}

func (req atBatRequest) toDomain() outing.AtBat {
	pitches := make([]outing.Pitch, 0, len(req.Pitches))
	for _, p := range req.Pitches {
		pitches = append(pitches, outing.Pitch{
			ID:         strings.TrimSpace(p.ID),
			Location:   outing.Location{X: p.Location.X, Y: p.Location.Y},
			PitchType:  outing.PitchType(strings.ToLower(strings.TrimSpace(p.PitchType))),
			Outcome:    outing.PitchOutcome(strings.ToLower(strings.TrimSpace(p.Outcome))),
			SprayPoint: p.SprayPoint.toDomain(),
		})
	}

	return outing.AtBat{
		ID:           strings.TrimSpace(req.ID),
		Pitches:      pitches,
		Result:       outing.AtBatResult(strings.ToLower(strings.TrimSpace(req.Result))),
		SprayPoint:   req.SprayPoint.toDomain(),
		ExitVelocity: req.ExitVelocity,
		IsBarrel:     req.IsBarrel,
		Notes:        strings.TrimSpace(req.Notes),
	}
}

func (req *sprayPointRequest) toDomain() *outing.SprayChartPoint {
	if req == nil {
		return nil
	}
	return &outing.SprayChartPoint{
		ID:           strings.TrimSpace(req.ID),
		X:            req.X,
		Y:            req.Y,
		Result:       outing.SprayResult(strings.ToLower(strings.TrimSpace(req.Result))),
		HitType:      outing.HitType(strings.ToLower(strings.TrimSpace(req.HitType))),
		ExitVelocity: req.ExitVelocity,
		IsBarrel:     req.IsBarrel,
	}
}

func outingType(v string) outing.Type {
	return outing.Type(strings.ToLower(strings.TrimSpace(v)))
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q: expected YYYY-MM-DD", usecase.ErrInvalidInput, v)
	}
	return t, nil
}

type playerDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number,omitempty"`
	Position    string `json:"position,omitempty"`
	Bats        string `json:"bats"`
	BatsLabel   string `json:"bats_label"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	PlaylistURL string `json:"playlist_url,omitempty"`
}

type outingDTO struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"player_id"`
	Type       string     `json:"type"`
	TypeLabel  string     `json:"type_label"`
	Date       string     `json:"date"`
	Label      string     `json:"label"`
	Opponent   string     `json:"opponent,omitempty"`
	AtBats     []atBatDTO `json:"at_bats"`
	Notes      string     `json:"notes,omitempty"`
	IsComplete bool       `json:"is_complete"`
}

type atBatDTO struct {
	ID           string         `json:"id"`
	Pitches      []pitchDTO     `json:"pitches"`
	Result       string         `json:"result"`
	SprayPoint   *sprayPointDTO `json:"spray_point,omitempty"`
	ExitVelocity *float64       `json:"exit_velocity,omitempty"`
	IsBarrel     *bool          `json:"is_barrel,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

type pitchDTO struct {
	ID         string         `json:"id"`
	Location   locationDTO    `json:"location"`
	InZone     bool           `json:"in_zone"`
	PitchType  string         `json:"pitch_type,omitempty"`
	Outcome    string         `json:"outcome"`
	SprayPoint *sprayPointDTO `json:"spray_point,omitempty"`
}

type locationDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sprayPointDTO struct {
	ID           string   `json:"id"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Result       string   `json:"result"`
	HitType      string   `json:"hit_type"`
	ExitVelocity *float64 `json:"exit_velocity,omitempty"`
	IsBarrel     bool     `json:"is_barrel"`
}

type summaryDTO struct {
	PlateAppearances int     `json:"plate_appearances"`
	AtBats           int     `json:"at_bats"`
	Hits             int     `json:"hits"`
	Singles          int     `json:"singles"`
	Doubles          int     `json:"doubles"`
	Triples          int     `json:"triples"`
	HomeRuns         int     `json:"home_runs"`
	Strikeouts       int     `json:"strikeouts"`
	Walks            int     `json:"walks"`
	HitByPitch       int     `json:"hit_by_pitch"`
	Avg              float64 `json:"avg"`
	Slg              float64 `json:"slg"`
	BarrelPct        float64 `json:"barrel_pct"`
	AvgExitVelo      float64 `json:"avg_exit_velo"`
	HardHitPct       float64 `json:"hard_hit_pct"`
	BattedBalls      int     `json:"batted_balls"`
}

type disciplineDTO struct {
	TotalPitches       int     `json:"total_pitches"`
	Swings             int     `json:"swings"`
	Takes              int     `json:"takes"`
	SwingPct           float64 `json:"swing_pct"`
	WhiffRate          float64 `json:"whiff_rate"`
	ChasePct           float64 `json:"chase_pct"`
	CalledStrikePct    float64 `json:"called_strike_pct"`
	FoulPct            float64 `json:"foul_pct"`
	ContactPct         float64 `json:"contact_pct"`
	FirstPitchSwingPct float64 `json:"first_pitch_swing_pct"`
	FirstPitchHitPct   float64 `json:"first_pitch_hit_pct"`
	AvgPitchesPerAB    float64 `json:"avg_pitches_per_ab"`
}

type qualityDTO struct {
	Chase        string `json:"chase"`
	CalledStrike string `json:"called_strike"`
	Contact      string `json:"contact"`
	Whiff        string `json:"whiff"`
}

type trendPointDTO struct {
	OutingID   string  `json:"outing_id"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Label      string  `json:"label"`
	AtBats     int     `json:"at_bats"`
	Hits       int     `json:"hits"`
	Strikeouts int     `json:"strikeouts"`
	Walks      int     `json:"walks"`
	Avg        float64 `json:"avg"`
	ExitVelo   float64 `json:"exit_velo"`
	BarrelPct  float64 `json:"barrel_pct"`
	WhiffRate  float64 `json:"whiff_rate"`
	ContactPct float64 `json:"contact_pct"`
}

type zoneCellDTO struct {
	Row     int      `json:"row"`
	Col     int      `json:"col"`
	Total   int      `json:"total"`
	Hits    int      `json:"hits"`
	HitRate *float64 `json:"hit_rate"`
}

type sprayDTO struct {
	Total     int            `json:"total"`
	ByResult  map[string]int `json:"by_result"`
	ByHitType map[string]int `json:"by_hit_type"`
}

type metricGradeDTO struct {
	Metric       string  `json:"metric"`
	Label        string  `json:"label"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"display_value"`
	Score        float64 `json:"score"`
	Grade        string  `json:"grade"`
}

type categoryGradeDTO struct {
	Label   string           `json:"label"`
	Score   float64          `json:"score"`
	Grade   string           `json:"grade"`
	Metrics []metricGradeDTO `json:"metrics"`
}

type reportCardDTO struct {
	OverallScore  float64          `json:"overall_score"`
	OverallGrade  string           `json:"overall_grade"`
	Power         categoryGradeDTO `json:"power"`
	Contact       categoryGradeDTO `json:"contact"`
	Discipline    categoryGradeDTO `json:"discipline"`
	HasEnoughData bool             `json:"has_enough_data"`
}

type playerStatsDTO struct {
	Player     playerDTO       `json:"player"`
	Outings    []outingDTO     `json:"outings"`
	Summary    summaryDTO      `json:"summary"`
	Discipline disciplineDTO   `json:"discipline"`
	Quality    qualityDTO      `json:"quality"`
	Trends     []trendPointDTO `json:"trends"`
	Zones      []zoneCellDTO   `json:"zones"`
	Spray      sprayDTO        `json:"spray"`
	ReportCard reportCardDTO   `json:"report_card"`
}

type trendSeriesDTO struct {
	Metric  string          `json:"metric"`
	Window  int             `json:"window"`
	Points  []trendPointDTO `json:"points"`
	Values  []float64       `json:"values"`
	Rolling []float64       `json:"rolling"`
}

type rosterReportCardDTO struct {
	Player     playerDTO     `json:"player"`
	Outings    int           `json:"outings"`
	AtBats     int           `json:"at_bats"`
	ReportCard reportCardDTO `json:"report_card"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		Number:      v.Number,
		Position:    v.Position,
		Bats:        string(v.Bats),
		BatsLabel:   v.Bats.Label(),
		AvatarURL:   v.AvatarURL,
		PlaylistURL: v.PlaylistURL,
	}
}

func outingToDTO(v outing.Outing) outingDTO {
	atBats := make([]atBatDTO, 0, len(v.AtBats))
	for _, ab := range v.AtBats {
		atBats = append(atBats, atBatToDTO(ab))
	}

	return outingDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		Type:       string(v.Type),
		TypeLabel:  v.Type.Abbreviation(),
		Date:       v.Date.Format(dateLayout),
		Label:      metrics.TrendLabel(v),
		Opponent:   v.Opponent,
		AtBats:     atBats,
		Notes:      v.Notes,
		IsComplete: v.IsComplete,
	}
}

func outingsToDTO(items []outing.Outing) []outingDTO {
	out := make([]outingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, outingToDTO(item))
	}
	return out
}

func atBatToDTO(v outing.AtBat) atBatDTO {
	pitches := make([]pitchDTO, 0, len(v.Pitches))
	for _, p := range v.Pitches {
		pitches = append(pitches, pitchDTO{
			ID:         p.ID,
			Location:   locationDTO{X: p.Location.X, Y: p.Location.Y},
			InZone:     p.Location.InZone(),
			PitchType:  string(p.PitchType),
			Outcome:    string(p.Outcome),
			SprayPoint: sprayPointToDTO(p.SprayPoint),
		})
	}

	return atBatDTO{
		ID:           v.ID,
		Pitches:      pitches,
		Result:       string(v.Result),
		SprayPoint:   sprayPointToDTO(v.SprayPoint),
		ExitVelocity: v.ExitVelocity,
		IsBarrel:     v.IsBarrel,
		Notes:        v.Notes,
	}
}

func sprayPointToDTO(v *outing.SprayChartPoint) *sprayPointDTO {
	if v == nil {
		return nil
	}
	return &sprayPointDTO{
		ID:           v.ID,
		X:            v.X,
		Y:            v.Y,
		Result:       string(v.Result),
		HitType:      string(v.HitType),
		ExitVelocity: v.ExitVelocity,
		IsBarrel:     v.IsBarrel,
	}
}

func trendPointsToDTO(points []metrics.OutingTrendPoint) []trendPointDTO {
	out := make([]trendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, trendPointDTO{
			OutingID:   p.OutingID,
			Date:       p.Date.Format(dateLayout),
			Type:       string(p.Type),
			Label:      p.Label,
			AtBats:     p.AtBats,
			Hits:       p.Hits,
			Strikeouts: p.Strikeouts,
			Walks:      p.Walks,
			Avg:        p.Avg,
			ExitVelo:   p.ExitVelo,
			BarrelPct:  p.BarrelPct,
			WhiffRate:  p.WhiffRate,
			ContactPct: p.ContactPct,
		})
	}
	return out
}

// zonesToDTO flattens the grid row by row. Cells without pitches carry a null hit rate.
func zonesToDTO(grid metrics.ZoneGrid) []zoneCellDTO {
	out := make([]zoneCellDTO, 0, metrics.ZoneGridSize*metrics.ZoneGridSize)
	for row := range grid {
		for col, cell := range grid[row] {
			item := zoneCellDTO{Row: row, Col: col, Total: cell.Total, Hits: cell.Hits}
			if cell.Total > 0 {
				rate := cell.HitRate
				item.HitRate = &rate
			}
			out = append(out, item)
		}
	}
	return out
}

func sprayToDTO(v metrics.SprayBreakdown) sprayDTO {
	out := sprayDTO{
		Total:     v.Total,
		ByResult:  make(map[string]int, len(v.ByResult)),
		ByHitType: make(map[string]int, len(v.ByHitType)),
	}
	for k, n := range v.ByResult {
		out.ByResult[string(k)] = n
	}
	for k, n := range v.ByHitType {
		out.ByHitType[string(k)] = n
	}
	return out
}

func reportCardToDTO(v grading.ReportCard) reportCardDTO {
	return reportCardDTO{
		OverallScore:  v.Overall.Score,
		OverallGrade:  string(v.Overall.Grade),
		Power:         categoryToDTO(v.Power),
		Contact:       categoryToDTO(v.Contact),
		Discipline:    categoryToDTO(v.Discipline),
		HasEnoughData: v.HasEnoughData,
	}
}

func categoryToDTO(v grading.CategoryGrade) categoryGradeDTO {
	items := make([]metricGradeDTO, 0, len(v.Metrics))
	for _, m := range v.Metrics {
		items = append(items, metricGradeDTO{
			Metric:       string(m.Metric),
			Label:        m.Label,
			Value:        m.Value,
			DisplayValue: m.DisplayValue,
			Score:        m.Score,
			Grade:        string(m.Grade),
		})
	}
	return categoryGradeDTO{
		Label:   v.Label,
		Score:   v.Score,
		Grade:   string(v.Grade),
		Metrics: items,
	}
}

func playerStatsToDTO(v usecase.PlayerStats) playerStatsDTO {
	s := v.Summary
	d := v.Discipline
	return playerStatsDTO{
		Player:  playerToDTO(v.Player),
		Outings: outingsToDTO(v.Outings),
		Summary: summaryDTO{
			PlateAppearances: s.PlateAppearances,
			AtBats:           s.AtBats,
			Hits:             s.Hits,
			Singles:          s.Singles,
			Doubles:          s.Doubles,
			Triples:          s.Triples,
			HomeRuns:         s.HomeRuns,
			Strikeouts:       s.Strikeouts,
			Walks:            s.Walks,
			HitByPitch:       s.HitByPitch,
			Avg:              s.Avg,
			Slg:              s.Slg,
			BarrelPct:        s.BarrelPct,
			AvgExitVelo:      s.AvgExitVelo,
			HardHitPct:       s.HardHitPct,
			BattedBalls:      s.BattedBalls,
		},
		Discipline: disciplineDTO{
			TotalPitches:       d.TotalPitches,
			Swings:             d.Swings,
			Takes:              d.Takes,
			SwingPct:           d.SwingPct,
			WhiffRate:          d.WhiffRate,
			ChasePct:           d.ChasePct,
			CalledStrikePct:    d.CalledStrikePct,
			FoulPct:            d.FoulPct,
			ContactPct:         d.ContactPct,
			FirstPitchSwingPct: d.FirstPitchSwingPct,
			FirstPitchHitPct:   d.FirstPitchHitPct,
			AvgPitchesPerAB:    d.AvgPitchesPerAB,
		},
		Quality: qualityDTO{
			Chase:        string(v.Quality.Chase),
			CalledStrike: string(v.Quality.CalledStrike),
			Contact:      string(v.Quality.Contact),
			Whiff:        string(v.Quality.Whiff),
		},
		Trends:     trendPointsToDTO(v.Trends),
		Zones:      zonesToDTO(v.Zones),
		Spray:      sprayToDTO(v.Spray),
		ReportCard: reportCardToDTO(v.ReportCard),
	}
}

func trendSeriesToDTO(v usecase.TrendSeries) trendSeriesDTO {
	return trendSeriesDTO{
		Metric:  string(v.Metric),
		Window:  v.Window,
		Points:  trendPointsToDTO(v.Points),
		Values:  nonNilFloats(v.Values),
		Rolling: nonNilFloats(v.Rolling),
	}
}

func nonNilFloats(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}
