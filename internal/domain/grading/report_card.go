package grading

import "github.com/riskibarqy/hitting-tracker/internal/domain/metrics"

// MinAtBats is the sample size below which a report card should be shown as
// insufficient data.
const MinAtBats = 5

const (
	powerWeight      = 0.30
	contactWeight    = 0.35
	disciplineWeight = 0.35
)

// Input is the set of scalar statistics a report card is graded from.
// Percentages are on a 0-100 scale; BattingAvg is a fraction.
type Input struct {
	BarrelPct       float64
	AvgExitVelo     float64
	ContactPct      float64
	WhiffRate       float64
	BattingAvg      float64
	ChasePct        float64
	CalledStrikePct float64
	AvgPitchesPerAB float64
	TotalAtBats     int
	TotalPitches    int
}

// InputFromStats assembles an Input from aggregated statistics.
func InputFromStats(s metrics.HittingSummary, d metrics.PlateDisciplineStats) Input {
	return Input{
		BarrelPct:       s.BarrelPct,
		AvgExitVelo:     s.AvgExitVelo,
		ContactPct:      d.ContactPct,
		WhiffRate:       d.WhiffRate,
		BattingAvg:      s.Avg,
		ChasePct:        d.ChasePct,
		CalledStrikePct: d.CalledStrikePct,
		AvgPitchesPerAB: d.AvgPitchesPerAB,
		TotalAtBats:     s.AtBats,
		TotalPitches:    d.TotalPitches,
	}
}

type MetricGrade struct {
	Metric       Metric
	Label        string
	Value        float64
	DisplayValue string
	Score        float64
	Grade        LetterGrade
}

type CategoryGrade struct {
	Label   string
	Score   float64
	Grade   LetterGrade
	Metrics []MetricGrade
}

type OverallGrade struct {
	Score float64
	Grade LetterGrade
}

// ReportCard is always fully populated. HasEnoughData only tells the caller
// whether the sample is large enough to show the grades.
type ReportCard struct {
	Overall       OverallGrade
	Power         CategoryGrade
	Contact       CategoryGrade
	Discipline    CategoryGrade
	HasEnoughData bool
}

func gradeMetric(m Metric, label string, value float64, display string) MetricGrade {
	score := Score(m, value)
	return MetricGrade{
		Metric:       m,
		Label:        label,
		Value:        value,
		DisplayValue: display,
		Score:        score,
		Grade:        ScoreToGrade(score),
	}
}

func category(label string, metricGrades []MetricGrade) CategoryGrade {
	if metricGrades == nil {
		metricGrades = []MetricGrade{}
	}
	scores := make([]float64, len(metricGrades))
	for i, m := range metricGrades {
		scores[i] = m.Score
	}
	score := mean(scores)
	return CategoryGrade{
		Label:   label,
		Score:   score,
		Grade:   ScoreToGrade(score),
		Metrics: metricGrades,
	}
}

// CalcReportCard grades in. Pitch-derived metrics are only graded when
// pitches were tracked, and exit velocity only when one was recorded.
func CalcReportCard(in Input) ReportCard {
	tracked := in.TotalPitches > 0

	power := []MetricGrade{
		gradeMetric(MetricBarrelPct, "Barrel %", in.BarrelPct, formatPercent(in.BarrelPct)),
	}
	if in.AvgExitVelo > 0 {
		power = append(power, gradeMetric(MetricExitVelo, "Exit Velo", in.AvgExitVelo, formatMPH(in.AvgExitVelo)))
	}

	contact := []MetricGrade{
		gradeMetric(MetricBattingAvg, "Batting Avg", in.BattingAvg, formatAverage(in.BattingAvg)),
	}
	var discipline []MetricGrade
	if tracked {
		contact = append(contact,
			gradeMetric(MetricContactPct, "Contact %", in.ContactPct, formatPercent(in.ContactPct)),
			gradeMetric(MetricWhiffRate, "Whiff Rate", in.WhiffRate, formatPercent(in.WhiffRate)),
		)
		discipline = append(discipline,
			gradeMetric(MetricChaseRate, "Chase Rate", in.ChasePct, formatPercent(in.ChasePct)),
			gradeMetric(MetricCalledStrikePct, "Called Strike %", in.CalledStrikePct, formatPercent(in.CalledStrikePct)),
			gradeMetric(MetricPitchesPerAB, "Pitches / AB", in.AvgPitchesPerAB, toFixed(in.AvgPitchesPerAB, 1)),
		)
	}

	card := ReportCard{
		Power:         category("Power", power),
		Contact:       category("Contact", contact),
		Discipline:    category("Discipline", discipline),
		HasEnoughData: in.TotalAtBats >= MinAtBats,
	}

	overall := weightedMean([]weighted{
		{card.Power.Score, powerWeight},
		{card.Contact.Score, contactWeight},
		{card.Discipline.Score, disciplineWeight},
	})
	card.Overall = OverallGrade{Score: overall, Grade: ScoreToGrade(overall)}

	return card
}

// mean is neutralScore for an empty category.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return neutralScore
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

type weighted struct {
	value  float64
	weight float64
}

func weightedMean(pairs []weighted) float64 {
	var total, sum float64
	for _, p := range pairs {
		total += p.weight
	}
	for _, p := range pairs {
		sum += p.value * p.weight
	}
	return sum / total
}
