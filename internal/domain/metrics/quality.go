package metrics

// Quality is the coarse rating shown next to a discipline rate.
type Quality string

const (
	QualityGood      Quality = "good"
	QualityOK        Quality = "ok"
	QualityNeedsWork Quality = "needs_work"
)

// okMargin is how far past the target a rate may fall and still rate ok.
const okMargin = 10.0

// Benchmark is a target rate and whether exceeding it is desirable.
type Benchmark struct {
	Good           float64
	HigherIsBetter bool
}

var (
	ChaseBenchmark        = Benchmark{Good: 25}
	CalledStrikeBenchmark = Benchmark{Good: 15}
	ContactBenchmark      = Benchmark{Good: 75, HigherIsBetter: true}
	WhiffBenchmark        = Benchmark{Good: 25}
)

func RateQuality(value float64, b Benchmark) Quality {
	diff := b.Good - value
	if b.HigherIsBetter {
		diff = value - b.Good
	}

	switch {
	case diff >= 0:
		return QualityGood
	case diff >= -okMargin:
		return QualityOK
	default:
		return QualityNeedsWork
	}
}

// DisciplineQuality rates each benchmarked rate of s.
type DisciplineQuality struct {
	Chase        Quality
	CalledStrike Quality
	Contact      Quality
	Whiff        Quality
}

func RateDiscipline(s PlateDisciplineStats) DisciplineQuality {
	return DisciplineQuality{
		Chase:        RateQuality(s.ChasePct, ChaseBenchmark),
		CalledStrike: RateQuality(s.CalledStrikePct, CalledStrikeBenchmark),
		Contact:      RateQuality(s.ContactPct, ContactBenchmark),
		Whiff:        RateQuality(s.WhiffRate, WhiffBenchmark),
	}
}
