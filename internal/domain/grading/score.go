package grading

import "strings"

// neutralScore is returned when a curve cannot place a value.
const neutralScore = 50.0

// InterpolateScore maps value onto a checkpoint curve sorted by Value. Values
// at or beyond either end take that end's score exactly.
func InterpolateScore(value float64, checkpoints []Checkpoint) float64 {
	if len(checkpoints) == 0 {
		return neutralScore
	}
	first, last := checkpoints[0], checkpoints[len(checkpoints)-1]
	if value <= first.Value {
		return first.Score
	}
	if value >= last.Value {
		return last.Score
	}

	for i := 0; i < len(checkpoints)-1; i++ {
		lo, hi := checkpoints[i], checkpoints[i+1]
		if value >= lo.Value && value <= hi.Value {
			t := (value - lo.Value) / (hi.Value - lo.Value)
			return lo.Score + t*(hi.Score-lo.Score)
		}
	}
	return neutralScore
}

type LetterGrade string

const (
	GradeAPlus  LetterGrade = "A+"
	GradeA      LetterGrade = "A"
	GradeAMinus LetterGrade = "A-"
	GradeBPlus  LetterGrade = "B+"
	GradeB      LetterGrade = "B"
	GradeBMinus LetterGrade = "B-"
	GradeCPlus  LetterGrade = "C+"
	GradeC      LetterGrade = "C"
	GradeCMinus LetterGrade = "C-"
	GradeD      LetterGrade = "D"
	GradeF      LetterGrade = "F"
)

var gradeLadder = []struct {
	min   float64
	grade LetterGrade
}{
	{97, GradeAPlus},
	{93, GradeA},
	{90, GradeAMinus},
	{87, GradeBPlus},
	{83, GradeB},
	{80, GradeBMinus},
	{77, GradeCPlus},
	{73, GradeC},
	{70, GradeCMinus},
	{60, GradeD},
}

func ScoreToGrade(score float64) LetterGrade {
	for _, step := range gradeLadder {
		if score >= step.min {
			return step.grade
		}
	}
	return GradeF
}

// Family drops the +/- modifier, e.g. "B" for B+.
func (g LetterGrade) Family() string {
	return strings.TrimRight(string(g), "+-")
}
