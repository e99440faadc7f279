package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/stretchr/testify/mock"
)

type sequenceIDs struct {
	mu     sync.Mutex
	prefix string
	next   int
	err    error
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

func sameCtx(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func atBat(result outing.AtBatResult, outcomes ...outing.PitchOutcome) outing.AtBat {
	ab := outing.AtBat{Result: result}
	for _, o := range outcomes {
		ab.Pitches = append(ab.Pitches, outing.Pitch{Outcome: o, PitchType: outing.PitchFastball})
	}
	return ab
}
