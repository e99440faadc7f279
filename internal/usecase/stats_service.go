package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/hitting-tracker/internal/domain/grading"
	"github.com/riskibarqy/hitting-tracker/internal/domain/metrics"
	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
)

const defaultStatsWorkers = 4

type StatsService struct {
	playerRepo player.Repository
	outingRepo outing.Repository
	workers    int
	logger     *logging.Logger
}

func NewStatsService(playerRepo player.Repository, outingRepo outing.Repository, workers int, logger *logging.Logger) *StatsService {
	if workers <= 0 {
		workers = defaultStatsWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsService{
		playerRepo: playerRepo,
		outingRepo: outingRepo,
		workers:    workers,
		logger:     logger,
	}
}

// StatsFilter narrows the outings a statistic is computed over. An empty
// Type means every outing type.
type StatsFilter struct {
	Type outing.Type
}

func (f StatsFilter) normalize() (StatsFilter, error) {
	f.Type = outing.Type(strings.ToLower(strings.TrimSpace(string(f.Type))))
	if f.Type == "" {
		return f, nil
	}
	if _, ok := outing.AllTypes[f.Type]; !ok {
		return f, fmt.Errorf("%w: invalid outing type: %s", ErrInvalidInput, f.Type)
	}
	return f, nil
}

func (f StatsFilter) apply(items []outing.Outing) []outing.Outing {
	if f.Type == "" {
		return items
	}
	out := make([]outing.Outing, 0, len(items))
	for _, item := range items {
		if item.Type == f.Type {
			out = append(out, item)
		}
	}
	return out
}

// PlayerStats is everything the player detail screen renders.
type PlayerStats struct {
	Player     player.Player
	Outings    []outing.Outing
	Summary    metrics.HittingSummary
	Discipline metrics.PlateDisciplineStats
	Quality    metrics.DisciplineQuality
	Trends     []metrics.OutingTrendPoint
	Zones      metrics.ZoneGrid
	Spray      metrics.SprayBreakdown
	ReportCard grading.ReportCard
}

// TrendSeries is one metric over a player's outings with its trailing average.
type TrendSeries struct {
	Metric  metrics.TrendMetric
	Window  int
	Points  []metrics.OutingTrendPoint
	Values  []float64
	Rolling []float64
}

// RosterReportCard is one row of the roster overview.
type RosterReportCard struct {
	Player     player.Player
	Outings    int
	AtBats     int
	ReportCard grading.ReportCard
}

func (s *StatsService) GetPlayerStats(ctx context.Context, playerID string, filter StatsFilter) (PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GetPlayerStats")
	defer span.End()

	filter, err := filter.normalize()
	if err != nil {
		return PlayerStats{}, err
	}

	item, outings, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return PlayerStats{}, err
	}
	outings = filter.apply(outings)

	flat := metrics.Flatten(outings)
	summary := metrics.SummaryFromFlattened(flat)
	discipline := metrics.DisciplineFromFlattened(flat)

	outings = slices.Clone(outings)
	sort.SliceStable(outings, func(i, j int) bool {
		return outings[i].Date.After(outings[j].Date)
	})

	return PlayerStats{
		Player:     item,
		Outings:    outings,
		Summary:    summary,
		Discipline: discipline,
		Quality:    metrics.RateDiscipline(discipline),
		Trends:     metrics.OutingTrends(outings),
		Zones:      metrics.ZoneHeatMap(flat.Pitches),
		Spray:      metrics.Spray(flat.BattedBalls),
		ReportCard: grading.CalcReportCard(grading.InputFromStats(summary, discipline)),
	}, nil
}

func (s *StatsService) GetReportCard(ctx context.Context, playerID string, filter StatsFilter) (grading.ReportCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GetReportCard")
	defer span.End()

	filter, err := filter.normalize()
	if err != nil {
		return grading.ReportCard{}, err
	}

	_, outings, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return grading.ReportCard{}, err
	}

	return reportCard(filter.apply(outings)), nil
}

// GetTrends returns metric over the player's outings in date order. A window
// below one uses metrics.DefaultRollingWindow.
func (s *StatsService) GetTrends(ctx context.Context, playerID string, filter StatsFilter, metric metrics.TrendMetric, window int) (TrendSeries, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GetTrends")
	defer span.End()

	filter, err := filter.normalize()
	if err != nil {
		return TrendSeries{}, err
	}
	metric = metrics.TrendMetric(strings.ToLower(strings.TrimSpace(string(metric))))
	if metric == "" {
		metric = metrics.TrendAvg
	}
	if _, ok := metrics.AllTrendMetrics[metric]; !ok {
		return TrendSeries{}, fmt.Errorf("%w: invalid trend metric: %s", ErrInvalidInput, metric)
	}
	if window < 1 {
		window = metrics.DefaultRollingWindow
	}

	_, outings, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return TrendSeries{}, err
	}

	points := metrics.FilterTrends(metrics.OutingTrends(outings), filter.Type)
	values := metrics.Series(points, metric)

	return TrendSeries{
		Metric:  metric,
		Window:  window,
		Points:  points,
		Values:  values,
		Rolling: metrics.RollingAverage(values, window),
	}, nil
}

// ListRosterReportCards grades every player, best overall score first.
func (s *StatsService) ListRosterReportCards(ctx context.Context) ([]RosterReportCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListRosterReportCards")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, repoError("list players", err)
	}
	if len(players) == 0 {
		return []RosterReportCard{}, nil
	}

	type result struct {
		row RosterReportCard
		err error
	}
	results := make(chan result, len(players))

	workers, err := ants.NewPool(min(s.workers, len(players)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	start := time.Now()
	var wg sync.WaitGroup
	var submitErr error
	for _, item := range players {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			outings, err := s.outingRepo.ListByPlayer(ctx, item.ID)
			if err != nil {
				results <- result{err: repoError("list outings by player "+item.ID, err)}
				return
			}
			card := reportCard(outings)
			results <- result{row: RosterReportCard{
				Player:     item,
				Outings:    len(outings),
				AtBats:     officialAtBats(outings),
				ReportCard: card,
			}}
		}); err != nil {
			wg.Done()
			submitErr = fmt.Errorf("submit task to worker pool: %w", err)
			break
		}
	}

	wg.Wait()
	close(results)
	if submitErr != nil {
		return nil, submitErr
	}

	rows := make([]RosterReportCard, 0, len(players))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		rows = append(rows, r.row)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ReportCard.Overall.Score != rows[j].ReportCard.Overall.Score {
			return rows[i].ReportCard.Overall.Score > rows[j].ReportCard.Overall.Score
		}
		return rows[i].Player.Name < rows[j].Player.Name
	})

	s.logger.DebugContext(ctx, "roster report cards computed",
		"players", len(rows),
		"workers", s.workers,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}

// loadPlayer fetches the player and their outings concurrently.
func (s *StatsService) loadPlayer(ctx context.Context, playerID string) (player.Player, []outing.Outing, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	var (
		item    player.Player
		exists  bool
		outings []outing.Outing
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		item, exists, err = s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return repoError("get player", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		outings, err = s.outingRepo.ListByPlayer(ctx, playerID)
		if err != nil {
			return repoError("list outings by player", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return player.Player{}, nil, err
	}
	if !exists {
		return player.Player{}, nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, outings, nil
}

func reportCard(outings []outing.Outing) grading.ReportCard {
	flat := metrics.Flatten(outings)
	return grading.CalcReportCard(grading.InputFromStats(
		metrics.SummaryFromFlattened(flat),
		metrics.DisciplineFromFlattened(flat),
	))
}

func officialAtBats(outings []outing.Outing) int {
	var n int
	for _, ab := range metrics.AtBats(outings) {
		if ab.Result.IsOfficialAtBat() {
			n++
		}
	}
	return n
}
