package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	"github.com/riskibarqy/hitting-tracker/internal/platform/id"
)

type OutingService struct {
	playerRepo player.Repository
	outingRepo outing.Repository
	ids        id.Generator
}

func NewOutingService(playerRepo player.Repository, outingRepo outing.Repository, ids id.Generator) *OutingService {
	return &OutingService{
		playerRepo: playerRepo,
		outingRepo: outingRepo,
		ids:        ids,
	}
}

// OutingInput carries the editable fields of an outing. PlayerID is only
// read on create.
type OutingInput struct {
	PlayerID   string
	Type       outing.Type
	Date       time.Time
	Opponent   string
	AtBats     []outing.AtBat
	Notes      string
	IsComplete bool
}

// ListOutings returns the player's outings, newest first.
func (s *OutingService) ListOutings(ctx context.Context, playerID string) ([]outing.Outing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.ListOutings")
	defer span.End()

	playerID, err := s.requirePlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	items, err := s.outingRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, repoError("list outings by player", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (s *OutingService) GetOuting(ctx context.Context, outingID string) (outing.Outing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.GetOuting")
	defer span.End()

	outingID = strings.TrimSpace(outingID)
	if outingID == "" {
		return outing.Outing{}, fmt.Errorf("%w: outing id is required", ErrInvalidInput)
	}

	item, exists, err := s.outingRepo.GetByID(ctx, outingID)
	if err != nil {
		return outing.Outing{}, repoError("get outing", err)
	}
	if !exists {
		return outing.Outing{}, fmt.Errorf("%w: outing=%s", ErrNotFound, outingID)
	}

	return item, nil
}

func (s *OutingService) CreateOuting(ctx context.Context, in OutingInput) (outing.Outing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.CreateOuting")
	defer span.End()

	playerID, err := s.requirePlayer(ctx, in.PlayerID)
	if err != nil {
		return outing.Outing{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return outing.Outing{}, fmt.Errorf("generate outing id: %w", err)
	}

	item := outing.Outing{
		ID:         newID,
		PlayerID:   playerID,
		Type:       in.Type,
		Date:       outing.DateOnly(in.Date),
		Opponent:   strings.TrimSpace(in.Opponent),
		AtBats:     in.AtBats,
		Notes:      strings.TrimSpace(in.Notes),
		IsComplete: in.IsComplete,
	}
	if err := s.assignAtBatIDs(item.AtBats); err != nil {
		return outing.Outing{}, err
	}
	if err := item.Validate(); err != nil {
		return outing.Outing{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.outingRepo.Create(ctx, item); err != nil {
		return outing.Outing{}, repoError("create outing", err)
	}

	return item, nil
}

// UpdateOuting replaces the outing's contents. The owning player never changes.
func (s *OutingService) UpdateOuting(ctx context.Context, outingID string, in OutingInput) (outing.Outing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.UpdateOuting")
	defer span.End()

	current, err := s.GetOuting(ctx, outingID)
	if err != nil {
		return outing.Outing{}, err
	}

	current.Type = in.Type
	current.Date = outing.DateOnly(in.Date)
	current.Opponent = strings.TrimSpace(in.Opponent)
	current.AtBats = in.AtBats
	current.Notes = strings.TrimSpace(in.Notes)
	current.IsComplete = in.IsComplete
	if err := s.assignAtBatIDs(current.AtBats); err != nil {
		return outing.Outing{}, err
	}
	if err := current.Validate(); err != nil {
		return outing.Outing{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.outingRepo.Update(ctx, current); err != nil {
		return outing.Outing{}, repoError("update outing", err)
	}

	return current, nil
}

func (s *OutingService) DeleteOuting(ctx context.Context, outingID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.DeleteOuting")
	defer span.End()

	current, err := s.GetOuting(ctx, outingID)
	if err != nil {
		return err
	}

	if err := s.outingRepo.Delete(ctx, current.ID); err != nil {
		return repoError("delete outing", err)
	}
	return nil
}

// AddAtBat appends one at-bat to an outing that is still being tracked.
func (s *OutingService) AddAtBat(ctx context.Context, outingID string, ab outing.AtBat) (outing.Outing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.AddAtBat")
	defer span.End()

	current, err := s.GetOuting(ctx, outingID)
	if err != nil {
		return outing.Outing{}, err
	}
	if current.IsComplete {
		return outing.Outing{}, fmt.Errorf("%w: outing=%s: %w", ErrConflict, current.ID, outing.ErrOutingComplete)
	}

	batch := []outing.AtBat{ab}
	if err := s.assignAtBatIDs(batch); err != nil {
		return outing.Outing{}, err
	}
	if err := batch[0].Validate(); err != nil {
		return outing.Outing{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current.AtBats = append(current.AtBats, batch[0])
	if err := s.outingRepo.Update(ctx, current); err != nil {
		return outing.Outing{}, repoError("update outing", err)
	}

	return current, nil
}

// CompleteOuting marks an outing finished. Completing twice is a no-op.
func (s *OutingService) CompleteOuting(ctx context.Context, outingID string) (outing.Outing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OutingService.CompleteOuting")
	defer span.End()

	current, err := s.GetOuting(ctx, outingID)
	if err != nil {
		return outing.Outing{}, err
	}
	if current.IsComplete {
		return current, nil
	}

	current.IsComplete = true
	if err := s.outingRepo.Update(ctx, current); err != nil {
		return outing.Outing{}, repoError("update outing", err)
	}

	return current, nil
}

func (s *OutingService) requirePlayer(ctx context.Context, playerID string) (string, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return "", fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return "", repoError("get player", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return playerID, nil
}

// assignAtBatIDs fills empty ids on at-bats, pitches and spray points in place.
func (s *OutingService) assignAtBatIDs(atBats []outing.AtBat) error {
	var errs []error
	fill := func(target *string) {
		if strings.TrimSpace(*target) != "" {
			return
		}
		newID, err := s.ids.NewID()
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = newID
	}

	for i := range atBats {
		ab := &atBats[i]
		fill(&ab.ID)
		if ab.SprayPoint != nil {
			fill(&ab.SprayPoint.ID)
		}
		for j := range ab.Pitches {
			p := &ab.Pitches[j]
			fill(&p.ID)
			if p.SprayPoint != nil {
				fill(&p.SprayPoint.ID)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("generate at bat ids: %w", errors.Join(errs...))
	}
	return nil
}
