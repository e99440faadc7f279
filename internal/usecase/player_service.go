package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	"github.com/riskibarqy/hitting-tracker/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	outingRepo outing.Repository
	ids        id.Generator
}

func NewPlayerService(playerRepo player.Repository, outingRepo outing.Repository, ids id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		outingRepo: outingRepo,
		ids:        ids,
	}
}

// PlayerInput carries the editable fields of a player.
type PlayerInput struct {
	Name        string
	Number      string
	Position    string
	Bats        player.Bats
	AvatarURL   string
	PlaylistURL string
}

func (in PlayerInput) apply(p player.Player) player.Player {
	p.Name = strings.TrimSpace(in.Name)
	p.Number = strings.TrimSpace(in.Number)
	p.Position = strings.TrimSpace(in.Position)
	p.Bats = player.Bats(strings.ToUpper(strings.TrimSpace(string(in.Bats))))
	p.AvatarURL = strings.TrimSpace(in.AvatarURL)
	p.PlaylistURL = strings.TrimSpace(in.PlaylistURL)
	return p
}

// ListPlayers returns the roster ordered by name.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, repoError("list players", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, repoError("get player", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := in.apply(player.Player{ID: newID})
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, repoError("create player", err)
	}

	return item, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	current, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	item := in.apply(current)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, repoError("update player", err)
	}

	return item, nil
}

// DeletePlayer removes the player's outings before the player itself.
func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	current, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := s.outingRepo.DeleteByPlayer(ctx, current.ID); err != nil {
		return repoError("delete player outings", err)
	}
	if err := s.playerRepo.Delete(ctx, current.ID); err != nil {
		return repoError("delete player", err)
	}

	return nil
}
