package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	outingmock "github.com/riskibarqy/hitting-tracker/internal/mocks/domain/outing"
	playermock "github.com/riskibarqy/hitting-tracker/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func newOutingServiceWithMocks(t *testing.T) (*OutingService, *playermock.Repository, *outingmock.Repository) {
	t.Helper()
	playerRepo := playermock.NewRepository(t)
	outingRepo := outingmock.NewRepository(t)
	return NewOutingService(playerRepo, outingRepo, &sequenceIDs{prefix: "id"}), playerRepo, outingRepo
}

func TestOutingService_ListOutings_NewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, playerRepo, outingRepo := newOutingServiceWithMocks(t)

	playerRepo.
		On("GetByID", sameCtx(ctx), "p1").
		Return(player.Player{ID: "p1"}, true, nil).
		Once()
	outingRepo.
		On("ListByPlayer", sameCtx(ctx), "p1").
		Return([]outing.Outing{
			{ID: "o1", Date: day(time.February, 20)},
			{ID: "o2", Date: day(time.March, 5)},
			{ID: "o3", Date: day(time.March, 1)},
		}, nil).
		Once()

	got, err := service.ListOutings(ctx, "p1")
	if err != nil {
		t.Fatalf("list outings: %v", err)
	}
	want := []string{"o2", "o3", "o1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("unexpected order at %d: got=%s want=%s", i, got[i].ID, id)
		}
	}
}

func TestOutingService_ListOutings_PlayerNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, playerRepo, _ := newOutingServiceWithMocks(t)

	playerRepo.
		On("GetByID", sameCtx(ctx), "ghost").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.ListOutings(ctx, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOutingService_CreateOuting_AssignsNestedIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, playerRepo, outingRepo := newOutingServiceWithMocks(t)

	playerRepo.
		On("GetByID", sameCtx(ctx), "p1").
		Return(player.Player{ID: "p1"}, true, nil).
		Once()
	outingRepo.
		On("Create", sameCtx(ctx), mock.AnythingOfType("outing.Outing")).
		Return(nil).
		Once()

	hit := atBat(outing.ResultSingle, outing.OutcomeBall, outing.OutcomeInPlayHit)
	hit.SprayPoint = &outing.SprayChartPoint{Result: outing.SpraySingle, HitType: outing.HitLineDrive, ExitVelocity: floatPtr(88)}
	kept := atBat(outing.ResultOut, outing.OutcomeInPlayOut)
	kept.ID = "ab-existing"

	got, err := service.CreateOuting(ctx, OutingInput{
		PlayerID: "p1",
		Type:     outing.TypeBattingPractice,
		Date:     time.Date(2025, time.March, 5, 17, 30, 0, 0, time.UTC),
		AtBats:   []outing.AtBat{hit, kept},
	})
	if err != nil {
		t.Fatalf("create outing: %v", err)
	}

	if got.ID != "id-1" {
		t.Fatalf("unexpected outing id: %s", got.ID)
	}
	if !got.Date.Equal(day(time.March, 5)) {
		t.Fatalf("date should be truncated to midnight, got %s", got.Date)
	}
	first := got.AtBats[0]
	if first.ID == "" || first.SprayPoint.ID == "" || first.Pitches[0].ID == "" || first.Pitches[1].ID == "" {
		t.Fatalf("expected nested ids to be assigned: %+v", first)
	}
	if got.AtBats[1].ID != "ab-existing" {
		t.Fatalf("existing at bat id overwritten: %s", got.AtBats[1].ID)
	}
}

func TestOutingService_CreateOuting_InvalidType(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, playerRepo, _ := newOutingServiceWithMocks(t)

	playerRepo.
		On("GetByID", sameCtx(ctx), "p1").
		Return(player.Player{ID: "p1"}, true, nil).
		Once()

	_, err := service.CreateOuting(ctx, OutingInput{PlayerID: "p1", Type: "scrimmage", Date: day(time.March, 5)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOutingService_AddAtBat_AppendsInOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, outingRepo := newOutingServiceWithMocks(t)

	current := outing.Outing{
		ID:       "o1",
		PlayerID: "p1",
		Type:     outing.TypeLiveABs,
		Date:     day(time.March, 5),
		AtBats:   []outing.AtBat{{ID: "ab-1", Result: outing.ResultWalk}},
	}
	outingRepo.
		On("GetByID", sameCtx(ctx), "o1").
		Return(current, true, nil).
		Once()
	outingRepo.
		On("Update", sameCtx(ctx), mock.MatchedBy(func(o outing.Outing) bool {
			return len(o.AtBats) == 2 && o.AtBats[0].ID == "ab-1" && o.AtBats[1].Result == outing.ResultDouble
		})).
		Return(nil).
		Once()

	got, err := service.AddAtBat(ctx, "o1", atBat(outing.ResultDouble, outing.OutcomeInPlayHit))
	if err != nil {
		t.Fatalf("add at bat: %v", err)
	}
	if got.AtBats[1].ID == "" {
		t.Fatalf("expected new at bat id")
	}
}

func TestOutingService_AddAtBat_CompleteOutingRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, outingRepo := newOutingServiceWithMocks(t)

	outingRepo.
		On("GetByID", sameCtx(ctx), "o1").
		Return(outing.Outing{ID: "o1", IsComplete: true}, true, nil).
		Once()

	_, err := service.AddAtBat(ctx, "o1", atBat(outing.ResultOut))
	if !errors.Is(err, ErrConflict) || !errors.Is(err, outing.ErrOutingComplete) {
		t.Fatalf("expected ErrConflict wrapping ErrOutingComplete, got %v", err)
	}
}

func TestOutingService_AddAtBat_InvalidResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, outingRepo := newOutingServiceWithMocks(t)

	outingRepo.
		On("GetByID", sameCtx(ctx), "o1").
		Return(outing.Outing{ID: "o1"}, true, nil).
		Once()

	_, err := service.AddAtBat(ctx, "o1", outing.AtBat{Result: "balk"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOutingService_CompleteOuting_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, outingRepo := newOutingServiceWithMocks(t)

	outingRepo.
		On("GetByID", sameCtx(ctx), "o1").
		Return(outing.Outing{ID: "o1", IsComplete: true}, true, nil).
		Once()

	got, err := service.CompleteOuting(ctx, "o1")
	if err != nil {
		t.Fatalf("complete outing: %v", err)
	}
	if !got.IsComplete {
		t.Fatalf("expected outing to stay complete")
	}
	outingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOutingService_UpdateOuting_KeepsOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, outingRepo := newOutingServiceWithMocks(t)

	outingRepo.
		On("GetByID", sameCtx(ctx), "o1").
		Return(outing.Outing{ID: "o1", PlayerID: "p1", Type: outing.TypeGame, Date: day(time.March, 1)}, true, nil).
		Once()
	outingRepo.
		On("Update", sameCtx(ctx), mock.MatchedBy(func(o outing.Outing) bool {
			return o.PlayerID == "p1" && o.Type == outing.TypeCageSession && o.Opponent == "Eagles"
		})).
		Return(nil).
		Once()

	_, err := service.UpdateOuting(ctx, "o1", OutingInput{
		PlayerID: "someone-else",
		Type:     outing.TypeCageSession,
		Date:     day(time.March, 2),
		Opponent: " Eagles ",
	})
	if err != nil {
		t.Fatalf("update outing: %v", err)
	}
}

func TestOutingService_DeleteOuting_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, outingRepo := newOutingServiceWithMocks(t)

	outingRepo.
		On("GetByID", sameCtx(ctx), "o9").
		Return(outing.Outing{}, false, nil).
		Once()

	if err := service.DeleteOuting(ctx, "o9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
