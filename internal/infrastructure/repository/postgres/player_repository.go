package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	qb "github.com/riskibarqy/hitting-tracker/internal/platform/querybuilder"
	"github.com/riskibarqy/hitting-tracker/internal/platform/resilience"
)

const playersTable = "players"

var playerSelectColumns = []string{
	"id",
	"name",
	"number",
	"position",
	"bats",
	"avatar_url",
	"playlist_url",
	"created_at",
	"updated_at",
}

type PlayerRepository struct {
	exec executor
	now  func() time.Time
}

func NewPlayerRepository(db *sqlx.DB, breaker *resilience.Breaker) *PlayerRepository {
	return &PlayerRepository{
		exec: executor{db: db, breaker: breaker},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		OrderBy("LOWER(name)", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list players query")
	}

	var rows []playerTableModel
	if err := r.exec.run(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return r.exec.db.SelectContext(ctx, &rows, query, args...)
	}); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build get player query")
	}

	var row playerTableModel
	found := false
	if err := r.exec.run(ctx, func(ctx context.Context) error {
		err := r.exec.db.GetContext(ctx, &row, query, args...)
		if isNotFound(err) {
			return nil
		}
		found = err == nil
		return err
	}); err != nil {
		return player.Player{}, false, errors.Wrapf(err, "get player %s", playerID)
	}
	if !found {
		return player.Player{}, false, nil
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel(playersTable, playerToInsert(item, r.now()))
	if err != nil {
		return errors.Wrap(err, "build insert player query")
	}

	if err := r.exec.run(ctx, func(ctx context.Context) error {
		_, err := r.exec.db.ExecContext(ctx, query, args...)
		return err
	}); err != nil {
		return errors.Wrapf(err, "insert player %s", item.ID)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update(playersTable).
		Set("name", item.Name).
		Set("number", item.Number).
		Set("position", item.Position).
		Set("bats", string(item.Bats)).
		Set("avatar_url", item.AvatarURL).
		Set("playlist_url", item.PlaylistURL).
		Set("updated_at", r.now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update player query")
	}

	if err := r.exec.run(ctx, func(ctx context.Context) error {
		_, err := r.exec.db.ExecContext(ctx, query, args...)
		return err
	}); err != nil {
		return errors.Wrapf(err, "update player %s", item.ID)
	}
	return nil
}

// Delete removes the player. Outings go with it through ON DELETE CASCADE.
func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom(playersTable).
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete player query")
	}

	if err := r.exec.run(ctx, func(ctx context.Context) error {
		_, err := r.exec.db.ExecContext(ctx, query, args...)
		return err
	}); err != nil {
		return errors.Wrapf(err, "delete player %s", playerID)
	}
	return nil
}
