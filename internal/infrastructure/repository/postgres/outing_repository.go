package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	qb "github.com/riskibarqy/hitting-tracker/internal/platform/querybuilder"
	"github.com/riskibarqy/hitting-tracker/internal/platform/resilience"
)

const outingsTable = "outings"

var outingSelectColumns = []string{
	"id",
	"player_id",
	"type",
	"date",
	"opponent",
	"notes",
	"is_complete",
	"at_bats",
	"created_at",
	"updated_at",
}

type OutingRepository struct {
	exec executor
	now  func() time.Time
}

func NewOutingRepository(db *sqlx.DB, breaker *resilience.Breaker) *OutingRepository {
	return &OutingRepository{
		exec: executor{db: db, breaker: breaker},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *OutingRepository) List(ctx context.Context) ([]outing.Outing, error) {
	return r.selectOutings(ctx, "list outings", qb.Select(outingSelectColumns...).From(outingsTable).
		OrderBy("date", "created_at", "id"))
}

// ListByPlayer returns the player's outings in logged order.
func (r *OutingRepository) ListByPlayer(ctx context.Context, playerID string) ([]outing.Outing, error) {
	return r.selectOutings(ctx, "list outings by player", qb.Select(outingSelectColumns...).From(outingsTable).
		Where(qb.Eq("player_id", playerID)).
		OrderBy("created_at", "id"))
}

func (r *OutingRepository) selectOutings(ctx context.Context, op string, b *qb.SelectBuilder) ([]outing.Outing, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, errors.Wrapf(err, "build %s query", op)
	}

	var rows []outingTableModel
	if err := r.exec.run(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return r.exec.db.SelectContext(ctx, &rows, query, args...)
	}); err != nil {
		return nil, errors.Wrap(err, op)
	}

	out := make([]outing.Outing, 0, len(rows))
	for _, row := range rows {
		item, err := outingFromRow(row)
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *OutingRepository) GetByID(ctx context.Context, outingID string) (outing.Outing, bool, error) {
	query, args, err := qb.Select(outingSelectColumns...).From(outingsTable).
		Where(qb.Eq("id", outingID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return outing.Outing{}, false, errors.Wrap(err, "build get outing query")
	}

	var row outingTableModel
	found := false
	if err := r.exec.run(ctx, func(ctx context.Context) error {
		err := r.exec.db.GetContext(ctx, &row, query, args...)
		if isNotFound(err) {
			return nil
		}
		found = err == nil
		return err
	}); err != nil {
		return outing.Outing{}, false, errors.Wrapf(err, "get outing %s", outingID)
	}
	if !found {
		return outing.Outing{}, false, nil
	}

	item, err := outingFromRow(row)
	if err != nil {
		return outing.Outing{}, false, err
	}
	return item, true, nil
}

func (r *OutingRepository) Create(ctx context.Context, item outing.Outing) error {
	model, err := outingToInsert(item, r.now())
	if err != nil {
		return errors.Wrapf(err, "outing %s", item.ID)
	}
	query, args, err := qb.InsertModel(outingsTable, model)
	if err != nil {
		return errors.Wrap(err, "build insert outing query")
	}

	if err := r.exec.run(ctx, func(ctx context.Context) error {
		_, err := r.exec.db.ExecContext(ctx, query, args...)
		return err
	}); err != nil {
		return errors.Wrapf(err, "insert outing %s", item.ID)
	}
	return nil
}

func (r *OutingRepository) Update(ctx context.Context, item outing.Outing) error {
	atBats, err := encodeAtBats(item.AtBats)
	if err != nil {
		return errors.Wrapf(err, "outing %s", item.ID)
	}

	query, args, err := qb.Update(outingsTable).
		Set("type", string(item.Type)).
		Set("date", outing.DateOnly(item.Date)).
		Set("opponent", item.Opponent).
		Set("notes", item.Notes).
		Set("is_complete", item.IsComplete).
		SetExpr("at_bats", "?::jsonb", atBats).
		Set("updated_at", r.now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update outing query")
	}

	if err := r.exec.run(ctx, func(ctx context.Context) error {
		_, err := r.exec.db.ExecContext(ctx, query, args...)
		return err
	}); err != nil {
		return errors.Wrapf(err, "update outing %s", item.ID)
	}
	return nil
}

func (r *OutingRepository) Delete(ctx context.Context, outingID string) error {
	return r.delete(ctx, "delete outing "+outingID, qb.Eq("id", outingID))
}

func (r *OutingRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	return r.delete(ctx, "delete outings of player "+playerID, qb.Eq("player_id", playerID))
}

func (r *OutingRepository) delete(ctx context.Context, op string, cond qb.Condition) error {
	query, args, err := qb.DeleteFrom(outingsTable).Where(cond).ToSQL()
	if err != nil {
		return errors.Wrapf(err, "build %s query", op)
	}

	if err := r.exec.run(ctx, func(ctx context.Context) error {
		_, err := r.exec.db.ExecContext(ctx, query, args...)
		return err
	}); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}
