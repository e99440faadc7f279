package postgres

import (
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
)

type playerTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Number      string    `db:"number"`
	Position    string    `db:"position"`
	Bats        string    `db:"bats"`
	AvatarURL   string    `db:"avatar_url"`
	PlaylistURL string    `db:"playlist_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Number      string    `db:"number"`
	Position    string    `db:"position"`
	Bats        string    `db:"bats"`
	AvatarURL   string    `db:"avatar_url"`
	PlaylistURL string    `db:"playlist_url"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.ID,
		Name:        row.Name,
		Number:      row.Number,
		Position:    row.Position,
		Bats:        player.Bats(row.Bats),
		AvatarURL:   row.AvatarURL,
		PlaylistURL: row.PlaylistURL,
	}
}

func playerToInsert(item player.Player, now time.Time) playerInsertModel {
	return playerInsertModel{
		ID:          item.ID,
		Name:        item.Name,
		Number:      item.Number,
		Position:    item.Position,
		Bats:        string(item.Bats),
		AvatarURL:   item.AvatarURL,
		PlaylistURL: item.PlaylistURL,
		UpdatedAt:   now,
	}
}
