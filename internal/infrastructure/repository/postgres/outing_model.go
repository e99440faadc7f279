package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
)

type outingTableModel struct {
	ID         string    `db:"id"`
	PlayerID   string    `db:"player_id"`
	Type       string    `db:"type"`
	Date       time.Time `db:"date"`
	Opponent   string    `db:"opponent"`
	Notes      string    `db:"notes"`
	IsComplete bool      `db:"is_complete"`
	AtBats     []byte    `db:"at_bats"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type outingInsertModel struct {
	ID         string    `db:"id"`
	PlayerID   string    `db:"player_id"`
	Type       string    `db:"type"`
	Date       time.Time `db:"date"`
	Opponent   string    `db:"opponent"`
	Notes      string    `db:"notes"`
	IsComplete bool      `db:"is_complete"`
	AtBats     string    `db:"at_bats"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// atBatDocument is the JSONB shape of one entry in outings.at_bats.
type atBatDocument struct {
	ID           string          `json:"id"`
	Result       string          `json:"result"`
	Pitches      []pitchDocument `json:"pitches"`
	SprayPoint   *sprayDocument  `json:"spray_point,omitempty"`
	ExitVelocity *float64        `json:"exit_velocity,omitempty"`
	IsBarrel     *bool           `json:"is_barrel,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

type pitchDocument struct {
	ID         string         `json:"id"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	PitchType  string         `json:"pitch_type,omitempty"`
	Outcome    string         `json:"outcome"`
	SprayPoint *sprayDocument `json:"spray_point,omitempty"`
}

type sprayDocument struct {
	ID           string   `json:"id"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Result       string   `json:"result"`
	HitType      string   `json:"hit_type"`
	ExitVelocity *float64 `json:"exit_velocity,omitempty"`
	IsBarrel     bool     `json:"is_barrel"`
}

func encodeAtBats(atBats []outing.AtBat) (string, error) {
	docs := make([]atBatDocument, 0, len(atBats))
	for _, ab := range atBats {
		doc := atBatDocument{
			ID:           ab.ID,
			Result:       string(ab.Result),
			Pitches:      make([]pitchDocument, 0, len(ab.Pitches)),
			SprayPoint:   sprayToDocument(ab.SprayPoint),
			ExitVelocity: ab.ExitVelocity,
			IsBarrel:     ab.IsBarrel,
			Notes:        ab.Notes,
		}
		for _, p := range ab.Pitches {
			doc.Pitches = append(doc.Pitches, pitchDocument{
				ID:         p.ID,
				X:          p.Location.X,
				Y:          p.Location.Y,
				PitchType:  string(p.PitchType),
				Outcome:    string(p.Outcome),
				SprayPoint: sprayToDocument(p.SprayPoint),
			})
		}
		docs = append(docs, doc)
	}

	raw, err := sonic.MarshalString(docs)
	if err != nil {
		return "", errors.Wrap(err, "encode at bats")
	}
	return raw, nil
}

func decodeAtBats(raw []byte) ([]outing.AtBat, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var docs []atBatDocument
	if err := sonic.Unmarshal(raw, &docs); err != nil {
		return nil, errors.Wrap(err, "decode at bats")
	}

	out := make([]outing.AtBat, 0, len(docs))
	for _, doc := range docs {
		ab := outing.AtBat{
			ID:           doc.ID,
			Result:       outing.AtBatResult(doc.Result),
			SprayPoint:   sprayFromDocument(doc.SprayPoint),
			ExitVelocity: doc.ExitVelocity,
			IsBarrel:     doc.IsBarrel,
			Notes:        doc.Notes,
		}
		for _, p := range doc.Pitches {
			ab.Pitches = append(ab.Pitches, outing.Pitch{
				ID:         p.ID,
				Location:   outing.Location{X: p.X, Y: p.Y},
				PitchType:  outing.PitchType(p.PitchType),
				Outcome:    outing.PitchOutcome(p.Outcome),
				SprayPoint: sprayFromDocument(p.SprayPoint),
			})
		}
		out = append(out, ab)
	}
	return out, nil
}

func sprayToDocument(p *outing.SprayChartPoint) *sprayDocument {
	if p == nil {
		return nil
	}
	return &sprayDocument{
		ID:           p.ID,
		X:            p.X,
		Y:            p.Y,
		Result:       string(p.Result),
		HitType:      string(p.HitType),
		ExitVelocity: p.ExitVelocity,
		IsBarrel:     p.IsBarrel,
	}
}

func sprayFromDocument(d *sprayDocument) *outing.SprayChartPoint {
	if d == nil {
		return nil
	}
	return &outing.SprayChartPoint{
		ID:           d.ID,
		X:            d.X,
		Y:            d.Y,
		Result:       outing.SprayResult(d.Result),
		HitType:      outing.HitType(d.HitType),
		ExitVelocity: d.ExitVelocity,
		IsBarrel:     d.IsBarrel,
	}
}

func outingFromRow(row outingTableModel) (outing.Outing, error) {
	atBats, err := decodeAtBats(row.AtBats)
	if err != nil {
		return outing.Outing{}, errors.Wrapf(err, "outing %s", row.ID)
	}
	return outing.Outing{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		Type:       outing.Type(row.Type),
		Date:       outing.DateOnly(row.Date),
		Opponent:   row.Opponent,
		AtBats:     atBats,
		Notes:      row.Notes,
		IsComplete: row.IsComplete,
	}, nil
}

func outingToInsert(item outing.Outing, now time.Time) (outingInsertModel, error) {
	atBats, err := encodeAtBats(item.AtBats)
	if err != nil {
		return outingInsertModel{}, err
	}
	return outingInsertModel{
		ID:         item.ID,
		PlayerID:   item.PlayerID,
		Type:       string(item.Type),
		Date:       outing.DateOnly(item.Date),
		Opponent:   item.Opponent,
		Notes:      item.Notes,
		IsComplete: item.IsComplete,
		AtBats:     atBats,
		UpdatedAt:  now,
	}, nil
}
