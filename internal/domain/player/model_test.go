package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerValidate(t *testing.T) {
	t.Parallel()

	valid := Player{ID: "p1", Name: "Casey Rivera", Number: "07", Bats: BatsSwitch}

	tests := []struct {
		name    string
		mutate  func(*Player)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Player) {}},
		{name: "missing id", mutate: func(p *Player) { p.ID = "" }, wantErr: true},
		{name: "missing name", mutate: func(p *Player) { p.Name = "" }, wantErr: true},
		{name: "unknown bats", mutate: func(p *Player) { p.Bats = "X" }, wantErr: true},
		{name: "number is free text", mutate: func(p *Player) { p.Number = "00A" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := valid
			tt.mutate(&item)
			err := item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBatsLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Left", BatsLeft.Label())
	assert.Equal(t, "Right", BatsRight.Label())
	assert.Equal(t, "Switch", BatsSwitch.Label())
}
