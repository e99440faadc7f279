package player

import "fmt"

// Bats is the batting side of a hitter.
type Bats string

const (
	BatsLeft   Bats = "L"
	BatsRight  Bats = "R"
	BatsSwitch Bats = "S"
)

var AllBats = map[Bats]struct{}{
	BatsLeft:   {},
	BatsRight:  {},
	BatsSwitch: {},
}

// Label returns the human form used on player cards.
func (b Bats) Label() string {
	switch b {
	case BatsLeft:
		return "Left"
	case BatsRight:
		return "Right"
	case BatsSwitch:
		return "Switch"
	default:
		return string(b)
	}
}

// Player is a hitter on a coach's roster.
type Player struct {
	ID          string
	Name        string
	Number      string
	Position    string
	Bats        Bats
	AvatarURL   string
	PlaylistURL string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllBats[p.Bats]; !ok {
		return fmt.Errorf("invalid player bats: %s", p.Bats)
	}

	return nil
}
