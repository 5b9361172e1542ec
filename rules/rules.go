// Package rules holds the numbers from the Sidereal Confluence rulebook that
// depend on how many people are playing.
package rules

import (
	"errors"
	"fmt"

	"github.com/bcspragu/sidereal"
)

var ErrInvalidPlayerCount = errors.New("rules: invalid player count")

const (
	// MinPlayers is the smallest supported game.
	MinPlayers = 4
	// MaxPlayers is the largest supported game.
	MaxPlayers = 9
)

// PlayerCount is the number of players in a game.
type PlayerCount int

// Valid reports whether a game can be played with this many players.
func (p PlayerCount) Valid() bool {
	return p >= MinPlayers && p <= MaxPlayers
}

// PlayerCounts returns every supported player count, smallest first.
func PlayerCounts() []PlayerCount {
	var out []PlayerCount
	for p := PlayerCount(MinPlayers); p <= MaxPlayers; p++ {
		out = append(out, p)
	}
	return out
}

// SharingBonus is what a player earns for sharing a technology. The Yengii
// earn a different amount than everyone else.
type SharingBonus struct {
	Normal int `json:"normal"`
	Yengii int `json:"yengii"`
}

// For returns the bonus the given faction earns.
func (s SharingBonus) For(f sidereal.FactionID) int {
	if f == sidereal.Yengii {
		return s.Yengii
	}
	return s.Normal
}

// sharingTable is indexed by player count, then by round.
var sharingTable = map[PlayerCount][sidereal.NumRounds]SharingBonus{
	4: {{6, 3}, {5, 2}, {4, 2}, {4, 1}, {3, 1}, {2, 0}},
	5: {{6, 3}, {6, 2}, {5, 1}, {4, 1}, {3, 1}, {1, 0}},
	6: {{6, 3}, {6, 2}, {5, 1}, {4, 1}, {2, 0}, {1, 0}},
	7: {{7, 2}, {6, 2}, {5, 1}, {4, 1}, {2, 0}, {0, 0}},
	8: {{7, 2}, {6, 2}, {5, 1}, {4, 1}, {2, 0}, {0, 0}},
	9: {{7, 2}, {6, 2}, {5, 1}, {4, 1}, {2, 0}, {0, 0}},
}

// SharingBonuses returns the sharing bonus for each round of a game with the
// given number of players.
func SharingBonuses(p PlayerCount) ([]SharingBonus, error) {
	bonuses, ok := sharingTable[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, p)
	}
	out := make([]SharingBonus, len(bonuses))
	copy(out, bonuses[:])
	return out, nil
}

// Bonus returns the sharing bonus a faction earns in a specific round.
func Bonus(p PlayerCount, r sidereal.RoundID, f sidereal.FactionID) (int, error) {
	bonuses, err := SharingBonuses(p)
	if err != nil {
		return 0, err
	}
	if r < 0 || int(r) >= len(bonuses) {
		return 0, fmt.Errorf("rules: invalid round %d", r)
	}
	return bonuses[r].For(f), nil
}
