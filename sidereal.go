package sidereal

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrUnknownFaction = errors.New("sidereal: unknown faction")
	ErrUnknownEdition = errors.New("sidereal: unknown edition")
)

// FactionID identifies one of the playable factions in Sidereal Confluence.
type FactionID int

const (
	Kit FactionID = iota
	Caylion
	Kjas
	Faderan
	Imdril
	EniEt
	Unity
	Yengii
	Zeth

	// NumFactions is the number of playable factions.
	NumFactions = int(Zeth) + 1
)

// AllFactions returns every faction, in the order they're declared.
func AllFactions() []FactionID {
	out := make([]FactionID, NumFactions)
	for i := range out {
		out[i] = FactionID(i)
	}
	return out
}

// String returns the lower-case key for the faction, like "kit" or "eniet".
func (f FactionID) String() string {
	switch f {
	case Kit:
		return "kit"
	case Caylion:
		return "caylion"
	case Kjas:
		return "kjas"
	case Faderan:
		return "faderan"
	case Imdril:
		return "imdril"
	case EniEt:
		return "eniet"
	case Unity:
		return "unity"
	case Yengii:
		return "yengii"
	case Zeth:
		return "zeth"
	}
	return ""
}

func (f FactionID) valid() bool {
	return f >= 0 && int(f) < NumFactions
}

// ParseFactionID converts a key like "kit" or "Yengii" back into a FactionID.
func ParseFactionID(s string) (FactionID, error) {
	key := fold(s)
	for _, f := range AllFactions() {
		if f.String() == key {
			return f, nil
		}
	}
	return 0, ErrUnknownFaction
}

func (f FactionID) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, ErrUnknownFaction
	}
	return []byte(f.String()), nil
}

func (f *FactionID) UnmarshalText(b []byte) error {
	id, err := ParseFactionID(string(b))
	if err != nil {
		return err
	}
	*f = id
	return nil
}

// FactionType is the edition of the game a faction comes from.
type FactionType int

const (
	// Base is the original Sidereal Confluence release.
	Base FactionType = iota
	// Expansion is the Bifurcation version of the factions.
	Expansion
)

func (t FactionType) String() string {
	switch t {
	case Base:
		return "base"
	case Expansion:
		return "expansion"
	}
	return ""
}

// ParseFactionType converts "base" or "expansion" into a FactionType.
func ParseFactionType(s string) (FactionType, error) {
	switch fold(s) {
	case "base":
		return Base, nil
	case "expansion":
		return Expansion, nil
	}
	return 0, ErrUnknownEdition
}

func (t FactionType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, ErrUnknownEdition
	}
	return []byte(s), nil
}

func (t *FactionType) UnmarshalText(b []byte) error {
	ft, err := ParseFactionType(string(b))
	if err != nil {
		return err
	}
	*t = ft
	return nil
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// RoundID is one of the six rounds of a game.
type RoundID int

const (
	RoundOne RoundID = iota
	RoundTwo
	RoundThree
	RoundFour
	RoundFive
	RoundSix

	// NumRounds is the number of rounds in a game.
	NumRounds = int(RoundSix) + 1
)

// Number returns the 1-based number of the round, as printed on the board.
func (r RoundID) Number() int {
	return int(r) + 1
}
