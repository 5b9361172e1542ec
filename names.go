package sidereal

import "fmt"

// FactionNames holds the various ways that a faction can be referred to.
type FactionNames struct {
	// Common is the name of the faction shared by the base game and the
	// expansion.
	Common string
	// Base is the full name of the base game version of the faction.
	Base string
	// Expansion is the full name of the Bifurcation version of the faction.
	Expansion string
	// Shorthand is the quick name used where space is tight, like table
	// headers.
	Shorthand string
}

// FullName returns the full name of the faction for the given edition.
func (n FactionNames) FullName(kind FactionType) string {
	if kind == Expansion {
		return n.Expansion
	}
	return n.Base
}

// Names returns the names for the given faction.
func Names(f FactionID) FactionNames {
	return allNames[f]
}

// entry is the terse form a faction's names are written in. base and
// expansion are suffixes appended to common unless marked as full names.
type entry struct {
	common    string
	base      string
	expansion string
	shorthand string

	fullBase      bool
	fullExpansion bool
}

// suffixes builds an entry where both full names are the common name
// followed by a suffix.
func suffixes(common, base, expansion string) entry {
	return entry{common: common, base: base, expansion: expansion}
}

// renamed builds an entry whose base name is a suffixed common name but whose
// expansion name is entirely different.
func renamed(common, baseSuffix, expansion string) entry {
	return entry{common: common, base: baseSuffix, expansion: expansion, fullExpansion: true}
}

// bare builds an entry whose base name is just the common name.
func bare(common, expansion string) entry {
	return entry{common: common, base: common, expansion: expansion, fullBase: true, fullExpansion: true}
}

func (e entry) aka(shorthand string) entry {
	e.shorthand = shorthand
	return e
}

func (e entry) names() FactionNames {
	n := FactionNames{
		Common:    e.common,
		Base:      e.base,
		Expansion: e.expansion,
		Shorthand: e.shorthand,
	}
	if !e.fullBase {
		n.Base = e.common + " " + e.base
	}
	if !e.fullExpansion {
		n.Expansion = e.common + " " + e.expansion
	}
	if n.Shorthand == "" {
		n.Shorthand = e.common
	}
	return n
}

var entries = [NumFactions]entry{
	Kit:     suffixes("Kt'zr'kt'rtl", "Adhocracy", "Technophiles").aka("Kit"),
	Caylion: suffixes("Caylion", "Plutocracy", "Collaborative"),
	Kjas:    suffixes("Kjasjavikalimm", "Directorate", "Independent Nations").aka("Kjas"),
	Faderan: renamed("Faderan", "Conclave", "Society of Falling Light"),
	Imdril:  renamed("Im'dril", "Nomads", "Grand Fleet"),
	EniEt:   suffixes("Eni Et", "Ascendancy", "Engineers"),
	Unity:   bare("Unity", "Deep Unity"),
	Yengii:  suffixes("Yengii", "Society", "Jii"),
	Zeth:    renamed("Zeth", "Anocracy", "Charity Syndicate"),
}

var allNames = buildNames(entries)

func buildNames(es [NumFactions]entry) [NumFactions]FactionNames {
	var out [NumFactions]FactionNames
	for i, e := range es {
		if e.common == "" {
			panic(fmt.Sprintf("sidereal: no names for faction %q", FactionID(i)))
		}
		out[i] = e.names()
	}
	return out
}
