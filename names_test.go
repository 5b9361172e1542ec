package sidereal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	tests := []struct {
		id   FactionID
		want FactionNames
	}{
		{Kit, FactionNames{
			Common:    "Kt'zr'kt'rtl",
			Base:      "Kt'zr'kt'rtl Adhocracy",
			Expansion: "Kt'zr'kt'rtl Technophiles",
			Shorthand: "Kit",
		}},
		{Caylion, FactionNames{
			Common:    "Caylion",
			Base:      "Caylion Plutocracy",
			Expansion: "Caylion Collaborative",
			Shorthand: "Caylion",
		}},
		{Kjas, FactionNames{
			Common:    "Kjasjavikalimm",
			Base:      "Kjasjavikalimm Directorate",
			Expansion: "Kjasjavikalimm Independent Nations",
			Shorthand: "Kjas",
		}},
		{Faderan, FactionNames{
			Common:    "Faderan",
			Base:      "Faderan Conclave",
			Expansion: "Society of Falling Light",
			Shorthand: "Faderan",
		}},
		{Imdril, FactionNames{
			Common:    "Im'dril",
			Base:      "Im'dril Nomads",
			Expansion: "Grand Fleet",
			Shorthand: "Im'dril",
		}},
		{EniEt, FactionNames{
			Common:    "Eni Et",
			Base:      "Eni Et Ascendancy",
			Expansion: "Eni Et Engineers",
			Shorthand: "Eni Et",
		}},
		{Unity, FactionNames{
			Common:    "Unity",
			Base:      "Unity",
			Expansion: "Deep Unity",
			Shorthand: "Unity",
		}},
		{Yengii, FactionNames{
			Common:    "Yengii",
			Base:      "Yengii Society",
			Expansion: "Yengii Jii",
			Shorthand: "Yengii",
		}},
		{Zeth, FactionNames{
			Common:    "Zeth",
			Base:      "Zeth Anocracy",
			Expansion: "Charity Syndicate",
			Shorthand: "Zeth",
		}},
	}

	if len(tests) != NumFactions {
		t.Fatalf("test covers %d factions, want %d", len(tests), NumFactions)
	}

	for _, test := range tests {
		t.Run(test.id.String(), func(t *testing.T) {
			got := Names(test.id)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected names (-want +got)\n%s", diff)
			}
			// Lookups hand out copies, so asking again gives the same answer.
			if diff := cmp.Diff(got, Names(test.id)); diff != "" {
				t.Errorf("second lookup differs (-first +second)\n%s", diff)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	for _, f := range AllFactions() {
		n := Names(f)
		for _, s := range []string{n.Common, n.Base, n.Expansion, n.Shorthand} {
			if s == "" {
				t.Errorf("%s has an empty name: %+v", f, n)
			}
		}
		if got := n.FullName(Base); got != n.Base {
			t.Errorf("%s: FullName(Base) = %q, want %q", f, got, n.Base)
		}
		if got := n.FullName(Expansion); got != n.Expansion {
			t.Errorf("%s: FullName(Expansion) = %q, want %q", f, got, n.Expansion)
		}
	}
}

func TestAllFactions(t *testing.T) {
	got := AllFactions()
	want := []FactionID{Kit, Caylion, Kjas, Faderan, Imdril, EniEt, Unity, Yengii, Zeth}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected factions (-want +got)\n%s", diff)
	}

	seen := make(map[string]FactionID)
	for _, f := range got {
		if prev, ok := seen[f.String()]; ok {
			t.Errorf("%d and %d share key %q", prev, f, f.String())
		}
		seen[f.String()] = f
	}

	// Callers can't mess with each other's slices.
	got[0] = Zeth
	if AllFactions()[0] != Kit {
		t.Error("AllFactions returned a shared slice")
	}
}

func TestBuildNamesPanicsOnMissingFaction(t *testing.T) {
	es := entries
	es[Unity] = entry{}

	defer func() {
		if recover() == nil {
			t.Error("buildNames didn't panic on a missing faction")
		}
	}()
	buildNames(es)
}

func TestParseFactionID(t *testing.T) {
	for _, f := range AllFactions() {
		got, err := ParseFactionID(f.String())
		if err != nil {
			t.Fatalf("ParseFactionID(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFactionID(%q) = %d, want %d", f, got, f)
		}
	}

	tests := []struct {
		in   string
		want FactionID
	}{
		{"Kit", Kit},
		{"  YENGII ", Yengii},
		{"EniEt", EniEt},
	}
	for _, test := range tests {
		got, err := ParseFactionID(test.in)
		if err != nil {
			t.Errorf("ParseFactionID(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseFactionID(%q) = %s, want %s", test.in, got, test.want)
		}
	}

	for _, in := range []string{"", "klingon", "eni et"} {
		if _, err := ParseFactionID(in); !errors.Is(err, ErrUnknownFaction) {
			t.Errorf("ParseFactionID(%q) = %v, want ErrUnknownFaction", in, err)
		}
	}
}

func TestParseFactionType(t *testing.T) {
	tests := []struct {
		in   string
		want FactionType
	}{
		{"base", Base},
		{"Expansion", Expansion},
		{" EXPANSION", Expansion},
	}
	for _, test := range tests {
		got, err := ParseFactionType(test.in)
		if err != nil {
			t.Errorf("ParseFactionType(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseFactionType(%q) = %s, want %s", test.in, got, test.want)
		}
	}

	if _, err := ParseFactionType("bifurcation"); !errors.Is(err, ErrUnknownEdition) {
		t.Errorf("ParseFactionType(%q) = %v, want ErrUnknownEdition", "bifurcation", err)
	}
}

func TestJSONKeys(t *testing.T) {
	in := map[FactionID]FactionType{
		Kit:   Expansion,
		Unity: Base,
	}

	dat, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if got, want := string(dat), `{"kit":"expansion","unity":"base"}`; got != want {
		t.Errorf("json.Marshal = %s, want %s", got, want)
	}

	var out map[FactionID]FactionType
	if err := json.Unmarshal(dat, &out); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("unexpected map (-want +got)\n%s", diff)
	}

	if _, err := json.Marshal(FactionID(NumFactions)); err == nil {
		t.Error("marshalling an out of range faction succeeded")
	}
}

func TestRoundNumber(t *testing.T) {
	if got := RoundOne.Number(); got != 1 {
		t.Errorf("RoundOne.Number() = %d, want 1", got)
	}
	if got := RoundSix.Number(); got != NumRounds {
		t.Errorf("RoundSix.Number() = %d, want %d", got, NumRounds)
	}
}
