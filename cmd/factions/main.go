// Command factions prints the names of every Sidereal Confluence faction.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bcspragu/sidereal"
	"github.com/namsral/flag"
)

func main() {
	var (
		edition   = flag.String("edition", "", "Only print full names for this edition, base or expansion")
		shorthand = flag.Bool("shorthand", false, "Print shorthand names, comma-separated, on one line")
	)
	flag.Parse()

	if *shorthand {
		fmt.Println(shorthands())
		return
	}

	if *edition == "" {
		if err := printTable(os.Stdout); err != nil {
			log.Fatalf("failed to print table: %v", err)
		}
		return
	}

	ed, err := sidereal.ParseFactionType(*edition)
	if err != nil {
		log.Fatalf("bad -edition %q: %v", *edition, err)
	}
	for _, id := range sidereal.AllFactions() {
		fmt.Println(sidereal.Names(id).FullName(ed))
	}
}

func shorthands() string {
	var names []string
	for _, id := range sidereal.AllFactions() {
		names = append(names, sidereal.Names(id).Shorthand)
	}
	return strings.Join(names, ",")
}

func printTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tShorthand\tBase\tExpansion")
	for _, id := range sidereal.AllFactions() {
		n := sidereal.Names(id)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, n.Shorthand, n.Base, n.Expansion)
	}
	return tw.Flush()
}
