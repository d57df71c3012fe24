package catalog

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/sergeii/enigmasim/pkg/enigma/reflector"
	"github.com/sergeii/enigmasim/pkg/enigma/rotor"
)

type command struct {
	Rotors     bool `help:"Lists only the rotors"     xor:"part"`
	Reflectors bool `help:"Lists only the reflectors" xor:"part"`
}

func (c *command) Run(kctx *kong.Context) error {
	w := tabwriter.NewWriter(kctx.Stdout, 0, 0, 2, ' ', 0)
	if !c.Reflectors {
		writeRotors(w)
	}
	if !c.Rotors && !c.Reflectors {
		fmt.Fprintln(w)
	}
	if !c.Rotors {
		writeReflectors(w)
	}
	return w.Flush()
}

func writeRotors(w io.Writer) {
	fmt.Fprintln(w, "ROTOR\tWIRING\tNOTCHES\tTHIN")
	for _, t := range rotor.Types() {
		notches := t.NotchString()
		if notches == "" {
			notches = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name, t.Wiring, notches, yesNo(t.Thin()))
	}
}

func writeReflectors(w io.Writer) {
	fmt.Fprintln(w, "REFLECTOR\tWIRING\tTHIN")
	for _, name := range reflector.Names() {
		ref := reflector.MustLookup(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", ref.Name(), ref.Wiring(), yesNo(ref.Thin()))
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

type CLI struct {
	Catalog command `cmd:"" help:"List the rotors and reflectors that can be used in a key"`
}
