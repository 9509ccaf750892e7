package base

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps the standard flag.FlagSet with rendered help text so
// commands can append their options to their Help() output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps fs, silencing its own output; errors and usage are
// rendered through the command UI instead.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return &FlagSet{FlagSet: fs}
}

// Help renders the registered flags, one per line with the default value
// when it is non-empty.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n", fl.Name)
		usage := fl.Usage
		if fl.DefValue != "" && fl.DefValue != "false" {
			usage += fmt.Sprintf(" (default: %s)", fl.DefValue)
		}
		fmt.Fprintf(&b, "      %s\n", usage)
	})
	return b.String()
}
