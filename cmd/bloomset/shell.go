package main

import (
	"fmt"

	"github.com/jcalabro/bloomset"
	"github.com/jcalabro/bloomset/internal/repl"
)

const prompt = "bloomset> "

// newShell wires filter operations to interactive commands. Commands given
// without an item prompt for one on the next line.
func newShell(f *bloomset.Filter) *repl.REPL {
	r := repl.New()

	r.AddCommand("add", func(item string, cfg *repl.Config) error {
		item, ok := itemArg(item, "Enter item to add: ", cfg)
		if !ok {
			return repl.ErrExit
		}
		f.AddString(item)
		fmt.Fprintf(cfg.Writer(), "%s added to Bloom Filter.\n", item)
		return nil
	}, "Add an item to the filter. Usage: add <item>")

	r.AddCommand("check", func(item string, cfg *repl.Config) error {
		item, ok := itemArg(item, "Enter item to check: ", cfg)
		if !ok {
			return repl.ErrExit
		}
		if f.TestString(item) {
			fmt.Fprintf(cfg.Writer(), "%s is possibly in the set.\n", item)
		} else {
			fmt.Fprintf(cfg.Writer(), "%s is definitely not in the set.\n", item)
		}
		return nil
	}, "Check whether an item may be in the filter. Usage: check <item>")

	r.AddCommand("stats", func(_ string, cfg *repl.Config) error {
		printStats(cfg.Writer(), f)
		return nil
	}, "Show filter parameters and fill level.")

	r.AddCommand("exit", func(string, *repl.Config) error {
		return repl.ErrExit
	}, "Leave the shell.")

	return r
}

func itemArg(args, msg string, cfg *repl.Config) (string, bool) {
	if args != "" {
		return args, true
	}
	return cfg.Prompt(msg)
}
