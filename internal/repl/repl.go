// Package repl implements a small line-based command loop.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrExit may be returned by a command to end the loop without error.
var ErrExit = errors.New("repl: exit")

// Command handles one line. args is the line with the trigger removed and
// surrounding whitespace trimmed.
type Command func(args string, cfg *Config) error

// REPL dispatches input lines to registered commands by their first word.
type REPL struct {
	commands map[string]Command
	help     map[string]string
}

// Config gives commands access to the session's input and output.
type Config struct {
	writer  io.Writer
	scanner *bufio.Scanner
}

// Writer returns the session output.
func (c *Config) Writer() io.Writer {
	return c.writer
}

// Prompt writes msg and reads one more line of input. ok is false at EOF.
func (c *Config) Prompt(msg string) (line string, ok bool) {
	io.WriteString(c.writer, msg)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// New returns an empty REPL.
func New() *REPL {
	return &REPL{
		commands: make(map[string]Command),
		help:     make(map[string]string),
	}
}

// AddCommand registers a command, along with its help string. Triggers are
// matched case-insensitively.
func (r *REPL) AddCommand(trigger string, action Command, help string) {
	trigger = strings.ToLower(trigger)
	r.commands[trigger] = action
	r.help[trigger] = help
}

// HelpString returns all usage information, sorted by trigger.
func (r *REPL) HelpString() string {
	triggers := make([]string, 0, len(r.help))
	for k := range r.help {
		triggers = append(triggers, k)
	}
	sort.Strings(triggers)

	var sb strings.Builder
	for _, k := range triggers {
		fmt.Fprintf(&sb, "%s: %s\n", k, r.help[k])
	}
	return sb.String()
}

// Run reads lines from in until EOF or a command returns ErrExit, writing
// the prompt before each line. Errors from commands are printed and the
// loop continues; only read errors are returned.
func (r *REPL) Run(in io.Reader, out io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)
	cfg := &Config{writer: out, scanner: scanner}

	io.WriteString(out, prompt)
	for scanner.Scan() {
		payload := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(payload)
		if len(fields) == 0 {
			io.WriteString(out, prompt)
			continue
		}
		trigger := strings.ToLower(fields[0])
		args := strings.TrimSpace(payload[len(fields[0]):])

		// Check for a meta-command.
		if trigger == ".help" {
			io.WriteString(out, r.HelpString())
			io.WriteString(out, prompt)
			continue
		}

		command, exists := r.commands[trigger]
		if !exists {
			io.WriteString(out, "command not found\n")
			io.WriteString(out, prompt)
			continue
		}

		err := command(args, cfg)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
		}
		io.WriteString(out, prompt)
	}

	// Print an additional line if we encountered an EOF character.
	io.WriteString(out, "\n")
	return scanner.Err()
}
