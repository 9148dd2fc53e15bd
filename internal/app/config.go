package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pborman/getopt/v2"
)

// Config represents the command-line parameters for ffwd.
type Config struct {
	Sim     string
	Steps   int64
	Input   string
	Set     []string
	History int
	Naive   bool
	Verbose bool
	List    bool
	Help    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "lumber", Steps: 1_000_000_000}
}

// Bind attaches the configuration to the provided option set.
func (c *Config) Bind(s *getopt.Set) {
	s.FlagLong(&c.Sim, "sim", 's', "automaton to run", "name")
	s.FlagLong(&c.Steps, "steps", 'n', "target step count", "N")
	s.FlagLong(&c.Input, "input", 'i', "puzzle input file, - for stdin", "path")
	s.FlagLong(&c.Set, "set", 0, "automaton parameter override (repeatable)", "key=value")
	s.FlagLong(&c.History, "history", 0, "maximum distinct signatures to remember", "count")
	s.FlagLong(&c.Naive, "naive", 0, "simulate every step instead of projecting")
	s.FlagLong(&c.Verbose, "verbose", 'v', "debug logging and grouped digits")
	s.FlagLong(&c.List, "list", 'l', "list automata and their parameters")
	s.FlagLong(&c.Help, "help", 'h', "display help")
	s.SetParameters("[input]")
}

// Parse binds c to a fresh option set and parses args, whose first element
// is the program name. A lone positional argument is taken as the input.
func (c *Config) Parse(args []string) (*getopt.Set, error) {
	s := getopt.New()
	c.Bind(s)
	if len(args) > 0 {
		s.SetProgram(args[0])
	}
	if err := s.Getopt(args, nil); err != nil {
		return s, err
	}
	switch rest := s.Args(); {
	case len(rest) > 1:
		return s, fmt.Errorf("unexpected arguments %q", rest[1:])
	case len(rest) == 1 && c.Input == "":
		c.Input = rest[0]
	case len(rest) == 1:
		return s, fmt.Errorf("input given twice: %q and %q", c.Input, rest[0])
	}
	if c.Steps < 0 {
		return s, fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	return s, nil
}

// Params turns the repeated key=value overrides into a factory config map.
func Params(pairs []string) (map[string]string, error) {
	cfg := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", kv)
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg, nil
}

// ReadInput loads puzzle input from path. An empty path yields empty input.
func ReadInput(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
