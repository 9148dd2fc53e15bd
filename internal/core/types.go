package core

import (
	"encoding/hex"
	"sort"

	"github.com/charmbracelet/log"
	"lukechampine.com/blake3"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Signature is a canonical digest of a state. Two states with equal
// signatures evolve identically under the same rule.
type Signature [32]byte

// Sign digests a canonical state encoding.
func Sign(encoding []byte) Signature {
	return blake3.Sum256(encoding)
}

// String returns a short hex prefix suitable for logs.
func (s Signature) String() string { return hex.EncodeToString(s[:8]) }

// State is the contract every automaton snapshot satisfies. States are
// immutable from the caller's perspective: rules and Translate return new
// values.
type State[S any] interface {
	// Signature identifies the pattern independent of any positional offset
	// the automaton is invariant under.
	Signature() Signature
	// Anchor is the positional reference the signature was taken relative
	// to. Automata without translation invariance return 0.
	Anchor() int64
	// Summary is the scalar answer value for the state.
	Summary() int64
	// Translate returns the state shifted by d positions.
	Translate(d int64) (S, error)
}

// Bounded is implemented by states whose evolution depends on absolute
// position (finite grids). A cycle over such states never carries a shift.
type Bounded interface {
	TranslationInvariant() bool
}

// CheckedSummary is implemented by states whose Summary can leave int64.
// Projection reports the overflow instead of returning a wrapped value.
type CheckedSummary interface {
	CheckedSummary() (int64, error)
}

// Rule advances a state by exactly one step. It must be pure.
type Rule[S any] func(S) S

// Options tunes a single Runner invocation.
type Options struct {
	Logger       *log.Logger
	HistoryLimit int
	Naive        bool
	// Progress is called periodically with the current step during naive
	// simulation.
	Progress func(step int64)
}

// Report describes the outcome of projecting an automaton to a target step.
type Report struct {
	Name      string
	Target    int64
	Summary   int64
	Simulated int64

	Cycled bool
	Offset int64
	Period int64
	Shift  int64
}

// Runner is the name-addressable form of an automaton used by the CLIs.
// Implementations must allow concurrent Run calls.
type Runner interface {
	Name() string
	Run(target int64, opts Options) (Report, error)
}

// Factory constructs a Runner from raw puzzle input and a string config
// map. Empty input asks the factory for its built-in or generated state.
type Factory func(input string, cfg map[string]string) (Runner, error)

var sims = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available automaton factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered automata in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
