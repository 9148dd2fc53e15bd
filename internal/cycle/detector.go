// Package cycle detects repeating signatures in a deterministic automaton
// and projects it forward across whole periods without simulating them.
package cycle

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/dustin/go-humanize"

	"cycle-ca/internal/core"
)

// ErrNegativeTarget is returned for target steps below zero.
var ErrNegativeTarget = errors.New("cycle: negative target step")

// Record locates the first repeat: the signature seen at Offset appears
// again at Offset+Period, displaced by Shift positions.
type Record struct {
	Offset int64
	Period int64
	Shift  int64
}

// InvariantError is the panic value raised when a repeated signature is
// inconsistent with the recorded positional reference. It always indicates
// a broken Signature, Anchor or Translate implementation.
type InvariantError struct {
	Record
	Signature core.Signature
	Reason    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cycle invariant violated: %s (offset=%d period=%d shift=%d signature=%s)",
		e.Reason, e.Offset, e.Period, e.Shift, e.Signature)
}

// Sequence yields (step, state) pairs starting at step 0 with initial.
// States are immutable, so ranging over the sequence again restarts it.
func Sequence[S core.State[S]](initial S, rule core.Rule[S]) iter.Seq2[int64, S] {
	return func(yield func(int64, S) bool) {
		cur := initial
		for step := int64(0); ; step++ {
			if !yield(step, cur) || step == math.MaxInt64 {
				return
			}
			cur = rule(cur)
		}
	}
}

type entry struct {
	step    int64
	anchor  int64
	summary int64
}

// Detector advances a state one step at a time and remembers every
// signature it has seen. It is single-use and not safe for concurrent use.
type Detector[S core.State[S]] struct {
	rule   core.Rule[S]
	cur    S
	step   int64
	seen   map[core.Signature]entry
	full   bool
	record *Record
	cfg    config
}

// NewDetector records initial as step 0.
func NewDetector[S core.State[S]](initial S, rule core.Rule[S], opts ...Option) *Detector[S] {
	d := &Detector[S]{
		rule: rule,
		cur:  initial,
		seen: make(map[core.Signature]entry),
		cfg:  newConfig(opts),
	}
	d.seen[initial.Signature()] = d.entry()
	return d
}

// State returns the most recent state.
func (d *Detector[S]) State() S { return d.cur }

// Step returns the index of the most recent state.
func (d *Detector[S]) Step() int64 { return d.step }

// Record returns the detected cycle, or nil if none has been found yet.
func (d *Detector[S]) Record() *Record { return d.record }

// Run advances until step n is reached or a signature repeats, whichever
// comes first. It returns the cycle record in the latter case and nil in
// the former. Once a cycle is found further calls return it unchanged.
//
// When the history limit is reached no further signatures are recorded,
// but stepping continues and repeats of already recorded signatures are
// still detected. A pattern that never repeats is simply simulated to n.
func (d *Detector[S]) Run(n int64) (*Record, error) {
	if n < 0 {
		return nil, ErrNegativeTarget
	}
	for d.record == nil && d.step < n {
		d.cur = d.rule(d.cur)
		d.step++

		sig := d.cur.Signature()
		if prev, ok := d.seen[sig]; ok {
			d.record = d.close(sig, prev)
			d.cfg.logger.Debug("cycle found",
				"offset", humanize.Comma(d.record.Offset),
				"period", humanize.Comma(d.record.Period),
				"shift", d.record.Shift,
				"signature", sig)
			break
		}
		if len(d.seen) < d.cfg.limit {
			d.seen[sig] = d.entry()
		} else if !d.full {
			d.full = true
			d.cfg.logger.Debug("history full, simulating without recording",
				"signatures", humanize.Comma(int64(len(d.seen))),
				"step", humanize.Comma(d.step),
				"target", humanize.Comma(n))
		}
	}
	return d.record, nil
}

func (d *Detector[S]) entry() entry {
	return entry{step: d.step, anchor: d.cur.Anchor(), summary: d.cur.Summary()}
}

// close builds the record for a repeat and panics if the current state
// cannot be mapped back onto the first occurrence.
func (d *Detector[S]) close(sig core.Signature, prev entry) *Record {
	rec := &Record{
		Offset: prev.step,
		Period: d.step - prev.step,
		Shift:  d.cur.Anchor() - prev.anchor,
	}
	fail := func(reason string) {
		panic(&InvariantError{Record: *rec, Signature: sig, Reason: reason})
	}
	if b, ok := any(d.cur).(core.Bounded); ok && !b.TranslationInvariant() && rec.Shift != 0 {
		fail("shift on an automaton without translation invariance")
	}
	back, err := d.cur.Translate(-rec.Shift)
	if err != nil {
		fail(err.Error())
	}
	if back.Summary() != prev.summary {
		fail(fmt.Sprintf("summary %d does not re-base to recorded %d", d.cur.Summary(), prev.summary))
	}
	return rec
}
