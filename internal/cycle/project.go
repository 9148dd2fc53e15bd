package cycle

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"cycle-ca/internal/core"
)

// Result is the state reached at the target step.
type Result[S any] struct {
	State   S
	Summary int64
	// Cycle is nil when the target was reached by direct simulation.
	Cycle *Record
	// Simulated counts rule applications actually performed.
	Simulated int64
}

// Project returns the state at step n. Small targets are simulated
// directly; otherwise whole periods past the first repeat are skipped by
// translating the repeated state and only the remainder is simulated.
func Project[S core.State[S]](initial S, rule core.Rule[S], n int64, opts ...Option) (Result[S], error) {
	if n < 0 {
		return Result[S]{}, ErrNegativeTarget
	}
	cfg := newConfig(opts)
	d := NewDetector(initial, rule, opts...)
	rec, err := d.Run(n)
	if err != nil {
		return Result[S]{}, err
	}

	cur, step := d.State(), d.Step()
	simulated := step
	if rec != nil && step < n {
		cycles := (n-rec.Offset)/rec.Period - 1
		shift, err := core.MulInt64(rec.Shift, cycles)
		if err != nil {
			return Result[S]{}, fmt.Errorf("projecting %d cycles of shift %d: %w", cycles, rec.Shift, err)
		}
		if cur, err = cur.Translate(shift); err != nil {
			return Result[S]{}, fmt.Errorf("translating by %d: %w", shift, err)
		}
		step += cycles * rec.Period
		cfg.logger.Debug("skipped cycles",
			"cycles", humanize.Comma(cycles),
			"step", humanize.Comma(step),
			"remaining", n-step)
		for ; step < n; step++ {
			cur = rule(cur)
			simulated++
		}
	}
	sum, err := summarize(cur)
	if err != nil {
		return Result[S]{}, fmt.Errorf("summary at step %d: %w", n, err)
	}
	return Result[S]{State: cur, Summary: sum, Cycle: rec, Simulated: simulated}, nil
}

// Simulate applies rule n times with no cycle detection. It is the
// reference Project is checked against.
func Simulate[S core.State[S]](initial S, rule core.Rule[S], n int64, opts ...Option) (Result[S], error) {
	if n < 0 {
		return Result[S]{}, ErrNegativeTarget
	}
	cfg := newConfig(opts)
	cur := initial
	for step := int64(0); step < n; step++ {
		cur = rule(cur)
		if cfg.progress != nil && step%progressEvery == 0 {
			cfg.progress(step)
		}
	}
	if cfg.progress != nil {
		cfg.progress(n)
	}
	sum, err := summarize(cur)
	if err != nil {
		return Result[S]{}, fmt.Errorf("summary at step %d: %w", n, err)
	}
	return Result[S]{State: cur, Summary: sum, Simulated: n}, nil
}

func summarize[S core.State[S]](s S) (int64, error) {
	if c, ok := any(s).(core.CheckedSummary); ok {
		return c.CheckedSummary()
	}
	return s.Summary(), nil
}
