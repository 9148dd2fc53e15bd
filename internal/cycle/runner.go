package cycle

import "cycle-ca/internal/core"

type runner[S core.State[S]] struct {
	name    string
	initial S
	rule    core.Rule[S]
}

// NewRunner adapts an initial state and rule to core.Runner. The initial
// state is shared between runs, which is safe because states are immutable.
func NewRunner[S core.State[S]](name string, initial S, rule core.Rule[S]) core.Runner {
	return &runner[S]{name: name, initial: initial, rule: rule}
}

func (r *runner[S]) Name() string { return r.name }

func (r *runner[S]) Run(target int64, o core.Options) (core.Report, error) {
	opts := []Option{WithLogger(o.Logger), WithHistoryLimit(o.HistoryLimit)}
	if o.Progress != nil {
		opts = append(opts, WithProgress(o.Progress))
	}

	var (
		res Result[S]
		err error
	)
	if o.Naive {
		res, err = Simulate(r.initial, r.rule, target, opts...)
	} else {
		res, err = Project(r.initial, r.rule, target, opts...)
	}
	if err != nil {
		return core.Report{}, err
	}

	rep := core.Report{
		Name:      r.name,
		Target:    target,
		Summary:   res.Summary,
		Simulated: res.Simulated,
	}
	if res.Cycle != nil {
		rep.Cycled = true
		rep.Offset = res.Cycle.Offset
		rep.Period = res.Cycle.Period
		rep.Shift = res.Cycle.Shift
	}
	return rep, nil
}
