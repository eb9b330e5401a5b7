package application

import (
	"context"
	"fmt"
	"sync"
)

// StepResults carries the settled values of prerequisite steps into a
// dependent step's Run func, keyed by step name.
type StepResults map[string]any

// Step is one fetch of a view's activation plan. Steps without Needs start
// immediately and overlap; a step with Needs starts only after every named
// prerequisite settled successfully.
type Step struct {
	Name  string
	Needs []string
	Run   func(ctx context.Context, prior StepResults) (any, error)
}

// Aggregate is the merged, render-ready result of one activation. Fields
// holds every step that completed; a step that failed, or was skipped
// because a prerequisite failed, is simply absent. Err carries the first
// failure in plan order.
type Aggregate struct {
	Fields map[string]any
	Err    error
}

type stepOutcome struct {
	value   any
	err     error
	skipped bool
}

// RunPlan executes a dependency-ordered fetch plan. Independent steps run
// concurrently with no relative ordering guarantee; dependents are strictly
// sequenced after their prerequisites.
func RunPlan(ctx context.Context, plan []Step) Aggregate {
	if err := validatePlan(plan); err != nil {
		return Aggregate{Fields: map[string]any{}, Err: err}
	}

	outcomes := make(map[string]*stepOutcome, len(plan))
	settled := make(map[string]chan struct{}, len(plan))
	for _, step := range plan {
		outcomes[step.Name] = &stepOutcome{}
		settled[step.Name] = make(chan struct{})
	}

	var wg sync.WaitGroup
	for _, step := range plan {
		wg.Add(1)
		go func(step Step) {
			defer wg.Done()
			defer close(settled[step.Name])

			outcome := outcomes[step.Name]

			prior := make(StepResults, len(step.Needs))
			for _, need := range step.Needs {
				<-settled[need]
				needOutcome := outcomes[need]
				if needOutcome.err != nil || needOutcome.skipped {
					outcome.skipped = true
					return
				}
				prior[need] = needOutcome.value
			}

			outcome.value, outcome.err = step.Run(ctx, prior)
		}(step)
	}
	wg.Wait()

	aggregate := Aggregate{Fields: make(map[string]any, len(plan))}
	for _, step := range plan {
		outcome := outcomes[step.Name]
		switch {
		case outcome.skipped:
		case outcome.err != nil:
			if aggregate.Err == nil {
				aggregate.Err = outcome.err
			}
		default:
			aggregate.Fields[step.Name] = outcome.value
		}
	}

	return aggregate
}

func validatePlan(plan []Step) error {
	names := make(map[string]struct{}, len(plan))
	for _, step := range plan {
		if step.Name == "" {
			return fmt.Errorf("plan step without a name")
		}
		if _, dup := names[step.Name]; dup {
			return fmt.Errorf("duplicate plan step %q", step.Name)
		}
		names[step.Name] = struct{}{}
	}

	for _, step := range plan {
		for _, need := range step.Needs {
			if _, ok := names[need]; !ok {
				return fmt.Errorf("step %q needs unknown step %q", step.Name, need)
			}
		}
	}

	return nil
}

// ViewState holds one view's {fields, loading, error} across activations.
// Each activation gets a monotonically increasing id; an activation that
// settles after a newer one was issued does not write back, so the view
// reflects the last-issued activation rather than the last-settled one.
type ViewState struct {
	mu        sync.Mutex
	seq       uint64
	loading   int
	aggregate Aggregate
}

func NewViewState() *ViewState {
	return &ViewState{aggregate: Aggregate{Fields: map[string]any{}}}
}

// Activate runs the plan and commits the aggregate unless superseded. The
// aggregate of this activation is returned either way.
func (v *ViewState) Activate(ctx context.Context, plan []Step) Aggregate {
	v.mu.Lock()
	v.seq++
	id := v.seq
	v.loading++
	v.mu.Unlock()

	aggregate := RunPlan(ctx, plan)

	v.mu.Lock()
	v.loading--
	if id == v.seq {
		v.aggregate = aggregate
	}
	v.mu.Unlock()

	return aggregate
}

// Snapshot returns the last committed aggregate and whether any activation
// is still in flight.
func (v *ViewState) Snapshot() (Aggregate, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fields := make(map[string]any, len(v.aggregate.Fields))
	for name, value := range v.aggregate.Fields {
		fields[name] = value
	}
	return Aggregate{Fields: fields, Err: v.aggregate.Err}, v.loading > 0
}
