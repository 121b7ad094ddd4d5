package core

// FrameFunc receives the activator field after each completed step. The field
// is a read-only view of live state; consumers that retain it across steps
// must copy. Returning false stops the run before the next step.
type FrameFunc func(step int, a *Field) bool

// Runner sequences simulation steps with an external frame consumer. The
// loop is synchronous and unpaced; frame pacing belongs to the consumer.
type Runner struct {
	state *State
	frame FrameFunc
}

// NewRunner constructs a Runner for the given state. frame may be nil for
// headless runs with no consumer.
func NewRunner(state *State, frame FrameFunc) *Runner {
	return &Runner{state: state, frame: frame}
}

// State exposes the simulation state owned by the runner.
func (r *Runner) State() *State { return r.state }

// Run executes up to iterations steps, invoking the frame consumer once per
// completed step in step order. A false return from the consumer stops the
// loop between steps; partial steps never happen. Run returns the number of
// steps executed.
func (r *Runner) Run(iterations int) int {
	done := 0
	for i := 0; i < iterations; i++ {
		r.state.Step()
		done++
		if r.frame != nil && !r.frame(r.state.Steps, r.state.A) {
			break
		}
	}
	return done
}
