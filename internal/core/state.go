package core

import "fmt"

// dt is the explicit-Euler time step. Fixed at one; stability under the
// scheme is a parameter-choice responsibility of the caller.
const dt = 1.0

// State owns the activator/substrate field pair, the reaction model, and the
// step counter. Only Step mutates the fields.
type State struct {
	A, B  *Field
	Steps int

	model Model
}

// NewState validates the field pair and returns a State ready to step.
// The fields must be non-nil and share the same shape.
func NewState(a, b *Field, m Model) (*State, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("state requires both fields")
	}
	if m == nil {
		return nil, fmt.Errorf("state requires a reaction model")
	}
	if !a.SameShape(b) {
		return nil, fmt.Errorf("field shape mismatch: a %dx%d, b %dx%d", a.W, a.H, b.W, b.H)
	}
	return &State{A: a, B: b, model: m}, nil
}

// Model returns the reaction model driving this state.
func (s *State) Model() Model { return s.model }

// Step advances both fields by one explicit-Euler update. Both rate fields
// are evaluated in full from the pre-step snapshot before either live field
// is touched, so the update is synchronized rather than a sweep.
func (s *State) Step() {
	da, db := s.model.Rates(s.A, s.B)
	av, bv := s.A.data, s.B.data
	dav, dbv := da.data, db.data
	for i := range av {
		av[i] += dav[i] * dt
		bv[i] += dbv[i] * dt
	}
	s.Steps++
}
