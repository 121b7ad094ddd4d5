// Package meinhardt implements the activator-substrate reaction-diffusion
// system after Koch and Meinhardt. The activator self-amplifies through a
// saturating nonlinearity while consuming the substrate:
//
//	ȧ = Da·∇²a + ρa·(a²/(1+Ka·a²))/b − μa·a + σa
//	ḃ = Db·∇²b + ρb·a² − μb·b + σb
//
// The division by b is a property of the physical model: a vanishing
// substrate yields non-finite rates, which propagate rather than being
// clamped.
package meinhardt

import (
	"turing-rd/internal/core"
)

// Model evaluates the activator-substrate kinetics for a parameter set.
type Model struct {
	p Params
}

// NewModel returns a Model with the given coefficients.
func NewModel(p Params) *Model { return &Model{p: p} }

// Name identifies the kinetics.
func (m *Model) Name() string { return "meinhardt" }

// Params returns the coefficients in use.
func (m *Model) Params() Params { return m.p }

// Rates evaluates both rate fields from the current field pair. Inputs are
// read in full and never mutated; the returned fields are freshly allocated.
func (m *Model) Rates(a, b *core.Field) (*core.Field, *core.Field) {
	la := core.Laplacian(a)
	lb := core.Laplacian(b)

	da := core.NewFieldLike(a)
	db := core.NewFieldLike(b)

	p := m.p
	av, bv := a.Values(), b.Values()
	lav, lbv := la.Values(), lb.Values()
	dav, dbv := da.Values(), db.Values()
	for i := range av {
		aa := av[i] * av[i]
		// A zero activator contributes no autocatalytic flux regardless of
		// the substrate; a nonzero one over a vanishing substrate is
		// singular and the non-finite rate propagates.
		react := 0.0
		if sat := aa / (1 + p.Ka*aa); sat != 0 {
			react = p.RhoA * sat / bv[i]
		}
		dav[i] = p.Da*lav[i] + react - p.MuA*av[i] + p.SigmaA
		dbv[i] = p.Db*lbv[i] + p.RhoB*aa - p.MuB*bv[i] + p.SigmaB
	}
	return da, db
}

// System owns a configured simulation of the kinetics and implements
// core.Sim.
type System struct {
	cfg   Config
	state *core.State
}

// New returns a System with the provided dimensions using defaults.
func New(w, h int) *System {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a System configured from the provided options.
// Invalid dimensions or mismatched fields are construction-time errors, so
// the returned System is always steppable.
func NewWithConfig(cfg Config) *System {
	s := &System{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *System) Name() string { return "meinhardt" }

// Size reports the grid dimensions.
func (s *System) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Activator exposes the current activator field.
func (s *System) Activator() *core.Field { return s.state.A }

// Substrate exposes the current substrate field.
func (s *System) Substrate() *core.Field { return s.state.B }

// State exposes the underlying simulation state.
func (s *System) State() *core.State { return s.state }

// Reset rebuilds both fields with uniform [0,1) initial conditions drawn
// from a deterministic RNG. A zero seed falls back to the configured seed.
func (s *System) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	a, err := core.NewField(s.cfg.Width, s.cfg.Height)
	if err != nil {
		panic(err)
	}
	b, err := core.NewField(s.cfg.Width, s.cfg.Height)
	if err != nil {
		panic(err)
	}
	rng := core.NewRNG(effective)
	core.FillUniform(rng, a)
	core.FillUniform(rng, b)
	state, err := core.NewState(a, b, NewModel(s.cfg.Params))
	if err != nil {
		panic(err)
	}
	s.state = state
}

// Step advances the simulation by one explicit-Euler update.
func (s *System) Step() { s.state.Step() }

func init() {
	core.Register("meinhardt", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
