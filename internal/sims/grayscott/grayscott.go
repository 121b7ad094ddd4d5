// Package grayscott implements Gray-Scott reaction-diffusion kinetics:
//
//	u̇ = Du·∇²u − u·v² + F·(1−u)
//	v̇ = Dv·∇²v + u·v² − (F+k)·v
//
// It exists alongside the activator-substrate model to demonstrate that the
// stepper and runner accept any kinetics conforming to core.Model.
package grayscott

import (
	"strconv"

	"turing-rd/internal/core"
)

// Params holds the Gray-Scott coefficients.
type Params struct {
	Du float64 // u diffusion constant
	Dv float64 // v diffusion constant
	F  float64 // feed rate
	K  float64 // kill rate
}

// Config controls the simulation dimensions and kinetics.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns coefficients in the spot-forming regime.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Seed:   1337,
		Params: Params{
			Du: 0.16,
			Dv: 0.08,
			F:  0.035,
			K:  0.065,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floatKeys := map[string]*float64{
		"du": &c.Params.Du,
		"dv": &c.Params.Dv,
		"f":  &c.Params.F,
		"k":  &c.Params.K,
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// Model evaluates Gray-Scott kinetics for a parameter set.
type Model struct {
	p Params
}

// NewModel returns a Model with the given coefficients.
func NewModel(p Params) *Model { return &Model{p: p} }

// Name identifies the kinetics.
func (m *Model) Name() string { return "grayscott" }

// Rates evaluates both rate fields from the current field pair.
func (m *Model) Rates(u, v *core.Field) (*core.Field, *core.Field) {
	lu := core.Laplacian(u)
	lv := core.Laplacian(v)

	du := core.NewFieldLike(u)
	dv := core.NewFieldLike(v)

	p := m.p
	uv, vv := u.Values(), v.Values()
	luv, lvv := lu.Values(), lv.Values()
	duv, dvv := du.Values(), dv.Values()
	for i := range uv {
		uvv := uv[i] * vv[i] * vv[i]
		duv[i] = p.Du*luv[i] - uvv + p.F*(1-uv[i])
		dvv[i] = p.Dv*lvv[i] + uvv - (p.F+p.K)*vv[i]
	}
	return du, dv
}

// System owns a configured Gray-Scott simulation and implements core.Sim.
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
func NewWithConfig(cfg Config) *System {
	s := &System{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *System) Name() string { return "grayscott" }

// Size reports the grid dimensions.
func (s *System) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Activator exposes the v field, which carries the visible pattern.
func (s *System) Activator() *core.Field { return s.state.B }

// State exposes the underlying simulation state.
func (s *System) State() *core.State { return s.state }

// Reset rebuilds the fields: u starts at 1 and v at 0 everywhere, with a
// uniformly perturbed square seeded in the center to break symmetry.
func (s *System) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	u, err := core.NewField(s.cfg.Width, s.cfg.Height)
	if err != nil {
		panic(err)
	}
	v, err := core.NewField(s.cfg.Width, s.cfg.Height)
	if err != nil {
		panic(err)
	}
	u.Fill(1)

	rng := core.NewRNG(effective)
	r := s.cfg.Width / 10
	if hr := s.cfg.Height / 10; hr < r {
		r = hr
	}
	if r < 1 {
		r = 1
	}
	cx, cy := s.cfg.Width/2, s.cfg.Height/2
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			wx, wy := u.Wrap(x, y)
			u.Set(wx, wy, 0.5+0.1*rng.Float64())
			v.Set(wx, wy, 0.25+0.1*rng.Float64())
		}
	}

	state, err := core.NewState(u, v, NewModel(s.cfg.Params))
	if err != nil {
		panic(err)
	}
	s.state = state
}

// Step advances the simulation by one explicit-Euler update.
func (s *System) Step() { s.state.Step() }

func init() {
	core.Register("grayscott", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
