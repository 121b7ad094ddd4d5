package meinhardt

import "strconv"

// Params holds the reaction-diffusion coefficients for the
// activator-substrate kinetics. Values are fixed for the duration of a run.
type Params struct {
	Da float64 // activator diffusion constant
	Db float64 // substrate diffusion constant

	RhoA float64 // activator reaction rate
	RhoB float64 // substrate reaction rate

	MuA float64 // activator decay rate
	MuB float64 // substrate decay rate

	Ka float64 // activator saturation constant

	SigmaA float64 // activator source term
	SigmaB float64 // substrate source term
}

// Config controls the simulation dimensions and kinetics.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration. The coefficients keep
// the explicit scheme stable on a unit grid; nothing in the engine enforces
// that, so departures are at the caller's risk.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Seed:   1337,
		Params: Params{
			Da:     0.005,
			Db:     0.2,
			RhoA:   0.01,
			RhoB:   0.02,
			MuA:    0.01,
			MuB:    0.02,
			Ka:     0.25,
			SigmaA: 0,
			SigmaB: 0,
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
		"da":      &c.Params.Da,
		"db":      &c.Params.Db,
		"rho_a":   &c.Params.RhoA,
		"rho_b":   &c.Params.RhoB,
		"mu_a":    &c.Params.MuA,
		"mu_b":    &c.Params.MuB,
		"ka":      &c.Params.Ka,
		"sigma_a": &c.Params.SigmaA,
		"sigma_b": &c.Params.SigmaB,
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
