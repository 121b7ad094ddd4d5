package meinhardt

import (
	"strconv"

	"turing-rd/internal/core"
)

// ParameterSnapshot reports the configured values for HUD display and run
// logs.
func (s *System) ParameterSnapshot() core.ParameterSnapshot {
	p := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Diffusion",
			Params: []core.Parameter{
				floatParam("da", "Activator diffusion", p.Da),
				floatParam("db", "Substrate diffusion", p.Db),
			},
		},
		{
			Name: "Reaction",
			Params: []core.Parameter{
				floatParam("rho_a", "Activator reaction rate", p.RhoA),
				floatParam("rho_b", "Substrate reaction rate", p.RhoB),
				floatParam("mu_a", "Activator decay", p.MuA),
				floatParam("mu_b", "Substrate decay", p.MuB),
				floatParam("ka", "Activator saturation", p.Ka),
				floatParam("sigma_a", "Activator source", p.SigmaA),
				floatParam("sigma_b", "Substrate source", p.SigmaB),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
