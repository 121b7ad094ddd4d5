package grayscott

import (
	"slices"
	"testing"

	"turing-rd/internal/core"
)

func TestUniformRestStateIsFixedPoint(t *testing.T) {
	// u = 1, v = 0 everywhere: no diffusion, no reaction, no feed deficit.
	u, err := core.NewField(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	v, err := core.NewField(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	u.Fill(1)

	m := NewModel(DefaultConfig().Params)
	du, dv := m.Rates(u, v)
	for _, r := range du.Values() {
		if r != 0 {
			t.Fatalf("u rate = %v at rest state, want 0", r)
		}
	}
	for _, r := range dv.Values() {
		if r != 0 {
			t.Fatalf("v rate = %v at rest state, want 0", r)
		}
	}
}

func TestResetSeedsCenterPerturbation(t *testing.T) {
	sys := NewWithConfig(Config{Width: 40, Height: 40, Seed: 5, Params: DefaultConfig().Params})

	center := sys.Activator().At(20, 20)
	if center <= 0 {
		t.Fatalf("center v = %v, want a positive perturbation", center)
	}
	corner := sys.Activator().At(0, 0)
	if corner != 0 {
		t.Fatalf("corner v = %v, want untouched 0", corner)
	}
}

func TestResetDeterministic(t *testing.T) {
	sys := NewWithConfig(Config{Width: 24, Height: 24, Seed: 11, Params: DefaultConfig().Params})
	sys.Reset(11)
	first := append([]float64(nil), sys.Activator().Values()...)

	for i := 0; i < 5; i++ {
		sys.Step()
	}
	sys.Reset(11)

	if !slices.Equal(first, sys.Activator().Values()) {
		t.Fatal("Reset with the same seed must rebuild identical fields")
	}
}

func TestModelSubstitution(t *testing.T) {
	// The stepper accepts Gray-Scott kinetics through the same interface as
	// the activator-substrate model.
	u, _ := core.NewField(8, 8)
	v, _ := core.NewField(8, 8)
	u.Fill(1)
	v.Set(4, 4, 0.5)

	state, err := core.NewState(u, v, NewModel(DefaultConfig().Params))
	if err != nil {
		t.Fatal(err)
	}
	runner := core.NewRunner(state, nil)
	if done := runner.Run(3); done != 3 {
		t.Fatalf("Run executed %d steps, want 3", done)
	}
	if state.Steps != 3 {
		t.Fatalf("step counter = %d, want 3", state.Steps)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["grayscott"]
	if !ok {
		t.Fatal("grayscott must self-register")
	}
	sim := factory(map[string]string{"w": "16", "h": "16", "f": "0.04"})
	if size := sim.Size(); size.W != 16 || size.H != 16 {
		t.Fatalf("factory ignored config, got %dx%d", size.W, size.H)
	}
}
