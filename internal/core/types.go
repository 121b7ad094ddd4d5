package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Model defines the reaction-kinetics contract. Rates evaluates the full
// right-hand side (diffusion plus reaction) for both species from the current
// fields and returns freshly allocated rate fields of the same shape. It must
// not mutate a or b. Non-finite values arising from the kinetics (for
// instance a near-zero substrate under the activator division) propagate
// unclamped.
type Model interface {
	Name() string
	Rates(a, b *Field) (*Field, *Field)
}

// Sim defines the minimal contract a runnable simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Activator() *Field
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
