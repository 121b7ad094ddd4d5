package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single configured value exposed by a simulation.
// Parameters are fixed for the duration of a run; the snapshot exists for
// display and run logs, not live tuning.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the configured values of a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// SnapshotProvider is implemented by sims that can report their configured
// parameters.
type SnapshotProvider interface {
	ParameterSnapshot() ParameterSnapshot
}
