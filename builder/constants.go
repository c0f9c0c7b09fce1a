package builder

// Method name tokens used to prefix errors.
const (
	// MethodBuildDomainMesh is the canonical name of the assembly entry point.
	MethodBuildDomainMesh = "BuildDomainMesh"
)

// Sampling method names.
const (
	SamplingLinear = "linear"
	SamplingRandom = "random"
)

// ParameterBeta selects the Beta-mixture quantile warp.
const ParameterBeta = "beta"

// MeshGaussian selects Gaussian attractor displacement.
const MeshGaussian = "gaussian"

// Numeric defaults.
const (
	// DefaultConcentration is the Beta concentration for both axes.
	DefaultConcentration = 4.0
	// DefaultSharpness is the Gaussian decay coefficient.
	DefaultSharpness = 2.0
)
