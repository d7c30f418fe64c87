package match

// Scoring weights. Host and adjacent coverage dominate; exposure is a flat
// nudge; the functional rule rewards a satisfied requirement, demotes a
// missing one hard and an unrequested specialization mildly.
const (
	HostWeight     = 0.35
	AdjacentWeight = 0.35
	ExposureBonus  = 0.10

	FunctionMatchedBonus   = 0.20
	MissingFunctionPenalty = 0.25
	SpecificDetailBonus    = 0.10
	NeutralFunctionBonus   = 0.20
)

// AcceptanceThreshold is the minimum confidence for a suggestion.
const AcceptanceThreshold = 0.6
