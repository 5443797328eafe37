package intent

// Scoring
const (
	DefaultThreshold    = 0.1
	DefaultMatchWeight  = 2.0
	WordOverlapWeight   = 0.5
	MaxReportConfidence = 1.0
)

// Refinement
const (
	RefinedAddConfidence    = 0.8
	RefinedUpdateConfidence = 0.7
)

// Error messages
const (
	ErrMsgCompilePattern = "failed to compile pattern"
)
