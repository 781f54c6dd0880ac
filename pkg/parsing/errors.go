package parsing

import "errors"

// Failure taxonomy for the extraction pipeline. Handlers map these onto user
// errors; everything else is an internal failure.
var (
	// ErrModelNotConfigured: full-structure extraction was requested without a
	// model credential. There is deliberately no heuristic fallback for this
	// mode — reconstructing the whole job graph heuristically is not viable.
	ErrModelNotConfigured = errors.New("resume extraction requires a configured model")

	// ErrModelCall wraps provider/network failures.
	ErrModelCall = errors.New("model call failed")

	// ErrBadStructure: the model responded but the reply was not valid JSON.
	ErrBadStructure = errors.New("could not parse resume structure")

	// ErrMissingJobs: valid JSON without a jobs array.
	ErrMissingJobs = errors.New("missing jobs array in model response")

	// ErrNoJobs: every job candidate was rejected by validation.
	ErrNoJobs = errors.New("no jobs found in resume")
)
