package build

import "time"

// Result captures the outcome of a full multi-platform run. Artifacts holds
// only the platforms that succeeded; callers distinguish built from failed
// purely by map membership. Failures preserves every per-platform error for
// individual reporting.
type Result struct {
	Artifacts map[string]string // platform → artifact path
	Failures  []Failure
	Duration  time.Duration
}

// Failure records one platform's build error.
type Failure struct {
	Platform string
	Err      error
}

// AllFailed reports whether no requested platform produced an artifact.
func (r *Result) AllFailed() bool {
	return len(r.Artifacts) == 0
}
