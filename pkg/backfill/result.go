package backfill

import "fmt"

// Result summarizes a backfill run.
type Result struct {
	// Guides is the number of study guides scanned.
	Guides int

	// Grades is the number of grade results scanned.
	Grades int

	// Published is the number of events successfully emitted.
	Published int

	// Failed is the number of events the publisher rejected.
	Failed int
}

// Summary returns a one-line human-readable summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("scanned %d guides and %d grades, published %d events (%d failed)",
		r.Guides, r.Grades, r.Published, r.Failed)
}
