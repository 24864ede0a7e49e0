package application

// Application records that a user applied to a job. The job fields are a
// denormalized snapshot taken at apply time, so the record stays readable
// even if the job later disappears from the catalog.
type Application struct {
	ID       string
	JobID    string
	UserID   string
	Title    string
	Company  string
	Portal   string
	Salary   string
	Location string
	Match    int
	URL      string

	// Status is the ground truth, always StatusApplied at creation and
	// never rewritten; progressed statuses are computed on read.
	Status string

	// AppliedAt is kept as RFC3339 text so that a corrupt value degrades
	// the status recomputation instead of breaking the read path.
	AppliedAt string
}
