package job

// Job is a single posting, either from the bundled catalog or built fresh
// from a live provider record. Catalog jobs are immutable once built; live
// jobs exist only for the lifetime of one search response.
type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Salary      string
	Portal      string
	Skills      []string
	Experience  string
	Posted      string
	Match       int
	URL         string
	ApplyURL    string
	Description string
}
