package dto

import "applyai/internal/domain/job"

type JobResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Portal      string   `json:"portal"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Posted      string   `json:"posted"`
	Match       int      `json:"match"`
	URL         string   `json:"url"`
	ApplyURL    string   `json:"apply_url"`
	Description string   `json:"description"`
}

func NewJobResponse(j job.Job) JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Salary:      j.Salary,
		Portal:      j.Portal,
		Skills:      skills,
		Experience:  j.Experience,
		Posted:      j.Posted,
		Match:       j.Match,
		URL:         j.URL,
		ApplyURL:    j.ApplyURL,
		Description: j.Description,
	}
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int           `json:"total"`
}
