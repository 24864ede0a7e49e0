package dto

import "applyai/internal/domain/application"

type ApplicationResponse struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Portal    string `json:"portal"`
	Salary    string `json:"salary"`
	Location  string `json:"location"`
	Match     int    `json:"match"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	AppliedAt string `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Title:     a.Title,
		Company:   a.Company,
		Portal:    a.Portal,
		Salary:    a.Salary,
		Location:  a.Location,
		Match:     a.Match,
		URL:       a.URL,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	}
}

type ApplyRequest struct {
	UserID string   `json:"user_id" validate:"required"`
	JobIDs []string `json:"job_ids" validate:"required,min=1"`
}

type ApplyResponse struct {
	AppliedCount int                   `json:"applied_count"`
	Applications []ApplicationResponse `json:"applications"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

type StatsResponse struct {
	TotalApplied     int `json:"total_applied"`
	Viewed           int `json:"viewed"`
	Interviews       int `json:"interviews"`
	PortalsConnected int `json:"portals_connected"`
	JobsFoundToday   int `json:"jobs_found_today"`
}
