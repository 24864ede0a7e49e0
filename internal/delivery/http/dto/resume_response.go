package dto

import "applyai/internal/usecase"

type ResumeDataResponse struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	JobTitles  []string `json:"job_titles"`
	Education  string   `json:"education"`
	Summary    string   `json:"summary"`
}

func NewResumeDataResponse(d usecase.ResumeData) ResumeDataResponse {
	return ResumeDataResponse{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Experience: d.Experience,
		Skills:     d.Skills,
		JobTitles:  d.JobTitles,
		Education:  d.Education,
		Summary:    d.Summary,
	}
}

type CoverLetterRequest struct {
	JobTitle   string   `json:"job_title" validate:"required"`
	Company    string   `json:"company" validate:"required"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Name       string   `json:"name"`
}

type CoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}
