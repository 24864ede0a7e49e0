package dto

import "applyai/internal/domain/user"

type ProfileRequest struct {
	UserID             string   `json:"user_id" validate:"required"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Location           string   `json:"location"`
	Experience         string   `json:"experience"`
	Skills             []string `json:"skills"`
	JobTitles          []string `json:"job_titles"`
	SalaryMin          int      `json:"salary_min"`
	SalaryMax          int      `json:"salary_max"`
	JobType            string   `json:"job_type"`
	PreferredLocations []string `json:"preferred_locations"`
}

func (r ProfileRequest) ToDomain() user.Profile {
	return user.Profile{
		UserID:             r.UserID,
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Location:           r.Location,
		Experience:         r.Experience,
		Skills:             r.Skills,
		JobTitles:          r.JobTitles,
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		JobType:            r.JobType,
		PreferredLocations: r.PreferredLocations,
	}
}

type ProfileResponse struct {
	UserID             string   `json:"user_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Location           string   `json:"location"`
	Experience         string   `json:"experience"`
	Skills             []string `json:"skills"`
	JobTitles          []string `json:"job_titles"`
	SalaryMin          int      `json:"salary_min"`
	SalaryMax          int      `json:"salary_max"`
	JobType            string   `json:"job_type"`
	PreferredLocations []string `json:"preferred_locations"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:             p.UserID,
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		Location:           p.Location,
		Experience:         p.Experience,
		Skills:             p.Skills,
		JobTitles:          p.JobTitles,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
		JobType:            p.JobType,
		PreferredLocations: p.PreferredLocations,
	}
}
