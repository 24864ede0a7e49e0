package user

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Profile struct {
	UserID             string
	Name               string
	Email              string
	Phone              string
	Location           string
	Experience         string
	Skills             []string
	JobTitles          []string
	SalaryMin          int
	SalaryMax          int
	JobType            string
	PreferredLocations []string
}
