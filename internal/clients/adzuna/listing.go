package adzuna

// Listing is one record from the Adzuna results array. Fields the
// aggregator does not consume are omitted.
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     Company `json:"company"`
	Location    Area    `json:"location"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	Created     string  `json:"created"`
	RedirectURL string  `json:"redirect_url"`
	Description string  `json:"description"`
}

type Company struct {
	DisplayName string `json:"display_name"`
}

type Area struct {
	DisplayName string `json:"display_name"`
}
