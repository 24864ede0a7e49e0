package adzuna

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

type SearchParameters struct {
	What           string
	Where          string
	ResultsPerPage int
}

func (s SearchParameters) Validate() error {
	if s.What == "" {
		return errors.New("search text must not be empty")
	}
	if s.ResultsPerPage < 0 || s.ResultsPerPage > 50 {
		return errors.New("results per page must be between 0 and 50")
	}
	return nil
}

func (s SearchParameters) toURLValues(appID, appKey string) url.Values {
	params := url.Values{}
	params.Add("app_id", appID)
	params.Add("app_key", appKey)
	params.Add("what", s.What)

	if s.Where != "" {
		params.Add("where", s.Where)
	}
	if s.ResultsPerPage > 0 {
		params.Add("results_per_page", strconv.Itoa(s.ResultsPerPage))
	}

	params.Add("content-type", "application/json")
	return params
}
