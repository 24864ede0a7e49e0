// Package search filters job lists. Filters are independent predicates
// ANDed together; the chain never re-orders, so relative order from the
// aggregator is preserved.
package search

import (
	"strings"

	"applyai/internal/domain/job"

	"github.com/samber/lo"
)

// SentinelAll disables filtering on the location and portal dimensions.
const SentinelAll = "All"

// Locations treated as matching every requested location.
var universalLocations = map[string]bool{
	"Remote":    true,
	"Pan India": true,
}

type Filters struct {
	Query    string
	Skills   string // comma-separated
	Location string
	Portal   string
	MinMatch int
}

// Apply runs the predicate chain in its fixed order: skills, location,
// portal, free text, minimum match. An empty result is a valid outcome.
func Apply(jobs []job.Job, f Filters) []job.Job {
	if wanted := splitSkills(f.Skills); len(wanted) > 0 {
		jobs = lo.Filter(jobs, func(j job.Job, _ int) bool {
			return hasAnySkill(j, wanted)
		})
	}

	if f.Location != "" && f.Location != SentinelAll {
		loc := strings.ToLower(f.Location)
		jobs = lo.Filter(jobs, func(j job.Job, _ int) bool {
			return strings.Contains(strings.ToLower(j.Location), loc) || universalLocations[j.Location]
		})
	}

	if f.Portal != "" && f.Portal != SentinelAll {
		jobs = lo.Filter(jobs, func(j job.Job, _ int) bool {
			return j.Portal == f.Portal
		})
	}

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		jobs = lo.Filter(jobs, func(j job.Job, _ int) bool {
			return strings.Contains(strings.ToLower(j.Title), q) ||
				strings.Contains(strings.ToLower(j.Company), q)
		})
	}

	if f.MinMatch > 0 {
		jobs = lo.Filter(jobs, func(j job.Job, _ int) bool {
			return j.Match >= f.MinMatch
		})
	}

	return jobs
}

func splitSkills(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// hasAnySkill is an OR across the requested list, case-insensitive on both
// sides.
func hasAnySkill(j job.Job, wanted []string) bool {
	tags := make(map[string]bool, len(j.Skills))
	for _, s := range j.Skills {
		tags[strings.ToLower(s)] = true
	}
	for _, w := range wanted {
		if tags[w] {
			return true
		}
	}
	return false
}
