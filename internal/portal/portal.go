package portal

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Portal names as they appear on catalog jobs.
const (
	Naukri   = "Naukri"
	LinkedIn = "LinkedIn"
	Foundit  = "Foundit"
	Indeed   = "Indeed"
)

// builders dispatches portal name to its URL scheme. Unrecognized portals
// fall back to the Naukri path-slug scheme.
var builders = map[string]func(title, location string) string{
	Naukri:   NaukriURL,
	LinkedIn: LinkedInURL,
	Foundit:  FounditURL,
	Indeed:   IndeedURL,
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s, collapses every run of non-alphanumeric characters to a
// single hyphen and trims hyphens from both ends.
func Slug(s string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// URLFor returns the canonical deep link into portalName for a title and
// location. It never fails; the URL templates are fixed and must stay
// byte-compatible with the apply links stored on catalog jobs.
func URLFor(portalName, title, location string) string {
	if build, ok := builders[portalName]; ok {
		return build(title, location)
	}
	return NaukriURL(title, location)
}

func NaukriURL(title, location string) string {
	return fmt.Sprintf("https://www.naukri.com/%s-jobs-in-%s", Slug(title), Slug(location))
}

// LinkedInURL builds the search link pinned to the past-week filter. The
// parameter order is part of the template, so no url.Values here.
func LinkedInURL(title, location string) string {
	return fmt.Sprintf("https://www.linkedin.com/jobs/search/?keywords=%s&location=%s&f_TPR=r604800",
		url.QueryEscape(title), url.QueryEscape(location))
}

func FounditURL(title, location string) string {
	return fmt.Sprintf("https://www.foundit.in/srp/results?query=%s&location=%s",
		url.QueryEscape(title), url.QueryEscape(location))
}

func IndeedURL(title, location string) string {
	return fmt.Sprintf("https://in.indeed.com/jobs?q=%s&l=%s",
		url.QueryEscape(title), url.QueryEscape(location))
}

// InternshalaURL only depends on the query; Internshala has no location
// facet in its listing URLs.
func InternshalaURL(title string) string {
	slugged := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return fmt.Sprintf("https://internshala.com/jobs/%s-jobs", url.PathEscape(slugged))
}

// Links returns one deep link per supported portal for a query/location
// pair, keyed by lowercase portal name.
func Links(query, location string) map[string]string {
	return map[string]string{
		"linkedin":    LinkedInURL(query, location),
		"naukri":      NaukriURL(query, location),
		"foundit":     FounditURL(query, location),
		"indeed":      IndeedURL(query, location),
		"internshala": InternshalaURL(query),
	}
}
