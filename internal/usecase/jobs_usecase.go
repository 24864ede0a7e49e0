package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"applyai/internal/clients/adzuna"
	"applyai/internal/domain/job"
	"applyai/internal/logger"
	"applyai/internal/metrics"
	"applyai/internal/search"
	"applyai/internal/store"

	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	liveResultsPerPage = 20
	localMergeLimit    = 10
	fallbackRegion     = "India"
	livePortalName     = "Indeed/Adzuna"
	descriptionLimit   = 200
)

// matchBand is the range live records draw their match score from; live
// data carries no real ranking signal.
const (
	matchBandLow  = 65
	matchBandHigh = 95
)

// JobProvider is the external search source. Injected so the fallback path
// is testable without network conditions.
type JobProvider interface {
	Configured() bool
	Search(ctx context.Context, params adzuna.SearchParameters) ([]adzuna.Listing, error)
}

type JobSearchParams struct {
	Query    string
	Skills   string
	Location string
	Portal   string
	MinMatch int
}

// AggregateResult distinguishes a live merge from a local fallback; the
// caller collapses both into one job list.
type AggregateResult struct {
	Jobs           []job.Job
	Live           bool
	FallbackReason string
}

type JobSearch struct {
	store    *store.Store
	provider JobProvider
	matchFor func() int
}

func NewJobSearchUsecase(st *store.Store, provider JobProvider) *JobSearch {
	return &JobSearch{
		store:    st,
		provider: provider,
		matchFor: func() int { return matchBandLow + rand.IntN(matchBandHigh-matchBandLow+1) },
	}
}

// Search aggregates live and local postings, then applies the filter chain.
func (u *JobSearch) Search(ctx context.Context, p JobSearchParams) []job.Job {
	res := u.Aggregate(ctx, p.Query, p.Location)

	source := metrics.SearchSourceFallback
	if res.Live {
		source = metrics.SearchSourceLive
	}
	metrics.SearchesCounter.WithLabelValues(source).Inc()

	return search.Apply(res.Jobs, search.Filters{
		Query:    p.Query,
		Skills:   p.Skills,
		Location: p.Location,
		Portal:   p.Portal,
		MinMatch: p.MinMatch,
	})
}

// Aggregate attempts one live fetch and merges it with a capped slice of
// the catalog. Every failure mode degrades to the catalog unchanged; the
// caller never sees an error.
func (u *JobSearch) Aggregate(ctx context.Context, query, location string) AggregateResult {
	local := u.store.Jobs()

	if u.provider == nil || !u.provider.Configured() {
		return AggregateResult{Jobs: local, FallbackReason: "external provider not configured"}
	}
	if query == "" {
		return AggregateResult{Jobs: local, FallbackReason: "empty query"}
	}

	where := location
	if where == "" || where == search.SentinelAll {
		where = fallbackRegion
	}

	start := time.Now()
	listings, err := u.provider.Search(ctx, adzuna.SearchParameters{
		What:           query,
		Where:          where,
		ResultsPerPage: liveResultsPerPage,
	})
	metrics.ExternalSearchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAdzuna).
			Warnf("live search failed, serving local catalog: %v", err)
		return AggregateResult{Jobs: local, FallbackReason: err.Error()}
	}

	live := lo.Map(listings, func(l adzuna.Listing, _ int) job.Job {
		return u.jobFromListing(l)
	})

	prefix := local
	if len(prefix) > localMergeLimit {
		prefix = prefix[:localMergeLimit]
	}
	return AggregateResult{Jobs: append(live, prefix...), Live: true}
}

func (u *JobSearch) jobFromListing(l adzuna.Listing) job.Job {
	id := l.ID
	if id == "" {
		id = uuid.NewString()
	}

	company := l.Company.DisplayName
	if company == "" {
		company = "Unknown"
	}

	location := l.Location.DisplayName
	if location == "" {
		location = fallbackRegion
	}

	desc := l.Description
	if runes := []rune(desc); len(runes) > descriptionLimit {
		desc = string(runes[:descriptionLimit])
	}

	return job.Job{
		ID:          id,
		Title:       l.Title,
		Company:     company,
		Location:    location,
		Salary:      salaryLabel(l.SalaryMin, l.SalaryMax),
		Portal:      livePortalName,
		Skills:      []string{},
		Experience:  "",
		Posted:      l.Created,
		Match:       u.matchFor(),
		URL:         l.RedirectURL,
		ApplyURL:    l.RedirectURL,
		Description: desc,
	}
}

// salaryLabel renders annual figures in lakhs; unknown bounds show as a
// dash, matching the catalog's display format.
func salaryLabel(min, max float64) string {
	return fmt.Sprintf("₹%s-%s LPA", lakhs(min), lakhs(max))
}

func lakhs(v float64) string {
	n := int(v / 100000)
	if n == 0 {
		return "—"
	}
	return strconv.Itoa(n)
}
