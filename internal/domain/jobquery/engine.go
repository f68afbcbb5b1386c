// Package jobquery filters, counts, sorts and paginates job listings.
// It works on rows already joined with their vehicle and customer and has
// no storage dependency.
package jobquery

import (
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/pkg/api"
)

// StatusAll is the synthetic facet key counting every status.
const StatusAll = "all"

// StatusCounts maps every job status, plus "all", to a match count.
type StatusCounts map[string]int

// Query is a complete listing request.
type Query struct {
	Filters   Filters
	SortBy    SortField
	SortOrder SortOrder
	Page      api.PageRequest
}

// Result is one page of jobs plus the status facets.
type Result struct {
	api.Page[Row]
	StatusCounts StatusCounts
}

// Run applies q to rows. Facet counts honor every filter except status, so
// StatusCounts["all"] equals the total of the same query without a status
// filter.
func Run(rows []Row, q Query) Result {
	filters := q.Filters.Normalize()
	facetFilters := filters.WithoutStatus()

	counts := newStatusCounts()
	matched := make([]Row, 0, len(rows))
	for _, row := range rows {
		if !facetFilters.Matches(row) {
			continue
		}
		counts[StatusAll]++
		counts[string(row.Job.Status)]++
		if filters.Status == "" || row.Job.Status == filters.Status {
			matched = append(matched, row)
		}
	}

	sortBy := ParseSortField(string(q.SortBy))
	order := q.SortOrder
	if order != SortAsc {
		order = SortDesc
	}
	sortRows(matched, sortBy, order)

	return Result{
		Page:         api.Paginate(matched, q.Page),
		StatusCounts: counts,
	}
}

func newStatusCounts() StatusCounts {
	counts := StatusCounts{StatusAll: 0}
	for _, s := range entities.JobStatuses {
		counts[string(s)] = 0
	}
	return counts
}
