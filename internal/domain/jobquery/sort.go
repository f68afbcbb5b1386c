package jobquery

import (
	"sort"
	"strings"
	"time"

	"oficina_jobs/internal/domain/entities"
)

type SortField string

const (
	SortByJobNumber        SortField = "jobNumber"
	SortByStartDate        SortField = "startDate"
	SortByStatus           SortField = "status"
	SortByCreatedAt        SortField = "createdAt"
	SortByUpdatedAt        SortField = "updatedAt"
	SortByEstimatedEndDate SortField = "estimatedEndDate"
	SortByActualEndDate    SortField = "actualEndDate"
)

// ParseSortField returns the matching field, or createdAt for anything unknown.
func ParseSortField(raw string) SortField {
	switch f := SortField(strings.TrimSpace(raw)); f {
	case SortByJobNumber, SortByStartDate, SortByStatus, SortByCreatedAt,
		SortByUpdatedAt, SortByEstimatedEndDate, SortByActualEndDate:
		return f
	}
	return SortByCreatedAt
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder returns asc only when asked for explicitly.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// sortRows orders rows in place. Missing dates sort last in both directions;
// ties fall back to the job id.
func sortRows(rows []Row, field SortField, order SortOrder) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Job, rows[j].Job
		var c int
		switch field {
		case SortByJobNumber:
			c = strings.Compare(a.JobNumber, b.JobNumber)
		case SortByStatus:
			c = strings.Compare(string(a.Status), string(b.Status))
		case SortByUpdatedAt:
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		case SortByStartDate, SortByEstimatedEndDate, SortByActualEndDate:
			n, final := compareNullable(nullableTime(a, field), nullableTime(b, field))
			if final {
				return n < 0
			}
			c = n
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if order == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func nullableTime(job entities.Job, field SortField) *time.Time {
	switch field {
	case SortByStartDate:
		return job.StartDate
	case SortByEstimatedEndDate:
		return job.EstimatedEndDate
	case SortByActualEndDate:
		return job.ActualEndDate
	}
	return nil
}

// compareNullable compares two optional times. When exactly one side is nil
// the result is final (nil last) regardless of sort order.
func compareNullable(a, b *time.Time) (int, bool) {
	switch {
	case a == nil && b == nil:
		return 0, false
	case a == nil:
		return 1, true
	case b == nil:
		return -1, true
	}
	return a.Compare(*b), false
}
