package usecase

import (
	"sort"
	"strings"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/pkg/api"
)

func sortStages(stages []entities.JobStage) {
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].StageOrderIndex < stages[j].StageOrderIndex })
}

func sortSteps(steps []entities.JobStep) {
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].StepOrderIndex < steps[j].StepOrderIndex })
}

func sortPhotos(photos []entities.JobPhoto) {
	sort.SliceStable(photos, func(i, j int) bool { return photos[i].OrderIndex < photos[j].OrderIndex })
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// searchPage filters items by a case-insensitive substring over the fields
// returned by text and paginates the result. Master-data listings use it.
func searchPage[T any](items []T, search string, text func(T) []string, page api.PageRequest) api.Page[T] {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return api.Paginate(items, page)
	}
	matched := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range text(it) {
			if strings.Contains(strings.ToLower(field), search) {
				matched = append(matched, it)
				break
			}
		}
	}
	return api.Paginate(matched, page)
}

func sortByName[T any](items []T, name func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(name(items[i])) < strings.ToLower(name(items[j]))
	})
}
