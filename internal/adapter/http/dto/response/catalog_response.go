package response

import (
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
)

type StageResponse struct {
	ID            string                  `json:"id"`
	Code          string                  `json:"code"`
	Name          string                  `json:"name"`
	OrderIndex    int                     `json:"orderIndex"`
	StepTemplates []entities.StepTemplate `json:"stepTemplates"`
}

func FromStages(stages []usecase.StageWithSteps) []StageResponse {
	out := make([]StageResponse, 0, len(stages))
	for _, s := range stages {
		steps := s.StepTemplates
		if steps == nil {
			steps = []entities.StepTemplate{}
		}
		out = append(out, StageResponse{
			ID:            s.ID,
			Code:          s.Code,
			Name:          s.Name,
			OrderIndex:    s.OrderIndex,
			StepTemplates: steps,
		})
	}
	return out
}
