package entities

import "sort"

// Stage is a macro-phase of a repair job (claim, repair, billing).
// Stages are seeded once and never change afterwards.
type Stage struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	OrderIndex int    `json:"orderIndex"`
}

// StepTemplate is the reusable definition of a task inside a stage.
// (StageID, Name) is unique.
type StepTemplate struct {
	ID          string `json:"id"`
	StageID     string `json:"stageId"`
	Name        string `json:"name"`
	OrderIndex  int    `json:"orderIndex"`
	IsSkippable bool   `json:"isSkippable"`
}

// PhotoType seeds the per-job photo checklist.
type PhotoType struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	OrderIndex int    `json:"orderIndex"`
	IsRequired bool   `json:"isRequired"`
}

// WorkflowCatalog is a read-only snapshot of every workflow template.
type WorkflowCatalog struct {
	Stages        []Stage        `json:"stages"`
	StepTemplates []StepTemplate `json:"stepTemplates"`
	PhotoTypes    []PhotoType    `json:"photoTypes"`
}

// StagesOrdered returns the stages sorted by OrderIndex.
func (c WorkflowCatalog) StagesOrdered() []Stage {
	out := append([]Stage(nil), c.Stages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

// StepTemplatesFor returns the templates of one stage sorted by OrderIndex.
func (c WorkflowCatalog) StepTemplatesFor(stageID string) []StepTemplate {
	out := make([]StepTemplate, 0)
	for _, st := range c.StepTemplates {
		if st.StageID == stageID {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

// StepTemplatesByStage groups the templates by stage id, each group ordered.
func (c WorkflowCatalog) StepTemplatesByStage() map[string][]StepTemplate {
	out := make(map[string][]StepTemplate, len(c.Stages))
	for _, s := range c.Stages {
		out[s.ID] = c.StepTemplatesFor(s.ID)
	}
	return out
}

// PhotoTypesOrdered returns the photo types sorted by OrderIndex.
func (c WorkflowCatalog) PhotoTypesOrdered() []PhotoType {
	out := append([]PhotoType(nil), c.PhotoTypes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

func (c WorkflowCatalog) Stage(id string) (Stage, bool) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

func (c WorkflowCatalog) StepTemplate(id string) (StepTemplate, bool) {
	for _, st := range c.StepTemplates {
		if st.ID == id {
			return st, true
		}
	}
	return StepTemplate{}, false
}

func (c WorkflowCatalog) PhotoType(id string) (PhotoType, bool) {
	for _, pt := range c.PhotoTypes {
		if pt.ID == id {
			return pt, true
		}
	}
	return PhotoType{}, false
}
