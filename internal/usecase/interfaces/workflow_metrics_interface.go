package interfaces

// IWorkflowMetrics records business events of the job workflow.
type IWorkflowMetrics interface {
	JobCreated(status string)
	StepTransitioned(from, to string)
	StageAdvanced(stageCode string, finished bool)
}

// NopWorkflowMetrics discards every event.
type NopWorkflowMetrics struct{}

func (NopWorkflowMetrics) JobCreated(string)               {}
func (NopWorkflowMetrics) StepTransitioned(string, string) {}
func (NopWorkflowMetrics) StageAdvanced(string, bool)      {}
