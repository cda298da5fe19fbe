package grader

// Progress receives grading milestones as they happen. Implementations
// stream them to the submitter (queue, terminal) or collect them into a
// single response. Calls arrive strictly in order from a single goroutine.
type Progress interface {
	StartGrading(numCases int)
	ReachCase(num int, input string)
	FinishCase(num int, passed bool)
	FinishGrading(v Verdict)
}

// NopProgress discards all milestones.
type NopProgress struct{}

func (NopProgress) StartGrading(numCases int)       {}
func (NopProgress) ReachCase(num int, input string) {}
func (NopProgress) FinishCase(num int, passed bool) {}
func (NopProgress) FinishGrading(v Verdict)         {}
