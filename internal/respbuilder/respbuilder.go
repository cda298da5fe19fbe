package respbuilder

import (
	"time"

	"github.com/genzipher/grader/api"
	"github.com/genzipher/grader/internal/grader"
)

// Builder gathers grading milestones and builds a complete api.GradeResponse.
type Builder struct {
	submUuid string

	started  time.Time
	finished *time.Time

	numCases    int
	caseResults []api.CaseResult

	verdict grader.Verdict
}

func New(submUuid string) *Builder {
	return &Builder{
		submUuid: submUuid,
		started:  time.Now(),
	}
}

// StartGrading implements grader.Progress.
func (b *Builder) StartGrading(numCases int) {
	b.numCases = numCases
}

// ReachCase implements grader.Progress.
func (b *Builder) ReachCase(num int, input string) {
	b.caseResults = append(b.caseResults, api.CaseResult{CaseNum: num, Reached: true})
}

// FinishCase implements grader.Progress.
func (b *Builder) FinishCase(num int, passed bool) {
	for i := range b.caseResults {
		if b.caseResults[i].CaseNum == num {
			b.caseResults[i].Passed = passed
			return
		}
	}
}

// FinishGrading implements grader.Progress.
func (b *Builder) FinishGrading(v grader.Verdict) {
	now := time.Now()
	b.finished = &now
	b.verdict = v
}

// Response builds the final response. Valid once FinishGrading has fired.
func (b *Builder) Response() api.GradeResponse {
	finished := time.Now()
	if b.finished != nil {
		finished = *b.finished
	}
	return api.GradeResponse{
		SubmUuid:    b.submUuid,
		Correct:     b.verdict.Correct,
		Message:     b.verdict.Message,
		NumCases:    b.numCases,
		CaseResults: b.caseResults,
		StartTime:   b.started.Format(time.RFC3339),
		FinishTime:  finished.Format(time.RFC3339),
		TotalTimeMs: finished.Sub(b.started).Milliseconds(),
	}
}
