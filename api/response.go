package api

// Non-streaming response types, used where a single complete answer is
// wanted (the one-shot CLI with --json).

// CaseResult is the classified outcome of a single test case
type CaseResult struct {
	CaseNum int  `json:"case_num"`
	Reached bool `json:"reached"`
	Passed  bool `json:"passed"`
}

// GradeResponse is a complete grading result for one submission
type GradeResponse struct {
	SubmUuid string `json:"subm_uuid"`

	Correct bool   `json:"correct"`
	Message string `json:"message"`

	NumCases    int          `json:"num_cases"`
	CaseResults []CaseResult `json:"case_results"`

	StartTime   string `json:"start_time"`
	FinishTime  string `json:"finish_time"`
	TotalTimeMs int64  `json:"total_time_ms"`
}
