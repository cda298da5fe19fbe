package api

// GradeReq is one grade order as it travels over the submission queue.
// The web layer that accepted the submission fills it in; the worker grades
// it and streams result messages to ResSqsUrl.
type GradeReq struct {
	SubmUuid  string `json:"subm_uuid"`
	ResSqsUrl string `json:"res_sqs_url"`

	Code       string `json:"code"`
	LanguageID int64  `json:"language_id"`

	// TestCases is the challenge's raw test-case blob, passed through
	// verbatim: parsing and validation belong to the grading core.
	TestCases string `json:"test_cases"`

	TimeLimSec float64 `json:"time_lim_sec"`
	MemLimKiB  int64   `json:"mem_lim_kib"`
}
