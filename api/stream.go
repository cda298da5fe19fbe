package api

// MsgType is a message type for streaming grade results
type MsgType string

// Streaming message type constants
const (
	GradeStartMsg  MsgType = "grade_start"
	CaseReachMsg   MsgType = "case_reach"
	CaseFinishMsg  MsgType = "case_finish"
	GradeFinishMsg MsgType = "grade_finish"
)

// Output size constraints for streamed text
const (
	MaxOutputHeight = 40
	MaxOutputWidth  = 80
)

// Header is the common header for all streaming result messages
type Header struct {
	SubmUuid string  `json:"subm_uuid"`
	MsgType  MsgType `json:"msg_type"`
}

// GradeStart message sent when grading begins
type GradeStart struct {
	Header
	NumCases int `json:"num_cases"`
}

// CaseReach message sent when a test case is dispatched to the judge
type CaseReach struct {
	Header
	CaseNum int    `json:"case_num"`
	Input   string `json:"input"`
}

// CaseFinish message sent when a test case outcome is classified
type CaseFinish struct {
	Header
	CaseNum int  `json:"case_num"`
	Passed  bool `json:"passed"`
}

// GradeFinish message sent with the terminal verdict
type GradeFinish struct {
	Header
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

func NewHeader(submUuid string, msgType MsgType) Header {
	return Header{
		SubmUuid: submUuid,
		MsgType:  msgType,
	}
}

func NewGradeStart(submUuid string, numCases int) GradeStart {
	return GradeStart{
		Header:   NewHeader(submUuid, GradeStartMsg),
		NumCases: numCases,
	}
}

func NewCaseReach(submUuid string, caseNum int, input string) CaseReach {
	return CaseReach{
		Header:  NewHeader(submUuid, CaseReachMsg),
		CaseNum: caseNum,
		Input:   TrimToRect(input, MaxOutputHeight, MaxOutputWidth),
	}
}

func NewCaseFinish(submUuid string, caseNum int, passed bool) CaseFinish {
	return CaseFinish{
		Header:  NewHeader(submUuid, CaseFinishMsg),
		CaseNum: caseNum,
		Passed:  passed,
	}
}

func NewGradeFinish(submUuid string, correct bool, message string) GradeFinish {
	return GradeFinish{
		Header:  NewHeader(submUuid, GradeFinishMsg),
		Correct: correct,
		Message: TrimToRect(message, MaxOutputHeight, MaxOutputWidth),
	}
}
