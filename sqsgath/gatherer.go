package sqsgath

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/genzipher/grader/api"
	"github.com/genzipher/grader/internal/grader"
)

type sqsResultGatherer struct {
	sqsClient *sqs.Client
	queueUrl  string
	submUuid  string
}

func (s *sqsResultGatherer) StartGrading(numCases int) {
	s.send(api.NewGradeStart(s.submUuid, numCases))
}

func (s *sqsResultGatherer) ReachCase(num int, input string) {
	s.send(api.NewCaseReach(s.submUuid, num, input))
}

func (s *sqsResultGatherer) FinishCase(num int, passed bool) {
	s.send(api.NewCaseFinish(s.submUuid, num, passed))
}

func (s *sqsResultGatherer) FinishGrading(v grader.Verdict) {
	s.send(api.NewGradeFinish(s.submUuid, v.Correct, v.Message))
}
