package natsgath

import (
	"github.com/nats-io/nats.go"

	"github.com/genzipher/grader/api"
	"github.com/genzipher/grader/internal/grader"
)

type natsGatherer struct {
	nc       *nats.Conn
	inbox    string
	submUuid string
}

// New creates a NATS gatherer that streams grade result messages to the
// given inbox subject.
func New(nc *nats.Conn, submUuid string, inbox string) *natsGatherer {
	return &natsGatherer{
		nc:       nc,
		inbox:    inbox,
		submUuid: submUuid,
	}
}

func (s *natsGatherer) StartGrading(numCases int) {
	s.send(api.NewGradeStart(s.submUuid, numCases))
}

func (s *natsGatherer) ReachCase(num int, input string) {
	s.send(api.NewCaseReach(s.submUuid, num, input))
}

func (s *natsGatherer) FinishCase(num int, passed bool) {
	s.send(api.NewCaseFinish(s.submUuid, num, passed))
}

func (s *natsGatherer) FinishGrading(v grader.Verdict) {
	s.send(api.NewGradeFinish(s.submUuid, v.Correct, v.Message))
}
