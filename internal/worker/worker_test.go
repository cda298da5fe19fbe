package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/require"

	"github.com/genzipher/grader/api"
	"github.com/genzipher/grader/internal/grader"
	"github.com/genzipher/grader/internal/judge"
)

type fakeSqs struct {
	deleted []string
}

func (f *fakeSqs) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSqs) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

type countingJudge struct {
	calls int
}

func (c *countingJudge) Execute(ctx context.Context, req judge.Request) (*judge.Outcome, error) {
	c.calls++
	return &judge.Outcome{StatusID: judge.StatusAccepted, Stdout: "ok"}, nil
}

func gradeMsg(t *testing.T, submUuid string, receipt string) types.Message {
	t.Helper()
	body, err := json.Marshal(api.GradeReq{
		SubmUuid:   submUuid,
		Code:       "print('ok')",
		TestCases:  `[{"input": "", "output": "ok"}]`,
		TimeLimSec: 1.0,
		MemLimKiB:  128000,
	})
	require.NoError(t, err)
	return types.Message{
		Body:          aws.String(string(body)),
		ReceiptHandle: aws.String(receipt),
	}
}

func newTestWorker(sqsClient SqsApi, j judge.Client, verdicts *[]grader.Verdict) *Worker {
	factory := func(submUuid string, resQueueUrl string) grader.Progress {
		return &verdictRecorder{sink: verdicts}
	}
	return New(sqsClient, "https://sqs.example/queue", grader.New(j), factory, 2)
}

type verdictRecorder struct {
	grader.NopProgress
	sink *[]grader.Verdict
}

func (r *verdictRecorder) FinishGrading(v grader.Verdict) {
	*r.sink = append(*r.sink, v)
}

func TestHandleGradesAndDeletes(t *testing.T) {
	fake := &fakeSqs{}
	j := &countingJudge{}
	var verdicts []grader.Verdict
	w := newTestWorker(fake, j, &verdicts)

	w.handle(context.Background(), gradeMsg(t, "subm-1", "r1"))

	require.Equal(t, 1, j.calls)
	require.Len(t, verdicts, 1)
	require.True(t, verdicts[0].Correct)
	require.Equal(t, []string{"r1"}, fake.deleted)
}

func TestRedeliveryIsIgnored(t *testing.T) {
	fake := &fakeSqs{}
	j := &countingJudge{}
	var verdicts []grader.Verdict
	w := newTestWorker(fake, j, &verdicts)

	w.handle(context.Background(), gradeMsg(t, "subm-1", "r1"))
	w.handle(context.Background(), gradeMsg(t, "subm-1", "r2"))

	// graded once, but both deliveries acknowledged
	require.Equal(t, 1, j.calls)
	require.Len(t, verdicts, 1)
	require.Equal(t, []string{"r1", "r2"}, fake.deleted)
}

func TestDistinctSubmissionsBothGraded(t *testing.T) {
	fake := &fakeSqs{}
	j := &countingJudge{}
	var verdicts []grader.Verdict
	w := newTestWorker(fake, j, &verdicts)

	w.handle(context.Background(), gradeMsg(t, "subm-1", "r1"))
	w.handle(context.Background(), gradeMsg(t, "subm-2", "r2"))

	require.Equal(t, 2, j.calls)
	require.Len(t, verdicts, 2)
}

func TestPoisonMessageIsDeletedWithoutGrading(t *testing.T) {
	fake := &fakeSqs{}
	j := &countingJudge{}
	var verdicts []grader.Verdict
	w := newTestWorker(fake, j, &verdicts)

	w.handle(context.Background(), types.Message{
		Body:          aws.String("not json"),
		ReceiptHandle: aws.String("r1"),
	})
	w.handle(context.Background(), types.Message{
		Body:          aws.String(`{"code": "no uuid"}`),
		ReceiptHandle: aws.String("r2"),
	})

	require.Zero(t, j.calls)
	require.Empty(t, verdicts)
	require.Equal(t, []string{"r1", "r2"}, fake.deleted)
}

func TestClaimLifecycle(t *testing.T) {
	w := newTestWorker(&fakeSqs{}, &countingJudge{}, &[]grader.Verdict{})

	require.True(t, w.claim("subm-1"))
	require.False(t, w.claim("subm-1"), "in-flight uuid must not be claimable")

	w.finish("subm-1")
	require.False(t, w.claim("subm-1"), "recently finished uuid must not be claimable")

	require.True(t, w.claim("subm-2"))
}

func TestValidate(t *testing.T) {
	w := New(&fakeSqs{}, "", grader.New(&countingJudge{}), nil, 1)
	require.Error(t, w.Validate())

	w = New(&fakeSqs{}, "https://sqs.example/queue", grader.New(&countingJudge{}), nil, 1)
	require.NoError(t, w.Validate())
}
