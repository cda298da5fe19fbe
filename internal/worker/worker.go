package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/genzipher/grader/api"
	"github.com/genzipher/grader/internal/grader"
)

// SqsApi is the slice of the SQS client the worker uses.
type SqsApi interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// ProgressFactory builds the result sink for one submission.
type ProgressFactory func(submUuid string, resQueueUrl string) grader.Progress

// seenTTL is how long a finished submission uuid keeps swallowing SQS
// redeliveries of the same grade request.
const seenTTL = 10 * time.Minute

// Worker pulls grade requests off the submission queue and grades them.
// Distinct submissions run concurrently up to a limit; the test cases inside
// one submission stay strictly sequential in the grading core.
type Worker struct {
	sqsClient   SqsApi
	queueUrl    string
	grader      *grader.Grader
	newProgress ProgressFactory
	concurrency int

	// at-least-once delivery: uuid -> finish time (zero while in flight)
	seen *xsync.MapOf[string, time.Time]
}

func New(sqsClient SqsApi, queueUrl string, g *grader.Grader, newProgress ProgressFactory, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		sqsClient:   sqsClient,
		queueUrl:    queueUrl,
		grader:      g,
		newProgress: newProgress,
		concurrency: concurrency,
		seen:        xsync.NewMapOf[string, time.Time](),
	}
}

// Run long-polls the submission queue until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.concurrency)

	for {
		select {
		case <-ctx.Done():
			_ = eg.Wait()
			return ctx.Err()
		default:
		}

		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(w.queueUrl),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     5,
		})
		if err != nil {
			if ctx.Err() != nil {
				_ = eg.Wait()
				return ctx.Err()
			}
			slog.Error("failed to receive messages", "error", err)
			time.Sleep(1 * time.Second)
			continue
		}

		for _, message := range output.Messages {
			msg := message
			eg.Go(func() error {
				w.handle(ctx, msg)
				return nil
			})
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg types.Message) {
	var req api.GradeReq
	if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &req); err != nil {
		slog.Error("failed to unmarshal grade request", "error", err)
		w.deleteMessage(ctx, msg) // poison message, do not redeliver forever
		return
	}
	if req.SubmUuid == "" {
		slog.Error("grade request carries no submission uuid")
		w.deleteMessage(ctx, msg)
		return
	}

	if !w.claim(req.SubmUuid) {
		slog.Info("duplicate delivery ignored", "subm_uuid", req.SubmUuid)
		w.deleteMessage(ctx, msg)
		return
	}

	slog.Info("grading submission", "subm_uuid", req.SubmUuid, "language_id", req.LanguageID)

	prog := w.newProgress(req.SubmUuid, req.ResSqsUrl)
	verdict := w.grader.Grade(ctx,
		grader.Submission{Code: req.Code, LanguageID: req.LanguageID},
		grader.Challenge{TestCases: req.TestCases, TimeLimSec: req.TimeLimSec, MemLimKiB: req.MemLimKiB},
		prog,
	)

	slog.Info("submission graded",
		"subm_uuid", req.SubmUuid, "correct", verdict.Correct)

	w.finish(req.SubmUuid)
	w.deleteMessage(ctx, msg)
}

// claim marks the uuid in flight. It returns false when the uuid is already
// being graded or finished recently, which is how redeliveries die.
func (w *Worker) claim(submUuid string) bool {
	now := time.Now()
	claimed := false
	w.seen.Compute(submUuid, func(finished time.Time, loaded bool) (time.Time, bool) {
		if loaded && (finished.IsZero() || now.Sub(finished) < seenTTL) {
			return finished, false
		}
		claimed = true
		return time.Time{}, false
	})
	return claimed
}

func (w *Worker) finish(submUuid string) {
	w.seen.Store(submUuid, time.Now())

	// sweep expired entries so the map does not grow without bound
	now := time.Now()
	w.seen.Range(func(key string, finished time.Time) bool {
		if !finished.IsZero() && now.Sub(finished) >= seenTTL {
			w.seen.Delete(key)
		}
		return true
	})
}

func (w *Worker) deleteMessage(ctx context.Context, msg types.Message) {
	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.queueUrl),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		slog.Error("failed to delete message", "error", err)
	}
}

// Validate checks the worker configuration before Run.
func (w *Worker) Validate() error {
	if w.queueUrl == "" {
		return fmt.Errorf("submission queue url is not configured")
	}
	if w.grader == nil {
		return fmt.Errorf("grader is not configured")
	}
	return nil
}
