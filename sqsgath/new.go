package sqsgath

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsResultGatherer streams grade result messages for one submission to
// the requester's SQS response queue.
func NewSqsResultGatherer(sqsClient *sqs.Client, submUuid string, resQueueUrl string) *sqsResultGatherer {
	return &sqsResultGatherer{
		sqsClient: sqsClient,
		queueUrl:  resQueueUrl,
		submUuid:  submUuid,
	}
}
