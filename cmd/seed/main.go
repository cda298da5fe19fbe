// Sends a sample grade request to the submission queue. Useful for poking a
// deployed worker without the web layer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/genzipher/grader/api"
	"github.com/genzipher/grader/internal/environment"
	"github.com/genzipher/grader/internal/languages"
)

func main() {
	reqPath := flag.String("req", "", "path to a grade request JSON file (default: built-in sample)")
	flag.Parse()

	cfg := environment.ReadEnvConfig()
	if cfg.SubmQueueUrl == "" {
		log.Fatal("SUBM_SQS_URL is not set")
	}

	var req api.GradeReq
	if *reqPath != "" {
		data, err := os.ReadFile(*reqPath)
		panicOnError(err)
		panicOnError(json.Unmarshal(data, &req))
	} else {
		req = sampleRequest(cfg.ResQueueUrl)
	}
	if req.SubmUuid == "" {
		req.SubmUuid = uuid.New().String()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AwsRegion))
	panicOnError(err)
	sqsClient := sqs.NewFromConfig(awsCfg)

	body, err := json.Marshal(req)
	panicOnError(err)

	_, err = sqsClient.SendMessage(context.TODO(), &sqs.SendMessageInput{
		QueueUrl:    aws.String(cfg.SubmQueueUrl),
		MessageBody: aws.String(string(body)),
	})
	panicOnError(err)

	fmt.Printf("sent grade request %s\n", req.SubmUuid)
}

func sampleRequest(resQueueUrl string) api.GradeReq {
	return api.GradeReq{
		SubmUuid:   uuid.New().String(),
		ResSqsUrl:  resQueueUrl,
		Code:       "a, b = map(int, input().split())\nprint(a + b)",
		LanguageID: languages.DefaultID,
		TestCases:  `[{"input": "1 2", "output": "3"}, {"input": "10 -4", "output": "6"}]`,
		TimeLimSec: 1.0,
		MemLimKiB:  128000,
	}
}

func panicOnError(err error) {
	if err != nil {
		log.Panic(err)
	}
}
