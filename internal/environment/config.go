package environment

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	// Judge0-compatible judge service
	JudgeUrl       string
	JudgeAuthToken string

	// queue worker
	SubmQueueUrl string
	ResQueueUrl  string
	AwsRegion    string
	NatsUrl      string
	Concurrency  int
}

const (
	defaultJudgeUrl    = "http://judge0-server:2358"
	defaultAwsRegion   = "eu-central-1"
	defaultConcurrency = 4
)

// ReadEnvConfig loads configuration from the environment, with a best-effort
// .env file on top. Only the queue URLs have no defaults; the worker refuses
// to start without them, the one-shot CLI never needs them.
func ReadEnvConfig() *EnvConfig {
	_ = godotenv.Load()

	cfg := &EnvConfig{
		JudgeUrl:       getenvDefault("JUDGE_URL", defaultJudgeUrl),
		JudgeAuthToken: os.Getenv("JUDGE_AUTH_TOKEN"),
		SubmQueueUrl:   os.Getenv("SUBM_SQS_URL"),
		ResQueueUrl:    os.Getenv("RES_SQS_URL"),
		AwsRegion:      getenvDefault("AWS_REGION", defaultAwsRegion),
		NatsUrl:        os.Getenv("NATS_URL"),
		Concurrency:    defaultConcurrency,
	}

	if v := os.Getenv("GRADER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}

	return cfg
}

func getenvDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
