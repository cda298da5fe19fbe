package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"

	"github.com/genzipher/grader/internal/behave"
	"github.com/genzipher/grader/internal/environment"
	"github.com/genzipher/grader/internal/grader"
	"github.com/genzipher/grader/internal/judge"
	"github.com/genzipher/grader/internal/languages"
	"github.com/genzipher/grader/internal/natsgath"
	"github.com/genzipher/grader/internal/respbuilder"
	"github.com/genzipher/grader/internal/termgath"
	"github.com/genzipher/grader/internal/worker"
	"github.com/genzipher/grader/sqsgath"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cmd := &cli.Command{
		Name:  "grader",
		Usage: "grade submissions against challenge test cases via an external judge",
		Commands: []*cli.Command{
			serveCmd(),
			gradeCmd(),
			behaveCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("grader exited", "error", err)
		os.Exit(1)
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "receive grade requests from the submission queue",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := environment.ReadEnvConfig()

			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AwsRegion))
			if err != nil {
				return fmt.Errorf("unable to load aws config: %w", err)
			}
			sqsClient := sqs.NewFromConfig(awsCfg)

			var nc *nats.Conn
			if cfg.NatsUrl != "" {
				nc, err = nats.Connect(cfg.NatsUrl)
				if err != nil {
					return fmt.Errorf("failed to connect to nats: %w", err)
				}
				defer nc.Close()
			}

			g := grader.New(judge.NewHttpClient(cfg.JudgeUrl, cfg.JudgeAuthToken))

			newProgress := func(submUuid string, resQueueUrl string) grader.Progress {
				if resQueueUrl != "" {
					return sqsgath.NewSqsResultGatherer(sqsClient, submUuid, resQueueUrl)
				}
				if nc != nil {
					return natsgath.New(nc, submUuid, "grader.results."+submUuid)
				}
				return grader.NopProgress{}
			}

			w := worker.New(sqsClient, cfg.SubmQueueUrl, g, newProgress, cfg.Concurrency)
			if err := w.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			slog.Info("worker started",
				"queue", cfg.SubmQueueUrl, "judge", cfg.JudgeUrl, "concurrency", cfg.Concurrency)
			err = w.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func gradeCmd() *cli.Command {
	return &cli.Command{
		Name:  "grade",
		Usage: "grade a local source file against a local test-case file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Usage: "path to the submission source file", Required: true},
			&cli.StringFlag{Name: "tests", Usage: "path to the test-case JSON file", Required: true},
			&cli.Int64Flag{Name: "lang", Usage: "judge language id", Value: languages.DefaultID},
			&cli.Float64Flag{Name: "time", Usage: "cpu time limit in seconds", Value: grader.DefaultTimeLimSec},
			&cli.Int64Flag{Name: "mem", Usage: "memory limit in KiB", Value: grader.DefaultMemLimKiB},
			&cli.BoolFlag{Name: "json", Usage: "print a single JSON response instead of progress"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := environment.ReadEnvConfig()

			langId := cmd.Int64("lang")
			if !languages.Supported(langId) {
				return fmt.Errorf("language id %d is not enabled", langId)
			}

			code, err := os.ReadFile(cmd.String("code"))
			if err != nil {
				return fmt.Errorf("failed to read source file: %w", err)
			}
			tests, err := os.ReadFile(cmd.String("tests"))
			if err != nil {
				return fmt.Errorf("failed to read test-case file: %w", err)
			}

			subm := grader.Submission{Code: string(code), LanguageID: langId}
			ch := grader.Challenge{
				TestCases:  string(tests),
				TimeLimSec: cmd.Float64("time"),
				MemLimKiB:  cmd.Int64("mem"),
			}

			g := grader.New(judge.NewHttpClient(cfg.JudgeUrl, cfg.JudgeAuthToken))

			if cmd.Bool("json") {
				builder := respbuilder.New(uuid.New().String())
				g.Grade(ctx, subm, ch, builder)
				out, err := json.MarshalIndent(builder.Response(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			v := g.Grade(ctx, subm, ch, termgath.New())
			if !v.Correct {
				os.Exit(1)
			}
			return nil
		},
	}
}

func behaveCmd() *cli.Command {
	return &cli.Command{
		Name:  "behave",
		Usage: "run a behaviour scenario file against the judge",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "path to the scenario TOML file", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := environment.ReadEnvConfig()

			cases, err := behave.Parse(cmd.String("file"))
			if err != nil {
				return err
			}

			g := grader.New(judge.NewHttpClient(cfg.JudgeUrl, cfg.JudgeAuthToken))
			return behave.Run(ctx, g, cases)
		},
	}
}
