package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"

	"github.com/genzipher/grader/internal/environment"
	"github.com/genzipher/grader/internal/judge"
	"github.com/genzipher/grader/internal/languages"
)

type feedbackRow struct {
	unit    string
	health  int // 0 - OK, 1 - Warning, 2 - Error
	message string
}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: time.Kitchen,
	})))

	cfg := environment.ReadEnvConfig()

	feedback := make([]feedbackRow, 0)

	judgeRow := ensureJudgeOk(cfg.JudgeUrl, cfg.JudgeAuthToken)
	feedback = append(feedback, judgeRow)

	if judgeRow.health != 2 {
		langRows := ensureLanguagesOk(cfg.JudgeUrl, cfg.JudgeAuthToken)
		feedback = append(feedback, langRows...)
	}

	outputFeedback(feedback)

	for _, row := range feedback {
		if row.health == 2 {
			os.Exit(1)
		}
	}
}

// ensureJudgeOk checks that the judge service answers its language listing
// and that every language in our registry is known to it.
func ensureJudgeOk(judgeUrl string, authToken string) feedbackRow {
	url := strings.TrimRight(judgeUrl, "/") + "/languages"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return feedbackRow{unit: "Judge", health: 2, message: err.Error()}
	}
	if authToken != "" {
		req.Header.Set("X-Auth-Token", authToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return feedbackRow{unit: "Judge", health: 2, message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return feedbackRow{unit: "Judge", health: 2,
			message: fmt.Sprintf("GET /languages returned %d", resp.StatusCode)}
	}

	var listed []struct {
		Id   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		return feedbackRow{unit: "Judge", health: 2,
			message: fmt.Sprintf("unparseable /languages response: %v", err)}
	}

	known := make(map[int64]bool, len(listed))
	for _, l := range listed {
		known[l.Id] = true
	}

	missing := []string{}
	for _, l := range languages.All() {
		if !known[l.ID] {
			missing = append(missing, fmt.Sprintf("%d (%s)", l.ID, l.Name))
		}
	}
	if len(missing) > 0 {
		return feedbackRow{unit: "Judge", health: 1,
			message: "judge does not list: " + strings.Join(missing, ", ")}
	}

	return feedbackRow{unit: "Judge", health: 0,
		message: fmt.Sprintf("%d languages listed", len(listed))}
}

// ensureLanguagesOk runs a hello-world program for every registry language
// through the judge and verifies stdout.
func ensureLanguagesOk(judgeUrl string, authToken string) []feedbackRow {
	client := judge.NewHttpClient(judgeUrl, authToken)

	res := make([]feedbackRow, 0)
	for _, lang := range languages.All() {
		outcome, err := client.Execute(context.Background(), judge.Request{
			SourceCode:   lang.HelloWorld,
			LanguageID:   lang.ID,
			CpuTimeLimit: 5.0,
			MemoryLimit:  128000,
		})

		row := feedbackRow{unit: lang.Name, health: 0, message: "ok"}
		switch {
		case err != nil:
			row.health = 2
			row.message = err.Error()
		case outcome.StatusID == judge.StatusCompileError:
			row.health = 2
			row.message = "hello world does not compile: " + outcome.CompileOutput
		case outcome.StatusID > judge.StatusAccepted:
			row.health = 2
			row.message = "hello world failed: " + outcome.StatusDescription
		case strings.TrimSpace(outcome.Stdout) != "hello":
			row.health = 1
			row.message = fmt.Sprintf("unexpected stdout: %q", outcome.Stdout)
		}
		res = append(res, row)
	}
	return res
}

func outputFeedback(feedback []feedbackRow) {
	okMark := color.New(color.FgGreen).Sprint("OK  ")
	warnMark := color.New(color.FgYellow).Sprint("WARN")
	errMark := color.New(color.FgRed).Sprint("ERR ")

	for _, row := range feedback {
		mark := okMark
		switch row.health {
		case 1:
			mark = warnMark
		case 2:
			mark = errMark
		}
		fmt.Printf("%s  %-30s %s\n", mark, row.unit, row.message)
	}
}
