package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DeadlineBuffer is added on top of the cpu time limit to bound the whole
// network round trip. The judge may spend wall time beyond the cpu limit
// (queueing, sandbox setup), so the transport deadline must exceed it.
const DeadlineBuffer = 2 * time.Second

type httpClient struct {
	baseUrl   string
	authToken string
	client    *http.Client
}

// NewHttpClient returns a Client that talks to a Judge0-compatible service
// over HTTP. baseUrl is e.g. "http://judge0-server:2358". An empty authToken
// disables the X-Auth-Token header.
func NewHttpClient(baseUrl string, authToken string) Client {
	return &httpClient{
		baseUrl:   strings.TrimRight(baseUrl, "/"),
		authToken: authToken,
		client:    &http.Client{},
	}
}

// requestDeadline bounds one network round trip for a given cpu time limit.
func requestDeadline(cpuTimeLimit float64) time.Duration {
	return time.Duration(cpuTimeLimit*float64(time.Second)) + DeadlineBuffer
}

// wire shape of a synchronous (wait=true) Judge0 submission response
type submissionResp struct {
	Status *struct {
		Id          int64  `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
}

func (c *httpClient) Execute(ctx context.Context, req Request) (*Outcome, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal judge request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestDeadline(req.CpuTimeLimit))
	defer cancel()

	url := c.baseUrl + "/submissions?wait=true"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build judge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("X-Auth-Token", c.authToken)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		slog.Error("judge request failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("judge returned unexpected status", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: http status %d", ErrUnreachable, resp.StatusCode)
	}

	var wire submissionResp
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		slog.Error("judge response is not valid json", "url", url, "error", err)
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnreachable, err)
	}
	if wire.Status == nil {
		return nil, fmt.Errorf("%w: response carries no status", ErrUnreachable)
	}

	out := &Outcome{
		StatusID:          wire.Status.Id,
		StatusDescription: wire.Status.Description,
	}
	if wire.Stdout != nil {
		out.Stdout = *wire.Stdout
	}
	if wire.Stderr != nil {
		out.Stderr = *wire.Stderr
	}
	if wire.CompileOutput != nil {
		out.CompileOutput = *wire.CompileOutput
	}
	return out, nil
}
