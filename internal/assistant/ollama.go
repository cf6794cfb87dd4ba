// Package assistant forwards free-text helper queries to an external
// language-model command-line tool.
package assistant

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// Asker answers a free-text query with free text. Implementations must
// absorb failures into the reply itself: the helper page renders
// whatever comes back and never sees an error.
type Asker interface {
	Ask(ctx context.Context, query string) string
}

// OllamaClient runs a pre-installed ollama binary as an opaque
// subprocess. It holds no state between calls.
type OllamaClient struct {
	binary  string
	model   string
	timeout time.Duration
}

var _ Asker = (*OllamaClient)(nil)

// NewOllamaClient builds a client for `<binary> run <model> <query>`.
// A zero timeout leaves the call unbounded, matching the original
// behavior; a positive timeout bounds each invocation.
func NewOllamaClient(binary, model string, timeout time.Duration) *OllamaClient {
	if binary == "" {
		binary = "ollama"
	}
	if model == "" {
		model = "gemma3:270m"
	}
	return &OllamaClient{binary: binary, model: model, timeout: timeout}
}

// Ask runs the model once with the query as its sole input. Any
// process failure, including a missing binary, becomes a descriptive
// reply string.
func (c *OllamaClient) Ask(ctx context.Context, query string) string {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, "run", c.model, query)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "Error calling Ollama: " + detail
	}
	return strings.TrimSpace(stdout.String())
}
