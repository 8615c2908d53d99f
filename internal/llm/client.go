// Package llm wraps the generative text API behind a one-method client
// interface so the enrichment stage can be driven by a stub in tests.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client is the minimal contract the pipeline needs: submit a prompt,
// receive a text completion or an error.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SafetyError reports a request blocked by the API's content filters.
// It carries the prompt feedback payload for diagnostic logging.
type SafetyError struct {
	BlockReason string
	Ratings     []string
}

func (e *SafetyError) Error() string {
	if len(e.Ratings) == 0 {
		return fmt.Sprintf("request blocked by safety filter: %s", e.BlockReason)
	}
	return fmt.Sprintf("request blocked by safety filter: %s (%s)", e.BlockReason, strings.Join(e.Ratings, ", "))
}

// Feedback renders the safety payload for log output.
func (e *SafetyError) Feedback() string {
	parts := []string{"block_reason=" + e.BlockReason}
	parts = append(parts, e.Ratings...)
	return strings.Join(parts, " ")
}
