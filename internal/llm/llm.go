// Package llm defines the contract between the gateway and language model
// providers.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the provider could not be reached or refused the
// request for operational reasons (network, auth, quota).
var ErrUnavailable = errors.New("model unavailable")

// ErrBlocked indicates the provider produced no usable text because the
// request or the candidate response tripped a safety filter.
var ErrBlocked = errors.New("model output blocked")

// Responder produces a reply for a fully assembled prompt.
type Responder interface {
	Reply(ctx context.Context, prompt string) (string, error)
}
