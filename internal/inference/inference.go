package inference

import (
	"context"
	"errors"

	"resume-analyzer/internal/document"
)

var (
	// ErrNotInitialized signals a Generate call on a client that has no
	// remote credentials; no network activity is performed.
	ErrNotInitialized = errors.New("inference client not initialized")

	// ErrRemoteInvocation wraps transport and service failures from the
	// inference provider.
	ErrRemoteInvocation = errors.New("remote invocation failed")
)

// Client performs one blocking remote inference call per invocation. It does
// not retry and does not time out internally; deadline and retry policy belong
// to the caller (see WithRetry).
//
// The model's raw text is passed through untouched, compliant with the schema
// or not; discriminating the two is the normalizer's job.
type Client interface {
	Generate(ctx context.Context, prompt string, attachment document.Payload, schema *Schema) (string, error)
}

// Schema types understood by every provider.
const (
	TypeObject = "object"
	TypeArray  = "array"
	TypeString = "string"
	TypeNumber = "number"
)

// Schema is a provider-neutral declaration of the output shape the model must
// produce. Providers map it to their native structured-output format.
type Schema struct {
	Type        string
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}
