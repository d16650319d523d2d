package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Normalize turns raw model text into a validated Result. Steps, in order:
// code-fence cleanup, JSON parse (ErrMalformedResponse), structural checks
// (ErrSchemaViolation), score clamping to [0,100].
func Normalize(raw string) (Result, error) {
	cleaned := stripFences(raw)

	var parsed struct {
		Score        *float64      `json:"score"`
		Improvements []Improvement `json:"improvements"`
		Strengths    []string      `json:"strengths"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Result{}, fmt.Errorf("%w: field %q has type %s", ErrSchemaViolation, typeErr.Field, typeErr.Value)
		}
		return Result{}, &MalformedResponseError{Raw: raw, Cause: err}
	}

	if parsed.Score == nil {
		return Result{}, fmt.Errorf("%w: missing score", ErrSchemaViolation)
	}
	if parsed.Improvements == nil {
		return Result{}, fmt.Errorf("%w: missing improvements", ErrSchemaViolation)
	}
	if parsed.Strengths == nil {
		return Result{}, fmt.Errorf("%w: missing strengths", ErrSchemaViolation)
	}

	return Result{
		Score:        clampScore(*parsed.Score),
		Improvements: parsed.Improvements,
		Strengths:    parsed.Strengths,
	}, nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// stripFences removes a surrounding fenced code block, with or without a
// language tag. Plain text passes through unchanged; models sometimes wrap
// JSON in fences despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
