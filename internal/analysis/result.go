package analysis

import "resume-analyzer/internal/inference"

// Improvement is one concrete suggestion tied to a resume area.
type Improvement struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
}

// Result is the structured verdict returned to the caller. Improvements and
// Strengths are always non-nil once a Result exists; they may be empty.
type Result struct {
	Score        float64       `json:"score"`
	Improvements []Improvement `json:"improvements"`
	Strengths    []string      `json:"strengths"`
}

// ResultSchema is the structural contract the model must satisfy. It is
// declared next to Result so the two stay in lockstep; a test asserts the
// field names match the struct's JSON tags.
var ResultSchema = &inference.Schema{
	Type: inference.TypeObject,
	Properties: map[string]*inference.Schema{
		"score": {
			Type:        inference.TypeNumber,
			Description: "Overall resume score from 0 to 100",
		},
		"improvements": {
			Type: inference.TypeArray,
			Items: &inference.Schema{
				Type: inference.TypeObject,
				Properties: map[string]*inference.Schema{
					"category":   {Type: inference.TypeString},
					"suggestion": {Type: inference.TypeString},
				},
				Required: []string{"category", "suggestion"},
			},
		},
		"strengths": {
			Type:  inference.TypeArray,
			Items: &inference.Schema{Type: inference.TypeString},
		},
	},
	Required: []string{"score", "improvements", "strengths"},
}
