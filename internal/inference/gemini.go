package inference

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"resume-analyzer/internal/document"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient calls the Gemini API with an inline document attachment and a
// declared response schema.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client against the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, attachment document.Payload, schema *Schema) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrNotInitialized
	}
	raw, err := base64.StdEncoding.DecodeString(attachment.Data)
	if err != nil {
		return "", fmt.Errorf("decode attachment: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(raw, attachment.MediaType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGeminiSchema(schema),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRemoteInvocation, err)
	}
	if resp == nil || resp.Text() == "" {
		return "", fmt.Errorf("%w: empty response", ErrRemoteInvocation)
	}
	return resp.Text(), nil
}

func toGeminiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toGeminiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Items:       toGeminiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}
	return out
}

func toGeminiType(t string) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	default:
		return genai.TypeUnspecified
	}
}
