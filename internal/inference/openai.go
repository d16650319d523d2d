package inference

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"resume-analyzer/internal/document"
)

// OpenAIClient calls the OpenAI Chat Completions API with the document passed
// as a base64 file part and the schema enforced via json_schema response
// format.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string, attachment document.Payload, schema *Schema) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrNotInitialized
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfFile: &openai.ChatCompletionContentPartFileParam{
				File: openai.ChatCompletionContentPartFileFileParam{
					Filename: openai.String("resume.pdf"),
					FileData: openai.String("data:" + attachment.MediaType + ";base64," + attachment.Data),
				},
			},
		},
		{
			OfText: &openai.ChatCompletionContentPartTextParam{Text: prompt},
		},
	}
	messages := []openai.ChatCompletionMessageParamUnion{
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfArrayOfContentParts: parts,
				},
			},
		},
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "resume_analysis",
					Schema: toJSONSchema(schema),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRemoteInvocation, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no choices returned", ErrRemoteInvocation)
	}
	return resp.Choices[0].Message.Content, nil
}

// toJSONSchema renders the descriptor as a JSON Schema document. Strict mode
// requires additionalProperties to be declared on every object.
func toJSONSchema(s *Schema) map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": s.Type}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = toJSONSchema(prop)
		}
		out["properties"] = props
	}
	if s.Type == TypeObject {
		out["additionalProperties"] = false
	}
	if s.Items != nil {
		out["items"] = toJSONSchema(s.Items)
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}
