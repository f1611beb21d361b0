package formfill

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/genai"
)

// GenerateRequest carries everything the gateway needs for one call.
type GenerateRequest struct {
	Model           string
	Instructions    string
	Temperature     float64
	MaxOutputTokens int
}

// Gateway is the external call boundary to the language model. The core
// performs no retries through it; a failed call is terminal for the cycle
// and the caller decides whether to resubmit. Implementations must be safe
// for concurrent use.
type Gateway interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GenaiGateway is the default Gateway backed by Google GenAI. It requests
// application/json responses, though the parser still tolerates fenced or
// prose-wrapped output.
type GenaiGateway struct {
	client *genai.Client
	log    *slog.Logger
}

// NewGenaiGateway wraps a genai client. A nil logger falls back to
// slog.Default().
func NewGenaiGateway(client *genai.Client, log *slog.Logger) *GenaiGateway {
	if log == nil {
		log = slog.Default()
	}
	return &GenaiGateway{client: client, log: log}
}

func (g *GenaiGateway) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if g.client == nil {
		return "", &ServiceError{Model: req.Model, Err: errors.New("client not initialized")}
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	temp := float32(req.Temperature)
	config.Temperature = &temp
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(req.Instructions)}, genai.RoleUser),
	}

	g.log.Debug("calling model", "model", req.Model, "prompt_length", len(req.Instructions), "temperature", req.Temperature)

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return "", &ServiceError{Model: req.Model, Err: err}
	}
	if len(resp.Candidates) == 0 {
		return "", &ServiceError{Model: req.Model, Err: errors.New("no candidates in response")}
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ServiceError{Model: req.Model, Err: errors.New("no parts in candidate content")}
	}
	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", &ServiceError{Model: req.Model, Err: errors.New("no text in first part of response")}
	}

	g.log.Debug("model responded", "model", req.Model, "response_length", len(text))
	return text, nil
}
