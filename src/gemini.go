package main

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-2.5-flash"
)

const cluePrompt = `Write a single short crossword clue for the word %q.
Respond with the clue text only: no numbering, no quotes, no markdown,
and do not use the word itself in the clue.`

// GeminiClient wraps the Google GenAI client for VertexAI. It writes
// clues for column words that are missing from the dictionary.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}

// WriteClue asks the model for a one-line clue for word.
func (g *GeminiClient) WriteClue(ctx context.Context, word string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(cluePrompt, word)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.7)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	clue := strings.TrimSpace(resp.Text())
	if clue == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return clue, nil
}
