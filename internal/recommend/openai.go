// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package recommend

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// systemPrompt pins the model to the recommendation task.
const systemPrompt = "You are a knowledgeable manhwa librarian. Based on the reader's " +
	"history and preferences, recommend two or three series they have not read yet. " +
	"For each, give the title and one sentence on why it fits. Keep the whole answer short."

// OpenAIGenerator implements [Generator] over the OpenAI chat-completion API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator constructs a generator for the given API key and model.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Generate implements [Generator].
func (generator *OpenAIGenerator) Generate(ctx context.Context, readingHistory, preferences string) (string, error) {
	prompt := fmt.Sprintf("Reading history:\n%s\n\nPreferences:\n%s", readingHistory, preferences)

	response, err := generator.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: generator.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
