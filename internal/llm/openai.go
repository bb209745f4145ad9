// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator creates a generator backed by any OpenAI-compatible API.
// Set baseURL to a non-empty string to point at another server (a search-enabled
// model host, LM Studio, llama.cpp, etc.); leave empty for api.openai.com.
func NewOpenAIGenerator(baseURL, apiKey string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
	}
}

// Generate sends one chat completion. The chat API exposes no structured citations,
// so the response never carries any; web search, when the model supports it, happens
// on the provider side.
func (o *OpenAIGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return Response{}, err
	}

	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("empty response from model %q", req.Model)
	}

	return Response{Text: resp.Choices[0].Message.Content}, nil
}
