// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package llm

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"google.golang.org/genai"

	"github.com/0x0BSoD/moroccoTime/internal/model"
)

type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator creates a generator backed by the Gemini API. baseURL is only
// needed to point the client at a proxy or a test server.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string) (*GeminiGenerator, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	return &GeminiGenerator{client: client}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	var config *genai.GenerateContentConfig
	if req.WebSearch {
		config = &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Text:      resp.Text(),
		Citations: groundingCitations(resp),
	}, nil
}

func groundingCitations(resp *genai.GenerateContentResponse) []model.Citation {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	// Chunks grounded on something other than the web keep their slot with an empty
	// URI so the renderer drops them.
	return lo.Map(resp.Candidates[0].GroundingMetadata.GroundingChunks, func(chunk *genai.GroundingChunk, _ int) model.Citation {
		if chunk == nil || chunk.Web == nil {
			return model.Citation{}
		}
		return model.Citation{URI: chunk.Web.URI, Title: chunk.Web.Title}
	})
}
