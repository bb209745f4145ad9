// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package llm

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/ollama/ollama/api"
	"github.com/pkg/errors"
)

type OllamaGenerator struct {
	client *api.Client
	mu     sync.Mutex
}

// NewOllamaGenerator accepts either a bare host:port or a full URL.
func NewOllamaGenerator(baseURL string) (*OllamaGenerator, error) {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid ollama base url %q", baseURL)
	}

	return &OllamaGenerator{
		client: api.NewClient(u, &http.Client{}),
	}, nil
}

func (o *OllamaGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var chunks []string
	err := o.client.Generate(ctx, &api.GenerateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
	}, func(resp api.GenerateResponse) error {
		chunks = append(chunks, resp.Response)
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	return Response{Text: strings.Join(chunks, "")}, nil
}
