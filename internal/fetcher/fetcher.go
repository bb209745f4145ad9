// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fetcher asks a text-generation provider for the current time in Morocco.
package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/0x0BSoD/moroccoTime/internal/llm"
	"github.com/0x0BSoD/moroccoTime/internal/model"
)

const timePrompt = "What is the current time in Morocco? Only respond with the time and period (e.g., 10:30 AM), nothing else."

type Generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Response, error)
}

type Reporter interface {
	Notify(msg string)
}

type Fetcher struct {
	generator Generator
	reporter  Reporter

	model   string
	timeout time.Duration
}

// New returns a Fetcher. reporter may be nil.
func New(
	generator Generator,
	reporter Reporter,
	modelName string,
	timeout time.Duration,
) *Fetcher {
	return &Fetcher{
		generator: generator,
		reporter:  reporter,
		model:     modelName,
		timeout:   timeout,
	}
}

// FetchTime performs exactly one provider call. There are no retries.
func (f *Fetcher) FetchTime(ctx context.Context) (result model.TimeResult, err error) {
	defer func() {
		if err != nil {
			f.reportFailure(err)
		}
	}()

	resp, err := f.generate(ctx)
	if err != nil {
		return model.TimeResult{}, err
	}

	t := strings.TrimSpace(resp.Text)
	if t == "" {
		return model.TimeResult{}, &EmptyResultError{}
	}

	sources := resp.Citations
	if sources == nil {
		sources = []model.Citation{}
	}

	return model.TimeResult{Time: t, Sources: sources}, nil
}

func (f *Fetcher) generate(ctx context.Context) (resp llm.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = llm.Response{}, &UnknownFetchError{Value: r}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err = f.generator.Generate(ctx, llm.Request{
		Model:     f.model,
		Prompt:    timePrompt,
		WebSearch: true,
	})
	if err != nil {
		return llm.Response{}, &FetchError{Cause: err}
	}

	return resp, nil
}

func (f *Fetcher) reportFailure(err error) {
	slog.Error("failed to fetch time", "model", f.model, "err", err)

	if f.reporter != nil {
		f.reporter.Notify(fmt.Sprintf("morocco time fetch failed (model %s): %v", f.model, err))
	}
}
