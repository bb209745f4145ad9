// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package llm adapts hosted text-generation services to a single request/response shape.
package llm

import "github.com/0x0BSoD/moroccoTime/internal/model"

type Request struct {
	Model     string
	Prompt    string
	WebSearch bool
}

// Response carries the raw completion text and the citations attached to the first
// candidate, if the provider reports any.
type Response struct {
	Text      string
	Citations []model.Citation
}
