// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the data structures shared across the application: TimeResult, the answer returned by the time fetcher, and Citation, a web page the model says it consulted.
package model

// Citation is one web source attached to a generated answer. Both fields are optional;
// a citation without a URI cannot be linked and is dropped before display.
type Citation struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

type TimeResult struct {
	Time    string     `json:"time"`
	Sources []Citation `json:"sources"`
}
