// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fetcher

// EmptyResultError means the provider answered but the answer was blank after trimming.
type EmptyResultError struct{}

func (*EmptyResultError) Error() string {
	return "Failed to get a valid time from the API"
}

// FetchError wraps whatever the provider call returned.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return "Failed to fetch time: " + e.Cause.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// UnknownFetchError is raised when the provider call fails without an error value,
// i.e. it panicked.
type UnknownFetchError struct {
	Value any
}

func (*UnknownFetchError) Error() string {
	return "An unknown error occurred while fetching time."
}
