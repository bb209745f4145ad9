// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view holds the page state machine: a view starts Loading, fetches the time
// once, and settles in Error or Ready for the rest of its life.
package view

import "github.com/0x0BSoD/moroccoTime/internal/model"

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

const unknownErrorMessage = "An unknown error occurred."

// State is a tagged union. Only the fields belonging to the active phase are set.
type State struct {
	phase   Phase
	message string
	result  model.TimeResult
}

func Loading() State {
	return State{phase: PhaseLoading}
}

func Failed(message string) State {
	return State{phase: PhaseError, message: message}
}

func Ready(result model.TimeResult) State {
	return State{phase: PhaseReady, result: result}
}

func (s State) Phase() Phase {
	return s.phase
}

// Message is the error text; empty unless the phase is PhaseError.
func (s State) Message() string {
	return s.message
}

func (s State) Result() (model.TimeResult, bool) {
	return s.result, s.phase == PhaseReady
}

type Event interface {
	event()
}

type FetchSucceeded struct {
	Result model.TimeResult
}

type FetchFailed struct {
	Err error
}

func (FetchSucceeded) event() {}
func (FetchFailed) event() {}

// Reduce applies ev to s. Error and Ready are terminal, so only a Loading state moves.
func Reduce(s State, ev Event) State {
	if s.phase != PhaseLoading {
		return s
	}

	switch ev := ev.(type) {
	case FetchSucceeded:
		return Ready(ev.Result)
	case FetchFailed:
		return Failed(errorMessage(ev.Err))
	default:
		return s
	}
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return unknownErrorMessage
	}
	return err.Error()
}
