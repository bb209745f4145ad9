// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"context"
	"sync"

	"github.com/0x0BSoD/moroccoTime/internal/model"
)

type TimeFetcher interface {
	FetchTime(ctx context.Context) (model.TimeResult, error)
}

// Controller owns the state of one page view.
type Controller struct {
	fetcher TimeFetcher
	mount   sync.Once
	done    chan struct{}

	mu     sync.RWMutex
	state  State
	closed bool
}

func NewController(fetcher TimeFetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		done:    make(chan struct{}),
		state:   Loading(),
	}
}

// Mount starts the fetch. Only the first call has any effect.
func (c *Controller) Mount(ctx context.Context) {
	c.mount.Do(func() {
		go c.run(ctx)
	})
}

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)

	result, err := c.fetcher.FetchTime(ctx)
	if err != nil {
		c.dispatch(FetchFailed{Err: err})
		return
	}
	c.dispatch(FetchSucceeded{Result: result})
}

func (c *Controller) dispatch(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.state = Reduce(c.state, ev)
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Done is closed once the fetch has returned, whether or not its outcome was applied.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the fetch has returned or ctx is done.
func (c *Controller) Wait(ctx context.Context) (State, error) {
	select {
	case <-c.done:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}

// Close tears the view down. An in-flight fetch keeps running but its outcome is dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
}
