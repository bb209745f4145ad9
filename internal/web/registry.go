// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/0x0BSoD/moroccoTime/internal/view"
)

// Registry keeps the views opened by page loads. Evicted views are closed, which drops
// any result that arrives later.
type Registry struct {
	fetcher view.TimeFetcher
	views   *expirable.LRU[string, *view.Controller]
}

func NewRegistry(fetcher view.TimeFetcher, size int, ttl time.Duration) *Registry {
	return &Registry{
		fetcher: fetcher,
		views: expirable.NewLRU[string, *view.Controller](size, func(_ string, c *view.Controller) {
			c.Close()
		}, ttl),
	}
}

// Open creates and mounts a new view.
func (r *Registry) Open(ctx context.Context) (string, *view.Controller) {
	id := uuid.NewString()
	c := view.NewController(r.fetcher)
	r.views.Add(id, c)
	c.Mount(ctx)

	return id, c
}

func (r *Registry) Get(id string) (*view.Controller, bool) {
	return r.views.Get(id)
}

func (r *Registry) Len() int {
	return r.views.Len()
}
