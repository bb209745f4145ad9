// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"strings"

	"github.com/samber/lo"

	"github.com/0x0BSoD/moroccoTime/internal/model"
)

// SplitTime splits "10:30 AM" into "10:30" and "AM". Without a space the whole string
// is the clock and period is empty.
func SplitTime(t string) (clock, period string) {
	clock, period, _ = strings.Cut(t, " ")
	return clock, period
}

// ValidSources keeps the citations that can be linked, in their original order.
func ValidSources(sources []model.Citation) []model.Citation {
	return lo.Filter(sources, func(c model.Citation, _ int) bool {
		return c.URI != ""
	})
}
