// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging

import (
	"github.com/juju/clock"
)

var SOQLQuote = soqlQuote

// PatchClock lets tests control the submission timestamp.
func PatchClock(c *Client, clk clock.Clock) {
	c.clock = clk
}
