// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package version holds the version number of the forcekit CLI.
package version

import (
	"github.com/juju/version/v2"
)

// Current is the version of forcekit being run.
var Current = version.MustParse("0.4.2")
