// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package packaging supplies the forcekit commands for managing
// first-generation package versions on a Dev Hub org: submitting a
// version upload, reporting on the asynchronous creation request and
// listing packages and their versions.
package packaging

import (
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("forcekit.cmd.packaging")
