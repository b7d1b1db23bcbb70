// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hub supplies the forcekit commands for managing the locally
// stored Dev Hub orgs and the current-hub selection.
package hub
