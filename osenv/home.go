// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package osenv resolves the environment variables and filesystem
// locations used by forcekit.
package osenv

import (
	"os"
	"path/filepath"
)

const (
	// HubEnvKey is the environment variable naming the Dev Hub org to
	// use when no --hub flag is given.
	HubEnvKey = "FORCEKIT_HUB"

	// DataEnvKey overrides the directory holding forcekit's local state.
	DataEnvKey = "FORCEKIT_DATA"

	// LoggingConfigEnvKey configures the default loggo logging levels.
	LoggingConfigEnvKey = "FORCEKIT_LOGGING_CONFIG"
)

// DataHome returns the directory where forcekit keeps its local state,
// honouring $FORCEKIT_DATA and $XDG_DATA_HOME in that order.
func DataHome() string {
	if dir := os.Getenv(DataEnvKey); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "forcekit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative directory rather than guessing at
		// the platform's conventions.
		return ".forcekit"
	}
	return filepath.Join(home, ".local", "share", "forcekit")
}

// DataHomePath returns the path of the named file inside the forcekit
// data home.
func DataHomePath(names ...string) string {
	return filepath.Join(append([]string{DataHome()}, names...)...)
}
