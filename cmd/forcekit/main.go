// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"os"

	"github.com/forcekit/forcekit/cmd/forcekit/commands"
)

func main() {
	os.Exit(commands.Main(os.Args))
}
