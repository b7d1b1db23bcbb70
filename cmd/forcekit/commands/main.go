// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package commands assembles the forcekit super command from the
// individual command packages.
package commands

import (
	"fmt"
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"

	"github.com/forcekit/forcekit/cmd/forcekit/hub"
	"github.com/forcekit/forcekit/cmd/forcekit/packaging"
	"github.com/forcekit/forcekit/osenv"
	"github.com/forcekit/forcekit/version"
)

var logger = loggo.GetLogger("forcekit.cmd")

const forcekitDoc = `
forcekit manages first-generation Salesforce packages from the command
line: it uploads new package versions through a Dev Hub org, follows
the asynchronous creation requests the uploads produce and lists the
packages and versions the org knows about.

Connection details for Dev Hub orgs are stored locally; see add-hub.
`

// NewForcekitCommand returns the root forcekit command with all
// subcommands registered.
func NewForcekitCommand() cmd.Command {
	forcekit := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "forcekit",
		Doc:     forcekitDoc,
		Version: version.Current.String(),
		Log:     &cmd.Log{DefaultConfig: os.Getenv(osenv.LoggingConfigEnvKey)},
	})
	registerCommands(forcekit)
	return forcekit
}

// commandRegistry is the part of *cmd.SuperCommand used to register
// subcommands.
type commandRegistry interface {
	Register(cmd.Command)
}

func registerCommands(r commandRegistry) {
	r.Register(packaging.NewCreateVersionCommand())
	r.Register(packaging.NewShowVersionRequestCommand())
	r.Register(packaging.NewListRequestsCommand())
	r.Register(packaging.NewListPackagesCommand())
	r.Register(packaging.NewListVersionsCommand())
	r.Register(packaging.NewShowVersionCommand())

	r.Register(hub.NewAddHubCommand())
	r.Register(hub.NewListHubsCommand())
	r.Register(hub.NewRemoveHubCommand())
	r.Register(hub.NewSwitchHubCommand())
}

// Main runs the forcekit command line and returns the exit code to
// pass to os.Exit.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer logger.Debugf("exiting")
	return cmd.Main(NewForcekitCommand(), ctx, args[1:])
}
