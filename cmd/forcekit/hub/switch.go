// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package hub

import (
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"

	"github.com/forcekit/forcekit/orgstore"
)

const switchHubDoc = `
Selects the hub used by commands when --hub is not given and
$FORCEKIT_HUB is not set.

Examples:
    forcekit switch-hub prod

See also:
    add-hub
    list-hubs
`

// NewSwitchHubCommand returns a command that selects the current hub.
func NewSwitchHubCommand() cmd.Command {
	return &switchHubCommand{store: orgstore.NewFileClientStore()}
}

type switchHubCommand struct {
	cmd.CommandBase

	store orgstore.ClientStore
	name  string
}

// Info implements cmd.Command.
func (c *switchHubCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "switch-hub",
		Args:    "<name>",
		Purpose: "Select the hub used by default.",
		Doc:     strings.TrimSpace(switchHubDoc),
	}
}

// Init implements cmd.Command.
func (c *switchHubCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("hub name must be specified")
	}
	c.name = args[0]
	return cmd.CheckEmpty(args[1:])
}

// Run implements cmd.Command.
func (c *switchHubCommand) Run(ctx *cmd.Context) error {
	previous, err := c.store.CurrentOrg()
	if err != nil && !errors.IsNotFound(err) {
		return errors.Trace(err)
	}
	if err := c.store.SetCurrentOrg(c.name); err != nil {
		return errors.Trace(err)
	}
	if previous == c.name {
		ctx.Infof("Current hub is already %q", c.name)
		return nil
	}
	ctx.Infof("Current hub is now %q", c.name)
	return nil
}
