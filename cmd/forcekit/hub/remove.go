// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package hub

import (
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"

	"github.com/forcekit/forcekit/orgstore"
)

const removeHubDoc = `
Forgets a locally stored Dev Hub org. Only the local cache is touched;
the org itself and any sessions on it are unaffected. Removing the
current hub leaves no hub selected.

Examples:
    forcekit remove-hub prod

See also:
    add-hub
    list-hubs
`

// NewRemoveHubCommand returns a command that forgets a stored hub.
func NewRemoveHubCommand() cmd.Command {
	return &removeHubCommand{store: orgstore.NewFileClientStore()}
}

type removeHubCommand struct {
	cmd.CommandBase

	store orgstore.ClientStore
	name  string
}

// Info implements cmd.Command.
func (c *removeHubCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "remove-hub",
		Args:    "<name>",
		Purpose: "Forget a locally stored Dev Hub org.",
		Doc:     strings.TrimSpace(removeHubDoc),
	}
}

// Init implements cmd.Command.
func (c *removeHubCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("hub name must be specified")
	}
	c.name = args[0]
	return cmd.CheckEmpty(args[1:])
}

// Run implements cmd.Command.
func (c *removeHubCommand) Run(ctx *cmd.Context) error {
	if err := c.store.RemoveOrg(c.name); err != nil {
		return errors.Trace(err)
	}
	ctx.Infof("Removed hub %q", c.name)
	return nil
}
