// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package hub

import (
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/forcekit/forcekit/orgstore"
)

const addHubDoc = `
Stores the connection details of a Dev Hub org under a local name. The
first hub added becomes the current hub; later additions leave the
current selection alone. Adding a name that already exists replaces its
stored details.

The access token is stored on disk readable only by the current user.

Examples:
    forcekit add-hub prod --username admin@hub.example.com \
        --instance-url https://hub.my.salesforce.com --access-token 00D...

See also:
    list-hubs
    switch-hub
    remove-hub
`

// NewAddHubCommand returns a command that stores a Dev Hub org.
func NewAddHubCommand() cmd.Command {
	return &addHubCommand{store: orgstore.NewFileClientStore()}
}

type addHubCommand struct {
	cmd.CommandBase

	store orgstore.ClientStore

	name        string
	username    string
	instanceURL string
	accessToken string
	apiVersion  string
	makeCurrent bool
}

// Info implements cmd.Command.
func (c *addHubCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "add-hub",
		Args:    "<name>",
		Purpose: "Store the connection details of a Dev Hub org.",
		Doc:     strings.TrimSpace(addHubDoc),
	}
}

// SetFlags implements cmd.Command.
func (c *addHubCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username the access token belongs to")
	f.StringVar(&c.username, "username", "", "")
	f.StringVar(&c.instanceURL, "instance-url", "", "Base URL of the org, eg https://hub.my.salesforce.com")
	f.StringVar(&c.accessToken, "access-token", "", "OAuth access token for the org")
	f.StringVar(&c.apiVersion, "api-version", "", "Tooling API version to use (defaults to the client's)")
	f.BoolVar(&c.makeCurrent, "current", false, "Make this the current hub")
}

// Init implements cmd.Command.
func (c *addHubCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("hub name must be specified")
	}
	c.name = args[0]
	if err := orgstore.ValidateOrgName(c.name); err != nil {
		return errors.Trace(err)
	}
	return cmd.CheckEmpty(args[1:])
}

// Run implements cmd.Command.
func (c *addHubCommand) Run(ctx *cmd.Context) error {
	details := orgstore.OrgDetails{
		Username:    c.username,
		InstanceURL: c.instanceURL,
		AccessToken: c.accessToken,
		APIVersion:  c.apiVersion,
	}
	if err := orgstore.ValidateOrgDetails(details); err != nil {
		return errors.Trace(err)
	}
	existing, err := c.store.AllOrgs()
	if err != nil {
		return errors.Trace(err)
	}
	if err := c.store.UpdateOrg(c.name, details); err != nil {
		return errors.Trace(err)
	}
	// The first hub is implicitly the one to use.
	if c.makeCurrent || len(existing) == 0 {
		if err := c.store.SetCurrentOrg(c.name); err != nil {
			return errors.Trace(err)
		}
	}
	ctx.Infof("Added hub %q for %s", c.name, c.username)
	return nil
}
