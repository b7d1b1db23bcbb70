// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hubcmd provides the base type embedded by commands that
// operate against a Dev Hub org.
package hubcmd

import (
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"github.com/forcekit/forcekit/api/base"
	"github.com/forcekit/forcekit/orgstore"
	"github.com/forcekit/forcekit/osenv"
)

var logger = loggo.GetLogger("forcekit.cmd.hubcmd")

// ErrNoHubSpecified is returned when no hub can be resolved from the
// flag, environment or store.
const ErrNoHubSpecified = errors.ConstError(
	`no hub specified, use --hub or set one as current with "forcekit switch-hub"`)

// APIOpenFunc opens an API connection to the given org.
type APIOpenFunc func(*orgstore.OrgDetails) (base.APICallCloser, error)

// HubCommandBase is a convenience type for embedding in commands that
// need an API connection to a Dev Hub org. It supplies the --hub flag
// and resolves it against the client store.
type HubCommandBase struct {
	cmd.CommandBase

	store   orgstore.ClientStore
	apiOpen APIOpenFunc
	hubName string
}

// SetFlags implements cmd.Command.
func (c *HubCommandBase) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.hubName, "hub", "", "Name of the Dev Hub org to use (defaults to the current hub)")
}

// SetClientStore replaces the store used to resolve hub names.
func (c *HubCommandBase) SetClientStore(store orgstore.ClientStore) {
	c.store = store
}

// ClientStore returns the store used to resolve hub names, defaulting
// to the filesystem store.
func (c *HubCommandBase) ClientStore() orgstore.ClientStore {
	if c.store == nil {
		c.store = orgstore.NewFileClientStore()
	}
	return c.store
}

// SetAPIOpen replaces the function used to open API connections.
func (c *HubCommandBase) SetAPIOpen(open APIOpenFunc) {
	c.apiOpen = open
}

// HubName resolves the hub to use: the --hub flag wins, then
// $FORCEKIT_HUB, then the store's current org.
func (c *HubCommandBase) HubName() (string, error) {
	if c.hubName != "" {
		return c.hubName, nil
	}
	if name := os.Getenv(osenv.HubEnvKey); name != "" {
		return name, nil
	}
	name, err := c.ClientStore().CurrentOrg()
	if errors.IsNotFound(err) {
		return "", ErrNoHubSpecified
	}
	return name, errors.Trace(err)
}

// HubDetails resolves the hub name and looks up its stored details.
func (c *HubCommandBase) HubDetails() (string, *orgstore.OrgDetails, error) {
	name, err := c.HubName()
	if err != nil {
		return "", nil, errors.Trace(err)
	}
	details, err := c.ClientStore().OrgByName(name)
	if err != nil {
		return "", nil, errors.Annotatef(err, "resolving hub %q", name)
	}
	return name, details, nil
}

// NewAPIRoot opens a connection to the hub's Tooling API.
func (c *HubCommandBase) NewAPIRoot() (base.APICallCloser, error) {
	name, details, err := c.HubDetails()
	if err != nil {
		return nil, errors.Trace(err)
	}
	logger.Debugf("opening API connection to hub %q at %s", name, details.InstanceURL)
	if c.apiOpen != nil {
		return c.apiOpen(details)
	}
	conn, err := base.NewConnection(base.Config{
		InstanceURL: details.InstanceURL,
		AccessToken: details.AccessToken,
		APIVersion:  details.APIVersion,
	})
	return conn, errors.Trace(err)
}
