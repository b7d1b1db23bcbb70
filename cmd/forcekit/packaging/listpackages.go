// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging

import (
	"context"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	apipackaging "github.com/forcekit/forcekit/api/packaging"
	"github.com/forcekit/forcekit/api/params"
	"github.com/forcekit/forcekit/cmd/hubcmd"
)

const listPackagesDoc = `
Lists the first-generation packages owned by the Dev Hub org.

Examples:
    forcekit list-packages
    forcekit list-packages --format json

See also:
    list-package-versions
    create-package-version
`

// NewListPackagesCommand returns a command that lists packages.
func NewListPackagesCommand() cmd.Command {
	return &listPackagesCommand{}
}

type listPackagesCommand struct {
	hubcmd.HubCommandBase
	out cmd.Output

	api ListPackagesAPI
}

// ListPackagesAPI describes the API methods required to list packages.
type ListPackagesAPI interface {
	Close() error
	ListPackages(ctx context.Context) ([]params.MetadataPackage, error)
}

// Info implements cmd.Command.
func (c *listPackagesCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "list-packages",
		Purpose: "List first-generation packages owned by the hub org.",
		Doc:     strings.TrimSpace(listPackagesDoc),
		Aliases: []string{"packages"},
	}
}

// SetFlags implements cmd.Command.
func (c *listPackagesCommand) SetFlags(f *gnuflag.FlagSet) {
	c.HubCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatPackagesTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
}

// Init implements cmd.Command.
func (c *listPackagesCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

func (c *listPackagesCommand) getAPI() (ListPackagesAPI, error) {
	if c.api != nil {
		return c.api, nil
	}
	conn, err := c.NewAPIRoot()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return apipackaging.NewClient(conn), nil
}

// Run implements cmd.Command.
func (c *listPackagesCommand) Run(ctx *cmd.Context) error {
	api, err := c.getAPI()
	if err != nil {
		return errors.Trace(err)
	}
	defer api.Close()

	records, err := api.ListPackages(context.Background())
	if err != nil {
		return errors.Trace(err)
	}
	displays := make([]packageDisplay, len(records))
	for i, record := range records {
		displays[i] = makePackageDisplay(record)
	}
	return c.out.Write(ctx, displays)
}
