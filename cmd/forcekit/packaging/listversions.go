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

const listVersionsDoc = `
Lists the uploaded package versions known to the Dev Hub org, oldest
first. The list can be restricted to one package with --package.

Examples:
    forcekit list-package-versions
    forcekit list-package-versions -p 033xx0000004Gmn
    forcekit list-package-versions --format yaml

See also:
    list-packages
    show-package-version
`

// NewListVersionsCommand returns a command that lists uploaded package
// versions.
func NewListVersionsCommand() cmd.Command {
	return &listVersionsCommand{}
}

type listVersionsCommand struct {
	hubcmd.HubCommandBase
	out cmd.Output

	api       ListVersionsAPI
	packageID string
}

// ListVersionsAPI describes the API methods required to list uploaded
// versions.
type ListVersionsAPI interface {
	Close() error
	ListVersions(ctx context.Context, packageID string) ([]params.MetadataPackageVersion, error)
}

// Info implements cmd.Command.
func (c *listVersionsCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "list-package-versions",
		Purpose: "List uploaded package versions.",
		Doc:     strings.TrimSpace(listVersionsDoc),
		Aliases: []string{"package-versions"},
	}
}

// SetFlags implements cmd.Command.
func (c *listVersionsCommand) SetFlags(f *gnuflag.FlagSet) {
	c.HubCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatVersionsTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
	f.StringVar(&c.packageID, "p", "", "Only list versions of the package with this id")
	f.StringVar(&c.packageID, "package", "", "")
}

// Init implements cmd.Command.
func (c *listVersionsCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

func (c *listVersionsCommand) getAPI() (ListVersionsAPI, error) {
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
func (c *listVersionsCommand) Run(ctx *cmd.Context) error {
	_, details, err := c.HubDetails()
	if err != nil {
		return errors.Trace(err)
	}
	api, err := c.getAPI()
	if err != nil {
		return errors.Trace(err)
	}
	defer api.Close()

	records, err := api.ListVersions(context.Background(), c.packageID)
	if err != nil {
		return errors.Trace(err)
	}
	displays := make([]versionDisplay, len(records))
	for i, record := range records {
		displays[i] = makeVersionDisplay(record, details.InstanceURL)
	}
	return c.out.Write(ctx, displays)
}
