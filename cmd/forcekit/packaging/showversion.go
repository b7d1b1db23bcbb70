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

const showVersionDoc = `
Shows one uploaded package version, including the link for installing
it into an org.

Examples:
    forcekit show-package-version 04txx0000004GmnAAE
    forcekit show-package-version 04txx0000004GmnAAE --format json

See also:
    list-package-versions
`

// NewShowVersionCommand returns a command that shows one uploaded
// package version.
func NewShowVersionCommand() cmd.Command {
	return &showVersionCommand{}
}

type showVersionCommand struct {
	hubcmd.HubCommandBase
	out cmd.Output

	api       ShowVersionAPI
	versionID string
}

// ShowVersionAPI describes the API methods required to show a version.
type ShowVersionAPI interface {
	Close() error
	Version(ctx context.Context, id string) (params.MetadataPackageVersion, error)
}

// Info implements cmd.Command.
func (c *showVersionCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "show-package-version",
		Args:    "<version-id>",
		Purpose: "Show an uploaded package version.",
		Doc:     strings.TrimSpace(showVersionDoc),
	}
}

// SetFlags implements cmd.Command.
func (c *showVersionCommand) SetFlags(f *gnuflag.FlagSet) {
	c.HubCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatVersionTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
}

// Init implements cmd.Command.
func (c *showVersionCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("version id must be specified")
	}
	c.versionID = args[0]
	return cmd.CheckEmpty(args[1:])
}

func (c *showVersionCommand) getAPI() (ShowVersionAPI, error) {
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
func (c *showVersionCommand) Run(ctx *cmd.Context) error {
	_, details, err := c.HubDetails()
	if err != nil {
		return errors.Trace(err)
	}
	api, err := c.getAPI()
	if err != nil {
		return errors.Trace(err)
	}
	defer api.Close()

	record, err := api.Version(context.Background(), c.versionID)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, makeVersionDisplay(record, details.InstanceURL))
}
