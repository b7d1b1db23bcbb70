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

const showVersionRequestDoc = `
Reports the current state of one package version creation request. The
command performs a single status check and returns; it never waits for
the request to progress. Reporting succeeds for any known request id
regardless of the request's status, including Error.

Examples:
    forcekit show-version-request 0HDxx0000004CmpGAE
    forcekit show-version-request 0HDxx0000004CmpGAE --format json

See also:
    create-package-version
    list-version-requests
`

// NewShowVersionRequestCommand returns a command that reports one
// version creation request.
func NewShowVersionRequestCommand() cmd.Command {
	return &showVersionRequestCommand{}
}

type showVersionRequestCommand struct {
	hubcmd.HubCommandBase
	out cmd.Output

	api       ShowVersionRequestAPI
	requestID string
}

// ShowVersionRequestAPI describes the API methods required to report a
// creation request.
type ShowVersionRequestAPI interface {
	Close() error
	VersionCreateRequest(ctx context.Context, id string) (params.PackageUploadRequest, error)
}

// Info implements cmd.Command.
func (c *showVersionRequestCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "show-version-request",
		Args:    "<request-id>",
		Purpose: "Report the state of a package version creation request.",
		Doc:     strings.TrimSpace(showVersionRequestDoc),
	}
}

// SetFlags implements cmd.Command.
func (c *showVersionRequestCommand) SetFlags(f *gnuflag.FlagSet) {
	c.HubCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatVersionRequestTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
}

// Init implements cmd.Command.
func (c *showVersionRequestCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("request id must be specified")
	}
	c.requestID = args[0]
	return cmd.CheckEmpty(args[1:])
}

func (c *showVersionRequestCommand) getAPI() (ShowVersionRequestAPI, error) {
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
func (c *showVersionRequestCommand) Run(ctx *cmd.Context) error {
	_, details, err := c.HubDetails()
	if err != nil {
		return errors.Trace(err)
	}
	api, err := c.getAPI()
	if err != nil {
		return errors.Trace(err)
	}
	defer api.Close()

	record, err := api.VersionCreateRequest(context.Background(), c.requestID)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, makeVersionRequestDisplay(record, details.InstanceURL))
}
