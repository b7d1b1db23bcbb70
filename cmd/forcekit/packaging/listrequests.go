// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging

import (
	"context"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	apipackaging "github.com/forcekit/forcekit/api/packaging"
	"github.com/forcekit/forcekit/api/params"
	"github.com/forcekit/forcekit/cmd/hubcmd"
	"github.com/forcekit/forcekit/core/lro"
)

const listRequestsDoc = `
Lists the package version creation requests known to the Dev Hub org,
newest first. The list can be restricted to one status with --status.

Examples:
    forcekit list-version-requests
    forcekit list-version-requests --status in_progress
    forcekit list-version-requests --status error --format yaml

See also:
    create-package-version
    show-version-request
`

var knownStatuses = set.NewStrings(
	string(lro.StatusQueued),
	string(lro.StatusInProgress),
	string(lro.StatusSuccess),
	string(lro.StatusError),
)

// NewListRequestsCommand returns a command that lists version creation
// requests.
func NewListRequestsCommand() cmd.Command {
	return &listRequestsCommand{}
}

type listRequestsCommand struct {
	hubcmd.HubCommandBase
	out cmd.Output

	api    ListRequestsAPI
	status string
}

// ListRequestsAPI describes the API methods required to list creation
// requests.
type ListRequestsAPI interface {
	Close() error
	ListVersionCreateRequests(ctx context.Context, status string) ([]params.PackageUploadRequest, error)
}

// Info implements cmd.Command.
func (c *listRequestsCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "list-version-requests",
		Purpose: "List package version creation requests.",
		Doc:     strings.TrimSpace(listRequestsDoc),
		Aliases: []string{"version-requests"},
	}
}

// SetFlags implements cmd.Command.
func (c *listRequestsCommand) SetFlags(f *gnuflag.FlagSet) {
	c.HubCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatRequestListTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
	f.StringVar(&c.status, "status", "", "Only list requests with this status (queued|in_progress|success|error)")
}

// Init implements cmd.Command.
func (c *listRequestsCommand) Init(args []string) error {
	if c.status != "" {
		status := strings.ToUpper(c.status)
		if !knownStatuses.Contains(status) {
			return errors.Errorf("invalid status %q, expected one of queued, in_progress, success or error", c.status)
		}
		c.status = status
	}
	return cmd.CheckEmpty(args)
}

func (c *listRequestsCommand) getAPI() (ListRequestsAPI, error) {
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
func (c *listRequestsCommand) Run(ctx *cmd.Context) error {
	_, details, err := c.HubDetails()
	if err != nil {
		return errors.Trace(err)
	}
	api, err := c.getAPI()
	if err != nil {
		return errors.Trace(err)
	}
	defer api.Close()

	records, err := api.ListVersionCreateRequests(context.Background(), c.status)
	if err != nil {
		return errors.Trace(err)
	}
	displays := make([]versionRequestDisplay, len(records))
	for i, record := range records {
		displays[i] = makeVersionRequestDisplay(record, details.InstanceURL)
	}
	return c.out.Write(ctx, displays)
}
