// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package hub

import (
	"io"
	"sort"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/forcekit/forcekit/cmd/output"
	"github.com/forcekit/forcekit/orgstore"
)

const listHubsDoc = `
Lists the locally stored Dev Hub orgs. The current hub is marked with
an asterisk in tabular output.

Examples:
    forcekit list-hubs
    forcekit list-hubs --format yaml

See also:
    add-hub
    switch-hub
`

// NewListHubsCommand returns a command that lists the stored hubs.
func NewListHubsCommand() cmd.Command {
	return &listHubsCommand{store: orgstore.NewFileClientStore()}
}

type listHubsCommand struct {
	cmd.CommandBase
	out cmd.Output

	store orgstore.ClientStore
}

// hubDisplay is the stable shape reported for one stored hub.
type hubDisplay struct {
	Username    string `json:"username" yaml:"username"`
	InstanceURL string `json:"instance-url" yaml:"instance-url"`
	APIVersion  string `json:"api-version,omitempty" yaml:"api-version,omitempty"`
	Current     bool   `json:"current,omitempty" yaml:"current,omitempty"`
}

// Info implements cmd.Command.
func (c *listHubsCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "list-hubs",
		Purpose: "List locally stored Dev Hub orgs.",
		Doc:     strings.TrimSpace(listHubsDoc),
		Aliases: []string{"hubs"},
	}
}

// SetFlags implements cmd.Command.
func (c *listHubsCommand) SetFlags(f *gnuflag.FlagSet) {
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatHubsTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
}

// Init implements cmd.Command.
func (c *listHubsCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *listHubsCommand) Run(ctx *cmd.Context) error {
	orgs, err := c.store.AllOrgs()
	if err != nil {
		return errors.Trace(err)
	}
	current, err := c.store.CurrentOrg()
	if err != nil && !errors.IsNotFound(err) {
		return errors.Trace(err)
	}
	displays := make(map[string]hubDisplay, len(orgs))
	for name, details := range orgs {
		displays[name] = hubDisplay{
			Username:    details.Username,
			InstanceURL: details.InstanceURL,
			APIVersion:  details.APIVersion,
			Current:     name == current,
		}
	}
	return c.out.Write(ctx, displays)
}

func formatHubsTabular(writer io.Writer, value interface{}) error {
	displays, ok := value.(map[string]hubDisplay)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", displays, value)
	}
	names := make([]string, 0, len(displays))
	for name := range displays {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := output.TabWriter(writer)
	w := output.Wrapper{TabWriter: tw}
	w.Println("Hub", "Username", "Instance URL", "Api Version")
	for _, name := range names {
		display := displays[name]
		marked := name
		if display.Current {
			marked += "*"
		}
		w.Println(marked, display.Username, display.InstanceURL, display.APIVersion)
	}
	return tw.Flush()
}
