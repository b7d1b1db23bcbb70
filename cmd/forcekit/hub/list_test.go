// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package hub_test

import (
	"github.com/juju/cmd/v3/cmdtesting"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/forcekit/forcekit/cmd/forcekit/hub"
	"github.com/forcekit/forcekit/orgstore"
)

type listHubsSuite struct {
	baseSuite
}

var _ = gc.Suite(&listHubsSuite{})

func (s *listHubsSuite) TestListEmpty(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, hub.NewListHubsCommandForTest(s.store))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, "Hub")
}

func (s *listHubsSuite) TestList(c *gc.C) {
	s.store.Orgs["prod"] = prodDetails
	s.store.Orgs["staging"] = orgstore.OrgDetails{
		Username:    "admin@staging.example.com",
		InstanceURL: "https://staging.my.salesforce.com",
		AccessToken: "00D!other",
		APIVersion:  "60.0",
	}
	s.store.Current = "prod"

	ctx, err := cmdtesting.RunCommand(c, hub.NewListHubsCommandForTest(s.store))
	c.Assert(err, jc.ErrorIsNil)

	stdout := cmdtesting.Stdout(ctx)
	c.Check(stdout, jc.Contains, "prod*")
	c.Check(stdout, jc.Contains, "staging")
	c.Check(stdout, jc.Contains, "admin@staging.example.com")
	c.Check(stdout, jc.Contains, "60.0")
	c.Check(stdout, gc.Not(jc.Contains), "00D!other")
}

func (s *listHubsSuite) TestListYAML(c *gc.C) {
	s.store.Orgs["prod"] = prodDetails
	s.store.Current = "prod"

	ctx, err := cmdtesting.RunCommand(c, hub.NewListHubsCommandForTest(s.store), "--format", "yaml")
	c.Assert(err, jc.ErrorIsNil)

	stdout := cmdtesting.Stdout(ctx)
	c.Check(stdout, jc.Contains, "prod:")
	c.Check(stdout, jc.Contains, "username: admin@hub.example.com")
	c.Check(stdout, jc.Contains, "current: true")
}
