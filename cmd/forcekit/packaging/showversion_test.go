// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging_test

import (
	"github.com/juju/cmd/v3/cmdtesting"
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/forcekit/forcekit/cmd/forcekit/packaging"
)

type showVersionSuite struct {
	baseSuite
}

var _ = gc.Suite(&showVersionSuite{})

func (s *showVersionSuite) TestInitMissingID(c *gc.C) {
	err := cmdtesting.InitCommand(
		packaging.NewShowVersionCommandForTest(s.store, s.api), nil)
	c.Assert(err, gc.ErrorMatches, "version id must be specified")
}

func (s *showVersionSuite) TestShow(c *gc.C) {
	s.api.version = storedVersion

	ctx, err := cmdtesting.RunCommand(c,
		packaging.NewShowVersionCommandForTest(s.store, s.api), "04txx0000004Gmn")
	c.Assert(err, jc.ErrorIsNil)

	s.api.CheckCalls(c, []jujutesting.StubCall{
		{FuncName: "Version", Args: []interface{}{"04txx0000004Gmn"}},
		{FuncName: "Close"},
	})
	stdout := cmdtesting.Stdout(ctx)
	c.Check(stdout, jc.Contains, "Spring Release")
	c.Check(stdout, jc.Contains, "2.4.0")
	c.Check(stdout, jc.Contains, "https://hub.example.com/packaging/installPackage.apexp?p0=04txx0000004Gmn")
}

func (s *showVersionSuite) TestShowUnknownID(c *gc.C) {
	s.api.SetErrors(errors.NotFoundf("package version %q", "04txx0000004Gmn"))

	_, err := cmdtesting.RunCommand(c,
		packaging.NewShowVersionCommandForTest(s.store, s.api), "04txx0000004Gmn")
	c.Assert(err, jc.Satisfies, errors.IsNotFound)
}
