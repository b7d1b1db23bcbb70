// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging_test

import (
	"time"

	"github.com/juju/clock"
	"github.com/juju/clock/testclock"
	"github.com/juju/cmd/v3"
	"github.com/juju/cmd/v3/cmdtesting"
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	apipackaging "github.com/forcekit/forcekit/api/packaging"
	"github.com/forcekit/forcekit/api/params"
	"github.com/forcekit/forcekit/cmd/forcekit/packaging"
	"github.com/forcekit/forcekit/core/lro"
)

type createVersionSuite struct {
	baseSuite
}

var _ = gc.Suite(&createVersionSuite{})

var (
	queuedRecord = params.PackageUploadRequest{
		ID:                "0HDxx0000004Cmp",
		MetadataPackageID: "033xx0000004Gmn",
		VersionName:       "Spring Release",
		Status:            "QUEUED",
		CreatedDate:       "2026-08-25T10:00:00.000+0000",
	}
	inProgressRecord = params.PackageUploadRequest{
		ID:                "0HDxx0000004Cmp",
		MetadataPackageID: "033xx0000004Gmn",
		VersionName:       "Spring Release",
		Status:            "IN_PROGRESS",
		CreatedDate:       "2026-08-25T10:00:00.000+0000",
	}
	successRecord = params.PackageUploadRequest{
		ID:                       "0HDxx0000004Cmp",
		MetadataPackageID:        "033xx0000004Gmn",
		MetadataPackageVersionID: "04txx0000004Gmn",
		VersionName:              "Spring Release",
		Status:                   "SUCCESS",
		CreatedDate:              "2026-08-25T10:00:00.000+0000",
	}
	failedRecord = params.PackageUploadRequest{
		ID:                "0HDxx0000004Cmp",
		MetadataPackageID: "033xx0000004Gmn",
		VersionName:       "Spring Release",
		Status:            "ERROR",
		Errors: params.PackageUploadErrors{Errors: []params.PackageUploadError{
			{Message: "Apex compile failure"},
			{Message: "Missing test coverage"},
		}},
		CreatedDate: "2026-08-25T10:00:00.000+0000",
	}
)

func (s *createVersionSuite) newCommand(clk clock.Clock, interval time.Duration) cmd.Command {
	return packaging.NewCreateVersionCommandForTest(s.store, s.api, clk, interval)
}

func (s *createVersionSuite) TestInitMissingPackage(c *gc.C) {
	err := cmdtesting.InitCommand(s.newCommand(clock.WallClock, time.Millisecond), nil)
	c.Assert(err, gc.ErrorMatches, "package id must be specified with --package")
}

func (s *createVersionSuite) TestInitBadVersionNumber(c *gc.C) {
	err := cmdtesting.InitCommand(s.newCommand(clock.WallClock, time.Millisecond),
		[]string{"-p", "033xx0000004Gmn", "-v", "2"})
	c.Assert(err, gc.ErrorMatches, `invalid version number "2", expected major.minor`)
}

func (s *createVersionSuite) TestParseVersionNumber(c *gc.C) {
	major, minor, err := packaging.ParseVersionNumber("2.4")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(major, gc.Equals, 2)
	c.Check(minor, gc.Equals, 4)

	for _, bad := range []string{"", "2", "2.4.1", "a.b", "-1.0"} {
		_, _, err := packaging.ParseVersionNumber(bad)
		c.Check(err, gc.NotNil)
	}
}

func (s *createVersionSuite) TestSubmitWithoutWait(c *gc.C) {
	s.api.createHandle = lro.Handle{ID: "0HDxx0000004Cmp"}
	s.api.uploadRecords = []params.PackageUploadRequest{queuedRecord}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(clock.WallClock, time.Millisecond),
		"-p", "033xx0000004Gmn", "-n", "Spring Release", "-v", "2.4", "--managed-released",
		"-k", "s3cret")
	c.Assert(err, jc.ErrorIsNil)

	s.api.CheckCalls(c, []jujutesting.StubCall{
		{FuncName: "CreateVersionRequest", Args: []interface{}{apipackaging.CreateVersionArgs{
			PackageID:    "033xx0000004Gmn",
			VersionName:  "Spring Release",
			MajorVersion: 2,
			MinorVersion: 4,
			Release:      true,
			Password:     "s3cret",
		}}},
		{FuncName: "Close"},
	})
	stdout := cmdtesting.Stdout(ctx)
	c.Check(stdout, jc.Contains, "0HDxx0000004Cmp")
	c.Check(stdout, jc.Contains, "Queued")
}

func (s *createVersionSuite) TestWaitUntilSuccess(c *gc.C) {
	s.api.createHandle = lro.Handle{ID: "0HDxx0000004Cmp"}
	s.api.uploadRecords = []params.PackageUploadRequest{queuedRecord, inProgressRecord, successRecord}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(clock.WallClock, time.Millisecond),
		"-p", "033xx0000004Gmn", "-n", "Spring Release", "-w", "1")
	c.Assert(err, jc.ErrorIsNil)

	s.api.CheckCallNames(c, "CreateVersionRequest", "VersionCreateRequest", "VersionCreateRequest", "Close")
	stdout := cmdtesting.Stdout(ctx)
	c.Check(stdout, jc.Contains, "Success")
	c.Check(stdout, jc.Contains, "04txx0000004Gmn")
	c.Check(stdout, jc.Contains, "https://hub.example.com/packaging/installPackage.apexp?p0=04txx0000004Gmn")
}

func (s *createVersionSuite) TestWaitUntilFailure(c *gc.C) {
	s.api.createHandle = lro.Handle{ID: "0HDxx0000004Cmp"}
	s.api.uploadRecords = []params.PackageUploadRequest{queuedRecord, failedRecord}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(clock.WallClock, time.Millisecond),
		"-p", "033xx0000004Gmn", "-n", "Spring Release", "-w", "1")
	c.Assert(err, gc.ErrorMatches,
		"package version creation failed: Apex compile failure; Missing test coverage")

	stdout := cmdtesting.Stdout(ctx)
	c.Check(stdout, jc.Contains, "Error")
	c.Check(stdout, jc.Contains, "Apex compile failure")
}

func (s *createVersionSuite) TestWaitBudgetExhausted(c *gc.C) {
	clk := testclock.NewClock(time.Time{})
	pollInterval := 30 * time.Second
	s.api.createHandle = lro.Handle{ID: "0HDxx0000004Cmp"}
	s.api.uploadRecords = []params.PackageUploadRequest{queuedRecord, inProgressRecord}

	command := s.newCommand(clk, pollInterval)
	ctx := cmdtesting.Context(c)
	err := cmdtesting.InitCommand(command,
		[]string{"-p", "033xx0000004Gmn", "-n", "Spring Release", "-w", "1"})
	c.Assert(err, jc.ErrorIsNil)

	done := make(chan error, 1)
	go func() {
		done <- command.Run(ctx)
	}()
	for i := 0; i < 10; i++ {
		select {
		case err := <-done:
			c.Assert(err, jc.ErrorIsNil)
			stdout := cmdtesting.Stdout(ctx)
			c.Check(stdout, jc.Contains, "In Progress")
			c.Check(cmdtesting.Stderr(ctx), jc.Contains, "still in progress")
			c.Check(cmdtesting.Stderr(ctx), jc.Contains, "show-version-request 0HDxx0000004Cmp")
			return
		case <-time.After(10 * time.Millisecond):
		}
		c.Assert(clk.WaitAdvance(pollInterval, jujutesting.LongWait, 1), jc.ErrorIsNil)
	}
	c.Fatal("wait never ran out of budget")
}

func (s *createVersionSuite) TestSubmissionErrorPropagates(c *gc.C) {
	s.api.SetErrors(errors.New("package upload rejected: No AllPackageVersions field"))
	_, err := cmdtesting.RunCommand(c, s.newCommand(clock.WallClock, time.Millisecond),
		"-p", "033xx0000004Gmn", "-n", "Spring Release")
	c.Assert(err, gc.ErrorMatches, "package upload rejected: No AllPackageVersions field")
}

func (s *createVersionSuite) TestJSONOutput(c *gc.C) {
	s.api.createHandle = lro.Handle{ID: "0HDxx0000004Cmp"}
	s.api.uploadRecords = []params.PackageUploadRequest{queuedRecord}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(clock.WallClock, time.Millisecond),
		"-p", "033xx0000004Gmn", "-n", "Spring Release", "--format", "json")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, `"request-id":"0HDxx0000004Cmp"`)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, `"status":"Queued"`)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, `"errors":[]`)
}

func (s *createVersionSuite) TestInstallURL(c *gc.C) {
	c.Check(packaging.InstallURL("https://hub.example.com/", "04txx0000004Gmn"),
		gc.Equals, "https://hub.example.com/packaging/installPackage.apexp?p0=04txx0000004Gmn")
}
