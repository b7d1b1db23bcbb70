// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	apipackaging "github.com/forcekit/forcekit/api/packaging"
	"github.com/forcekit/forcekit/api/params"
	"github.com/forcekit/forcekit/cmd/hubcmd"
	"github.com/forcekit/forcekit/core/lro"
)

const createVersionDoc = `
Submits an upload of a new first-generation package version and, when
--wait is given, polls the resulting creation request until it reaches
a terminal state.

Without --wait the command submits the upload, prints the initial state
of the request and returns immediately; use show-version-request with
the printed request id to follow its progress.

When the wait budget runs out before the request completes the command
still succeeds, printing the last observed state. Interrupting the wait
leaves the upload running on the org.

Examples:
    forcekit create-package-version -p 033xx0000004Gmn -n "Spring Release"
    forcekit create-package-version -p 033xx0000004Gmn -n "Spring Release" -v 2.4 --managed-released -w 10
    forcekit create-package-version -p 033xx0000004Gmn -n "Patch One" -k s3cret --wait 5 --format json

See also:
    show-version-request
    list-version-requests
    list-packages
`

const defaultPollInterval = 5 * time.Second

// NewCreateVersionCommand returns a command that uploads a new package
// version.
func NewCreateVersionCommand() cmd.Command {
	return &createVersionCommand{clock: clock.WallClock, pollInterval: defaultPollInterval}
}

type createVersionCommand struct {
	hubcmd.HubCommandBase
	out cmd.Output

	api          CreateVersionAPI
	clock        clock.Clock
	pollInterval time.Duration

	packageID       string
	versionName     string
	description     string
	versionNumber   string
	managedReleased bool
	installKey      string
	postInstallURL  string
	releaseNotesURL string
	wait            int

	major, minor int
}

// CreateVersionAPI describes the API methods required to upload a
// package version.
type CreateVersionAPI interface {
	Close() error
	CreateVersionRequest(ctx context.Context, args apipackaging.CreateVersionArgs) (lro.Handle, params.PackageUploadRequest, error)
	VersionCreateRequest(ctx context.Context, id string) (params.PackageUploadRequest, error)
}

// Info implements cmd.Command.
func (c *createVersionCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "create-package-version",
		Purpose: "Upload a new first-generation package version.",
		Doc:     strings.TrimSpace(createVersionDoc),
	}
}

// SetFlags implements cmd.Command.
func (c *createVersionCommand) SetFlags(f *gnuflag.FlagSet) {
	c.HubCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatVersionRequestTabular,
		"json":    cmd.FormatJson,
		"yaml":    cmd.FormatYaml,
	})
	f.StringVar(&c.packageID, "p", "", "Id (starts with 033) of the package to upload a version of")
	f.StringVar(&c.packageID, "package", "", "")
	f.StringVar(&c.versionName, "n", "", "Name of the new version")
	f.StringVar(&c.versionName, "name", "", "")
	f.StringVar(&c.description, "d", "", "Description of the new version")
	f.StringVar(&c.description, "description", "", "")
	f.StringVar(&c.versionNumber, "v", "", "Version number as major.minor (defaults to the next available)")
	f.StringVar(&c.versionNumber, "version", "", "")
	f.BoolVar(&c.managedReleased, "managed-released", false, "Upload a released version rather than a beta")
	f.StringVar(&c.installKey, "k", "", "Installation key protecting the version")
	f.StringVar(&c.installKey, "install-key", "", "")
	f.StringVar(&c.postInstallURL, "post-install-url", "", "URL opened after a successful installation")
	f.StringVar(&c.releaseNotesURL, "release-notes-url", "", "URL of the release notes for the version")
	f.IntVar(&c.wait, "w", 0, "Minutes to wait for the upload to complete (0 submits and returns)")
	f.IntVar(&c.wait, "wait", 0, "")
}

// Init implements cmd.Command.
func (c *createVersionCommand) Init(args []string) error {
	if c.packageID == "" {
		return errors.New("package id must be specified with --package")
	}
	if c.versionNumber != "" {
		major, minor, err := parseVersionNumber(c.versionNumber)
		if err != nil {
			return errors.Trace(err)
		}
		c.major, c.minor = major, minor
	}
	return cmd.CheckEmpty(args)
}

// parseVersionNumber parses a major.minor version pair.
func parseVersionNumber(s string) (int, int, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid version number %q, expected major.minor", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Errorf("invalid version number %q, expected major.minor", s)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Errorf("invalid version number %q, expected major.minor", s)
	}
	if major < 0 || minor < 0 {
		return 0, 0, errors.Errorf("invalid version number %q, expected major.minor", s)
	}
	return major, minor, nil
}

func (c *createVersionCommand) getAPI() (CreateVersionAPI, error) {
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
func (c *createVersionCommand) Run(ctx *cmd.Context) error {
	_, details, err := c.HubDetails()
	if err != nil {
		return errors.Trace(err)
	}
	api, err := c.getAPI()
	if err != nil {
		return errors.Trace(err)
	}
	defer api.Close()

	// Interrupting the wait abandons only the wait; the upload keeps
	// running on the org.
	waitCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	handle, record, err := api.CreateVersionRequest(waitCtx, apipackaging.CreateVersionArgs{
		PackageID:       c.packageID,
		VersionName:     c.versionName,
		Description:     c.description,
		MajorVersion:    c.major,
		MinorVersion:    c.minor,
		Release:         c.managedReleased,
		Password:        c.installKey,
		PostInstallURL:  c.postInstallURL,
		ReleaseNotesURL: c.releaseNotesURL,
	})
	if err != nil {
		return errors.Trace(err)
	}
	logger.Infof("submitted package upload request %q", handle.ID)

	var waitErr error
	if c.wait > 0 {
		waiter := lro.Waiter[params.PackageUploadRequest]{
			Poller:   lro.PollerFunc[params.PackageUploadRequest](api.VersionCreateRequest),
			Status:   apipackaging.RequestStatus,
			Clock:    c.clock,
			Interval: c.pollInterval,
		}
		record, waitErr = waiter.Wait(waitCtx, handle, record, time.Duration(c.wait)*time.Minute)
		if waitErr != nil && !lro.IsTimeout(waitErr) {
			return errors.Trace(waitErr)
		}
	}

	if err := c.out.Write(ctx, makeVersionRequestDisplay(record, details.InstanceURL)); err != nil {
		return errors.Trace(err)
	}
	if lro.IsTimeout(waitErr) {
		ctx.Infof("Request %q is still in progress; check on it later with:\n    forcekit show-version-request %s", handle.ID, handle.ID)
		return nil
	}
	if apipackaging.RequestStatus(record).Failed() {
		return errors.Errorf("package version creation failed: %s",
			strings.Join(record.Errors.Messages(), "; "))
	}
	return nil
}
