// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package packaging provides the client for first-generation package
// operations against a Dev Hub org.
package packaging

import (
	"context"
	"net/url"
	"strings"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/forcekit/forcekit/api/base"
	"github.com/forcekit/forcekit/api/params"
	"github.com/forcekit/forcekit/core/lro"
)

var logger = loggo.GetLogger("forcekit.api.packaging")

const uploadRequestPath = "tooling/sobjects/PackageUploadRequest"

// Client gives access to the packaging sobjects of an org.
type Client struct {
	caller base.APICallCloser
	clock  clock.Clock
}

// NewClient creates a packaging client over the given connection.
func NewClient(caller base.APICallCloser) *Client {
	return &Client{caller: caller, clock: clock.WallClock}
}

// CreateVersionArgs holds the parameters for a new version upload.
type CreateVersionArgs struct {
	// PackageID is the MetadataPackage id (033...) to upload a
	// version of.
	PackageID string

	// VersionName names the new version.
	VersionName string

	// Description describes the new version.
	Description string

	// MajorVersion and MinorVersion number the new version. Zero
	// values let the org assign the next available number.
	MajorVersion int
	MinorVersion int

	// Release uploads a released version rather than a beta.
	Release bool

	// Password protects installation of the version.
	Password string

	// PostInstallURL is opened after a successful installation.
	PostInstallURL string

	// ReleaseNotesURL links the release notes for the version.
	ReleaseNotesURL string
}

// CreateVersionRequest submits a new version upload and returns the
// operation handle together with the initial state of the request.
// The returned record comes from a single follow-up read that is part
// of submission, not of any subsequent wait. Exactly one creation
// request is issued per call.
func (c *Client) CreateVersionRequest(ctx context.Context, args CreateVersionArgs) (lro.Handle, params.PackageUploadRequest, error) {
	body := params.PackageUploadRequestArgs{
		MetadataPackageID: args.PackageID,
		VersionName:       args.VersionName,
		Description:       args.Description,
		MajorVersion:      args.MajorVersion,
		MinorVersion:      args.MinorVersion,
		IsReleaseVersion:  args.Release,
		Password:          args.Password,
		PostInstallURL:    args.PostInstallURL,
		ReleaseNotesURL:   args.ReleaseNotesURL,
	}
	var created params.CreateResponse
	if err := c.caller.Post(ctx, uploadRequestPath, body, &created); err != nil {
		return lro.Handle{}, params.PackageUploadRequest{}, errors.Annotate(err, "submitting package upload")
	}
	if !created.Success {
		messages := make([]string, len(created.Errors))
		for i, e := range created.Errors {
			messages[i] = e.Error()
		}
		return lro.Handle{}, params.PackageUploadRequest{}, errors.Errorf(
			"package upload rejected: %s", strings.Join(messages, "; "))
	}
	logger.Debugf("package upload request %q submitted", created.ID)

	handle := lro.Handle{ID: created.ID, SubmittedAt: c.clock.Now()}
	record, err := c.VersionCreateRequest(ctx, created.ID)
	if err != nil {
		return handle, params.PackageUploadRequest{}, errors.Trace(err)
	}
	return handle, record, nil
}

// VersionCreateRequest fetches the current state of one creation
// request. It performs exactly one remote call and never blocks
// waiting for the request to progress. An unknown id returns an error
// satisfying errors.IsNotFound.
func (c *Client) VersionCreateRequest(ctx context.Context, id string) (params.PackageUploadRequest, error) {
	var record params.PackageUploadRequest
	if err := c.caller.Get(ctx, uploadRequestPath+"/"+url.PathEscape(id), &record); err != nil {
		return params.PackageUploadRequest{}, errors.Annotatef(err, "getting upload request %q", id)
	}
	return record, nil
}

// RequestStatus adapts an upload request record for the wait
// coordinator.
func RequestStatus(r params.PackageUploadRequest) lro.Status {
	return lro.Status(r.Status)
}

// ListVersionCreateRequests lists creation requests known to the org,
// newest first, optionally filtered by status.
func (c *Client) ListVersionCreateRequests(ctx context.Context, status string) ([]params.PackageUploadRequest, error) {
	soql := "SELECT Id, MetadataPackageId, MetadataPackageVersionId, VersionName, Description, " +
		"MajorVersion, MinorVersion, IsReleaseVersion, Status, Errors, CreatedDate " +
		"FROM PackageUploadRequest"
	if status != "" {
		soql += " WHERE Status = " + soqlQuote(status)
	}
	soql += " ORDER BY CreatedDate DESC"

	var result params.PackageUploadRequestQueryResult
	if err := c.caller.Query(ctx, soql, &result); err != nil {
		return nil, errors.Annotate(err, "listing upload requests")
	}
	return result.Records, nil
}

// ListPackages lists the first-generation packages owned by the org.
func (c *Client) ListPackages(ctx context.Context) ([]params.MetadataPackage, error) {
	soql := "SELECT Id, Name, NamespacePrefix, ContainerOptions FROM MetadataPackage ORDER BY Name"
	var result params.MetadataPackageQueryResult
	if err := c.caller.Query(ctx, soql, &result); err != nil {
		return nil, errors.Annotate(err, "listing packages")
	}
	return result.Records, nil
}

// ListVersions lists uploaded package versions, optionally restricted
// to one package.
func (c *Client) ListVersions(ctx context.Context, packageID string) ([]params.MetadataPackageVersion, error) {
	soql := "SELECT Id, MetadataPackageId, Name, ReleaseState, MajorVersion, MinorVersion, " +
		"PatchVersion, BuildNumber FROM MetadataPackageVersion"
	if packageID != "" {
		soql += " WHERE MetadataPackageId = " + soqlQuote(packageID)
	}
	soql += " ORDER BY MajorVersion, MinorVersion, PatchVersion, BuildNumber"

	var result params.MetadataPackageVersionQueryResult
	if err := c.caller.Query(ctx, soql, &result); err != nil {
		return nil, errors.Annotate(err, "listing package versions")
	}
	return result.Records, nil
}

// Version fetches one uploaded package version by its 04t id. An
// unknown id returns an error satisfying errors.IsNotFound.
func (c *Client) Version(ctx context.Context, id string) (params.MetadataPackageVersion, error) {
	var record params.MetadataPackageVersion
	if err := c.caller.Get(ctx, "tooling/sobjects/MetadataPackageVersion/"+url.PathEscape(id), &record); err != nil {
		return params.MetadataPackageVersion{}, errors.Annotatef(err, "getting package version %q", id)
	}
	return record, nil
}

// Close implements APICallCloser.
func (c *Client) Close() error {
	return c.caller.Close()
}

// soqlQuote returns s as a quoted SOQL string literal.
func soqlQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
