// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package params defines the wire types exchanged with the Salesforce
// Tooling API. Field names follow the remote sobject field names
// exactly; mapping to display shapes happens in the command layer.
package params

import (
	"fmt"
)

// Error is one entry of the error body returned by the Tooling API for
// failed requests.
type Error struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// Error implements error.
func (e Error) Error() string {
	if e.ErrorCode == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.ErrorCode)
}

// CreateResponse is the body returned when creating an sobject record.
type CreateResponse struct {
	ID      string  `json:"id"`
	Success bool    `json:"success"`
	Errors  []Error `json:"errors"`
}

// PackageUploadRequestArgs is the body submitted to start a new
// first-generation package version upload.
type PackageUploadRequestArgs struct {
	MetadataPackageID string `json:"MetadataPackageId"`
	VersionName       string `json:"VersionName"`
	Description       string `json:"Description,omitempty"`
	MajorVersion      int    `json:"MajorVersion"`
	MinorVersion      int    `json:"MinorVersion"`
	IsReleaseVersion  bool   `json:"IsReleaseVersion"`
	Password          string `json:"Password,omitempty"`
	PostInstallURL    string `json:"PostInstallUrl,omitempty"`
	ReleaseNotesURL   string `json:"ReleaseNotesUrl,omitempty"`
}

// PackageUploadRequest mirrors the PackageUploadRequest Tooling
// sobject tracking one asynchronous version upload. Once the status is
// terminal the record no longer changes; MetadataPackageVersionID is
// populated only on success and Errors only on failure.
type PackageUploadRequest struct {
	ID                       string              `json:"Id"`
	MetadataPackageID        string              `json:"MetadataPackageId"`
	MetadataPackageVersionID string              `json:"MetadataPackageVersionId"`
	VersionName              string              `json:"VersionName"`
	Description              string              `json:"Description"`
	MajorVersion             int                 `json:"MajorVersion"`
	MinorVersion             int                 `json:"MinorVersion"`
	IsReleaseVersion         bool                `json:"IsReleaseVersion"`
	Status                   string              `json:"Status"`
	Errors                   PackageUploadErrors `json:"Errors"`
	CreatedDate              string              `json:"CreatedDate"`
}

// PackageUploadErrors is the nested error collection attached to a
// failed upload request.
type PackageUploadErrors struct {
	Errors []PackageUploadError `json:"errors"`
}

// PackageUploadError describes one reason an upload failed.
type PackageUploadError struct {
	Message string `json:"message"`
}

// Messages flattens the nested error collection into plain strings.
func (e PackageUploadErrors) Messages() []string {
	if len(e.Errors) == 0 {
		return nil
	}
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Message
	}
	return messages
}

// MetadataPackage mirrors the MetadataPackage Tooling sobject, one row
// per first-generation package owned by the org.
type MetadataPackage struct {
	ID               string `json:"Id"`
	Name             string `json:"Name"`
	NamespacePrefix  string `json:"NamespacePrefix"`
	ContainerOptions string `json:"ContainerOptions"`
}

// MetadataPackageVersion mirrors the MetadataPackageVersion Tooling
// sobject, one row per uploaded package version.
type MetadataPackageVersion struct {
	ID                string `json:"Id"`
	MetadataPackageID string `json:"MetadataPackageId"`
	Name              string `json:"Name"`
	ReleaseState      string `json:"ReleaseState"`
	MajorVersion      int    `json:"MajorVersion"`
	MinorVersion      int    `json:"MinorVersion"`
	PatchVersion      int    `json:"PatchVersion"`
	BuildNumber       int    `json:"BuildNumber"`
}

// PackageUploadRequestQueryResult is the query envelope for
// PackageUploadRequest rows.
type PackageUploadRequestQueryResult struct {
	TotalSize int                    `json:"totalSize"`
	Done      bool                   `json:"done"`
	Records   []PackageUploadRequest `json:"records"`
}

// MetadataPackageQueryResult is the query envelope for MetadataPackage
// rows.
type MetadataPackageQueryResult struct {
	TotalSize int               `json:"totalSize"`
	Done      bool              `json:"done"`
	Records   []MetadataPackage `json:"records"`
}

// MetadataPackageVersionQueryResult is the query envelope for
// MetadataPackageVersion rows.
type MetadataPackageVersionQueryResult struct {
	TotalSize int                      `json:"totalSize"`
	Done      bool                     `json:"done"`
	Records   []MetadataPackageVersion `json:"records"`
}
