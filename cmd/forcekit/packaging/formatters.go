// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/errors"

	"github.com/forcekit/forcekit/api/params"
	"github.com/forcekit/forcekit/cmd/output"
	"github.com/forcekit/forcekit/core/lro"
)

// versionRequestDisplay is the stable shape reported for one version
// creation request. Every field is always present so machine output
// can be parsed the same way regardless of status; optional fields are
// empty strings until the request reaches the state that fills them.
type versionRequestDisplay struct {
	RequestID   string   `json:"request-id" yaml:"request-id"`
	PackageID   string   `json:"package-id" yaml:"package-id"`
	VersionID   string   `json:"version-id" yaml:"version-id"`
	VersionName string   `json:"version-name" yaml:"version-name"`
	Description string   `json:"description" yaml:"description"`
	Status      string   `json:"status" yaml:"status"`
	CreatedDate string   `json:"created-date" yaml:"created-date"`
	InstallURL  string   `json:"install-url" yaml:"install-url"`
	Errors      []string `json:"errors" yaml:"errors"`
}

func makeVersionRequestDisplay(r params.PackageUploadRequest, instanceURL string) versionRequestDisplay {
	display := versionRequestDisplay{
		RequestID:   r.ID,
		PackageID:   r.MetadataPackageID,
		VersionID:   r.MetadataPackageVersionID,
		VersionName: r.VersionName,
		Description: r.Description,
		Status:      lro.Status(r.Status).Title(),
		CreatedDate: r.CreatedDate,
		Errors:      []string{},
	}
	if messages := r.Errors.Messages(); len(messages) > 0 {
		display.Errors = messages
	}
	if r.MetadataPackageVersionID != "" {
		display.InstallURL = installURL(instanceURL, r.MetadataPackageVersionID)
	}
	return display
}

// installURL returns the browser link for installing a package
// version into an org.
func installURL(instanceURL, versionID string) string {
	return strings.TrimRight(instanceURL, "/") + "/packaging/installPackage.apexp?p0=" + versionID
}

func formatVersionRequestTabular(writer io.Writer, value interface{}) error {
	display, ok := value.(versionRequestDisplay)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", display, value)
	}
	tw := output.TabWriter(writer)
	w := output.Wrapper{TabWriter: tw}
	w.Println("Request Id", display.RequestID)
	w.Println("Status", display.Status)
	w.Println("Package Id", display.PackageID)
	w.Println("Version Id", display.VersionID)
	w.Println("Version Name", display.VersionName)
	w.Println("Description", display.Description)
	w.Println("Created Date", display.CreatedDate)
	w.Println("Install URL", display.InstallURL)
	w.Println("Errors", strings.Join(display.Errors, "; "))
	return tw.Flush()
}

func formatRequestListTabular(writer io.Writer, value interface{}) error {
	displays, ok := value.([]versionRequestDisplay)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", displays, value)
	}
	tw := output.TabWriter(writer)
	w := output.Wrapper{TabWriter: tw}
	w.Println("Request Id", "Status", "Package Id", "Version Id", "Created Date")
	for _, display := range displays {
		w.Println(display.RequestID, display.Status, display.PackageID,
			display.VersionID, display.CreatedDate)
	}
	return tw.Flush()
}

// packageDisplay is the stable shape reported for one package.
type packageDisplay struct {
	PackageID        string `json:"package-id" yaml:"package-id"`
	Name             string `json:"name" yaml:"name"`
	Namespace        string `json:"namespace" yaml:"namespace"`
	ContainerOptions string `json:"container-options" yaml:"container-options"`
}

func makePackageDisplay(p params.MetadataPackage) packageDisplay {
	return packageDisplay{
		PackageID:        p.ID,
		Name:             p.Name,
		Namespace:        p.NamespacePrefix,
		ContainerOptions: p.ContainerOptions,
	}
}

func formatPackagesTabular(writer io.Writer, value interface{}) error {
	displays, ok := value.([]packageDisplay)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", displays, value)
	}
	tw := output.TabWriter(writer)
	w := output.Wrapper{TabWriter: tw}
	w.Println("Package Id", "Name", "Namespace", "Container Options")
	for _, display := range displays {
		w.Println(display.PackageID, display.Name, display.Namespace, display.ContainerOptions)
	}
	return tw.Flush()
}

// versionDisplay is the stable shape reported for one uploaded
// package version.
type versionDisplay struct {
	VersionID    string `json:"version-id" yaml:"version-id"`
	PackageID    string `json:"package-id" yaml:"package-id"`
	Name         string `json:"name" yaml:"name"`
	Version      string `json:"version" yaml:"version"`
	BuildNumber  int    `json:"build-number" yaml:"build-number"`
	ReleaseState string `json:"release-state" yaml:"release-state"`
	InstallURL   string `json:"install-url" yaml:"install-url"`
}

func makeVersionDisplay(v params.MetadataPackageVersion, instanceURL string) versionDisplay {
	return versionDisplay{
		VersionID:    v.ID,
		PackageID:    v.MetadataPackageID,
		Name:         v.Name,
		Version:      fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.PatchVersion),
		BuildNumber:  v.BuildNumber,
		ReleaseState: v.ReleaseState,
		InstallURL:   installURL(instanceURL, v.ID),
	}
}

func formatVersionsTabular(writer io.Writer, value interface{}) error {
	displays, ok := value.([]versionDisplay)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", displays, value)
	}
	tw := output.TabWriter(writer)
	w := output.Wrapper{TabWriter: tw}
	w.Println("Version Id", "Package Id", "Name", "Version", "Build", "Release State")
	for _, display := range displays {
		w.Println(display.VersionID, display.PackageID, display.Name,
			display.Version, display.BuildNumber, display.ReleaseState)
	}
	return tw.Flush()
}

func formatVersionTabular(writer io.Writer, value interface{}) error {
	display, ok := value.(versionDisplay)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", display, value)
	}
	tw := output.TabWriter(writer)
	w := output.Wrapper{TabWriter: tw}
	w.Println("Version Id", display.VersionID)
	w.Println("Package Id", display.PackageID)
	w.Println("Name", display.Name)
	w.Println("Version", display.Version)
	w.Println("Build Number", display.BuildNumber)
	w.Println("Release State", display.ReleaseState)
	w.Println("Install URL", display.InstallURL)
	return tw.Flush()
}
