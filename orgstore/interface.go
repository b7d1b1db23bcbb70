// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package orgstore caches details of authenticated Dev Hub orgs so
// that commands can resolve a hub name to a usable API session.
// Authentication itself happens elsewhere; this store only remembers
// the resulting session details.
package orgstore

import (
	"github.com/juju/errors"
)

// OrgDetails holds what is needed to connect to one org.
type OrgDetails struct {
	// Username is the login associated with the session.
	Username string `yaml:"username"`

	// InstanceURL is the org's https base URL.
	InstanceURL string `yaml:"instance-url"`

	// AccessToken is the OAuth session token for the org.
	AccessToken string `yaml:"access-token"`

	// APIVersion pins the REST API version used for this org; empty
	// means the client default.
	APIVersion string `yaml:"api-version,omitempty"`
}

// OrgsGetter reads orgs from the store.
type OrgsGetter interface {
	// AllOrgs returns all stored orgs, keyed on name.
	AllOrgs() (map[string]OrgDetails, error)

	// OrgByName returns the org with the given name. An unknown name
	// returns an error satisfying errors.IsNotFound.
	OrgByName(name string) (*OrgDetails, error)

	// CurrentOrg returns the name of the current org. When no current
	// org is set an error satisfying errors.IsNotFound is returned.
	CurrentOrg() (string, error)
}

// OrgsUpdater writes orgs to the store.
type OrgsUpdater interface {
	// UpdateOrg adds or overwrites the org with the given name.
	UpdateOrg(name string, details OrgDetails) error

	// SetCurrentOrg marks the named org as the current one. An
	// unknown name returns an error satisfying errors.IsNotFound.
	SetCurrentOrg(name string) error
}

// OrgsRemover removes orgs from the store.
type OrgsRemover interface {
	// RemoveOrg removes the org with the given name. Removing the
	// current org clears the current marker. An unknown name returns
	// an error satisfying errors.IsNotFound.
	RemoveOrg(name string) error
}

// ClientStore groups the operations commands need on the org cache.
type ClientStore interface {
	OrgsGetter
	OrgsUpdater
	OrgsRemover
}

// ValidateOrgName checks that name can be used to key the store.
func ValidateOrgName(name string) error {
	if name == "" {
		return errors.NotValidf("empty org name")
	}
	return nil
}

// ValidateOrgDetails checks that details are complete enough to open
// an API connection later.
func ValidateOrgDetails(details OrgDetails) error {
	if details.InstanceURL == "" {
		return errors.NotValidf("org details without instance URL")
	}
	if details.AccessToken == "" {
		return errors.NotValidf("org details without access token")
	}
	return nil
}
