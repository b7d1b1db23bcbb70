// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package orgstore

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"gopkg.in/yaml.v2"

	"github.com/forcekit/forcekit/osenv"
)

var logger = loggo.GetLogger("forcekit.orgstore")

// OrgsPath returns the location of the orgs file.
func OrgsPath() string {
	return osenv.DataHomePath("orgs.yaml")
}

// OrgsFile is the on-disk shape of the org cache.
type OrgsFile struct {
	// Orgs maps org name to its connection details.
	Orgs map[string]OrgDetails `yaml:"orgs"`

	// CurrentOrg names the org used when no --hub flag is given.
	CurrentOrg string `yaml:"current-org,omitempty"`
}

// ReadOrgsFile loads the orgs file at the given path. A missing file
// is an empty store, not an error.
func ReadOrgsFile(path string) (*OrgsFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &OrgsFile{Orgs: make(map[string]OrgDetails)}, nil
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	var content OrgsFile
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, errors.Annotatef(err, "cannot parse orgs file %q", path)
	}
	if content.Orgs == nil {
		content.Orgs = make(map[string]OrgDetails)
	}
	return &content, nil
}

// WriteOrgsFile writes the orgs file at the given path, creating the
// parent directory as needed. The file contains session tokens, so it
// is not group or world readable.
func WriteOrgsFile(path string, content *OrgsFile) error {
	data, err := yaml.Marshal(content)
	if err != nil {
		return errors.Trace(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(os.WriteFile(path, data, 0600))
}

// NewFileClientStore returns a filesystem-backed client store that
// keeps its state in the forcekit data home.
func NewFileClientStore() ClientStore {
	return &store{}
}

type store struct{}

// AllOrgs implements OrgsGetter.
func (s *store) AllOrgs() (map[string]OrgDetails, error) {
	content, err := ReadOrgsFile(OrgsPath())
	if err != nil {
		return nil, errors.Trace(err)
	}
	return content.Orgs, nil
}

// OrgByName implements OrgsGetter.
func (s *store) OrgByName(name string) (*OrgDetails, error) {
	if err := ValidateOrgName(name); err != nil {
		return nil, errors.Trace(err)
	}
	content, err := ReadOrgsFile(OrgsPath())
	if err != nil {
		return nil, errors.Trace(err)
	}
	if details, ok := content.Orgs[name]; ok {
		return &details, nil
	}
	return nil, errors.NotFoundf("org %q", name)
}

// CurrentOrg implements OrgsGetter.
func (s *store) CurrentOrg() (string, error) {
	content, err := ReadOrgsFile(OrgsPath())
	if err != nil {
		return "", errors.Trace(err)
	}
	if content.CurrentOrg == "" {
		return "", errors.NotFoundf("current org")
	}
	return content.CurrentOrg, nil
}

// UpdateOrg implements OrgsUpdater.
func (s *store) UpdateOrg(name string, details OrgDetails) error {
	if err := ValidateOrgName(name); err != nil {
		return errors.Trace(err)
	}
	if err := ValidateOrgDetails(details); err != nil {
		return errors.Trace(err)
	}
	content, err := ReadOrgsFile(OrgsPath())
	if err != nil {
		return errors.Trace(err)
	}
	content.Orgs[name] = details
	logger.Debugf("updating org %q in %s", name, OrgsPath())
	return errors.Trace(WriteOrgsFile(OrgsPath(), content))
}

// SetCurrentOrg implements OrgsUpdater.
func (s *store) SetCurrentOrg(name string) error {
	if err := ValidateOrgName(name); err != nil {
		return errors.Trace(err)
	}
	content, err := ReadOrgsFile(OrgsPath())
	if err != nil {
		return errors.Trace(err)
	}
	if _, ok := content.Orgs[name]; !ok {
		return errors.NotFoundf("org %q", name)
	}
	content.CurrentOrg = name
	return errors.Trace(WriteOrgsFile(OrgsPath(), content))
}

// RemoveOrg implements OrgsRemover.
func (s *store) RemoveOrg(name string) error {
	if err := ValidateOrgName(name); err != nil {
		return errors.Trace(err)
	}
	content, err := ReadOrgsFile(OrgsPath())
	if err != nil {
		return errors.Trace(err)
	}
	if _, ok := content.Orgs[name]; !ok {
		return errors.NotFoundf("org %q", name)
	}
	delete(content.Orgs, name)
	if content.CurrentOrg == name {
		content.CurrentOrg = ""
	}
	return errors.Trace(WriteOrgsFile(OrgsPath(), content))
}
