// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package orgstore

import (
	"github.com/juju/errors"
)

// MemStore is an in-memory implementation of ClientStore, used by
// tests and anywhere persistence is unwanted.
type MemStore struct {
	Orgs    map[string]OrgDetails
	Current string
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{Orgs: make(map[string]OrgDetails)}
}

// AllOrgs implements OrgsGetter.
func (s *MemStore) AllOrgs() (map[string]OrgDetails, error) {
	result := make(map[string]OrgDetails, len(s.Orgs))
	for name, details := range s.Orgs {
		result[name] = details
	}
	return result, nil
}

// OrgByName implements OrgsGetter.
func (s *MemStore) OrgByName(name string) (*OrgDetails, error) {
	if err := ValidateOrgName(name); err != nil {
		return nil, errors.Trace(err)
	}
	if details, ok := s.Orgs[name]; ok {
		return &details, nil
	}
	return nil, errors.NotFoundf("org %q", name)
}

// CurrentOrg implements OrgsGetter.
func (s *MemStore) CurrentOrg() (string, error) {
	if s.Current == "" {
		return "", errors.NotFoundf("current org")
	}
	return s.Current, nil
}

// UpdateOrg implements OrgsUpdater.
func (s *MemStore) UpdateOrg(name string, details OrgDetails) error {
	if err := ValidateOrgName(name); err != nil {
		return errors.Trace(err)
	}
	if err := ValidateOrgDetails(details); err != nil {
		return errors.Trace(err)
	}
	s.Orgs[name] = details
	return nil
}

// SetCurrentOrg implements OrgsUpdater.
func (s *MemStore) SetCurrentOrg(name string) error {
	if err := ValidateOrgName(name); err != nil {
		return errors.Trace(err)
	}
	if _, ok := s.Orgs[name]; !ok {
		return errors.NotFoundf("org %q", name)
	}
	s.Current = name
	return nil
}

// RemoveOrg implements OrgsRemover.
func (s *MemStore) RemoveOrg(name string) error {
	if err := ValidateOrgName(name); err != nil {
		return errors.Trace(err)
	}
	if _, ok := s.Orgs[name]; !ok {
		return errors.NotFoundf("org %q", name)
	}
	delete(s.Orgs, name)
	if s.Current == name {
		s.Current = ""
	}
	return nil
}
