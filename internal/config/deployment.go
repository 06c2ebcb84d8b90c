// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/tfctl/boshctl/internal/log"

// Older clients stored "deployment" as a single string that applied to
// whatever target was current. The current format maps each target (or an
// explicit name) to its own deployment path.

// IsLegacyDeploymentConfig reports whether "deployment" holds the old
// single-string form.
func (s *Store) IsLegacyDeploymentConfig() bool {
	_, ok := s.data[keyDeployment].(string)
	return ok
}

// Deployment returns the deployment path for name, or for the current target
// when name is empty. "" means no deployment is recorded, including the case
// where neither name nor target is set.
//
// A legacy entry is first moved under the current target and the document
// is saved, so the file is upgraded on first read.
func (s *Store) Deployment(name string) (string, error) {
	if name == "" && s.Target() == "" {
		return "", nil
	}
	if _, ok := s.data[keyDeployment]; !ok {
		return "", nil
	}

	if legacy, ok := s.data[keyDeployment].(string); ok {
		log.Debugf("migrating legacy deployment: target=%s path=%s", s.Target(), legacy)
		if err := s.SetDeployment(legacy, ""); err != nil {
			return "", err
		}
		if err := s.Save(); err != nil {
			return "", err
		}
	}

	deployments, ok := asMap(s.data[keyDeployment])
	if !ok {
		return "", nil
	}
	return stringOf(deployments[s.owner(name)]), nil
}

// SetDeployment records path for name, or for the current target when name is
// empty. It returns ErrMissingTarget when neither is set. A legacy entry is
// discarded.
func (s *Store) SetDeployment(path, name string) error {
	if name == "" && s.Target() == "" {
		return ErrMissingTarget
	}

	if s.IsLegacyDeploymentConfig() {
		s.data[keyDeployment] = map[string]any{}
	}
	deployments, ok := asMap(s.data[keyDeployment])
	if !ok {
		deployments = map[string]any{}
		s.data[keyDeployment] = deployments
	}
	deployments[s.owner(name)] = path
	return nil
}

// RemoveDeployment deletes the entry for name. It does nothing unless the
// deployment mapping is present, so a legacy entry is left untouched.
func (s *Store) RemoveDeployment(name string) {
	if deployments, ok := asMap(s.data[keyDeployment]); ok {
		delete(deployments, name)
	}
}

// Deployments returns a copy of the deployment mapping. It is empty for a
// legacy or missing entry.
func (s *Store) Deployments() map[string]string {
	out := map[string]string{}
	deployments, ok := asMap(s.data[keyDeployment])
	if !ok {
		return out
	}
	for k, v := range deployments {
		if p, ok := v.(string); ok {
			out[k] = p
		}
	}
	return out
}

func (s *Store) owner(name string) string {
	if name != "" {
		return name
	}
	return s.Target()
}
