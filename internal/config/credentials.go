// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

// Credentials are the login details stored for one target. Empty fields
// mean the value is not set.
type Credentials struct {
	Username string
	Password string
}

// CredentialsFor returns the credentials stored for target. A missing or
// malformed entry yields empty Credentials.
func (s *Store) CredentialsFor(target string) Credentials {
	auth, ok := asMap(s.data[keyAuth])
	if !ok {
		return Credentials{}
	}
	entry, ok := asMap(auth[target])
	if !ok {
		return Credentials{}
	}
	return Credentials{
		Username: stringOf(entry["username"]),
		Password: stringOf(entry["password"]),
	}
}

// SetCredentials replaces the credentials stored for target. Empty values
// are persisted as null.
func (s *Store) SetCredentials(target, username, password string) {
	auth, ok := asMap(s.data[keyAuth])
	if !ok {
		auth = map[string]any{}
		s.data[keyAuth] = auth
	}
	auth[target] = map[string]any{
		"username": nilIfEmpty(username),
		"password": nilIfEmpty(password),
	}
}

// Username returns the username stored for target.
func (s *Store) Username(target string) string {
	return s.CredentialsFor(target).Username
}

// Password returns the password stored for target.
func (s *Store) Password(target string) string {
	return s.CredentialsFor(target).Password
}
