// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// SetAlias stores value as alias name within category.
func (s *Store) SetAlias(category any, name, value string) {
	aliases, ok := asMap(s.data[keyAliases])
	if !ok {
		aliases = map[string]any{}
		s.data[keyAliases] = aliases
	}

	key := categoryKey(category)
	group, ok := asMap(aliases[key])
	if !ok {
		group = map[string]any{}
		aliases[key] = group
	}
	group[name] = value
}

// Aliases returns a copy of the aliases in category. The second result is
// false when the alias table or the category is missing.
func (s *Store) Aliases(category any) (map[string]string, bool) {
	group, ok := s.aliasGroup(category)
	if !ok {
		return nil, false
	}

	out := make(map[string]string, len(group))
	for name, v := range group {
		switch t := v.(type) {
		case nil:
			out[name] = ""
		case string:
			out[name] = t
		default:
			out[name] = fmt.Sprint(t)
		}
	}
	return out, true
}

// Categories returns the alias categories present in the document.
func (s *Store) Categories() []string {
	aliases, ok := asMap(s.data[keyAliases])
	if !ok {
		return nil
	}
	out := make([]string, 0, len(aliases))
	for k, v := range aliases {
		if _, ok := asMap(v); ok {
			out = append(out, k)
		}
	}
	return out
}

// ResolveAlias returns the value of alias name in category. Only a non-empty
// string value resolves.
func (s *Store) ResolveAlias(category any, name string) (string, bool) {
	group, ok := s.aliasGroup(category)
	if !ok {
		return "", false
	}
	v, ok := group[name].(string)
	if !ok || len(v) == 0 {
		return "", false
	}
	return v, true
}

func (s *Store) aliasGroup(category any) (map[string]any, bool) {
	aliases, ok := asMap(s.data[keyAliases])
	if !ok {
		return nil, false
	}
	return asMap(aliases[categoryKey(category)])
}

// categoryKey normalizes a category identifier to its string form.
func categoryKey(category any) string {
	switch c := category.(type) {
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}
