// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/boshctl/internal/fsutil"
	"github.com/tfctl/boshctl/internal/log"
	"github.com/tfctl/boshctl/internal/util"
)

// DefaultFile is used when New is given an empty filename.
const DefaultFile = "~/.bosh_config"

// Top-level keys of the global attributes.
const (
	keyTarget        = "target"
	keyTargetName    = "target_name"
	keyTargetVersion = "target_version"
	keyTargetUUID    = "target_uuid"
	keyRelease       = "release"
	keyStatusTimeout = "status_timeout"
	keyAuth          = "auth"
	keyAliases       = "aliases"
	keyDeployment    = "deployment"
)

// Store is the in-memory configuration document bound to its file.
//
// The working directory is captured once in New and used as the key for
// directory-scoped values for the lifetime of the Store.
type Store struct {
	filename string
	workDir  string
	fs       fsutil.FS
	data     map[string]any
}

// Option customizes a Store at construction.
type Option func(*Store)

// WithFS replaces the host file system.
func WithFS(fs fsutil.FS) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// DefaultPath returns DefaultFile expanded to an absolute path.
func DefaultPath() (string, error) {
	return util.AbsPath(DefaultFile)
}

// New loads the configuration at filename for the given working directory.
// Empty arguments fall back to DefaultFile and the process working directory.
//
// A missing file is created with an empty document and owner-only
// permissions. Content that does not parse as a mapping is discarded.
func New(filename, workDir string, opts ...Option) (*Store, error) {
	if filename == "" {
		filename = DefaultFile
	}
	path, err := util.AbsPath(filename)
	if err != nil {
		return nil, &AccessError{Op: "resolve", Path: filename, Err: err}
	}

	wd, err := util.WorkDir(workDir)
	if err != nil {
		return nil, &AccessError{Op: "resolve", Path: path, Err: err}
	}

	s := &Store{
		filename: path,
		workDir:  wd,
		fs:       fsutil.OS{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.fs.Exists(path) {
		if err := s.fs.WriteFile(path, encodeEmpty()); err != nil {
			return nil, &AccessError{Op: "create", Path: path, Err: err}
		}
		if err := s.fs.Chmod(path, fsutil.OwnerOnly); err != nil {
			return nil, &AccessError{Op: "create", Path: path, Err: err}
		}
		log.Debugf("created config file: path=%s", path)
	}

	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, &AccessError{Op: "read", Path: path, Err: err}
	}
	s.data = decode(raw)
	log.Debugf("loaded config file: path=%s keys=%d workdir=%s", path, len(s.data), wd)

	return s, nil
}

// Filename returns the absolute path of the backing file.
func (s *Store) Filename() string {
	return s.filename
}

// Stat returns file info of the backing file.
func (s *Store) Stat() (os.FileInfo, error) {
	return s.fs.Stat(s.filename)
}

// WorkDir returns the working directory used for local scoping.
func (s *Store) WorkDir() string {
	return s.workDir
}

// Save writes the whole document back to the file.
func (s *Store) Save() error {
	out, err := encode(s.data)
	if err != nil {
		return &AccessError{Op: "encode", Path: s.filename, Err: err}
	}
	if err := s.fs.WriteFile(s.filename, out); err != nil {
		return &AccessError{Op: "write", Path: s.filename, Err: err}
	}
	log.Debugf("saved config file: path=%s", s.filename)
	return nil
}

// Read returns the value stored under key. When tryLocalFirst is set and the
// working directory has its own entry for key, that entry wins. A nil result
// means the key is absent (or explicitly null).
func (s *Store) Read(key string, tryLocalFirst bool) any {
	if tryLocalFirst {
		if local, ok := asMap(s.data[s.workDir]); ok {
			if v, ok := local[key]; ok {
				return v
			}
		}
	}
	return s.data[key]
}

// Write stores value under key for the current working directory only.
func (s *Store) Write(key string, value any) {
	local, ok := asMap(s.data[s.workDir])
	if !ok {
		local = map[string]any{}
		s.data[s.workDir] = local
	}
	local[key] = value
}

// WriteGlobal stores value under key at the top level.
func (s *Store) WriteGlobal(key string, value any) {
	s.data[key] = value
}

// Lookup evaluates a gjson path against the document, for example
// "auth.https://10.0.0.1:25555.username" written with gjson escapes.
func (s *Store) Lookup(path string) (any, bool) {
	raw, err := json.Marshal(s.data)
	if err != nil {
		log.Debugf("lookup marshal failed: err=%v", err)
		return nil, false
	}
	res := gjson.GetBytes(raw, path)
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}

// Target returns the current target, or "" if none is set.
func (s *Store) Target() string { return stringOf(s.Read(keyTarget, false)) }

// SetTarget sets the current target. An empty value clears it.
func (s *Store) SetTarget(v string) { s.WriteGlobal(keyTarget, nilIfEmpty(v)) }

// TargetName returns the display name of the current target.
func (s *Store) TargetName() string { return stringOf(s.Read(keyTargetName, false)) }

// SetTargetName sets the display name of the current target.
func (s *Store) SetTargetName(v string) { s.WriteGlobal(keyTargetName, nilIfEmpty(v)) }

// TargetVersion returns the version recorded for the current target.
func (s *Store) TargetVersion() string { return stringOf(s.Read(keyTargetVersion, false)) }

// SetTargetVersion records the version of the current target.
func (s *Store) SetTargetVersion(v string) { s.WriteGlobal(keyTargetVersion, nilIfEmpty(v)) }

// TargetUUID returns the UUID recorded for the current target.
func (s *Store) TargetUUID() string { return stringOf(s.Read(keyTargetUUID, false)) }

// SetTargetUUID records the UUID of the current target.
func (s *Store) SetTargetUUID(v string) { s.WriteGlobal(keyTargetUUID, nilIfEmpty(v)) }

// Release returns the release directory in use.
func (s *Store) Release() string { return stringOf(s.Read(keyRelease, false)) }

// SetRelease sets the release directory in use.
func (s *Store) SetRelease(v string) { s.WriteGlobal(keyRelease, nilIfEmpty(v)) }

// StatusTimeout returns the status timeout in seconds and whether it is set
// to a numeric value.
func (s *Store) StatusTimeout() (int, bool) {
	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := s.Read(keyStatusTimeout, false).(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// SetStatusTimeout sets the status timeout in seconds.
func (s *Store) SetStatusTimeout(seconds int) { s.WriteGlobal(keyStatusTimeout, seconds) }

// decode parses raw into a top-level mapping. Anything else yields an empty
// document.
func decode(raw []byte) map[string]any {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Debugf("ignoring malformed config file: err=%v", err)
		return map[string]any{}
	}
	m, ok := asMap(normalize(doc))
	if !ok {
		if doc != nil {
			log.Debugf("ignoring config file with non-mapping top level: type=%T", doc)
		}
		return map[string]any{}
	}
	return m
}

func encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeEmpty() []byte {
	out, _ := encode(map[string]any{})
	return out
}

// normalize turns every nested map into map[string]any so lookups and JSON
// encoding see one map shape regardless of the YAML key types.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func nilIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}
