// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigAccess matches every *AccessError via errors.Is.
	ErrConfigAccess = errors.New("cannot access config file")

	// ErrMissingTarget is returned when a deployment must be resolved against
	// the current target but neither a target nor an explicit name is set.
	ErrMissingTarget = errors.New("must have a target set")
)

// AccessError reports a file-system failure while creating, reading or
// writing the configuration file.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot %s config file %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrConfigAccess) match any AccessError.
func (e *AccessError) Is(target error) bool {
	return target == ErrConfigAccess
}
