// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package fsutil is the small file-system surface used by the configuration
// store: existence checks, whole-file reads, owner-only atomic writes and
// chmod. The OS implementation writes through a temporary file in the target
// directory and renames it into place, so readers never observe a partially
// written document.
package fsutil
