// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config is the persistent configuration store for boshctl. A single
// YAML document, by default ~/.bosh_config, holds:
//   - global attributes (target, target_name, target_version, target_uuid,
//     release, status_timeout) at the top level;
//   - per-target credentials under "auth";
//   - aliases grouped by category under "aliases";
//   - deployment manifest paths under "deployment", keyed by target or by an
//     explicit name;
//   - optional overrides keyed by absolute working directory.
//
// The document is read once by New and written back only by Save. The one
// exception is Deployment, which upgrades a legacy single-string deployment
// entry to the per-target mapping and saves immediately.
//
// A file that does not parse as a YAML mapping is treated as an empty
// document. Only file-system failures are reported, as *AccessError.
package config
