// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a listing with --filter expressions.
//
// An expression is KEY OPERATOR VALUE, where KEY is a column header
// (case-insensitive). Several expressions are separated by commas, or by
// BOSHCTL_FILTER_DELIM when values contain commas. A row is kept when it
// matches all of them.
//
// Operators, each negated by a leading '!':
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : lexically less than
//   - > : lexically greater than
//   - @ : contains substring
//   - / : regular expression match
//
// Examples:
//
//   - "category=target" : target aliases only
//   - "target^https://10." : targets on the 10. network
//   - "manifest!@staging" : manifests whose path does not contain "staging"
package filters
