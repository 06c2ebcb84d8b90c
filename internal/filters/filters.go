// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tfctl/boshctl/internal/log"
)

// filterRegex splits an expression into key, operator (optionally negated
// with '!') and target. "name" alone is a key with no operator.
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Value   string
}

// BuildFilters parses a comma delimited filter specification. Expressions
// with an empty key or no operator are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Allow an override for values that contain commas.
	delim := ","
	if d, ok := os.LookupEnv("BOSHCTL_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, expr := range strings.Split(spec, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			log.Errorf("invalid filter: %s", expr)
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[1]))
		operand := parts[2]
		if key == "" || operand == "" {
			log.Errorf("invalid filter: %s", expr)
			continue
		}

		negate := strings.HasPrefix(operand, "!")
		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: strings.TrimPrefix(operand, "!"),
			Value:   parts[3],
		})
	}

	return filters
}

// Apply returns the rows that match every filter in spec. Filter keys name
// columns by header, case-insensitively. Cells are compared by their visible
// text. A filter on an unknown column is logged and ignored.
func Apply(headers []string, rows [][]string, spec string) [][]string {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return rows
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(h)] = i
	}

	var active []Filter
	var cols []int
	for _, f := range filters {
		col, ok := index[f.Key]
		if !ok {
			log.Warnf("filter key not found: %s", f.Key)
			continue
		}
		active = append(active, f)
		cols = append(cols, col)
	}

	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if matches(row, active, cols) {
			kept = append(kept, row)
		}
	}
	return kept
}

func matches(row []string, filters []Filter, cols []int) bool {
	for i, f := range filters {
		value := ""
		if cols[i] < len(row) {
			value = ansi.Strip(row[cols[i]])
		}
		if !checkStringOperand(value, f) {
			return false
		}
	}
	return true
}

// checkStringOperand evaluates one filter against value.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}
