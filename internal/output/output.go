// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"
)

// Formats lists the accepted values of the --output flag.
var Formats = []string{"text", "json", "yaml"}

// Options controls text rendering.
type Options struct {
	Color  bool
	Titles bool
}

// Result is a set of rows with named columns. Records is the structured form
// emitted for json and yaml output.
type Result struct {
	Headers []string
	Rows    [][]string
	Records any
}

// Emit writes r in the given format.
func Emit(w io.Writer, format string, r Result, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "", "text":
		TableWriter(w, r.Headers, r.Rows, opts)
		return nil
	case "json":
		return JSON(w, r.Records)
	case "yaml":
		return YAML(w, r.Records)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// TableWriter renders rows as a borderless table. Headers are shown only
// when opts.Titles is set.
func TableWriter(w io.Writer, headers []string, rows [][]string, opts Options) {
	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors()
		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles && len(headers) > 0 {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// Label renders a field label for key/value listings. It is bold and
// colored only when opts.Color is set.
func Label(s string, opts Options) string {
	if !opts.Color {
		return s
	}
	header, _, _ := getColors()
	return lipgloss.NewStyle().Bold(true).Foreground(header).Render(s)
}

// SortRows orders rows by the given column, ascending. A leading "-" in
// spec reverses the order; spec is the column index as a string.
func SortRows(rows [][]string, spec string) {
	desc := strings.HasPrefix(spec, "-")
	col, err := strconv.Atoi(strings.TrimPrefix(spec, "-"))
	if err != nil || col < 0 {
		return
	}

	cell := func(r []string) string {
		if col < len(r) {
			return strings.ToLower(r[col])
		}
		return ""
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return cell(rows[i]) > cell(rows[j])
		}
		return cell(rows[i]) < cell(rows[j])
	})
}

// Dash substitutes "-" for an empty cell value.
func Dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func getColors() (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	pick := func(light, dark string) color.Color {
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = pick("#b08800", "#f6be00")
	even = pick("#333333", "#ffffff")
	odd = pick("#0088a0", "#00c8f0")
	return
}
