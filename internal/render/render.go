// SPDX-License-Identifier: MIT

// Package render prints decolab results for the terminal, either as
// lipgloss-styled tables or as indented JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/decolab/limits"
	"github.com/katalvlaran/decolab/tissue"
	"github.com/katalvlaran/decolab/walker"
)

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table lays rows out in right-aligned columns under headers.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	line := func(style lipgloss.Style, cells []string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			var text string
			if i < len(cells) {
				text = cells[i]
			}
			parts[i] = style.Width(w + 2).Render(text)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	total := 0
	for _, w := range widths {
		total += w + 2
	}

	var sb strings.Builder
	sb.WriteString(line(Header, headers))
	sb.WriteByte('\n')
	sb.WriteString(Rule.Render(strings.Repeat("─", total)))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(line(Cell, row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compartments prints the coefficient table of t.
func Compartments(w io.Writer, t *tissue.Table) error {
	rows := make([][]string, 0, t.Len())
	for _, c := range t.Compartments() {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			num(c.HalfTime, 1),
			num(c.AN2, 4),
			num(c.BN2, 4),
		})
	}

	title := fmt.Sprintf("%s (version %d)", t.Variant(), t.Version())
	_, err := fmt.Fprintf(w, "%s\n%s", Title.Render(title),
		Table([]string{"#", "half-time", "a N2", "b N2"}, rows))
	return err
}

// Summary prints the report of one dive.
func Summary(w io.Writer, s walker.Summary) error {
	var sb strings.Builder

	name := s.Name
	if name == "" {
		name = "dive"
	}
	sb.WriteString(Title.Render(fmt.Sprintf("%s (%s)", name, s.Variant)))
	sb.WriteByte('\n')

	field := func(label, value string) {
		sb.WriteString(Label.Render(label))
		sb.WriteString(value)
		sb.WriteByte('\n')
	}
	field("grid points", strconv.Itoa(s.Points))
	field("end time", num(s.EndTime, 2)+" min")
	field("max depth", num(s.MaxDepth, 1)+" m")
	field("max ceiling", fmt.Sprintf("%s m at %s min (compartment %d)",
		num(s.MaxCeiling.Depth, 1), num(s.MaxCeilingTime, 2), s.MaxCeiling.Compartment))

	stop := num(s.FirstStop.Depth, 0) + " m"
	if s.FirstStop.Depth > 0 {
		stop = Warning.Render(stop)
	}
	field("first stop", stop)
	field("max GF", fmt.Sprintf("%s%% at %s min (compartment %d)",
		num(s.MaxGF.GF*100, 0), num(s.MaxGFTime, 2), s.MaxGF.Compartment))
	for _, sw := range s.GasSwitches {
		field("gas switch", fmt.Sprintf("%s → %s at %s min, %s m",
			sw.From, sw.To, num(sw.Time, 2), num(sw.Depth, 1)))
	}

	rows := make([][]string, 0, len(s.Peaks))
	for _, p := range s.Peaks {
		rows = append(rows, []string{strconv.Itoa(p.Compartment), num(p.Pressure, 4), num(p.Time, 2)})
	}
	sb.WriteByte('\n')
	sb.WriteString(Table([]string{"#", "peak bar", "at min"}, rows))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Ceilings prints a ceiling time series, one row every stride grid points.
// The last point is always printed.
func Ceilings(w io.Writer, r *walker.Result, ceilings []limits.Ceiling, stride int) error {
	if stride < 1 {
		stride = 1
	}
	n := min(r.Len(), len(ceilings))
	rows := make([][]string, 0, n/stride+1)
	for i := 0; i < n; i++ {
		if i%stride != 0 && i != n-1 {
			continue
		}
		rows = append(rows, []string{
			num(r.TimePoints[i], 2),
			num(r.DepthPoints[i], 1),
			r.GasNames[i],
			num(ceilings[i].Depth, 1),
			num(ceilings[i].Pressure, 3),
			strconv.Itoa(ceilings[i].Compartment),
		})
	}

	_, err := io.WriteString(w, Table(
		[]string{"min", "depth m", "gas", "ceiling m", "ceiling bar", "#"}, rows))
	return err
}

func num(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
