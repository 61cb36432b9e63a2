package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn is one column of a grid. Width counts content cells only;
// the last column absorbs whatever the table width leaves over.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridIndent = 2

var (
	gridRuleStyle    = lipgloss.NewStyle().Foreground(colorFrame)
	gridHeaderStyle  = labelStyle.Inline(true)
	gridActiveBg     = lipgloss.Color("#1f2530")
	gridActiveStyle  = lipgloss.NewStyle().Foreground(colorValue).Background(gridActiveBg).Bold(true).Inline(true)
	gridActiveSep    = gridRuleStyle.Background(gridActiveBg).Inline(true)
	gridChosenMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("#d1606b")).Bold(true).Render("[x]")
)

// TableGridWithActiveRow renders a header, a rule and rows, highlighting
// activeRow (-1 for none). Every line is exactly tableWidth cells wide;
// callers size it with BoxContentWidth. A "[x]" in a cell is colored.
func TableGridWithActiveRow(columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	cols := fitGridColumns(columns, tableWidth)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	out := make([]string, 0, len(rows)+2)
	out = append(out, gridRow(cols, headers, border.Left, tableWidth, gridHeaderStyle, gridRuleStyle.Inline(true)))
	out = append(out, gridRule(cols, border.Middle, border.Top, tableWidth))
	for i, row := range rows {
		if i == activeRow {
			out = append(out, gridRow(cols, row, border.Left, tableWidth, gridActiveStyle, gridActiveSep))
			continue
		}
		out = append(out, gridRow(cols, row, border.Left, tableWidth, lipgloss.NewStyle().Inline(true), gridRuleStyle.Inline(true)))
	}
	return strings.Join(out, "\n")
}

// fitGridColumns stretches or shrinks the last column so the columns and
// their single-cell separators fill the width after the indent.
func fitGridColumns(columns []TableColumn, tableWidth int) []TableColumn {
	fitted := append([]TableColumn(nil), columns...)
	avail := max(tableWidth-gridIndent, len(fitted))

	used := len(fitted) - 1
	for i := range fitted {
		fitted[i].Width = max(fitted[i].Width, 1)
		used += fitted[i].Width
	}
	last := &fitted[len(fitted)-1]
	last.Width = max(last.Width+avail-used, 1)
	return fitted
}

func gridRow(cols []TableColumn, cells []string, sep string, tableWidth int, cellStyle, sepStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridIndent))
	for i, col := range cols {
		if i > 0 {
			b.WriteString(sepStyle.Render(sep))
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		cell := cellStyle.Render(gridCell(text, col.Width, col.Align))
		b.WriteString(strings.ReplaceAll(cell, "[x]", gridChosenMarker))
	}
	return padRight(b.String(), tableWidth)
}

func gridRule(cols []TableColumn, cross, horiz string, tableWidth int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = strings.Repeat(horiz, col.Width)
	}
	line := strings.Repeat(" ", gridIndent) + strings.Join(parts, cross)
	return gridRuleStyle.Inline(true).Render(padRight(line, tableWidth))
}

// gridCell clamps text to width and pads it per align.
func gridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return truncateRunes(clamped, width)
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		return strings.Repeat(" ", pad/2) + clamped + strings.Repeat(" ", pad-pad/2)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
