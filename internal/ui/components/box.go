package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Palette shared by every framed block.
var (
	colorFrame       = lipgloss.Color("#273540")
	colorFrameActive = lipgloss.Color("#7f57b4")
	colorFrameError  = lipgloss.Color("#7a2f3a")
	colorTitle       = lipgloss.Color("#7f57b4")
	colorLabel       = lipgloss.Color("#436b77")
	colorValue       = lipgloss.Color("#d7d9da")
	colorMuted       = lipgloss.Color("#9ba0bf")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFrame).
			Padding(1, 2)

	activeFrameStyle = frameStyle.BorderForeground(colorFrameActive)
	errorFrameStyle  = frameStyle.BorderForeground(colorFrameError)

	titleStyle      = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	labelStyle      = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	valueStyle      = lipgloss.NewStyle().Foreground(colorValue)
	errorTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")).Bold(true)
	errorTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6b5b5"))
)

// boxWidth is 70% of the terminal, kept between 40 and 80 cells.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(width*70/100, 40), 80)
}

// safeBoxWidth never exceeds the terminal itself.
func safeBoxWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

func frame(style lipgloss.Style, content string, width int) string {
	return style.Width(safeBoxWidth(width)).Render(content)
}

// Box frames content in the muted border.
func Box(content string, width int) string {
	return frame(frameStyle, content, width)
}

// ActiveBox frames content in the accent border used for the focused form.
func ActiveBox(content string, width int) string {
	return frame(activeFrameStyle, content, width)
}

// ErrorBox frames an error message with an optional title line.
func ErrorBox(title, message string, width int) string {
	body := errorTextStyle.Render(message)
	if title != "" {
		body = errorTitleStyle.Render(title) + "\n\n" + body
	}
	return frame(errorFrameStyle, body, width)
}

// BoxContentWidth is the usable width inside Box: border 2, padding 4.
func BoxContentWidth(width int) int {
	return max(safeBoxWidth(width)-6, 0)
}

// TitledBox frames content and writes "[ title ]" into the top border.
func TitledBox(title, content string, width int) string {
	boxed := Box(content, width)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}
	lines[0] = titledTopBorder(title, lineWidth)
	return strings.Join(lines, "\n")
}

func titledTopBorder(title string, lineWidth int) string {
	border := lipgloss.RoundedBorder()
	inner := lineWidth - 2
	label := truncateRunes(fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title)), inner)
	left := (inner - lipgloss.Width(label)) / 2
	right := inner - lipgloss.Width(label) - left

	edge := lipgloss.NewStyle().Foreground(colorFrame)
	return edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		titleStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)
}

// ClampTextWidth flattens text to one line and cuts it to width cells,
// ending in an ellipsis when it was cut.
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return truncateRunes(cleaned, width)
	}
	return ansi.Truncate(cleaned, width, "…")
}

// truncateRunes cuts s to max cells, keeping escape sequences intact.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return ansi.Truncate(s, max, "")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// TableRow is one label/value line of a Table.
type TableRow struct {
	Label string
	Value string
}

// Table renders aligned label/value rows in a (titled) box. Labels take at
// most half the content width and 24 cells; both columns are clamped.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = maxInt(labelWidth, lipgloss.Width(SanitizeOneLine(r.Label)))
	}
	content := BoxContentWidth(width)
	if content <= 0 {
		content = labelWidth + 8
	}
	labelWidth = min(labelWidth, 24)
	if half := content / 2; half >= 8 && labelWidth > half {
		labelWidth = half
	}
	valueWidth := content - labelWidth - 2
	if valueWidth < 4 {
		valueWidth = 4
		labelWidth = maxInt(4, content-valueWidth-2)
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		label := labelStyle.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		lines[i] = label + "  " + valueStyle.Render(ClampTextWidth(r.Value, valueWidth))
	}
	body := strings.Join(lines, "\n")
	if title != "" {
		return TitledBox(title, body, width)
	}
	return Box(body, width)
}
