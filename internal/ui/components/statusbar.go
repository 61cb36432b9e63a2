package components

import "github.com/charmbracelet/lipgloss"

var (
	hintDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	keyCapStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorFrame).
			Padding(0, 1).
			MarginRight(1)
	statusBarStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// Hint formats one key hint as "Save [enter]".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// StatusBar boxes each hint and wraps them into centered rows that fit
// width. A non-positive width keeps everything on one row.
func StatusBar(hints []string, width int) string {
	segments := make([]string, len(hints))
	for i, h := range hints {
		segments[i] = segmentStyle.Render(h)
	}
	rows := wrapSegments(segments, width)
	if width <= 0 {
		return statusBarStyle.Render(rows[0])
	}
	if len(rows) == 0 {
		return ""
	}

	rowWidth := 0
	for _, row := range rows {
		rowWidth = max(rowWidth, lipgloss.Width(row))
	}
	centered := lipgloss.NewStyle().Width(rowWidth).Align(lipgloss.Center)
	for i, row := range rows {
		rows[i] = centered.Render(row)
	}
	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(block)
}

// wrapSegments greedily packs segments into rows no wider than width.
func wrapSegments(segments []string, width int) []string {
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	var rows []string
	var current []string
	used := 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, seg)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
