package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ██████  ██████  ██ ███    ██ ████████ ██████  ██████
 ██   ██ ██   ██ ██ ████   ██    ██    ██   ██ ██   ██
 ██████  ██████  ██ ██ ██  ██    ██    ██   ██ ██████
 ██      ██   ██ ██ ██  ██ ██    ██    ██   ██ ██   ██
 ██      ██   ██ ██ ██   ████    ██    ██████  ██████`

const bannerSubtitle = "Print Catalog • Terminal Editor"

// RenderBanner returns the styled ASCII banner. Short terminals get the
// one-line variant.
func RenderBanner(height int) string {
	if height > 0 && height < 30 {
		return BannerStyle.Render("printdb") + "  " + MutedStyle.Render(bannerSubtitle) + "\n"
	}
	lines := splitLines(bannerArt)
	var rendered strings.Builder

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered.WriteString(BannerStyle.Render(line) + "\n")
	}

	subtitleWidth := lipgloss.Width(bannerSubtitle)
	blockWidth := max(maxWidth, subtitleWidth)
	subtitle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)
	underline := lipgloss.NewStyle().
		Foreground(colorRule).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + rendered.String() + "\n" + subtitle + "\n" + underline + "\n"
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
