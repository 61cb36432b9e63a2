package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGridLinesMatchWidth(t *testing.T) {
	cols := []TableColumn{
		{Header: "SKU", Width: 10},
		{Header: "Name", Width: 12},
		{Header: "Stock", Width: 5, Align: lipgloss.Right},
	}
	rows := [][]string{
		{"VAS-0001", "Spiral vase with a very long name", "4"},
		{"HOO-0001", "Wall hook", ""},
	}
	out := TableGridWithActiveRow(cols, rows, 50, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 50, lipgloss.Width(line))
	}
	assert.Contains(t, SanitizeText(lines[0]), "SKU")
	assert.Contains(t, SanitizeText(lines[2]), "…")
	assert.Contains(t, SanitizeText(lines[3]), "Wall hook")
}

func TestFitGridColumnsGivesRemainderToLastColumn(t *testing.T) {
	cols := fitGridColumns([]TableColumn{{Width: 10}, {Width: 5}}, 40)
	assert.Equal(t, 10, cols[0].Width)
	assert.Equal(t, 40-gridIndent-10-1, cols[1].Width)

	narrow := fitGridColumns([]TableColumn{{Width: 10}, {Width: 5}}, 8)
	assert.Equal(t, 1, narrow[1].Width)
}

func TestGridCellAlignment(t *testing.T) {
	assert.Equal(t, "ab  ", gridCell("ab", 4, lipgloss.Left))
	assert.Equal(t, "  ab", gridCell("ab", 4, lipgloss.Right))
	assert.Equal(t, " ab ", gridCell("ab", 4, lipgloss.Center))
	assert.Equal(t, "", gridCell("ab", 0, lipgloss.Left))
}

func TestTableGridEmptyInputs(t *testing.T) {
	assert.Equal(t, "", TableGridWithActiveRow(nil, nil, 0, -1))
	assert.Equal(t, strings.Repeat(" ", 6), TableGridWithActiveRow(nil, nil, 6, -1))
}
