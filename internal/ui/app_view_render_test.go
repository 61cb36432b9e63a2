package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/printdb/internal/api"
	"github.com/gravitrone/printdb/internal/ui/components"
)

func TestViewBrowsingShowsRecordsAndPreview(t *testing.T) {
	cat := newFakeCatalog()
	desc := "Printed in **vase mode**."
	cat.records[0].Description = &desc
	app := newTestApp(t, cat)

	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "VAS-0001")
	assert.Contains(t, out, "Wall hook")
	assert.Contains(t, out, "Vases")
	assert.Contains(t, out, "Printed")
	assert.Contains(t, out, "Copy SKU")
}

func TestViewFormShowsFieldsAndReferenceNames(t *testing.T) {
	app := newTestApp(t, newFakeCatalog())
	app = press(t, app, "enter")

	out := app.View()
	assert.Contains(t, out, "Edit VAS-0001")
	assert.Contains(t, out, "Selling price")
	assert.Contains(t, out, "gift")
	assert.Contains(t, out, "Discard")
	assert.Contains(t, out, "ctrl+d")
}

func TestViewSubEditMarksSelection(t *testing.T) {
	app := newTestApp(t, newFakeCatalog())
	app = press(t, app, "enter", "tab")

	out := app.View()
	assert.Contains(t, out, "Choose tags")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Toggle")
}

func TestViewPopupsAndPrompt(t *testing.T) {
	app := newTestApp(t, newFakeCatalog())

	app = press(t, app, "d")
	out := app.View()
	assert.Contains(t, out, "Delete record")
	assert.Contains(t, out, "VAS-0001")
	assert.Contains(t, out, "y: confirm")
	app = press(t, app, "n")

	app = press(t, app, "6", "n")
	assert.Contains(t, app.View(), "New category")
}

func TestViewEmptyReferenceList(t *testing.T) {
	cat := newFakeCatalog()
	cat.refs[api.RefMaterial] = nil
	app := newTestApp(t, cat)
	app = press(t, app, "5")
	assert.Contains(t, app.View(), "Press n to add one")
}

func TestViewNarrowTerminalDoesNotPanic(t *testing.T) {
	app := newTestApp(t, newFakeCatalog())
	model, _ := app.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	app = model.(App)
	assert.NotPanics(t, func() { _ = app.View() })
	assert.True(t, strings.Contains(app.View(), "printdb"))
}

func TestCenterBlockPadsShortLines(t *testing.T) {
	out := centerBlock("hi\nworld", 10)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], " "))
	assert.Contains(t, lines[1], "world")
	assert.Equal(t, "0123456789", centerBlock("0123456789", 5))
}

func TestRefNamesFallsBackToIDs(t *testing.T) {
	app := newTestApp(t, newFakeCatalog())
	assert.Equal(t, "ABS, #99", app.refNames(api.RefTag, []int{1, 99}))
	assert.Equal(t, "", app.refNames(api.RefTag, nil))
}
