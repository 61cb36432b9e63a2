package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

// --- Tabs ---

const (
	tabSearch = iota
	tabCreate
	tabInventory
	tabTags
	tabMaterials
	tabCategories
	tabCount
)

var tabNames = [tabCount]string{"Search", "Create", "Inventory", "Tags", "Materials", "Categories"}

func tabRefKind(tab int) (api.RefKind, bool) {
	switch tab {
	case tabTags:
		return api.RefTag, true
	case tabMaterials:
		return api.RefMaterial, true
	case tabCategories:
		return api.RefCategory, true
	}
	return 0, false
}

func tabListsRecords(tab int) bool {
	return tab == tabSearch || tab == tabInventory
}

func (a App) tabLen(tab int) int {
	if tabListsRecords(tab) {
		return len(a.records)
	}
	if kind, ok := tabRefKind(tab); ok {
		return len(a.refs[kind])
	}
	return 0
}

// switchTab rebinds focus to the new tab's list, restoring the row it had.
func (a *App) switchTab(tab int) {
	if tab == a.tab {
		return
	}
	a.tabPos[a.tab] = a.focus.Current().Index()
	a.tab = tab
	a.searching = false
	g := NewFocusGroup(strings.ToLower(tabNames[tab]), a.tabLen(tab), BoundaryWrap)
	g.SetPageSize(a.pageSize)
	g.SetIndex(a.tabPos[tab])
	a.focus.Rebind(g)
	a.log.Debug("tab", "to", tabNames[tab])
}

// --- Transitions ---

func (a *App) openRecord() bool {
	rec, ok := ActiveItem(a.focus.Active(), a.records)
	if !ok {
		return false
	}
	if !a.transition(trigOpen, 0) {
		return false
	}
	a.draft = DraftFromRecord(rec)
	g := NewFocusGroup("fields", int(fieldCount), BoundaryClamp)
	if a.tab == tabInventory {
		g.SetIndex(int(fieldStock))
	}
	a.focus.Descend(g)
	a.syncFocus()
	return true
}

func (a *App) newRecord() bool {
	if !a.transition(trigNew, 0) {
		return false
	}
	a.draft = NewDraft()
	a.focus.Descend(NewFocusGroup("fields", int(fieldCount), BoundaryClamp))
	a.syncFocus()
	return true
}

// --- Keys ---

func (a *App) handleBrowseKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case isQuit(msg):
		return true, tea.Quit
	case isLeft(msg):
		a.switchTab((a.tab - 1 + tabCount) % tabCount)
		return true, nil
	case isRight(msg):
		a.switchTab((a.tab + 1) % tabCount)
		return true, nil
	case isNavigation(msg):
		return a.navigate(msg), nil
	}
	for i := 1; i <= tabCount; i++ {
		if isTab(msg, i) {
			a.switchTab(i - 1)
			return true, nil
		}
	}

	switch {
	case a.tab == tabCreate:
		if isEnter(msg) || isDescend(msg) || isKey(msg, "n") {
			return a.newRecord(), nil
		}
	case tabListsRecords(a.tab):
		return a.handleRecordListKey(msg)
	default:
		return a.handleRefListKey(msg)
	}
	return false, nil
}

func (a *App) handleRecordListKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case isEnter(msg), isDescend(msg):
		return a.openRecord(), nil
	case isKey(msg, "n"):
		return a.newRecord(), nil
	case isKey(msg, "d"):
		rec, ok := ActiveItem(a.focus.Active(), a.records)
		if !ok {
			return false, nil
		}
		return a.confirmDelete(deleteTarget{record: true, id: rec.ID, label: rec.SKU}), nil
	case isKey(msg, "/"):
		a.searching = true
		a.search.SetValue(a.query)
		a.search.CursorEnd()
		return true, a.search.Focus()
	case isKey(msg, "r"):
		return true, a.reloadRecords()
	case isKey(msg, "y"):
		rec, ok := ActiveItem(a.focus.Active(), a.records)
		if !ok || rec.SKU == "" {
			return false, nil
		}
		return true, copySKUCmd(rec.SKU)
	}
	return false, nil
}

func (a *App) handleRefListKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	kind, _ := tabRefKind(a.tab)
	switch {
	case isKey(msg, "n"):
		a.openPrompt(kind, false)
		return true, nil
	case isKey(msg, "d"):
		ref, ok := ActiveItem(a.focus.Active(), a.refs[kind])
		if !ok {
			return false, nil
		}
		return a.confirmDelete(deleteTarget{kind: kind, id: ref.ID, label: ref.Name}), nil
	case isKey(msg, "r"):
		return true, a.reloadRefs(kind)
	}
	return false, nil
}

// handleSearchKey drives the search prompt opened with "/".
func (a *App) handleSearchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case isBack(msg):
		a.searching = false
		a.search.Blur()
		return true, nil
	case isEnter(msg):
		a.searching = false
		a.search.Blur()
		a.query = strings.TrimSpace(a.search.Value())
		a.focus.Current().SetIndex(0)
		return true, a.reloadRecords()
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	return true, cmd
}

// navigate moves the active group for Up/Down and the paging keys.
func (a *App) navigate(msg tea.KeyMsg) bool {
	g := a.focus.Current()
	if g.Len() == 0 {
		return false
	}
	switch {
	case isUp(msg):
		g.Move(-1)
	case isDown(msg):
		g.Move(1)
	case isKey(msg, "pgup"):
		g.SetIndex(g.Index() - a.pageSize)
	case isKey(msg, "pgdown"):
		g.SetIndex(g.Index() + a.pageSize)
	case isKey(msg, "home"):
		g.SetIndex(0)
	case isKey(msg, "end"):
		g.SetIndex(g.Len() - 1)
	default:
		return false
	}
	return true
}
