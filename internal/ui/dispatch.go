package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

// Dispatch routes one key event and reports whether anything consumed it.
// Priority is global quit, then the popup, then the current mode. While a
// catalog call is in flight only navigation keys reach the mode.
func (a *App) Dispatch(msg tea.KeyMsg) (bool, tea.Cmd) {
	if isForceQuit(msg) {
		return true, tea.Quit
	}
	if a.mode.Kind == ModePopup {
		return true, a.handlePopupKey(msg)
	}
	if a.busy && !isNavigation(msg) {
		return false, nil
	}
	if a.prompt != nil {
		return a.handlePromptKey(msg)
	}
	if a.searching {
		return a.handleSearchKey(msg)
	}

	switch a.mode.Kind {
	case ModeBrowsing:
		return a.handleBrowseKey(msg)
	case ModeEditing, ModeCreating:
		return a.handleFormKey(msg)
	case ModeSubEditing, ModeCreatingSubEdit:
		return a.handleSubEditKey(msg)
	}
	return false, nil
}

// transition applies t to the current mode. Illegal pairs leave the mode
// alone and return false.
func (a *App) transition(t trigger, ref api.RefKind) bool {
	next, ok := nextMode(a.mode, t, ref)
	if !ok {
		a.log.Debug("transition rejected", "from", a.mode.String(), "trigger", t.String())
		return false
	}
	a.log.Debug("transition", "from", a.mode.String(), "trigger", t.String(), "to", next.String())
	a.mode = next
	return true
}
