package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

// deleteTarget identifies what a Confirm-Delete popup will remove.
type deleteTarget struct {
	record bool
	kind   api.RefKind
	id     int
	label  string
}

func (t deleteTarget) describe() string {
	if t.record {
		return fmt.Sprintf("record %s", t.label)
	}
	return fmt.Sprintf("%s %q", t.kind, t.label)
}

// popupState is the content of the active popup. The popup kind and its
// origin live on the Mode.
type popupState struct {
	target  deleteTarget
	title   string
	message string
	busy    bool

	// forceBrowse makes acknowledging return to Browsing with fresh lists
	// instead of the origin.
	forceBrowse bool
}

// --- Raising ---

func (a *App) confirmDelete(target deleteTarget) bool {
	if !a.transition(trigDelete, 0) {
		return false
	}
	a.popup = &popupState{
		target:  target,
		title:   "Delete " + target.kind.String(),
		message: fmt.Sprintf("Delete %s? This cannot be undone.", target.describe()),
	}
	if target.record {
		a.popup.title = "Delete record"
	}
	return true
}

// raiseError shows err in an Error-Display popup over the current mode, or
// over the origin when a popup is already up.
func (a *App) raiseError(title string, err error) {
	if !a.transition(trigFail, 0) {
		a.log.Warn("error not shown", "mode", a.mode.String(), "err", err)
		return
	}
	a.popup = &popupState{
		title:       title,
		message:     api.Message(err),
		forceBrowse: api.KindOf(err) == api.KindNotFound,
	}
}

// --- Keys ---

// handlePopupKey owns every key while a popup is up. Keys it does not
// designate are swallowed.
func (a *App) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	if a.popup == nil {
		a.transition(trigAbort, 0)
		return nil
	}
	switch a.mode.Popup {
	case PopupConfirmDelete:
		if a.popup.busy {
			return nil
		}
		switch {
		case isKey(msg, "y", "Y"):
			a.popup.busy = true
			a.busy = true
			a.log.Debug("catalog call", "op", "delete", "target", a.popup.target.describe())
			return tea.Batch(deleteCmd(a.catalog, a.popup.target), a.spinner.Tick)
		case isKey(msg, "n", "N"):
			a.popup = nil
			a.transition(trigResolve, 0)
			a.syncFocus()
		}
	case PopupError:
		if isEnter(msg) {
			return a.acknowledgeError()
		}
	}
	return nil
}

func (a *App) acknowledgeError() tea.Cmd {
	force := a.popup.forceBrowse
	a.popup = nil
	if !force {
		a.transition(trigResolve, 0)
		a.syncFocus()
		return nil
	}
	a.transition(trigAbort, 0)
	a.discardEdit()
	a.syncFocus()
	return a.reloadAll()
}

// --- Results ---

func (a *App) handleDeleteDone(msg deleteDoneMsg) tea.Cmd {
	a.busy = false
	if a.popup != nil {
		a.popup.busy = false
	}
	if msg.err != nil {
		a.log.Debug("catalog call failed", "op", "delete", "target", msg.target.describe(), "err", msg.err)
		a.raiseError("Delete failed", msg.err)
		return nil
	}
	a.log.Debug("catalog call", "op", "delete", "target", msg.target.describe(), "result", "ok")
	a.popup = nil

	if msg.target.record {
		a.records = removeRecord(a.records, msg.target.id)
		if a.draft != nil && a.draft.RecordID == msg.target.id && !a.mode.Base().Creating() {
			a.transition(trigAbort, 0)
			a.discardEdit()
		} else {
			a.transition(trigResolve, 0)
		}
	} else {
		a.refs[msg.target.kind] = removeReference(a.refs[msg.target.kind], msg.target.id)
		if a.draft != nil {
			a.draft.DropRef(msg.target.kind, msg.target.id)
		}
		if a.sub != nil && a.sub.kind == msg.target.kind {
			delete(a.sub.selected, msg.target.id)
		}
		a.transition(trigResolve, 0)
	}
	a.syncFocus()
	return a.setToast("success", "Deleted "+msg.target.describe()+".")
}

func removeRecord(records []api.Record, id int) []api.Record {
	out := make([]api.Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func removeReference(refs []api.Reference, id int) []api.Reference {
	out := make([]api.Reference, 0, len(refs))
	for _, r := range refs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
