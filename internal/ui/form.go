package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

func (a *App) focusedField() fieldID {
	i := a.focus.Current().Index()
	if i < 0 || i >= int(fieldCount) {
		return fieldName
	}
	return fieldID(i)
}

func (a *App) handleFormKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if a.draft == nil {
		return false, nil
	}
	field := a.focusedField()
	switch {
	case isBack(msg):
		return a.cancelForm(), nil
	case isEnter(msg):
		return true, a.saveDraft()
	case isDescend(msg):
		return a.enterSubEdit(), nil
	case isNavigation(msg):
		return a.navigate(msg), nil
	case isKey(msg, "ctrl+d"):
		if a.mode.Kind != ModeEditing {
			return false, nil
		}
		return a.confirmDelete(deleteTarget{record: true, id: a.draft.RecordID, label: a.draft.SKU}), nil
	}

	if formFields[field].kind == fieldBool {
		if isSpace(msg) || isLeft(msg) || isRight(msg) {
			a.draft.ToggleProduction()
			return true, nil
		}
		return false, nil
	}
	switch {
	case isBackspace(msg):
		return a.draft.Backspace(field), nil
	case isSpace(msg):
		return a.draft.AppendText(field, " "), nil
	case isTextInput(msg):
		return a.draft.AppendText(field, string(msg.Runes)), nil
	}
	return false, nil
}

func (a *App) cancelForm() bool {
	if !a.transition(trigCancel, 0) {
		return false
	}
	a.discardEdit()
	a.syncFocus()
	return true
}

// saveDraft validates locally and, when the draft is clean, sends it to the
// catalog. The mode changes only when the result comes back.
func (a *App) saveDraft() tea.Cmd {
	creating := a.mode.Creating()
	if !a.draft.Validate(creating) {
		if f, ok := a.draft.FirstError(); ok {
			a.focus.Current().SetIndex(int(f))
		}
		a.log.Debug("draft rejected", "mode", a.mode.String(), "field", formFields[a.focusedField()].label)
		return nil
	}
	input, err := a.draft.Input()
	if err != nil {
		a.draft.FormError = err.Error()
		return nil
	}
	a.busy = true
	op := "update_record"
	if creating {
		op = "create_record"
	}
	a.log.Debug("catalog call", "op", op, "id", a.draft.RecordID)
	return tea.Batch(saveRecordCmd(a.catalog, a.draft.RecordID, creating, input), a.spinner.Tick)
}

func (a *App) handleRecordSaved(msg recordSavedMsg) tea.Cmd {
	a.busy = false
	op := "update_record"
	if msg.creating {
		op = "create_record"
	}
	if msg.err != nil {
		a.log.Debug("catalog call failed", "op", op, "err", msg.err)
		if api.KindOf(msg.err) == api.KindValidation && a.draft != nil && a.mode.IsForm() {
			a.draft.FormError = api.Message(msg.err)
			return nil
		}
		a.raiseError("Save failed", msg.err)
		return nil
	}
	rec := *msg.record
	a.log.Debug("catalog call", "op", op, "sku", rec.SKU, "result", "ok")
	a.records = activeRecords(upsertRecord(a.records, rec))
	switch {
	case a.mode.IsForm():
		if a.transition(trigSaved, 0) {
			a.discardEdit()
		}
	case a.mode.Kind == ModePopup && a.mode.Base().HasDraft():
		// The draft is committed; the popup must not hand it back.
		next := PopupOver(a.mode.Popup, Browsing())
		a.log.Debug("transition", "from", a.mode.String(), "trigger", trigSaved.String(), "to", next.String())
		a.mode = next
		a.discardEdit()
	}
	a.syncFocus()
	return a.setToast("success", "Saved "+rec.SKU+".")
}

// discardEdit drops the draft and everything stacked on it, restoring the
// browse list position.
func (a *App) discardEdit() {
	a.draft = nil
	a.sub = nil
	a.prompt = nil
	a.focus.ReturnAll()
}

// activeRecords drops retired records; they stay in the catalog but are not
// browsed or edited.
func activeRecords(records []api.Record) []api.Record {
	out := make([]api.Record, 0, len(records))
	for _, r := range records {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

func upsertRecord(records []api.Record, rec api.Record) []api.Record {
	for i := range records {
		if records[i].ID == rec.ID {
			out := append([]api.Record(nil), records...)
			out[i] = rec
			return out
		}
	}
	return append(append([]api.Record(nil), records...), rec)
}
