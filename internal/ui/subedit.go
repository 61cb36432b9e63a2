package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

// subEdit is the working selection of one reference collection. The draft
// does not see it until the sub-edit is left.
type subEdit struct {
	kind     api.RefKind
	selected map[int]bool
}

func newSubEdit(kind api.RefKind, ids []int) *subEdit {
	s := &subEdit{kind: kind, selected: make(map[int]bool, len(ids))}
	for _, id := range ids {
		s.selected[id] = true
	}
	return s
}

// toggle flips id. Single-choice kinds drop every other selection when id
// becomes selected.
func (s *subEdit) toggle(id int) {
	if s.selected[id] {
		delete(s.selected, id)
		return
	}
	if s.kind.Single() {
		clear(s.selected)
	}
	s.selected[id] = true
}

func (s *subEdit) choose(id int) {
	if !s.selected[id] {
		s.toggle(id)
	}
}

// ids returns the selection in list order. Selected ids missing from refs
// are kept at the end so a stale list never drops a selection.
func (s *subEdit) ids(refs []api.Reference) []int {
	out := make([]int, 0, len(s.selected))
	seen := make(map[int]bool, len(s.selected))
	for _, ref := range refs {
		if s.selected[ref.ID] {
			out = append(out, ref.ID)
			seen[ref.ID] = true
		}
	}
	for id := range s.selected {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// --- Transitions ---

func (a *App) enterSubEdit() bool {
	if a.draft == nil {
		return false
	}
	kind := descendTarget(a.focus.Current().Index())
	if !a.transition(trigDescend, kind) {
		return false
	}
	a.sub = newSubEdit(kind, a.draft.RefIDs(kind))
	g := NewFocusGroup(kind.Path(), len(a.refs[kind]), BoundaryWrap)
	a.focus.Descend(g)
	a.syncFocus()
	return true
}

// leaveSubEdit merges the selection into the draft and hands focus back to
// the field that was focused before Tab.
func (a *App) leaveSubEdit() bool {
	if a.sub == nil || a.draft == nil {
		return false
	}
	kind := a.sub.kind
	if !a.transition(trigLeave, kind) {
		return false
	}
	a.draft.SetRefIDs(kind, a.sub.ids(a.refs[kind]))
	a.sub = nil
	a.focus.Return()
	a.syncFocus()
	return true
}

// --- Keys ---

func (a *App) handleSubEditKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if a.sub == nil {
		return false, nil
	}
	kind := a.sub.kind
	switch {
	case isBack(msg), isEnter(msg):
		return a.leaveSubEdit(), nil
	case isNavigation(msg):
		return a.navigate(msg), nil
	case isSpace(msg):
		ref, ok := ActiveItem(a.focus.Active(), a.refs[kind])
		if !ok {
			return false, nil
		}
		a.sub.toggle(ref.ID)
		return true, nil
	case isKey(msg, "n"):
		a.openPrompt(kind, true)
		return true, nil
	case isKey(msg, "d"):
		ref, ok := ActiveItem(a.focus.Active(), a.refs[kind])
		if !ok {
			return false, nil
		}
		return a.confirmDelete(deleteTarget{kind: kind, id: ref.ID, label: ref.Name}), nil
	}
	return false, nil
}
