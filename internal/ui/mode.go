package ui

import (
	"fmt"

	"github.com/gravitrone/printdb/internal/api"
)

// ModeKind enumerates the interaction modes.
type ModeKind int

const (
	ModeBrowsing ModeKind = iota
	ModeEditing
	ModeSubEditing
	ModeCreating
	ModeCreatingSubEdit
	ModePopup
)

func (k ModeKind) String() string {
	switch k {
	case ModeBrowsing:
		return "Browsing"
	case ModeEditing:
		return "Editing"
	case ModeSubEditing:
		return "SubEditing"
	case ModeCreating:
		return "Creating"
	case ModeCreatingSubEdit:
		return "CreatingSubEdit"
	case ModePopup:
		return "Popup"
	}
	return fmt.Sprintf("ModeKind(%d)", int(k))
}

// PopupKind names the overlay a Popup mode shows.
type PopupKind int

const (
	PopupNone PopupKind = iota
	PopupConfirmDelete
	PopupError
)

func (k PopupKind) String() string {
	switch k {
	case PopupConfirmDelete:
		return "ConfirmDelete"
	case PopupError:
		return "Error"
	}
	return "None"
}

// Mode is the tagged interaction state. Ref is set for the sub-edit kinds;
// Popup and Origin are set for ModePopup, where Origin is the mode the
// popup suspended.
type Mode struct {
	Kind   ModeKind
	Ref    api.RefKind
	Popup  PopupKind
	Origin *Mode
}

// Browsing is the initial mode.
func Browsing() Mode { return Mode{Kind: ModeBrowsing} }

// Editing is the record form for an existing record.
func Editing() Mode { return Mode{Kind: ModeEditing} }

// Creating is the record form for a new record.
func Creating() Mode { return Mode{Kind: ModeCreating} }

// SubEditing edits one reference collection of an existing record.
func SubEditing(ref api.RefKind) Mode { return Mode{Kind: ModeSubEditing, Ref: ref} }

// CreatingSubEdit edits one reference collection of a new record.
func CreatingSubEdit(ref api.RefKind) Mode { return Mode{Kind: ModeCreatingSubEdit, Ref: ref} }

// PopupOver suspends origin behind a popup of the given kind.
func PopupOver(kind PopupKind, origin Mode) Mode {
	o := origin
	return Mode{Kind: ModePopup, Popup: kind, Origin: &o}
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeSubEditing, ModeCreatingSubEdit:
		return fmt.Sprintf("%s{%s}", m.Kind, m.Ref)
	case ModePopup:
		origin := "?"
		if m.Origin != nil {
			origin = m.Origin.String()
		}
		return fmt.Sprintf("Popup{%s, origin=%s}", m.Popup, origin)
	}
	return m.Kind.String()
}

// IsSubEdit reports whether m is either sub-edit kind.
func (m Mode) IsSubEdit() bool {
	return m.Kind == ModeSubEditing || m.Kind == ModeCreatingSubEdit
}

// IsForm reports whether m shows the record form.
func (m Mode) IsForm() bool {
	return m.Kind == ModeEditing || m.Kind == ModeCreating
}

// HasDraft reports whether a draft lives in m.
func (m Mode) HasDraft() bool {
	return m.IsForm() || m.IsSubEdit()
}

// Creating reports whether m belongs to the create family.
func (m Mode) Creating() bool {
	return m.Kind == ModeCreating || m.Kind == ModeCreatingSubEdit
}

// Parent is the form mode a sub-edit returns to. Other modes return
// themselves.
func (m Mode) Parent() Mode {
	switch m.Kind {
	case ModeSubEditing:
		return Editing()
	case ModeCreatingSubEdit:
		return Creating()
	}
	return m
}

// Base unwraps popups down to the suspended mode.
func (m Mode) Base() Mode {
	for m.Kind == ModePopup && m.Origin != nil {
		m = *m.Origin
	}
	return m
}

// --- Transitions ---

type trigger int

const (
	trigOpen      trigger = iota // open the highlighted record
	trigNew                      // start a new record
	trigDescend                  // Tab into a sub-edit
	trigSaved                    // catalog accepted the draft
	trigCancel                   // Esc out of a form
	trigLeave                    // leave a sub-edit, merging its selection
	trigDelete                   // ask to delete something
	trigFail                     // show an error over the current mode
	trigResolve                  // popup answered, back to origin
	trigAbort                    // popup answered, origin no longer valid
)

func (t trigger) String() string {
	return [...]string{
		"open", "new", "descend", "saved", "cancel",
		"leave", "delete", "fail", "resolve", "abort",
	}[t]
}

// nextMode is the transition table. It returns false when t has no meaning
// in from, in which case from is returned unchanged.
func nextMode(from Mode, t trigger, ref api.RefKind) (Mode, bool) {
	switch from.Kind {
	case ModeBrowsing:
		switch t {
		case trigOpen:
			return Editing(), true
		case trigNew:
			return Creating(), true
		case trigDelete:
			return PopupOver(PopupConfirmDelete, from), true
		case trigFail:
			return PopupOver(PopupError, from), true
		}

	case ModeEditing:
		switch t {
		case trigDescend:
			return SubEditing(ref), true
		case trigSaved, trigCancel:
			return Browsing(), true
		case trigDelete:
			return PopupOver(PopupConfirmDelete, from), true
		case trigFail:
			return PopupOver(PopupError, from), true
		}

	case ModeCreating:
		switch t {
		case trigDescend:
			return CreatingSubEdit(ref), true
		case trigSaved, trigCancel:
			return Browsing(), true
		case trigFail:
			return PopupOver(PopupError, from), true
		}

	case ModeSubEditing, ModeCreatingSubEdit:
		switch t {
		case trigLeave:
			return from.Parent(), true
		case trigDelete:
			return PopupOver(PopupConfirmDelete, from), true
		case trigFail:
			return PopupOver(PopupError, from), true
		}

	case ModePopup:
		if from.Origin == nil {
			return Browsing(), t == trigAbort
		}
		switch t {
		case trigResolve:
			return *from.Origin, true
		case trigFail:
			return PopupOver(PopupError, *from.Origin), true
		case trigAbort:
			return Browsing(), true
		}
	}
	return from, false
}
