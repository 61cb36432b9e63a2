package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/printdb/internal/api"
)

func TestNextModeTransitionTable(t *testing.T) {
	tests := []struct {
		name string
		from Mode
		trig trigger
		ref  api.RefKind
		want Mode
		ok   bool
	}{
		{"open record", Browsing(), trigOpen, 0, Editing(), true},
		{"new record", Browsing(), trigNew, 0, Creating(), true},
		{"browse delete", Browsing(), trigDelete, 0, PopupOver(PopupConfirmDelete, Browsing()), true},
		{"edit descend", Editing(), trigDescend, api.RefMaterial, SubEditing(api.RefMaterial), true},
		{"edit saved", Editing(), trigSaved, 0, Browsing(), true},
		{"edit cancel", Editing(), trigCancel, 0, Browsing(), true},
		{"edit delete", Editing(), trigDelete, 0, PopupOver(PopupConfirmDelete, Editing()), true},
		{"create descend", Creating(), trigDescend, api.RefTag, CreatingSubEdit(api.RefTag), true},
		{"create saved", Creating(), trigSaved, 0, Browsing(), true},
		{"create cancel", Creating(), trigCancel, 0, Browsing(), true},
		{"create delete", Creating(), trigDelete, 0, Creating(), false},
		{"sub leave", SubEditing(api.RefTag), trigLeave, 0, Editing(), true},
		{"create sub leave", CreatingSubEdit(api.RefCategory), trigLeave, 0, Creating(), true},
		{"sub delete", SubEditing(api.RefTag), trigDelete, 0, PopupOver(PopupConfirmDelete, SubEditing(api.RefTag)), true},
		{"sub cannot descend", SubEditing(api.RefTag), trigDescend, api.RefMaterial, SubEditing(api.RefTag), false},
		{"browse cannot leave", Browsing(), trigLeave, 0, Browsing(), false},
		{"browse cannot save", Browsing(), trigSaved, 0, Browsing(), false},
		{"edit cannot open", Editing(), trigOpen, 0, Editing(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextMode(tt.from, tt.trig, tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestNextModePopupReturnsToExactOrigin(t *testing.T) {
	origin := CreatingSubEdit(api.RefCategory)
	popup := PopupOver(PopupConfirmDelete, origin)

	back, ok := nextMode(popup, trigResolve, 0)
	assert.True(t, ok)
	assert.Equal(t, origin, back)

	failed, ok := nextMode(popup, trigFail, 0)
	assert.True(t, ok)
	assert.Equal(t, PopupError, failed.Popup)
	assert.Equal(t, origin, *failed.Origin)

	aborted, ok := nextMode(failed, trigAbort, 0)
	assert.True(t, ok)
	assert.Equal(t, Browsing(), aborted)

	same, ok := nextMode(popup, trigOpen, 0)
	assert.False(t, ok)
	assert.Equal(t, popup, same)
}

func TestModeHelpers(t *testing.T) {
	assert.True(t, SubEditing(api.RefTag).IsSubEdit())
	assert.True(t, CreatingSubEdit(api.RefTag).Creating())
	assert.False(t, SubEditing(api.RefTag).Creating())
	assert.True(t, Editing().HasDraft())
	assert.False(t, Browsing().HasDraft())
	assert.Equal(t, Creating(), CreatingSubEdit(api.RefMaterial).Parent())

	nested := PopupOver(PopupError, SubEditing(api.RefMaterial))
	assert.Equal(t, SubEditing(api.RefMaterial), nested.Base())
	assert.Equal(t, "Popup{Error, origin=SubEditing{material}}", nested.String())
}
