package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogShowsKeys(t *testing.T) {
	out := ConfirmDialog("Delete tag", "Delete ABS?")
	assert.Contains(t, out, "Delete tag")
	assert.Contains(t, out, "Delete ABS?")
	assert.Contains(t, out, "y: confirm")
}

func TestErrorDialogShowsAcknowledgeKey(t *testing.T) {
	out := ErrorDialog("In use", "material \"ABS\" is used by 2 record(s)")
	assert.Contains(t, out, "In use")
	assert.Contains(t, out, "used by 2")
	assert.Contains(t, out, "enter: ok")
}

func TestInputDialogShowsError(t *testing.T) {
	out := InputDialog("New tag", "> gift", "tag \"gift\" already exists")
	assert.Contains(t, out, "> gift")
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "esc: cancel")
}

func TestBusyDialog(t *testing.T) {
	out := BusyDialog("Delete record", "Delete VAS-0001?", "*")
	assert.Contains(t, out, "working")
}
