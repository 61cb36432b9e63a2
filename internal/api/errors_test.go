package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesKindOnly(t *testing.T) {
	err := fmt.Errorf("save record: %w", NewError(KindConflict, "name %q taken", "Vase"))

	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, `name "Vase" taken`, Message(err))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindTransport, KindOf(errors.New("dial tcp: refused")))
	assert.Equal(t, "dial tcp: refused", Message(errors.New("dial tcp: refused")))
	assert.Empty(t, Message(nil))
}

func TestErrorStringIncludesCode(t *testing.T) {
	err := &Error{Kind: KindInUse, Code: "in_use", Message: "still referenced"}
	assert.Equal(t, "in_use: still referenced", err.Error())
	assert.Equal(t, "not_found", (&Error{Kind: KindNotFound}).Error())
}

func TestParseRefKind(t *testing.T) {
	kind, err := ParseRefKind("Materials")
	assert.NoError(t, err)
	assert.Equal(t, RefMaterial, kind)

	_, err = ParseRefKind("colors")
	assert.Error(t, err)
}
