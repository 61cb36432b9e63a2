package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
	assert.True(t, isForceQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.False(t, isForceQuit(runeKey('q')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsSpace(t *testing.T) {
	assert.True(t, isSpace(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, isSpace(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsDescendIgnoresBacktab(t *testing.T) {
	assert.True(t, isDescend(tea.KeyMsg{Type: tea.KeyTab}))
	assert.False(t, isDescend(tea.KeyMsg{Type: tea.KeyShiftTab}))
}

func TestIsNavigation(t *testing.T) {
	assert.True(t, isNavigation(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, isNavigation(tea.KeyMsg{Type: tea.KeyDown}))
	assert.False(t, isNavigation(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isNavigation(runeKey('d')))
}

func TestIsTextInput(t *testing.T) {
	assert.True(t, isTextInput(runeKey('x')))
	assert.False(t, isTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}))
	assert.False(t, isTextInput(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsTabNumber(t *testing.T) {
	assert.True(t, isTab(runeKey('3'), 3))
	assert.False(t, isTab(runeKey('3'), 4))
	assert.False(t, isTab(runeKey('0'), 0))
}
