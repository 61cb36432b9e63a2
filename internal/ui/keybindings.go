package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Predicates ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

// isForceQuit is honoured in every context, popups included.
func isForceQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down")
}

func isLeft(msg tea.KeyMsg) bool {
	return isKey(msg, "left")
}

func isRight(msg tea.KeyMsg) bool {
	return isKey(msg, "right")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isSpace(msg tea.KeyMsg) bool {
	return isKey(msg, " ")
}

// isDescend is Tab. Backtab is deliberately not bound.
func isDescend(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyTab
}

func isBackspace(msg tea.KeyMsg) bool {
	return isKey(msg, "backspace", "ctrl+h")
}

// isNavigation reports keys that stay live while a catalog call is in flight.
func isNavigation(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "down", "pgup", "pgdown", "home", "end")
}

// isTextInput reports printable input destined for a text field.
func isTextInput(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0
}

func isTab(msg tea.KeyMsg, n int) bool {
	if n < 1 || n > 9 {
		return false
	}
	return isKey(msg, string(rune('0'+n)))
}
