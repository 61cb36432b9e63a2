package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle      = frameStyle.Width(44)
	errorDialogStyle = errorFrameStyle.Width(44)
	dialogTitleStyle = titleStyle
	dialogBodyStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	dialogFieldStyle = lipgloss.NewStyle().Foreground(colorLabel)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	body := dialogBodyStyle.Render(SanitizeText(message))
	hint := dialogBodyStyle.Render("\ny: confirm | n: cancel")
	return dialogStyle.Render(header + "\n\n" + body + hint)
}

// BusyDialog renders a confirmation whose action is already running.
func BusyDialog(title, message, spinner string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	body := dialogBodyStyle.Render(SanitizeText(message))
	return dialogStyle.Render(header + "\n\n" + body + "\n\n" + spinner + " working...")
}

// ErrorDialog renders an error that must be acknowledged with enter.
func ErrorDialog(title, message string) string {
	header := errorTitleStyle.Render(SanitizeOneLine(title))
	body := errorTextStyle.Render(SanitizeText(message))
	hint := dialogBodyStyle.Render("\n\nenter: ok")
	return errorDialogStyle.Render(header + "\n\n" + body + hint)
}

// InputDialog renders a text input prompt. input is the already rendered
// field, errText an optional validation message shown under it.
func InputDialog(title, input, errText string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	field := dialogFieldStyle.Render(input)
	body := header + "\n\n" + field
	if errText != "" {
		body += "\n" + errorTitleStyle.Render(SanitizeOneLine(errText))
	}
	hint := dialogBodyStyle.Render("\nenter: submit | esc: cancel")
	return dialogStyle.Render(body + hint)
}
