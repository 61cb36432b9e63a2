package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

type promptStep int

const (
	promptName promptStep = iota
	promptInitials
)

// refPrompt is the new-reference micro-flow. Categories ask for SKU
// initials after the name.
type refPrompt struct {
	kind  api.RefKind
	step  promptStep
	name  string
	input textinput.Model
	err   string

	// autoSelect picks the created reference in the open sub-edit.
	autoSelect bool
}

func newPromptInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 32
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return ti
}

func (a *App) openPrompt(kind api.RefKind, autoSelect bool) {
	a.prompt = &refPrompt{
		kind:       kind,
		input:      newPromptInput("name", 80),
		autoSelect: autoSelect,
	}
}

func (p *refPrompt) title() string {
	if p.step == promptInitials {
		return "SKU initials for " + p.name + " (optional)"
	}
	return "New " + p.kind.String()
}

func (a *App) handlePromptKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	p := a.prompt
	switch {
	case isBack(msg):
		a.prompt = nil
		return true, nil
	case isEnter(msg):
		return true, a.submitPrompt()
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.err = ""
	return true, cmd
}

func (a *App) submitPrompt() tea.Cmd {
	p := a.prompt
	value := strings.TrimSpace(p.input.Value())
	in := api.ReferenceInput{}
	switch p.step {
	case promptName:
		if value == "" {
			p.err = "name is required"
			return nil
		}
		if p.kind == api.RefCategory {
			p.name = value
			p.step = promptInitials
			p.input = newPromptInput("e.g. VAS", 3)
			return nil
		}
		in.Name = value
	case promptInitials:
		in.Name = p.name
		in.SKUInitials = strings.ToUpper(value)
	}
	a.busy = true
	a.log.Debug("catalog call", "op", "create_reference", "kind", p.kind.String(), "name", in.Name)
	return tea.Batch(createRefCmd(a.catalog, p.kind, in), a.spinner.Tick)
}

func (a *App) handleRefCreated(msg refCreatedMsg) tea.Cmd {
	a.busy = false
	if msg.err != nil {
		a.log.Debug("catalog call failed", "op", "create_reference", "kind", msg.kind.String(), "err", msg.err)
		if api.KindOf(msg.err) == api.KindValidation && a.prompt != nil {
			a.prompt.err = api.Message(msg.err)
			return nil
		}
		a.raiseError("Could not create "+msg.kind.String(), msg.err)
		return nil
	}
	ref := *msg.ref
	a.refs[msg.kind] = append(a.refs[msg.kind], ref)

	autoSelect := a.prompt != nil && a.prompt.autoSelect
	a.prompt = nil
	if autoSelect && a.sub != nil && a.sub.kind == msg.kind {
		a.sub.choose(ref.ID)
		a.syncFocus()
		a.focus.Current().SetIndex(len(a.refs[msg.kind]) - 1)
	} else {
		a.syncFocus()
	}
	return a.setToast("success", "Created "+msg.kind.String()+" "+ref.Name+".")
}
