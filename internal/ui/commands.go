package ui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/printdb/internal/api"
)

// --- Messages ---

type recordsLoadedMsg struct {
	query   string
	records []api.Record
	err     error
}

type refsLoadedMsg struct {
	kind api.RefKind
	refs []api.Reference
	err  error
}

type recordSavedMsg struct {
	creating bool
	record   *api.Record
	err      error
}

type deleteDoneMsg struct {
	target deleteTarget
	err    error
}

type refCreatedMsg struct {
	kind api.RefKind
	ref  *api.Reference
	err  error
}

type clipboardMsg struct {
	sku string
	err error
}

type clearToastMsg struct{}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

var toastTTL = 2500 * time.Millisecond

// --- Commands ---

func loadRecordsCmd(c api.Catalog, query string) tea.Cmd {
	return func() tea.Msg {
		records, err := c.SearchRecords(query)
		return recordsLoadedMsg{query: query, records: records, err: err}
	}
}

func loadRefsCmd(c api.Catalog, kind api.RefKind) tea.Cmd {
	return func() tea.Msg {
		refs, err := c.ListReferences(kind)
		return refsLoadedMsg{kind: kind, refs: refs, err: err}
	}
}

func saveRecordCmd(c api.Catalog, id int, creating bool, input api.RecordInput) tea.Cmd {
	return func() tea.Msg {
		var rec *api.Record
		var err error
		if creating {
			rec, err = c.CreateRecord(input)
		} else {
			rec, err = c.UpdateRecord(id, input)
		}
		return recordSavedMsg{creating: creating, record: rec, err: err}
	}
}

func deleteCmd(c api.Catalog, target deleteTarget) tea.Cmd {
	return func() tea.Msg {
		var err error
		if target.record {
			err = c.DeleteRecord(target.id)
		} else {
			err = c.DeleteReference(target.kind, target.id)
		}
		return deleteDoneMsg{target: target, err: err}
	}
}

func createRefCmd(c api.Catalog, kind api.RefKind, input api.ReferenceInput) tea.Cmd {
	return func() tea.Msg {
		ref, err := c.CreateReference(kind, input)
		return refCreatedMsg{kind: kind, ref: ref, err: err}
	}
}

func copySKUCmd(sku string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{sku: sku, err: copyToClipboard(sku)}
	}
}

func clearToastCmd() tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}
