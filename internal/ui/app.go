package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/gravitrone/printdb/internal/api"
	"github.com/gravitrone/printdb/internal/ui/components"
)

// --- App Model ---

// App is the top-level Bubble Tea model for the catalog editor.
type App struct {
	catalog api.Catalog
	log     *log.Logger

	mode   Mode
	focus  Focus
	tab    int
	tabPos [tabCount]int

	records []api.Record
	refs    [3][]api.Reference

	query     string
	search    textinput.Model
	searching bool

	draft  *Draft
	sub    *subEdit
	prompt *refPrompt
	popup  *popupState

	busy    bool
	loading int
	spinner spinner.Model

	pageSize int
	width    int
	height   int
	toast    *appToast
}

type appToast struct {
	level string
	text  string
}

// NewApp creates the root model. A nil logger discards output.
func NewApp(catalog api.Catalog, logger *log.Logger) App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	search := textinput.New()
	search.Placeholder = "name or SKU"
	search.Prompt = "/ "
	search.CharLimit = 120
	search.Width = 40
	search.Cursor.SetMode(cursor.CursorStatic)

	app := App{
		catalog:  catalog,
		log:      logger.With("component", "ui"),
		mode:     Browsing(),
		search:   search,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(AccentStyle)),
		pageSize: defaultPageSize,
		loading:  1 + len(api.RefKinds),
	}
	app.focus.Rebind(NewFocusGroup("search", 0, BoundaryWrap))
	return app
}

// Mode is the current interaction mode.
func (a App) Mode() Mode { return a.mode }

// Draft is the record being edited or created, nil in Browsing.
func (a App) Draft() *Draft { return a.draft }

// Focus exposes the focus stack.
func (a App) Focus() Focus { return a.focus }

// Busy reports whether a mutating catalog call is outstanding.
func (a App) Busy() bool { return a.busy }

// Init loads records and every reference list. NewApp already counts these
// loads as pending.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{loadRecordsCmd(a.catalog, "")}
	for _, kind := range api.RefKinds {
		cmds = append(cmds, loadRefsCmd(a.catalog, kind))
	}
	cmds = append(cmds, a.spinner.Tick)
	return tea.Batch(cmds...)
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.pageSize = max(3, msg.Height-24)
		a.syncFocus()
		return a, nil

	case tea.KeyMsg:
		handled, cmd := a.Dispatch(msg)
		if !handled {
			a.log.Debug("key ignored", "key", msg.String(), "mode", a.mode.String(), "busy", a.busy)
		}
		return a, cmd

	case spinner.TickMsg:
		if !a.busy && a.loading == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case recordsLoadedMsg:
		a.loading = max(0, a.loading-1)
		if msg.query != a.query {
			return a, nil
		}
		if msg.err != nil {
			a.log.Debug("catalog call failed", "op", "search_records", "query", msg.query, "err", msg.err)
			return a, a.raiseLoadError("Could not load records", msg.err)
		}
		a.records = activeRecords(msg.records)
		a.syncFocus()
		return a, nil

	case refsLoadedMsg:
		a.loading = max(0, a.loading-1)
		if msg.err != nil {
			a.log.Debug("catalog call failed", "op", "list_"+msg.kind.Path(), "err", msg.err)
			return a, a.raiseLoadError("Could not load "+msg.kind.Label(), msg.err)
		}
		a.refs[msg.kind] = msg.refs
		a.syncFocus()
		return a, nil

	case recordSavedMsg:
		return a, a.handleRecordSaved(msg)

	case deleteDoneMsg:
		return a, a.handleDeleteDone(msg)

	case refCreatedMsg:
		return a, a.handleRefCreated(msg)

	case clipboardMsg:
		if msg.err != nil {
			a.log.Debug("clipboard", "err", msg.err)
			return a, a.setToast("error", "Clipboard unavailable: "+msg.err.Error())
		}
		return a, a.setToast("success", "Copied "+msg.sku+".")

	case clearToastMsg:
		a.toast = nil
		return a, nil
	}
	return a, nil
}

// raiseLoadError surfaces a failed read. While a popup is showing or a
// mutation is outstanding it only shows a toast, so the result of that
// mutation still lands on the mode that issued it.
func (a *App) raiseLoadError(title string, err error) tea.Cmd {
	if a.mode.Kind == ModePopup || a.busy {
		return a.setToast("error", title+": "+api.Message(err))
	}
	a.raiseError(title, err)
	return nil
}

// --- Focus ---

// lenFor is the length of the group that owns Up/Down in m.
func (a App) lenFor(m Mode) int {
	switch {
	case m.IsForm():
		return int(fieldCount)
	case m.IsSubEdit():
		return len(a.refs[m.Ref])
	}
	return a.tabLen(a.tab)
}

// syncFocus clamps the active group to the list it navigates.
func (a *App) syncFocus() {
	g := a.focus.Current()
	g.SetPageSize(a.pageSize)
	g.SetLen(a.lenFor(a.mode.Base()))
}

// --- Loading ---

func (a *App) reloadRecords() tea.Cmd {
	a.loading++
	a.log.Debug("catalog call", "op", "search_records", "query", a.query)
	return tea.Batch(loadRecordsCmd(a.catalog, a.query), a.spinner.Tick)
}

func (a *App) reloadRefs(kind api.RefKind) tea.Cmd {
	a.loading++
	a.log.Debug("catalog call", "op", "list_"+kind.Path())
	return tea.Batch(loadRefsCmd(a.catalog, kind), a.spinner.Tick)
}

func (a *App) reloadAll() tea.Cmd {
	cmds := []tea.Cmd{a.reloadRecords()}
	for _, kind := range api.RefKinds {
		cmds = append(cmds, a.reloadRefs(kind))
	}
	return tea.Batch(cmds...)
}

// --- Toast ---

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return clearToastCmd()
}
