package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/printdb/internal/api"
	"github.com/gravitrone/printdb/internal/ui/components"
)

// View renders the current state.
func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(a.height), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)

	var content string
	switch {
	case a.mode.Kind == ModePopup && a.popup != nil:
		content = a.renderPopup()
	case a.prompt != nil:
		content = components.InputDialog(a.prompt.title(), a.prompt.input.View(), a.prompt.err)
	default:
		content = a.renderMode(a.mode.Base())
	}
	content = centerBlockUniform(content, a.width)

	status := ""
	if a.busy || a.loading > 0 {
		label := "loading"
		if a.busy {
			label = "saving"
		}
		status = "\n" + centerBlock(a.spinner.View()+" "+MutedStyle.Render(label), a.width)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s%s", banner, tabs, content, status, hints, feedback)
}

func (a App) renderTabs() string {
	segments := make([]string, 0, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(label))
		} else {
			segments = append(segments, TabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) renderMode(m Mode) string {
	switch {
	case m.IsForm():
		return a.renderForm()
	case m.IsSubEdit():
		return a.renderSubEdit()
	}
	switch {
	case a.tab == tabCreate:
		body := NormalStyle.Render("Start a new catalog record.") + "\n\n" +
			MutedStyle.Render("The SKU is assigned from the category when the record is saved.")
		return components.TitledBox("Create", body, a.width)
	case tabListsRecords(a.tab):
		return a.renderRecordList()
	}
	kind, _ := tabRefKind(a.tab)
	return a.renderRefList(kind)
}

func (a App) tableWidth() int {
	if w := components.BoxContentWidth(a.width); w > 0 {
		return w
	}
	return 72
}

// --- Browsing ---

func (a App) renderRecordList() string {
	var b strings.Builder
	switch {
	case a.searching:
		b.WriteString(a.search.View() + "\n\n")
	case a.query != "":
		b.WriteString(MutedStyle.Render("filter: ") + NormalStyle.Render(components.SanitizeOneLine(a.query)) + "\n\n")
	}

	title := "Records"
	if a.tab == tabInventory {
		title = "Inventory"
	}
	if len(a.records) == 0 {
		b.WriteString(MutedStyle.Render("No records."))
		return components.TitledBox(title, b.String(), a.width)
	}

	g := a.focus.Active()
	start, end := window(g, len(a.records))
	width := a.tableWidth()
	var cols []components.TableColumn
	rows := make([][]string, 0, end-start)
	if a.tab == tabInventory {
		cols = []components.TableColumn{
			{Header: "SKU", Width: 10},
			{Header: "Name", Width: max(8, width-2-10-7-8-10-10-5)},
			{Header: "Stock", Width: 7, Align: lipgloss.Right},
			{Header: "Reorder", Width: 8, Align: lipgloss.Right},
			{Header: "Cost", Width: 10, Align: lipgloss.Right},
			{Header: "Price", Width: 10, Align: lipgloss.Right},
		}
		for _, r := range a.records[start:end] {
			rows = append(rows, []string{r.SKU, r.Name, formatOptInt(r.StockQuantity), formatOptInt(r.ReorderPoint), formatCents(r.UnitCost), formatCents(r.SellingPrice)})
		}
	} else {
		cols = []components.TableColumn{
			{Header: "SKU", Width: 10},
			{Header: "Name", Width: max(8, width-2-10-16-3)},
			{Header: "Category", Width: 16},
		}
		for _, r := range a.records[start:end] {
			rows = append(rows, []string{r.SKU, r.Name, a.categoryName(r)})
		}
	}
	b.WriteString(components.TableGridWithActiveRow(cols, rows, width, g.Index()-start))
	b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("%d of %d", g.Index()+1, len(a.records))))

	list := components.TitledBox(title, b.String(), a.width)
	if rec, ok := ActiveItem(g, a.records); ok {
		return list + "\n" + a.renderPreview(rec)
	}
	return list
}

func (a App) renderPreview(r api.Record) string {
	rows := []components.TableRow{
		{Label: "SKU", Value: r.SKU},
		{Label: "Category", Value: a.categoryName(r)},
		{Label: "Tags", Value: a.refNames(api.RefTag, r.RefIDs(api.RefTag))},
		{Label: "Materials", Value: a.refNames(api.RefMaterial, r.RefIDs(api.RefMaterial))},
		{Label: "Production", Value: yesNo(r.Production)},
	}
	if r.Color != nil {
		rows = append(rows, components.TableRow{Label: "Color", Value: *r.Color})
	}
	if r.StockQuantity != nil {
		rows = append(rows, components.TableRow{Label: "Stock", Value: strconv.Itoa(*r.StockQuantity)})
	}
	out := components.Table(r.Name, rows, a.width)
	if desc := renderMarkdown(derefString(r.Description), components.BoxContentWidth(a.width)); desc != "" {
		out += "\n" + components.Box(desc, a.width)
	}
	return out
}

func (a App) renderRefList(kind api.RefKind) string {
	refs := a.refs[kind]
	if len(refs) == 0 {
		return components.TitledBox(kind.Label(), MutedStyle.Render("Nothing here yet. Press n to add one."), a.width)
	}
	g := a.focus.Active()
	start, end := window(g, len(refs))
	width := a.tableWidth()
	cols := []components.TableColumn{{Header: "Name", Width: width - 2}}
	if kind == api.RefCategory {
		cols = []components.TableColumn{
			{Header: "Name", Width: max(8, width-2-10-1)},
			{Header: "Initials", Width: 10},
		}
	}
	rows := make([][]string, 0, end-start)
	for _, ref := range refs[start:end] {
		if kind == api.RefCategory {
			rows = append(rows, []string{ref.Name, ref.SKUInitials})
		} else {
			rows = append(rows, []string{ref.Name})
		}
	}
	return components.TitledBox(kind.Label(), components.TableGridWithActiveRow(cols, rows, width, g.Index()-start), a.width)
}

// --- Form ---

func (a App) renderForm() string {
	d := a.draft
	if d == nil {
		return ""
	}
	title := "New record"
	if !a.mode.Base().Creating() {
		title = "Edit " + d.SKU
	}
	focused := -1
	if a.mode.Base().IsForm() {
		focused = a.focus.Active().Index()
	}

	labelWidth := 0
	for _, fs := range formFields {
		labelWidth = max(labelWidth, lipgloss.Width(fs.label))
	}

	var b strings.Builder
	for i, fs := range formFields {
		marker := "  "
		labelStyle := FieldStyle
		if i == focused {
			marker = SelectedStyle.Render("> ")
			labelStyle = SelectedStyle
		}
		label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, fs.label))
		b.WriteString(marker + label + "  " + a.fieldValue(fs) + "\n")
		if msg := d.FieldError(fs.id); msg != "" {
			b.WriteString(strings.Repeat(" ", labelWidth+4) + ErrorStyle.Render(msg) + "\n")
		}
	}
	if d.FormError != "" {
		b.WriteString("\n" + ErrorStyle.Render(components.SanitizeOneLine(d.FormError)))
	}
	return components.ActiveBox(HeaderStyle.Render(title)+"\n"+strings.TrimRight(b.String(), "\n"), a.width)
}

func (a App) fieldValue(fs fieldSpec) string {
	d := a.draft
	switch fs.kind {
	case fieldBool:
		if d.Production() {
			return MetaValueStyle.Render("[x] yes")
		}
		return MetaValueStyle.Render("[ ] no")
	case fieldRef:
		names := a.refNames(fs.ref, d.RefIDs(fs.ref))
		if names == "" {
			return MutedStyle.Render("none (tab to choose)")
		}
		return MetaValueStyle.Render(components.SanitizeOneLine(names))
	}
	v := d.Value(fs.id)
	if v == "" {
		return MutedStyle.Render("-")
	}
	return MetaValueStyle.Render(components.SanitizeOneLine(v))
}

// --- Sub-Edit ---

func (a App) renderSubEdit() string {
	if a.sub == nil {
		return ""
	}
	kind := a.sub.kind
	refs := a.refs[kind]
	title := "Choose " + strings.ToLower(kind.Label())
	if kind.Single() {
		title = "Choose " + kind.String()
	}
	if len(refs) == 0 {
		return components.TitledBox(title, MutedStyle.Render("No "+strings.ToLower(kind.Label())+" yet. Press n to add one."), a.width)
	}
	g := a.focus.Active()
	start, end := window(g, len(refs))
	rows := make([][]string, 0, end-start)
	for _, ref := range refs[start:end] {
		mark := "[ ]"
		if a.sub.selected[ref.ID] {
			mark = "[x]"
		}
		rows = append(rows, []string{mark, ref.Name})
	}
	width := a.tableWidth()
	cols := []components.TableColumn{
		{Header: "", Width: 3, Align: lipgloss.Center},
		{Header: "Name", Width: max(8, width-2-3-1)},
	}
	return components.TitledBox(title, components.TableGridWithActiveRow(cols, rows, width, g.Index()-start), a.width)
}

// --- Popups ---

func (a App) renderPopup() string {
	p := a.popup
	switch a.mode.Popup {
	case PopupConfirmDelete:
		if p.busy {
			return components.BusyDialog(p.title, p.message, a.spinner.View())
		}
		return components.ConfirmDialog(p.title, p.message)
	case PopupError:
		return components.ErrorDialog(p.title, p.message)
	}
	return ""
}

// --- Status ---

func (a App) statusHints() []string {
	if a.mode.Kind == ModePopup {
		if a.mode.Popup == PopupError {
			return []string{components.Hint("enter", "OK")}
		}
		return []string{components.Hint("y", "Delete"), components.Hint("n", "Keep")}
	}
	if a.prompt != nil {
		return []string{components.Hint("enter", "Submit"), components.Hint("esc", "Cancel")}
	}
	if a.searching {
		return []string{components.Hint("enter", "Search"), components.Hint("esc", "Close")}
	}
	switch {
	case a.mode.IsForm():
		hints := []string{
			components.Hint("↑/↓", "Field"),
			components.Hint("tab", "Choose refs"),
			components.Hint("enter", "Save"),
			components.Hint("esc", "Discard"),
		}
		if a.mode.Kind == ModeEditing {
			hints = append(hints, components.Hint("ctrl+d", "Delete"))
		}
		return hints
	case a.mode.IsSubEdit():
		return []string{
			components.Hint("↑/↓", "Move"),
			components.Hint("space", "Toggle"),
			components.Hint("n", "New"),
			components.Hint("d", "Delete"),
			components.Hint("esc", "Done"),
		}
	}
	base := []string{components.Hint("←/→", "Tabs")}
	switch {
	case a.tab == tabCreate:
		base = append(base, components.Hint("enter", "New record"))
	case tabListsRecords(a.tab):
		base = append(base,
			components.Hint("enter", "Open"),
			components.Hint("n", "New"),
			components.Hint("d", "Delete"),
			components.Hint("/", "Search"),
			components.Hint("y", "Copy SKU"),
		)
	default:
		base = append(base, components.Hint("n", "New"), components.Hint("d", "Delete"))
	}
	return append(base, components.Hint("q", "Quit"))
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "success":
		return components.TitledBox("Success", SuccessStyle.Render(a.toast.text), a.width)
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox("Info", a.toast.text, a.width)
}

// --- Helpers ---

func (a App) categoryName(r api.Record) string {
	if r.Category != nil && r.Category.Name != "" {
		return r.Category.Name
	}
	return a.refNames(api.RefCategory, r.RefIDs(api.RefCategory))
}

// refNames resolves ids against the loaded list. Unknown ids show as #id.
func (a App) refNames(kind api.RefKind, ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	byID := make(map[int]string, len(a.refs[kind]))
	for _, ref := range a.refs[kind] {
		byID[ref.ID] = ref.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, "#"+strconv.Itoa(id))
		}
	}
	return strings.Join(names, ", ")
}

// window is the group's visible range clamped to a list of n items.
func window(g FocusGroup, n int) (int, int) {
	start, end := g.Window()
	end = min(end, n)
	start = min(start, end)
	return start, end
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func centerBlock(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			continue
		}
		pad := (width - lineWidth) / 2
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
