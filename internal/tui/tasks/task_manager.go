package tasks

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/location"
	"tasktrack/internal/logs"
	"tasktrack/internal/notify"
	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/editor"
	"tasktrack/internal/tasks/filter"
	"tasktrack/internal/tasks/store"
	"tasktrack/internal/tui/shared"
	"tasktrack/internal/tui/theme"
)

// TaskManagerModel is the task list view: filters, add form and one item
// controller per visible task.
type TaskManagerModel struct {
	// Data
	store        *store.Store
	query        *location.QuerySync
	notifier     notify.Notifier
	dayLoc       *time.Location
	tasks        []data.Task
	displayTasks []data.Task
	items        map[int]*editor.Controller
	dateFilter   filter.Date

	// Navigation
	cursor       int
	scrollOffset int
	mode         Mode

	// Sub-components
	keys        KeyMap
	help        help.Model
	infoBar     InfoBarModel
	searchInput textinput.Model
	dateInput   *TextInputModel
	addForm     *AddFormModel
	itemEditor  *ItemEditorModel
	jumpPicker  *JumpPickerModel

	// Dimensions
	width  int
	height int
}

// NewTaskManagerModel creates the task view. The search text comes from
// query; dateFilter may be zero.
func NewTaskManagerModel(st *store.Store, query *location.QuerySync, notifier notify.Notifier, dayLoc *time.Location, dateFilter filter.Date) TaskManagerModel {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if dayLoc == nil {
		dayLoc = time.UTC
	}
	m := TaskManagerModel{
		store:      st,
		query:      query,
		notifier:   notifier,
		dayLoc:     dayLoc,
		dateFilter: dateFilter,
		items:      make(map[int]*editor.Controller),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		infoBar:    NewInfoBar(),
		addForm:    NewAddForm(),
	}
	m.refreshDisplayTasks()
	return m
}

// SetSize updates the dimensions
func (m *TaskManagerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.infoBar.Width = width
	m.help.Width = width
	m.addForm.Form().SetWidth(m.itemWidth() - cardFrame)
	if m.itemEditor != nil {
		m.itemEditor.SetWidth(m.itemWidth() - cardFrame)
	}
	if m.dateInput != nil {
		m.dateInput.SetWidth(min(width, 40))
	}
	m.ensureCursorVisible()
}

func (m *TaskManagerModel) Keys() KeyMap { return m.keys }

func (m *TaskManagerModel) Mode() Mode { return m.mode }

func (m *TaskManagerModel) Cursor() int { return m.cursor }

func (m *TaskManagerModel) DateFilter() filter.Date { return m.dateFilter }

func (m *TaskManagerModel) SearchQuery() string { return m.query.Search() }

// DisplayTasks returns the visible subset in store order.
func (m *TaskManagerModel) DisplayTasks() []data.Task { return m.displayTasks }

// ItemState returns the view state of a visible task.
func (m *TaskManagerModel) ItemState(id int) (editor.State, bool) {
	c, ok := m.items[id]
	if !ok {
		return editor.Collapsed, false
	}
	return c.State(), true
}

// AddFormOpen reports whether the add form is expanded.
func (m *TaskManagerModel) AddFormOpen() bool { return m.addForm.IsOpen() }

// IsInModalState returns true if the task view is in a mode that should
// block global key handling
func (m *TaskManagerModel) IsInModalState() bool {
	return m.mode != ModeNormal
}

// FocusTask moves the cursor to a visible task by ID
func (m *TaskManagerModel) FocusTask(id int) {
	if i := data.FindTask(m.displayTasks, id); i >= 0 {
		m.cursor = i
		m.ensureCursorVisible()
	}
}

// refreshDisplayTasks re-reads the store and recomputes the visible subset.
// Items that are no longer visible lose their controller and come back
// collapsed.
func (m *TaskManagerModel) refreshDisplayTasks() {
	selectedID := -1
	if t := m.selectedTask(); t != nil {
		selectedID = t.ID
	}

	m.tasks = m.store.Tasks()
	m.displayTasks = filter.VisibleIn(m.tasks, m.query.Search(), m.dateFilter, m.dayLoc)

	items := make(map[int]*editor.Controller, len(m.displayTasks))
	for _, t := range m.displayTasks {
		if c, ok := m.items[t.ID]; ok {
			c.Sync(t)
			items[t.ID] = c
			continue
		}
		items[t.ID] = editor.New(t, m.store, m.notifier)
	}
	m.items = items

	if i := data.FindTask(m.displayTasks, selectedID); i >= 0 {
		m.cursor = i
	}
	if m.cursor >= len(m.displayTasks) {
		m.cursor = max(0, len(m.displayTasks)-1)
	}
	m.ensureCursorVisible()
}

func (m *TaskManagerModel) selectedTask() *data.Task {
	if m.cursor < 0 || m.cursor >= len(m.displayTasks) {
		return nil
	}
	return &m.displayTasks[m.cursor]
}

func (m *TaskManagerModel) selectedController() *editor.Controller {
	t := m.selectedTask()
	if t == nil {
		return nil
	}
	return m.items[t.ID]
}

// Update handles messages for the task view
func (m TaskManagerModel) Update(msg tea.Msg) (TaskManagerModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch m.mode {
	case ModeSearch:
		if isKey {
			return m.handleSearchMode(keyMsg)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd

	case ModeDateInput:
		if isKey {
			return m.handleDateInput(keyMsg)
		}
		cmd := m.dateInput.Update(msg)
		return m, cmd

	case ModeAddForm:
		if isKey {
			return m.handleAddForm(keyMsg)
		}
		cmd := m.addForm.Update(msg)
		return m, cmd

	case ModeItemEdit:
		if isKey {
			return m.handleItemEdit(keyMsg)
		}
		cmd := m.itemEditor.Update(msg)
		return m, cmd

	case ModeJump:
		if isKey {
			return m.handleJump(keyMsg)
		}
		cmd := m.jumpPicker.Update(msg)
		return m, cmd
	}

	if isKey {
		return m.handleNormalMode(keyMsg)
	}
	return m, nil
}

func (m TaskManagerModel) handleNormalMode(msg tea.KeyMsg) (TaskManagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Expand):
		m.dispatch(editor.EventHeader)
	case key.Matches(msg, m.keys.Edit):
		return m.editSelected()
	case key.Matches(msg, m.keys.Toggle):
		m.dispatch(editor.EventToggle)
	case key.Matches(msg, m.keys.Search):
		return m.startSearch()
	case key.Matches(msg, m.keys.Date):
		return m.startDateFilter()
	case key.Matches(msg, m.keys.ClearDate):
		m.setDateFilter(filter.Date{})
	case key.Matches(msg, m.keys.PrevDay):
		m.shiftDateFilter(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.shiftDateFilter(1)
	case key.Matches(msg, m.keys.Add):
		m.addForm.Toggle()
		m.mode = ModeAddForm
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Jump):
		if len(m.displayTasks) == 0 {
			return m, nil
		}
		m.jumpPicker = NewJumpPicker(m.displayTasks)
		m.mode = ModeJump
		return m, textinput.Blink
	}
	return m, nil
}

// dispatch sends one event to the selected item's controller.
func (m *TaskManagerModel) dispatch(ev editor.Event) {
	c := m.selectedController()
	if c == nil {
		return
	}
	if err := c.Dispatch(ev); err != nil {
		logs.Logger.Debugf("Task %d %s: %v", c.ID(), ev, err)
	}
	if ev == editor.EventToggle || ev == editor.EventSave {
		m.refreshDisplayTasks()
	} else {
		m.ensureCursorVisible()
	}
}

func (m TaskManagerModel) editSelected() (TaskManagerModel, tea.Cmd) {
	c := m.selectedController()
	if c == nil {
		return m, nil
	}
	m.dispatch(editor.EventEdit)
	if c.State() != editor.ExpandedEdit {
		return m, nil
	}
	m.itemEditor = NewItemEditor(c)
	m.itemEditor.SetWidth(m.itemWidth() - cardFrame)
	m.mode = ModeItemEdit
	m.ensureCursorVisible()
	return m, textinput.Blink
}

func (m TaskManagerModel) handleItemEdit(msg tea.KeyMsg) (TaskManagerModel, tea.Cmd) {
	var ev editor.Event
	switch {
	case key.Matches(msg, m.keys.Save):
		ev = editor.EventSave
	case key.Matches(msg, m.keys.Cancel):
		ev = editor.EventEdit
	case key.Matches(msg, m.keys.Collapse):
		ev = editor.EventHeader
	case key.Matches(msg, m.keys.EditToggle):
		ev = editor.EventToggle
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.itemEditor.NextField()
		return m, nil
	default:
		cmd := m.itemEditor.Update(msg)
		return m, cmd
	}

	done, err := m.itemEditor.Dispatch(ev)
	if err != nil {
		logs.Logger.Debugf("Task %d save rejected: %v", m.itemEditor.TaskID(), err)
	}
	if ev == editor.EventToggle {
		m.refreshDisplayTasks()
		if _, visible := m.items[m.itemEditor.TaskID()]; visible {
			return m, nil
		}
		done = true
	}
	if !done {
		return m, nil
	}
	m.itemEditor = nil
	m.mode = ModeNormal
	m.refreshDisplayTasks()
	return m, nil
}

func (m TaskManagerModel) handleAddForm(msg tea.KeyMsg) (TaskManagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		form := m.addForm.Form()
		tasks, err := m.store.AddTask(form.Title(), form.Description())
		if err != nil {
			return m, nil
		}
		m.addForm.Close()
		m.mode = ModeNormal
		m.dateFilter = filter.Date{}
		m.refreshDisplayTasks()
		m.FocusTask(tasks[len(tasks)-1].ID)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.addForm.Toggle()
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.addForm.Form().NextField()
		return m, nil
	}

	cmd := m.addForm.Update(msg)
	return m, cmd
}

func (m TaskManagerModel) startSearch() (TaskManagerModel, tea.Cmd) {
	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "type to filter..."
	m.searchInput.CharLimit = 256
	m.searchInput.Width = 40
	m.searchInput.SetValue(m.query.Search())
	m.searchInput.CursorEnd()
	m.mode = ModeSearch
	m.ensureCursorVisible()
	cmd := m.searchInput.Focus()
	return m, cmd
}

func (m TaskManagerModel) handleSearchMode(msg tea.KeyMsg) (TaskManagerModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Keep the query
		m.searchInput.Blur()
		m.mode = ModeNormal
		return m, nil

	case "esc":
		m.searchInput.Blur()
		m.mode = ModeNormal
		if m.query.Search() != "" {
			m.setSearch("")
		}
		return m, nil

	case "up":
		m.moveCursor(-1)
		return m, nil

	case "down":
		m.moveCursor(1)
		return m, nil
	}

	// Live filter on every keystroke
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != m.query.Search() {
		m.setSearch(v)
	}
	return m, cmd
}

// setSearch writes the search text to the location and refilters.
func (m *TaskManagerModel) setSearch(v string) {
	if err := m.query.SetSearch(v); err != nil {
		logs.Logger.Warnf("Search %q not written to location: %v", v, err)
	}
	m.refreshDisplayTasks()
}

func (m TaskManagerModel) startDateFilter() (TaskManagerModel, tea.Cmd) {
	m.dateInput = NewDateInput("Date", m.dateFilter)
	m.dateInput.SetWidth(min(max(m.width, 30), 40))
	m.mode = ModeDateInput
	return m, textinput.Blink
}

func (m TaskManagerModel) handleDateInput(msg tea.KeyMsg) (TaskManagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		v, err := m.dateInput.Confirm()
		if err != nil {
			return m, nil
		}
		d, _ := filter.ParseDate(v)
		m.dateInput = nil
		m.mode = ModeNormal
		m.setDateFilter(d)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.dateInput = nil
		m.mode = ModeNormal
		return m, nil
	}

	cmd := m.dateInput.Update(msg)
	return m, cmd
}

func (m *TaskManagerModel) setDateFilter(d filter.Date) {
	if d == m.dateFilter {
		return
	}
	logs.Logger.Debugf("Date filter: %q", d.String())
	m.dateFilter = d
	m.refreshDisplayTasks()
}

// shiftDateFilter moves the date filter by n days, starting from today when
// no date is set.
func (m *TaskManagerModel) shiftDateFilter(n int) {
	if m.dateFilter.IsZero() {
		m.setDateFilter(filter.Today(m.dayLoc))
		return
	}
	m.setDateFilter(m.dateFilter.AddDays(n))
}

func (m TaskManagerModel) handleJump(msg tea.KeyMsg) (TaskManagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if id, ok := m.jumpPicker.Selected(); ok {
			m.FocusTask(id)
		}
		m.jumpPicker = nil
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.jumpPicker = nil
		m.mode = ModeNormal
		return m, nil
	}

	cmd := m.jumpPicker.Update(msg)
	return m, cmd
}

func (m *TaskManagerModel) moveCursor(delta int) {
	if len(m.displayTasks) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.displayTasks)-1)
	m.ensureCursorVisible()
}

func (m *TaskManagerModel) itemWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// listHeight is the number of lines left for task cards.
func (m *TaskManagerModel) listHeight() int {
	return m.height - shared.Height(m.renderTop()) - shared.Height(m.renderHints())
}

func (m *TaskManagerModel) ensureCursorVisible() {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
		return
	}
	room := m.listHeight()
	if room <= 0 {
		return
	}
	for m.scrollOffset < m.cursor {
		used := 0
		for i := m.scrollOffset; i <= m.cursor; i++ {
			used += shared.Height(m.renderItem(i))
		}
		if used <= room {
			return
		}
		m.scrollOffset++
	}
}

func (m *TaskManagerModel) renderItem(i int) string {
	t := m.displayTasks[i]
	v := itemView{
		ctrl:    m.items[t.ID],
		focused: i == m.cursor,
		query:   m.query.Search(),
		width:   m.itemWidth(),
	}
	if m.itemEditor != nil && m.itemEditor.TaskID() == t.ID {
		v.editor = m.itemEditor
	}
	return v.render()
}

// renderTop renders everything above the task cards.
func (m *TaskManagerModel) renderTop() string {
	bar := m.infoBar
	pending, done := data.CountCompleted(m.tasks)
	bar.Mode = m.mode
	bar.SearchQuery = m.query.Search()
	bar.FilterDate = m.dateFilter
	bar.Visible = len(m.displayTasks)
	bar.Total = pending + done
	bar.Completed = done

	var b strings.Builder
	b.WriteString(bar.View())

	if m.mode == ModeSearch {
		b.WriteString("\n" + searchStyle.Render("/") + m.searchInput.View())
	}
	if m.dateInput != nil {
		b.WriteString("\n" + m.dateInput.View())
	}
	if m.addForm.IsOpen() {
		b.WriteString("\n" + m.addForm.View())
	}
	return b.String()
}

func (m *TaskManagerModel) renderHints() string {
	var hints string
	switch m.mode {
	case ModeAddForm:
		hints = m.help.View(formHelp{keys: m.keys})
	case ModeItemEdit:
		hints = m.help.View(formHelp{keys: m.keys, editing: true})
	case ModeSearch, ModeDateInput, ModeJump:
		hints = m.help.View(inputHelp{keys: m.keys})
	default:
		hints = m.help.View(m.keys)
	}
	return lipgloss.PlaceHorizontal(m.itemWidth(), lipgloss.Center, hints)
}

func (m *TaskManagerModel) renderItems(room int) string {
	if len(m.displayTasks) == 0 {
		empty := theme.Muted.Render("No tasks found.")
		if room > 0 {
			return shared.CenterContent(lipgloss.PlaceHorizontal(m.itemWidth(), lipgloss.Center, empty), room)
		}
		return empty
	}

	var b strings.Builder
	used := 0
	for i := m.scrollOffset; i < len(m.displayTasks); i++ {
		item := m.renderItem(i)
		h := shared.Height(item)
		if room > 0 && used > 0 && used+h > room {
			break
		}
		b.WriteString(item + "\n")
		used += h
	}
	return b.String()
}

// View renders the task view
func (m TaskManagerModel) View() string {
	top := m.renderTop()
	hints := m.renderHints()

	if m.jumpPicker != nil {
		picker := lipgloss.PlaceHorizontal(m.itemWidth(), lipgloss.Center, m.jumpPicker.View())
		return shared.TopWithBottomHints(top+"\n"+picker, hints, m.height)
	}

	if m.height <= 0 {
		return top + "\n" + m.renderItems(0) + hints
	}

	room := m.height - shared.Height(top) - shared.Height(hints)
	return shared.TopWithBottomHints(top+"\n"+m.renderItems(room), hints, m.height)
}
