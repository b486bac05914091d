package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/location"
	"tasktrack/internal/notify"
	"tasktrack/internal/tasks/filter"
	"tasktrack/internal/tasks/store"
	"tasktrack/internal/tui/messages"
	"tasktrack/internal/tui/shared"
	taskview "tasktrack/internal/tui/tasks"
)

// Options carries everything the app needs besides the store.
type Options struct {
	Location      *location.Memory
	Queue         *notify.Queue
	Notifier      notify.Notifier // what the store was built with
	DayLocation   *time.Location
	DateFilter    filter.Date
	ToastDuration time.Duration
}

type toast struct {
	id int
	n  notify.Notification
}

// AppModel is the root model: it hosts the task view, turns notifications
// into toasts and owns the status bar.
type AppModel struct {
	loc       *location.Memory
	queue     *notify.Queue
	toastTTL  time.Duration
	taskView  taskview.TaskManagerModel
	toasts    []toast
	nextToast int
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model
func NewAppModel(st *store.Store, opts Options) AppModel {
	if opts.Queue == nil {
		opts.Queue = notify.NewQueue()
	}
	if opts.Notifier == nil {
		opts.Notifier = opts.Queue
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}

	query := location.NewQuerySync(opts.Location, location.SearchParam)
	return AppModel{
		loc:      opts.Location,
		queue:    opts.Queue,
		toastTTL: opts.ToastDuration,
		taskView: taskview.NewTaskManagerModel(st, query, opts.Notifier, opts.DayLocation, opts.DateFilter),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	toastCmd := m.drainNotifications()
	return m, tea.Batch(cmd, toastCmd)
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.taskView.SetSize(msg.Width, m.contentHeight())
		return nil

	case messages.ToastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.ID {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		m.taskView.SetSize(m.width, m.contentHeight())
		return nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return nil
		}

		if !m.taskView.IsInModalState() {
			keys := m.taskView.Keys()
			switch {
			case key.Matches(msg, keys.Quit):
				return tea.Quit
			case key.Matches(msg, keys.Help):
				m.showHelp = true
				return nil
			}
		}
	}

	var cmd tea.Cmd
	m.taskView, cmd = m.taskView.Update(msg)
	return cmd
}

// drainNotifications turns queued notifications into toasts, each with its
// own expiry tick.
func (m *AppModel) drainNotifications() tea.Cmd {
	pending := m.queue.Drain()
	if len(pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(pending))
	for _, n := range pending {
		m.nextToast++
		m.toasts = append(m.toasts, toast{id: m.nextToast, n: n})
		cmds = append(cmds, messages.ExpireToast(m.nextToast, m.toastTTL))
	}
	m.taskView.SetSize(m.width, m.contentHeight())
	return tea.Batch(cmds...)
}

// Toasts returns the messages currently on screen, oldest first.
func (m AppModel) Toasts() []notify.Notification {
	out := make([]notify.Notification, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = t.n
	}
	return out
}

// CurrentLocation is the location the session last navigated to.
func (m AppModel) CurrentLocation() string {
	return m.loc.Current()
}

func (m AppModel) contentHeight() int {
	return max(m.height-shared.Height(m.renderToasts())-statusBarHeight, 0)
}

const statusBarHeight = 2 // top border + text

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	parts := []string{}
	if toasts := m.renderToasts(); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, m.taskView.View())

	statusText := "Tasks | " + m.loc.Current() + " | ?:help | q:quit"
	parts = append(parts, StatusBarStyle.Width(m.width).Render(HelpStyle.Render(statusText)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m AppModel) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := ToastSuccessStyle
		if t.n.Kind == notify.KindError {
			style = ToastErrorStyle
		}
		lines = append(lines, style.Render(t.n.Message))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, strings.Join(lines, "\n"))
}

func (m AppModel) renderHelpOverlay() string {
	keys := m.taskView.Keys()
	sections := []shared.HelpSection{
		shared.SectionFromBindings("Navigation", keys.Up, keys.Down, keys.Jump),
		shared.SectionFromBindings("Task", keys.Expand, keys.Edit, keys.Toggle),
		shared.SectionFromBindings("Filters", keys.Search, keys.Date, keys.ClearDate, keys.PrevDay, keys.NextDay),
		shared.SectionFromBindings("Add / Edit", keys.Add, keys.NextField, keys.Save, keys.Collapse, keys.EditToggle, keys.Cancel),
		{Title: "General", Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		}},
	}
	return shared.RenderHelpPopup(sections, m.width, m.height)
}
