package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette (ANSI 0-15 plus one 256-color surface)
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary       = lipgloss.Color("4")   // blue
	Secondary     = lipgloss.Color("6")   // cyan
	Success       = lipgloss.Color("2")   // green
	Warning       = lipgloss.Color("3")   // yellow
	Danger        = lipgloss.Color("1")   // red
	Surface       = lipgloss.Color("236") // dark bg
	Border        = lipgloss.Color("8")   // dim
	BorderFocused = lipgloss.Color("4")   // blue
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Bold  = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Match  = lipgloss.NewStyle().Bold(true).Foreground(Warning).Underline(true)

	// Done is used for the titles of completed tasks.
	Done = lipgloss.NewStyle().Foreground(TextMuted).Strikethrough(true)
)

// ---------------------------------------------------------------------------
// Item actions
// ---------------------------------------------------------------------------

var (
	ActionDone   = lipgloss.NewStyle().Foreground(TextBright).Background(Success).Padding(0, 1)
	ActionUndo   = lipgloss.NewStyle().Foreground(TextBright).Background(Danger).Padding(0, 1)
	ActionEdit   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(Warning).Padding(0, 1)
	ActionCancel = lipgloss.NewStyle().Foreground(TextBright).Background(Danger).Padding(0, 1)
	ActionSave   = lipgloss.NewStyle().Foreground(TextBright).Background(Primary).Padding(0, 1)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	CardFocused = Card.BorderForeground(BorderFocused)

	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	NavActive = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	ToastSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(Danger).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Danger).
			Padding(0, 1)
)
