package tasks

// Mode is what the task view currently routes keys to.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeDateInput
	ModeAddForm
	ModeItemEdit
	ModeJump
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeDateInput:
		return "Date"
	case ModeAddForm:
		return "Add Task"
	case ModeItemEdit:
		return "Edit"
	case ModeJump:
		return "Jump"
	}
	return "Normal"
}
