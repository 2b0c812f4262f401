package tui

// Mode is the active input mode. Exactly one is active; a transition
// replaces the whole value so buffers never leak across modes.
type Mode interface {
	isMode()
}

// CommandMode collects a free-text command such as "add".
type CommandMode struct {
	Buffer string
}

// InputKind names the command an InputMode collects an argument for.
type InputKind int

const (
	InputAdd InputKind = iota
	InputFolder
	InputDelete
)

func (k InputKind) String() string {
	switch k {
	case InputFolder:
		return "folder"
	case InputDelete:
		return "delete"
	default:
		return "add"
	}
}

// InputMode collects the argument of an add, folder or delete command.
type InputMode struct {
	Kind   InputKind
	Buffer string
}

// NavigateMode moves a selection through the current folder's view.
// Selected is a rank-0 position in that view, not a store index.
type NavigateMode struct {
	Selected int
}

func (CommandMode) isMode()  {}
func (InputMode) isMode()    {}
func (NavigateMode) isMode() {}

// commandInputs maps submitted command words to the input they open.
var commandInputs = map[string]InputKind{
	"add":    InputAdd,
	"folder": InputFolder,
	"delete": InputDelete,
}
