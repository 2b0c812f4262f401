package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pastel-todo/app"
)

// FrameInterval is how often the frame is redrawn without input.
const FrameInterval = 100 * time.Millisecond

type frameTickMsg time.Time

type Model struct {
	svc  *app.Service
	mode Mode
	keys keyMap

	quitting bool
	now      func() time.Time
}

func NewModel(svc *app.Service) *Model {
	return &Model{
		svc:  svc,
		mode: CommandMode{},
		keys: defaultKeyMap(),
		now:  time.Now,
	}
}

// Mode returns the active input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, frameTick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderFrame(m.now())
}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// Run drives the model until the user quits. bubbletea holds the terminal
// in raw mode for the duration and restores it on every exit path. View
// always yields the full grid; the renderer only rewrites changed lines.
func Run(svc *app.Service, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(NewModel(svc), opts...)
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*Model); ok && m.Quitting() {
		fmt.Println(accentStyle.Render("See you later!"))
		fmt.Println()
	}
	return nil
}
