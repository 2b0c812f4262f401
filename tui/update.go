package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	var cmd tea.Cmd
	switch mode := m.mode.(type) {
	case CommandMode:
		cmd = m.updateCommandMode(mode, msg)
	case InputMode:
		m.updateInputMode(mode, msg)
	case NavigateMode:
		m.updateNavigateMode(mode, msg)
	default:
		m.mode = CommandMode{}
	}

	m.ensureSelection()
	return cmd
}

func (m *Model) updateCommandMode(mode CommandMode, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		mode.Buffer = ""
	case key.Matches(msg, m.keys.Backspace):
		mode.Buffer = trimLastRune(mode.Buffer)
	case key.Matches(msg, m.keys.Navigate):
		if count := len(m.svc.FilteredIndices(m.svc.Folder())); count > 0 {
			m.mode = NavigateMode{Selected: count - 1}
			return nil
		}
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Submit):
		word := strings.ToLower(strings.TrimSpace(mode.Buffer))
		if kind, ok := commandInputs[word]; ok {
			m.mode = InputMode{Kind: kind}
			return nil
		}
		mode.Buffer = ""
	default:
		mode.Buffer = appendPrintable(mode.Buffer, msg)
	}
	m.mode = mode
	return nil
}

func (m *Model) updateInputMode(mode InputMode, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = CommandMode{}
		return
	case mode.Buffer == "" && key.Matches(msg, m.keys.Back):
		m.mode = CommandMode{}
		return
	case key.Matches(msg, m.keys.Backspace):
		mode.Buffer = trimLastRune(mode.Buffer)
	case key.Matches(msg, m.keys.Submit):
		if m.submitInput(mode) {
			m.mode = CommandMode{}
			return
		}
	default:
		mode.Buffer = appendPrintable(mode.Buffer, msg)
	}
	m.mode = mode
}

// submitInput applies the input and reports whether it was accepted.
// Rejected input stays in the buffer for correction.
func (m *Model) submitInput(mode InputMode) bool {
	text := strings.TrimSpace(mode.Buffer)
	if text == "" {
		return false
	}

	switch mode.Kind {
	case InputAdd:
		_, err := m.svc.Add(text, m.svc.Folder())
		return err == nil
	case InputFolder:
		return m.svc.SetFolder(text) == nil
	case InputDelete:
		return m.submitDelete(text)
	}
	return false
}

// submitDelete handles "folder [name]" and a 1-based rank in the current
// folder. A valid rank without a task is accepted and removes nothing.
func (m *Model) submitDelete(text string) bool {
	fields := strings.Fields(text)
	if strings.EqualFold(fields[0], "folder") {
		m.svc.DeleteFolder(strings.Join(fields[1:], " "))
		return true
	}

	rank, err := strconv.Atoi(text)
	if err != nil || rank <= 0 {
		return false
	}
	m.svc.DeleteByFolderRank(m.svc.Folder(), rank)
	return true
}

func (m *Model) updateNavigateMode(mode NavigateMode, msg tea.KeyMsg) {
	indexes := m.svc.FilteredIndices(m.svc.Folder())
	if len(indexes) == 0 {
		m.mode = CommandMode{}
		return
	}
	mode.Selected = clamp(mode.Selected, 0, len(indexes)-1)

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = CommandMode{}
		return
	case key.Matches(msg, m.keys.Up):
		mode.Selected = clamp(mode.Selected-1, 0, len(indexes)-1)
	case key.Matches(msg, m.keys.Down):
		mode.Selected = clamp(mode.Selected+1, 0, len(indexes)-1)
	case key.Matches(msg, m.keys.MarkDone):
		_ = m.svc.MarkDone(indexes[mode.Selected])
	}
	m.mode = mode
}

// ensureSelection keeps Navigate inside the current folder's view and
// falls back to Command when the view is empty.
func (m *Model) ensureSelection() {
	nav, ok := m.mode.(NavigateMode)
	if !ok {
		return
	}
	count := len(m.svc.FilteredIndices(m.svc.Folder()))
	if count == 0 {
		m.mode = CommandMode{}
		return
	}
	nav.Selected = clamp(nav.Selected, 0, count-1)
	m.mode = nav
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func appendPrintable(buf string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return buf + " "
	case tea.KeyRunes:
		return buf + string(msg.Runes)
	}
	return buf
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
