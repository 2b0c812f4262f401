package tui

import (
	"fmt"
	"math/bits"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pastel-todo/model"
)

const (
	// FrameWidth and FrameHeight are the fixed grid size, borders included.
	FrameWidth  = 60
	FrameHeight = 30

	tableWidth      = FrameWidth - 2
	taskColumnWidth = 36
	maxVisibleTasks = 7

	tipPeriod = 15 // seconds
)

var (
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("219"))
	todoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("153"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("151"))
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("223"))
	folderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("159"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	pointerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("225"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	tipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Faint(true).Italic(true)
	titleStyle   = lipgloss.NewStyle().
			Background(lipgloss.Color("60")).
			Foreground(lipgloss.Color("218")).
			Bold(true)
)

var tips = []string{
	"Tip: Tap add for a quick idea, folder to regroup, delete to tidy up.",
	"Tip: Folder keeps contexts neat; add logs tasks; delete clears the clutter.",
	"Tip: Need a reset? add captures, folder jumps, delete prunes.",
}

// scrollStart returns the first row of the task window. selected is -1
// when nothing is selected, in which case the newest rows are shown.
func scrollStart(count, selected int) int {
	start := 0
	if selected >= 0 {
		if selected+1 > maxVisibleTasks {
			start = selected + 1 - maxVisibleTasks
		}
		if count > maxVisibleTasks && start+maxVisibleTasks > count {
			start = count - maxVisibleTasks
		}
	} else if count > maxVisibleTasks {
		start = count - maxVisibleTasks
	}
	return start
}

// tipIndex picks a tip for the 15 second bucket containing now.
func tipIndex(now time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	tick := now.Unix() / tipPeriod
	if tick < 0 {
		tick = 0
	}
	hash := bits.RotateLeft64(uint64(tick)*6364136223846793005, 7)
	return int(hash % uint64(n))
}

func (m *Model) renderFrame(now time.Time) string {
	folder := m.svc.Folder()
	indexes := m.svc.FilteredIndices(folder)
	count := len(indexes)

	selected := -1
	if nav, ok := m.mode.(NavigateMode); ok && count > 0 {
		selected = clamp(nav.Selected, 0, count-1)
	}
	start := scrollStart(count, selected)
	end := start + maxVisibleTasks
	if end > count {
		end = count
	}

	lines := make([]string, 0, FrameHeight)
	lines = append(lines,
		rule("╭", "╮"),
		tableRow(lipgloss.PlaceHorizontal(tableWidth, lipgloss.Center, titleStyle.Render(" PASTEL TODO "))),
		rule("├", "┤"),
		tableRow(fmt.Sprintf("%s %s  %s %s (%s)",
			accentStyle.Render("Total:"),
			valueStyle.Render(fmt.Sprintf("%-3d", m.svc.Len())),
			accentStyle.Render("Folder:"),
			folderStyle.Render(flatten(folder)),
			valueStyle.Render(fmt.Sprint(count)),
		)),
		tableRow(accentStyle.Render("Folder Name:")+" "+folderStyle.Render(flatten(folder))),
		rule("├", "┤"),
		tableRow(accentStyle.Render(columnHeader())),
		rule("├", "┤"),
	)

	for order := start; order < end; order++ {
		task, _ := m.svc.Task(indexes[order])
		lines = append(lines, tableRow(taskRow(order, task, order == selected)))
	}
	for i := end - start; i < maxVisibleTasks; i++ {
		lines = append(lines, tableRow(""))
	}

	summary := " Showing 0 tasks in this folder."
	if count > 0 {
		summary = fmt.Sprintf(" Showing %d-%d of %d tasks in this folder.", start+1, end, count)
	}
	lines = append(lines,
		rule("├", "┤"),
		tableRow(summaryStyle.Render(summary)),
		rule("├", "┤"),
	)

	for _, l := range m.statusLines() {
		lines = append(lines, tableRow(l))
	}
	lines = append(lines,
		tableRow(tipStyle.Render(tips[tipIndex(now, len(tips))])),
		rule("╰", "╯"),
	)

	blank := strings.Repeat(" ", FrameWidth)
	for len(lines) < FrameHeight {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func columnHeader() string {
	return " No.   ○  " + padRight("Task", taskColumnWidth) + " Date"
}

func taskRow(order int, task model.Task, selected bool) string {
	pointer := borderStyle.Render("•")
	if selected {
		pointer = pointerStyle.Render("›")
	}
	status := todoStyle.Render("○")
	textStyle := todoStyle
	if task.Done {
		status = doneStyle.Render("✓")
		textStyle = doneStyle
	}
	label := padRight(truncate(flatten(task.Text), taskColumnWidth), taskColumnWidth)

	return fmt.Sprintf("%s %s.  %s  %s %s",
		pointer,
		valueStyle.Render(fmt.Sprintf("%2d", order+1)),
		status,
		textStyle.Render(label),
		dateStyle.Render(task.DateLabel()),
	)
}

// statusLines renders the two mode-dependent lines under the summary.
func (m *Model) statusLines() [2]string {
	switch mode := m.mode.(type) {
	case InputMode:
		label := " " + mode.Kind.String() + ": "
		return [2]string{
			" command: " + mode.Kind.String(),
			label + bufferOrHint(mode.Buffer, inputHint(mode.Kind), tableWidth-len(label)),
		}
	case NavigateMode:
		return [2]string{
			fmt.Sprintf("%s %s, %s, %s",
				accentStyle.Render(" navigate:"),
				valueStyle.Render("↑/↓ move"),
				valueStyle.Render("d marks done"),
				valueStyle.Render("Esc exits"),
			),
			"",
		}
	case CommandMode:
		const label = " command: "
		return [2]string{
			label + bufferOrHint(mode.Buffer, "(type a command and press Enter)", tableWidth-len(label)),
			"",
		}
	}
	return [2]string{}
}

func inputHint(kind InputKind) string {
	switch kind {
	case InputFolder:
		return "(type folder name, Enter to switch)"
	case InputDelete:
		return "(number or 'folder name')"
	default:
		return "(describe the task, Enter to save)"
	}
}

func bufferOrHint(buf, hint string, available int) string {
	if buf == "" {
		return hintStyle.Render(hint)
	}
	return truncate(flatten(buf), available)
}
