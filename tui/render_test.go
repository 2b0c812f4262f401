package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"pastel-todo/app"
	"pastel-todo/model"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, tasks ...model.Task) *Model {
	t.Helper()
	m := NewModel(app.NewService(tasks, "", nil))
	m.now = func() time.Time { return fixedNow }
	return m
}

func inboxTasks(n int) []model.Task {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)
	tasks := make([]model.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, model.Task{
			Text:      fmt.Sprintf("task %d", i+1),
			Folder:    "inbox",
			CreatedAt: created,
		})
	}
	return tasks
}

func plainLines(m *Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestScrollWindowKeepsSelectionVisible(t *testing.T) {
	for count := 0; count <= 20; count++ {
		for selected := -1; selected < count; selected++ {
			start := scrollStart(count, selected)
			if start < 0 {
				t.Fatalf("count=%d selected=%d: negative start %d", count, selected, start)
			}
			rendered := count - start
			if rendered > maxVisibleTasks {
				rendered = maxVisibleTasks
			}
			if selected >= 0 && (selected < start || selected >= start+maxVisibleTasks) {
				t.Fatalf("count=%d selected=%d: selection outside window starting at %d", count, selected, start)
			}
			if count >= maxVisibleTasks && start+rendered > count {
				t.Fatalf("count=%d selected=%d: window overruns list", count, selected)
			}
			if count >= maxVisibleTasks && rendered != maxVisibleTasks {
				t.Fatalf("count=%d selected=%d: expected a full window, got %d rows", count, selected, rendered)
			}
		}
	}
}

func TestScrollWindowWithoutSelectionShowsTail(t *testing.T) {
	if got := scrollStart(12, -1); got != 5 {
		t.Fatalf("expected tail window start 5, got %d", got)
	}
	if got := scrollStart(4, -1); got != 0 {
		t.Fatalf("expected start 0 for short lists, got %d", got)
	}
	if got := scrollStart(12, 2); got != 0 {
		t.Fatalf("expected start 0 for an early selection, got %d", got)
	}
	if got := scrollStart(12, 9); got != 3 {
		t.Fatalf("expected start 3 for selection 9, got %d", got)
	}
}

func TestTipIndexIsStableWithinBucket(t *testing.T) {
	bucket := time.Unix(1_800_000_000-(1_800_000_000%tipPeriod), 0)
	want := tipIndex(bucket, len(tips))
	for s := 0; s < tipPeriod; s++ {
		if got := tipIndex(bucket.Add(time.Duration(s)*time.Second), len(tips)); got != want {
			t.Fatalf("expected tip %d across the bucket, got %d at +%ds", want, got, s)
		}
	}

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		idx := tipIndex(bucket.Add(time.Duration(i*tipPeriod)*time.Second), len(tips))
		if idx < 0 || idx >= len(tips) {
			t.Fatalf("tip index %d out of range", idx)
		}
		seen[idx] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected tips to rotate across buckets, saw %v", seen)
	}

	if got := tipIndex(time.Unix(-500, 0), len(tips)); got != tipIndex(time.Unix(0, 0), len(tips)) {
		t.Fatalf("expected times before the epoch to share bucket zero")
	}
}

func TestFrameHasFixedGeometry(t *testing.T) {
	for _, n := range []int{0, 3, 7, 25} {
		m := newTestModel(t, inboxTasks(n)...)
		for _, mode := range []Mode{CommandMode{Buffer: strings.Repeat("z", 90)}, InputMode{Kind: InputDelete}, NavigateMode{Selected: n / 2}} {
			m.mode = mode
			m.ensureSelection()
			lines := strings.Split(m.View(), "\n")
			if len(lines) != FrameHeight {
				t.Fatalf("n=%d mode=%T: expected %d lines, got %d", n, mode, FrameHeight, len(lines))
			}
			for i, l := range lines {
				if w := ansi.StringWidth(l); w != FrameWidth {
					t.Fatalf("n=%d mode=%T: line %d is %d cells wide: %q", n, mode, i, w, ansi.Strip(l))
				}
			}
		}
	}
}

func TestFrameSectionsForEmptyFolder(t *testing.T) {
	m := newTestModel(t)
	view := ansi.Strip(m.View())

	for _, want := range []string{
		"PASTEL TODO",
		"Total: 0",
		"Folder: inbox (0)",
		"Folder Name: inbox",
		"No.",
		"Date",
		"Showing 0 tasks in this folder.",
		"command: (type a command and press Enter)",
		"Tip:",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected frame to contain %q\n%s", want, view)
		}
	}
}

func TestFrameTitleIsCentered(t *testing.T) {
	lines := plainLines(newTestModel(t))
	title := strings.TrimSuffix(strings.TrimPrefix(lines[1], "│"), "│")
	left := len(title) - len(strings.TrimLeft(title, " "))
	right := len(title) - len(strings.TrimRight(title, " "))
	if diff := left - right; diff < -1 || diff > 1 {
		t.Fatalf("expected centered title, got %q", title)
	}
}

func TestFrameShowsTailWithoutSelection(t *testing.T) {
	m := newTestModel(t, inboxTasks(10)...)
	view := ansi.Strip(m.View())

	if !strings.Contains(view, "Showing 4-10 of 10 tasks in this folder.") {
		t.Fatalf("expected tail window summary\n%s", view)
	}
	if strings.Contains(view, "task 3 ") {
		t.Fatalf("expected early tasks to be scrolled away\n%s", view)
	}
	if !strings.Contains(view, "• 10.  ○  task 10") {
		t.Fatalf("expected newest task row\n%s", view)
	}
}

func TestFrameMarksSelectionInNavigate(t *testing.T) {
	m := newTestModel(t, inboxTasks(10)...)
	m.mode = NavigateMode{Selected: 0}
	view := ansi.Strip(m.View())

	if !strings.Contains(view, "Showing 1-7 of 10 tasks in this folder.") {
		t.Fatalf("expected head window summary\n%s", view)
	}
	if !strings.Contains(view, "›  1.  ○  task 1") {
		t.Fatalf("expected pointer on first row\n%s", view)
	}
	if !strings.Contains(view, "navigate: ↑/↓ move, d marks done, Esc exits") {
		t.Fatalf("expected navigate hint\n%s", view)
	}
}

func TestFrameTaskRowColumns(t *testing.T) {
	long := strings.Repeat("a", 50)
	m := newTestModel(t, model.Task{Text: long, Done: true, Folder: "inbox", CreatedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)})
	lines := plainLines(m)

	row := lines[8]
	want := "│•  1.  ✓  " + strings.Repeat("a", taskColumnWidth-3) + "... 04/03/26"
	if !strings.HasPrefix(row, want) {
		t.Fatalf("unexpected task row\nwant prefix=%q\ngot=%q", want, row)
	}
	header := lines[6]
	headerCol := ansi.StringWidth(header[:strings.Index(header, "Date")])
	rowCol := ansi.StringWidth(row[:strings.Index(row, "04/03/26")])
	if headerCol != rowCol {
		t.Fatalf("expected date column aligned with header\n%q\n%q", header, row)
	}
}

func TestFrameInputLines(t *testing.T) {
	m := newTestModel(t)
	m.mode = InputMode{Kind: InputAdd, Buffer: "buy milk"}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "command: add") || !strings.Contains(view, " add: buy milk") {
		t.Fatalf("expected add input lines\n%s", view)
	}

	m.mode = InputMode{Kind: InputFolder}
	view = ansi.Strip(m.View())
	if !strings.Contains(view, " folder: (type folder name, Enter to switch)") {
		t.Fatalf("expected folder hint\n%s", view)
	}

	m.mode = InputMode{Kind: InputDelete}
	view = ansi.Strip(m.View())
	if !strings.Contains(view, " delete: (number or 'folder name')") {
		t.Fatalf("expected delete hint\n%s", view)
	}
}

func TestFrameTipFollowsClock(t *testing.T) {
	m := newTestModel(t)
	want := tips[tipIndex(fixedNow, len(tips))]
	lines := plainLines(m)
	tipLine := lines[20]
	if !strings.HasPrefix(strings.TrimPrefix(tipLine, "│"), want[:20]) {
		t.Fatalf("expected tip %q on the tip line, got %q", want, tipLine)
	}
}
