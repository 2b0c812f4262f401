package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		text string
		n    int
		want string
	}{
		{"HelloWorld", 5, "He..."},
		{"Hi", 5, "Hi"},
		{"abcdef", 2, ".."},
		{"abcdef", 3, "..."},
		{"abcdef", 6, "abcdef"},
		{"abcdefg", 6, "abc..."},
		{"anything", 0, ""},
	}
	for _, tc := range cases {
		got := truncate(tc.text, tc.n)
		if got != tc.want {
			t.Fatalf("truncate(%q, %d): expected %q, got %q", tc.text, tc.n, tc.want, got)
		}
		if w := ansi.StringWidth(got); w > tc.n {
			t.Fatalf("truncate(%q, %d) is %d cells wide", tc.text, tc.n, w)
		}
	}
}

func TestClampDisplayPassesEscapesThrough(t *testing.T) {
	content := "\x1b[31mHello\x1b[0m World"

	got, visible := clampDisplay(content, 5)
	if got != "\x1b[31mHello\x1b[0m" {
		t.Fatalf("unexpected clamp result %q", got)
	}
	if visible != 5 {
		t.Fatalf("expected 5 visible cells, got %d", visible)
	}

	full, visible := clampDisplay(content, 40)
	if full != content || visible != 11 {
		t.Fatalf("expected untouched content with 11 cells, got %q (%d)", full, visible)
	}
}

func TestClampDisplayKeepsResetAfterCut(t *testing.T) {
	got, visible := clampDisplay("\x1b[1mabcdef\x1b[0m", 3)
	if got != "\x1b[1mabc\x1b[0m" || visible != 3 {
		t.Fatalf("expected trailing reset to survive the cut, got %q (%d)", got, visible)
	}
}

func TestClampDisplayWideRunes(t *testing.T) {
	got, visible := clampDisplay("日本語", 5)
	if got != "日本" || visible != 4 {
		t.Fatalf("expected two wide runes in 5 cells, got %q (%d)", got, visible)
	}
}

func TestTableRowIsAlwaysFrameWide(t *testing.T) {
	rows := []string{
		"",
		"short",
		strings.Repeat("x", 200),
		"\x1b[38;5;219m" + strings.Repeat("y", 80) + "\x1b[0m",
		"日本語のタスク",
	}
	for _, r := range rows {
		line := tableRow(r)
		if w := ansi.StringWidth(line); w != FrameWidth {
			t.Fatalf("row %q rendered %d cells wide, expected %d", r, w, FrameWidth)
		}
		plain := ansi.Strip(line)
		if !strings.HasPrefix(plain, "│") || !strings.HasSuffix(plain, "│") {
			t.Fatalf("expected bordered row, got %q", plain)
		}
	}
}

func TestRuleWidth(t *testing.T) {
	if w := ansi.StringWidth(rule("╭", "╮")); w != FrameWidth {
		t.Fatalf("expected rule width %d, got %d", FrameWidth, w)
	}
}

func TestFlattenReplacesControlCharacters(t *testing.T) {
	if got := flatten("a\tb\nc\rd"); got != "a b c d" {
		t.Fatalf("unexpected flatten result %q", got)
	}
}
