package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// clampDisplay keeps at most width visible cells of content. Escape
// sequences are copied through unaltered wherever they appear, including
// after the cut, so styles opened before the cut still get reset.
func clampDisplay(content string, width int) (string, int) {
	var b strings.Builder
	b.Grow(len(content))

	visible := 0
	clipped := false
	var state byte
	for len(content) > 0 {
		seq, w, n, newState := ansi.DecodeSequence(content, state, nil)
		state = newState
		if n <= 0 {
			break
		}
		content = content[n:]

		if w == 0 {
			b.WriteString(seq)
			continue
		}
		if clipped || visible+w > width {
			clipped = true
			continue
		}
		b.WriteString(seq)
		visible += w
	}
	return b.String(), visible
}

// tableRow renders one bordered row exactly tableWidth cells wide.
func tableRow(content string) string {
	prepared, visible := clampDisplay(content, tableWidth)
	padding := tableWidth - visible
	if padding < 0 {
		padding = 0
	}
	edge := borderStyle.Render("│")
	return edge + prepared + strings.Repeat(" ", padding) + edge
}

// rule renders a horizontal border line between the given corners.
func rule(left, right string) string {
	return borderStyle.Render(left + strings.Repeat("─", tableWidth) + right)
}

// truncate shortens text to n visible cells, ending in "..." when cut.
func truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= n {
		return text
	}
	if n <= 3 {
		return strings.Repeat(".", n)
	}
	return runewidth.Truncate(text, n, "...")
}

func padRight(text string, n int) string {
	return runewidth.FillRight(text, n)
}

// flatten keeps control characters from reaching the grid.
func flatten(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, text)
}
