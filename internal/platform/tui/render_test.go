package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/run-for-love/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "hi", core.ColorPink)
	s.DrawTextColored(3, 1, "there", core.ColorBrown)

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("rendered %d line breaks, expected 2", lines)
	}
	for _, want := range []string{"hi", "there"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"plain text", "plain text"},
		{"Love 💖 wins", "Love wins"},
		{"Party 🎉 time", "Party time"},
		{"Go 💖\uFE0F", "Go"},
		{"Coffee ☕\uFE0F", "Coffee"},
		{"lone \uFE0F selector", "lone selector"},
		{"a\u200Db", "ab"},
		{"cafe\u0301", "cafe"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cellText(tt.in); got != tt.expected {
			t.Errorf("cellText(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{"fits", "one two", 10, []string{"one two"}},
		{"wraps on words", "one two three", 7, []string{"one two", "three"}},
		{"exact width", "abc def", 7, []string{"abc def"}},
		{"cuts long words", "abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"long word after text", "a abcdefgh", 4, []string{"a", "abcd", "efgh"}},
		{"empty", "", 5, nil},
		{"zero width", "text", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("wrapText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
			}
			for _, line := range got {
				if n := len([]rune(line)); n > tt.width {
					t.Errorf("line %q is %d wide, limit %d", line, n, tt.width)
				}
			}
		})
	}
}
