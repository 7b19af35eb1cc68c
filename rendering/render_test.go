package rendering

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var green = color.NRGBA{G: 255, A: 255}

func TestRenderLineCount(t *testing.T) {
	for _, height := range []int{1, 2, 5, 8} {
		img := image.NewNRGBA(image.Rect(0, 0, 4, height))
		for y := range height {
			for x := range 4 {
				img.Set(x, y, green)
			}
		}

		lines := strings.Split(Render(img), "\n")
		if len(lines) != (height+1)/2 {
			t.Errorf("height %d: expected %d lines, got %d", height, (height+1)/2, len(lines))
		}
		for _, line := range lines {
			if lipgloss.Width(line) != 4 {
				t.Errorf("height %d: expected lines 4 cells wide, got %d", height, lipgloss.Width(line))
			}
		}
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	// column 0: top only, column 1: bottom only, column 2: empty
	img.Set(0, 0, green)
	img.Set(1, 1, green)

	out := Render(img)
	if strings.Contains(out, "\n") {
		t.Fatalf("two pixel rows should render as one line: %q", out)
	}
	if lipgloss.Width(out) != 2 {
		t.Fatalf("trailing blank cell should be dropped, width %d", lipgloss.Width(out))
	}

	upper := strings.Index(out, upperHalf)
	lower := strings.Index(out, lowerHalf)
	if upper < 0 || lower < 0 || upper > lower {
		t.Fatalf("expected an upper half block followed by a lower half block: %q", out)
	}
}

func TestRenderTransparentRow(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	img.Set(1, 3, green)

	lines := strings.Split(Render(img), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "" {
		t.Fatalf("fully transparent rows should render empty, got %q", lines[0])
	}
	if lipgloss.Width(lines[1]) != 2 {
		t.Fatalf("expected leading blank plus one block, got width %d", lipgloss.Width(lines[1]))
	}
	if !strings.HasPrefix(lines[1], " ") {
		t.Fatalf("leading transparent pixel should stay as a space: %q", lines[1])
	}
}

func TestCenter(t *testing.T) {
	if out := Center(0, "abc"); out != "abc" {
		t.Fatalf("unknown width should not change text, got %q", out)
	}

	out := Center(11, "abc")
	if lipgloss.Width(out) != 11 {
		t.Fatalf("expected width 11, got %d", lipgloss.Width(out))
	}
	if !strings.HasPrefix(out, "    abc") {
		t.Fatalf("expected text in the middle, got %q", out)
	}
}

func TestNameLine(t *testing.T) {
	line := NameLine([]string{"Pikachu", "Mr. Mime"})
	if !strings.Contains(line, "Pikachu, Mr. Mime") {
		t.Fatalf("unexpected name line %q", line)
	}
}
