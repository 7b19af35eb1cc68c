package rendering

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var NameStyle = lipgloss.NewStyle().Bold(true)

// Center places text in the middle of a line of the given width. Widths that
// aren't known (0) leave the text alone.
func Center(width int, text string) string {
	if width <= 0 {
		return text
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

func NameLine(names []string) string {
	return NameStyle.Render(strings.Join(names, ", "))
}
