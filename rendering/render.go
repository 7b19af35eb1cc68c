package rendering

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

type cellKey struct {
	fg, bg color.NRGBA
	upper  bool
	hasBg  bool
}

// Render draws img with two pixel rows per line of text, using half block
// characters colored with the top and bottom pixel. Fully transparent pixels
// are left blank.
func Render(img image.Image) string {
	b := img.Bounds()
	styles := make(map[cellKey]string)
	lines := make([]string, 0, (b.Dy()+1)/2)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		cells := make([]string, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			top := pixel(img, x, y)
			var bottom color.NRGBA
			if y+1 < b.Max.Y {
				bottom = pixel(img, x, y+1)
			}

			cells = append(cells, cell(top, bottom, styles))
		}

		// drop blank cells at the end of the line
		end := len(cells)
		for end > 0 && cells[end-1] == " " {
			end--
		}

		lines = append(lines, strings.Join(cells[:end], ""))
	}

	return strings.Join(lines, "\n")
}

func pixel(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func cell(top, bottom color.NRGBA, styles map[cellKey]string) string {
	var key cellKey
	switch {
	case top.A == 0 && bottom.A == 0:
		return " "
	case bottom.A == 0:
		key = cellKey{fg: top, upper: true}
	case top.A == 0:
		key = cellKey{fg: bottom}
	default:
		key = cellKey{fg: top, bg: bottom, upper: true, hasBg: true}
	}

	if rendered, ok := styles[key]; ok {
		return rendered
	}

	style := lipgloss.NewStyle().Foreground(hex(key.fg))
	if key.hasBg {
		style = style.Background(hex(key.bg))
	}

	char := lowerHalf
	if key.upper {
		char = upperHalf
	}

	rendered := style.Render(char)
	styles[key] = rendered

	return rendered
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
