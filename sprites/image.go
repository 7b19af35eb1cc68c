package sprites

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"

	"github.com/samber/lo"
	xdraw "golang.org/x/image/draw"
)

var ErrMalformedImage = errors.New("malformed image data")

func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImage, err)
	}

	return img, nil
}

// Bounds returns the smallest rectangle holding every pixel that isn't fully
// transparent. A fully transparent image gives an empty rectangle.
func Bounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	box := image.Rectangle{}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			box = box.Union(image.Rect(x, y, x+1, y+1))
		}
	}

	return box
}

// Trim crops away fully transparent borders. The result starts at (0, 0).
func Trim(img image.Image) *image.NRGBA {
	box := Bounds(img)
	trimmed := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	xdraw.Copy(trimmed, image.Point{}, img, box, xdraw.Src, nil)

	return trimmed
}

// Offsets returns where each image is painted in the combined canvas: left to
// right with a one pixel gap, bottom aligned.
func Offsets(imgs []image.Image) []image.Point {
	height := lo.Max(lo.Map(imgs, func(img image.Image, _ int) int { return img.Bounds().Dy() }))

	offsets := make([]image.Point, 0, len(imgs))
	shift := 0
	for _, img := range imgs {
		b := img.Bounds()
		offsets = append(offsets, image.Pt(shift, height-b.Dy()))
		shift += b.Dx() + 1
	}

	return offsets
}

// Combine stitches the images together horizontally, in order.
func Combine(imgs []image.Image) *image.NRGBA {
	if len(imgs) == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	width := lo.SumBy(imgs, func(img image.Image) int { return img.Bounds().Dx() }) + len(imgs) - 1
	height := lo.Max(lo.Map(imgs, func(img image.Image, _ int) int { return img.Bounds().Dy() }))

	combined := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, offset := range Offsets(imgs) {
		xdraw.Copy(combined, offset, imgs[i], imgs[i].Bounds(), xdraw.Src, nil)
	}

	internalLogger.V(1).Info("combined sprites", "count", len(imgs), "width", width, "height", height)

	return combined
}
