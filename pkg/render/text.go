package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	fontOnce sync.Once
	goFont   *opentype.Font
	fontErr  error
)

func regularFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = opentype.Parse(goregular.TTF)
	})
	return goFont, fontErr
}

// faces caches one face per pixel size for a single render
type faces map[float64]font.Face

func (f faces) get(size float64) (font.Face, error) {
	if face, ok := f[size]; ok {
		return face, nil
	}
	fnt, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	f[size] = face
	return face, nil
}

func (f faces) close() {
	for _, face := range f {
		face.Close()
	}
}

// labelOrigin returns the baseline start of a label in screen pixels, given
// the anchor, the text width and the scaled size and offset
func labelOrigin(anchor r2.Vec, align Align, width, size, offset float64) r2.Vec {
	x, y := anchor.X, anchor.Y
	switch align {
	case AlignRight:
		x += offset
		y += size / 2
	case AlignAbove:
		x -= width / 2
		y -= offset
	case AlignBelow:
		x -= width / 2
		y += offset + size
	default:
		x -= offset + width
		y += size / 2
	}
	return r2.Vec{X: x, Y: y}
}
