// internal/ui/font.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces shared by every widget.
type Fonts struct {
	Small   font.Face
	Regular font.Face
	Title   font.Face
	Huge    font.Face
}

// LoadFonts builds the faces from the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	f := &Fonts{}
	faces := []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&f.Small, regular, 16},
		{&f.Regular, regular, 24},
		{&f.Title, bold, 48},
		{&f.Huge, bold, 160},
	}
	for _, face := range faces {
		*face.dst, err = opentype.NewFace(face.src, &opentype.FaceOptions{
			Size:    face.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %.0fpt: %w", face.size, err)
		}
	}
	return f, nil
}
