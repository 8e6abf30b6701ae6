package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by the appliance, parsed once at startup.
type Fonts struct {
	bySize   map[int]font.Face
	fallback int
}

// LoadFonts parses the embedded Go Regular font at each requested point
// size. The smallest size doubles as the fallback for sizes that were never
// loaded, so a bad size request degrades instead of failing a message.
func LoadFonts(sizes ...int) (*Fonts, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("at least one font size is required")
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}

	f := &Fonts{bySize: make(map[int]font.Face, len(sizes))}
	smallest := sizes[0]
	for _, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("font size must be positive, got %d", size)
		}
		if _, ok := f.bySize[size]; ok {
			continue
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %dpt face: %w", size, err)
		}
		f.bySize[size] = face
		if size < smallest {
			smallest = size
		}
	}
	f.fallback = smallest
	return f, nil
}

// Face returns the face for size, falling back to the smallest loaded face
// when size was never loaded.
func (f *Fonts) Face(size int) font.Face {
	if face, ok := f.bySize[size]; ok {
		return face
	}
	return f.bySize[f.fallback]
}
