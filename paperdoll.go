package paperdoll

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Visual is the opaque result of rendering one layer (or a whole composite).
// Paperdoll never inspects pixels; it only passes visuals through transforms
// and draws them on top of each other during composition.
type Visual = *ebiten.Image

// Transform post-processes a layer's rendered visual (tint, fade, outline).
// A nil input must produce a nil output.
type Transform func(Visual) Visual

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is submitted to a draw call.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// OptionKind distinguishes the closed set of option variants. Every consumer
// switches exhaustively on it; there is no runtime type inspection.
type OptionKind uint8

const (
	KindValueList       OptionKind = iota // ordered list of opaque values
	KindBoolean                           // two-valued flag (index 1 = false, 2 = true)
	KindText                              // free text input
	KindValidatableText                   // free text input checked by a validator
	KindColor                             // palette swatch with preview-image identifiers
)

// String returns the kind's name for debug output.
func (k OptionKind) String() string {
	switch k {
	case KindValueList:
		return "ValueList"
	case KindBoolean:
		return "Boolean"
	case KindText:
		return "Text"
	case KindValidatableText:
		return "ValidatableText"
	case KindColor:
		return "Color"
	default:
		return "Unknown"
	}
}
