package vtscreen

import "image/color"

// Color is a closed tagged variant: Default, Indexed (0..255), Bright (0..7),
// or RGB (r,g,b). It is the colour type carried by Cell.Fg/Bg and by the
// SetForegroundColor/SetBackgroundColor Commands.
type Color interface {
	isColor()
}

// ColorDefault is the terminal's default foreground or background colour.
type ColorDefault struct{}

// ColorIndexed selects a slot in the 256-colour palette.
type ColorIndexed struct{ Index uint8 }

// ColorBright selects one of the 8 bright ANSI colours (0..7).
type ColorBright struct{ Index uint8 }

// ColorRGB is a 24-bit truecolour value.
type ColorRGB struct{ R, G, B uint8 }

func (ColorDefault) isColor() {}
func (ColorIndexed) isColor() {}
func (ColorBright) isColor()  {}
func (ColorRGB) isColor()     {}

// Palette256 is the standard 256-colour palette: 16 named (0-15), 216 colour
// cube (16-231), 24 grayscale ramp (232-255).
var Palette256 [256]color.RGBA

func init() {
	named := [16]color.RGBA{
		{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
		{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
		{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
		{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
	}
	copy(Palette256[:16], named[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette256[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette256[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForeground and DefaultBackground back ColorDefault when resolving
// to concrete RGBA for rendering (ResolveColor, RenderImage).
var (
	DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ResolveColor converts a Color to a concrete RGBA using Palette256 and the
// default foreground/background. fg selects which default applies to
// ColorDefault.
func ResolveColor(c Color, fg bool) color.RGBA {
	switch v := c.(type) {
	case nil, ColorDefault:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	case ColorIndexed:
		return Palette256[v.Index]
	case ColorBright:
		idx := v.Index
		if idx > 7 {
			idx = 7
		}
		return Palette256[8+idx]
	case ColorRGB:
		return color.RGBA{R: v.R, G: v.G, B: v.B, A: 255}
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}
