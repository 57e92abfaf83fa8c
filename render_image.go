package vtscreen

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ImageConfig controls how RenderImage rasterizes the active buffer.
type ImageConfig struct {
	// Font face to draw glyphs with. Defaults to basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell box dimensions derived
	// from the font's metrics.
	CellWidth  int
	CellHeight int

	// Palette overrides Palette256 for ColorIndexed/ColorBright lookups.
	Palette *[256]color.RGBA

	// DefaultFG and DefaultBG override DefaultForeground/DefaultBackground.
	DefaultFG *color.RGBA
	DefaultBG *color.RGBA

	// CursorColor overrides the inverted-colour cursor box. Nil inverts.
	CursorColor *color.RGBA

	// ShowCursor controls cursor rendering. Default true.
	ShowCursor *bool
}

// LoadFont reads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFontFromReader(f, size)
}

// LoadFontFromReader reads a TrueType or OpenType font from r.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes parses a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderImage rasterizes the active buffer to an RGBA image using default
// settings (basicfont, Palette256). Distinct from Screenshot, which emits a
// replayable VT byte stream rather than pixels.
func (s *Screen) RenderImage() *image.RGBA {
	return s.RenderImageWithConfig(&ImageConfig{})
}

// RenderImageWithConfig rasterizes the active buffer with a custom font,
// palette, and cursor styling.
func (s *Screen) RenderImageWithConfig(cfg *ImageConfig) *image.RGBA {
	b := s.current

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth, cellHeight := cfg.CellWidth, cfg.CellHeight
	if cellWidth == 0 || cellHeight == 0 {
		metrics := face.Metrics()
		if cellWidth == 0 {
			adv, _ := face.GlyphAdvance('M')
			cellWidth = adv.Ceil()
			if cellWidth == 0 {
				cellWidth = 7
			}
		}
		if cellHeight == 0 {
			cellHeight = metrics.Height.Ceil()
		}
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &Palette256
	}
	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}
	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}
	showCursor := true
	if cfg.ShowCursor != nil {
		showCursor = *cfg.ShowCursor
	}

	imgWidth := b.cols * cellWidth
	imgHeight := b.rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, defaultBG)
		}
	}

	for row := 1; row <= b.rows; row++ {
		for col := 1; col <= b.cols; col++ {
			cell := b.cellAt(row, col)
			if cell.WideSpacer {
				continue
			}

			x := (col - 1) * cellWidth
			y := (row - 1) * cellHeight

			fg := resolveColorWithPalette(cell.Fg, true, palette, defaultFG, defaultBG)
			bg := resolveColorWithPalette(cell.Bg, false, palette, defaultFG, defaultBG)
			if cell.Style.Has(StyleInverse) {
				fg, bg = bg, fg
			}
			if cell.Style.Has(StyleFaint) {
				fg = dim(fg)
			}

			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, y+py, bg)
				}
			}

			ch := cell.Char
			if ch == 0 || ch == ' ' || cell.Style.Has(StyleHidden) {
				continue
			}

			baseline := y + face.Metrics().Ascent.Ceil()
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(ch))

			if cell.Style.Has(StyleUnderline) || cell.Style.Has(StyleDoublyUnderlined) {
				underlineY := baseline + 2
				if underlineY < imgHeight {
					for px := 0; px < cellWidth; px++ {
						img.Set(x+px, underlineY, fg)
					}
				}
			}
			if cell.Style.Has(StyleCrossedOut) {
				strikeY := y + cellHeight/2
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, strikeY, fg)
				}
			}
		}
	}

	if showCursor && b.cursor.Visible {
		pos := b.realCursorPosition()
		cursorX := (pos.Col - 1) * cellWidth
		cursorY := (pos.Row - 1) * cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				cx, cy := cursorX+px, cursorY+py
				if cx >= imgWidth || cy >= imgHeight {
					continue
				}
				if cfg.CursorColor != nil {
					img.Set(cx, cy, *cfg.CursorColor)
					continue
				}
				existing := img.RGBAAt(cx, cy)
				img.Set(cx, cy, color.RGBA{
					R: 255 - existing.R,
					G: 255 - existing.G,
					B: 255 - existing.B,
					A: 255,
				})
			}
		}
	}

	return img
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: c.A,
	}
}

func resolveColorWithPalette(c Color, fg bool, palette *[256]color.RGBA, defaultFG, defaultBG *color.RGBA) color.RGBA {
	switch v := c.(type) {
	case nil, ColorDefault:
		if fg {
			return *defaultFG
		}
		return *defaultBG
	case ColorIndexed:
		return palette[v.Index]
	case ColorBright:
		idx := v.Index
		if idx > 7 {
			idx = 7
		}
		return palette[8+idx]
	case ColorRGB:
		return color.RGBA{R: v.R, G: v.G, B: v.B, A: 255}
	default:
		if fg {
			return *defaultFG
		}
		return *defaultBG
	}
}
