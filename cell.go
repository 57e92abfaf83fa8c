package vtscreen

// StyleMask is a bitmask of the nine character-style attributes specified
// for Cell. Matches the style catalogue in original_source/Screen.h
// (CharacterStyleMask) one-to-one.
type StyleMask uint16

const (
	StyleBold StyleMask = 1 << iota
	StyleFaint
	StyleItalic
	StyleUnderline
	StyleBlinking
	StyleInverse
	StyleHidden
	StyleCrossedOut
	StyleDoublyUnderlined
)

// Has reports whether every flag in m is set.
func (s StyleMask) Has(m StyleMask) bool { return s&m == m }

// Set returns s with the flags in m set.
func (s StyleMask) Set(m StyleMask) StyleMask { return s | m }

// Clear returns s with the flags in m cleared.
func (s StyleMask) Clear(m StyleMask) StyleMask { return s &^ m }

// Cell is a single grid position: a Unicode scalar (0 meaning blank) plus
// graphics attributes. Wide runes (CJK, emoji) occupy the cell to their left
// and leave a WideSpacer cell to its right so that every row keeps exactly
// `columns` cells.
type Cell struct {
	Char  rune
	Fg    Color
	Bg    Color
	Style StyleMask

	Wide       bool // this cell holds the first column of a 2-wide rune
	WideSpacer bool // this cell is the trailing half of a 2-wide rune
	Dirty      bool
}

// blankCell returns a cell reset to the default state under the given
// graphics attribute register ("blanks introduced use the current background
// attribute", per the insert/delete and erase semantics).
func blankCell(attrs GraphicsAttributes) Cell {
	return Cell{Char: ' ', Fg: attrs.Fg, Bg: attrs.Bg}
}

// Reset clears the cell to its zero (blank, default-colour) state.
func (c *Cell) Reset() {
	*c = Cell{Char: ' '}
}

// GraphicsAttributes is the register of colours and style bits applied to
// newly written characters; mutated by SGR and snapshotted by SavedState.
type GraphicsAttributes struct {
	Fg    Color
	Bg    Color
	Style StyleMask
}

func defaultGraphicsAttributes() GraphicsAttributes {
	return GraphicsAttributes{Fg: ColorDefault{}, Bg: ColorDefault{}}
}
