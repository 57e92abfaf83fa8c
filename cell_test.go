package vtscreen

import "testing"

func TestStyleMaskSetClearHas(t *testing.T) {
	var m StyleMask

	m = m.Set(StyleBold)
	if !m.Has(StyleBold) {
		t.Error("expected bold set")
	}

	m = m.Set(StyleItalic)
	if !m.Has(StyleBold) || !m.Has(StyleItalic) {
		t.Error("expected both bold and italic set")
	}

	m = m.Clear(StyleBold)
	if m.Has(StyleBold) {
		t.Error("expected bold cleared")
	}
	if !m.Has(StyleItalic) {
		t.Error("expected italic to remain set")
	}
}

func TestStyleMaskHasRequiresAllBits(t *testing.T) {
	m := StyleBold
	if m.Has(StyleBold | StyleItalic) {
		t.Error("Has should require every bit in the mask, not just one")
	}
}

func TestBlankCell(t *testing.T) {
	attrs := GraphicsAttributes{Fg: ColorIndexed{Index: 1}, Bg: ColorIndexed{Index: 2}}
	c := blankCell(attrs)

	if c.Char != ' ' {
		t.Errorf("expected space, got %q", c.Char)
	}
	if c.Fg != attrs.Fg || c.Bg != attrs.Bg {
		t.Error("expected blank cell to carry the current graphics attributes")
	}
	if c.Style != 0 {
		t.Error("expected no style on a blank cell")
	}
}

func TestCellReset(t *testing.T) {
	c := Cell{Char: 'A', Fg: ColorIndexed{Index: 3}, Style: StyleBold}
	c.Reset()

	if c.Char != ' ' {
		t.Errorf("expected space after reset, got %q", c.Char)
	}
	if c.Fg != nil {
		t.Error("expected nil foreground after reset")
	}
	if c.Style != 0 {
		t.Error("expected no style after reset")
	}
}

func TestDefaultGraphicsAttributes(t *testing.T) {
	a := defaultGraphicsAttributes()
	if a.Fg != (ColorDefault{}) || a.Bg != (ColorDefault{}) {
		t.Error("expected default foreground and background")
	}
	if a.Style != 0 {
		t.Error("expected no style bits set")
	}
}
