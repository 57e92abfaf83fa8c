package vtscreen

import "testing"

func TestNewBufferDimensions(t *testing.T) {
	b := newBuffer(24, 80, true, 1000)
	rows, cols := b.size()
	if rows != 24 || cols != 80 {
		t.Errorf("expected 24x80, got %dx%d", rows, cols)
	}
	if b.cursor.Pos != (Coordinate{Row: 1, Col: 1}) {
		t.Errorf("expected cursor at (1,1), got %+v", b.cursor.Pos)
	}
}

func TestBufferCellAt(t *testing.T) {
	b := newBuffer(24, 80, true, 1000)
	cell := b.cellAt(1, 1)
	cell.Char = 'A'

	if b.cellAt(1, 1).Char != 'A' {
		t.Errorf("expected 'A', got %q", b.cellAt(1, 1).Char)
	}
}

func TestBufferAppendCharAdvancesCursor(t *testing.T) {
	b := newBuffer(5, 10, true, 0)
	b.appendChar('H')
	b.appendChar('i')

	if b.cellAt(1, 1).Char != 'H' || b.cellAt(1, 2).Char != 'i' {
		t.Errorf("expected H,i written at columns 1,2")
	}
	if b.cursor.Pos.Col != 3 {
		t.Errorf("expected cursor at column 3, got %d", b.cursor.Pos.Col)
	}
}

func TestBufferAppendCharWrapsAtRightMargin(t *testing.T) {
	b := newBuffer(3, 3, true, 0)
	b.appendChar('A')
	b.appendChar('B')
	b.appendChar('C')

	if !b.wrapPending {
		t.Fatal("expected wrapPending after filling the last column")
	}
	b.appendChar('D')

	if b.cellAt(2, 1).Char != 'D' {
		t.Errorf("expected wrapped char on row 2 col 1, got %q at (2,1)", b.cellAt(2, 1).Char)
	}
	if b.cellAt(1, 1).Char != 'A' {
		t.Error("expected row 1 unchanged after wrap")
	}
}

func TestBufferAppendCharWideRuneReservesSpacer(t *testing.T) {
	b := newBuffer(3, 10, true, 0)
	b.appendChar('中')

	if !b.cellAt(1, 1).Wide {
		t.Error("expected wide flag on the rune's cell")
	}
	if !b.cellAt(1, 2).WideSpacer {
		t.Error("expected a spacer cell following a wide rune")
	}
	if b.cursor.Pos.Col != 3 {
		t.Errorf("expected cursor to advance by 2, got col %d", b.cursor.Pos.Col)
	}
}

func TestBufferLinefeedScrollsAtBottomMargin(t *testing.T) {
	b := newBuffer(3, 5, true, 0)
	for row := 1; row <= 3; row++ {
		b.cellAt(row, 1).Char = rune('0' + row)
	}
	b.cursor.Pos.Row = 3

	b.linefeed()

	if b.cellAt(1, 1).Char != '2' {
		t.Errorf("expected row 1 to now hold what was row 2, got %q", b.cellAt(1, 1).Char)
	}
	if b.cellAt(3, 1).Char != ' ' {
		t.Errorf("expected the new bottom row blank, got %q", b.cellAt(3, 1).Char)
	}
	if b.cursor.Pos.Row != 3 {
		t.Errorf("expected cursor row to stay at the bottom margin, got %d", b.cursor.Pos.Row)
	}
}

func TestBufferScrollUpPushesScrollbackOnlyAtFullWidth(t *testing.T) {
	b := newBuffer(3, 5, true, 10)
	b.cellAt(1, 1).Char = 'X'

	b.scrollUpRegion(1, b.margin)

	if b.scrollbackLen() != 1 {
		t.Fatalf("expected 1 scrollback line, got %d", b.scrollbackLen())
	}
	if b.scrollbackLine(1)[0].Char != 'X' {
		t.Error("expected the scrolled-off row preserved in scrollback")
	}
}

func TestBufferScrollUpNarrowMarginDoesNotAccumulateScrollback(t *testing.T) {
	b := newBuffer(5, 10, true, 10)
	b.setTopBottomMargin(intPtr(2), intPtr(4))

	b.scrollUpRegion(1, b.margin)

	if b.scrollbackLen() != 0 {
		t.Errorf("expected no scrollback accumulation for a margin narrower than the screen, got %d", b.scrollbackLen())
	}
}

func TestBufferInsertAndDeleteCharacters(t *testing.T) {
	b := newBuffer(1, 5, true, 0)
	for i, ch := range "ABCDE" {
		b.cellAt(1, i+1).Char = ch
	}
	b.cursor.Pos = Coordinate{Row: 1, Col: 2}

	b.insertCharacters(2)
	if b.cellAt(1, 2).Char != ' ' || b.cellAt(1, 3).Char != ' ' {
		t.Error("expected two blanks inserted at the cursor")
	}
	if b.cellAt(1, 4).Char != 'B' {
		t.Errorf("expected shifted content at column 4, got %q", b.cellAt(1, 4).Char)
	}

	b.deleteCharacters(2)
	if b.cellAt(1, 2).Char != 'B' {
		t.Errorf("expected delete to pull content back to the cursor, got %q", b.cellAt(1, 2).Char)
	}
}

func TestBufferEraseCharactersDoesNotShift(t *testing.T) {
	b := newBuffer(1, 5, true, 0)
	for i, ch := range "ABCDE" {
		b.cellAt(1, i+1).Char = ch
	}
	b.cursor.Pos = Coordinate{Row: 1, Col: 2}

	b.eraseCharacters(2)

	if b.cellAt(1, 2).Char != ' ' || b.cellAt(1, 3).Char != ' ' {
		t.Error("expected erased cells blanked")
	}
	if b.cellAt(1, 4).Char != 'D' {
		t.Error("expected cells past the erased range untouched")
	}
}

func TestBufferDirtyTracking(t *testing.T) {
	b := newBuffer(4, 4, true, 0)
	b.clearDirty()

	if len(b.dirtyCells()) != 0 {
		t.Error("expected no dirty cells after clearDirty")
	}

	b.markDirty(2, 2)
	dirty := b.dirtyCells()
	if len(dirty) != 1 || dirty[0] != (Coordinate{Row: 2, Col: 2}) {
		t.Errorf("expected exactly (2,2) dirty, got %v", dirty)
	}
}

func TestBufferTabStops(t *testing.T) {
	b := newBuffer(1, 80, true, 0)

	b.cursor.Pos.Col = 1
	if next := b.nextTab(); next != 9 {
		t.Errorf("expected next tab stop at column 9, got %d", next)
	}
}

func TestBufferTabStopCapsAtRightMargin(t *testing.T) {
	b := newBuffer(1, 80, true, 0)
	b.setMode(LeftRightMargin, true)
	b.setLeftRightMargin(intPtr(1), intPtr(20))
	b.cursor.Pos.Col = 18

	if next := b.nextTab(); next != 20 {
		t.Errorf("expected the final tab stop to coincide with the right margin (20), got %d", next)
	}
}

func TestBufferResizeGrowPreservesContent(t *testing.T) {
	b := newBuffer(5, 10, true, 0)
	b.cellAt(1, 1).Char = 'A'
	b.cellAt(5, 10).Char = 'Z'

	b.resize(10, 20)

	rows, cols := b.size()
	if rows != 10 || cols != 20 {
		t.Errorf("expected 10x20, got %dx%d", rows, cols)
	}
	if b.cellAt(1, 1).Char != 'A' {
		t.Error("expected top-left content preserved")
	}
	if b.cellAt(5, 10).Char != 'Z' {
		t.Error("expected original bottom-right content preserved")
	}
}

func TestBufferResizeShrinkPushesScrollbackOnPrimary(t *testing.T) {
	b := newBuffer(5, 10, true, 10)
	for row := 1; row <= 5; row++ {
		b.cellAt(row, 1).Char = rune('0' + row)
	}
	b.cursor.Pos = Coordinate{Row: 5, Col: 1}

	b.resize(2, 10)

	if b.scrollbackLen() == 0 {
		t.Error("expected shrinking rows below the cursor to push history to scrollback")
	}
}

func TestBufferResizeShrinkTruncatesBottomNotTop(t *testing.T) {
	b := newBuffer(5, 10, true, 10)
	for row := 1; row <= 5; row++ {
		b.cellAt(row, 1).Char = rune('0' + row)
	}
	b.cursor.Pos = Coordinate{Row: 1, Col: 1}

	b.resize(2, 10)

	if b.cellAt(1, 1).Char != '1' || b.cellAt(2, 1).Char != '2' {
		t.Errorf("expected rows '1','2' to survive a shrink that truncates the bottom, got %q,%q",
			b.cellAt(1, 1).Char, b.cellAt(2, 1).Char)
	}
	if b.cursor.Pos.Row != 1 {
		t.Errorf("expected cursor to remain at row 1, got %d", b.cursor.Pos.Row)
	}
}

func TestBufferLineContentTrimsWideSpacer(t *testing.T) {
	b := newBuffer(1, 10, true, 0)
	b.appendChar('中')
	b.appendChar('文')

	content := b.lineContent(1)
	if content != "中文" {
		t.Errorf("expected %q, got %q", "中文", content)
	}
}

func TestBufferSaveRestoreCursor(t *testing.T) {
	b := newBuffer(10, 10, true, 0)
	b.cursor.Pos = Coordinate{Row: 3, Col: 4}
	b.attrs.Style = StyleBold

	b.saveCursor()
	b.cursor.Pos = Coordinate{Row: 1, Col: 1}
	b.attrs.Style = 0

	b.restoreCursor()

	if b.cursor.Pos != (Coordinate{Row: 3, Col: 4}) {
		t.Errorf("expected cursor restored to (3,4), got %+v", b.cursor.Pos)
	}
	if !b.attrs.Style.Has(StyleBold) {
		t.Error("expected graphics attributes restored")
	}
}

func intPtr(n int) *int { return &n }
