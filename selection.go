package vtscreen

// Selection is a text region in the active buffer: every cell in row-major
// order between Start and End inclusive. Start and End are normalized so
// Start never sorts after End.
type Selection struct {
	Start  Coordinate
	End    Coordinate
	Active bool
}

// SetSelection activates a selection spanning start to end, swapping them if
// given in reverse order.
func (s *Screen) SetSelection(start, end Coordinate) {
	if end.Before(start) {
		start, end = end, start
	}
	s.selection = Selection{Start: start, End: end, Active: true}
}

// ClearSelection deactivates the current selection without forgetting its
// bounds.
func (s *Screen) ClearSelection() { s.selection.Active = false }

// GetSelection returns the current selection state.
func (s *Screen) GetSelection() Selection { return s.selection }

// HasSelection reports whether a selection is currently active.
func (s *Screen) HasSelection() bool { return s.selection.Active }

// IsSelected reports whether (row, col) falls within the active selection.
func (s *Screen) IsSelected(row, col int) bool {
	if !s.selection.Active {
		return false
	}
	pos := Coordinate{Row: row, Col: col}
	if pos.Before(s.selection.Start) || s.selection.End.Before(pos) {
		return false
	}
	return true
}

// GetSelectedText extracts the text within the active selection. Empty cells
// render as spaces; rows are newline-separated.
func (s *Screen) GetSelectedText() string {
	if !s.selection.Active {
		return ""
	}
	b := s.current
	start, end := s.selection.Start, s.selection.End

	var out []rune
	for row := start.Row; row <= end.Row && row <= b.rows; row++ {
		startCol, endCol := 1, b.cols
		if row == start.Row {
			startCol = start.Col
		}
		if row == end.Row {
			endCol = end.Col
		}
		for col := startCol; col <= endCol && col <= b.cols; col++ {
			cell := b.cellAt(row, col)
			if cell.WideSpacer {
				continue
			}
			if cell.Char == 0 {
				out = append(out, ' ')
			} else {
				out = append(out, cell.Char)
			}
		}
		if row < end.Row {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Search finds every occurrence of pattern in the visible screen, returning
// the coordinate of each match's first rune.
func (s *Screen) Search(pattern string) []Coordinate {
	if pattern == "" {
		return nil
	}
	needle := []rune(pattern)
	var matches []Coordinate
	for row := 1; row <= s.current.rows; row++ {
		haystack := []rune(s.current.lineContent(row))
		for col := 0; col <= len(haystack)-len(needle); col++ {
			if runesEqual(haystack[col:col+len(needle)], needle) {
				matches = append(matches, Coordinate{Row: row, Col: col + 1})
			}
		}
	}
	return matches
}

// SearchScrollback finds every occurrence of pattern in the primary buffer's
// scrollback. Returned rows are negative, with -1 the most recent scrollback
// line, matching RenderHistoryTextLine's oldest-first numbering in reverse.
func (s *Screen) SearchScrollback(pattern string) []Coordinate {
	if pattern == "" {
		return nil
	}
	needle := []rune(pattern)
	n := s.primary.scrollbackLen()
	var matches []Coordinate
	for i := 1; i <= n; i++ {
		haystack := []rune(cellsToString(s.primary.scrollbackLine(i)))
		row := -(n - i + 1)
		for col := 0; col <= len(haystack)-len(needle); col++ {
			if runesEqual(haystack[col:col+len(needle)], needle) {
				matches = append(matches, Coordinate{Row: row, Col: col + 1})
			}
		}
	}
	return matches
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
