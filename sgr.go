package vtscreen

// decodeSGR walks an SGR parameter list left to right and returns the
// Commands it implies. `;`-separated and `:`-separated (sub-parameter) forms
// of the extended colour sequences (38/48;5;N and 38/48;2;r;g;b) are
// accepted as equivalent.
func decodeSGR(params *Params) []Command {
	n := params.Len()
	if n == 0 {
		return []Command{SetGraphicsRendition{ResetAll: true}}
	}

	var cmds []Command
	for i := 0; i < n; {
		sub := params.Sub(i)
		primary := 0
		if len(sub) > 0 {
			primary = sub[0]
		}

		switch {
		case primary == 0:
			cmds = append(cmds, SetGraphicsRendition{ResetAll: true})
			i++

		case primary == 38 || primary == 48:
			fg := primary == 38
			if len(sub) >= 2 {
				i++
				cmds = append(cmds, decodeExtendedColor(fg, sub[1:])...)
				continue
			}
			consumed, c := decodeExtendedColorSemicolon(fg, params, i)
			if c != nil {
				cmds = append(cmds, c)
			}
			i += consumed

		case primary == 39:
			cmds = append(cmds, SetForegroundColor{Color: ColorDefault{}})
			i++
		case primary == 49:
			cmds = append(cmds, SetBackgroundColor{Color: ColorDefault{}})
			i++

		case primary >= 30 && primary <= 37:
			cmds = append(cmds, SetForegroundColor{Color: ColorIndexed{Index: uint8(primary - 30)}})
			i++
		case primary >= 90 && primary <= 97:
			cmds = append(cmds, SetForegroundColor{Color: ColorBright{Index: uint8(primary - 90)}})
			i++
		case primary >= 40 && primary <= 47:
			cmds = append(cmds, SetBackgroundColor{Color: ColorIndexed{Index: uint8(primary - 40)}})
			i++
		case primary >= 100 && primary <= 107:
			cmds = append(cmds, SetBackgroundColor{Color: ColorBright{Index: uint8(primary - 100)}})
			i++

		default:
			if g, ok := styleSGR(primary); ok {
				cmds = append(cmds, g)
			}
			i++
		}
	}
	return cmds
}

// decodeExtendedColor handles the colon sub-parameter form: fields is
// everything after the 38/48 primary, within the same group (e.g. for
// "38:2:r:g:b", fields == [2, r, g, b]).
func decodeExtendedColor(fg bool, fields []int) []Command {
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case 5:
		if len(fields) < 2 {
			return nil
		}
		return []Command{colorCommand(fg, ColorIndexed{Index: uint8(fields[1])})}
	case 2:
		// Some encoders emit an extra colour-space id field before r,g,b;
		// accept both 38:2:r:g:b and 38:2:cs:r:g:b by taking the last three.
		if len(fields) < 4 {
			return nil
		}
		r, g, b := fields[len(fields)-3], fields[len(fields)-2], fields[len(fields)-1]
		return []Command{colorCommand(fg, ColorRGB{R: uint8(r), G: uint8(g), B: uint8(b)})}
	}
	return nil
}

// decodeExtendedColorSemicolon handles the classic `;`-separated form,
// where the mode and colour components are their own top-level parameters
// starting at index i (which holds 38 or 48). Returns the number of
// top-level parameters consumed (at least 1) and the resulting Command, or
// nil if the form was incomplete.
func decodeExtendedColorSemicolon(fg bool, params *Params, i int) (int, Command) {
	n := params.Len()
	if i+1 >= n {
		return 1, nil
	}
	mode := params.Get(i+1, -1)
	switch mode {
	case 5:
		if i+2 >= n {
			return 2, nil
		}
		return 3, colorCommand(fg, ColorIndexed{Index: uint8(params.Get(i+2, 0))})
	case 2:
		if i+4 >= n {
			return 2, nil
		}
		return 5, colorCommand(fg, ColorRGB{
			R: uint8(params.Get(i+2, 0)),
			G: uint8(params.Get(i+3, 0)),
			B: uint8(params.Get(i+4, 0)),
		})
	}
	return 2, nil
}

func colorCommand(fg bool, c Color) Command {
	if fg {
		return SetForegroundColor{Color: c}
	}
	return SetBackgroundColor{Color: c}
}

// styleSGR maps the remaining SGR codes (style set/clear) to a
// SetGraphicsRendition step.
func styleSGR(code int) (SetGraphicsRendition, bool) {
	switch code {
	case 1:
		return SetGraphicsRendition{Set: StyleBold}, true
	case 2:
		return SetGraphicsRendition{Set: StyleFaint}, true
	case 3:
		return SetGraphicsRendition{Set: StyleItalic}, true
	case 4:
		return SetGraphicsRendition{Set: StyleUnderline}, true
	case 5, 6:
		return SetGraphicsRendition{Set: StyleBlinking}, true
	case 7:
		return SetGraphicsRendition{Set: StyleInverse}, true
	case 8:
		return SetGraphicsRendition{Set: StyleHidden}, true
	case 9:
		return SetGraphicsRendition{Set: StyleCrossedOut}, true
	case 21:
		return SetGraphicsRendition{Set: StyleDoublyUnderlined}, true
	case 22:
		return SetGraphicsRendition{Clear: StyleBold | StyleFaint}, true
	case 23:
		return SetGraphicsRendition{Clear: StyleItalic}, true
	case 24:
		return SetGraphicsRendition{Clear: StyleUnderline | StyleDoublyUnderlined}, true
	case 25:
		return SetGraphicsRendition{Clear: StyleBlinking}, true
	case 27:
		return SetGraphicsRendition{Clear: StyleInverse}, true
	case 28:
		return SetGraphicsRendition{Clear: StyleHidden}, true
	case 29:
		return SetGraphicsRendition{Clear: StyleCrossedOut}, true
	}
	return SetGraphicsRendition{}, false
}
