package vtscreen

// OutputHandler consumes Parser events and emits typed Commands into an
// ordered buffer, drained by Screen after each write. It records the screen's
// row count (Screen.Resize keeps it current); none of the parameter defaults
// it applies depend on that count.
type OutputHandler struct {
	rowCount int
	logger   Logger
	cmds     []Command

	oscBuf []byte
}

// NewOutputHandler constructs a handler for a screen of rowCount rows.
func NewOutputHandler(rowCount int, logger Logger) *OutputHandler {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &OutputHandler{rowCount: rowCount, logger: logger}
}

// Commands returns the Commands accumulated since the last Reset.
func (h *OutputHandler) Commands() []Command { return h.cmds }

// Reset discards accumulated Commands; called by Screen after draining them.
func (h *OutputHandler) Reset() { h.cmds = h.cmds[:0] }

func (h *OutputHandler) emit(c Command) { h.cmds = append(h.cmds, c) }

func (h *OutputHandler) logf(format string, args ...any) {
	h.logger.Logf(format, args...)
}

// --- sink interface ---

func (h *OutputHandler) print(r rune) {
	h.emit(AppendChar{Ch: r})
}

func (h *OutputHandler) execute(b byte) {
	switch b {
	case 0x07:
		h.emit(Bell{})
	case 0x08:
		h.emit(Backspace{})
	case 0x09:
		h.emit(MoveCursorToNextTab{})
	case 0x0A, 0x0B, 0x0C:
		h.emit(Linefeed{})
	case 0x0D:
		h.emit(MoveCursorToBeginOfLine{})
	default:
		h.logf("handler: dropping unsupported C0 control 0x%02x", b)
	}
}

func (h *OutputHandler) dispatchEsc(intermediates []byte, final byte) {
	if len(intermediates) == 0 {
		switch final {
		case 'D':
			h.emit(Index{})
		case 'M':
			h.emit(ReverseIndex{})
		case 'E':
			h.emit(MoveCursorToBeginOfLine{})
			h.emit(Linefeed{})
		case 'c':
			h.emit(FullReset{})
		case '7':
			h.emit(SaveCursor{})
		case '8':
			h.emit(RestoreCursor{})
		case '=':
			h.emit(AlternateKeypadMode{Enable: true})
		case '>':
			h.emit(AlternateKeypadMode{Enable: false})
		case '6':
			h.emit(BackIndex{})
		case '9':
			h.emit(ForwardIndex{})
		case 'N':
			h.emit(SingleShiftSelect{Table: CharsetTableG2})
		case 'O':
			h.emit(SingleShiftSelect{Table: CharsetTableG3})
		default:
			h.logf("handler: unsupported escape final 0x%02x", final)
		}
		return
	}

	switch intermediates[0] {
	case '(', ')', '*', '+':
		table := map[byte]CharsetTable{'(': CharsetTableG0, ')': CharsetTableG1, '*': CharsetTableG2, '+': CharsetTableG3}[intermediates[0]]
		cs, ok := charsetFromFinal(final)
		if !ok {
			h.logf("handler: unsupported charset designation %q", final)
			return
		}
		h.emit(DesignateCharset{Table: table, Charset: cs})
	case '#':
		if final == '8' {
			h.emit(ScreenAlignmentPattern{})
			return
		}
		h.logf("handler: unsupported escape #%c", final)
	default:
		h.logf("handler: unsupported escape intermediate %q final %q", intermediates, final)
	}
}

func charsetFromFinal(final byte) (Charset, bool) {
	switch final {
	case '0':
		return CharsetSpecial, true
	case 'A':
		return CharsetUK, true
	case 'B':
		return CharsetASCII, true
	}
	return 0, false
}

func (h *OutputHandler) dispatchCSI(params *Params, intermediates []byte, private byte, final byte) {
	n1 := func(def int) int {
		v := params.Get(0, 0)
		if v == 0 {
			return def
		}
		return v
	}

	switch {
	case len(intermediates) == 0 && private == '?':
		switch final {
		case 'h', 'l':
			h.dispatchPrivateMode(params, final)
		case 'n':
			h.dispatchDSR(params, private)
		default:
			h.logf("handler: unsupported private CSI final %q (params=%v)", final, params.All())
		}
		return
	case len(intermediates) == 1 && intermediates[0] == '$' && final == 'p':
		h.emit(RequestMode{Mode: modeFromWireNumber(params.Get(0, 0), private == '?')})
		return
	case len(intermediates) == 1 && intermediates[0] == '!' && final == 'p':
		h.emit(SoftTerminalReset{})
		return
	case len(intermediates) == 1 && intermediates[0] == '\'' && final == '}':
		h.emit(InsertColumns{N: n1(1)})
		return
	case len(intermediates) == 1 && intermediates[0] == '\'' && final == '~':
		h.emit(DeleteColumns{N: n1(1)})
		return
	}

	switch final {
	case 'A':
		h.emit(MoveCursorUp{N: n1(1)})
	case 'B':
		h.emit(MoveCursorDown{N: n1(1)})
	case 'C':
		h.emit(MoveCursorForward{N: n1(1)})
	case 'D':
		h.emit(MoveCursorBackward{N: n1(1)})
	case 'E':
		h.emit(CursorNextLine{N: n1(1)})
	case 'F':
		h.emit(CursorPreviousLine{N: n1(1)})
	case 'G', '`':
		h.emit(MoveCursorToColumn{Col: n1(1)})
	case 'a':
		h.emit(HorizontalPositionRelative{N: n1(1)})
	case 'd':
		h.emit(MoveCursorToLine{Row: n1(1)})
	case 'e':
		h.emit(MoveCursorDown{N: n1(1)})
	case 'H', 'f':
		row, col := n1(1), params.Get(1, 0)
		if col == 0 {
			col = 1
		}
		h.emit(MoveCursorTo{Row: row, Col: col})
	case 's':
		if params.Len() == 0 {
			h.emit(SaveCursor{})
		} else {
			h.emitLeftRightMargin(params)
		}
	case 'u':
		h.emit(RestoreCursor{})
	case 'J':
		h.emitErase(params.Get(0, 0), [3]Command{ClearToEndOfScreen{}, ClearToBeginOfScreen{}, ClearScreen{}}, ClearScrollbackBuffer{})
	case 'K':
		h.emitErase(params.Get(0, 0), [3]Command{ClearToEndOfLine{}, ClearToBeginOfLine{}, ClearLine{}}, nil)
	case 'X':
		h.emit(EraseCharacters{N: n1(1)})
	case '@':
		h.emit(InsertCharacters{N: n1(1)})
	case 'P':
		h.emit(DeleteCharacters{N: n1(1)})
	case 'L':
		h.emit(InsertLines{N: n1(1)})
	case 'M':
		h.emit(DeleteLines{N: n1(1)})
	case 'S':
		h.emit(ScrollUp{N: n1(1)})
	case 'T':
		h.emit(ScrollDown{N: n1(1)})
	case 'm':
		for _, c := range decodeSGR(params) {
			h.emit(c)
		}
	case 'r':
		h.emitTopBottomMargin(params)
	case 'n':
		h.dispatchDSR(params, private)
	case 'c':
		if private == '>' {
			h.emit(SendTerminalId{})
		} else {
			h.emit(SendDeviceAttributes{})
		}
	case 'h', 'l':
		enable := final == 'h'
		mode, ok := ansiModeFromWireNumber(params.Get(0, 0))
		if ok {
			h.emit(SetMode{Mode: mode, Enable: enable})
		} else {
			h.logf("handler: unsupported ANSI mode %d", params.Get(0, 0))
		}
	default:
		h.logf("handler: unsupported CSI final %q (private=%q params=%v)", final, private, params.All())
	}
}

func (h *OutputHandler) emitErase(which int, variants [3]Command, scrollback Command) {
	switch which {
	case 0:
		h.emit(variants[0])
	case 1:
		h.emit(variants[1])
	case 2:
		h.emit(variants[2])
	case 3:
		if scrollback != nil {
			h.emit(scrollback)
		}
	default:
		h.logf("handler: erase parameter out of range: %d", which)
	}
}

func (h *OutputHandler) emitTopBottomMargin(params *Params) {
	var top, bottom *int
	if params.Len() > 0 {
		if v := params.Get(0, 0); v != 0 {
			top = &v
		}
	}
	if params.Len() > 1 {
		if v := params.Get(1, 0); v != 0 {
			bottom = &v
		}
	}
	h.emit(SetTopBottomMargin{Top: top, Bottom: bottom})
}

func (h *OutputHandler) emitLeftRightMargin(params *Params) {
	var left, right *int
	if params.Len() > 0 {
		if v := params.Get(0, 0); v != 0 {
			left = &v
		}
	}
	if params.Len() > 1 {
		if v := params.Get(1, 0); v != 0 {
			right = &v
		}
	}
	h.emit(SetLeftRightMargin{Left: left, Right: right})
}

func (h *OutputHandler) dispatchDSR(params *Params, private byte) {
	switch params.Get(0, 0) {
	case 5:
		h.emit(DeviceStatusReport{})
	case 6:
		if private == '?' {
			h.emit(ReportExtendedCursorPosition{})
		} else {
			h.emit(ReportCursorPosition{})
		}
	default:
		h.logf("handler: unsupported DSR parameter %d", params.Get(0, 0))
	}
}

var mouseModeNumbers = map[int]MouseProtocol{
	9:    MouseProtocolX10,
	1000: MouseProtocolNormal,
	1002: MouseProtocolButtonEvent,
	1003: MouseProtocolAnyEvent,
	1006: MouseProtocolSGR,
}

func (h *OutputHandler) dispatchPrivateMode(params *Params, final byte) {
	enable := final == 'h'
	for i := 0; i < params.Len(); i++ {
		n := params.Get(i, 0)
		if proto, ok := mouseModeNumbers[n]; ok {
			h.emit(SendMouseEvents{Protocol: proto, Enable: enable})
			continue
		}
		switch n {
		case 1049:
			if enable {
				h.emit(SaveCursor{})
				h.emit(SetMode{Mode: UseAlternateScreen, Enable: true})
			} else {
				h.emit(SetMode{Mode: UseAlternateScreen, Enable: false})
				h.emit(RestoreCursor{})
			}
		case 47, 1047:
			h.emit(SetMode{Mode: UseAlternateScreen, Enable: enable})
		default:
			mode, ok := decModeFromWireNumber(n)
			if !ok {
				h.logf("handler: unsupported DEC private mode %d", n)
				continue
			}
			h.emit(SetMode{Mode: mode, Enable: enable})
		}
	}
}

func decModeFromWireNumber(n int) (Mode, bool) {
	switch n {
	case 1:
		return ApplicationCursorKeys, true
	case 6:
		return CursorRestrictedToMargin, true
	case 7:
		return AutoWrap, true
	case 25:
		return ShowCursor, true
	case 69:
		return LeftRightMargin, true
	case 2004:
		return BracketedPaste, true
	}
	return 0, false
}

func ansiModeFromWireNumber(n int) (Mode, bool) {
	switch n {
	case 4:
		return InsertReplace, true
	}
	return 0, false
}

func modeFromWireNumber(n int, private bool) Mode {
	if private {
		if m, ok := decModeFromWireNumber(n); ok {
			return m
		}
		return -1
	}
	if m, ok := ansiModeFromWireNumber(n); ok {
		return m
	}
	return -1
}

// --- OSC ---

func (h *OutputHandler) oscStart() {
	h.oscBuf = h.oscBuf[:0]
}

func (h *OutputHandler) oscPut(b byte) {
	h.oscBuf = append(h.oscBuf, b)
}

func (h *OutputHandler) oscEnd(_ bool) {
	payload := string(h.oscBuf)
	h.oscBuf = h.oscBuf[:0]

	num, rest, ok := splitOSC(payload)
	if !ok {
		h.logf("handler: malformed OSC payload %q", payload)
		return
	}
	switch num {
	case 0, 2:
		h.emit(ChangeWindowTitle{Title: rest})
	case 1:
		h.emit(ChangeIconName{Name: rest})
	default:
		h.logf("handler: unsupported OSC %d, dropping", num)
	}
}

func splitOSC(payload string) (num int, rest string, ok bool) {
	i := 0
	for i < len(payload) && payload[i] >= '0' && payload[i] <= '9' {
		num = num*10 + int(payload[i]-'0')
		i++
	}
	if i == 0 || i >= len(payload) || payload[i] != ';' {
		return 0, "", false
	}
	return num, payload[i+1:], true
}

// --- DCS ---
//
// Sixel/Kitty graphics and other DCS-framed protocols are explicit
// Non-goals; passthrough bytes are logged and dropped rather than
// interpreted.

func (h *OutputHandler) hook(params *Params, intermediates []byte, private byte, final byte) {
	h.logf("handler: dropping unsupported DCS (final=%q private=%q intermediates=%q params=%v)",
		final, private, intermediates, params.All())
}

func (h *OutputHandler) dcsPut(byte) {}

func (h *OutputHandler) unhook() {}
