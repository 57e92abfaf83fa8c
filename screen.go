package vtscreen

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// DefaultRows and DefaultCols size a Screen constructed without WithSize.
	DefaultRows = 24
	DefaultCols = 80
	// maxRows and maxCols bound Resize; beyond this a resize is refused as
	// resource exhaustion rather than attempting a huge allocation.
	maxRows = 10000
	maxCols = 10000
	// DefaultScrollbackLimit bounds the primary buffer's history when no
	// WithScrollbackLimit option is given.
	DefaultScrollbackLimit = 1000
)

// Screen is the terminal core: it owns the primary and alternate Buffers,
// runs incoming bytes through a Parser/OutputHandler pipeline, applies the
// resulting Commands to whichever buffer is active, and synthesizes reply
// bytes for status reports. Screen carries no internal lock: callers driving
// Write/Resize/render concurrently from multiple goroutines must serialize
// those calls themselves, matching the single-threaded synchronous design
// this package implements.
type Screen struct {
	rows, cols      int
	scrollbackLimit int

	primary   *Buffer
	alternate *Buffer
	current   *Buffer

	parser  *Parser
	handler *OutputHandler

	reply      Reply
	logger     Logger
	hook       Hook
	modeSwitch ModeSwitchCallback

	mouseProtocols map[MouseProtocol]bool

	title    string
	iconName string

	selection Selection
}

// Option configures a Screen at construction time.
type Option func(*Screen)

// WithSize sets the screen dimensions. Values <= 0 fall back to the
// defaults (24x80).
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return func(s *Screen) {
		s.rows = rows
		s.cols = cols
	}
}

// WithReply sets the sink invoked for DSR/CPR/DA/DECRQM replies. Screenshot
// returns its bytes to the caller and does not use this sink. Nil (the
// default) discards replies.
func WithReply(r Reply) Option {
	return func(s *Screen) { s.reply = r }
}

// WithLogger sets the diagnostic sink. Defaults to NoopLogger.
func WithLogger(l Logger) Option {
	return func(s *Screen) { s.logger = l }
}

// WithHook sets the callback invoked once per Write with the Commands that
// write produced and applied, in order.
func WithHook(h Hook) Option {
	return func(s *Screen) { s.hook = h }
}

// WithModeSwitchCallback sets the callback invoked when
// ApplicationCursorKeys transitions.
func WithModeSwitchCallback(cb ModeSwitchCallback) Option {
	return func(s *Screen) { s.modeSwitch = cb }
}

// WithScrollbackLimit bounds the number of lines the primary buffer retains
// in scrollback. 0 disables scrollback; a negative value means unlimited.
func WithScrollbackLimit(n int) Option {
	return func(s *Screen) { s.scrollbackLimit = n }
}

// New constructs a Screen from the given options, defaulting to 24x80 with
// a 1000-line primary scrollback.
func New(opts ...Option) *Screen {
	s := &Screen{
		rows:            DefaultRows,
		cols:            DefaultCols,
		scrollbackLimit: DefaultScrollbackLimit,
		logger:          NoopLogger{},
		mouseProtocols:  map[MouseProtocol]bool{},
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = NoopLogger{}
	}

	s.primary = newBuffer(s.rows, s.cols, true, s.scrollbackLimit)
	s.alternate = newBuffer(s.rows, s.cols, false, 0)
	s.current = s.primary

	s.handler = NewOutputHandler(s.rows, s.logger)
	s.parser = NewParser(s.handler)

	return s
}

// Write feeds data through the parser, applies every Command it produces to
// the active buffer in order, and reports the batch to the Hook (if set)
// before discarding it. Implements io.Writer.
func (s *Screen) Write(data []byte) (int, error) {
	s.parser.ParseFragment(data)
	cmds := s.handler.Commands()
	for _, c := range cmds {
		s.apply(c)
	}
	if s.hook != nil {
		s.hook(cmds)
	}
	s.handler.Reset()
	return len(data), nil
}

// WriteString is a convenience wrapper around Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Screen) sendReply(str string) {
	if s.reply != nil {
		s.reply([]byte(str))
	}
}

// apply dispatches one Command against the active buffer (and, for the
// handful of Commands that cross buffers or talk to the host, against
// Screen state directly).
func (s *Screen) apply(c Command) {
	b := s.current
	switch v := c.(type) {

	case AppendChar:
		b.appendChar(v.Ch)

	case Bell:
		// No host-visible effect in this core; audible/visual bell is a
		// front-end concern.
	case Linefeed:
		b.linefeed()
	case Backspace:
		b.moveCursorRelative(0, -1)
	case Index:
		b.linefeed()
	case ReverseIndex:
		b.reverseIndex()
	case BackIndex:
		b.moveCursorRelative(0, -1)
	case ForwardIndex:
		b.moveCursorRelative(0, 1)

	case MoveCursorUp:
		b.moveCursorRelative(-v.N, 0)
	case MoveCursorDown:
		b.moveCursorRelative(v.N, 0)
	case MoveCursorForward:
		b.moveCursorRelative(0, v.N)
	case MoveCursorBackward:
		b.moveCursorRelative(0, -v.N)
	case MoveCursorToColumn:
		b.moveCursorTo(Coordinate{Row: b.cursorPosition().Row, Col: v.Col})
	case MoveCursorToLine:
		b.moveCursorTo(Coordinate{Row: v.Row, Col: b.cursorPosition().Col})
	case MoveCursorTo:
		b.moveCursorTo(Coordinate{Row: v.Row, Col: v.Col})
	case MoveCursorToBeginOfLine:
		b.carriageReturn()
	case MoveCursorToNextTab:
		b.advanceToNextTab()
	case CursorNextLine:
		b.moveCursorRelative(v.N, 0)
		b.carriageReturn()
	case CursorPreviousLine:
		b.moveCursorRelative(-v.N, 0)
		b.carriageReturn()
	case HorizontalPositionAbsolute:
		b.moveCursorTo(Coordinate{Row: b.cursorPosition().Row, Col: v.Col})
	case HorizontalPositionRelative:
		b.moveCursorRelative(0, v.N)

	case SaveCursor:
		b.saveCursor()
	case RestoreCursor:
		b.restoreCursor()

	case ClearToEndOfScreen:
		b.clearToEndOfScreen()
	case ClearToBeginOfScreen:
		b.clearToBeginOfScreen()
	case ClearScreen:
		b.clearScreen()
	case ClearScrollbackBuffer:
		b.clearScrollbackBuffer()
	case ClearToEndOfLine:
		b.clearToEndOfLine()
	case ClearToBeginOfLine:
		b.clearToBeginOfLine()
	case ClearLine:
		b.clearLine(b.cursor.Pos.Row)
	case EraseCharacters:
		b.eraseCharacters(v.N)

	case InsertCharacters:
		b.insertCharacters(v.N)
	case InsertColumns:
		b.insertColumns(v.N)
	case InsertLines:
		b.insertLines(v.N)
	case DeleteCharacters:
		b.deleteCharacters(v.N)
	case DeleteColumns:
		b.deleteColumns(v.N)
	case DeleteLines:
		b.deleteLines(v.N)

	case ScrollUp:
		b.scrollUpRegion(v.N, b.margin)
	case ScrollDown:
		b.scrollDownRegion(v.N, b.margin)

	case SetForegroundColor:
		b.attrs.Fg = v.Color
	case SetBackgroundColor:
		b.attrs.Bg = v.Color
	case SetGraphicsRendition:
		if v.ResetAll {
			b.attrs = defaultGraphicsAttributes()
		} else {
			b.attrs.Style = b.attrs.Style.Clear(v.Clear).Set(v.Set)
		}

	case SetMode:
		s.applyMode(v.Mode, v.Enable)
	case RequestMode:
		s.reportMode(v.Mode)
	case AlternateKeypadMode:
		b.setMode(ApplicationKeypad, v.Enable)
	case DesignateCharset:
		b.charsets[v.Table] = v.Charset
	case SingleShiftSelect:
		// Tracked for introspection only: charset-to-glyph translation is
		// out of scope, so a single shift has no effect on AppendChar.
	case SendMouseEvents:
		s.mouseProtocols[v.Protocol] = v.Enable

	case SetTopBottomMargin:
		b.setTopBottomMargin(v.Top, v.Bottom)
	case SetLeftRightMargin:
		b.setLeftRightMargin(v.Left, v.Right)

	case DeviceStatusReport:
		s.sendReply("\x1b[0n")
	case ReportCursorPosition:
		pos := b.cursorPosition()
		s.sendReply(fmt.Sprintf("\x1b[%d;%dR", pos.Row, pos.Col))
	case ReportExtendedCursorPosition:
		pos := b.cursorPosition()
		s.sendReply(fmt.Sprintf("\x1b[%d;%d;1R", pos.Row, pos.Col))
	case SendDeviceAttributes:
		s.sendReply("\x1b[?62;1;6c")
	case SendTerminalId:
		s.sendReply("\x1b[>1;10;0c")

	case ChangeWindowTitle:
		s.title = v.Title
	case ChangeIconName:
		s.iconName = v.Name

	case FullReset:
		s.primary.fullReset()
		s.alternate.fullReset()
		s.current = s.primary
		s.title = ""
		s.iconName = ""
		s.mouseProtocols = map[MouseProtocol]bool{}
	case SoftTerminalReset:
		b.softReset()
	case ScreenAlignmentPattern:
		b.screenAlignmentPattern()
	}
}

// applyMode handles SetMode, including the cross-buffer UseAlternateScreen
// toggle that Buffer.setMode cannot express on its own.
func (s *Screen) applyMode(mode Mode, enable bool) {
	if mode == UseAlternateScreen {
		s.setAlternateScreen(enable)
		return
	}

	wasApplicationCursorKeys := s.current.modes.has(ApplicationCursorKeys)
	s.current.setMode(mode, enable)

	if mode == ApplicationCursorKeys && enable != wasApplicationCursorKeys && s.modeSwitch != nil {
		s.modeSwitch(enable)
	}
}

// setAlternateScreen switches the active buffer. Entering the alternate
// screen always starts it blank, matching the convention that DECSET
// 47/1047/1049 clear the alternate screen on entry; SaveCursor/RestoreCursor
// around the 1049 variant are separate Commands applied to whichever buffer
// is current at the time, which is what gives 1049 its cursor round-trip.
func (s *Screen) setAlternateScreen(enable bool) {
	if enable {
		if s.current == s.alternate {
			return
		}
		s.alternate.clearScreen()
		s.alternate.cursor.Pos = Coordinate{Row: 1, Col: 1}
		s.alternate.wrapPending = false
		s.current = s.alternate
		return
	}
	s.current = s.primary
}

func wireNumberForMode(m Mode) (n int, private, ok bool) {
	switch m {
	case ApplicationCursorKeys:
		return 1, true, true
	case CursorRestrictedToMargin:
		return 6, true, true
	case AutoWrap:
		return 7, true, true
	case ShowCursor:
		return 25, true, true
	case LeftRightMargin:
		return 69, true, true
	case BracketedPaste:
		return 2004, true, true
	case InsertReplace:
		return 4, false, true
	}
	return 0, false, false
}

// reportMode replies to DECRQM/RQM: state 1 means set, 2 means reset, 0
// means not recognized.
func (s *Screen) reportMode(mode Mode) {
	n, private, ok := wireNumberForMode(mode)
	state := 0
	if ok {
		if s.current.modes.has(mode) {
			state = 1
		} else {
			state = 2
		}
	}
	if private {
		s.sendReply(fmt.Sprintf("\x1b[?%d;%d$y", n, state))
	} else {
		s.sendReply(fmt.Sprintf("\x1b[%d;%d$y", n, state))
	}
}

// --- resize ---

// Resize adapts both buffers to new dimensions. Values <= 0 are ignored.
// Dimensions beyond maxRows/maxCols are refused as resource exhaustion; on
// error the Screen is left exactly as it was.
func (s *Screen) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if rows > maxRows || cols > maxCols {
		return fmt.Errorf("vtscreen: resize to %dx%d exceeds the %dx%d limit", rows, cols, maxRows, maxCols)
	}
	s.rows, s.cols = rows, cols
	s.primary.resize(rows, cols)
	s.alternate.resize(rows, cols)
	s.handler.rowCount = rows
	return nil
}

// --- query accessors ---

func (s *Screen) Size() (rows, cols int) { return s.rows, s.cols }

// CursorPosition is the logical (origin-mode-aware) cursor coordinate.
func (s *Screen) CursorPosition() Coordinate { return s.current.cursorPosition() }

// RealCursorPosition is the absolute screen coordinate of the cursor.
func (s *Screen) RealCursorPosition() Coordinate { return s.current.realCursorPosition() }

func (s *Screen) CursorVisible() bool { return s.current.cursor.Visible }

func (s *Screen) IsPrimaryScreen() bool { return s.current == s.primary }

func (s *Screen) IsAlternateScreen() bool { return s.current == s.alternate }

// IsModeEnabled reports whether mode is enabled on the active buffer.
// UseAlternateScreen is derived from buffer identity rather than stored
// directly in the modes set.
func (s *Screen) IsModeEnabled(mode Mode) bool {
	if mode == UseAlternateScreen {
		return s.current == s.alternate
	}
	return s.current.modes.has(mode)
}

func (s *Screen) Margin() Margin { return s.current.margin }

// ScrollbackLines returns the number of lines retained in the primary
// buffer's scrollback. Scrollback exists only on the primary buffer.
func (s *Screen) ScrollbackLines() int { return s.primary.scrollbackLen() }

func (s *Screen) Title() string { return s.title }

func (s *Screen) IconName() string { return s.iconName }

// IsCursorInsideMargins reports whether the cursor's real position falls
// within the active buffer's scroll margins.
func (s *Screen) IsCursorInsideMargins() bool { return s.current.isCursorInsideMargins() }

// VerticalMarginsEnabled reports whether the active buffer's top/bottom
// margin is narrower than the full screen height.
func (s *Screen) VerticalMarginsEnabled() bool { return s.current.verticalMarginsEnabled() }

// HorizontalMarginsEnabled reports whether the active buffer's left/right
// margin is narrower than the full screen width.
func (s *Screen) HorizontalMarginsEnabled() bool { return s.current.horizontalMarginsEnabled() }

// DirtyCells returns the 1-based coordinates of every cell the active buffer
// has touched since the last ClearDirty, for incremental redraw.
func (s *Screen) DirtyCells() []Coordinate { return s.current.dirtyCells() }

// ClearDirty resets the active buffer's dirty tracking.
func (s *Screen) ClearDirty() { s.current.clearDirty() }

// --- rendering ---

// Render visits every visible cell of the active buffer in row-major order.
func (s *Screen) Render(renderer func(row, col int, cell *Cell)) {
	b := s.current
	for r := 1; r <= b.rows; r++ {
		for c := 1; c <= b.cols; c++ {
			renderer(r, c, b.cellAt(r, c))
		}
	}
}

// RenderText flattens the active buffer to a string, one LF-terminated line
// per row.
func (s *Screen) RenderText() string {
	var sb strings.Builder
	for r := 1; r <= s.current.rows; r++ {
		sb.WriteString(s.current.lineContent(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderTextLine flattens a single row of the active buffer to a string.
func (s *Screen) RenderTextLine(row int) string {
	return s.current.lineContent(row)
}

// String returns the same text as RenderText, satisfying fmt.Stringer.
func (s *Screen) String() string { return s.RenderText() }

// LineContent is an alias for RenderTextLine, matching the naming other
// terminal emulators in this family use.
func (s *Screen) LineContent(row int) string { return s.RenderTextLine(row) }

// RenderHistoryTextLine returns the n'th (1-based, oldest first) scrollback
// line as text. Only the primary buffer retains scrollback.
func (s *Screen) RenderHistoryTextLine(n int) string {
	return cellsToString(s.primary.scrollbackLine(n))
}

// Screenshot emits a VT byte stream that, written to a fresh Screen of
// identical size, reproduces the active buffer's current visible content:
// an initial clear and cursor hide, per-cell rendition changes and
// characters in row-major order, and a final cursor move (plus a cursor
// show, if the cursor is currently visible).
func (s *Screen) Screenshot() []byte {
	b := s.current
	var buf bytes.Buffer
	buf.WriteString("\x1b[2J\x1b[?25l\x1b[0m")

	last := GraphicsAttributes{Fg: ColorDefault{}, Bg: ColorDefault{}}
	for row := 1; row <= b.rows; row++ {
		fmt.Fprintf(&buf, "\x1b[%d;1H", row)
		for col := 1; col <= b.cols; col++ {
			cell := b.cellAt(row, col)
			if cell.WideSpacer {
				continue
			}
			attrs := GraphicsAttributes{Fg: cell.Fg, Bg: cell.Bg, Style: cell.Style}
			if attrs != last {
				buf.WriteString(sgrSequence(attrs))
				last = attrs
			}
			ch := cell.Char
			if ch == 0 {
				ch = ' '
			}
			buf.WriteRune(ch)
		}
	}

	pos := b.realCursorPosition()
	fmt.Fprintf(&buf, "\x1b[%d;%dH", pos.Row, pos.Col)
	if b.cursor.Visible {
		buf.WriteString("\x1b[?25h")
	}
	return buf.Bytes()
}

func sgrSequence(a GraphicsAttributes) string {
	codes := []string{"0", sgrColorCode(true, a.Fg), sgrColorCode(false, a.Bg)}
	codes = append(codes, styleSGRCodes(a.Style)...)
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func sgrColorCode(fg bool, c Color) string {
	switch v := c.(type) {
	case ColorIndexed:
		if fg {
			return fmt.Sprintf("38;5;%d", v.Index)
		}
		return fmt.Sprintf("48;5;%d", v.Index)
	case ColorBright:
		base := 90
		if !fg {
			base = 100
		}
		return fmt.Sprintf("%d", base+int(v.Index))
	case ColorRGB:
		if fg {
			return fmt.Sprintf("38;2;%d;%d;%d", v.R, v.G, v.B)
		}
		return fmt.Sprintf("48;2;%d;%d;%d", v.R, v.G, v.B)
	default:
		if fg {
			return "39"
		}
		return "49"
	}
}

func styleSGRCodes(m StyleMask) []string {
	var out []string
	for _, pair := range []struct {
		flag StyleMask
		code string
	}{
		{StyleBold, "1"},
		{StyleFaint, "2"},
		{StyleItalic, "3"},
		{StyleUnderline, "4"},
		{StyleBlinking, "5"},
		{StyleInverse, "7"},
		{StyleHidden, "8"},
		{StyleCrossedOut, "9"},
		{StyleDoublyUnderlined, "21"},
	} {
		if m.Has(pair.flag) {
			out = append(out, pair.code)
		}
	}
	return out
}
