package vtscreen

// Command is the closed tagged variant of terminal operations produced by
// OutputHandler and applied by Screen. Every concrete type below implements
// it via an unexported marker method; Screen.apply dispatches with a type
// switch (one arm per kind) rather than overload resolution, per the
// pattern-matching re-architecture called for over the source's variant
// dispatch.
type Command interface {
	isCommand()
}

type cmd struct{}

func (cmd) isCommand() {}

// --- Character output ---

// AppendChar writes a single Unicode scalar at the cursor.
type AppendChar struct {
	cmd
	Ch rune
}

// --- C0 controls ---

type (
	Bell         struct{ cmd }
	Linefeed     struct{ cmd }
	Backspace    struct{ cmd }
	Index        struct{ cmd } // IND: move down, scroll if at bottom margin
	ReverseIndex struct{ cmd } // RI: move up, scroll if at top margin
	BackIndex    struct{ cmd } // DECBI
	ForwardIndex struct{ cmd } // DECFI
)

// --- Cursor motion ---

type (
	MoveCursorUp       struct {
		cmd
		N int
	}
	MoveCursorDown struct {
		cmd
		N int
	}
	MoveCursorForward struct {
		cmd
		N int
	}
	MoveCursorBackward struct {
		cmd
		N int
	}
	MoveCursorToColumn struct {
		cmd
		Col int
	}
	MoveCursorToLine struct {
		cmd
		Row int
	}
	MoveCursorTo struct {
		cmd
		Row, Col int
	}
	MoveCursorToBeginOfLine    struct{ cmd }
	MoveCursorToNextTab        struct{ cmd }
	CursorNextLine             struct {
		cmd
		N int
	}
	CursorPreviousLine struct {
		cmd
		N int
	}
	HorizontalPositionAbsolute struct {
		cmd
		Col int
	}
	HorizontalPositionRelative struct {
		cmd
		N int
	}
)

// --- Cursor save/restore ---

type (
	SaveCursor    struct{ cmd }
	RestoreCursor struct{ cmd }
)

// --- Erase ---

type (
	ClearToEndOfScreen    struct{ cmd }
	ClearToBeginOfScreen  struct{ cmd }
	ClearScreen           struct{ cmd }
	ClearScrollbackBuffer struct{ cmd }
	ClearToEndOfLine      struct{ cmd }
	ClearToBeginOfLine    struct{ cmd }
	ClearLine             struct{ cmd }
	EraseCharacters       struct {
		cmd
		N int
	}
)

// --- Edit ---

type (
	InsertCharacters struct {
		cmd
		N int
	}
	InsertColumns struct {
		cmd
		N int
	}
	InsertLines struct {
		cmd
		N int
	}
	DeleteCharacters struct {
		cmd
		N int
	}
	DeleteColumns struct {
		cmd
		N int
	}
	DeleteLines struct {
		cmd
		N int
	}
)

// --- Scroll ---

type (
	ScrollUp struct {
		cmd
		N int
	}
	ScrollDown struct {
		cmd
		N int
	}
)

// --- Rendition ---

// SetForegroundColor and SetBackgroundColor replace the corresponding slot in
// the current GraphicsAttributes register.
type (
	SetForegroundColor struct {
		cmd
		Color Color
	}
	SetBackgroundColor struct {
		cmd
		Color Color
	}
)

// SetGraphicsRendition carries one parsed SGR step: either ResetAll (CSI 0 m
// or a bare CSI m), or a set/clear of specific style bits. The OutputHandler
// emits one SetGraphicsRendition per style-affecting SGR parameter walked
// left to right; colour parameters instead produce
// SetForegroundColor/SetBackgroundColor.
type SetGraphicsRendition struct {
	cmd
	ResetAll bool
	Set      StyleMask
	Clear    StyleMask
}

// --- Modes ---

type (
	SetMode struct {
		cmd
		Mode   Mode
		Enable bool
	}
	RequestMode struct {
		cmd
		Mode Mode
	}
	AlternateKeypadMode struct {
		cmd
		Enable bool
	}
	DesignateCharset struct {
		cmd
		Table   CharsetTable
		Charset Charset
	}
	SingleShiftSelect struct {
		cmd
		Table CharsetTable
	}
	SendMouseEvents struct {
		cmd
		Protocol MouseProtocol
		Enable   bool
	}
)

// --- Margins ---

// SetTopBottomMargin and SetLeftRightMargin carry optional bounds (nil means
// "use the implicit default": 1 for the start, the screen edge for the end).
type (
	SetTopBottomMargin struct {
		cmd
		Top, Bottom *int
	}
	SetLeftRightMargin struct {
		cmd
		Left, Right *int
	}
)

// --- Reports ---

type (
	DeviceStatusReport          struct{ cmd }
	ReportCursorPosition        struct{ cmd }
	ReportExtendedCursorPosition struct{ cmd }
	SendDeviceAttributes        struct{ cmd }
	SendTerminalId              struct{ cmd }
)

// --- Title ---

type (
	ChangeWindowTitle struct {
		cmd
		Title string
	}
	ChangeIconName struct {
		cmd
		Name string
	}
)

// --- Reset ---

type (
	FullReset              struct{ cmd }
	SoftTerminalReset      struct{ cmd }
	ScreenAlignmentPattern struct{ cmd }
)
