package vtscreen

// Mode is the enum of terminal modes toggled by SetMode/RequestMode. It
// covers both ANSI modes (CSI Pn h/l) and DEC private modes (CSI ? Pn h/l);
// the OutputHandler is responsible for mapping wire numbers onto these
// values.
type Mode int

const (
	// ShowCursor (DECTCEM, ?25) toggles Cursor.Visible.
	ShowCursor Mode = iota
	// AutoWrap (DECAWM, ?7) toggles Buffer.autoWrap.
	AutoWrap
	// CursorRestrictedToMargin (DECOM, ?6) is origin mode: cursor motion and
	// reports become relative to the margin rectangle.
	CursorRestrictedToMargin
	// LeftRightMargin (DECLRMM, ?69) enables DECSLRM; disabling it clears the
	// horizontal margin to full width.
	LeftRightMargin
	// UseAlternateScreen covers DECSET 47/1047/1049: switches the active
	// buffer. Its enabled state is derived from buffer identity, never
	// stored directly in the enabled-modes set (see Screen.IsModeEnabled).
	UseAlternateScreen
	// SaveRestoreCursorOnAlternateScreen marks the 1049 variant, which
	// additionally saves/restores the cursor across the switch. The
	// save/restore itself is done directly by OutputHandler's SaveCursor/
	// RestoreCursor composition (handler.go), so this mode value is never
	// read back; kept as a named distinction from plain 47/1047 rather than
	// folded into UseAlternateScreen.
	SaveRestoreCursorOnAlternateScreen
	// ApplicationCursorKeys (DECCKM, ?1) is reported to the host via the
	// Screen's ModeSwitchCallback.
	ApplicationCursorKeys
	// ApplicationKeypad (DECPAM/DECPNM) is the AlternateKeypadMode toggle.
	ApplicationKeypad
	// InsertReplace (IRM, 4) toggles insert vs. replace for AppendChar.
	InsertReplace
	// BracketedPaste (?2004) is tracked for completeness; payload framing is
	// out of scope for this core.
	BracketedPaste
)

// MouseProtocol distinguishes SendMouseEvents variants.
type MouseProtocol int

const (
	MouseProtocolX10 MouseProtocol = iota
	MouseProtocolNormal
	MouseProtocolButtonEvent
	MouseProtocolAnyEvent
	MouseProtocolSGR
)

// modeSet is a small set of enabled Modes. A plain map keeps SetMode/
// isModeEnabled O(1) without pulling in a generic set package for what is,
// at most, a handful of live entries.
type modeSet map[Mode]bool

func newModeSet() modeSet {
	m := modeSet{}
	m[ShowCursor] = true
	m[AutoWrap] = true
	return m
}

func (m modeSet) has(mode Mode) bool { return m[mode] }

func (m modeSet) set(mode Mode, enable bool) {
	if enable {
		m[mode] = true
	} else {
		delete(m, mode)
	}
}
