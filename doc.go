// Package vtscreen implements a headless VT/xterm-compatible terminal core:
// a byte-stream parser, the vocabulary of Commands it produces, and the
// Screen/Buffer grid model those Commands are applied to.
//
// # Quick Start
//
//	s := vtscreen.New(vtscreen.WithSize(24, 80))
//	s.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(s.RenderText())
//
// # Architecture
//
// The package is organized around three layers:
//
//   - [Parser]: a state machine that turns a byte stream into calls against
//     a sink (print, execute, CSI/DCS/OSC dispatch, UTF-8 decoding ahead of
//     it)
//   - [OutputHandler]: the sink implementation, which turns parser events
//     into a closed vocabulary of [Command] values with VT defaults filled in
//   - [Screen]: applies Commands to whichever [Buffer] is current (primary
//     or alternate), owns cursor/margin/mode state, and synthesizes reply
//     bytes for status reports
//
// Most callers only need Screen; Parser and OutputHandler are exported so a
// caller can consume Commands directly without a Buffer attached.
//
// # Screen
//
// Screen implements [io.Writer]. It owns both buffers and the parser
// pipeline:
//
//	s := vtscreen.New(
//	    vtscreen.WithSize(24, 80),
//	    vtscreen.WithReply(func(b []byte) { pty.Write(b) }),
//	    vtscreen.WithScrollbackLimit(5000),
//	)
//
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = s
//	cmd.Run()
//
//	fmt.Println(s.RenderText())
//
// # Dual Buffers
//
// Screen maintains two Buffers: primary (with scrollback) and alternate (no
// scrollback, cleared on entry). Full-screen applications switch via CSI
// ?1049h/l, ?47h/l, or ?1047h/l:
//
//	if s.IsAlternateScreen() {
//	    // a full-screen app (vim, less, htop) is in control
//	}
//
// # Cells and Attributes
//
// Render visits every cell of the active buffer:
//
//	s.Render(func(row, col int, cell *vtscreen.Cell) {
//	    if cell.Style.Has(vtscreen.StyleBold) {
//	        // ...
//	    }
//	})
//
// Cell colours are a closed variant ([ColorDefault], [ColorIndexed],
// [ColorBright], [ColorRGB]); [ResolveColor] converts any of them to a
// concrete [image/color.RGBA] using [Palette256].
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer are retained up to
// WithScrollbackLimit:
//
//	for i := 1; i <= s.ScrollbackLines(); i++ {
//	    line := s.RenderHistoryTextLine(i)
//	}
//
// # Cursor, Margins and Modes
//
// CursorPosition is origin-mode-aware; RealCursorPosition always reports the
// absolute screen coordinate:
//
//	pos := s.CursorPosition()
//	if s.IsModeEnabled(vtscreen.AutoWrap) { ... }
//
// # Screenshot
//
// Screenshot renders the active buffer's visible content back out as a VT
// byte stream: writing it to a freshly constructed Screen of the same size
// reproduces the original screen exactly.
//
//	replay := vtscreen.New(vtscreen.WithSize(s.Size()))
//	replay.Write(s.Screenshot())
//
// # Concurrency
//
// Screen holds no internal lock. Unlike some terminal emulator
// implementations that guard every method with a mutex, this core assumes a
// single goroutine drives Write/Resize/render calls; a caller sharing a
// Screen across goroutines must serialize access itself.
//
// # Supported Sequences
//
// The parser and handler cover C0 controls (8-bit C1 codes are not
// recognized, apart from ST inside control strings), CSI cursor movement (CUU,
// CUD, CUF, CUB, CUP, HVP, CNL, CPL, HPA, HPR), DECSC/DECRC, erase (ED, EL,
// ECH), insert/delete (ICH, DCH, IL, DL, DECIC, DECDC), scrolling (SU, SD,
// DECSTBM, DECSLRM), SGR with 16/256/24-bit colour, DEC private modes
// (DECSET/DECRST) including the alternate screen variants, DSR/CPR/DA1/DA2,
// DECRQM, OSC 0/1/2 (window title and icon name), and DECALN.
package vtscreen
