package vtscreen

import "testing"

func runHandler(t *testing.T, input string) []Command {
	t.Helper()
	h := NewOutputHandler(24, nil)
	p := NewParser(h)
	p.ParseFragment([]byte(input))
	return h.Commands()
}

func TestHandlerEmitsAppendChar(t *testing.T) {
	cmds := runHandler(t, "ab")
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	for i, want := range []rune{'a', 'b'} {
		c, ok := cmds[i].(AppendChar)
		if !ok || c.Ch != want {
			t.Errorf("command %d: expected AppendChar{%q}, got %#v", i, want, cmds[i])
		}
	}
}

func TestHandlerEmitsCursorMotion(t *testing.T) {
	cmds := runHandler(t, "\x1b[5A")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	c, ok := cmds[0].(MoveCursorUp)
	if !ok || c.N != 5 {
		t.Errorf("expected MoveCursorUp{N:5}, got %#v", cmds[0])
	}
}

func TestHandlerDefaultsMissingParamToOne(t *testing.T) {
	cmds := runHandler(t, "\x1b[A")
	c, ok := cmds[0].(MoveCursorUp)
	if !ok || c.N != 1 {
		t.Errorf("expected MoveCursorUp{N:1} as the VT default, got %#v", cmds[0])
	}
}

func TestHandlerSGRResetAndColor(t *testing.T) {
	cmds := runHandler(t, "\x1b[0;31;1m")
	if len(cmds) != 3 {
		t.Fatalf("expected 3 SGR commands, got %d: %#v", len(cmds), cmds)
	}
	if _, ok := cmds[0].(SetGraphicsRendition); !ok || !cmds[0].(SetGraphicsRendition).ResetAll {
		t.Errorf("expected a reset-all SetGraphicsRendition first, got %#v", cmds[0])
	}
	fg, ok := cmds[1].(SetForegroundColor)
	if !ok || fg.Color != (ColorIndexed{Index: 1}) {
		t.Errorf("expected red foreground (index 1), got %#v", cmds[1])
	}
	bold, ok := cmds[2].(SetGraphicsRendition)
	if !ok || bold.Set != StyleBold {
		t.Errorf("expected bold SetGraphicsRendition, got %#v", cmds[2])
	}
}

func TestHandlerSGRTruecolor(t *testing.T) {
	cmds := runHandler(t, "\x1b[38;2;10;20;30m")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	c, ok := cmds[0].(SetForegroundColor)
	if !ok || c.Color != (ColorRGB{R: 10, G: 20, B: 30}) {
		t.Errorf("expected truecolor foreground, got %#v", cmds[0])
	}
}

func TestHandlerSGRTruecolorSubParamForm(t *testing.T) {
	cmds := runHandler(t, "\x1b[38:2:10:20:30m")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	c, ok := cmds[0].(SetForegroundColor)
	if !ok || c.Color != (ColorRGB{R: 10, G: 20, B: 30}) {
		t.Errorf("expected truecolor foreground via sub-parameter form, got %#v", cmds[0])
	}
}

func TestHandlerDECSETAlternateScreen1049(t *testing.T) {
	cmds := runHandler(t, "\x1b[?1049h")
	if len(cmds) != 2 {
		t.Fatalf("expected SaveCursor + SetMode, got %d: %#v", len(cmds), cmds)
	}
	if _, ok := cmds[0].(SaveCursor); !ok {
		t.Errorf("expected SaveCursor first, got %#v", cmds[0])
	}
	m, ok := cmds[1].(SetMode)
	if !ok || m.Mode != UseAlternateScreen || !m.Enable {
		t.Errorf("expected SetMode{UseAlternateScreen,true}, got %#v", cmds[1])
	}
}

func TestHandlerDECSETAlternateScreen1049Exit(t *testing.T) {
	cmds := runHandler(t, "\x1b[?1049l")
	if len(cmds) != 2 {
		t.Fatalf("expected SetMode + RestoreCursor, got %d: %#v", len(cmds), cmds)
	}
	m, ok := cmds[0].(SetMode)
	if !ok || m.Mode != UseAlternateScreen || m.Enable {
		t.Errorf("expected SetMode{UseAlternateScreen,false} first, got %#v", cmds[0])
	}
	if _, ok := cmds[1].(RestoreCursor); !ok {
		t.Errorf("expected RestoreCursor last, got %#v", cmds[1])
	}
}

func TestHandlerOSCWindowTitle(t *testing.T) {
	cmds := runHandler(t, "\x1b]0;hello\x07")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	c, ok := cmds[0].(ChangeWindowTitle)
	if !ok || c.Title != "hello" {
		t.Errorf("expected ChangeWindowTitle{hello}, got %#v", cmds[0])
	}
}

func TestHandlerDSRCursorPositionReport(t *testing.T) {
	cmds := runHandler(t, "\x1b[6n")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	if _, ok := cmds[0].(ReportCursorPosition); !ok {
		t.Errorf("expected ReportCursorPosition, got %#v", cmds[0])
	}
}

func TestHandlerRequestModeRoundTrip(t *testing.T) {
	cmds := runHandler(t, "\x1b[?25$p")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	c, ok := cmds[0].(RequestMode)
	if !ok || c.Mode != ShowCursor {
		t.Errorf("expected RequestMode{ShowCursor}, got %#v", cmds[0])
	}
}
