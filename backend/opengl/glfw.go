package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/rgui"
)

type glfwEventKind int

const (
	glfwKey glfwEventKind = iota
	glfwChar
	glfwMouseButton
	glfwScroll
	glfwCursorPos
	glfwCursorEnter
	glfwSize
)

// glfwEvent is a callback invocation recorded for later mapping.
type glfwEvent struct {
	kind    glfwEventKind
	key     glfw.Key
	button  glfw.MouseButton
	action  glfw.Action
	mods    glfw.ModifierKey
	char    rune
	x, y    float64
	entered bool
	w, h    int
}

// Window is a GLFW window with an OpenGL 4.1 core context. It implements
// rgui.Display; callbacks are buffered until the renderer drains them.
type Window struct {
	win     *glfw.Window
	bg      rgui.Color
	pending []glfwEvent

	// Framebuffer blit target for UpdateWithBuffer.
	blitTex uint32
	blitFBO uint32
	pixels  []byte
}

var _ rgui.Display = (*Window)(nil)
var _ rgui.EventMapper[glfwEvent] = (*Window)(nil)

// NewWindow initializes GLFW and OpenGL and opens a window. It must be
// called from the main thread, which must be locked with
// runtime.LockOSThread.
func NewWindow(title string, width, height int, opts rgui.DisplayOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfwBool(opts.Border && opts.Titled))
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.Floating, glfwBool(opts.Topmost))

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{win: win, bg: rgui.ColorBlack}
	win.SetKeyCallback(w.keyCallback)
	win.SetCharCallback(w.charCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetCursorEnterCallback(w.cursorEnterCallback)
	win.SetSizeCallback(w.sizeCallback)
	return w, nil
}

func glfwBool(on bool) int {
	if on {
		return glfw.True
	}
	return glfw.False
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.blitFBO != 0 {
		gl.DeleteFramebuffers(1, &w.blitFBO)
	}
	if w.blitTex != 0 {
		gl.DeleteTextures(1, &w.blitTex)
	}
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }
func (w *Window) Update()               { w.win.SwapBuffers() }
func (w *Window) IsOpen() bool          { return !w.win.ShouldClose() }
func (w *Window) SetPosition(x, y int)  { w.win.SetPos(x, y) }
func (w *Window) IsActive() bool        { return w.win.GetAttrib(glfw.Focused) == glfw.True }

func (w *Window) SetBorder(on bool) error {
	w.win.SetAttrib(glfw.Decorated, glfwBool(on))
	return nil
}

func (w *Window) SetResizable(on bool) error {
	w.win.SetAttrib(glfw.Resizable, glfwBool(on))
	return nil
}

func (w *Window) SetTopmost(on bool) error {
	w.win.SetAttrib(glfw.Floating, glfwBool(on))
	return nil
}

// SetMinimizable is not supported: GLFW has no attribute for it.
func (w *Window) SetMinimizable(bool) error {
	return fmt.Errorf("glfw minimizable: %w", rgui.ErrNotSupported)
}

// SetBackgroundColor sets the color frames are cleared to when the
// collection has no Clear instruction.
func (w *Window) SetBackgroundColor(c rgui.Color) { w.bg = c }

func (w *Window) Size() rgui.Vec2 {
	width, height := w.win.GetSize()
	return rgui.V(float64(width), float64(height))
}

// UpdateWithBuffer blits a CPU framebuffer of 0x00RRGGBB pixels to the
// window and swaps buffers.
func (w *Window) UpdateWithBuffer(buf []uint32, width, height int) error {
	if len(buf) < width*height {
		return fmt.Errorf("buffer holds %d pixels, want %dx%d", len(buf), width, height)
	}
	if w.win.ShouldClose() {
		return rgui.ErrDisplayClosed
	}

	if w.blitTex == 0 {
		gl.GenTextures(1, &w.blitTex)
		gl.GenFramebuffers(1, &w.blitFBO)
	}
	if cap(w.pixels) < width*height*4 {
		w.pixels = make([]byte, width*height*4)
	}
	px := w.pixels[:width*height*4]
	for i, p := range buf[:width*height] {
		px[i*4+0] = byte(p >> 16)
		px[i*4+1] = byte(p >> 8)
		px[i*4+2] = byte(p)
		px[i*4+3] = 0xFF
	}

	gl.BindTexture(gl.TEXTURE_2D, w.blitTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.blitFBO)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.blitTex, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)

	fbw, fbh := w.win.GetFramebufferSize()
	// Rows are stored top down; GL's origin is bottom left.
	gl.BlitFramebuffer(0, 0, int32(width), int32(height), 0, int32(fbh), int32(fbw), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	w.win.SwapBuffers()
	return nil
}

// Clipboard returns a clipboard provider backed by this window.
func (w *Window) Clipboard() rgui.ClipboardProvider {
	return glfwClipboard{w.win}
}

type glfwClipboard struct {
	win *glfw.Window
}

func (c glfwClipboard) GetText() string     { return c.win.GetClipboardString() }
func (c glfwClipboard) SetText(text string) { c.win.SetClipboardString(text) }

// poll processes pending window events and returns them mapped.
func (w *Window) poll(q *rgui.Queue[rgui.Event]) {
	glfw.PollEvents()
	for _, n := range w.pending {
		if ev, ok := w.MapEvent(n); ok {
			q.Enqueue(ev)
		}
	}
	w.pending = w.pending[:0]
}

// MapEvent translates a recorded GLFW callback into an rgui event.
func (w *Window) MapEvent(n glfwEvent) (rgui.Event, bool) {
	switch n.kind {
	case glfwKey:
		key := glfwKeyToKeyCode(n.key)
		if key == rgui.KeyNone {
			return nil, false
		}
		mods := mapMods(n.mods)
		switch n.action {
		case glfw.Press, glfw.Repeat:
			return rgui.KeyPressed{Key: key, Modifiers: mods}, true
		case glfw.Release:
			return rgui.KeyReleased{Key: key, Modifiers: mods}, true
		}
	case glfwChar:
		return rgui.CharTyped{Rune: n.char}, true
	case glfwMouseButton:
		b := glfwMouseButtonToButton(n.button)
		switch n.action {
		case glfw.Press:
			return rgui.ButtonPressed{Button: b}, true
		case glfw.Release:
			return rgui.ButtonReleased{Button: b}, true
		}
	case glfwScroll:
		// GLFW reports notches; one notch scrolls three 10px lines.
		return rgui.WheelScrolled{Delta: rgui.ScrollDelta{X: n.x * 30, Y: n.y * 30}}, true
	case glfwCursorPos:
		return rgui.CursorMoved{X: n.x, Y: n.y}, true
	case glfwCursorEnter:
		if n.entered {
			return rgui.CursorEntered{}, true
		}
		return rgui.CursorLeft{}, true
	case glfwSize:
		return rgui.Resized{Width: n.w, Height: n.h}, true
	}
	return nil, false
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	w.pending = append(w.pending, glfwEvent{kind: glfwKey, key: key, action: action, mods: mods})
}

func (w *Window) charCallback(_ *glfw.Window, char rune) {
	w.pending = append(w.pending, glfwEvent{kind: glfwChar, char: char})
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	w.pending = append(w.pending, glfwEvent{kind: glfwMouseButton, button: button, action: action, mods: mods})
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.pending = append(w.pending, glfwEvent{kind: glfwScroll, x: xoff, y: yoff})
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.pending = append(w.pending, glfwEvent{kind: glfwCursorPos, x: xpos, y: ypos})
}

func (w *Window) cursorEnterCallback(_ *glfw.Window, entered bool) {
	w.pending = append(w.pending, glfwEvent{kind: glfwCursorEnter, entered: entered})
}

func (w *Window) sizeCallback(_ *glfw.Window, width, height int) {
	w.pending = append(w.pending, glfwEvent{kind: glfwSize, w: width, h: height})
}

func mapMods(m glfw.ModifierKey) rgui.ModifiersState {
	return rgui.ModifiersState{
		Shift:   m&glfw.ModShift != 0,
		Control: m&glfw.ModControl != 0,
		Alt:     m&glfw.ModAlt != 0,
		Logo:    m&glfw.ModSuper != 0,
	}
}

// glfwKeyToKeyCode maps GLFW keys to rgui key codes.
func glfwKeyToKeyCode(key glfw.Key) rgui.KeyCode {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return rgui.KeyA + rgui.KeyCode(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return rgui.Key0 + rgui.KeyCode(key-glfw.Key0)
	case key >= glfw.KeyF1 && key <= glfw.KeyF24:
		return rgui.KeyF1 + rgui.KeyCode(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return rgui.KeyNumpad0 + rgui.KeyCode(key-glfw.KeyKP0)
	}
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return rgui.KeyNone
}

var glfwKeys = map[glfw.Key]rgui.KeyCode{
	glfw.KeyEscape:       rgui.KeyEscape,
	glfw.KeyPrintScreen:  rgui.KeyPrintScreen,
	glfw.KeyScrollLock:   rgui.KeyScrollLock,
	glfw.KeyPause:        rgui.KeyPause,
	glfw.KeyInsert:       rgui.KeyInsert,
	glfw.KeyHome:         rgui.KeyHome,
	glfw.KeyDelete:       rgui.KeyDelete,
	glfw.KeyEnd:          rgui.KeyEnd,
	glfw.KeyPageDown:     rgui.KeyPageDown,
	glfw.KeyPageUp:       rgui.KeyPageUp,
	glfw.KeyLeft:         rgui.KeyLeft,
	glfw.KeyUp:           rgui.KeyUp,
	glfw.KeyRight:        rgui.KeyRight,
	glfw.KeyDown:         rgui.KeyDown,
	glfw.KeyBackspace:    rgui.KeyBackspace,
	glfw.KeyEnter:        rgui.KeyEnter,
	glfw.KeySpace:        rgui.KeySpace,
	glfw.KeyTab:          rgui.KeyTab,
	glfw.KeyCapsLock:     rgui.KeyCapsLock,
	glfw.KeyNumLock:      rgui.KeyNumLock,
	glfw.KeyKPAdd:        rgui.KeyNumpadAdd,
	glfw.KeyKPSubtract:   rgui.KeyNumpadSubtract,
	glfw.KeyKPMultiply:   rgui.KeyNumpadMultiply,
	glfw.KeyKPDivide:     rgui.KeyNumpadDivide,
	glfw.KeyKPDecimal:    rgui.KeyNumpadDecimal,
	glfw.KeyKPEnter:      rgui.KeyNumpadEnter,
	glfw.KeyKPEqual:      rgui.KeyNumpadEquals,
	glfw.KeyApostrophe:   rgui.KeyApostrophe,
	glfw.KeyBackslash:    rgui.KeyBackslash,
	glfw.KeyComma:        rgui.KeyComma,
	glfw.KeyEqual:        rgui.KeyEquals,
	glfw.KeyGraveAccent:  rgui.KeyGrave,
	glfw.KeyLeftBracket:  rgui.KeyLBracket,
	glfw.KeyRightBracket: rgui.KeyRBracket,
	glfw.KeyMinus:        rgui.KeyMinus,
	glfw.KeyPeriod:       rgui.KeyPeriod,
	glfw.KeySemicolon:    rgui.KeySemicolon,
	glfw.KeySlash:        rgui.KeySlash,
	glfw.KeyLeftAlt:      rgui.KeyLAlt,
	glfw.KeyRightAlt:     rgui.KeyRAlt,
	glfw.KeyLeftControl:  rgui.KeyLControl,
	glfw.KeyRightControl: rgui.KeyRControl,
	glfw.KeyLeftShift:    rgui.KeyLShift,
	glfw.KeyRightShift:   rgui.KeyRShift,
	glfw.KeyLeftSuper:    rgui.KeyLWin,
	glfw.KeyRightSuper:   rgui.KeyRWin,
	glfw.KeyMenu:         rgui.KeyMenu,
}

// glfwMouseButtonToButton maps GLFW mouse buttons to rgui buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) rgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return rgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return rgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return rgui.MouseButtonMiddle
	default:
		return rgui.MouseOther(uint8(button - glfw.MouseButtonMiddle - 1))
	}
}
