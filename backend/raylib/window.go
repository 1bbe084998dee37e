// Package raylib implements rgui.Display and rgui.Renderer on top of
// raylib. Every call must happen on the thread that opened the window.
package raylib

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/rgui"
)

// Window is a raylib window.
type Window struct {
	bg     rgui.Color
	closed bool

	// State carried between polls to derive edge events.
	cursor   rl.Vector2
	onScreen bool
	held     map[int32]struct{}

	// Streaming texture for UpdateWithBuffer.
	frame       rl.Texture2D
	frameW      int
	frameH      int
	framePixels []color.RGBA
}

var _ rgui.Display = (*Window)(nil)
var _ rgui.EventMapper[rlEvent] = (*Window)(nil)

// NewWindow opens a window. opts that raylib only reads at creation are
// passed as config flags.
func NewWindow(title string, width, height int, opts rgui.DisplayOptions) (*Window, error) {
	var flags uint32
	if opts.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if !opts.Border || !opts.Titled {
		flags |= rl.FlagWindowUndecorated
	}
	if opts.Topmost {
		flags |= rl.FlagWindowTopmost
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("raylib: window %q not ready", title)
	}
	rl.SetExitKey(0)

	return &Window{
		bg:   rgui.ColorBlack,
		held: make(map[int32]struct{}),
	}, nil
}

// Destroy closes the window.
func (w *Window) Destroy() {
	if w.frame.ID != 0 {
		rl.UnloadTexture(w.frame)
	}
	rl.CloseWindow()
	w.closed = true
}

func (w *Window) SetTitle(title string) { rl.SetWindowTitle(title) }

// Update ends the frame the renderer began, which swaps buffers and polls
// input.
func (w *Window) Update() { rl.EndDrawing() }

// UpdateWithBuffer streams a 0x00RRGGBB framebuffer into a texture and
// presents it.
func (w *Window) UpdateWithBuffer(buf []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(buf) < width*height {
		return fmt.Errorf("buffer of %d pixels for %dx%d frame", len(buf), width, height)
	}
	if !w.IsOpen() {
		return rgui.ErrDisplayClosed
	}
	if w.frame.ID == 0 || w.frameW != width || w.frameH != height {
		if w.frame.ID != 0 {
			rl.UnloadTexture(w.frame)
		}
		img := rl.GenImageColor(width, height, rl.Black)
		w.frame = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		w.frameW, w.frameH = width, height
		w.framePixels = make([]color.RGBA, width*height)
	}
	for i, px := range buf[:width*height] {
		w.framePixels[i] = color.RGBA{R: uint8(px >> 16), G: uint8(px >> 8), B: uint8(px), A: 0xff}
	}
	rl.UpdateTexture(w.frame, w.framePixels)

	rl.BeginDrawing()
	rl.DrawTexture(w.frame, 0, 0, rl.White)
	rl.EndDrawing()
	return nil
}

func (w *Window) IsOpen() bool {
	return !w.closed && !rl.WindowShouldClose()
}

func (w *Window) SetPosition(x, y int) { rl.SetWindowPosition(x, y) }

func (w *Window) SetBorder(on bool) error {
	setState(rl.FlagWindowUndecorated, !on)
	return nil
}

func (w *Window) SetResizable(on bool) error {
	setState(rl.FlagWindowResizable, on)
	return nil
}

func (w *Window) SetTopmost(on bool) error {
	setState(rl.FlagWindowTopmost, on)
	return nil
}

// SetMinimizable is not supported: raylib has no such window attribute.
func (w *Window) SetMinimizable(bool) error {
	return fmt.Errorf("raylib: minimizable: %w", rgui.ErrNotSupported)
}

func (w *Window) SetBackgroundColor(c rgui.Color) { w.bg = c }

func (w *Window) Size() rgui.Vec2 {
	return rgui.V(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}

func (w *Window) IsActive() bool { return rl.IsWindowFocused() }

// Clipboard returns a provider backed by the system clipboard.
func (w *Window) Clipboard() rgui.ClipboardProvider { return clipboard{} }

type clipboard struct{}

func (clipboard) GetText() string     { return rl.GetClipboardText() }
func (clipboard) SetText(text string) { rl.SetClipboardText(text) }

func setState(flag uint32, on bool) {
	if on {
		rl.SetWindowState(flag)
	} else {
		rl.ClearWindowState(flag)
	}
}
