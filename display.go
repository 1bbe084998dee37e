package rgui

import "context"

// DisplayOptions configures a window at creation.
type DisplayOptions struct {
	Border      bool
	Titled      bool
	Resizable   bool
	Topmost     bool
	Minimizable bool
}

// DefaultDisplayOptions returns a bordered, titled, fixed-size window that
// can be minimized and does not stay on top.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		Border:      true,
		Titled:      true,
		Resizable:   false,
		Topmost:     false,
		Minimizable: true,
	}
}

// Display is a window the engine draws into.
//
// UpdateWithBuffer presents a CPU framebuffer of width*height pixels in row
// major order, each packed as 0x00RRGGBB. Update presents whatever the
// renderer drew directly. Attribute toggles return ErrNotSupported when the
// platform cannot change them at runtime.
type Display interface {
	SetTitle(title string)
	Update()
	UpdateWithBuffer(buf []uint32, width, height int) error
	IsOpen() bool
	SetPosition(x, y int)
	SetBorder(on bool) error
	SetResizable(on bool) error
	SetTopmost(on bool) error
	SetMinimizable(on bool) error
	SetBackgroundColor(c Color)
	Size() Vec2
	IsActive() bool
}

// Renderer pumps a display's native events and paints instruction
// collections onto it.
type Renderer interface {
	// DetectDisplayEvents polls d, maps native events and appends them to
	// events.
	DetectDisplayEvents(events *Queue[Event], d Display)

	// DrawCollection paints every instruction of c in ascending ID order and
	// presents the result on d.
	DrawCollection(c *Collection, d Display) error
}

// EventMapper translates a backend's native event type into an Event. The
// second result is false for native events with no counterpart.
type EventMapper[N any] interface {
	MapEvent(native N) (Event, bool)
}

// Looper lets a Renderer replace the engine's default loop. Engine.Run hands
// control to Loop when the renderer implements it.
type Looper interface {
	Loop(ctx context.Context, e *Engine) error
}
