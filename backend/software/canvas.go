package software

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"github.com/go-theft-auto/rgui"
)

// Canvas is an in-memory rgui.Display. Frames presented through
// UpdateWithBuffer are kept as an image, and events pushed from any
// goroutine are delivered on the next DetectDisplayEvents.
type Canvas struct {
	mu sync.Mutex

	title    string
	width    int
	height   int
	position image.Point
	open     bool
	active   bool
	opts     rgui.DisplayOptions
	bg       rgui.Color

	frame   *image.RGBA
	frames  int
	pending []rgui.Event
}

var _ rgui.Display = (*Canvas)(nil)

// NewCanvas creates an open canvas of width x height pixels.
func NewCanvas(width, height int, opts rgui.DisplayOptions) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		open:   true,
		active: true,
		opts:   opts,
		bg:     rgui.ColorBlack,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Push queues an input event.
func (c *Canvas) Push(events ...rgui.Event) {
	c.mu.Lock()
	c.pending = append(c.pending, events...)
	c.mu.Unlock()
}

// Resize changes the canvas size and queues a Resized event.
func (c *Canvas) Resize(width, height int) {
	c.mu.Lock()
	c.width, c.height = width, height
	c.pending = append(c.pending, rgui.Resized{Width: width, Height: height})
	c.mu.Unlock()
}

// Close marks the canvas closed, which ends Engine.Run.
func (c *Canvas) Close() {
	c.mu.Lock()
	c.open = false
	c.mu.Unlock()
}

// PollEvents moves the pending events into q.
func (c *Canvas) PollEvents(q *rgui.Queue[rgui.Event]) {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, ev := range pending {
		q.Enqueue(ev)
	}
}

func (c *Canvas) SetTitle(title string) {
	c.mu.Lock()
	c.title = title
	c.mu.Unlock()
}

func (c *Canvas) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Update counts a frame presented without a buffer.
func (c *Canvas) Update() {
	c.mu.Lock()
	c.frames++
	c.mu.Unlock()
}

// UpdateWithBuffer stores buf, packed as 0x00RRGGBB, as the current frame.
func (c *Canvas) UpdateWithBuffer(buf []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(buf) < width*height {
		return fmt.Errorf("buffer of %d pixels for %dx%d frame", len(buf), width, height)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return rgui.ErrDisplayClosed
	}
	if b := c.frame.Bounds(); b.Dx() != width || b.Dy() != height {
		c.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	pix := c.frame.Pix
	for i, px := range buf[:width*height] {
		j := i * 4
		pix[j] = uint8(px >> 16)
		pix[j+1] = uint8(px >> 8)
		pix[j+2] = uint8(px)
		pix[j+3] = 0xff
	}
	c.frames++
	return nil
}

func (c *Canvas) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Canvas) SetPosition(x, y int) {
	c.mu.Lock()
	c.position = image.Pt(x, y)
	c.mu.Unlock()
}

func (c *Canvas) SetBorder(on bool) error {
	c.mu.Lock()
	c.opts.Border = on
	c.mu.Unlock()
	return nil
}

func (c *Canvas) SetResizable(on bool) error {
	c.mu.Lock()
	c.opts.Resizable = on
	c.mu.Unlock()
	return nil
}

func (c *Canvas) SetTopmost(on bool) error {
	c.mu.Lock()
	c.opts.Topmost = on
	c.mu.Unlock()
	return nil
}

func (c *Canvas) SetMinimizable(on bool) error {
	c.mu.Lock()
	c.opts.Minimizable = on
	c.mu.Unlock()
	return nil
}

// Options returns the current window attributes.
func (c *Canvas) Options() rgui.DisplayOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

func (c *Canvas) SetBackgroundColor(col rgui.Color) {
	c.mu.Lock()
	c.bg = col
	c.mu.Unlock()
}

// BackgroundColor is the color a frame starts from.
func (c *Canvas) BackgroundColor() rgui.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bg
}

func (c *Canvas) Size() rgui.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return rgui.V(float64(c.width), float64(c.height))
}

func (c *Canvas) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active && c.open
}

// Frames returns how many frames were presented.
func (c *Canvas) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Snapshot returns a copy of the last presented frame.
func (c *Canvas) Snapshot() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := image.NewRGBA(c.frame.Bounds())
	copy(cp.Pix, c.frame.Pix)
	return cp
}

// SavePNG writes the last presented frame to path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
