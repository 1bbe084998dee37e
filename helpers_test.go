package rgui_test

import (
	"time"

	"github.com/go-theft-auto/rgui"
)

// mockDisplay is an in-memory display that reports a fixed size.
type mockDisplay struct {
	size    rgui.Vec2
	open    bool
	updates int
	title   string
	bg      rgui.Color

	// closeAfter closes the display once Update has been called this many
	// times. Zero keeps it open.
	closeAfter int
}

func newMockDisplay(w, h float64) *mockDisplay {
	return &mockDisplay{size: rgui.V(w, h), open: true}
}

func (d *mockDisplay) SetTitle(title string) { d.title = title }

func (d *mockDisplay) Update() {
	d.updates++
	if d.closeAfter > 0 && d.updates >= d.closeAfter {
		d.open = false
	}
}

func (d *mockDisplay) UpdateWithBuffer([]uint32, int, int) error {
	d.Update()
	return nil
}

func (d *mockDisplay) IsOpen() bool                    { return d.open }
func (d *mockDisplay) SetPosition(int, int)            {}
func (d *mockDisplay) SetBorder(bool) error            { return nil }
func (d *mockDisplay) SetResizable(bool) error         { return nil }
func (d *mockDisplay) SetTopmost(bool) error           { return nil }
func (d *mockDisplay) SetMinimizable(bool) error       { return rgui.ErrNotSupported }
func (d *mockDisplay) SetBackgroundColor(c rgui.Color) { d.bg = c }
func (d *mockDisplay) Size() rgui.Vec2                 { return d.size }
func (d *mockDisplay) IsActive() bool                  { return true }

// mockRenderer records what it was asked to draw and replays queued events.
type mockRenderer struct {
	draws   int
	pending []rgui.Event
	last    []rgui.Instruction
	err     error
}

func (m *mockRenderer) DetectDisplayEvents(q *rgui.Queue[rgui.Event], _ rgui.Display) {
	for _, ev := range m.pending {
		q.Enqueue(ev)
	}
	m.pending = nil
}

func (m *mockRenderer) DrawCollection(c *rgui.Collection, d rgui.Display) error {
	if m.err != nil {
		return m.err
	}
	m.draws++
	m.last = m.last[:0]
	c.Each(func(in rgui.Instruction) {
		m.last = append(m.last, in)
	})
	d.Update()
	return nil
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// harness wires a tree, collections and builder without an engine.
type harness struct {
	tree         *rgui.Tree
	ids          rgui.IDMachine
	instructions *rgui.Collection
	overlays     *rgui.AbsoluteCollection
	builder      *rgui.Builder
	messages     rgui.MessageQueue
	clock        *fakeClock
	ctx          *rgui.EventContext
}

func newHarness() *harness {
	h := &harness{
		tree:         rgui.NewTree(),
		instructions: rgui.NewCollection(),
		clock:        newFakeClock(),
	}
	h.overlays = rgui.NewAbsoluteCollection(h.tree)
	h.builder = rgui.NewBuilder(h.tree, &h.ids, h.instructions)
	h.ctx = rgui.NewEventContext(h.tree, &h.messages, h.instructions, h.overlays, h.clock.Now)
	return h
}

func (h *harness) build(w rgui.Widget, pos, size rgui.Vec2) {
	h.builder.Build(w, pos, size)
}

func (h *harness) send(w rgui.Widget, events ...rgui.Event) {
	for _, ev := range events {
		w.OnEvent(h.ctx, ev)
	}
}

// apply drains the message queue and runs every message.
func (h *harness) apply() int {
	msgs := h.messages.Drain()
	for _, m := range msgs {
		m.Update()
	}
	return len(msgs)
}

// counter returns a message that increments n.
func counter(n *int) rgui.Message {
	return rgui.NewMessage(func(rgui.Event) { *n++ })
}

// spy records the sizes it is built with, every SetDirty(true) call and
// the events it receives.
type spy struct {
	rgui.Base
	sizes      []rgui.Vec2
	dirtyCalls int
	events     []rgui.Event
}

func newSpy(size rgui.Vec2) *spy {
	return &spy{Base: rgui.NewBase(size, rgui.NoLayout())}
}

func (s *spy) SetSize(size rgui.Vec2) {
	s.sizes = append(s.sizes, size)
	s.Base.SetSize(size)
}

func (s *spy) SetDirty(dirty bool) {
	if dirty {
		s.dirtyCalls++
	}
	s.Base.SetDirty(dirty)
}

func (s *spy) OnEvent(ctx *rgui.EventContext, ev rgui.Event) {
	s.events = append(s.events, ev)
	ctx.Forward(s, ev)
}

func (s *spy) Recipe() []rgui.Instruction { return nil }

func (s *spy) lastSize() rgui.Vec2 {
	if len(s.sizes) == 0 {
		return rgui.Vec2{}
	}
	return s.sizes[len(s.sizes)-1]
}

func leftPress() rgui.Event   { return rgui.ButtonPressed{Button: rgui.MouseButtonLeft} }
func leftRelease() rgui.Event { return rgui.ButtonReleased{Button: rgui.MouseButtonLeft} }
func moveTo(x, y float64) rgui.Event {
	return rgui.CursorMoved{X: x, Y: y}
}
