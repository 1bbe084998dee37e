package rgui

import (
	"log/slog"
	"time"
)

// Message is a user-defined command queued by a widget while it handles an
// event and applied once per frame, after the frame has been drawn.
//
// Widgets hold a prototype and enqueue a Clone carrying the triggering event,
// so the same prototype can fire many times.
type Message interface {
	Clone() Message
	SetEvent(ev Event)
	Update()
}

// MessageFunc is a Message backed by a closure. The closure receives the
// event that triggered the message.
type MessageFunc struct {
	fn    func(ev Event)
	event Event
}

// NewMessage wraps fn in a Message.
func NewMessage(fn func(ev Event)) *MessageFunc {
	return &MessageFunc{fn: fn}
}

func (m *MessageFunc) Clone() Message {
	c := *m
	return &c
}

func (m *MessageFunc) SetEvent(ev Event) { m.event = ev }

// Event returns the event attached by SetEvent.
func (m *MessageFunc) Event() Event { return m.event }

func (m *MessageFunc) Update() {
	if m.fn != nil {
		m.fn(m.event)
	}
}

// MessageQueue holds the messages emitted during one frame.
type MessageQueue = Queue[Message]

// EventContext is handed to Widget.OnEvent. It gives widgets access to the
// arena for forwarding, the message queue, the collections that overlay
// widgets manipulate, and the frame clock.
type EventContext struct {
	Tree         *Tree
	Messages     *MessageQueue
	Instructions *Collection
	Overlays     *AbsoluteCollection

	now    func() time.Time
	logger *slog.Logger
}

// NewEventContext wires an EventContext by hand. Engine builds one per
// frame; tests and custom loops can use this directly.
func NewEventContext(tree *Tree, messages *MessageQueue, instructions *Collection, overlays *AbsoluteCollection, now func() time.Time) *EventContext {
	if now == nil {
		now = time.Now
	}
	return &EventContext{
		Tree:         tree,
		Messages:     messages,
		Instructions: instructions,
		Overlays:     overlays,
		now:          now,
		logger:       guiLogger,
	}
}

// Now returns the current time from the engine's clock.
func (c *EventContext) Now() time.Time {
	return c.now()
}

// Forward delivers ev to every resolvable child of w.
func (c *EventContext) Forward(w Widget, ev Event) {
	for _, r := range w.Children() {
		if child, ok := c.Tree.Resolve(r); ok {
			child.OnEvent(c, ev)
		}
	}
}

// Emit enqueues a clone of msg with ev attached. A nil msg is ignored.
func (c *EventContext) Emit(msg Message, ev Event) {
	if msg == nil {
		return
	}
	m := msg.Clone()
	m.SetEvent(ev)
	c.Messages.Enqueue(m)
}
