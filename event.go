package rgui

import "fmt"

// EventCategory groups events by the device that produced them.
type EventCategory int

const (
	CategoryKeyboard EventCategory = iota
	CategoryMouse
	CategoryWindow
)

// Event is a user-interface event. The set of implementations is closed;
// backends translate native events into these values.
type Event interface {
	Category() EventCategory
	isEvent()
}

// ModifiersState is the state of the keyboard modifier keys.
type ModifiersState struct {
	Shift   bool
	Control bool
	Alt     bool
	Logo    bool // Windows or Command key
}

// Matches reports whether every modifier set in required is also set in s.
// Extra modifiers held in s are allowed.
func (s ModifiersState) Matches(required ModifiersState) bool {
	return (!required.Shift || s.Shift) &&
		(!required.Control || s.Control) &&
		(!required.Alt || s.Alt) &&
		(!required.Logo || s.Logo)
}

// ScrollDelta is a wheel movement in pixels.
type ScrollDelta struct {
	X, Y float64
}

// Keyboard events.
type (
	KeyPressed struct {
		Key       KeyCode
		Modifiers ModifiersState
	}
	KeyReleased struct {
		Key       KeyCode
		Modifiers ModifiersState
	}
	ModifiersChanged struct {
		Modifiers ModifiersState
	}
	// CharTyped carries text input after the platform applied its keyboard
	// layout, dead keys and IME.
	CharTyped struct {
		Rune rune
	}
)

// Mouse events.
type (
	ButtonPressed struct {
		Button MouseButton
	}
	ButtonReleased struct {
		Button MouseButton
	}
	CursorEntered struct{}
	CursorLeft    struct{}
	CursorMoved   struct {
		X, Y float64
	}
	WheelScrolled struct {
		Delta ScrollDelta
	}
)

// Resized reports the new window size.
type Resized struct {
	Width, Height int
}

func (KeyPressed) Category() EventCategory       { return CategoryKeyboard }
func (KeyReleased) Category() EventCategory      { return CategoryKeyboard }
func (ModifiersChanged) Category() EventCategory { return CategoryKeyboard }
func (CharTyped) Category() EventCategory        { return CategoryKeyboard }
func (ButtonPressed) Category() EventCategory    { return CategoryMouse }
func (ButtonReleased) Category() EventCategory   { return CategoryMouse }
func (CursorEntered) Category() EventCategory    { return CategoryMouse }
func (CursorLeft) Category() EventCategory       { return CategoryMouse }
func (CursorMoved) Category() EventCategory      { return CategoryMouse }
func (WheelScrolled) Category() EventCategory    { return CategoryMouse }
func (Resized) Category() EventCategory          { return CategoryWindow }

func (KeyPressed) isEvent()       {}
func (KeyReleased) isEvent()      {}
func (ModifiersChanged) isEvent() {}
func (CharTyped) isEvent()        {}
func (ButtonPressed) isEvent()    {}
func (ButtonReleased) isEvent()   {}
func (CursorEntered) isEvent()    {}
func (CursorLeft) isEvent()       {}
func (CursorMoved) isEvent()      {}
func (WheelScrolled) isEvent()    {}
func (Resized) isEvent()          {}

func (e KeyPressed) String() string  { return fmt.Sprintf("KeyPressed(%s)", e.Key) }
func (e KeyReleased) String() string { return fmt.Sprintf("KeyReleased(%s)", e.Key) }
func (e CursorMoved) String() string { return fmt.Sprintf("CursorMoved(%.0f,%.0f)", e.X, e.Y) }

// Queue is a FIFO used for events and messages.
type Queue[T any] struct {
	items []T
}

// Enqueue appends v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Drain removes and returns every queued item in FIFO order. Items enqueued
// while the caller is consuming the result land in the next drain.
func (q *Queue[T]) Drain() []T {
	items := q.items
	q.items = nil
	return items
}
