package rgui

import "errors"

var (
	// ErrNotSupported is returned when a backend or layout cannot honour a
	// request, such as toggling a window attribute the platform lacks.
	ErrNotSupported = errors.New("rgui: not supported")

	// ErrStaleRef is returned when a Ref no longer resolves to a live widget.
	ErrStaleRef = errors.New("rgui: stale widget reference")

	// ErrDisplayClosed is returned by Run when the display closes underneath
	// a frame that still needed it.
	ErrDisplayClosed = errors.New("rgui: display closed")
)
