package rgui

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Engine owns the per-frame dispatch loop: it pulls events from the display,
// routes them through the widget tree, rebuilds dirty widgets, redraws
// overlays, hands the instruction collection to the renderer and finally
// applies the messages widgets emitted.
type Engine struct {
	display  Display
	renderer Renderer

	tree         *Tree
	root         Ref
	ids          IDMachine
	instructions *Collection
	overlays     *AbsoluteCollection
	builder      *Builder
	actions      *ActionRegistry

	events   Queue[Event]
	messages MessageQueue

	now        func() time.Time
	logger     *slog.Logger
	frameLimit time.Duration
	lastSize   Vec2
	frames     uint64
}

// Option configures an Engine instance.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock replaces time.Now, which widgets read through EventContext.Now
// to tell presses from long presses.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithFrameLimit caps Run at fps frames per second. Zero disables the cap.
func WithFrameLimit(fps int) Option {
	return func(e *Engine) {
		if fps > 0 {
			e.frameLimit = time.Second / time.Duration(fps)
		} else {
			e.frameLimit = 0
		}
	}
}

// New creates an engine drawing the tree below root.
func New(display Display, renderer Renderer, tree *Tree, root Ref, opts ...Option) *Engine {
	e := &Engine{
		display:      display,
		renderer:     renderer,
		tree:         tree,
		root:         root,
		instructions: NewCollection(),
		actions:      NewActionRegistry(),
		now:          time.Now,
		logger:       guiLogger,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.overlays = NewAbsoluteCollection(tree)
	e.overlays.logger = e.logger
	e.builder = NewBuilder(tree, &e.ids, e.instructions)
	e.builder.logger = e.logger
	return e
}

func (e *Engine) Tree() *Tree                   { return e.tree }
func (e *Engine) Root() Ref                     { return e.root }
func (e *Engine) Instructions() *Collection     { return e.instructions }
func (e *Engine) Overlays() *AbsoluteCollection { return e.overlays }
func (e *Engine) Display() Display              { return e.display }

// Actions returns the registry of global shortcuts.
func (e *Engine) Actions() *ActionRegistry { return e.actions }

// Frames returns the number of completed frames.
func (e *Engine) Frames() uint64 { return e.frames }

// Post queues ev for the next frame, alongside whatever the renderer
// detects.
func (e *Engine) Post(ev Event) {
	e.events.Enqueue(ev)
}

// EventContext returns a context wired to this engine's state.
func (e *Engine) EventContext() *EventContext {
	ctx := NewEventContext(e.tree, &e.messages, e.instructions, e.overlays, e.now)
	ctx.logger = e.logger
	return ctx
}

// RunFrame executes one iteration of the dispatch loop.
func (e *Engine) RunFrame() error {
	root, ok := e.tree.Resolve(e.root)
	if !ok {
		return fmt.Errorf("frame %d: root: %w", e.frames, ErrStaleRef)
	}

	e.renderer.DetectDisplayEvents(&e.events, e.display)

	ctx := e.EventContext()
	for _, ev := range e.events.Drain() {
		switch ev := ev.(type) {
		case Resized:
			if guiVerbose() {
				e.logger.Debug("display resized", "width", ev.Width, "height", ev.Height)
			}
		case KeyPressed:
			if e.actions.Handle(ctx, ev) {
				continue
			}
		}
		root.OnEvent(ctx, ev)
	}

	// A new display size changes every constraint below the root.
	size := e.display.Size()
	if size != e.lastSize {
		e.tree.MarkDirty(e.root)
		e.lastSize = size
	}

	e.builder.Build(root, Vec2{}, size)
	e.overlays.Sync(e.instructions)

	if err := e.renderer.DrawCollection(e.instructions, e.display); err != nil {
		return fmt.Errorf("frame %d: draw: %w", e.frames, err)
	}

	for _, m := range e.messages.Drain() {
		m.Update()
	}

	e.frames++
	return nil
}

// Run repeats RunFrame until the display closes, ctx is cancelled or a frame
// fails. Renderers implementing Looper take over the loop.
func (e *Engine) Run(ctx context.Context) error {
	if l, ok := e.renderer.(Looper); ok {
		return l.Loop(ctx, e)
	}

	for e.display.IsOpen() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := time.Now()
		if err := e.RunFrame(); err != nil {
			return err
		}
		if e.frameLimit > 0 {
			if rest := e.frameLimit - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
	e.logger.Info("display closed", "frames", e.frames)
	return nil
}

// Release removes the widget behind ref and its whole subtree from the
// engine: their instructions and overlay entries are dropped and their
// slots freed. Parents prune the stale ref on their next build. Releasing
// the root stops the engine; RunFrame then fails with ErrStaleRef.
func (e *Engine) Release(ref Ref) error {
	if _, ok := e.tree.Resolve(ref); !ok {
		return ErrStaleRef
	}

	var subtree []Ref
	e.tree.Walk(ref, func(r Ref, w Widget) bool {
		subtree = append(subtree, r)
		if id := w.ID(); !id.IsZero() {
			e.instructions.Remove(id)
			e.overlays.Remove(id)
		}
		return true
	})
	for _, r := range subtree {
		e.tree.Release(r)
	}
	if guiVerbose() {
		e.logger.Debug("released", "widgets", len(subtree))
	}
	return nil
}
