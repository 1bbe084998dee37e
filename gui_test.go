package rgui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-theft-auto/rgui"
)

type engineFixture struct {
	display  *mockDisplay
	renderer *mockRenderer
	tree     *rgui.Tree
	root     *rgui.Root
	rootRef  rgui.Ref
	label    *rgui.Label
	labelRef rgui.Ref
	engine   *rgui.Engine
	clock    *fakeClock
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	f := &engineFixture{
		display:  newMockDisplay(200, 100),
		renderer: &mockRenderer{},
		tree:     rgui.NewTree(),
		clock:    newFakeClock(),
	}
	style := rgui.GTAStyle()
	f.root = rgui.NewRoot(rgui.V(200, 100), rgui.Box(rgui.Vertical), style)
	f.rootRef = f.tree.Add(f.root)
	f.label = rgui.NewLabel("0", rgui.V(100, 30), style)
	f.labelRef = attach(t, f.tree, f.rootRef, f.label)
	f.engine = rgui.New(f.display, f.renderer, f.tree, f.rootRef, rgui.WithClock(f.clock.Now))
	return f
}

func TestEngineRunFrame(t *testing.T) {
	f := newEngineFixture(t)

	if err := f.engine.RunFrame(); err != nil {
		t.Fatalf("RunFrame() returned error: %v", err)
	}
	if f.renderer.draws != 1 || f.display.updates != 1 {
		t.Errorf("draws=%d updates=%d, want 1", f.renderer.draws, f.display.updates)
	}
	if len(f.renderer.last) != 3 {
		t.Fatalf("drew %d instructions, want Clear + label", len(f.renderer.last))
	}
	if _, ok := f.renderer.last[0].(rgui.Clear); !ok {
		t.Errorf("first instruction %T, want Clear", f.renderer.last[0])
	}
	if f.engine.Frames() != 1 {
		t.Errorf("Frames() = %d", f.engine.Frames())
	}
}

func TestEngineAppliesMessagesAfterDraw(t *testing.T) {
	f := newEngineFixture(t)
	var drawsAtUpdate = -1
	msg := rgui.NewMessage(func(rgui.Event) {
		drawsAtUpdate = f.renderer.draws
		f.label.SetText("1")
	})
	btn := rgui.NewButton(rgui.V(100, 30), rgui.NoLayout(), msg, nil)
	attach(t, f.tree, f.rootRef, btn)

	if err := f.engine.RunFrame(); err != nil {
		t.Fatal(err)
	}

	// The button sits below the 30px label.
	f.renderer.pending = []rgui.Event{moveTo(50, 45), leftPress(), leftRelease()}
	if err := f.engine.RunFrame(); err != nil {
		t.Fatal(err)
	}
	if drawsAtUpdate != 2 {
		t.Fatalf("message ran after %d draws, want 2", drawsAtUpdate)
	}
	if !f.label.IsDirty() {
		t.Fatal("message did not mark the label dirty")
	}

	if err := f.engine.RunFrame(); err != nil {
		t.Fatal(err)
	}
	var text string
	for _, in := range f.renderer.last {
		if dt, ok := in.(rgui.DrawText); ok {
			text = dt.Text
		}
	}
	if text != "1" {
		t.Errorf("label drew %q, want \"1\"", text)
	}
}

func TestEnginePost(t *testing.T) {
	f := newEngineFixture(t)
	var pressed int
	btn := rgui.NewButton(rgui.V(100, 30), rgui.NoLayout(), counter(&pressed), nil)
	attach(t, f.tree, f.rootRef, btn)
	f.engine.RunFrame()

	f.engine.Post(moveTo(10, 40))
	f.engine.Post(leftPress())
	f.engine.Post(leftRelease())
	f.engine.RunFrame()

	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}
}

func TestEngineResizeRelayouts(t *testing.T) {
	f := newEngineFixture(t)
	f.engine.RunFrame()
	if f.label.Size() != rgui.V(100, 30) {
		t.Fatalf("label size %v", f.label.Size())
	}

	f.display.size = rgui.V(60, 100)
	f.engine.RunFrame()
	if f.label.Size() != rgui.V(60, 30) {
		t.Errorf("label size %v after shrinking the display", f.label.Size())
	}
}

func TestEngineDrawError(t *testing.T) {
	f := newEngineFixture(t)
	f.renderer.err = rgui.ErrDisplayClosed

	err := f.engine.RunFrame()
	if !errors.Is(err, rgui.ErrDisplayClosed) {
		t.Fatalf("RunFrame() = %v, want ErrDisplayClosed", err)
	}
	if f.engine.Frames() != 0 {
		t.Errorf("failed frame was counted")
	}
}

func TestEngineRelease(t *testing.T) {
	f := newEngineFixture(t)
	f.engine.RunFrame()
	id := f.label.ID()

	if err := f.engine.Release(f.labelRef); err != nil {
		t.Fatalf("Release() = %v", err)
	}
	if _, ok := f.engine.Instructions().Get(id); ok {
		t.Error("released widget still has instructions")
	}
	if err := f.engine.Release(f.labelRef); !errors.Is(err, rgui.ErrStaleRef) {
		t.Errorf("second Release() = %v, want ErrStaleRef", err)
	}

	f.engine.RunFrame()
	if len(f.root.Children()) != 0 {
		t.Errorf("root still lists %d children", len(f.root.Children()))
	}
	if len(f.renderer.last) != 1 {
		t.Errorf("drew %d instructions, want only the Clear", len(f.renderer.last))
	}
}

func TestEngineReleasedRoot(t *testing.T) {
	f := newEngineFixture(t)
	f.engine.Release(f.rootRef)

	if err := f.engine.RunFrame(); !errors.Is(err, rgui.ErrStaleRef) {
		t.Errorf("RunFrame() = %v, want ErrStaleRef", err)
	}
	if f.tree.Len() != 0 {
		t.Errorf("tree holds %d widgets after releasing the root", f.tree.Len())
	}
}

func TestEngineRunUntilClosed(t *testing.T) {
	f := newEngineFixture(t)
	f.display.closeAfter = 3

	if err := f.engine.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if f.engine.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", f.engine.Frames())
	}
}

func TestEngineRunCancelled(t *testing.T) {
	f := newEngineFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.engine.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

type loopingRenderer struct {
	mockRenderer
	looped bool
}

func (l *loopingRenderer) Loop(ctx context.Context, e *rgui.Engine) error {
	l.looped = true
	return e.RunFrame()
}

func TestEngineRunUsesLooper(t *testing.T) {
	tree := rgui.NewTree()
	root := tree.Add(rgui.NewRoot(rgui.V(10, 10), rgui.NoLayout(), rgui.DefaultStyle()))
	r := &loopingRenderer{}
	e := rgui.New(newMockDisplay(10, 10), r, tree, root, rgui.WithFrameLimit(60))

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !r.looped || e.Frames() != 1 {
		t.Errorf("looped=%v frames=%d", r.looped, e.Frames())
	}
}

func TestEngineActionsConsumeHotkeys(t *testing.T) {
	f := newEngineFixture(t)
	s := newSpy(rgui.V(10, 10))
	attach(t, f.tree, f.rootRef, s)

	var quit, saved int
	allowSave := false
	ctrlQ := rgui.KeyPressed{Key: rgui.KeyQ, Modifiers: rgui.ModifiersState{Control: true}}
	f.engine.Actions().Register("quit", rgui.Hotkey{Key: rgui.KeyQ, Modifiers: rgui.ModifiersState{Control: true}}, counter(&quit))
	f.engine.Actions().RegisterWithCondition("save", rgui.Hotkey{Key: rgui.KeyS}, counter(&saved), func() bool { return allowSave })

	f.renderer.pending = []rgui.Event{ctrlQ, rgui.KeyPressed{Key: rgui.KeyQ}, rgui.KeyPressed{Key: rgui.KeyS}}
	if err := f.engine.RunFrame(); err != nil {
		t.Fatal(err)
	}
	if quit != 1 || saved != 0 {
		t.Errorf("quit=%d saved=%d, want 1 and 0", quit, saved)
	}
	if len(s.events) != 2 {
		t.Fatalf("tree saw %d key presses, want the 2 unbound ones", len(s.events))
	}
	for _, ev := range s.events {
		if ev == rgui.Event(ctrlQ) {
			t.Error("bound hotkey reached the tree")
		}
	}

	allowSave = true
	f.engine.Actions().Unregister("quit")
	f.renderer.pending = []rgui.Event{ctrlQ, rgui.KeyPressed{Key: rgui.KeyS}}
	if err := f.engine.RunFrame(); err != nil {
		t.Fatal(err)
	}
	if quit != 1 || saved != 1 {
		t.Errorf("quit=%d saved=%d, want 1 and 1", quit, saved)
	}
	if f.engine.Actions().Len() != 1 {
		t.Errorf("Len() = %d", f.engine.Actions().Len())
	}
}
