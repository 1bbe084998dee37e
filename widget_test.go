package rgui_test

import (
	"testing"
	"time"

	"github.com/go-theft-auto/rgui"
)

func TestLabelRebuildsOnSetText(t *testing.T) {
	h := newHarness()
	label := rgui.NewLabel("0", rgui.V(100, 30), rgui.DefaultStyle())

	h.build(label, rgui.Vec2{}, rgui.V(100, 30))
	if h.instructions.Len() != 1 {
		t.Fatalf("collection has %d entries, want 1", h.instructions.Len())
	}
	id := label.ID()
	got, _ := h.instructions.Get(id)
	if len(got) != 2 {
		t.Fatalf("recipe has %d instructions, want 2", len(got))
	}
	if _, ok := got[0].(rgui.DrawRect); !ok {
		t.Errorf("first instruction is %T, want DrawRect", got[0])
	}
	if dt, ok := got[1].(rgui.DrawText); !ok || dt.Text != "0" {
		t.Errorf("second instruction is %#v, want DrawText \"0\"", got[1])
	}

	label.SetText("1")
	if !label.IsDirty() {
		t.Fatal("SetText did not mark the label dirty")
	}
	h.build(label, rgui.Vec2{}, rgui.V(100, 30))

	if label.ID() != id {
		t.Errorf("id changed from %v to %v", id, label.ID())
	}
	got, _ = h.instructions.Get(id)
	if dt, ok := got[1].(rgui.DrawText); !ok || dt.Text != "1" {
		t.Errorf("after SetText: %#v, want DrawText \"1\"", got[1])
	}
}

func TestLabelTextBaseline(t *testing.T) {
	h := newHarness()
	label := rgui.NewLabel("x", rgui.V(100, 30), rgui.DefaultStyle())
	h.build(label, rgui.V(10, 10), rgui.V(100, 30))

	got, _ := h.instructions.Get(label.ID())
	dt := got[1].(rgui.DrawText)
	if dt.Point != rgui.V(10, 40) {
		t.Errorf("text at %v, want (10, 40)", dt.Point)
	}
	if dt.ClipRect() != rgui.RectFrom(rgui.V(10, 10), rgui.V(100, 30)) {
		t.Errorf("clip = %+v", dt.ClipRect())
	}
}

func TestHitTestInclusive(t *testing.T) {
	h := newHarness()
	label := rgui.NewLabel("", rgui.V(20, 20), rgui.DefaultStyle())
	h.build(label, rgui.V(10, 10), rgui.V(20, 20))

	tests := []struct {
		p    rgui.Vec2
		want bool
	}{
		{rgui.V(10, 10), true},
		{rgui.V(30, 30), true},
		{rgui.V(20, 20), true},
		{rgui.V(9, 10), false},
		{rgui.V(31, 10), false},
		{rgui.V(10, 31), false},
	}
	for _, tt := range tests {
		if got := label.IsCursorInside(tt.p); got != tt.want {
			t.Errorf("IsCursorInside(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func newButton(h *harness, press, long *int) *rgui.Button {
	btn := rgui.NewButton(rgui.V(100, 40), rgui.Box(rgui.Vertical), counter(press), counter(long))
	ref := h.tree.Add(btn)
	h.tree.Attach(ref, rgui.NewLabel("ok", rgui.V(100, 40), rgui.DefaultStyle()))
	h.build(btn, rgui.Vec2{}, rgui.V(100, 40))
	return btn
}

func TestButtonLongPress(t *testing.T) {
	h := newHarness()
	var press, long int
	btn := newButton(h, &press, &long)

	h.send(btn, moveTo(50, 20), leftPress())
	h.clock.Advance(rgui.LongPressThreshold + 100*time.Millisecond)
	h.send(btn, leftRelease())

	if n := h.apply(); n != 1 {
		t.Fatalf("%d messages queued, want 1", n)
	}
	if long != 1 || press != 0 {
		t.Errorf("press=%d long=%d, want press=0 long=1", press, long)
	}
}

func TestButtonPress(t *testing.T) {
	h := newHarness()
	var press, long int
	btn := newButton(h, &press, &long)

	h.send(btn, moveTo(50, 20), leftPress())
	h.clock.Advance(100 * time.Millisecond)
	h.send(btn, leftRelease())
	h.apply()

	if press != 1 || long != 0 {
		t.Errorf("press=%d long=%d, want press=1 long=0", press, long)
	}
}

func TestButtonReleaseOutside(t *testing.T) {
	h := newHarness()
	var press, long int
	btn := newButton(h, &press, &long)

	h.send(btn, moveTo(50, 20), leftPress(), moveTo(500, 20), leftRelease())
	if n := h.apply(); n != 0 {
		t.Errorf("%d messages after releasing outside", n)
	}
	if btn.Pressed() {
		t.Error("button still pressed")
	}
}

func TestButtonNotClickable(t *testing.T) {
	h := newHarness()
	var press, long int
	btn := newButton(h, &press, &long)
	btn.SetClickable(false)

	h.send(btn, moveTo(50, 20), leftPress(), leftRelease())
	if n := h.apply(); n != 0 {
		t.Errorf("%d messages from a disabled button", n)
	}
}

func TestMessageCarriesEvent(t *testing.T) {
	h := newHarness()
	var got rgui.Event
	msg := rgui.NewMessage(func(ev rgui.Event) { got = ev })
	btn := rgui.NewButton(rgui.V(10, 10), rgui.NoLayout(), msg, nil)
	h.build(btn, rgui.Vec2{}, rgui.V(10, 10))

	h.send(btn, moveTo(5, 5), leftPress(), leftRelease())
	h.apply()

	if _, ok := got.(rgui.ButtonReleased); !ok {
		t.Errorf("message event = %#v, want ButtonReleased", got)
	}
	if msg.Event() != nil {
		t.Error("prototype was modified; Emit should enqueue a clone")
	}
}

func TestCheckboxToggle(t *testing.T) {
	h := newHarness()
	var changes int
	cb := rgui.NewCheckbox(rgui.V(20, 20), rgui.DefaultStyle(), false, counter(&changes))
	h.build(cb, rgui.Vec2{}, rgui.V(20, 20))

	h.send(cb, moveTo(10, 10), leftPress())
	if !cb.Checked() || !cb.IsDirty() {
		t.Fatalf("checked=%v dirty=%v after press", cb.Checked(), cb.IsDirty())
	}
	h.build(cb, rgui.Vec2{}, rgui.V(20, 20))

	got, _ := h.instructions.Get(cb.ID())
	outer := got[0].(rgui.DrawRect)
	inner := got[1].(rgui.DrawRect)
	if outer.Color != rgui.DefaultStyle().CheckboxSelected {
		t.Errorf("checked face color %v", outer.Color)
	}
	if inner.Point != rgui.V(4, 4) || inner.Size != rgui.V(12, 12) {
		t.Errorf("checked inset %v %v, want (4,4) (12,12)", inner.Point, inner.Size)
	}

	h.send(cb, moveTo(100, 100), leftPress())
	if !cb.Checked() {
		t.Error("press outside toggled the checkbox")
	}
	h.send(cb, moveTo(1, 1), leftPress())
	if cb.Checked() {
		t.Error("second press inside did not uncheck")
	}
	if n := h.apply(); n != 2 || changes != 2 {
		t.Errorf("%d messages, %d changes; want 2", n, changes)
	}
}

func TestSliderSnapsOnRelease(t *testing.T) {
	h := newHarness()
	var slides int
	s := rgui.NewSlider(rgui.V(100, 20), rgui.DefaultStyle(), 0, 10, 1, 5, counter(&slides))
	// Off the origin, so stops must be measured from the widget's position.
	h.build(s, rgui.V(20, 0), rgui.V(100, 20))

	if s.Value() != 5 {
		t.Fatalf("Value() = %d, want 5", s.Value())
	}

	h.send(s, moveTo(70, 10), leftPress(), moveTo(100, 10), leftRelease())
	if s.Value() != 8 {
		t.Errorf("after drag right: Value() = %d, want 8", s.Value())
	}

	h.send(s, moveTo(100, 10), leftPress(), moveTo(51, 10), leftRelease())
	if s.Value() != 3 {
		t.Errorf("after drag left: Value() = %d, want 3", s.Value())
	}

	// Less than half a step does not move.
	h.send(s, moveTo(50, 10), leftPress(), moveTo(53, 10), leftRelease())
	if s.Value() != 3 {
		t.Errorf("small drag moved to %d", s.Value())
	}

	if n := h.apply(); n != 2 || slides != 2 {
		t.Errorf("%d messages, %d slides; want 2", n, slides)
	}
}

func TestSliderClampsDrag(t *testing.T) {
	h := newHarness()
	s := rgui.NewSlider(rgui.V(100, 20), rgui.DefaultStyle(), 0, 100, 10, 0, nil)
	h.build(s, rgui.Vec2{}, rgui.V(100, 20))

	h.send(s, moveTo(0, 10), leftPress(), moveTo(900, 10))
	h.build(s, rgui.Vec2{}, rgui.V(100, 20))

	got, _ := h.instructions.Get(s.ID())
	grab := got[1].(rgui.DrawRect)
	if center := grab.Point.X + grab.Size.X/2; center != 100 {
		t.Errorf("grab centered at %v, want clamped to 100", center)
	}

	h.send(s, leftRelease())
	if s.Value() != 100 {
		t.Errorf("Value() = %d, want 100", s.Value())
	}
}

func TestSliderIgnoresUnknownValue(t *testing.T) {
	s := rgui.NewSlider(rgui.V(100, 20), rgui.DefaultStyle(), 0, 10, 2, 3, nil)
	if s.Value() != 0 {
		t.Errorf("Value() = %d, want first stop", s.Value())
	}
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) GetText() string     { return c.text }
func (c *fakeClipboard) SetText(text string) { c.text = text }

func TestTextBoxTyping(t *testing.T) {
	clip := &fakeClipboard{text: "yo\nignored"}
	rgui.SetClipboardProvider(clip)
	t.Cleanup(func() { rgui.SetClipboardProvider(nil) })

	h := newHarness()
	var changes int
	tb := rgui.NewTextBox(rgui.V(200, 30), rgui.DefaultStyle(), "", counter(&changes))
	h.build(tb, rgui.Vec2{}, rgui.V(200, 30))

	h.send(tb, rgui.CharTyped{Rune: 'x'})
	if tb.Text() != "" {
		t.Fatal("unfocused text box accepted input")
	}

	h.send(tb, moveTo(10, 10), leftPress())
	if !tb.Focused() {
		t.Fatal("press inside did not focus")
	}
	h.send(tb,
		rgui.CharTyped{Rune: 'h'},
		rgui.CharTyped{Rune: 'é'},
		rgui.KeyPressed{Key: rgui.KeyBackspace},
		rgui.KeyPressed{Key: rgui.KeyV, Modifiers: rgui.ModifiersState{Control: true}},
	)
	if tb.Text() != "hyo" {
		t.Errorf("Text() = %q, want %q", tb.Text(), "hyo")
	}

	h.send(tb, rgui.KeyPressed{Key: rgui.KeyC, Modifiers: rgui.ModifiersState{Control: true}})
	if clip.text != "hyo" {
		t.Errorf("clipboard = %q after copy", clip.text)
	}

	h.send(tb, rgui.KeyPressed{Key: rgui.KeyEnter})
	if tb.Focused() {
		t.Error("Enter did not blur")
	}
	if n := h.apply(); n != 4 || changes != 4 {
		t.Errorf("%d messages, %d changes; want 4", n, changes)
	}

	h.build(tb, rgui.Vec2{}, rgui.V(200, 30))
	got, _ := h.instructions.Get(tb.ID())
	dt := got[2].(rgui.DrawText)
	if dt.Text != "hyo" || dt.Point != rgui.V(10, 20) || dt.FontSize != 22 {
		t.Errorf("text instruction %#v", dt)
	}
}

func TestTextBoxBlursOnPressOutside(t *testing.T) {
	h := newHarness()
	tb := rgui.NewTextBox(rgui.V(200, 30), rgui.DefaultStyle(), "", nil)
	h.build(tb, rgui.Vec2{}, rgui.V(200, 30))

	h.send(tb, moveTo(10, 10), leftPress(), moveTo(300, 300), leftPress())
	if tb.Focused() {
		t.Error("press outside did not blur")
	}
}

func TestTabPressAndMove(t *testing.T) {
	h := newHarness()
	var press, left, right int
	tab := rgui.NewTab(rgui.V(50, 20), rgui.DefaultStyle(), counter(&press), counter(&left), counter(&right))
	h.build(tab, rgui.V(50, 0), rgui.V(50, 20))

	h.send(tab, moveTo(60, 10), leftPress(), leftRelease())
	h.send(tab, leftPress())
	h.clock.Advance(time.Second)
	h.send(tab, moveTo(10, 10), leftRelease())
	h.send(tab, moveTo(60, 10), leftPress())
	h.clock.Advance(time.Second)
	h.send(tab, moveTo(200, 10), leftRelease())
	h.apply()

	if press != 1 || left != 1 || right != 1 {
		t.Errorf("press=%d left=%d right=%d, want 1 each", press, left, right)
	}
}

func TestTooltipOverlay(t *testing.T) {
	h := newHarness()
	style := rgui.DefaultStyle()
	tip := rgui.NewLabel("hint", rgui.V(60, 20), style)
	tipRef := h.tree.Add(tip)

	view := rgui.NewTooltipView(rgui.V(100, 100), h.tree, tipRef)
	viewRef := h.tree.Add(view)
	child := newSpy(rgui.V(100, 50))
	attach(t, h.tree, viewRef, child)
	h.build(view, rgui.Vec2{}, rgui.V(100, 100))

	h.send(view, moveTo(30, 40))
	if !view.Showing() || !tip.ID().Overlay() {
		t.Fatalf("tooltip not shown: id %v", tip.ID())
	}
	id := tip.ID()

	// Moving within the view keeps the first position.
	h.send(view, moveTo(35, 45))
	if tip.ID() != id || h.overlays.Len() != 1 {
		t.Fatalf("tooltip re-inserted: %v, %d overlays", tip.ID(), h.overlays.Len())
	}

	h.overlays.Sync(h.instructions)
	if tip.Position() != rgui.V(30, 40) || tip.Size() != rgui.V(60, 20) {
		t.Errorf("tooltip geometry %v %v", tip.Position(), tip.Size())
	}
	if _, ok := h.instructions.Get(id); !ok {
		t.Fatal("tooltip not drawn")
	}

	h.send(view, moveTo(500, 500))
	if view.Showing() {
		t.Error("tooltip still shown after leaving")
	}
	if _, ok := h.instructions.Get(id); ok {
		t.Error("tooltip instructions left behind")
	}
	if h.overlays.Len() != 0 {
		t.Errorf("%d overlays left", h.overlays.Len())
	}
}

func TestTooltipViewSetDirtyPropagates(t *testing.T) {
	h := newHarness()
	tipRef := h.tree.Add(rgui.NewLabel("hint", rgui.V(60, 20), rgui.DefaultStyle()))
	view := rgui.NewTooltipView(rgui.V(100, 100), h.tree, tipRef)
	viewRef := h.tree.Add(view)
	a := newSpy(rgui.V(100, 20))
	b := newSpy(rgui.V(100, 20))
	attach(t, h.tree, viewRef, a)
	attach(t, h.tree, viewRef, b)
	h.build(view, rgui.Vec2{}, rgui.V(100, 100))

	view.SetDirty(true)
	if !a.IsDirty() || !b.IsDirty() {
		t.Errorf("children dirty = %v, %v", a.IsDirty(), b.IsDirty())
	}
}

func TestProgressBar(t *testing.T) {
	h := newHarness()
	p := rgui.NewProgressBar(rgui.V(200, 10), rgui.DefaultStyle(), 25)
	h.build(p, rgui.Vec2{}, rgui.V(100, 10))

	got, _ := h.instructions.Get(p.ID())
	bg := got[0].(rgui.DrawRect)
	fg := got[1].(rgui.DrawRect)
	if bg.Size != rgui.V(200, 10) || fg.Size != rgui.V(50, 10) {
		t.Errorf("bg %v fg %v", bg.Size, fg.Size)
	}
	if bg.ClipRect().W != 100 {
		t.Errorf("clip width %v, want current size 100", bg.ClipRect().W)
	}

	p.SetProgress(150)
	if p.Progress() != 100 {
		t.Errorf("Progress() = %v, want clamped 100", p.Progress())
	}
}

func TestIconRecipe(t *testing.T) {
	h := newHarness()
	icon := rgui.NewIcon(rgui.V(32, 32), rgui.DefaultStyle(), "star.png", rgui.Resize{Width: 16, Height: 16})
	h.build(icon, rgui.V(4, 4), rgui.V(32, 32))

	got, _ := h.instructions.Get(icon.ID())
	img, ok := got[1].(rgui.DrawImage)
	if !ok || img.Path != "star.png" || img.Point != rgui.V(4, 4) {
		t.Fatalf("image instruction %#v", got[1])
	}
	if s := img.Options.Scale(rgui.V(64, 64)); s != rgui.V(16, 16) {
		t.Errorf("Scale() = %v", s)
	}
}

func TestRootPinnedToOrigin(t *testing.T) {
	h := newHarness()
	root := rgui.NewRoot(rgui.V(100, 100), rgui.NoLayout(), rgui.DefaultStyle())
	h.build(root, rgui.V(50, 50), rgui.V(100, 100))

	if root.Position() != (rgui.Vec2{}) {
		t.Errorf("root moved to %v", root.Position())
	}
	got, _ := h.instructions.Get(root.ID())
	if _, ok := got[0].(rgui.Clear); !ok || len(got) != 1 {
		t.Errorf("root recipe %#v, want one Clear", got)
	}
}

func TestTextBoxUndoRedo(t *testing.T) {
	h := newHarness()
	var changes int
	tb := rgui.NewTextBox(rgui.V(200, 30), rgui.DefaultStyle(), "", counter(&changes))
	h.build(tb, rgui.Vec2{}, rgui.V(200, 30))
	h.send(tb, moveTo(10, 10), leftPress())

	ctrl := rgui.ModifiersState{Control: true}
	h.send(tb, rgui.CharTyped{Rune: 'a'}, rgui.CharTyped{Rune: 'b'})

	steps := []struct {
		key   rgui.KeyCode
		shift bool
		want  string
	}{
		{rgui.KeyZ, false, "a"},
		{rgui.KeyZ, false, ""},
		{rgui.KeyZ, false, ""},
		{rgui.KeyY, false, "a"},
		{rgui.KeyZ, true, "ab"},
		{rgui.KeyY, false, "ab"},
	}
	for i, s := range steps {
		mods := ctrl
		mods.Shift = s.shift
		h.send(tb, rgui.KeyPressed{Key: s.key, Modifiers: mods})
		if tb.Text() != s.want {
			t.Fatalf("step %d: Text() = %q, want %q", i, tb.Text(), s.want)
		}
	}

	// Typing after an undo drops the redo states.
	h.send(tb, rgui.KeyPressed{Key: rgui.KeyZ, Modifiers: ctrl}, rgui.CharTyped{Rune: 'c'})
	h.send(tb, rgui.KeyPressed{Key: rgui.KeyY, Modifiers: ctrl})
	if tb.Text() != "ac" {
		t.Errorf("Text() = %q, want %q", tb.Text(), "ac")
	}

	// Two typed, four history moves, one undo and one typed.
	h.apply()
	if changes != 8 {
		t.Errorf("changes = %d, want 8", changes)
	}
}

func TestLabelFitTruncates(t *testing.T) {
	h := newHarness()
	style := rgui.DefaultStyle()
	style.FontSize = 10
	label := rgui.NewLabel("abcdefghij", rgui.V(60, 20), style)
	label.SetFit(rgui.MonoMeasurer{Advance: 1})
	h.build(label, rgui.Vec2{}, rgui.V(60, 20))

	got, _ := h.instructions.Get(label.ID())
	if text := got[1].(rgui.DrawText).Text; text != "abcd.." {
		t.Errorf("drawn text = %q, want %q", text, "abcd..")
	}
	if label.Text() != "abcdefghij" {
		t.Errorf("Text() = %q, truncation must not change the content", label.Text())
	}
}

func TestTextBoxComposesCombiningMarks(t *testing.T) {
	h := newHarness()
	tb := rgui.NewTextBox(rgui.V(200, 30), rgui.DefaultStyle(), "", nil)
	h.build(tb, rgui.Vec2{}, rgui.V(200, 30))
	h.send(tb, moveTo(10, 10), leftPress())

	h.send(tb, rgui.CharTyped{Rune: 'e'}, rgui.CharTyped{Rune: '\u0301'})
	if tb.Text() != "\u00e9" {
		t.Fatalf("Text() = %+q, want a single composed rune", tb.Text())
	}
	h.send(tb, rgui.KeyPressed{Key: rgui.KeyBackspace})
	if tb.Text() != "" {
		t.Errorf("Text() = %+q after Backspace, want empty", tb.Text())
	}
}
