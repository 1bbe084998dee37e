// Command gen renders every widget with sample data on the headless
// software backend and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/software"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                                  // filename without extension
	width  int                                     // viewport width
	height int                                     // viewport height
	layout rgui.Layout                             // root layout
	build  func(t *rgui.Tree, root rgui.Ref) error // attaches the widgets under root
	input  [][]rgui.Event                          // events injected before frame i+1
}

var style = rgui.GTAStyle()

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	iconPath := filepath.Join(os.TempDir(), "rgui-doc-icon.png")
	if err := writeIcon(iconPath); err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	defer os.Remove(iconPath)

	shots := buildScreenshots(iconPath)
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	// Fresh tree per screenshot to avoid state leaking between captures.
	tree := rgui.NewTree()
	root := tree.Add(rgui.NewRoot(rgui.V(float64(s.width), float64(s.height)), s.layout, style))
	if err := s.build(tree, root); err != nil {
		return err
	}

	canvas := software.NewCanvas(s.width, s.height, rgui.DefaultDisplayOptions())
	renderer, err := software.NewRenderer()
	if err != nil {
		return err
	}
	e := rgui.New(canvas, renderer, tree, root)

	// One frame to lay out, then one per batch of input so messages land.
	if err := e.RunFrame(); err != nil {
		return err
	}
	for _, batch := range s.input {
		canvas.Push(batch...)
		if err := e.RunFrame(); err != nil {
			return err
		}
	}
	if err := e.RunFrame(); err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, canvas.Snapshot(), &jpeg.Options{Quality: 90})
}

// attach adds widgets under parent in order.
func attach(t *rgui.Tree, parent rgui.Ref, widgets ...rgui.Widget) error {
	for _, w := range widgets {
		if _, err := t.Attach(parent, w); err != nil {
			return err
		}
	}
	return nil
}

func click(x, y float64) []rgui.Event {
	return []rgui.Event{
		rgui.CursorMoved{X: x, Y: y},
		rgui.ButtonPressed{Button: rgui.MouseButtonLeft},
		rgui.ButtonReleased{Button: rgui.MouseButtonLeft},
	}
}

func typed(s string) []rgui.Event {
	var evs []rgui.Event
	for _, r := range s {
		evs = append(evs, rgui.CharTyped{Rune: r})
	}
	return evs
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots(iconPath string) []screenshot {
	return []screenshot{
		{
			name: "label", width: 320, height: 100, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				long := rgui.NewLabel("A label that is far too long to fit its width", rgui.V(300, 30), style)
				long.SetFit(rgui.DefaultMeasurer)
				return attach(t, root,
					rgui.NewLabel("Plain label", rgui.V(300, 30), style),
					long,
				)
			},
		},
		{
			name: "button", width: 320, height: 80, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				label := rgui.NewLabel("clicked 0 times", rgui.V(300, 30), style)
				clicks := 0
				btn := rgui.NewButton(rgui.V(300, 40), rgui.Box(rgui.Horizontal), rgui.NewMessage(func(rgui.Event) {
					clicks++
					label.SetText(fmt.Sprintf("clicked %d times", clicks))
				}), nil)
				btn.SetBackground(style.ButtonColor)
				if err := attach(t, root, label); err != nil {
					return err
				}
				ref, err := t.Attach(root, btn)
				if err != nil {
					return err
				}
				return attach(t, ref, rgui.NewLabel("Press me", rgui.V(120, 30), style))
			},
			input: [][]rgui.Event{click(50, 50), click(50, 50)},
		},
		{
			name: "checkbox", width: 120, height: 40, layout: rgui.Box(rgui.Horizontal),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				return attach(t, root,
					rgui.NewCheckbox(rgui.V(30, 30), style, true, nil),
					rgui.NewCheckbox(rgui.V(30, 30), style, false, nil),
				)
			},
		},
		{
			name: "slider", width: 320, height: 40, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				return attach(t, root, rgui.NewSlider(rgui.V(300, 24), style, 0, 10, 1, 7, nil))
			},
		},
		{
			name: "textbox", width: 320, height: 50, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				return attach(t, root, rgui.NewTextBox(rgui.V(300, 36), style, "", nil))
			},
			input: [][]rgui.Event{click(20, 20), typed("Hello, world!")},
		},
		{
			name: "progress", width: 320, height: 60, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				return attach(t, root,
					rgui.NewProgressBar(rgui.V(300, 20), style, 35),
					rgui.NewLabel("", rgui.V(300, 10), style),
					rgui.NewProgressBar(rgui.V(300, 20), style, 80),
				)
			},
		},
		{
			name: "panel", width: 320, height: 160, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				p := rgui.NewPanel(rgui.V(300, 140), rgui.Box(rgui.Vertical), style)
				p.SetTitle("Panel")
				p.SetOffset(rgui.V(10, 30))
				ref, err := t.Attach(root, p)
				if err != nil {
					return err
				}
				return attach(t, ref,
					rgui.NewLabel("first", rgui.V(280, 30), style),
					rgui.NewLabel("second", rgui.V(280, 30), style),
				)
			},
		},
		{
			name: "grid", width: 320, height: 120, layout: rgui.NoLayout(),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				ref, err := t.Attach(root, rgui.NewGridView(rgui.V(320, 120), rgui.Vertical, 3))
				if err != nil {
					return err
				}
				for i := 0; i < 6; i++ {
					if err := attach(t, ref, rgui.NewLabel(fmt.Sprintf("cell %d", i), rgui.V(100, 50), style)); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			name: "sliver", width: 220, height: 150, layout: rgui.NoLayout(),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				ref, err := t.Attach(root, rgui.NewSliverView(rgui.V(220, 150), rgui.Vertical))
				if err != nil {
					return err
				}
				for i := 0; i < 20; i++ {
					if err := attach(t, ref, rgui.NewLabel(fmt.Sprintf("row %02d", i), rgui.V(200, 30), style)); err != nil {
						return err
					}
				}
				return nil
			},
			input: [][]rgui.Event{{
				rgui.CursorMoved{X: 50, Y: 50},
				rgui.WheelScrolled{Delta: rgui.ScrollDelta{Y: -75}},
			}},
		},
		{
			name: "tab", width: 320, height: 40, layout: rgui.Box(rgui.Horizontal),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				for _, name := range []string{"Map", "Stats", "Radio"} {
					ref, err := t.Attach(root, rgui.NewTab(rgui.V(100, 36), style, nil, nil, nil))
					if err != nil {
						return err
					}
					l := rgui.NewLabel(name, rgui.V(90, 30), style)
					l.SetColors(style.TextColor, rgui.ColorTransparent)
					if err := attach(t, ref, l); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			name: "tooltip", width: 320, height: 120, layout: rgui.Box(rgui.Vertical),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				tip := t.Add(rgui.NewLabel("I am a tooltip", rgui.V(160, 26), style))
				view := rgui.NewTooltipView(rgui.V(300, 40), t, tip)
				ref, err := t.Attach(root, view)
				if err != nil {
					return err
				}
				return attach(t, ref, rgui.NewLabel("Hover me", rgui.V(300, 40), style))
			},
			input: [][]rgui.Event{{rgui.CursorMoved{X: 60, Y: 20}}},
		},
		{
			name: "icon", width: 200, height: 80, layout: rgui.Box(rgui.Horizontal),
			build: func(t *rgui.Tree, root rgui.Ref) error {
				return attach(t, root,
					rgui.NewIcon(rgui.V(64, 64), style, iconPath, rgui.OriginalSize{}),
					rgui.NewIcon(rgui.V(64, 64), style, iconPath, rgui.ResizeMultiplier{Mult: 0.5}),
					rgui.NewIcon(rgui.V(64, 64), style, iconPath, rgui.Resize{Width: 64, Height: 32}),
				)
			},
		},
	}
}

// writeIcon saves a 64x64 gradient used by the icon screenshot.
func writeIcon(path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 0xc8, A: 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
