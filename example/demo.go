package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/go-theft-auto/rgui"
)

// demo holds the widgets the demo's messages update.
type demo struct {
	tree *rgui.Tree
	root rgui.Ref

	clicks   int
	counter  *rgui.Label
	status   *rgui.Label
	progress *rgui.ProgressBar
	slider   *rgui.Slider
	input    *rgui.TextBox
}

func buildDemo(width, height float64, style rgui.Style) (*demo, error) {
	d := &demo{tree: rgui.NewTree()}
	t := d.tree

	root := rgui.NewRoot(rgui.V(width, height), rgui.Box(rgui.Vertical), style)
	d.root = t.Add(root)

	header := rgui.NewPanel(rgui.V(width, 40), rgui.Box(rgui.Horizontal), style)
	header.SetTitle("rgui demo")
	body := rgui.NewPanel(rgui.V(width, height-40), rgui.Box(rgui.Horizontal), style)
	body.SetOffset(rgui.V(10, 10))

	controls := rgui.NewListView(rgui.V(320, height-60), rgui.Vertical)
	list := rgui.NewSliverView(rgui.V(220, height-60), rgui.Vertical)

	d.counter = rgui.NewLabel("clicks: 0", rgui.V(300, 30), style)
	d.status = rgui.NewLabel("", rgui.V(300, 30), style)
	d.status.SetFit(rgui.DefaultMeasurer)
	d.progress = rgui.NewProgressBar(rgui.V(300, 16), style, 0)

	button := rgui.NewButton(rgui.V(300, 40), rgui.Box(rgui.Horizontal),
		rgui.NewMessage(func(rgui.Event) { d.click(1) }),
		rgui.NewMessage(func(rgui.Event) { d.click(10) }),
	)
	button.SetBackground(style.ButtonColor)
	buttonLabel := rgui.NewLabel("press, or hold for +10", rgui.V(300, 40), style)
	buttonLabel.SetColors(style.TextColor, rgui.ColorTransparent)

	var check *rgui.Checkbox
	check = rgui.NewCheckbox(rgui.V(24, 24), style, false, rgui.NewMessage(func(rgui.Event) {
		d.setStatus(fmt.Sprintf("checkbox: %v", check.Checked()))
	}))

	d.slider = rgui.NewSlider(rgui.V(300, 24), style, 0, 100, 10, 50, rgui.NewMessage(func(rgui.Event) {
		d.setStatus(fmt.Sprintf("slider: %d", d.slider.Value()))
	}))

	d.input = rgui.NewTextBox(rgui.V(300, 36), style, "", rgui.NewMessage(func(rgui.Event) {
		d.setStatus("text: " + d.input.Text())
	}))

	tip := rgui.NewLabel("wheel to scroll", rgui.V(160, 24), style)
	tipRef := t.Add(tip)
	hover := rgui.NewTooltipView(rgui.V(220, height-60), t, tipRef)

	if _, err := t.Attach(d.root, header); err != nil {
		return nil, err
	}
	bodyRef, err := t.Attach(d.root, body)
	if err != nil {
		return nil, err
	}
	controlsRef, err := t.Attach(bodyRef, controls)
	if err != nil {
		return nil, err
	}
	hoverRef, err := t.Attach(bodyRef, hover)
	if err != nil {
		return nil, err
	}
	listRef, err := t.Attach(hoverRef, list)
	if err != nil {
		return nil, err
	}
	buttonRef, err := t.Attach(controlsRef, button)
	if err != nil {
		return nil, err
	}
	if _, err := t.Attach(buttonRef, buttonLabel); err != nil {
		return nil, err
	}
	for _, w := range []rgui.Widget{d.counter, d.progress, check, d.slider, d.input, d.status} {
		if _, err := t.Attach(controlsRef, w); err != nil {
			return nil, err
		}
	}
	for i := 0; i < 40; i++ {
		row := rgui.NewLabel(fmt.Sprintf("row %02d", i), rgui.V(200, 28), style)
		if _, err := t.Attach(listRef, row); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *demo) click(n int) {
	d.clicks += n
	d.counter.SetText(fmt.Sprintf("clicks: %d", d.clicks))
	d.progress.SetProgress(float64(d.clicks % 101))
	log.WithField("clicks", d.clicks).Debug("button pressed")
}

func (d *demo) setStatus(s string) {
	d.status.SetText(s)
	log.Debug(s)
}
