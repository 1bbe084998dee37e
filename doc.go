/*
Package rgui provides a retained-mode GUI engine with pluggable renderers.

# Overview

Widgets live in a Tree and are addressed by generational Refs, so a parent
holding the handle of a released child simply skips it. Each widget keeps
its own state and produces a recipe: a list of draw instructions that is
only regenerated when the widget is marked dirty. Recipes are stored in a
Collection ordered by widget ID, which is also the paint order. Overlays
such as tooltips get IDs from a second tier that always paints above the
regular tree.

# Quick Start

	tree := rgui.NewTree()
	style := rgui.GTAStyle()
	root := tree.Add(rgui.NewRoot(rgui.V(800, 600), rgui.Box(rgui.Vertical), style))

	label := rgui.NewLabel("0", rgui.V(200, 30), style)
	tree.Attach(root, label)

	clicks := 0
	tree.Attach(root, rgui.NewButton(rgui.V(200, 40), rgui.NoLayout(),
	    rgui.NewMessage(func(rgui.Event) {
	        clicks++
	        label.SetText(strconv.Itoa(clicks))
	    }), nil))

	win, _ := opengl.NewWindow("demo", 800, 600, rgui.DefaultDisplayOptions())
	r, _ := opengl.NewRenderer(800, 600)
	err := rgui.New(win, r, tree, root).Run(ctx)

# Frame

Engine.RunFrame does, in order:

 1. Poll the display through the renderer and queue the events.
 2. Dispatch every event to the root, which forwards it down the tree.
    Global shortcuts registered in Engine.Actions consume key presses first.
 3. Rebuild dirty widgets, laying children out by their parent's Layout.
 4. Refresh overlays.
 5. Draw the collection.
 6. Run the messages widgets emitted while handling events.

Messages run after drawing, so state they change shows up next frame.

# Layouts

	NoLayout()            children stacked at the parent's position
	Box(axis)             children placed one after another along axis
	Grid(axis, cross)     equal cells, cross cells per line
	Sliver(axis)          scrolled list; children outside the view are culled

A child is never larger than the space its parent offers.

# Backends

backend/opengl draws through GLFW and OpenGL 4.1, backend/raylib through
raylib, and backend/software rasterizes on the CPU. The software backend
also provides Canvas, a headless Display for tests and screenshots.

# Keyboard Shortcuts Reference

TextBox, while focused:

	Backspace        Delete the last character
	Enter, Escape    Leave the text box
	Ctrl+V           Paste the first line of the clipboard
	Ctrl+C           Copy the whole text
	Ctrl+Z           Undo
	Ctrl+Y           Redo (also Ctrl+Shift+Z)

On macOS the Command key works in place of Ctrl.

# Logging

The engine logs through log/slog. SetVerbose(true) enables debug output for
ID assignment, overlays, culling and resizes; WithLogger routes an engine's
logs elsewhere.
*/
package rgui
