/*
Package ui provides a retained-mode GUI for games: a tree of elements that is laid out
lazily, updated and hit-tested once per frame, and drawn through a small Renderer
interface implemented by the backends.

# Overview

Every widget embeds Element, directly or through another widget. Elements are positioned
relative to their parent's padded region:

	pos = region + floor(region * Anchor) + Offset - floor(size * Origin)

Sizes are pixels or a percentage of the parent (Px, Pct). Positions are cached and only
recomputed when an element, one of its ancestors or the viewport changes.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	g := ui.New(renderer, ui.WithClipboard(opengl.GLFWClipboard{Window: window}))

	play := ui.NewButton("Play", renderer.BuiltinFont(), 16, nil,
	    ui.WithPxSize(160, 32), ui.WithAnchor(0.5, 0.5), ui.WithOrigin(0.5, 0.5))
	play.OnMouseReleased = func(_ ui.Node, b ui.MouseButton) {
	    if b == ui.MouseButtonPrimary {
	        startGame()
	    }
	}
	g.Root().MustAddChild(play)

	for !window.ShouldClose() {
	    g.Update(input.Poll(dt), dt)
	    g.Draw()
	    renderer.Flush()
	}

Trees can also be built from a stylesheet (see package style) with a Factory:

	f := ui.NewFactory(sheet, renderer, ui.WithStyle(ui.GTAStyle()))
	menu, err := f.Build(g.Root(), "Settings")

# Input

GUI.Update walks the tree twice: first the elements drawn as top layer (open dropdown
lists), then the rest. Children are visited before their parent and later siblings before
earlier ones, so whatever is drawn on top is hit first. An element with CaptureInput stops
elements behind it from being hit for the rest of the frame.

Interactive elements move through Idle, Highlighted and PressedDown and report the
transitions through OnMouseEntered, OnMouseLeft, OnMousePressed and OnMouseReleased.

# Keyboard

TextInput, while focused:

	Backspace      delete the last character (repeats while held)
	Ctrl+V         paste
	Return         submit and unfocus
	Escape         unfocus

An open DropDown closes on Escape.
*/
package ui
