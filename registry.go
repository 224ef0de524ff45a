package ui

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownKind is returned by Factory.Build for a section whose Type is not registered.
var ErrUnknownKind = errors.New("ui: unknown element type")

// BuildFunc creates an element of one kind from a stylesheet section and attaches it to
// parent when parent is non-nil.
type BuildFunc func(f *Factory, parent *Element, section string) Node

// kindRegistry stores the builders Factory.Build dispatches on.
var kindRegistry = map[string]BuildFunc{
	"Element":           func(f *Factory, p *Element, s string) Node { return f.NewElement(p, s) },
	"Image":             func(f *Factory, p *Element, s string) Node { return f.NewImage(p, s) },
	"Text":              func(f *Factory, p *Element, s string) Node { return f.NewText(p, s) },
	"Rectangle":         func(f *Factory, p *Element, s string) Node { return f.NewRectangle(p, s) },
	"Button":            func(f *Factory, p *Element, s string) Node { return f.NewButton(p, s) },
	"CheckBox":          func(f *Factory, p *Element, s string) Node { return f.NewCheckBox(p, s) },
	"RadioButton":       func(f *Factory, p *Element, s string) Node { return f.NewRadioButton(p, s) },
	"Slider":            func(f *Factory, p *Element, s string) Node { return f.NewSlider(p, s) },
	"VerticalScrollbar": func(f *Factory, p *Element, s string) Node { return f.NewVerticalScrollbar(p, s) },
	"List":              func(f *Factory, p *Element, s string) Node { return f.NewList(p, s) },
	"DropDown":          func(f *Factory, p *Element, s string) Node { return f.NewDropDown(p, s) },
	"TextInput":         func(f *Factory, p *Element, s string) Node { return f.NewTextInput(p, s) },
	"Window":            func(f *Factory, p *Element, s string) Node { return f.NewWindow(p, s) },
}

// RegisterKind registers a builder for a custom element type, so stylesheets can name it
// in a Type key. Registering an existing name replaces it.
//
// Example:
//
//	ui.RegisterKind("Minimap", func(f *ui.Factory, parent *ui.Element, section string) ui.Node {
//	    m := NewMinimap()
//	    f.ApplyElementStyle(m.AsElement(), section)
//	    if parent != nil {
//	        parent.MustAddChild(m)
//	    }
//	    return m
//	})
func RegisterKind(name string, fn BuildFunc) {
	kindRegistry[name] = fn
}

// LookupKind retrieves a builder by name.
// Returns nil if the kind is not registered.
func LookupKind(name string) BuildFunc {
	return kindRegistry[name]
}

// UnregisterKind removes a kind from the registry.
func UnregisterKind(name string) {
	delete(kindRegistry, name)
}

// ListKinds returns the registered kind names, sorted.
func ListKinds() []string {
	names := make([]string, 0, len(kindRegistry))
	for name := range kindRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build creates the element described by section, dispatching on its Type key, then builds
// its children. Children are listed in the "<section>.Children" sub-section, one key per
// child with the child's section name as value (an empty value means the key itself).
func (f *Factory) Build(parent *Element, section string) (Node, error) {
	kind := f.Sheet.String(section, "Type", "")
	fn := LookupKind(kind)
	if fn == nil {
		return nil, fmt.Errorf("build %q: type %q: %w", section, kind, ErrUnknownKind)
	}
	n := fn(f, parent, section)

	children := subSection(section, "Children")
	for _, key := range f.Sheet.Keys(children) {
		child := f.Sheet.String(children, key, "")
		if child == "" {
			child = key
		}
		if _, err := f.Build(n.AsElement(), child); err != nil {
			return n, fmt.Errorf("build %q: %w", section, err)
		}
	}
	f.Logger.Debug("built element", "section", section, "type", kind)
	return n, nil
}
