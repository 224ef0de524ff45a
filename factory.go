package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
)

// Section names with a fixed meaning in stylesheets.
const (
	DefaultsSection   = "Defaults"   // Font and FontSize used when a section names none
	BlendModesSection = "BlendModes" // alias: built-in mode name
)

// Factory creates widgets from stylesheet sections. Keys a section leaves out keep the
// widget's defaults; asset load failures are logged once per asset and leave the widget
// without the asset.
//
// Composite widgets read their parts from sub-sections named "<section>.<Part>", for
// example "MainMenu.Play.Caption" for the caption of the button styled by "MainMenu.Play".
type Factory struct {
	Sheet  Stylesheet
	Assets AssetLoader
	Style  Style
	Logger *slog.Logger

	blends   map[string]BlendMode
	textures map[string]Texture
	fonts    map[fontKey]Font
	failed   map[string]error
}

type fontKey struct {
	path string
	size float32
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithStyle sets the defaults for keys sections leave out.
func WithStyle(s Style) FactoryOption {
	return func(f *Factory) { f.Style = s }
}

// WithFactoryLogger sets the logger asset failures are reported to.
func WithFactoryLogger(l *slog.Logger) FactoryOption {
	return func(f *Factory) { f.Logger = l }
}

// NewFactory creates a factory. assets may be nil, in which case no fonts or textures are
// loaded.
func NewFactory(sheet Stylesheet, assets AssetLoader, opts ...FactoryOption) *Factory {
	f := &Factory{
		Sheet:    sheet,
		Assets:   assets,
		Style:    DefaultStyle(),
		Logger:   defaultLogger,
		blends:   make(map[string]BlendMode),
		textures: make(map[string]Texture),
		fonts:    make(map[fontKey]Font),
		failed:   make(map[string]error),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.loadBlendAliases()
	return f
}

func (f *Factory) loadBlendAliases() {
	for _, alias := range f.Sheet.Keys(BlendModesSection) {
		target := f.Sheet.String(BlendModesSection, alias, "")
		m, ok := ParseBlendMode(target)
		if !ok {
			f.Logger.Warn("unknown blend mode alias target", "alias", alias, "mode", target)
			continue
		}
		f.blends[strings.ToLower(alias)] = m
	}
}

// BlendMode resolves the section's Blend key through the stylesheet's aliases and the
// built-in names.
func (f *Factory) BlendMode(section string, def BlendMode) BlendMode {
	name := f.Sheet.String(section, "Blend", "")
	if name == "" {
		return def
	}
	if m, ok := f.blends[strings.ToLower(name)]; ok {
		return m
	}
	if m, ok := ParseBlendMode(name); ok {
		return m
	}
	f.fail("blend:"+name, fmt.Errorf("section %q: unknown blend mode %q", section, name))
	return def
}

// Errors returns every asset or style failure reported so far, joined.
func (f *Factory) Errors() error {
	keys := make([]string, 0, len(f.failed))
	for k := range f.failed {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	errs := make([]error, 0, len(keys))
	for _, k := range keys {
		errs = append(errs, f.failed[k])
	}
	return errors.Join(errs...)
}

func (f *Factory) fail(key string, err error) {
	if _, seen := f.failed[key]; seen {
		return
	}
	f.failed[key] = err
	f.Logger.Error("style load failed", "key", key, "error", err)
}

func (f *Factory) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.Sheet.BaseDir(), p)
}

// Texture loads and caches a texture. Relative paths resolve against the stylesheet.
func (f *Factory) Texture(path string) Texture {
	if path == "" || f.Assets == nil {
		return nil
	}
	full := f.resolve(path)
	if tex, ok := f.textures[full]; ok {
		return tex
	}
	if _, failed := f.failed[full]; failed {
		return nil
	}
	tex, err := f.Assets.LoadTexture(full)
	if err != nil {
		f.fail(full, err)
		return nil
	}
	f.textures[full] = tex
	return tex
}

// Font loads and caches a font at a size. An empty path asks the loader for its built-in
// font.
func (f *Factory) Font(path string, size float32) Font {
	if f.Assets == nil {
		return nil
	}
	full := f.resolve(path)
	key := fontKey{path: full, size: size}
	if font, ok := f.fonts[key]; ok {
		return font
	}
	failKey := fmt.Sprintf("%s@%g", full, size)
	if _, failed := f.failed[failKey]; failed {
		return nil
	}
	font, err := f.Assets.LoadFont(full, size)
	if err != nil {
		f.fail(failKey, err)
		return nil
	}
	f.fonts[key] = font
	return font
}

func (f *Factory) fontFor(section string) (Font, float32) {
	size := f.Sheet.Float(section, "FontSize", f.Sheet.Float(DefaultsSection, "FontSize", f.Style.FontSize))
	path := f.Sheet.String(section, "Font", f.Sheet.String(DefaultsSection, "Font", ""))
	return f.Font(path, size), size
}

func (f *Factory) stateColors(section, prefix string, def StateColors) StateColors {
	s := f.Sheet
	if s.Has(section, prefix) {
		def = UniformColors(s.Color(section, prefix, def.Idle))
	}
	return StateColors{
		Idle:      s.Color(section, prefix+"Idle", def.Idle),
		Highlight: s.Color(section, prefix+"Highlight", def.Highlight),
		Pressed:   s.Color(section, prefix+"Pressed", def.Pressed),
	}
}

func (f *Factory) stateRects(section, prefix string, def StateRects) StateRects {
	s := f.Sheet
	return StateRects{
		Idle:      s.Rect(section, prefix+"Idle", def.Idle),
		Highlight: s.Rect(section, prefix+"Highlight", def.Highlight),
		Pressed:   s.Rect(section, prefix+"Pressed", def.Pressed),
	}
}

func (f *Factory) stateWidths(section, prefix string, def StateWidths) StateWidths {
	s := f.Sheet
	if s.Has(section, prefix) {
		w := s.Float(section, prefix, def.Idle)
		def = StateWidths{Idle: w, Highlight: w, Pressed: w}
	}
	return StateWidths{
		Idle:      s.Float(section, prefix+"Idle", def.Idle),
		Highlight: s.Float(section, prefix+"Highlight", def.Highlight),
		Pressed:   s.Float(section, prefix+"Pressed", def.Pressed),
	}
}

func sidesToRect(s Sides) Rect   { return Rect{X: s.Left, Y: s.Top, W: s.Right, H: s.Bottom} }
func sidesFromRect(r Rect) Sides { return Sides{Left: r.X, Top: r.Y, Right: r.W, Bottom: r.H} }

// ApplyElementStyle applies the keys shared by every element.
func (f *Factory) ApplyElementStyle(e *Element, section string) {
	s := f.Sheet
	e.Name = s.String(section, "Name", e.Name)
	e.SetOffset(s.Point(section, "Offset", e.offset))
	e.SetAnchor(s.Vec(section, "Anchor", e.anchor))
	e.SetOrigin(s.Vec(section, "Origin", e.origin))
	e.SetSize(Size{
		W: ParseAxisValue(s.String(section, "Width", ""), e.size.W),
		H: ParseAxisValue(s.String(section, "Height", ""), e.size.H),
	})
	e.SetPadding(sidesFromRect(s.Rect(section, "Padding", sidesToRect(e.padding))))
	e.SetMargin(sidesFromRect(s.Rect(section, "Margin", sidesToRect(e.margin))))

	e.Visible = s.Bool(section, "Visible", e.Visible)
	e.Interactive = s.Bool(section, "Interactive", e.Interactive)
	e.CaptureInput = s.Bool(section, "CaptureInput", e.CaptureInput)
	e.CopyParentState = s.Bool(section, "CopyParentState", e.CopyParentState)
	e.ForceActiveState = s.Bool(section, "ForceActiveState", e.ForceActiveState)
	e.Draggable = s.Bool(section, "Draggable", e.Draggable)
	e.LimitDragToParentArea = s.Bool(section, "LimitDragToParentArea", e.LimitDragToParentArea)
	e.DrawAsTopLayer = s.Bool(section, "DrawAsTopLayer", e.DrawAsTopLayer)
	e.AutoArrangeChildren = s.Bool(section, "AutoArrangeChildren", e.AutoArrangeChildren)
	e.ExemptFromAutoArrange = s.Bool(section, "ExemptFromAutoArrange", e.ExemptFromAutoArrange)
	if e.Draggable {
		e.Interactive = true
	}

	e.Colors = f.stateColors(section, "Color", e.Colors)
}

func (f *Factory) applyImage(img *Image, section string) {
	f.ApplyElementStyle(&img.Element, section)
	if tex := f.Texture(f.imagePath(section)); tex != nil {
		img.Texture = tex
	}
	img.Sources = f.stateRects(section, "Src", img.Sources)
	img.Blend = f.BlendMode(section, img.Blend)
	img.Rotation = f.Sheet.Float(section, "Rotation", img.Rotation)
}

// imagePath returns the section's Image key, falling back to Defaults.Image so untextured
// stylesheets can tint a shared white texture.
func (f *Factory) imagePath(section string) string {
	return f.Sheet.String(section, "Image", f.Sheet.String(DefaultsSection, "Image", ""))
}

func (f *Factory) applyText(t *Text, section string) {
	s := f.Sheet
	f.ApplyElementStyle(&t.Element, section)
	if s.Has(section, "Font") || s.Has(section, "FontSize") {
		t.Font, t.FontSize = f.fontFor(section)
	}
	t.SetText(s.String(section, "Text", t.text))
	if a, ok := ParseAlign(s.String(section, "Align", "")); ok {
		t.Align = a
	}
	t.WordWrap = s.Bool(section, "WordWrap", t.WordWrap)
	t.Rotation = s.Float(section, "Rotation", t.Rotation)
	t.OutlineColors = f.stateColors(section, "OutlineColor", t.OutlineColors)
	t.OutlineWidths = f.stateWidths(section, "OutlineWidth", t.OutlineWidths)
	t.Blend = f.BlendMode(section, t.Blend)
}

func (f *Factory) attach(parent *Element, n Node) {
	if parent != nil {
		parent.MustAddChild(n)
	}
}

func sectionName(section string) string {
	if i := strings.LastIndexByte(section, '.'); i >= 0 {
		return section[i+1:]
	}
	return section
}

// items returns the values of the "<section>.Items" sub-section in document order.
func (f *Factory) items(section string) []string {
	sub := subSection(section, "Items")
	keys := f.Sheet.Keys(sub)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, f.Sheet.String(sub, k, k))
	}
	return out
}

// NewElement creates a styled container.
func (f *Factory) NewElement(parent *Element, section string) *Element {
	e := NewElement(WithName(sectionName(section)))
	f.ApplyElementStyle(e, section)
	f.attach(parent, e)
	return e
}

// NewImage creates a styled image.
func (f *Factory) NewImage(parent *Element, section string) *Image {
	img := NewImage(nil, WithName(sectionName(section)))
	f.applyImage(img, section)
	f.attach(parent, img)
	return img
}

// NewText creates a styled text.
func (f *Factory) NewText(parent *Element, section string) *Text {
	font, size := f.fontFor(section)
	t := NewText("", font, size, WithName(sectionName(section)), WithColors(f.Style.TextColors))
	f.applyText(t, section)
	f.attach(parent, t)
	return t
}

// NewRectangle creates a styled rectangle.
func (f *Factory) NewRectangle(parent *Element, section string) *Rectangle {
	r := NewRectangle(true, WithName(sectionName(section)))
	f.ApplyElementStyle(&r.Element, section)
	r.Filled = f.Sheet.Bool(section, "Filled", r.Filled)
	r.Thickness = f.Sheet.Float(section, "Thickness", r.Thickness)
	r.Blend = f.BlendMode(section, r.Blend)
	f.attach(parent, r)
	return r
}

func (f *Factory) applyCaption(t *Text, section string) {
	t.Colors = f.Style.TextColors
	t.SetText(f.Sheet.String(section, "Text", t.text))
	f.applyText(t, subSection(section, "Caption"))
}

// NewButton creates a styled button. The caption comes from the section's Text key and is
// styled by "<section>.Caption".
func (f *Factory) NewButton(parent *Element, section string) *Button {
	font, size := f.fontFor(section)
	b := NewButton("", font, size, nil, WithName(sectionName(section)), WithColors(f.Style.ButtonColors))
	f.applyButton(b, section)
	f.attach(parent, b)
	return b
}

func (f *Factory) applyButton(b *Button, section string) {
	f.applyImage(&b.Image, section)
	f.applyCaption(b.Caption, section)
}

func (f *Factory) applyCheckBox(c *CheckBox, section string) {
	f.applyImage(&c.Image, section)
	c.CheckedSources = f.stateRects(section, "CheckedSrc", c.CheckedSources)
	c.AllowUncheck = f.Sheet.Bool(section, "AllowUncheck", c.AllowUncheck)
	c.checked = f.Sheet.Bool(section, "Checked", c.checked)
	f.applyCaption(c.Caption, section)
}

// NewCheckBox creates a styled check box.
func (f *Factory) NewCheckBox(parent *Element, section string) *CheckBox {
	font, size := f.fontFor(section)
	c := NewCheckBox("", font, size, nil, WithName(sectionName(section)))
	f.applyCheckBox(c, section)
	f.attach(parent, c)
	return c
}

// NewRadioButton creates a styled radio button. A radio button styled Checked unchecks
// siblings added before it.
func (f *Factory) NewRadioButton(parent *Element, section string) *RadioButton {
	font, size := f.fontFor(section)
	r := NewRadioButton("", font, size, nil, WithName(sectionName(section)))
	f.applyCheckBox(&r.CheckBox, section)
	r.AllowUncheck = false
	checked := r.checked
	r.checked = false
	f.attach(parent, r)
	if checked {
		r.SetValue(true)
	}
	return r
}

func (f *Factory) applySlider(s *Slider, section string) {
	sh := f.Sheet
	s.Colors = f.Style.ScrollbarColors
	s.Handle.Colors = f.Style.HandleColors
	f.applyImage(&s.Image, section)
	f.applyImage(s.Handle, subSection(section, "Handle"))
	s.Step = sh.Float(section, "Step", s.Step)
	s.SetRange(sh.Float(section, "MinValue", s.minValue), sh.Float(section, "MaxValue", s.maxValue))
	s.SetValue(sh.Float(section, "Value", s.value))
}

// NewSlider creates a styled horizontal slider. The handle is styled by "<section>.Handle".
func (f *Factory) NewSlider(parent *Element, section string) *Slider {
	s := NewSlider(nil, nil, WithName(sectionName(section)))
	f.applySlider(s, section)
	f.attach(parent, s)
	return s
}

// NewVerticalScrollbar creates a styled scrollbar.
func (f *Factory) NewVerticalScrollbar(parent *Element, section string) *VerticalScrollbar {
	sb := NewVerticalScrollbar(nil, nil, WithName(sectionName(section)))
	f.applyScrollbar(sb, section)
	f.attach(parent, sb)
	return sb
}

func (f *Factory) applyScrollbar(sb *VerticalScrollbar, section string) {
	f.applySlider(&sb.Slider, section)
	sb.MinHandleLength = f.Sheet.Int(section, "MinHandleLength", sb.MinHandleLength)
}

func (f *Factory) applyList(l *List, section string) {
	s := f.Sheet
	f.ApplyElementStyle(&l.Element, section)
	l.LineHeight = s.Int(section, "LineHeight", l.LineHeight)
	l.ScrollbarWidth = s.Int(section, "ScrollbarWidth", f.Style.ScrollbarWidth)
	l.TextPadding = s.Int(section, "TextPadding", f.Style.TextPadding)

	row := subSection(section, "Row")
	l.RowTexture = f.Texture(f.imagePath(row))
	l.RowSources = f.stateRects(row, "Src", l.RowSources)
	l.RowColors = f.stateColors(row, "Color", f.Style.RowColors)
	l.TextColors = f.stateColors(subSection(section, "RowText"), "Color", f.Style.RowTextColors)

	l.Background.Colors = f.Style.PanelColors
	f.applyImage(&l.Background.Image, subSection(section, "Background"))
	f.applyScrollbar(l.Scrollbar, subSection(section, "Scrollbar"))

	if items := f.items(section); len(items) > 0 {
		l.SetItems(items)
	}
	if v := s.String(section, "Selected", ""); v != "" {
		l.SelectValue(v)
	}
	l.Refresh()
}

// NewList creates a styled list. Parts: "<section>.Background", ".Scrollbar",
// ".Scrollbar.Handle", ".Row", ".RowText" and ".Items".
func (f *Factory) NewList(parent *Element, section string) *List {
	font, size := f.fontFor(section)
	l := NewList(font, size, WithName(sectionName(section)))
	f.applyList(l, section)
	f.attach(parent, l)
	return l
}

// NewDropDown creates a styled dropdown. Parts: "<section>.Header" (a button) and
// "<section>.List" (a list), with items in "<section>.Items".
func (f *Factory) NewDropDown(parent *Element, section string) *DropDown {
	s := f.Sheet
	font, size := f.fontFor(section)
	d := NewDropDown(font, size, s.Int(section, "ListHeight", f.Style.ListHeight), WithName(sectionName(section)))
	f.ApplyElementStyle(&d.Element, section)
	d.CloseOnHoverOut = s.Bool(section, "CloseOnHoverOut", d.CloseOnHoverOut)
	d.Placeholder = s.String(section, "Placeholder", d.Placeholder)

	d.Header.Colors = f.Style.ButtonColors
	f.applyButton(d.Header, subSection(section, "Header"))
	f.applyList(d.List, subSection(section, "List"))
	if items := f.items(section); len(items) > 0 {
		d.SetItems(items)
	}
	if v := s.String(section, "Selected", ""); v != "" {
		d.SelectValue(v)
	}
	d.syncHeader()
	f.attach(parent, d)
	return d
}

// NewTextInput creates a styled text input. Parts: "<section>.Value", ".Placeholder" and
// ".Caret".
func (f *Factory) NewTextInput(parent *Element, section string) *TextInput {
	s := f.Sheet
	font, size := f.fontFor(section)
	t := NewTextInput(font, size, nil, WithName(sectionName(section)), WithColors(f.Style.InputColors))
	f.applyImage(&t.Image, section)
	t.Filter = CharFilter{
		NumbersOnly:  s.Bool(section, "NumbersOnly", false),
		AlphaOnly:    s.Bool(section, "AlphaOnly", false),
		UpperCase:    s.Bool(section, "UpperCase", false),
		LowerCase:    s.Bool(section, "LowerCase", false),
		NoLineBreaks: s.Bool(section, "NoLineBreaks", true),
		MaxLength:    s.Int(section, "MaxLength", 0),
	}
	t.BlinkInterval = s.Float(section, "BlinkInterval", t.BlinkInterval)
	t.Value.Colors = f.Style.TextColors
	f.applyText(t.Value, subSection(section, "Value"))
	t.Placeholder.SetText(s.String(section, "Placeholder", ""))
	f.applyText(t.Placeholder, subSection(section, "Placeholder"))
	f.applyText(t.Caret, subSection(section, "Caret"))
	if v := s.String(section, "Text", ""); v != "" {
		t.Value.SetText(t.Filter.Apply("", v))
	}
	f.attach(parent, t)
	return t
}

// NewWindow creates a styled window. A Title key adds a title styled by "<section>.Title";
// Closable adds a close button styled by "<section>.Close".
func (f *Factory) NewWindow(parent *Element, section string) *Window {
	s := f.Sheet
	w := NewWindow(nil, WithName(sectionName(section)), WithColors(f.Style.PanelColors))
	f.applyImage(&w.Image, section)
	if s.Has(section, "Title") {
		titleSection := subSection(section, "Title")
		font, size := f.fontFor(titleSection)
		if !s.Has(titleSection, "Font") && !s.Has(titleSection, "FontSize") {
			font, size = f.fontFor(section)
		}
		title := w.SetTitle(s.String(section, "Title", ""), font, size)
		title.Colors = f.Style.TextColors
		f.applyText(title, titleSection)
	}
	if s.Bool(section, "Closable", false) {
		w.SetCloseButton(f.NewButton(nil, subSection(section, "Close")))
	}
	f.attach(parent, w)
	return w
}
