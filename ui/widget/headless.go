package widget

import (
	"strconv"

	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
)

// Interactive widgets accept delivered input.
type Interactive interface {
	Widget
	// Deliver applies the effect of a to the widget and reports whether
	// the action is meaningful for it.
	Deliver(a *proto.Action) bool
}

type base struct {
	id   ID
	flex int
}

func (b *base) ID() ID { return b.id }
func (b *base) Children() []Widget { return nil }
func (b *base) Flex() int { return b.flex }
func (b *base) SetFlex(n int) bool { return set(&b.flex, n) }
func (b *base) props(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	if b.flex != 0 {
		m["flex"] = strconv.Itoa(b.flex)
	}
	return m
}

func set[T comparable](p *T, v T) bool {
	if *p == v {
		return false
	}
	*p = v
	return true
}

// Label shows a line of text.
type Label struct {
	base
	text string
}

func NewLabel(id ID, text string) *Label {
	return &Label{base: base{id: id}, text: text}
}

func (l *Label) Kind() string { return "label" }
func (l *Label) Text() string { return l.text }
func (l *Label) SetText(s string) bool { return set(&l.text, s) }
func (l *Label) Props() map[string]string { return l.props("text", l.text) }
func (l *Label) Paint(p *Painter) { p.Word(l.text) }

// Button is a clickable label.
type Button struct {
	base
	text string
}

func NewButton(id ID, text string) *Button {
	return &Button{base: base{id: id}, text: text}
}

func (b *Button) Kind() string { return "button" }
func (b *Button) Text() string { return b.text }
func (b *Button) SetText(s string) bool { return set(&b.text, s) }
func (b *Button) Props() map[string]string { return b.props("text", b.text) }
func (b *Button) Paint(p *Painter) { p.Word("[ " + b.text + " ]") }

func (b *Button) Deliver(a *proto.Action) bool {
	return a.Kind == proto.KindClick
}

// TextBox is a single-line text input. The text it shows is owned by the
// widget: typing replaces it, and it is only overwritten from the tree
// when the described text changes between two renders.
type TextBox struct {
	base
	text string
}

func NewTextBox(id ID, text string) *TextBox {
	return &TextBox{base: base{id: id}, text: text}
}

func (t *TextBox) Kind() string { return "textbox" }
func (t *TextBox) Text() string { return t.text }
func (t *TextBox) SetText(s string) bool { return set(&t.text, s) }
func (t *TextBox) Props() map[string]string { return t.props("text", t.text) }
func (t *TextBox) Paint(p *Painter) { p.Word("<" + t.text + "_>") }

func (t *TextBox) Deliver(a *proto.Action) bool {
	if a.Kind != proto.KindInput {
		return false
	}
	t.text = a.KVs["text"]
	return true
}

// Checkbox is a labelled toggle.
type Checkbox struct {
	base
	text    string
	checked bool
}

func NewCheckbox(id ID, text string, checked bool) *Checkbox {
	return &Checkbox{base: base{id: id}, text: text, checked: checked}
}

func (c *Checkbox) Kind() string { return "checkbox" }
func (c *Checkbox) Text() string { return c.text }
func (c *Checkbox) Checked() bool { return c.checked }
func (c *Checkbox) SetText(s string) bool { return set(&c.text, s) }
func (c *Checkbox) SetChecked(v bool) bool { return set(&c.checked, v) }

func (c *Checkbox) Props() map[string]string {
	return c.props("text", c.text, "checked", strconv.FormatBool(c.checked))
}

func (c *Checkbox) Paint(p *Painter) {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	p.Word(mark + " " + c.text)
}

// Deliver toggles the box. A value of "1" or "0" sets the state
// explicitly; without a value the state is flipped.
func (c *Checkbox) Deliver(a *proto.Action) bool {
	if a.Kind != proto.KindToggle {
		return false
	}
	switch a.KVs["value"] {
	case "1":
		c.checked = true
	case "0":
		c.checked = false
	default:
		c.checked = !c.checked
	}
	return true
}

// Axis is the main axis of a Flex.
type Axis int

const (
	Column Axis = iota
	Row
)

func (a Axis) String() string {
	if a == Row {
		return "row"
	}
	return "column"
}

// Flex lays out a widget sequence along an axis. The layout arithmetic
// itself belongs to a real backend.
type Flex struct {
	base
	axis    Axis
	content Seq
	// shown is the child list as of the last SetContent. Structural
	// sequences are updated in place, so content alone cannot tell
	// what changed.
	shown []Widget
}

func NewFlex(id ID, axis Axis, content Seq) *Flex {
	return &Flex{base: base{id: id}, axis: axis, content: content, shown: Flatten(content)}
}

func (f *Flex) Kind() string { return "flex" }
func (f *Flex) Axis() Axis { return f.axis }
func (f *Flex) Content() Seq { return f.content }
func (f *Flex) Children() []Widget { return Flatten(f.content) }
func (f *Flex) Props() map[string]string { return f.props("axis", f.axis.String()) }

// SetContent replaces the child sequence and reports whether the list
// of child widgets differs from the one seen by the previous call (or
// by NewFlex), even if seq is the same sequence mutated in place.
func (f *Flex) SetContent(seq Seq) bool {
	old, cur := f.shown, Flatten(seq)
	f.content, f.shown = seq, cur
	if len(old) != len(cur) {
		return true
	}
	for i := range old {
		if old[i] != cur[i] {
			return true
		}
	}
	return false
}

func (f *Flex) Paint(p *Painter) {
	if f.axis == Row {
		for _, w := range f.Children() {
			w.Paint(p)
		}
		return
	}
	p.Break()
	p.Indent()
	for _, w := range f.Children() {
		w.Paint(p)
		p.Break()
	}
	p.Dedent()
}
