// Package el provides the leaf elements and flex containers components
// are written with.
//
// Leaves report one event per delivered action: a Button reports
// ButtonClicked, a TextBox TextChanged and a Checkbox Toggled. A
// callback set with OnClick, OnChange or OnToggle runs when the event is
// harvested, before the event travels up the tree. Callbacks usually
// capture the local state pointer of the enclosing component.
//
// Every leaf accepts a reserved widget id (ID) so that tests can address
// it, and a flex weight (Flex) passed on to the backend. Changing the id
// of a position between renders replaces its widget.
package el

import (
	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// ButtonClicked is reported by a clicked Button.
type ButtonClicked struct{}

// TextChanged is reported by a TextBox the user typed into.
type TextChanged struct {
	Text string
}

// Toggled is reported by a Checkbox the user toggled.
type Toggled struct {
	Checked bool
}

// common holds the construction parameters shared by all leaves.
type common struct {
	id   widget.ID
	flex int
}

type flexSetter interface {
	SetFlex(n int) bool
}

func (c common) init(w interface {
	widget.Widget
	flexSetter
}, cx *widget.Ctx) widget.Seq {
	w.SetFlex(c.flex)
	cx.Created(w)
	return widget.One{W: w}
}

func (c common) update(prev common, w interface {
	widget.Widget
	flexSetter
}, cx *widget.Ctx) {
	if c.flex != prev.flex {
		cx.Changed(w, w.SetFlex(c.flex))
	}
}

// pending pops the action queued for w if it has the given kind.
func pending(cx *widget.Ctx, w widget.Widget, kind string) bool {
	a, ok := cx.Dequeue(w.ID())
	return ok && a.Kind == kind
}

// LabelElement shows text.
type LabelElement struct {
	common
	text string
}

// Label returns a text label.
func Label(text string) *LabelElement { return &LabelElement{text: text} }

// ID reserves the widget id of the label.
func (l *LabelElement) ID(id widget.ID) *LabelElement {
	l.id = id
	return l
}

// Flex sets the flex weight of the label.
func (l *LabelElement) Flex(n int) *LabelElement {
	l.flex = n
	return l
}

func (l *LabelElement) Build(vdom.State) (vdom.Node, vdom.State) {
	return &labelNode{*l}, nil
}

type labelNode struct {
	LabelElement
}

func (n *labelNode) InitTree(cx *widget.Ctx) widget.Seq {
	return n.init(widget.NewLabel(cx.Alloc(n.id), n.text), cx)
}

func (n *labelNode) Reconcile(prev vdom.Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := vdom.MustNode[*labelNode](prev)
	if n.id != p.id {
		return n.InitTree(cx)
	}
	w := vdom.MustWidget[*widget.Label](seq)
	if n.text != p.text {
		cx.Changed(w, w.SetText(n.text))
	}
	n.update(p.common, w, cx)
	return seq
}

func (n *labelNode) ProcessEvent(vdom.State, widget.Seq, *widget.Ctx) (vdom.Event, bool) {
	return nil, false
}

// ButtonElement is a clickable button.
type ButtonElement struct {
	common
	text    string
	onClick func()
}

// Button returns a button showing text.
func Button(text string) *ButtonElement { return &ButtonElement{text: text} }

// ID reserves the widget id of the button.
func (b *ButtonElement) ID(id widget.ID) *ButtonElement {
	b.id = id
	return b
}

// Flex sets the flex weight of the button.
func (b *ButtonElement) Flex(n int) *ButtonElement {
	b.flex = n
	return b
}

// OnClick sets the callback run when the button is clicked.
func (b *ButtonElement) OnClick(f func()) *ButtonElement {
	b.onClick = f
	return b
}

func (b *ButtonElement) Build(vdom.State) (vdom.Node, vdom.State) {
	return &buttonNode{*b}, nil
}

type buttonNode struct {
	ButtonElement
}

func (n *buttonNode) InitTree(cx *widget.Ctx) widget.Seq {
	return n.init(widget.NewButton(cx.Alloc(n.id), n.text), cx)
}

func (n *buttonNode) Reconcile(prev vdom.Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := vdom.MustNode[*buttonNode](prev)
	if n.id != p.id {
		return n.InitTree(cx)
	}
	w := vdom.MustWidget[*widget.Button](seq)
	if n.text != p.text {
		cx.Changed(w, w.SetText(n.text))
	}
	n.update(p.common, w, cx)
	return seq
}

func (n *buttonNode) ProcessEvent(_ vdom.State, seq widget.Seq, cx *widget.Ctx) (vdom.Event, bool) {
	if !pending(cx, vdom.MustWidget[*widget.Button](seq), proto.KindClick) {
		return nil, false
	}
	if n.onClick != nil {
		n.onClick()
	}
	return ButtonClicked{}, true
}

// TextBoxElement is a single-line text input.
type TextBoxElement struct {
	common
	text     string
	onChange func(text string)
}

// TextBox returns a text input. text is written to the widget when it is
// created and whenever it differs from the previous render's text; in
// between, the widget keeps what the user typed.
func TextBox(text string) *TextBoxElement { return &TextBoxElement{text: text} }

// ID reserves the widget id of the text box.
func (t *TextBoxElement) ID(id widget.ID) *TextBoxElement {
	t.id = id
	return t
}

// Flex sets the flex weight of the text box.
func (t *TextBoxElement) Flex(n int) *TextBoxElement {
	t.flex = n
	return t
}

// OnChange sets the callback run with the new text after the user typed.
func (t *TextBoxElement) OnChange(f func(text string)) *TextBoxElement {
	t.onChange = f
	return t
}

func (t *TextBoxElement) Build(vdom.State) (vdom.Node, vdom.State) {
	return &textBoxNode{*t}, nil
}

type textBoxNode struct {
	TextBoxElement
}

func (n *textBoxNode) InitTree(cx *widget.Ctx) widget.Seq {
	return n.init(widget.NewTextBox(cx.Alloc(n.id), n.text), cx)
}

func (n *textBoxNode) Reconcile(prev vdom.Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := vdom.MustNode[*textBoxNode](prev)
	if n.id != p.id {
		return n.InitTree(cx)
	}
	w := vdom.MustWidget[*widget.TextBox](seq)
	if n.text != p.text {
		cx.Changed(w, w.SetText(n.text))
	}
	n.update(p.common, w, cx)
	return seq
}

func (n *textBoxNode) ProcessEvent(_ vdom.State, seq widget.Seq, cx *widget.Ctx) (vdom.Event, bool) {
	w := vdom.MustWidget[*widget.TextBox](seq)
	if !pending(cx, w, proto.KindInput) {
		return nil, false
	}
	if n.onChange != nil {
		n.onChange(w.Text())
	}
	return TextChanged{Text: w.Text()}, true
}

// CheckboxElement is a labelled toggle.
type CheckboxElement struct {
	common
	text     string
	checked  bool
	onToggle func(checked bool)
}

// Checkbox returns a checkbox.
func Checkbox(text string, checked bool) *CheckboxElement {
	return &CheckboxElement{text: text, checked: checked}
}

// ID reserves the widget id of the checkbox.
func (c *CheckboxElement) ID(id widget.ID) *CheckboxElement {
	c.id = id
	return c
}

// Flex sets the flex weight of the checkbox.
func (c *CheckboxElement) Flex(n int) *CheckboxElement {
	c.flex = n
	return c
}

// OnToggle sets the callback run with the new state after a toggle.
func (c *CheckboxElement) OnToggle(f func(checked bool)) *CheckboxElement {
	c.onToggle = f
	return c
}

func (c *CheckboxElement) Build(vdom.State) (vdom.Node, vdom.State) {
	return &checkboxNode{*c}, nil
}

type checkboxNode struct {
	CheckboxElement
}

func (n *checkboxNode) InitTree(cx *widget.Ctx) widget.Seq {
	return n.init(widget.NewCheckbox(cx.Alloc(n.id), n.text, n.checked), cx)
}

func (n *checkboxNode) Reconcile(prev vdom.Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := vdom.MustNode[*checkboxNode](prev)
	if n.id != p.id {
		return n.InitTree(cx)
	}
	w := vdom.MustWidget[*widget.Checkbox](seq)
	if n.text != p.text {
		cx.Changed(w, w.SetText(n.text))
	}
	if n.checked != p.checked {
		cx.Changed(w, w.SetChecked(n.checked))
	}
	n.update(p.common, w, cx)
	return seq
}

func (n *checkboxNode) ProcessEvent(_ vdom.State, seq widget.Seq, cx *widget.Ctx) (vdom.Event, bool) {
	w := vdom.MustWidget[*widget.Checkbox](seq)
	if !pending(cx, w, proto.KindToggle) {
		return nil, false
	}
	if n.onToggle != nil {
		n.onToggle(w.Checked())
	}
	return Toggled{Checked: w.Checked()}, true
}
