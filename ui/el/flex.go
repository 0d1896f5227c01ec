package el

import (
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// FlexElement lays out the widgets of its child along an axis. Its state
// and events are those of the child.
type FlexElement struct {
	common
	axis  widget.Axis
	child vdom.Element
}

// Row lays children out horizontally.
func Row(children ...vdom.Element) *FlexElement {
	return RowOf(vdom.Tuple(children...))
}

// RowOf lays out the widgets of child horizontally; child is typically
// a vdom.List.
func RowOf(child vdom.Element) *FlexElement {
	return &FlexElement{axis: widget.Row, child: child}
}

// Column lays children out vertically.
func Column(children ...vdom.Element) *FlexElement {
	return ColumnOf(vdom.Tuple(children...))
}

// ColumnOf lays out the widgets of child vertically.
func ColumnOf(child vdom.Element) *FlexElement {
	return &FlexElement{axis: widget.Column, child: child}
}

// ID reserves the widget id of the container.
func (f *FlexElement) ID(id widget.ID) *FlexElement {
	f.id = id
	return f
}

// Flex sets the flex weight of the container within its parent.
func (f *FlexElement) Flex(n int) *FlexElement {
	f.flex = n
	return f
}

func (f *FlexElement) Build(prev vdom.State) (vdom.Node, vdom.State) {
	child := f.child
	if child == nil {
		child = vdom.Empty()
	}
	node, st := child.Build(prev)
	return &flexNode{common: f.common, axis: f.axis, child: node}, st
}

type flexNode struct {
	common
	axis  widget.Axis
	child vdom.Node
}

func (n *flexNode) InitTree(cx *widget.Ctx) widget.Seq {
	content := n.child.InitTree(cx)
	return n.init(widget.NewFlex(cx.Alloc(n.id), n.axis, content), cx)
}

// Reconcile replaces the flex widget when the axis or the id changed; a
// backend has no way to turn a row into a column in place.
func (n *flexNode) Reconcile(prev vdom.Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := vdom.MustNode[*flexNode](prev)
	w := vdom.MustWidget[*widget.Flex](seq)
	content := n.child.Reconcile(p.child, w.Content(), cx)
	if n.axis != p.axis || n.id != p.id {
		return n.init(widget.NewFlex(cx.Alloc(n.id), n.axis, content), cx)
	}
	cx.Changed(w, w.SetContent(content))
	n.update(p.common, w, cx)
	return seq
}

func (n *flexNode) ProcessEvent(st vdom.State, seq widget.Seq, cx *widget.Ctx) (vdom.Event, bool) {
	return n.child.ProcessEvent(st, vdom.MustWidget[*widget.Flex](seq).Content(), cx)
}
