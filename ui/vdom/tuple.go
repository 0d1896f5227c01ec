package vdom

import "github.com/PoignardAzur/panoramix-sub000/ui/widget"

// Tuple groups a fixed sequence of children. Its widgets are the
// concatenation of its children's widgets, and its state holds one
// entry per child.
//
// If several children report an event in the same pass, only the first
// one is reported, as a ChildEvent; the input of later children is
// dropped with the rest of the pass.
func Tuple(children ...Element) Element {
	els := make([]Element, len(children))
	for i, c := range children {
		els[i] = orEmpty(c)
	}
	return &tuple{children: els}
}

type tuple struct {
	children []Element
}

type tupleNode struct {
	children []Node
}

func (t *tuple) Build(prev State) (Node, State) {
	ps := As[*TupleState](prev)
	node := &tupleNode{children: make([]Node, len(t.children))}
	st := &TupleState{Children: make([]State, len(t.children))}
	for i, c := range t.children {
		var p State
		if ps != nil && i < len(ps.Children) {
			p = ps.Children[i]
		}
		node.children[i], st.Children[i] = c.Build(p)
	}
	return node, st
}

func (n *tupleNode) InitTree(cx *widget.Ctx) widget.Seq {
	g := &widget.Group{Items: make([]widget.Seq, len(n.children))}
	for i, c := range n.children {
		g.Items[i] = c.InitTree(cx)
	}
	return g
}

func (n *tupleNode) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := MustNode[*tupleNode](prev)
	g := MustSeq[*widget.Group](seq)
	items := make([]widget.Seq, len(n.children))
	for i, c := range n.children {
		if i < len(p.children) {
			items[i] = c.Reconcile(p.children[i], g.Items[i], cx)
		} else {
			items[i] = c.InitTree(cx)
		}
	}
	g.Items = items
	return g
}

func (n *tupleNode) ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	ts := As[*TupleState](st)
	g := MustSeq[*widget.Group](seq)
	for i, c := range n.children {
		if ev, ok := c.ProcessEvent(ts.Children[i], g.Items[i], cx); ok {
			return ChildEvent{Index: i, Event: ev}, true
		}
	}
	return nil, false
}
