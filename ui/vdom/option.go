package vdom

import "github.com/PoignardAzur/panoramix-sub000/ui/widget"

// Optional shows el, or nothing if el is nil. The state of el is kept
// while it is present and dropped as soon as it is absent.
func Optional(el Element) Element {
	return &optional{child: el}
}

// When shows el only if cond holds.
func When(cond bool, el Element) Element {
	if !cond {
		return &optional{}
	}
	return &optional{child: el}
}

type optional struct {
	child Element
}

type optionNode struct {
	child Node // nil when absent
}

func (o *optional) Build(prev State) (Node, State) {
	if o.child == nil {
		return &optionNode{}, nil
	}
	var p State
	if os := As[*OptionState](prev); os != nil {
		p = os.Inner
	}
	node, st := o.child.Build(p)
	return &optionNode{child: node}, &OptionState{Inner: st}
}

func (n *optionNode) InitTree(cx *widget.Ctx) widget.Seq {
	g := &widget.Group{}
	if n.child != nil {
		g.Items = []widget.Seq{n.child.InitTree(cx)}
	}
	return g
}

func (n *optionNode) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := MustNode[*optionNode](prev)
	g := MustSeq[*widget.Group](seq)
	switch {
	case n.child != nil && p.child != nil:
		g.Items[0] = n.child.Reconcile(p.child, g.Items[0], cx)
	case n.child != nil:
		g.Items = []widget.Seq{n.child.InitTree(cx)}
	default:
		g.Items = nil
	}
	return g
}

func (n *optionNode) ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	if n.child == nil {
		return nil, false
	}
	g := MustSeq[*widget.Group](seq)
	return n.child.ProcessEvent(As[*OptionState](st).Inner, g.Items[0], cx)
}

// Left shows el as the left branch of an either. Switching a position
// between Left and Right drops the state and widgets of the old branch.
func Left(el Element) Element { return &either{child: orEmpty(el)} }

// Right shows el as the right branch of an either.
func Right(el Element) Element { return &either{right: true, child: orEmpty(el)} }

// Either picks Right(right) if cond holds and Left(left) otherwise.
func Either(cond bool, left, right Element) Element {
	if cond {
		return Right(right)
	}
	return Left(left)
}

type either struct {
	right bool
	child Element
}

type eitherNode struct {
	right bool
	child Node
}

func (e *either) Build(prev State) (Node, State) {
	var p State
	if es := As[*EitherState](prev); es != nil && es.Right == e.right {
		p = es.Inner
	}
	node, st := e.child.Build(p)
	return &eitherNode{right: e.right, child: node}, &EitherState{Right: e.right, Inner: st}
}

func (n *eitherNode) InitTree(cx *widget.Ctx) widget.Seq {
	return n.child.InitTree(cx)
}

func (n *eitherNode) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := MustNode[*eitherNode](prev)
	if p.right != n.right {
		return n.child.InitTree(cx)
	}
	return n.child.Reconcile(p.child, seq, cx)
}

func (n *eitherNode) ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	ev, ok := n.child.ProcessEvent(As[*EitherState](st).Inner, seq, cx)
	if !ok {
		return nil, false
	}
	return EitherEvent{Right: n.right, Event: ev}, true
}
