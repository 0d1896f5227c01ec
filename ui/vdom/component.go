package vdom

import "github.com/PoignardAzur/panoramix-sub000/ui/widget"

// ComponentFunc renders a component. local points to the component's
// persistent local state, which starts as the zero S; props are the
// arguments given by the parent for this render. The pointer stays
// valid for as long as the component keeps its position, so event
// callbacks in the returned tree may capture it.
type ComponentFunc[S, P any] func(local *S, props P) Element

// HandleFunc reacts to an event coming out of a component's tree. It may
// update local and returns the event, if any, the component reports to
// its own parent.
type HandleFunc[S any] func(local *S, ev Event) (Event, bool)

// ComponentState is the state of a component: its local state and the
// state of the tree it rendered.
type ComponentState[S any] struct {
	Local S
	Child State
}

// Clone copies Local by assignment: slices, maps and pointers inside it
// are shared with the clone.
func (s *ComponentState[S]) Clone() State {
	return &ComponentState[S]{Local: s.Local, Child: CloneState(s.Child)}
}

// Component returns an element that calls fn with its local state and
// props, and shows the result. Events of the result pass through
// unchanged.
func Component[S, P any](fn ComponentFunc[S, P], props P) Element {
	return &component[S, P]{fn: fn, props: props}
}

// ComponentWithHandler is like Component, but routes events of the
// rendered tree through handle.
func ComponentWithHandler[S, P any](fn ComponentFunc[S, P], props P, handle HandleFunc[S]) Element {
	return &component[S, P]{fn: fn, props: props, handle: handle}
}

// Local returns the local state of the component whose state is st, as
// returned by Build. st may be boxed.
func Local[S any](st State) *S {
	if as, ok := st.(*AnyState); ok {
		st = as.Inner
	}
	cs := As[*ComponentState[S]](st)
	if cs == nil {
		return nil
	}
	return &cs.Local
}

type component[S, P any] struct {
	fn     ComponentFunc[S, P]
	props  P
	handle HandleFunc[S]
}

type componentNode[S any] struct {
	child  Node
	handle HandleFunc[S]
}

func (c *component[S, P]) Build(prev State) (Node, State) {
	cs := As[*ComponentState[S]](prev)
	if cs == nil {
		cs = &ComponentState[S]{}
	}
	child := Box(c.fn(&cs.Local, c.props))
	node, st := child.Build(cs.Child)
	cs.Child = st
	return &componentNode[S]{child: node, handle: c.handle}, cs
}

func (n *componentNode[S]) InitTree(cx *widget.Ctx) widget.Seq {
	return n.child.InitTree(cx)
}

func (n *componentNode[S]) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	return n.child.Reconcile(MustNode[*componentNode[S]](prev).child, seq, cx)
}

func (n *componentNode[S]) ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	cs := As[*ComponentState[S]](st)
	ev, ok := n.child.ProcessEvent(cs.Child, seq, cx)
	if !ok || n.handle == nil {
		return ev, ok
	}
	return n.handle(&cs.Local, ev)
}
