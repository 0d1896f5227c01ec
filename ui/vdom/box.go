package vdom

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// Box hides the concrete type of el from its parent, so that the element
// at a position may change type from one render to the next. Component
// results are always boxed.
//
// When the concrete element type changes, the previous state is dropped
// and the position is built and initialized from scratch.
func Box(el Element) Element {
	if b, ok := el.(*boxed); ok {
		return b
	}
	return &boxed{inner: orEmpty(el)}
}

type boxed struct {
	inner Element
}

// AnyState is the state of a boxed element. It remembers the concrete
// element type that produced Inner.
type AnyState struct {
	Type  reflect.Type
	Inner State
}

func (s *AnyState) Clone() State {
	return &AnyState{Type: s.Type, Inner: CloneState(s.Inner)}
}

// Equal reports whether s and o hold equal states for the same type.
func (s *AnyState) Equal(o *AnyState) bool {
	return s.Type == o.Type && StatesEqual(s.Inner, o.Inner)
}

// Unbox returns the inner state of s as a T. It panics with a
// *TypeMismatchError if s was not produced by an element with state T.
func Unbox[T State](s State) T {
	return As[T](As[*AnyState](s).Inner)
}

func (b *boxed) Build(prev State) (Node, State) {
	typ := reflect.TypeOf(b.inner)
	var inner State
	if as := As[*AnyState](prev); as != nil {
		if as.Type == typ {
			inner = as.Inner
		} else {
			logrus.WithFields(logrus.Fields{
				"from": as.Type, "to": typ,
			}).Debug("vdom: element type changed, dropping state")
		}
	}
	node, st := b.inner.Build(inner)
	return &boxedNode{inner: node}, &AnyState{Type: typ, Inner: st}
}

type boxedNode struct {
	inner Node
}

func (n *boxedNode) InitTree(cx *widget.Ctx) widget.Seq {
	return n.inner.InitTree(cx)
}

func (n *boxedNode) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := MustNode[*boxedNode](prev)
	if reflect.TypeOf(p.inner) != reflect.TypeOf(n.inner) {
		return n.inner.InitTree(cx)
	}
	return n.inner.Reconcile(p.inner, seq, cx)
}

func (n *boxedNode) ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	return n.inner.ProcessEvent(As[*AnyState](st).Inner, seq, cx)
}
