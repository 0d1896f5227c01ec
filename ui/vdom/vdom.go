// Package vdom implements the reconciliation engine.
//
// Each render, a component function returns a fresh tree of Elements.
// Building an Element consumes it together with the State the same tree
// position produced in the previous render, and yields a Node (the
// durable description of this render) and the State for the next one.
// The first Node built at a position creates its widgets with InitTree;
// every later Node is reconciled against its predecessor, applying only
// the differences to the live widgets. Finally input queued on the
// widgets is harvested through the same tree as at most one Event.
//
//	node, st := el.Build(prevState)
//	seq := node.Reconcile(prevNode, prevSeq, cx) // or node.InitTree(cx)
//	ev, ok := node.ProcessEvent(st, seq, cx)
//
// State is a tree of values mirroring the shape of the element tree. It
// is created only by Build: positions that did not exist before get
// default state, and state of positions that disappeared is dropped.
// A dropped position that reappears starts over from default state.
//
// A render pass runs to completion on one goroutine; nothing in this
// package is safe for concurrent use.
package vdom

import (
	"github.com/sirupsen/logrus"

	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// Element describes what one tree position should show in this render.
// Elements are cheap, built fresh every render and consumed by Build.
type Element interface {
	// Build turns the element into a Node. prev is the state this
	// position returned from the previous Build, or nil on the first
	// render. Build must not block or perform I/O.
	Build(prev State) (Node, State)
}

// Node is the built counterpart of an Element. Each Element type has
// exactly one Node type.
type Node interface {
	// InitTree creates the widgets of a node built at a new position.
	// It is called once per position, for the first node only.
	InitTree(cx *widget.Ctx) widget.Seq
	// Reconcile updates seq, the widgets created for prev, to reflect
	// this node. prev is the node built at the same position by the
	// previous render and has the same dynamic type as the receiver.
	// The returned sequence replaces seq; it is usually seq itself.
	Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq
	// ProcessEvent translates input pending on the widgets in seq into
	// at most one event. st is the state Build returned with this node.
	ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool)
}

// Event is what a node reports to its parent. Structural nodes wrap the
// event of a child to say where it came from.
type Event any

// ChildEvent is reported by a tuple for the event of its Index-th child.
type ChildEvent struct {
	Index int
	Event Event
}

// ListEvent is reported by a list for the event of one of its items.
type ListEvent struct {
	Index int
	Key   Key
	Event Event
}

// EitherEvent is reported by Left and Right elements.
type EitherEvent struct {
	Right bool
	Event Event
}

// Frame is what one render pass leaves for the next one.
type Frame struct {
	Node  Node
	State State
	Seq   widget.Seq
}

// RunPass renders el on top of prev: it builds el with the state of the
// previous pass, creates or reconciles the widgets, then harvests the
// input queued in cx. Input that no node consumed is dropped at the end
// of the pass. A zero prev means this is the first render.
func RunPass(el Element, prev Frame, cx *widget.Ctx) (Frame, Event, bool) {
	cx.Begin()
	node, st := Box(el).Build(prev.State)
	var seq widget.Seq
	if prev.Node == nil {
		seq = node.InitTree(cx)
	} else {
		seq = node.Reconcile(prev.Node, prev.Seq, cx)
	}
	ev, ok := node.ProcessEvent(st, seq, cx)
	if dropped := cx.Discard(); len(dropped) > 0 {
		logrus.WithField("count", len(dropped)).Debug("vdom: dropped unconsumed input")
	}
	return Frame{Node: node, State: st, Seq: seq}, ev, ok
}

// Empty returns an element that shows nothing.
func Empty() Element { return empty{} }

type empty struct{}

type emptyNode struct{}

func (empty) Build(State) (Node, State) { return emptyNode{}, nil }

func (emptyNode) InitTree(*widget.Ctx) widget.Seq { return &widget.Group{} }

func (emptyNode) Reconcile(prev Node, seq widget.Seq, _ *widget.Ctx) widget.Seq {
	MustNode[emptyNode](prev)
	return seq
}

func (emptyNode) ProcessEvent(State, widget.Seq, *widget.Ctx) (Event, bool) { return nil, false }

func orEmpty(el Element) Element {
	if el == nil {
		return empty{}
	}
	return el
}
