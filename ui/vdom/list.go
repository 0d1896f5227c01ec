package vdom

import (
	"github.com/sirupsen/logrus"

	"github.com/PoignardAzur/panoramix-sub000/ui/listdiff"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// Key identifies a list item across renders. Keys must be unique within
// one list; duplicates lead to unspecified results.
type Key string

// Item is one keyed child of a List.
type Item struct {
	Key     Key
	Element Element
}

// List shows a dynamic sequence of keyed children. The state of an item
// follows its key: it survives reordering and is dropped when the key
// disappears. Items with new keys start from default state.
//
// If several items report an event in the same pass, only the first one
// is reported, as a ListEvent.
func List(items ...Item) Element {
	l := &list{items: make([]Item, len(items))}
	for i, it := range items {
		l.items[i] = Item{Key: it.Key, Element: orEmpty(it.Element)}
	}
	return l
}

// ListOf builds a List from a slice, using key and el to produce each
// item.
func ListOf[T any](xs []T, key func(T) Key, el func(T) Element) Element {
	items := make([]Item, len(xs))
	for i, x := range xs {
		items[i] = Item{Key: key(x), Element: el(x)}
	}
	return List(items...)
}

type list struct {
	items []Item
}

type keyedNode struct {
	key  Key
	node Node
}

type listNode struct {
	items []keyedNode
}

func (l *list) keys() []Key {
	return listdiff.Keys(l.items, func(it Item) Key { return it.Key })
}

func (n *listNode) keys() []Key {
	return listdiff.Keys(n.items, func(it keyedNode) Key { return it.key })
}

func (l *list) Build(prev State) (Node, State) {
	ps := As[*ListState](prev)
	var old []KeyedState
	if ps != nil {
		old = ps.Items
	}
	script := listdiff.Compute(ps.Keys(), l.keys())
	logScript("build", script)
	states := listdiff.Apply(script, old, func(_ int, k Key) KeyedState {
		return KeyedState{Key: k}
	})

	node := &listNode{items: make([]keyedNode, len(l.items))}
	st := &ListState{Items: make([]KeyedState, len(l.items))}
	for i, it := range l.items {
		n, s := it.Element.Build(states[i].State)
		node.items[i] = keyedNode{key: it.Key, node: n}
		st.Items[i] = KeyedState{Key: it.Key, State: s}
	}
	return node, st
}

func (n *listNode) InitTree(cx *widget.Ctx) widget.Seq {
	g := &widget.Group{Items: make([]widget.Seq, len(n.items))}
	for i, it := range n.items {
		g.Items[i] = it.node.InitTree(cx)
	}
	return g
}

// slot pairs a node of the previous render with its widgets. Fresh slots
// mark inserted keys.
type slot struct {
	node  Node
	seq   widget.Seq
	fresh bool
}

// Reconcile diffs the keys of prev against the receiver's and replays
// the edit script over the previous (node, widgets) pairs, so that
// preserved items are reconciled against their own predecessor and
// inserted items get new widgets.
func (n *listNode) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	p := MustNode[*listNode](prev)
	g := MustSeq[*widget.Group](seq)
	script := listdiff.Compute(p.keys(), n.keys())
	logScript("reconcile", script)

	old := make([]slot, len(p.items))
	for i, it := range p.items {
		old[i] = slot{node: it.node, seq: g.Items[i]}
	}
	slots := listdiff.Apply(script, old, func(int, Key) slot {
		return slot{fresh: true}
	})

	items := make([]widget.Seq, len(n.items))
	for i, it := range n.items {
		if s := slots[i]; s.fresh {
			items[i] = it.node.InitTree(cx)
		} else {
			items[i] = it.node.Reconcile(s.node, s.seq, cx)
		}
	}
	g.Items = items
	return g
}

func (n *listNode) ProcessEvent(st State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	ls := As[*ListState](st)
	g := MustSeq[*widget.Group](seq)
	for i, it := range n.items {
		if ev, ok := it.node.ProcessEvent(ls.Items[i].State, g.Items[i], cx); ok {
			return ListEvent{Index: i, Key: it.key, Event: ev}, true
		}
	}
	return nil, false
}

func logScript(phase string, script []listdiff.Edit[Key]) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	kept, removed, inserted := listdiff.Stats(script)
	logrus.WithFields(logrus.Fields{
		"phase":    phase,
		"edits":    len(script),
		"kept":     kept,
		"removed":  removed,
		"inserted": inserted,
	}).Debug("vdom: list diff")
}
