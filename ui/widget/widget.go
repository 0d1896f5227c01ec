// Package widget defines the backend objects the reconciliation engine
// drives, together with a headless in-memory implementation.
//
// A real backend would paint and lay out widgets; the headless one only
// keeps their properties, applies delivered input and renders a text
// picture. The engine never looks inside widgets beyond the Widget
// interface and the setters of the concrete types it creates.
package widget

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a widget for its whole lifetime. Pending input is
// addressed by ID.
type ID uint64

// Fresh ids are allocated above this bound, so they never collide with
// reserved ones.
const freshBase ID = 1 << 32

var lastID atomic.Uint64

// NewID allocates a fresh id.
func NewID() ID {
	return freshBase + ID(lastID.Add(1))
}

// ReservedID returns the fixed id n. Tests reserve ids to address
// widgets deterministically.
func ReservedID(n uint32) ID {
	return ID(n)
}

// Reserved reports whether id was obtained from ReservedID.
func (id ID) Reserved() bool { return id < freshBase }

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Widget is the capability set the engine needs from a backend object.
type Widget interface {
	ID() ID
	// Kind names the widget type, e.g. "button".
	Kind() string
	// Props returns the debug properties shown in snapshots.
	Props() map[string]string
	Children() []Widget
	Paint(p *Painter)
}

// Seq is the ordered sequence of widgets one node of the tree produces.
// A leaf produces One; structural nodes produce a Group of the
// sequences of their children.
type Seq interface {
	Widgets() []Widget
}

// One is a sequence holding a single widget.
type One struct {
	W Widget
}

func (o One) Widgets() []Widget { return []Widget{o.W} }

// Group is a sequence made of child sequences, in order. A nil item is
// an empty sequence.
type Group struct {
	Items []Seq
}

func (g *Group) Widgets() []Widget {
	var ws []Widget
	for _, s := range g.Items {
		if s != nil {
			ws = append(ws, s.Widgets()...)
		}
	}
	return ws
}

// Flatten returns the widgets of seq, tolerating a nil seq.
func Flatten(seq Seq) []Widget {
	if seq == nil {
		return nil
	}
	return seq.Widgets()
}

// Walk calls f for every widget reachable from seq, in pre-order, until
// f returns false.
func Walk(seq Seq, f func(Widget) bool) {
	var walk func(ws []Widget) bool
	walk = func(ws []Widget) bool {
		for _, w := range ws {
			if !f(w) || !walk(w.Children()) {
				return false
			}
		}
		return true
	}
	walk(Flatten(seq))
}

// Find returns the widget with the given id, or nil.
func Find(seq Seq, id ID) Widget {
	var found Widget
	Walk(seq, func(w Widget) bool {
		if w.ID() == id {
			found = w
			return false
		}
		return true
	})
	return found
}
