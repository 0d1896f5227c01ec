package widget

import (
	"github.com/pkg/errors"

	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
)

// Ctx is the global context of a render pass. It holds the input
// delivered to widgets and not yet consumed by the tree, and records
// which widgets a pass created or updated.
//
// A Ctx is used by one pass at a time.
type Ctx struct {
	pending map[ID][]*proto.Action
	created []ID
	changed []ID
}

// NewCtx returns an empty context.
func NewCtx() *Ctx {
	return &Ctx{pending: make(map[ID][]*proto.Action)}
}

// Begin clears the per-pass bookkeeping. Pending input is kept.
func (cx *Ctx) Begin() {
	cx.created = cx.created[:0]
	cx.changed = cx.changed[:0]
}

// Alloc returns want if it is set, otherwise a fresh id.
func (cx *Ctx) Alloc(want ID) ID {
	if want != 0 {
		return want
	}
	return NewID()
}

// Created records a widget built during the pass.
func (cx *Ctx) Created(w Widget) { cx.created = append(cx.created, w.ID()) }

// Changed records a widget updated during the pass. It is a no-op
// unless changed is true, so that setters can be passed directly.
func (cx *Ctx) Changed(w Widget, changed bool) {
	if changed {
		cx.changed = append(cx.changed, w.ID())
	}
}

// CreatedIDs returns the widgets created since Begin.
func (cx *Ctx) CreatedIDs() []ID { return append([]ID(nil), cx.created...) }

// ChangedIDs returns the widgets updated since Begin.
func (cx *Ctx) ChangedIDs() []ID { return append([]ID(nil), cx.changed...) }

// Post queues a for the widget id.
func (cx *Ctx) Post(id ID, a *proto.Action) {
	cx.pending[id] = append(cx.pending[id], a)
}

// Dequeue pops the oldest action pending for id.
func (cx *Ctx) Dequeue(id ID) (*proto.Action, bool) {
	q := cx.pending[id]
	if len(q) == 0 {
		return nil, false
	}
	a := q[0]
	if len(q) == 1 {
		delete(cx.pending, id)
	} else {
		cx.pending[id] = q[1:]
	}
	return a, true
}

// Pending returns the number of queued actions.
func (cx *Ctx) Pending() int {
	n := 0
	for _, q := range cx.pending {
		n += len(q)
	}
	return n
}

// Discard drops every queued action and returns them.
func (cx *Ctx) Discard() []*proto.Action {
	var dropped []*proto.Action
	for id, q := range cx.pending {
		dropped = append(dropped, q...)
		delete(cx.pending, id)
	}
	return dropped
}

// Deliver routes a to its target widget under root: the widget applies
// the effect of the input to itself, and the action is queued on cx for
// the tree to turn into an event.
func Deliver(root Seq, cx *Ctx, a *proto.Action) error {
	n, err := a.Target()
	if err != nil {
		return err
	}
	id := ID(n)
	w := Find(root, id)
	if w == nil {
		return errors.Errorf("widget: no widget %d", id)
	}
	iw, ok := w.(Interactive)
	if !ok {
		return errors.Errorf("widget: %s %d takes no input", w.Kind(), id)
	}
	if !iw.Deliver(a) {
		return errors.Errorf("widget: %s %d does not accept %s", w.Kind(), id, a.Kind)
	}
	cx.Post(id, a)
	return nil
}
