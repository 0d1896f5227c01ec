// Package host drives render passes for one root component.
//
// A Host owns everything that survives between passes: the application
// state (the local state of the root component), the previous frame of
// the tree, and the live widgets. Input arrives as actions, in memory or
// in the text protocol of package proto:
//   - the action is delivered to its widget, which updates itself and
//     queues it on the pass context
//   - a pass rebuilds the tree and harvests the queued input as an
//     event, running the callbacks on the way
//   - if an event was harvested, a second pass puts the new state on
//     screen
//
// Passes never overlap: every exported method takes the host's lock.
package host

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// RootFunc renders the whole UI from the application state.
type RootFunc[S any] func(app *S) vdom.Element

// PassInfo describes the last render pass.
type PassInfo struct {
	Rev     uint64
	Created []widget.ID
	Changed []widget.ID
	Event   vdom.Event // nil if the pass harvested nothing
}

// Host runs a root component.
type Host[S any] struct {
	mu    sync.Mutex
	root  RootFunc[S]
	frame vdom.Frame
	cx    *widget.Ctx
	rev   uint64
	last  PassInfo

	// Handle, if set, is called with the events leaving the root
	// component. It may modify the application state.
	Handle func(app *S, ev vdom.Event)

	// Notify is called after every action, outside the lock. A
	// renderer would repaint.
	Notify func()

	// ActionLog records delivered actions in the text protocol when
	// non-nil. Rejected actions are not recorded.
	ActionLog []string
}

// New returns a host for root. Nothing is built until the first pass.
func New[S any](root RootFunc[S]) *Host[S] {
	return &Host[S]{root: root, cx: widget.NewCtx()}
}

func (h *Host[S]) element() vdom.Element {
	render := func(app *S, _ struct{}) vdom.Element { return h.root(app) }
	return vdom.ComponentWithHandler(render, struct{}{}, func(app *S, ev vdom.Event) (vdom.Event, bool) {
		if h.Handle != nil {
			h.Handle(app, ev)
		}
		return ev, true
	})
}

// pass runs one render pass. Must be called with mu held.
func (h *Host[S]) pass() bool {
	frame, ev, ok := vdom.RunPass(h.element(), h.frame, h.cx)
	h.frame = frame
	h.rev++
	h.last = PassInfo{
		Rev:     h.rev,
		Created: h.cx.CreatedIDs(),
		Changed: h.cx.ChangedIDs(),
		Event:   ev,
	}
	logrus.WithFields(logrus.Fields{
		"rev":     h.rev,
		"created": len(h.last.Created),
		"changed": len(h.last.Changed),
		"event":   fmt.Sprintf("%T", ev),
	}).Debug("host: pass")
	return ok
}

// ensure builds the tree if no pass has run yet. Must be called with mu
// held.
func (h *Host[S]) ensure() {
	if h.frame.Node == nil {
		h.pass()
	}
}

// Pass runs a render pass, followed by a second one if the first
// harvested an event.
func (h *Host[S]) Pass() {
	h.mu.Lock()
	if h.pass() {
		h.pass()
	}
	h.mu.Unlock()
	h.notify()
}

func (h *Host[S]) notify() {
	if h.Notify != nil {
		h.Notify()
	}
}

// HandleAction delivers a to its widget and re-renders. It fails if the
// target widget does not exist or does not accept the action.
func (h *Host[S]) HandleAction(a *proto.Action) error {
	h.mu.Lock()
	h.ensure()
	if err := widget.Deliver(h.frame.Seq, h.cx, a); err != nil {
		h.mu.Unlock()
		return err
	}
	if h.ActionLog != nil {
		h.ActionLog = append(h.ActionLog, proto.SerializeAction(a))
	}
	if h.pass() {
		h.pass()
	}
	h.mu.Unlock()
	h.notify()
	return nil
}

// ProcessAction parses an action line and handles it.
func (h *Host[S]) ProcessAction(line string) error {
	a, err := proto.ParseAction(line)
	if err != nil {
		return err
	}
	return h.HandleAction(a)
}

// Update modifies the application state from outside the tree and
// re-renders.
func (h *Host[S]) Update(f func(app *S)) {
	h.mu.Lock()
	h.ensure()
	f(vdom.Local[S](h.frame.State))
	h.pass()
	h.mu.Unlock()
	h.notify()
}

// App returns the application state. It must only be read between
// passes.
func (h *Host[S]) App() *S {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensure()
	return vdom.Local[S](h.frame.State)
}

// Rev returns the number of passes run so far.
func (h *Host[S]) Rev() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rev
}

// Last describes the most recent pass.
func (h *Host[S]) Last() PassInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Widgets returns the live widget sequence of the root.
func (h *Host[S]) Widgets() widget.Seq {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensure()
	return h.frame.Seq
}

// Widget returns the live widget with the given id, or nil.
func (h *Host[S]) Widget(id widget.ID) widget.Widget {
	return widget.Find(h.Widgets(), id)
}
