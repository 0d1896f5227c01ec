// Package uitest supports testing components.
//
// A Harness hosts a root component in memory, drives synthetic input
// against widgets with reserved ids (see widget.ReservedID) and exposes
// the resulting widget tree. Failures are reported through testing.TB,
// so tests read as a sequence of steps:
//
//	h := uitest.New(t, func(app *counter) vdom.Element { ... })
//	h.Click(1)
//	h.AssertText(2, "1")
package uitest

import (
	"testing"

	"github.com/PoignardAzur/panoramix-sub000/ui/host"
	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// Harness is a host under test.
type Harness[S any] struct {
	tb testing.TB
	*host.Host[S]
}

// New builds root and runs the first pass.
func New[S any](tb testing.TB, root host.RootFunc[S]) *Harness[S] {
	tb.Helper()
	h := &Harness[S]{tb: tb, Host: host.New(root)}
	h.Pass()
	return h
}

// Static hosts a fixed element tree with no application state.
func Static(tb testing.TB, el func() vdom.Element) *Harness[struct{}] {
	tb.Helper()
	return New(tb, func(*struct{}) vdom.Element { return el() })
}

func (h *Harness[S]) send(a *proto.Action) {
	h.tb.Helper()
	if err := h.HandleAction(a); err != nil {
		h.tb.Fatalf("%s: %v", proto.SerializeAction(a), err)
	}
}

// Click clicks the button with reserved id n.
func (h *Harness[S]) Click(n uint32) {
	h.tb.Helper()
	h.send(proto.Click(uint64(widget.ReservedID(n))))
}

// Type replaces the text of the text box with reserved id n.
func (h *Harness[S]) Type(n uint32, text string) {
	h.tb.Helper()
	h.send(proto.Input(uint64(widget.ReservedID(n)), text))
}

// Toggle sets the checkbox with reserved id n.
func (h *Harness[S]) Toggle(n uint32, checked bool) {
	h.tb.Helper()
	h.send(proto.Toggle(uint64(widget.ReservedID(n)), checked))
}

// Find returns the widget with reserved id n, failing the test if there
// is none.
func (h *Harness[S]) Find(n uint32) widget.Widget {
	h.tb.Helper()
	w := h.Widget(widget.ReservedID(n))
	if w == nil {
		h.tb.Fatalf("no widget %d in tree:\n%s", n, h.Dump())
	}
	return w
}

// Text returns the "text" property of the widget with reserved id n.
func (h *Harness[S]) Text(n uint32) string {
	h.tb.Helper()
	return h.Find(n).Props()["text"]
}

// AssertText checks the "text" property of the widget with reserved id
// n.
func (h *Harness[S]) AssertText(n uint32, want string) {
	h.tb.Helper()
	if got := h.Text(n); got != want {
		h.tb.Errorf("widget %d text = %q, want %q", n, got, want)
	}
}

// AssertAbsent checks that no widget has reserved id n.
func (h *Harness[S]) AssertAbsent(n uint32) {
	h.tb.Helper()
	if w := h.Widget(widget.ReservedID(n)); w != nil {
		h.tb.Errorf("widget %d is present (%s), want absent", n, w.Kind())
	}
}

// Snapshot returns the widget tree in the text protocol.
func (h *Harness[S]) Snapshot() string {
	return h.TreeText()
}
