package uitest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PoignardAzur/panoramix-sub000/ui/el"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
)

// recorder captures fatal failures instead of stopping the test.
type recorder struct {
	testing.TB
	fatal []string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.fatal = append(r.fatal, fmt.Sprintf(format, args...))
}

func greeting() vdom.Element {
	return el.Column(
		el.Label("hello").ID(1),
		el.Button("ok").ID(2),
	)
}

func TestHarness(t *testing.T) {
	h := Static(t, greeting)
	h.AssertText(1, "hello")
	h.Click(2)
	h.AssertAbsent(3)
	snap := h.Snapshot()
	for _, s := range []string{"node 1 label", "node 2 button", "prop 1 text=hello"} {
		if !strings.Contains(snap, s) {
			t.Errorf("snapshot missing %q:\n%s", s, snap)
		}
	}
}

func TestHarnessUnknownWidget(t *testing.T) {
	r := &recorder{TB: t}
	h := Static(r, greeting)
	h.Click(9)
	if w := h.Find(9); w != nil {
		t.Errorf("Find(9) = %v", w)
	}
	h.Click(1)
	if len(r.fatal) != 3 {
		t.Fatalf("fatal failures = %q, want 3", r.fatal)
	}
	for i, want := range []string{"no widget 9", "no widget 9 in tree", "takes no input"} {
		if !strings.Contains(r.fatal[i], want) {
			t.Errorf("failure %d = %q, want it to mention %q", i, r.fatal[i], want)
		}
	}
}
