package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// probe is a leaf that counts how many times its position was built, and
// reports its name when its button is clicked.
type probe struct {
	id   widget.ID
	name string
}

type probeState struct {
	builds int
}

func (s *probeState) Clone() State {
	c := *s
	return &c
}

func (p probe) Build(prev State) (Node, State) {
	st := As[*probeState](prev)
	if st == nil {
		st = &probeState{}
	}
	st.builds++
	return &probeNode{p}, st
}

type probeNode struct {
	probe
}

func (n *probeNode) InitTree(cx *widget.Ctx) widget.Seq {
	w := widget.NewButton(cx.Alloc(n.id), n.name)
	cx.Created(w)
	return widget.One{W: w}
}

func (n *probeNode) Reconcile(prev Node, seq widget.Seq, cx *widget.Ctx) widget.Seq {
	MustNode[*probeNode](prev)
	w := MustWidget[*widget.Button](seq)
	cx.Changed(w, w.SetText(n.name))
	return seq
}

func (n *probeNode) ProcessEvent(_ State, seq widget.Seq, cx *widget.Ctx) (Event, bool) {
	w := MustWidget[*widget.Button](seq)
	if _, ok := cx.Dequeue(w.ID()); !ok {
		return nil, false
	}
	return n.name, true
}

// otherProbe has the node type of probe but is a different element type.
type otherProbe struct {
	probe
}

// named returns a probe whose reserved id is derived from its name.
func named(name string) probe {
	return probe{id: widget.ReservedID(uint32(name[0])), name: name}
}

func keyed(names ...string) Element {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Key: Key(n), Element: named(n)}
	}
	return List(items...)
}

func builds(t *testing.T, st State, k Key) int {
	t.Helper()
	s, ok := As[*ListState](st).Lookup(k)
	if !ok {
		t.Fatalf("no state for key %q", k)
	}
	return As[*probeState](s).builds
}

func click(cx *widget.Ctx, name string) {
	id := widget.ReservedID(uint32(name[0]))
	cx.Post(id, proto.Click(uint64(id)))
}

func names(seq widget.Seq) []string {
	var out []string
	for _, w := range widget.Flatten(seq) {
		out = append(out, w.Props()["text"])
	}
	return out
}

func TestListStatePreservation(t *testing.T) {
	_, st := keyed("a", "b", "c").Build(nil)
	_, st = keyed("b", "c", "d").Build(st)

	if diff := cmp.Diff([]Key{"b", "c", "d"}, As[*ListState](st).Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	for k, want := range map[Key]int{"b": 2, "c": 2, "d": 1} {
		if got := builds(t, st, k); got != want {
			t.Errorf("builds(%s) = %d, want %d", k, got, want)
		}
	}
	if _, ok := As[*ListState](st).Lookup("a"); ok {
		t.Error("state of removed key a survived")
	}

	// A key that comes back starts over.
	_, st = keyed("a", "b").Build(st)
	if got := builds(t, st, "a"); got != 1 {
		t.Errorf("builds(a) after reinsertion = %d, want 1", got)
	}
	if got := builds(t, st, "b"); got != 3 {
		t.Errorf("builds(b) = %d, want 3", got)
	}
}

// There is no move operation: a key that jumps ahead of the first
// matched key is removed and inserted again, losing its state.
func TestListReorder(t *testing.T) {
	_, st := keyed("a", "b", "c").Build(nil)
	_, st = keyed("c", "a", "b").Build(st)
	for k, want := range map[Key]int{"a": 2, "b": 2, "c": 1} {
		if got := builds(t, st, k); got != want {
			t.Errorf("builds(%s) = %d, want %d", k, got, want)
		}
	}
}

func TestListReconcile(t *testing.T) {
	cx := widget.NewCtx()
	frame, _, _ := RunPass(keyed("a", "b", "c"), Frame{}, cx)
	before := widget.Flatten(frame.Seq)

	frame, _, _ = RunPass(keyed("b", "c", "d"), frame, cx)
	after := widget.Flatten(frame.Seq)

	if diff := cmp.Diff([]string{"b", "c", "d"}, names(frame.Seq)); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}
	if after[0] != before[1] || after[1] != before[2] {
		t.Error("widgets of kept items were replaced")
	}
	if diff := cmp.Diff([]widget.ID{named("d").id}, cx.CreatedIDs()); diff != "" {
		t.Errorf("created mismatch (-want +got):\n%s", diff)
	}
	if got := cx.ChangedIDs(); len(got) != 0 {
		t.Errorf("changed = %v, want none", got)
	}

	frame, _, _ = RunPass(keyed(), frame, cx)
	if got := widget.Flatten(frame.Seq); len(got) != 0 {
		t.Errorf("%d widgets left after clearing the list", len(got))
	}
}

func TestTupleFirstEventWins(t *testing.T) {
	cx := widget.NewCtx()
	el := func() Element { return Tuple(named("a"), named("b"), named("c")) }
	frame, _, _ := RunPass(el(), Frame{}, cx)

	click(cx, "b")
	click(cx, "c")
	_, ev, ok := RunPass(el(), frame, cx)
	if !ok {
		t.Fatal("no event")
	}
	if diff := cmp.Diff(ChildEvent{Index: 1, Event: "b"}, ev); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
	if n := cx.Pending(); n != 0 {
		t.Errorf("%d actions still pending after the pass", n)
	}
}

func TestListFirstEventWins(t *testing.T) {
	cx := widget.NewCtx()
	frame, _, _ := RunPass(keyed("a", "b", "c"), Frame{}, cx)

	click(cx, "c")
	click(cx, "b")
	_, ev, ok := RunPass(keyed("a", "b", "c"), frame, cx)
	if !ok {
		t.Fatal("no event")
	}
	if diff := cmp.Diff(ListEvent{Index: 1, Key: "b", Event: "b"}, ev); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPassDropsUnconsumedInput(t *testing.T) {
	cx := widget.NewCtx()
	frame, _, _ := RunPass(named("a"), Frame{}, cx)
	cx.Post(widget.ReservedID(999), proto.Click(999))
	if _, _, ok := RunPass(named("a"), frame, cx); ok {
		t.Error("event reported for input nobody consumed")
	}
	if n := cx.Pending(); n != 0 {
		t.Errorf("Pending() = %d, want 0", n)
	}
}

func TestBoxElementTypeChange(t *testing.T) {
	cx := widget.NewCtx()
	frame, _, _ := RunPass(named("a"), Frame{}, cx)
	frame, _, _ = RunPass(named("a"), frame, cx)
	if got := Unbox[*probeState](frame.State).builds; got != 2 {
		t.Fatalf("builds = %d, want 2", got)
	}
	w := widget.Flatten(frame.Seq)[0]

	// Same node type, so the widget is kept, but the state is not.
	frame, _, _ = RunPass(otherProbe{named("a")}, frame, cx)
	if got := Unbox[*probeState](frame.State).builds; got != 1 {
		t.Errorf("builds after type change = %d, want 1", got)
	}
	if widget.Flatten(frame.Seq)[0] != w {
		t.Error("widget replaced although the node type did not change")
	}
}

func TestBoxNodeTypeChange(t *testing.T) {
	cx := widget.NewCtx()
	frame, _, _ := RunPass(named("a"), Frame{}, cx)
	frame, _, _ = RunPass(Empty(), frame, cx)
	if got := widget.Flatten(frame.Seq); len(got) != 0 {
		t.Fatalf("Empty shows %d widgets", len(got))
	}
	frame, _, _ = RunPass(named("a"), frame, cx)
	if got := len(cx.CreatedIDs()); got != 1 {
		t.Errorf("created %d widgets, want 1", got)
	}
	if got := Unbox[*probeState](frame.State).builds; got != 1 {
		t.Errorf("builds = %d, want 1", got)
	}
}

func TestAsNil(t *testing.T) {
	if got := As[*ListState](nil); got != nil {
		t.Errorf("As(nil) = %v, want nil", got)
	}
}

func TestAsMismatchPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(*TypeMismatchError)
		if !ok {
			t.Fatal("As did not panic with a *TypeMismatchError")
		}
		want := &TypeMismatchError{Where: "state", Expected: "*vdom.ListState", Actual: "*vdom.TupleState"}
		if diff := cmp.Diff(want, err); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	}()
	As[*ListState](&TupleState{})
}

func TestBuildWithForeignStatePanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*TypeMismatchError); !ok {
			t.Error("Build did not panic with a *TypeMismatchError")
		}
	}()
	List().Build(&TupleState{})
}

func TestOptional(t *testing.T) {
	cx := widget.NewCtx()
	frame, _, _ := RunPass(Optional(named("a")), Frame{}, cx)
	frame, _, _ = RunPass(Optional(named("a")), frame, cx)
	if got := As[*probeState](Unbox[*OptionState](frame.State).Inner).builds; got != 2 {
		t.Fatalf("builds = %d, want 2", got)
	}

	frame, _, _ = RunPass(Optional(nil), frame, cx)
	if Unbox[*OptionState](frame.State) != nil {
		t.Error("absent optional kept its state")
	}
	if got := widget.Flatten(frame.Seq); len(got) != 0 {
		t.Errorf("absent optional shows %d widgets", len(got))
	}

	frame, _, _ = RunPass(When(true, named("a")), frame, cx)
	if got := As[*probeState](Unbox[*OptionState](frame.State).Inner).builds; got != 1 {
		t.Errorf("builds after reappearing = %d, want 1", got)
	}
	if diff := cmp.Diff([]string{"a"}, names(frame.Seq)); diff != "" {
		t.Errorf("widgets mismatch (-want +got):\n%s", diff)
	}
}

func TestEither(t *testing.T) {
	cx := widget.NewCtx()
	el := func(right bool) Element { return Either(right, named("l"), named("r")) }
	frame, _, _ := RunPass(el(false), Frame{}, cx)
	frame, _, _ = RunPass(el(true), frame, cx)
	frame, _, _ = RunPass(el(true), frame, cx)

	es := Unbox[*EitherState](frame.State)
	if !es.Right || As[*probeState](es.Inner).builds != 2 {
		t.Errorf("state = %+v, want right branch built twice", es)
	}
	if diff := cmp.Diff([]string{"r"}, names(frame.Seq)); diff != "" {
		t.Errorf("widgets mismatch (-want +got):\n%s", diff)
	}

	click(cx, "r")
	_, ev, _ := RunPass(el(true), frame, cx)
	if diff := cmp.Diff(EitherEvent{Right: true, Event: "r"}, ev); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentLocalState(t *testing.T) {
	var seen []*int
	fn := func(n *int, name string) Element {
		seen = append(seen, n)
		*n++
		return named(name)
	}
	cx := widget.NewCtx()
	var frame Frame
	for i := 0; i < 3; i++ {
		frame, _, _ = RunPass(Component(fn, "a"), frame, cx)
	}
	if got := *Local[int](frame.State); got != 3 {
		t.Errorf("local = %d, want 3", got)
	}
	for i, p := range seen {
		if p != seen[0] {
			t.Errorf("render %d got a different local state pointer", i)
		}
	}
}

func TestComponentHandler(t *testing.T) {
	fn := func(_ *int, name string) Element { return named(name) }
	handle := func(n *int, ev Event) (Event, bool) {
		*n += 10
		return "handled " + ev.(string), true
	}
	el := func() Element { return ComponentWithHandler(fn, "a", handle) }

	cx := widget.NewCtx()
	frame, _, _ := RunPass(el(), Frame{}, cx)
	click(cx, "a")
	frame, ev, ok := RunPass(el(), frame, cx)
	if !ok || ev != "handled a" {
		t.Errorf("event = %v, %v, want handled a", ev, ok)
	}
	if got := *Local[int](frame.State); got != 10 {
		t.Errorf("local = %d, want 10", got)
	}
}

func TestComponentHandlerSwallows(t *testing.T) {
	fn := func(_ *struct{}, name string) Element { return named(name) }
	handle := func(*struct{}, Event) (Event, bool) { return nil, false }

	cx := widget.NewCtx()
	frame, _, _ := RunPass(ComponentWithHandler(fn, "a", handle), Frame{}, cx)
	click(cx, "a")
	if _, _, ok := RunPass(ComponentWithHandler(fn, "a", handle), frame, cx); ok {
		t.Error("swallowed event was reported")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &ListState{Items: []KeyedState{{Key: "a", State: &TupleState{Children: []State{&probeState{builds: 1}, nil}}}}}
	c := orig.Clone()
	if !StatesEqual(orig, c) {
		t.Fatal("clone differs from original")
	}
	As[*probeState](As[*TupleState](As[*ListState](c).Items[0].State).Children[0]).builds = 5
	if StatesEqual(orig, c) {
		t.Error("modifying the clone changed the original")
	}
	if got := CloneState(nil); got != nil {
		t.Errorf("CloneState(nil) = %v, want nil", got)
	}
}

func TestComponentStateClone(t *testing.T) {
	orig := &ComponentState[[]int]{Local: []int{1}, Child: &probeState{builds: 1}}
	c := As[*ComponentState[[]int]](orig.Clone())

	As[*probeState](c.Child).builds = 5
	if got := As[*probeState](orig.Child).builds; got != 1 {
		t.Errorf("child state shared with the clone: builds = %d, want 1", got)
	}
	// Local is copied by assignment, so its backing array is shared.
	c.Local[0] = 2
	if orig.Local[0] != 2 {
		t.Error("local state was copied deeply")
	}
}
