package vdom

import (
	"fmt"
	"reflect"

	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// State is the persistent value a tree position carries from one render
// to the next. A nil State is the unit state of leaves and the state of
// a position that has never been built.
type State interface {
	// Clone copies the state tree. The framework's own nodes are
	// copied deeply; values supplied by users, such as component local
	// state, are copied by assignment.
	Clone() State
}

// CloneState clones s, tolerating nil.
func CloneState(s State) State {
	if s == nil {
		return nil
	}
	return s.Clone()
}

// StatesEqual reports whether two state trees are structurally equal.
func StatesEqual(a, b State) bool {
	return reflect.DeepEqual(a, b)
}

// TypeMismatchError is the panic value raised when a state, node or
// widget does not have the type its tree position requires. It means
// the framework's invariants were broken, typically by an embedder
// feeding a state or node to the wrong position.
type TypeMismatchError struct {
	Where    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("vdom: %s type mismatch: expected %s, got %s", e.Where, e.Expected, e.Actual)
}

func mismatch(where string, expected, actual any) *TypeMismatchError {
	return &TypeMismatchError{
		Where:    where,
		Expected: fmt.Sprintf("%T", expected),
		Actual:   fmt.Sprintf("%T", actual),
	}
}

// As downcasts s to the state type T. A nil s yields the zero T, which
// callers treat as "no previous state". Any other type panics with a
// *TypeMismatchError.
func As[T State](s State) T {
	var zero T
	if s == nil {
		return zero
	}
	t, ok := s.(T)
	if !ok {
		panic(mismatch("state", zero, s))
	}
	return t
}

// MustNode downcasts the previous node passed to Reconcile.
func MustNode[T Node](prev Node) T {
	t, ok := prev.(T)
	if !ok {
		var zero T
		panic(mismatch("node", zero, prev))
	}
	return t
}

// MustSeq downcasts a widget sequence.
func MustSeq[T widget.Seq](seq widget.Seq) T {
	t, ok := seq.(T)
	if !ok {
		var zero T
		panic(mismatch("widget sequence", zero, seq))
	}
	return t
}

// MustWidget returns the single widget of seq as a T.
func MustWidget[T widget.Widget](seq widget.Seq) T {
	one := MustSeq[widget.One](seq)
	t, ok := one.W.(T)
	if !ok {
		var zero T
		panic(mismatch("widget", zero, one.W))
	}
	return t
}

// TupleState is the state of a Tuple: one entry per child.
type TupleState struct {
	Children []State
}

func (s *TupleState) Clone() State {
	out := &TupleState{Children: make([]State, len(s.Children))}
	for i, c := range s.Children {
		out.Children[i] = CloneState(c)
	}
	return out
}

// KeyedState is the state of one list item.
type KeyedState struct {
	Key   Key
	State State
}

// ListState is the state of a List, in item order.
type ListState struct {
	Items []KeyedState
}

func (s *ListState) Clone() State {
	out := &ListState{Items: make([]KeyedState, len(s.Items))}
	for i, it := range s.Items {
		out.Items[i] = KeyedState{Key: it.Key, State: CloneState(it.State)}
	}
	return out
}

// Keys returns the item keys in order.
func (s *ListState) Keys() []Key {
	if s == nil {
		return nil
	}
	keys := make([]Key, len(s.Items))
	for i, it := range s.Items {
		keys[i] = it.Key
	}
	return keys
}

// Lookup returns the state of the item with key k.
func (s *ListState) Lookup(k Key) (State, bool) {
	if s == nil {
		return nil, false
	}
	for _, it := range s.Items {
		if it.Key == k {
			return it.State, true
		}
	}
	return nil, false
}

// OptionState is the state of a present Optional. An absent one has nil
// state.
type OptionState struct {
	Inner State
}

func (s *OptionState) Clone() State { return &OptionState{Inner: CloneState(s.Inner)} }

// EitherState is the state of a Left or Right element.
type EitherState struct {
	Right bool
	Inner State
}

func (s *EitherState) Clone() State { return &EitherState{Right: s.Right, Inner: CloneState(s.Inner)} }
