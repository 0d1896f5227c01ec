// Package listdiff computes edit scripts between keyed sequences.
//
// The algorithm is a greedy first-match scan, not an optimal LCS:
// starting from two cursors, it looks for the first old position (in
// increasing order) that has a matching key at or after the new cursor,
// and takes the first such new position. Everything skipped over on
// either side becomes one edit item. The cost is O(n·m) in the worst
// case and the result is not a minimal edit script; a pure reorder is
// expressed as inserts and removes, since there is no move operation.
//
// An edit script is replayed with Apply. The same script can be applied
// to any sequence parallel to the old keys (state slots, widgets, ...),
// which is how callers keep several structures in lockstep.
//
// Keys must be unique within one sequence. Duplicate keys produce some
// script, but nothing is guaranteed about it.
package listdiff

import (
	"fmt"
	"strings"
)

// Edit is one splice of an edit script.
type Edit[K comparable] struct {
	// Index is the position in the old sequence where the splice starts.
	Index int
	// PreservedBefore is the number of matched items immediately
	// preceding this edit.
	PreservedBefore int
	// Removed is the number of old items removed starting at Index.
	Removed int
	// Inserted holds the new keys inserted at Index.
	Inserted []K
}

func (e Edit[K]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%d keep=%d del=%d ins=[", e.Index, e.PreservedBefore, e.Removed)
	for i, k := range e.Inserted {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, k)
	}
	b.WriteByte(']')
	return b.String()
}

// Compute returns the edit script turning old into new.
//
// The script always ends with a tail item, so it is never empty:
// Compute(nil, nil) is a single zero item, and for identical inputs the
// single item has PreservedBefore equal to len(old).
func Compute[K comparable](old, new []K) []Edit[K] {
	var script []Edit[K]
	oldCur, newCur := 0, 0
	preserved := 0
	for {
		iOld, iNew, ok := firstCommon(old, new, oldCur, newCur)
		if !ok {
			break
		}
		if iOld == oldCur && iNew == newCur {
			preserved++
		} else {
			script = append(script, Edit[K]{
				Index:           oldCur,
				PreservedBefore: preserved,
				Removed:         iOld - oldCur,
				Inserted:        cloneKeys(new[newCur:iNew]),
			})
			preserved = 1
		}
		oldCur, newCur = iOld+1, iNew+1
	}
	return append(script, Edit[K]{
		Index:           oldCur,
		PreservedBefore: preserved,
		Removed:         len(old) - oldCur,
		Inserted:        cloneKeys(new[newCur:]),
	})
}

// firstCommon finds the first pair of positions, old-major, holding
// equal keys at or after the cursors.
func firstCommon[K comparable](old, new []K, oldCur, newCur int) (int, int, bool) {
	for i := oldCur; i < len(old); i++ {
		for j := newCur; j < len(new); j++ {
			if old[i] == new[j] {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func cloneKeys[K comparable](keys []K) []K {
	if len(keys) == 0 {
		return nil
	}
	return append([]K(nil), keys...)
}

// Apply replays script on old and returns the resulting sequence.
// For every inserted key, insert is called with the key's position in
// the new sequence. Items of old that are preserved keep their value.
//
// old is not modified.
func Apply[K comparable, T any](script []Edit[K], old []T, insert func(newIndex int, key K) T) []T {
	out := append([]T(nil), old...)
	offset := 0
	for _, e := range script {
		start := e.Index + offset
		end := start + e.Removed
		ins := make([]T, len(e.Inserted))
		for j, k := range e.Inserted {
			ins[j] = insert(start+j, k)
		}
		tail := append(ins, out[end:]...)
		out = append(out[:start], tail...)
		offset += len(e.Inserted) - e.Removed
	}
	return out
}

// Keys extracts the keys of a sequence.
func Keys[K comparable, T any](items []T, key func(T) K) []K {
	keys := make([]K, len(items))
	for i, it := range items {
		keys[i] = key(it)
	}
	return keys
}

// Stats sums up a script. It is used for logging.
func Stats[K comparable](script []Edit[K]) (preserved, removed, inserted int) {
	for _, e := range script {
		preserved += e.PreservedBefore
		removed += e.Removed
		inserted += len(e.Inserted)
	}
	return
}
