package widget

import (
	"github.com/xlab/treeprint"

	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
)

// rootID names the synthetic root used when a sequence does not consist
// of exactly one widget.
const rootID = "root"

// Snapshot captures the widget tree under seq in the text protocol model.
func Snapshot(seq Seq, rev uint64) *proto.Tree {
	t := proto.NewTree(rev)
	top := Flatten(seq)
	if len(top) == 1 {
		t.Root = top[0].ID().String()
	} else {
		t.Root = rootID
		t.Add(rootID, "seq", nil).Children = ids(top)
	}
	Walk(seq, func(w Widget) bool {
		t.Add(w.ID().String(), w.Kind(), w.Props()).Children = ids(w.Children())
		return true
	})
	return t
}

func ids(ws []Widget) []string {
	var out []string
	for _, w := range ws {
		out = append(out, w.ID().String())
	}
	return out
}

// Dump renders the widget tree under seq as an indented tree for
// debugging.
func Dump(seq Seq) string {
	tree := treeprint.NewWithRoot("seq")
	var add func(b treeprint.Tree, ws []Widget)
	add = func(b treeprint.Tree, ws []Widget) {
		for _, w := range ws {
			label := w.Kind() + " " + w.ID().String()
			if text, ok := w.Props()["text"]; ok {
				label += " " + proto.EscapeValue(text)
			}
			if cs := w.Children(); len(cs) > 0 {
				add(b.AddBranch(label), cs)
			} else {
				b.AddNode(label)
			}
		}
	}
	add(tree, Flatten(seq))
	return tree.String()
}
