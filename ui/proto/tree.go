package proto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Node is one widget in a tree snapshot.
type Node struct {
	ID       string
	Kind     string
	Props    map[string]string
	Children []string
}

// Tree is a snapshot of a live widget tree.
type Tree struct {
	Rev   uint64
	Root  string
	Nodes map[string]*Node
	Order []string // pre-order
}

// NewTree returns an empty tree at revision rev.
func NewTree(rev uint64) *Tree {
	return &Tree{Rev: rev, Nodes: make(map[string]*Node)}
}

// node returns the node for id, creating it if needed.
func (t *Tree) node(id string) *Node {
	n := t.Nodes[id]
	if n == nil {
		n = &Node{ID: id, Props: make(map[string]string)}
		t.Nodes[id] = n
		t.Order = append(t.Order, id)
	}
	return n
}

// Add appends a node in pre-order and returns it.
func (t *Tree) Add(id, kind string, props map[string]string) *Node {
	n := t.node(id)
	n.Kind = kind
	for k, v := range props {
		n.Props[k] = v
	}
	return n
}

// SerializeTree encodes a tree in the text format.
func SerializeTree(t *Tree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rev %d\nroot %s\n", t.Rev, t.Root)
	for _, id := range t.Order {
		n := t.Nodes[id]
		if n == nil {
			continue
		}
		fmt.Fprintf(&b, "node %s %s\n", n.ID, n.Kind)
		if len(n.Props) > 0 {
			b.WriteString("prop ")
			b.WriteString(n.ID)
			formatKVs(&b, n.Props)
			b.WriteByte('\n')
		}
		for _, c := range n.Children {
			fmt.Fprintf(&b, "child %s %s\n", n.ID, c)
		}
	}
	return b.String()
}

// ParseTree decodes the text format. Unknown directives are skipped.
func ParseTree(text string) (*Tree, error) {
	t := NewTree(0)
	for lineno, line := range strings.Split(text, "\n") {
		tokens := Tokenize(strings.TrimSpace(line))
		if len(tokens) == 0 {
			continue
		}
		need := map[string]int{"rev": 2, "root": 2, "node": 3, "prop": 2, "child": 3}[tokens[0]]
		if len(tokens) < need {
			return nil, errors.Errorf("proto: line %d: %s needs %d fields", lineno+1, tokens[0], need-1)
		}
		switch tokens[0] {
		case "rev":
			rev, err := strconv.ParseUint(tokens[1], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "proto: line %d: bad rev", lineno+1)
			}
			t.Rev = rev
		case "root":
			t.Root = tokens[1]
		case "node":
			t.node(tokens[1]).Kind = tokens[2]
		case "prop":
			parseKVs(tokens[2:], t.node(tokens[1]).Props)
		case "child":
			p := t.node(tokens[1])
			p.Children = append(p.Children, tokens[2])
		}
	}
	return t, nil
}
