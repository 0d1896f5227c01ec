package host

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/PoignardAzur/panoramix-sub000/ui/proto"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

// Tree returns a snapshot of the live widgets.
func (h *Host[S]) Tree() *proto.Tree {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensure()
	return widget.Snapshot(h.frame.Seq, h.rev)
}

// TreeText returns the snapshot in the text protocol.
func (h *Host[S]) TreeText() string {
	return proto.SerializeTree(h.Tree())
}

// Dump returns the live widgets as an indented tree.
func (h *Host[S]) Dump() string {
	return widget.Dump(h.Widgets())
}

// Paint writes the text picture of the live widgets to w.
func (h *Host[S]) Paint(w io.Writer) error {
	return widget.Paint(w, h.Widgets())
}

type yamlNode struct {
	ID       string            `yaml:"id"`
	Kind     string            `yaml:"kind"`
	Props    map[string]string `yaml:"props,omitempty"`
	Children []*yamlNode       `yaml:"children,omitempty"`
}

type yamlTree struct {
	Rev  uint64    `yaml:"rev"`
	Root *yamlNode `yaml:"root"`
}

// YAML returns the snapshot as a YAML document.
func (h *Host[S]) YAML() ([]byte, error) {
	t := h.Tree()
	var conv func(id string) *yamlNode
	conv = func(id string) *yamlNode {
		n := t.Nodes[id]
		if n == nil {
			return nil
		}
		y := &yamlNode{ID: n.ID, Kind: n.Kind, Props: n.Props}
		for _, c := range n.Children {
			if cy := conv(c); cy != nil {
				y.Children = append(y.Children, cy)
			}
		}
		return y
	}
	out, err := yaml.Marshal(&yamlTree{Rev: t.Rev, Root: conv(t.Root)})
	if err != nil {
		return nil, errors.Wrap(err, "host: marshal snapshot")
	}
	return out, nil
}
