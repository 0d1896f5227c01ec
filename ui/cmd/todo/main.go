// Todo is the example app for keyed lists.
//
// Every item is a component with its own local state: the first click
// on "Del" asks for confirmation, the second removes the item. That
// state follows the item when others are added or removed.
//
// Widget ids: 2 is the input box, 3 "Add", 5 "Clear done". Item n has
// its checkbox at 100+2n and its delete button at 101+2n.
//
//	input id=2 text="buy milk"
//	click id=3
//	toggle id=102 value=1
//	click id=5
//
// Usage: todo [--script file] [--format paint|tree|dump|yaml] [--debug]
package main

import (
	"fmt"
	"strconv"

	"github.com/PoignardAzur/panoramix-sub000/ui"
	"github.com/PoignardAzur/panoramix-sub000/ui/cmd/internal/cli"
	"github.com/PoignardAzur/panoramix-sub000/ui/el"
	"github.com/PoignardAzur/panoramix-sub000/ui/host"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
	"github.com/PoignardAzur/panoramix-sub000/ui/widget"
)

type todo struct {
	id   int
	text string
	done bool
}

type todoApp struct {
	items []todo
	draft string
	next  int
}

func (a *todoApp) add() {
	if a.draft == "" {
		return
	}
	a.next++
	a.items = append(a.items, todo{id: a.next, text: a.draft})
	a.draft = ""
}

func (a *todoApp) remove(id int) {
	var kept []todo
	for _, it := range a.items {
		if it.id != id {
			kept = append(kept, it)
		}
	}
	a.items = kept
}

func (a *todoApp) setDone(id int, done bool) {
	for i := range a.items {
		if a.items[i].id == id {
			a.items[i].done = done
		}
	}
}

func (a *todoApp) clearDone() {
	var kept []todo
	for _, it := range a.items {
		if !it.done {
			kept = append(kept, it)
		}
	}
	a.items = kept
}

func (a *todoApp) stats() string {
	done := 0
	for _, it := range a.items {
		if it.done {
			done++
		}
	}
	return fmt.Sprintf("%d items, %d done", len(a.items), done)
}

func itemID(id, k int) widget.ID {
	return widget.ReservedID(uint32(100 + 2*id + k))
}

type itemProps struct {
	todo     todo
	onToggle func(bool)
	onRemove func()
}

// itemState is the local state of one item row.
type itemState struct {
	confirm bool
}

func itemView(st *itemState, p itemProps) vdom.Element {
	del := "Del"
	if st.confirm {
		del = "Sure?"
	}
	return el.Row(
		el.Checkbox(p.todo.text, p.todo.done).ID(itemID(p.todo.id, 0)).OnToggle(p.onToggle),
		el.Button(del).ID(itemID(p.todo.id, 1)).OnClick(func() {
			if st.confirm {
				p.onRemove()
				return
			}
			st.confirm = true
		}),
	)
}

func view(a *todoApp) vdom.Element {
	items := vdom.ListOf(a.items,
		func(it todo) vdom.Key { return vdom.Key(strconv.Itoa(it.id)) },
		func(it todo) vdom.Element {
			return vdom.Component(itemView, itemProps{
				todo:     it,
				onToggle: func(v bool) { a.setDone(it.id, v) },
				onRemove: func() { a.remove(it.id) },
			})
		})
	return el.Column(
		el.Row(
			el.TextBox(a.draft).ID(2).Flex(1).OnChange(func(s string) { a.draft = s }),
			el.Button("Add").ID(3).OnClick(a.add),
		),
		vdom.Either(len(a.items) == 0,
			el.ColumnOf(items),
			el.Label("No items yet. Type above and click Add."),
		),
		el.Label(a.stats()).ID(4),
		el.Button("Clear done").ID(5).OnClick(a.clearDone),
	).ID(1)
}

func main() {
	cli.Execute(cli.NewCommand("todo", "Todo list demo", func(cfg ui.Config) error {
		return ui.Run("Todo", host.New(view), cfg)
	}))
}
