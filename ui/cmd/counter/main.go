// Counter is a minimal example app using the ui framework.
//
// It shows a counter with increment and decrement buttons, a name input
// and a checkbox, and reads actions from stdin or a script:
//
//	click id=3
//	input id=5 text=alice
//	toggle id=7 value=1
//
// Usage: counter [--script file] [--format paint|tree|dump|yaml] [--debug]
package main

import (
	"strconv"

	"github.com/PoignardAzur/panoramix-sub000/ui"
	"github.com/PoignardAzur/panoramix-sub000/ui/cmd/internal/cli"
	"github.com/PoignardAzur/panoramix-sub000/ui/el"
	"github.com/PoignardAzur/panoramix-sub000/ui/host"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
)

const (
	idCount = 2 + iota
	idDec
	idInc
	idName
	idGreeting
	idAgree
)

type counterApp struct {
	count int
	name  string
	agree bool
}

func view(a *counterApp) vdom.Element {
	return el.Column(
		el.Label("Counter Demo"),
		el.Row(
			el.Button("-").ID(idDec).OnClick(func() { a.count-- }),
			el.Label(strconv.Itoa(a.count)).ID(idCount),
			el.Button("+").ID(idInc).OnClick(func() { a.count++ }),
		),
		el.Row(
			el.Label("Name:"),
			el.TextBox(a.name).ID(idName).Flex(1).OnChange(func(s string) { a.name = s }),
		),
		vdom.When(a.name != "", el.Label(greeting(a.name)).ID(idGreeting)),
		el.Checkbox("I agree", a.agree).ID(idAgree).OnToggle(func(v bool) { a.agree = v }),
	).ID(1)
}

func greeting(name string) string {
	return "Hello, " + name + "!"
}

func main() {
	cli.Execute(cli.NewCommand("counter", "Counter demo", func(cfg ui.Config) error {
		return ui.Run("Counter", host.New(view), cfg)
	}))
}
