package proto

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Action kinds understood by the headless widgets.
const (
	KindClick  = "click"
	KindInput  = "input"
	KindToggle = "toggle"
)

// Action is a user interaction addressed to one widget.
type Action struct {
	Kind string
	KVs  map[string]string
}

// Click is a button press on widget id.
func Click(id uint64) *Action {
	return &Action{Kind: KindClick, KVs: map[string]string{"id": strconv.FormatUint(id, 10)}}
}

// Input replaces the text of a text box.
func Input(id uint64, text string) *Action {
	return &Action{Kind: KindInput, KVs: map[string]string{
		"id":   strconv.FormatUint(id, 10),
		"text": text,
	}}
}

// Toggle sets the checked state of a checkbox.
func Toggle(id uint64, checked bool) *Action {
	v := "0"
	if checked {
		v = "1"
	}
	return &Action{Kind: KindToggle, KVs: map[string]string{
		"id":    strconv.FormatUint(id, 10),
		"value": v,
	}}
}

// Target returns the widget id the action is addressed to.
func (a *Action) Target() (uint64, error) {
	s, ok := a.KVs["id"]
	if !ok {
		return 0, errors.Errorf("proto: %s action has no id", a.Kind)
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "proto: bad id %q", s)
	}
	return id, nil
}

// SerializeAction encodes an action as one line, keys sorted.
func SerializeAction(a *Action) string {
	var b strings.Builder
	b.WriteString(a.Kind)
	formatKVs(&b, a.KVs)
	return b.String()
}

// ParseAction decodes one action line.
func ParseAction(line string) (*Action, error) {
	tokens := Tokenize(strings.TrimSpace(line))
	if len(tokens) == 0 {
		return nil, errors.New("proto: empty action")
	}
	if strings.Contains(tokens[0], "=") {
		return nil, errors.Errorf("proto: action kind missing before %q", tokens[0])
	}
	a := &Action{Kind: tokens[0], KVs: make(map[string]string)}
	parseKVs(tokens[1:], a.KVs)
	return a, nil
}
