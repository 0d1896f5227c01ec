package ui_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/PoignardAzur/panoramix-sub000/ui"
	"github.com/PoignardAzur/panoramix-sub000/ui/el"
	"github.com/PoignardAzur/panoramix-sub000/ui/host"
	"github.com/PoignardAzur/panoramix-sub000/ui/vdom"
)

func counter(n *int) vdom.Element {
	return el.Row(
		el.Label(strconv.Itoa(*n)).ID(1),
		el.Button("+").ID(2).OnClick(func() { *n++ }),
	)
}

func TestRun(t *testing.T) {
	h := host.New(counter)
	script := "# comment\nclick id=2\n\nclick id=2\nquit\nclick id=2\n"
	var out strings.Builder
	if err := ui.Run("Counter", h, ui.Config{In: strings.NewReader(script), Out: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "== Counter\n0 [ + ]\n1 [ + ]\n2 [ + ]\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
	if *h.App() != 2 {
		t.Errorf("count = %d, want 2", *h.App())
	}
}

func TestRunCollectsErrors(t *testing.T) {
	h := host.New(counter)
	script := "click id=9\nclick id=2\nbogus\n"
	var out strings.Builder
	err := ui.Run("Counter", h, ui.Config{In: strings.NewReader(script), Out: &out})
	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("Run error = %v, want a *multierror.Error", err)
	}
	if len(merr.Errors) != 2 {
		t.Fatalf("%d errors, want 2: %v", len(merr.Errors), merr)
	}
	for i, line := range []string{"line 1", "line 3"} {
		if !strings.HasPrefix(merr.Errors[i].Error(), line) {
			t.Errorf("error %d = %q, want prefix %q", i, merr.Errors[i], line)
		}
	}
	if *h.App() != 1 {
		t.Errorf("count = %d, want 1", *h.App())
	}
	if !strings.Contains(out.String(), "error: line 1") {
		t.Errorf("output does not report the error:\n%s", out.String())
	}
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{ui.FormatTree, "node 2 button"},
		{ui.FormatDump, "button 2 +"},
		{ui.FormatYAML, "kind: button"},
	}
	for _, tt := range tests {
		var out strings.Builder
		err := ui.Run("Counter", host.New(counter), ui.Config{In: strings.NewReader(""), Out: &out, Format: tt.format})
		if err != nil {
			t.Errorf("%s: %v", tt.format, err)
			continue
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("%s: output missing %q:\n%s", tt.format, tt.want, out.String())
		}
	}

	err := ui.Run("Counter", host.New(counter), ui.Config{In: strings.NewReader(""), Out: &strings.Builder{}, Format: "pdf"})
	if err == nil {
		t.Error("unknown format accepted")
	}
}
