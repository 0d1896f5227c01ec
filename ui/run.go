// Package ui provides the top-level driver for running a UI without a
// windowing backend.
//
// Run reads actions in the text protocol of package proto, one per
// line, feeds them to a host and shows the resulting widgets after each
// one:
//
//	h := host.New(counter)
//	if err := ui.Run("Counter", h, ui.Config{In: os.Stdin, Out: os.Stdout}); err != nil {
//		log.Fatal(err)
//	}
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Output formats understood by Run.
const (
	FormatPaint = "paint"
	FormatTree  = "tree"
	FormatDump  = "dump"
	FormatYAML  = "yaml"
)

// Host is what Run needs from a host.Host.
type Host interface {
	ProcessAction(line string) error
	Paint(w io.Writer) error
	TreeText() string
	Dump() string
	YAML() ([]byte, error)
}

// Config controls Run.
type Config struct {
	In  io.Reader
	Out io.Writer
	// Format selects how the widgets are shown; empty means paint.
	Format string
}

// Run drives h until its input is exhausted or a "quit" line is read.
// Blank lines and lines starting with '#' are skipped. A line that
// cannot be handled is reported and skipped; all such errors are
// returned together at the end.
func Run(title string, h Host, cfg Config) error {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	prompt := isTerminal(cfg.In)

	fmt.Fprintf(cfg.Out, "== %s\n", title)
	if err := show(h, cfg); err != nil {
		return err
	}

	var result *multierror.Error
	sc := bufio.NewScanner(cfg.In)
	for lineno := 1; ; lineno++ {
		if prompt {
			fmt.Fprint(cfg.Out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" {
			break
		}
		logrus.WithField("line", lineno).Debugf("ui: action %s", line)
		if err := h.ProcessAction(line); err != nil {
			err = errors.Wrapf(err, "line %d", lineno)
			fmt.Fprintf(cfg.Out, "error: %v\n", err)
			result = multierror.Append(result, err)
			continue
		}
		if err := show(h, cfg); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "ui: read actions"))
	}
	return result.ErrorOrNil()
}

func show(h Host, cfg Config) error {
	switch cfg.Format {
	case "", FormatPaint:
		return h.Paint(cfg.Out)
	case FormatTree:
		_, err := io.WriteString(cfg.Out, h.TreeText())
		return err
	case FormatDump:
		_, err := io.WriteString(cfg.Out, h.Dump())
		return err
	case FormatYAML:
		out, err := h.YAML()
		if err != nil {
			return err
		}
		_, err = cfg.Out.Write(out)
		return err
	}
	return errors.Errorf("ui: unknown format %q", cfg.Format)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
