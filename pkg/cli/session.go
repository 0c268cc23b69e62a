package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/zurustar/layerkit/pkg/format"
	"github.com/zurustar/layerkit/pkg/layer"
	"github.com/zurustar/layerkit/pkg/logger"
)

// Session applies line-oriented operations to one in-memory layer collection.
type Session struct {
	collection *layer.Collection
	uniquefier func(n int) string
	multiEdit  bool
	out        io.Writer
	log        *slog.Logger
}

// NewSession builds a session around a freshly seeded collection.
func NewSession(config *Config, out io.Writer) *Session {
	return &Session{
		collection: layer.NewCollection(),
		uniquefier: format.ForLocale(config.Locale),
		multiEdit:  config.MultiEdit,
		out:        out,
		log:        logger.Get(),
	}
}

// Collection returns the session's collection.
func (s *Session) Collection() *layer.Collection {
	return s.collection
}

// Run reads operations line by line from the configured script file, or from
// in when no script path is set, and applies them to a new session.
func Run(config *Config, in io.Reader, out io.Writer) error {
	var r io.Reader = in
	if config.ScriptPath != "" {
		f, err := os.Open(config.ScriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	session := NewSession(config, out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		session.Execute(scanner.Text())
	}
	return scanner.Err()
}

// Execute runs a single operation line. Blank lines and lines starting with
// '#' are skipped. Bad operations are reported on the session writer and are
// never fatal, matching the model's no-throw contract.
func (s *Session) Execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	op, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	c := s.collection

	switch op {
	case "add":
		candidate := layer.NewLayer()
		candidate.SetName(rest)
		layer.Add(c, candidate, s.uniquefier)
		s.log.Debug("layer added", "name", candidate.Name())

	case "clone":
		index, err := strconv.Atoi(rest)
		if err != nil {
			s.reportf("clone: bad index %q", rest)
			return
		}
		clone := layer.AddClone(c, index)
		if clone == nil {
			s.reportf("clone: nothing to clone at %d", index)
			return
		}
		s.log.Debug("layer cloned", "name", clone.Name(), "index", index)

	case "activate":
		active := layer.EnforceActivePolicyByName(c, rest, false)
		if active != nil && active.Name() != rest {
			s.reportf("activate: %q refused, active layer is %q", rest, active.Name())
		}

	case "hide":
		layer.EnforceHiddenPolicyByName(c, rest, false)

	case "show":
		layer.EnforceHiddenPolicyByName(c, rest, true)

	case "lock", "unlock":
		layer.GetByName(c, rest).SetLocked(op == "lock")

	case "rename":
		indexArg, name, _ := strings.Cut(rest, " ")
		index, err := strconv.Atoi(indexArg)
		if err != nil {
			s.reportf("rename: bad index %q", indexArg)
			return
		}
		layer.UniquefyName(strings.TrimSpace(name), s.uniquefier, c, index)

	case "color":
		indexArg, colorName, _ := strings.Cut(rest, " ")
		index, err := strconv.Atoi(indexArg)
		if err != nil {
			s.reportf("color: bad index %q", indexArg)
			return
		}
		rgba, ok := layer.ColorByName(colorName)
		if !ok {
			s.reportf("color: unknown color %q", colorName)
			return
		}
		if l := c.Get(index); l != nil {
			l.SetColor(rgba)
		}

	case "remove":
		index, err := strconv.Atoi(rest)
		if err != nil {
			s.reportf("remove: bad index %q", rest)
			return
		}
		if index == layer.DefaultLayerIndex {
			s.reportf("remove: the default layer cannot be removed")
			return
		}
		if removed := c.RemoveAt(index); removed != nil {
			s.log.Debug("layer removed", "name", removed.Name())
		}

	case "sort":
		c.Sort()

	case "list":
		s.printTable()

	case "names":
		for _, name := range layer.AssignableNames(c, s.multiEdit) {
			fmt.Fprintln(s.out, name)
		}

	case "reset":
		layer.Reset(c)

	default:
		s.reportf("unknown operation %q", op)
	}
}

func (s *Session) reportf(msg string, args ...any) {
	fmt.Fprintf(s.out, msg+"\n", args...)
}

// printTable writes one row per layer: index, active marker, flags, a color
// swatch, the hex value and the name.
func (s *Session) printTable() {
	for i, l := range s.collection.Layers() {
		marker := " "
		if l == layer.GetActive(s.collection) {
			marker = "*"
		}
		flags := ""
		if !l.IsVisible() {
			flags += "h"
		}
		if l.IsLocked() {
			flags += "L"
		}
		rgba := l.Color()
		swatch := color.RGB(int(rgba.R), int(rgba.G), int(rgba.B)).Sprint("██")
		fmt.Fprintf(s.out, "%3d %s %-2s %s %s %s\n",
			i, marker, flags, swatch, layer.ColorHex(rgba), l.Name())
	}
}
