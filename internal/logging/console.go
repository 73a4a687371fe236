package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Console is a human-readable output sink. The toolkit writes user-facing
// text through a Console instead of fmt printing so color handling and
// stream routing stay in one place.
type Console struct {
	w       io.Writer
	colored bool
}

// NewConsole wraps a writer. colored controls whether Colorize emits ANSI
// codes.
func NewConsole(w io.Writer, colored bool) *Console {
	return &Console{w: w, colored: colored}
}

// NewConsoles builds the standard and error consoles on stdout/stderr.
// mode is the cli.color setting: "always", "never", or "auto" (color only
// when the stream is a terminal).
func NewConsoles(mode string) (*Console, *Console) {
	return NewConsole(os.Stdout, colorEnabled(mode, os.Stdout)),
		NewConsole(os.Stderr, colorEnabled(mode, os.Stderr))
}

func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// Writer exposes the underlying writer for table renderers.
func (c *Console) Writer() io.Writer { return c.w }

// Colored reports whether this console emits ANSI color codes.
func (c *Console) Colored() bool { return c.colored }

// Print writes its arguments followed by nothing.
func (c *Console) Print(args ...any) {
	fmt.Fprint(c.w, args...)
}

// Printf writes a formatted line without a trailing newline.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Println writes its arguments followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// Colorize wraps s in the given colors when coloring is enabled, and
// returns it unchanged otherwise. The escape sequence is emitted directly so
// the console's own mode decides, not go-pretty's global terminal probe.
func (c *Console) Colorize(colors text.Colors, s string) string {
	if !c.colored || len(colors) == 0 {
		return s
	}
	return colors.EscapeSeq() + s + text.EscapeReset
}
