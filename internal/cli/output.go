package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type outputOptions struct {
	color   bool
	unicode bool
	quiet   bool
}

var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
	outOpt              = outputOptions{color: true, unicode: true}
)

func setOutputOptions(stdout, stderr io.Writer, opt outputOptions) {
	if stdout != nil {
		outStdout = stdout
	}
	if stderr != nil {
		outStderr = stderr
	}
	outOpt = opt
}

// defaultOutputOptions derives options from the environment: colour only on
// a terminal and never when NO_COLOR is set.
func defaultOutputOptions(noColor, ascii, quiet bool) outputOptions {
	color := !noColor && os.Getenv("NO_COLOR") == "" && isTerminalFn(os.Stdout)
	return outputOptions{color: color, unicode: !ascii, quiet: quiet}
}

// style returns a lipgloss style bound to a fixed ANSI profile, so output
// does not depend on what lipgloss detects for the process's stdout.
func style() lipgloss.Style {
	r := lipgloss.NewRenderer(io.Discard)
	if outOpt.color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r.NewStyle()
}

func paint(color lipgloss.Color, s string) string {
	if !outOpt.color {
		return s
	}
	return style().Foreground(color).Render(s)
}

func sym(unicode, ascii string) string {
	if outOpt.unicode {
		return unicode
	}
	return ascii
}

func info(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStdout, "%s  %s\n", paint("4", "i"), msg)
}

func success(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStdout, "%s  %s\n", paint("2", sym("✓", "OK")), msg)
}

func warn(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStdout, "%s  %s\n", paint("3", sym("!", "WARN")), msg)
}

func errMsg(msg string) {
	fmt.Fprintf(outStderr, "%s  %s\n", paint("1", sym("x", "ERR")), msg)
}

func kv(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		fmt.Fprintf(outStdout, "  %s\n", value)
		return
	}
	k := key + ":"
	if outOpt.color {
		k = style().Bold(true).Render(k)
	}
	fmt.Fprintf(outStdout, "  %s %s\n", k, value)
}

// block prints a titled, indented multi-line section.
func block(title, body string) {
	fmt.Fprintln(outStdout)
	if outOpt.color {
		title = style().Bold(true).Underline(true).Render(title)
	}
	fmt.Fprintf(outStdout, "%s\n", title)
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(outStdout, "  %s\n", line)
	}
}
