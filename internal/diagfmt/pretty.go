package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"venti/internal/diag"
	"venti/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (callers are expected to bag.Sort() beforehand). Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline under the span, then the
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, &d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	startPos, endPos := fs.Resolve(d.Primary)

	path := formatPath(file.Path, opts.PathMode, opts.BaseDir)
	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, startPos.Line, startPos.Col, sev, code, d.Message)

	writeSnippet(w, file, startPos, endPos, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			notePos, _ := fs.Resolve(note.Span)
			noteFile := fs.Get(note.Span.File)
			notePath := formatPath(noteFile.Path, opts.PathMode, opts.BaseDir)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", notePath, notePos.Line, notePos.Col, note.Msg)
		}
	}
}

// writeSnippet prints opts.Context lines of leading context, the primary
// line, and the underline. The underline covers the span's extent on the
// primary line; a multi-line span underlines to the end of that line.
func writeSnippet(w io.Writer, file *source.File, startPos, endPos source.LineCol, opts PrettyOpts) {
	firstLine := startPos.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < firstLine {
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	gutter := len(fmt.Sprintf("%d", startPos.Line))

	for line := firstLine; line <= startPos.Line; line++ {
		text := file.GetLine(line)
		fmt.Fprintf(w, "  %*d | %s\n", gutter, line, text)
	}

	text := file.GetLine(startPos.Line)
	startByte := int(startPos.Col) - 1
	if startByte > len(text) {
		startByte = len(text)
	}
	endByte := len(text)
	if endPos.Line == startPos.Line && int(endPos.Col)-1 < endByte {
		endByte = int(endPos.Col) - 1
	}
	if endByte < startByte {
		endByte = startByte
	}

	pad := runewidth.StringWidth(text[:startByte])
	width := runewidth.StringWidth(text[startByte:endByte])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = color.New(color.FgGreen, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "  %*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
