package msgpckdump

import (
	"fmt"
	"io"
	"strings"
)

// token is one decoded value ready for emission. A token is built
// immediately before its line is written and discarded right after;
// no tree of tokens ever exists.
type token struct {
	name  string
	start int
	level int
	text  string
}

// lineWriter renders tokens one line at a time. Each line goes to the
// sink in a single write as soon as the token is produced, so abrupt
// termination never loses completed lines to buffering here.
type lineWriter struct {
	w           io.Writer
	showOffsets bool
	width       int
}

func newLineWriter(w io.Writer, cfg Config, inputLen int) *lineWriter {
	return &lineWriter{
		w:           w,
		showOffsets: cfg.ShowOffsets,
		width:       offsetWidth(inputLen),
	}
}

// offsetWidth returns the column width needed for the largest valid
// offset in an input of n bytes. Fixed once per run so the column
// stays aligned across all lines.
func offsetWidth(n int) int {
	w := 1
	for max := n - 1; max >= 10; max /= 10 {
		w++
	}
	return w
}

// emit writes the single output line for tok:
// [<offset> ]<indent>[<FormatName>] <decoded>
// When the decoded text is empty (zero-length binary), the line ends
// after the bracketed name with no trailing space.
func (lw *lineWriter) emit(tok token) error {
	body := "[" + tok.name + "]"
	if tok.text != "" {
		body += " " + tok.text
	}
	indent := strings.Repeat("  ", tok.level)

	var line string
	if lw.showOffsets {
		line = fmt.Sprintf("%*d %s%s\n", lw.width, tok.start, indent, body)
	} else {
		line = indent + body + "\n"
	}
	_, err := io.WriteString(lw.w, line)
	return err
}
