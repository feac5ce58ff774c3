package controller

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

const highlightTheme = "monokai"

// highlight returns an ANSI highlighted copy of code, or code itself when
// no lexer matches the file name.
func highlight(path m.Path, code string) string {
	lex := lexers.Match(string(path))
	if lex == nil {
		return code
	}

	lex = chroma.Coalesce(lex)

	fmtr := formatters.Get("terminal256")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}

	it, err := lex.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := fmtr.Format(&buf, styles.Get(highlightTheme), it); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}
