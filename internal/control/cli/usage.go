package cli

import (
	"bytes"

	"github.com/jessevdk/go-flags"
)

const usageLines = `Usage: todo [hh:mm] [hh:mm] title
            [hh:mm] . title
            [hh:mm] title
            -h --help
            -v --version
            -l --list
            -g --get id
            -d --delete id
            -c --clear
`

// Usage returns the help text: the argument grammar, followed by the options
// known to the parser.
func Usage(parser *flags.Parser) string {
	var b bytes.Buffer
	b.WriteString(usageLines)
	if parser != nil {
		b.WriteString("\n")
		parser.WriteHelp(&b)
	}
	return b.String()
}
