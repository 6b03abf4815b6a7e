// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/ja-he/todo/internal/config"
)

// Options contains the options for `go-flags` to parse command line args
// (and environment variables) into.
//
// There are deliberately no short options, so that every single-dash token
// is left to the positional grammar (see command.Parse).
type Options struct {
	URL      string        `long:"url" env:"TODO_URL" default:"http://127.0.0.1:8000/" description:"the base URL of the plan server" value-name:"<url>"`
	Timeout  time.Duration `long:"timeout" env:"TODO_TIMEOUT" default:"10s" description:"the timeout for each request to the plan server (0 for none)" value-name:"<duration>"`
	Format   string        `long:"format" env:"TODO_FORMAT" default:"text" choice:"text" choice:"json" choice:"yaml" description:"the format to print plans and statuses in"`
	Color    string        `long:"color" env:"TODO_COLOR" default:"auto" choice:"auto" choice:"always" choice:"never" description:"whether to color statuses"`
	LogLevel string        `long:"log-level" env:"TODO_LOG_LEVEL" default:"warn" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"the minimum level of log messages shown on stderr"`
}

// NewParser creates the option parser for the given options.
//
// Unknown options are not an error but are passed on, in order, with the
// remaining arguments; a '--' ends option parsing.
func NewParser(opts *Options) *flags.Parser {
	parser := flags.NewNamedParser("todo", flags.IgnoreUnknown|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] <arguments>"
	_, err := parser.AddGroup("Application Options", "", opts)
	if err != nil {
		panic(fmt.Sprintf("options struct is malformed (%s)", err))
	}
	return parser
}

// ParseOptions parses options out of args (which exclude the program name)
// and returns them along with the parser and the arguments that remain for
// the command grammar.
func ParseOptions(args []string) (Options, *flags.Parser, []string, error) {
	var opts Options
	parser := NewParser(&opts)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return opts, parser, nil, err
	}
	return opts, parser, rest, nil
}

// Config converts the options to a normalized configuration.
func (o Options) Config() (config.Config, error) {
	level, err := zerolog.ParseLevel(o.LogLevel)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid log level '%s' (%w)", o.LogLevel, err)
	}
	c := config.Config{
		BaseURL:  o.URL,
		Timeout:  o.Timeout,
		Format:   config.Format(o.Format),
		Color:    config.ColorMode(o.Color),
		LogLevel: level,
	}
	return c.Normalize()
}
