package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/todo/internal/control/cli"
	"github.com/ja-he/todo/internal/control/command"
	"github.com/ja-he/todo/internal/potatolog"
	"github.com/ja-he/todo/internal/storage/providers"
	"github.com/ja-he/todo/internal/styling"
)

// MAIN
func main() {
	// set up stderr logger by default, until we know the requested level
	stderrWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = log.Output(stderrWriter)

	opts, parser, rest, err := cli.ParseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error (e.g. flag parsing):\n > %s\n", err.Error())
		os.Exit(1)
	}
	configData, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error (configuration):\n > %s\n", err.Error())
		os.Exit(1)
	}

	// everything goes to memory, only what was asked for goes to stderr; the
	// rest can still be shown if things go wrong
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(
		potatolog.LevelFilter{Writer: stderrWriter, Min: configData.LogLevel},
		&potatolog.GlobalMemoryLogReaderWriter,
	)).With().Timestamp().Logger().Level(zerolog.TraceLevel)

	log.Debug().
		Str("url", configData.BaseURL).
		Dur("timeout", configData.Timeout).
		Str("format", string(configData.Format)).
		Msg("configured")

	cmd := command.Parse(append([]string{os.Args[0]}, rest...))

	provider := providers.NewHTTPPlanProvider(configData.BaseURL, configData.Timeout, log.Logger)
	dispatcher := cli.NewDispatcher(
		provider,
		os.Stdout,
		configData.Format,
		styling.NewStyler(configData.Color, os.Stdout),
		cli.Usage(parser),
		log.Logger,
	)

	err = dispatcher.Dispatch(context.Background(), cmd)
	if err != nil {
		if configData.LogLevel > zerolog.DebugLevel {
			fmt.Fprintln(os.Stderr, "log trail:")
			_ = potatolog.GlobalMemoryLogReaderWriter.Replay(stderrWriter)
		}
		fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
		os.Exit(1)
	}
}
