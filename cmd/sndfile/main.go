// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/formats/aiff"
	"github.com/ik5/sndfile/formats/mp3"
	"github.com/ik5/sndfile/internal/config"
	"github.com/ik5/sndfile/internal/logging"
)

// version is set via ldflags at build time
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config    string           `help:"Configuration file (YAML)." placeholder:"FILE"`
	LogLevel  string           `help:"Log level: debug, info, warn or error." placeholder:"LEVEL"`
	LogFormat string           `help:"Log format: console or json." placeholder:"FORMAT"`
	Version   kong.VersionFlag `help:"Show version information."`
}

type CLI struct {
	Globals

	Info    InfoCmd    `cmd:"" help:"Describe sound files."`
	Convert ConvertCmd `cmd:"" help:"Convert a sound file to the format named by the output extension."`
	Formats FormatsCmd `cmd:"" help:"List the registered readers and writers."`
}

// app carries what the commands share once flags and configuration are
// resolved.
type app struct {
	cfg     *config.Config
	factory *sndfile.Factory
	logger  *zap.Logger
	out     io.Writer
}

func newApp(g Globals, out io.Writer) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}

	// The optional readers go after the built-ins so FLAC files with an ID3
	// tag are not taken for MP3.
	f := sndfile.NewFactory(sndfile.WithLogger(logger))
	f.RegisterBuiltins()
	for _, name := range cfg.Codecs.Extra {
		switch name {
		case "mp3":
			f.RegisterReader(mp3.ReaderEntry)
		case "aiff":
			f.RegisterReader(aiff.ReaderEntry)
		}
	}

	return &app{cfg: cfg, factory: f, logger: logger, out: out}, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sndfile"),
		kong.Description("Inspect and convert WAV, FLAC and Ogg Vorbis sound files."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	a, err := newApp(cli.Globals, stdout)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	return ctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sndfile:", err)
		os.Exit(1)
	}
}
