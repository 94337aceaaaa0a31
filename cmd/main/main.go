package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/commitlint/internal/app"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath  = kingpin.Flag("config", "path to config file").Short('c').String()
	format      = kingpin.Flag("format", "output format: text or json").Short('f').String()
	noColor     = kingpin.Flag("no-color", "disable colored output").Bool()
	verbose     = kingpin.Flag("verbose", "enable debug logging").Short('v').Bool()
	messagePath = kingpin.Arg("message-file", "commit message file, '-' for stdin").String()
)

func main() {
	kingpin.Parse()
	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()
	err = run(ctx)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}

	level := logze.LevelError
	if *verbose {
		level = logze.LevelDebug
	}
	logze.Init(logze.C().WithConsole().WithLevel(level))

	if *format != "" {
		cfg.Output.Format = *format
	}
	if *noColor {
		cfg.Output.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return erro.Wrap(err, "validate config")
	}

	linter, err := app.New(ctx, cfg)
	if err != nil {
		return erro.Wrap(err, "new linter")
	}

	if err := linter.Run(ctx, os.Stdout, *messagePath); err != nil {
		return erro.Wrap(err, "run lints")
	}

	return nil
}
