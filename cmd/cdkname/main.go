package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/cdknaming/pkg/logger"
	"github.com/theory-cloud/cdknaming/pkg/naming"
	"github.com/theory-cloud/cdknaming/pkg/observability"
	obszap "github.com/theory-cloud/cdknaming/pkg/observability/zap"
	"github.com/theory-cloud/cdknaming/pkg/projectcontext"
)

const (
	exitOK     = 0
	exitNaming = 1
	exitUsage  = 2
)

type config struct {
	contextFile string
	environment string
	strategy    string
	maxLength   int
	trim        string
	style       string
	logLevel    string
	logFormat   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config{}
	fs := flag.NewFlagSet("cdkname", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.contextFile, "context", "", "cdk.json or YAML file holding environment/project/organization")
	fs.StringVar(&cfg.environment, "env", "", "environment, overrides the context file")
	fs.StringVar(&cfg.strategy, "strategy", naming.StrategyBasic.String(), "basic, project or global")
	fs.IntVar(&cfg.maxLength, "max-length", 0, "maximum name length (0 means the default)")
	fs.StringVar(&cfg.trim, "trim", naming.TrimDropPrefixes.String(), "drop-prefixes, truncate-base or none")
	fs.StringVar(&cfg.style, "style", naming.StylePascal.String(), "pascal or kebab")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "console", "console or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "cdkname: at least one base name is required")
		fs.Usage()
		return exitUsage
	}

	log, err := obszap.NewZapLogger(
		observability.LoggerConfig{Format: cfg.logFormat, Level: cfg.logLevel},
		obszap.WithWriteSyncer(zapcore.AddSync(stderr)),
	)
	if err != nil {
		fmt.Fprintf(stderr, "cdkname: FAIL: %v\n", err)
		return exitUsage
	}
	prev := logger.SetLogger(log)
	defer func() {
		_ = log.Close()
		logger.SetLogger(prev)
	}()

	strategy, opts, err := cfg.namingOptions()
	if err != nil {
		log.Error("cdkname: invalid flags", map[string]any{"error": err.Error()})
		return exitUsage
	}

	scope, err := cfg.scope()
	if err != nil {
		log.Error("cdkname: load context", map[string]any{"error": err.Error()})
		return exitUsage
	}

	code := exitOK
	for _, base := range fs.Args() {
		name, err := naming.Name(scope, strategy, base, opts)
		if err != nil {
			log.Error("cdkname: naming failed", map[string]any{
				"base_name": base,
				"error":     err.Error(),
			})
			if errors.Is(err, naming.ErrInvalidOptions) {
				return exitUsage
			}
			code = exitNaming
			continue
		}
		fmt.Fprintln(stdout, name)
	}

	if err := log.Flush(context.Background()); err != nil {
		fmt.Fprintf(stderr, "cdkname: flush logs: %v\n", err)
	}
	return code
}

func (c config) namingOptions() (naming.Strategy, *naming.Options, error) {
	strategy, err := naming.ParseStrategy(c.strategy)
	if err != nil {
		return 0, nil, err
	}
	trim, err := naming.ParseTrimMode(c.trim)
	if err != nil {
		return 0, nil, err
	}
	style, err := naming.ParseStyle(c.style)
	if err != nil {
		return 0, nil, err
	}
	return strategy, &naming.Options{MaxLength: c.maxLength, Trim: trim, Style: style}, nil
}

func (c config) scope() (*projectcontext.Static, error) {
	static := &projectcontext.Static{}
	if c.contextFile != "" {
		loaded, err := projectcontext.LoadFile(c.contextFile)
		if err != nil {
			return nil, err
		}
		static = loaded
	}
	return static.WithEnvironment(c.environment), nil
}
