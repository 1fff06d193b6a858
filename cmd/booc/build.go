package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/booc/internal/config"
	"github.com/dkoosis/booc/internal/live"
	"github.com/dkoosis/booc/internal/logging"
	"github.com/dkoosis/booc/pkg/driver"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/render"
	"github.com/dkoosis/booc/pkg/report"
)

// setup parses the shared build flags and resolves the configuration. A
// non-negative exit code means the command should stop.
func setup(name string, args []string, stderr io.Writer) (*config.ResolvedConfig, *config.CliFlags, *string, int) {
	fs := flag.NewFlagSet("booc "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := buildFlags(fs)
	themeFlag := fs.String("theme", "default", "Theme: default, mono")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, nil, exitOK
		}
		return nil, nil, nil, exitUsage
	}
	markSet(fs, flags)

	cfg, err := config.ResolveConfig(*flags)
	if err != nil {
		fmt.Fprintf(stderr, "booc: %v\n", err)
		return nil, nil, nil, exitUsage
	}
	return cfg, flags, themeFlag, -1
}

func newDriver(cfg *config.ResolvedConfig, dir string, logger zerolog.Logger) *driver.Driver {
	logger.Debug().
		Str("config", cfg.ConfigPath).
		Str("framework_source", cfg.FrameworkSource).
		Str("verbosity_source", cfg.VerbositySource).
		Str("tool_dir_source", cfg.ToolDirSource).
		Str("no_color_source", cfg.NoColorSource).
		Str("ci_source", cfg.CISource).
		Msg("configuration resolved")

	r := cfg.Runner
	return driver.New(driver.Config{
		ToolDir:               r.ToolDir,
		Launcher:              r.Launcher,
		Dir:                   dir,
		ResponseFileThreshold: r.ResponseFileThreshold,
		Invoker: invoke.New(invoke.Config{
			StdoutImportance: r.StdoutImportance,
			StderrImportance: r.StderrImportance,
			MaxLineLength:    r.MaxLineLength,
			Logger:           logger,
		}),
		Logger: logger,
	})
}

func runBuild(args []string, stdout, stderr io.Writer) int {
	cfg, flags, themeName, code := setup("build", args, stderr)
	if code >= 0 {
		return code
	}
	logger := logging.New(stderr, logging.Options{Level: cfg.LogLevel, NoColor: cfg.NoColor})
	drv := newDriver(cfg, flags.Dir, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mode := resolveFormat(cfg.Format, stdout)
	reporters := report.Multi{report.NewLog(logger)}
	var view *live.View
	switch {
	case mode == "text":
		reporters = append(reporters, report.NewWriter(stdout))
	case mode == "terminal" && cfg.Live && isTTYWriter(stdout):
		theme := render.ThemeByName(*themeName)
		if cfg.NoColor {
			theme = render.MonoTheme()
		}
		view = live.Start(ctx, stdout, "booc "+cfg.Options.TargetFrameworkVersion, theme)
		reporters = append(reporters, view)
	}

	res, err := drv.Build(ctx, cfg.Options, reporters)
	if view != nil {
		if res == nil {
			view.Close()
		}
		if werr := view.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
			fmt.Fprintf(stderr, "booc: live view: %v\n", werr)
		}
	}
	if res == nil {
		fmt.Fprintf(stderr, "booc: %v\n", err)
		return exitUsage
	}

	if mode != "text" {
		if werr := writeDocument(stdout, res.SARIF(toolVersion()), mode, *themeName, cfg.NoColor); werr != nil {
			fmt.Fprintf(stderr, "booc: writing output: %v\n", werr)
			return exitUsage
		}
		if err != nil && !errors.Is(err, driver.ErrDiagnosticErrors) {
			fmt.Fprintf(stderr, "booc: %v\n", err)
		}
	}
	if err != nil {
		return exitFailure
	}
	return exitOK
}

func runArgs(args []string, stdout, stderr io.Writer) int {
	cfg, flags, _, code := setup("args", args, stderr)
	if code >= 0 {
		return code
	}
	logger := logging.New(stderr, logging.Options{Level: cfg.LogLevel, NoColor: cfg.NoColor})
	plan, err := newDriver(cfg, flags.Dir, logger).Prepare(cfg.Options)
	if err != nil {
		fmt.Fprintf(stderr, "booc: %v\n", err)
		return exitUsage
	}
	for _, issue := range plan.Issues {
		fmt.Fprintf(stderr, "booc: warning %s\n", issue)
	}
	if cfg.Format == "json" {
		return writeJSON(stdout, stderr, struct {
			Framework string   `json:"framework"`
			Tool      string   `json:"tool"`
			Path      string   `json:"path"`
			Args      []string `json:"args"`
		}{plan.Identity.Tag, plan.Identity.ToolName(), plan.Command.Path, plan.Command.Args})
	}
	fmt.Fprintln(stdout, plan.Command.Path)
	for _, a := range plan.Command.Args {
		fmt.Fprintln(stdout, "  "+quoteArg(a))
	}
	return exitOK
}

// quoteArg quotes arguments a shell would split.
func quoteArg(a string) string {
	if a == "" || strings.ContainsAny(a, " \t\"'") {
		return fmt.Sprintf("%q", a)
	}
	return a
}
