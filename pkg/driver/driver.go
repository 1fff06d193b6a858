// Package driver runs one compiler build end to end: it resolves the
// framework build, assembles the command line, starts the compiler, and
// classifies and reports what it prints.
package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/report"
	"github.com/dkoosis/booc/pkg/toolchain"
)

var (
	// ErrBuildFailed wraps every process failure: missing executable,
	// non-zero exit, crash or interruption.
	ErrBuildFailed = errors.New("build failed")

	// ErrDiagnosticErrors is returned when the compiler exited cleanly but
	// printed error diagnostics.
	ErrDiagnosticErrors = errors.New("compiler reported errors")
)

// Config holds runner settings that are not part of the compiler options.
type Config struct {
	// ToolDir is the directory holding the compiler builds. Empty leaves the
	// executable to PATH lookup.
	ToolDir string
	// Launcher is prepended to the command, e.g. ["mono"].
	Launcher []string
	// Dir is the compiler's working directory.
	Dir string
	// Env replaces the compiler's environment when non-nil.
	Env []string
	// ResponseFileThreshold moves the arguments into a response file when the
	// rendered command line is longer. Zero disables spilling.
	ResponseFileThreshold int
	// TempDir receives response files. Empty uses os.TempDir.
	TempDir string

	Invoker    *invoke.Invoker
	Classifier *diag.Classifier
	Logger     zerolog.Logger
}

// Driver runs builds. It holds no per-build state and may be shared.
type Driver struct {
	cfg Config
}

// New returns a Driver for cfg, filling in the default invoker and
// classifier.
func New(cfg Config) *Driver {
	if cfg.Invoker == nil {
		cfg.Invoker = invoke.New(invoke.Config{Logger: cfg.Logger})
	}
	if cfg.Classifier == nil {
		cfg.Classifier = diag.DefaultClassifier()
	}
	return &Driver{cfg: cfg}
}

// Plan is a prepared invocation.
type Plan struct {
	Identity toolchain.Identity
	Args     booc.Arguments
	Issues   []booc.Issue
	Command  invoke.Command
}

// Prepare validates opts and renders the command that Build would run. It
// never starts a process.
func (d *Driver) Prepare(opts booc.Options) (*Plan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	id, err := toolchain.Resolve(opts.TargetFrameworkVersion)
	if err != nil {
		return nil, err
	}
	args, issues := booc.Assemble(opts, id)
	return &Plan{
		Identity: id,
		Args:     args,
		Issues:   issues,
		Command:  d.command(id, args),
	}, nil
}

func (d *Driver) command(id toolchain.Identity, args booc.Arguments) invoke.Command {
	cmd := invoke.Command{Path: id.Path(d.cfg.ToolDir), Dir: d.cfg.Dir, Env: d.cfg.Env}
	if len(d.cfg.Launcher) > 0 {
		cmd.Path = d.cfg.Launcher[0]
		cmd.Args = append(append([]string{}, d.cfg.Launcher[1:]...), id.Path(d.cfg.ToolDir))
	}
	cmd.Args = append(cmd.Args, args.Strings()...)
	return cmd
}

// Build runs the compiler for opts and streams its diagnostics to rep.
//
// Validation and resolution errors are returned with a nil Result, and rep
// sees no events. Past that point Build always returns a Result alongside
// any error and calls rep.Finish exactly once.
func (d *Driver) Build(ctx context.Context, opts booc.Options, rep report.Reporter) (*Result, error) {
	if rep == nil {
		rep = report.Discard{}
	}
	log := d.cfg.Logger

	plan, err := d.Prepare(opts)
	if err != nil {
		log.Error().Err(err).Msg("build configuration rejected")
		return nil, err
	}
	res := &Result{
		ID:       uuid.New(),
		Identity: plan.Identity,
		Args:     plan.Args,
		Issues:   plan.Issues,
	}
	log = log.With().Str("build_id", res.ID.String()).Logger()
	log.Debug().Str("tag", plan.Identity.Tag).Str("tool", plan.Identity.ToolName()).Msg("resolved compiler")

	for _, issue := range plan.Issues {
		rep.Issue(issue)
	}

	cmd := plan.Command
	if d.cfg.ResponseFileThreshold > 0 && len(cmd.String()) > d.cfg.ResponseFileThreshold {
		rsp, path, err := booc.Spill(d.cfg.TempDir, plan.Args)
		if err != nil {
			res.Command = cmd
			res.ExitCode = 1
			err = fmt.Errorf("%w: %w", ErrBuildFailed, err)
			log.Error().Err(err).Msg("response file not written")
			rep.Finish(res.Summary(err))
			return res, err
		}
		defer os.Remove(path)
		log.Debug().Str("path", path).Int("arguments", plan.Args.Len()).Msg("arguments moved to response file")
		cmd = d.command(plan.Identity, rsp)
	}
	res.Command = cmd

	log.Info().Str("command", cmd.String()).Msg("starting compiler")
	res.Started = time.Now()
	code, runErr := d.cfg.Invoker.Run(ctx, cmd, func(line invoke.Line) {
		if rec, ok := d.cfg.Classifier.Classify(line.Text, line.Importance); ok {
			res.Records = append(res.Records, rec)
			rep.Diagnostic(rec)
			return
		}
		rep.Message(line)
	})
	res.Duration = time.Since(res.Started)
	res.ExitCode = code

	switch {
	case runErr != nil:
		err = fmt.Errorf("%w: %w", ErrBuildFailed, runErr)
	case res.Errors() > 0:
		err = ErrDiagnosticErrors
	}

	rep.Finish(res.Summary(err))
	return res, err
}
