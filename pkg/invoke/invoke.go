// Package invoke runs the compiler as a child process and streams its output
// back line by line.
package invoke

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dkoosis/booc/pkg/diag"
)

const (
	// DefaultMaxLineLength bounds a single output line.
	DefaultMaxLineLength = 1 * 1024 * 1024

	// DefaultGracePeriod is how long a cancelled compiler gets between
	// SIGTERM and SIGKILL.
	DefaultGracePeriod = 2 * time.Second

	lineBuffer = 64
)

// Stream identifies the pipe a line was read from.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Line is one line of compiler output. Truncated is set when the line was
// longer than the configured limit and its tail was dropped.
type Line struct {
	Text       string
	Stream     Stream
	Importance diag.Importance
	Truncated  bool
}

// Command describes the process to start. Empty Dir and nil Env inherit the
// current process's working directory and environment.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Config tunes an Invoker. The zero value reads both streams at Normal
// importance with the default limits.
type Config struct {
	StdoutImportance diag.Importance
	StderrImportance diag.Importance
	MaxLineLength    int
	GracePeriod      time.Duration
	Logger           zerolog.Logger
}

// Invoker starts compiler processes. It holds no per-run state and may be
// shared.
type Invoker struct {
	cfg Config
}

// New returns an Invoker for cfg.
func New(cfg Config) *Invoker {
	if cfg.MaxLineLength <= 0 {
		cfg.MaxLineLength = DefaultMaxLineLength
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	return &Invoker{cfg: cfg}
}

// Run starts cmd, calls handle for every output line until the process exits,
// and returns its exit code.
//
// handle is called from Run's goroutine. Lines of one stream keep their
// order; the interleaving of stdout and stderr is best-effort. Once ctx is
// done the process group is terminated and no further lines are delivered.
//
// A non-zero exit is reported as ErrNonZeroExit wrapping ExitCodeError. A
// missing executable yields exit code 127.
func (iv *Invoker) Run(ctx context.Context, cmd Command, handle func(Line)) (int, error) {
	log := iv.cfg.Logger

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	if cmd.Env != nil {
		c.Env = cmd.Env
	} else {
		c.Env = os.Environ()
	}
	setProcessGroup(c)

	exited := make(chan struct{})
	c.Cancel = func() error {
		log.Debug().Int("pid", c.Process.Pid).Msg("context done, terminating compiler")
		err := terminateProcessGroup(c)
		go func() {
			select {
			case <-exited:
			case <-time.After(iv.cfg.GracePeriod):
				log.Debug().Int("pid", c.Process.Pid).Msg("grace period over, killing compiler")
				_ = killProcessGroup(c)
			}
		}()
		return err
	}
	defer close(exited)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return 1, fmt.Errorf("create stdout pipe: %w", err)
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return 1, fmt.Errorf("create stderr pipe: %w", err)
	}

	if err := c.Start(); err != nil {
		return ExitCode(err), fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	log.Debug().Int("pid", c.Process.Pid).Str("command", cmd.String()).Msg("compiler started")

	lines := make(chan Line, lineBuffer)
	var g errgroup.Group
	g.Go(func() error { return iv.scan(stdout, Stdout, iv.cfg.StdoutImportance, lines) })
	g.Go(func() error { return iv.scan(stderr, Stderr, iv.cfg.StderrImportance, lines) })
	go func() {
		_ = g.Wait()
		close(lines)
	}()

	for line := range lines {
		if ctx.Err() != nil {
			continue
		}
		handle(line)
	}
	scanErr := g.Wait()

	waitErr := c.Wait()
	code := ExitCode(waitErr)
	log.Debug().Int("exit_code", code).Msg("compiler exited")

	var runErr error
	switch {
	case ctx.Err() != nil:
		runErr = fmt.Errorf("compiler interrupted: %w", context.Cause(ctx))
	case waitErr != nil:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			runErr = fmt.Errorf("%w: %w", ErrNonZeroExit, ExitCodeError{Code: code})
		} else {
			runErr = fmt.Errorf("wait for compiler: %w", waitErr)
		}
	}
	if scanErr != nil {
		runErr = errors.Join(runErr, scanErr)
	}
	return code, runErr
}

// scan forwards lines from r until EOF. After a read error the rest of the
// pipe is discarded so the child never blocks on a full pipe.
func (iv *Invoker) scan(r io.Reader, s Stream, imp diag.Importance, out chan<- Line) error {
	err := ReadLines(r, iv.cfg.MaxLineLength, func(text string, dropped int) {
		if dropped > 0 {
			iv.cfg.Logger.Warn().
				Str("stream", s.String()).
				Int("limit", iv.cfg.MaxLineLength).
				Int("dropped", dropped).
				Msg("output line truncated")
		}
		out <- Line{Text: text, Stream: s, Importance: imp, Truncated: dropped > 0}
	})
	if err != nil {
		_, _ = io.Copy(io.Discard, r)
		return fmt.Errorf("read compiler %s: %w", s, err)
	}
	return nil
}

// ReadLines calls fn for every line of r without its line ending. A line
// longer than limit bytes is cut to limit and fn learns how many bytes were
// dropped; reading continues with the next line. ReadLines returns nil at
// EOF or when the pipe was closed.
func ReadLines(r io.Reader, limit int, fn func(text string, dropped int)) error {
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}
	br := bufio.NewReaderSize(r, min(bufio.MaxScanTokenSize, limit))

	var (
		line    []byte
		dropped int
	)
	for {
		frag, more, err := br.ReadLine()
		if err != nil {
			if len(line) > 0 {
				fn(strings.ToValidUTF8(string(line), ""), dropped)
			}
			if isClosedPipe(err) {
				return nil
			}
			return err
		}
		if room := limit - len(line); len(frag) > room {
			dropped += len(frag) - room
			frag = frag[:room]
		}
		line = append(line, frag...)
		if more {
			continue
		}

		text := string(line)
		if dropped > 0 {
			text = strings.ToValidUTF8(text, "")
		}
		fn(text, dropped)
		line, dropped = line[:0], 0
	}
}

func isClosedPipe(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, os.ErrClosed) ||
		strings.Contains(err.Error(), "file already closed") ||
		strings.Contains(err.Error(), "broken pipe")
}
