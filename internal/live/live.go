package live

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/render"
	"github.com/dkoosis/booc/pkg/report"
)

// View runs the progress line in its own goroutine and implements
// report.Reporter by forwarding each event to it.
type View struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

var _ report.Reporter = (*View)(nil)

// Start launches the view on out. Input is not read, so the compiler keeps
// the terminal's stdin.
func Start(ctx context.Context, out io.Writer, label string, theme render.Theme) *View {
	v := &View{
		program: tea.NewProgram(NewModel(label, theme),
			tea.WithContext(ctx),
			tea.WithOutput(out),
			tea.WithInput(nil),
		),
		done: make(chan struct{}),
	}
	go func() {
		defer close(v.done)
		_, v.err = v.program.Run()
	}()
	return v
}

func (v *View) Diagnostic(rec diag.Record) { v.program.Send(diagnosticMsg(rec)) }
func (v *View) Message(line invoke.Line)   { v.program.Send(messageMsg(line)) }
func (v *View) Issue(issue booc.Issue)     { v.program.Send(issueMsg(issue)) }
func (v *View) Finish(sum report.Summary)  { v.program.Send(finishMsg(sum)) }

// Close stops a view that will never see Finish, such as when the build was
// rejected before the compiler started.
func (v *View) Close() { v.program.Quit() }

// Wait blocks until the view has drawn its final frame and released the
// terminal. A view cancelled through its context returns
// tea.ErrProgramKilled.
func (v *View) Wait() error {
	<-v.done
	return v.err
}
