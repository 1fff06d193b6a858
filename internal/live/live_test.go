package live

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/booc/pkg/render"
	"github.com/dkoosis/booc/pkg/report"
)

func waitFor(t *testing.T, v *View) error {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- v.Wait() }()
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("view did not stop")
		return nil
	}
}

func TestView_Wait_Returns_When_ClosedWithoutFinish(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	v := Start(context.Background(), &out, "booc v9.9", render.MonoTheme())
	v.Close()

	require.NoError(t, waitFor(t, v))
}

func TestView_Wait_Returns_When_Finished(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	v := Start(context.Background(), &out, "booc v4.5", render.MonoTheme())
	v.Finish(report.Summary{Success: true, Duration: time.Second})

	require.NoError(t, waitFor(t, v))
	assert.Contains(t, out.String(), "booc v4.5")
}
