package invoke

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
	"strings"
)

// ExitCodeNotFound is reported when the compiler executable does not exist.
const ExitCodeNotFound = 127

// ErrNonZeroExit is returned when the compiler ran but exited with a non-zero
// code. Use errors.As with ExitCodeError to read the code.
var ErrNonZeroExit = errors.New("compiler exited with non-zero code")

// ExitCodeError carries the exit code of a failed run.
type ExitCodeError struct {
	Code int
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode maps the error from starting or waiting on a process to an exit
// code: the process status when there is one, 127 when the executable was
// not found, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code, ok := exitCodeFromError(exitErr); ok {
			return code
		}
		return 1
	}

	if isCommandNotFoundError(err) {
		return ExitCodeNotFound
	}
	return 1
}

func isCommandNotFoundError(err error) bool {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return true
	}
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	if runtime.GOOS != "windows" && strings.Contains(errStr, "no such file or directory") {
		return true
	}
	return false
}
