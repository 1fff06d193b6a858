package booc

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteResponseFile writes args to w in response-file form: one argument per
// line, values with whitespace quoted.
func WriteResponseFile(w io.Writer, args Arguments) error {
	bw := bufio.NewWriter(w)
	for _, a := range args {
		if _, err := bw.WriteString(a.Display() + "\n"); err != nil {
			return fmt.Errorf("write response file: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write response file: %w", err)
	}
	return nil
}

// Spill writes args to a new response file in dir and returns a command line
// that references it instead. The caller owns the file and should remove it
// once the compiler exits.
func Spill(dir string, args Arguments) (Arguments, string, error) {
	f, err := os.CreateTemp(dir, "booc-*.rsp")
	if err != nil {
		return nil, "", fmt.Errorf("create response file: %w", err)
	}
	path := f.Name()
	if err := WriteResponseFile(f, args); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, "", fmt.Errorf("close response file: %w", err)
	}
	return Arguments{{Switch: SwitchResponseFile, Value: path}}, path, nil
}
