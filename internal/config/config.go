package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/booc/pkg/booc"
)

// FileName is the build file looked up in the working directory.
const FileName = ".booc.yaml"

// Defaults.
const (
	DefaultFormat   = "auto"
	DefaultLogLevel = "warn"
)

// File mirrors .booc.yaml.
type File struct {
	booc.Options `yaml:",inline"`

	Exclude []string `yaml:"exclude"`

	ToolDir               string   `yaml:"tool_dir"`
	Launcher              []string `yaml:"launcher"`
	StdoutImportance      string   `yaml:"stdout_importance"`
	StderrImportance      string   `yaml:"stderr_importance"`
	MaxLineLength         int      `yaml:"max_line_length"` // In bytes
	ResponseFileThreshold int      `yaml:"response_file_threshold"`

	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
	CI       bool   `yaml:"ci"`
	Live     bool   `yaml:"live"`
}

// Parse decodes a build file. Unknown keys are an error so typos in option
// names do not silently drop switches.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse build file: %w", err)
	}
	return &f, nil
}

// Load reads the build file at path. An empty path searches FindPath; when
// nothing is found Load returns an empty File and "".
func Load(path string) (*File, string, error) {
	if path == "" {
		path = FindPath()
		if path == "" {
			return &File{}, "", nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read build file: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return f, path, nil
}

// FindPath returns the first existing build file: the working directory's,
// then the user config directory's. It returns "" when there is none.
func FindPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "booc", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
