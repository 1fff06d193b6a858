package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
)

// Value sources, reported for debugging.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Formats accepted by -format.
var Formats = []string{"auto", "terminal", "llm", "json", "sarif", "text"}

// CliFlags holds the values of command-line flags. String flags are unset
// when empty; booleans carry an explicit Set marker.
type CliFlags struct {
	ConfigPath string
	Dir        string // working directory; "" is the process's

	Framework      string
	Verbosity      string
	TargetType     string
	OutputAssembly string
	Defines        string
	References     []string
	Sources        []string
	Exclude        []string

	ToolDir  string
	Launcher string // split on whitespace
	Format   string

	Debug   bool
	NoColor bool
	CI      bool
	Live    bool

	// Flags to track if they were explicitly set by the user
	DebugSet   bool
	NoColorSet bool
	CISet      bool
	LiveSet    bool
}

// Runner holds the settings that shape how the compiler is run.
type Runner struct {
	ToolDir               string
	Launcher              []string
	StdoutImportance      diag.Importance
	StderrImportance      diag.Importance
	MaxLineLength         int
	ResponseFileThreshold int
}

// ResolvedConfig holds the final configuration after applying all priority
// rules.
type ResolvedConfig struct {
	Options booc.Options
	Runner  Runner

	Format   string
	LogLevel zerolog.Level
	Debug    bool
	NoColor  bool
	CI       bool
	Live     bool

	// Resolution metadata (for debugging)
	ConfigPath      string
	FrameworkSource string
	VerbositySource string
	ToolDirSource   string
	NoColorSource   string
	CISource        string
}

// ResolveConfig resolves configuration from all sources.
//
// Resolution order:
//  1. Load the build file (or defaults)
//  2. Apply environment variables
//  3. Apply CLI flags (highest priority)
//  4. Expand source globs and validate
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	file, path, err := Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	return Resolve(file, path, flags)
}

// Resolve merges an already loaded build file with the environment and flags.
func Resolve(file *File, path string, flags CliFlags) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		Options:         file.Options,
		Format:          orDefault(file.Format, DefaultFormat),
		NoColor:         file.NoColor,
		CI:              file.CI,
		Live:            file.Live,
		ConfigPath:      path,
		FrameworkSource: sourceOf(file.TargetFrameworkVersion != ""),
		VerbositySource: sourceOf(file.Verbosity != ""),
		ToolDirSource:   sourceOf(file.ToolDir != ""),
		NoColorSource:   sourceOf(file.NoColor),
		CISource:        sourceOf(file.CI),
		Runner: Runner{
			ToolDir:               file.ToolDir,
			Launcher:              file.Launcher,
			MaxLineLength:         file.MaxLineLength,
			ResponseFileThreshold: file.ResponseFileThreshold,
		},
	}
	opts := &resolved.Options
	logLevel := orDefault(file.LogLevel, DefaultLogLevel)

	// Environment
	if v := os.Getenv("BOOC_FRAMEWORK"); v != "" {
		opts.TargetFrameworkVersion = v
		resolved.FrameworkSource = SourceEnv
	}
	if v := os.Getenv("BOOC_VERBOSITY"); v != "" {
		opts.Verbosity = booc.Verbosity(v)
		resolved.VerbositySource = SourceEnv
	}
	if v := os.Getenv("BOOC_TOOL_DIR"); v != "" {
		resolved.Runner.ToolDir = v
		resolved.ToolDirSource = SourceEnv
	}
	if b := getEnvBool("BOOC_DEBUG"); b != nil {
		resolved.Debug = *b
	}
	if b := getEnvBool("BOOC_NO_COLOR", "NO_COLOR"); b != nil {
		resolved.NoColor = *b
		resolved.NoColorSource = SourceEnv
	}
	if b := getEnvBool("BOOC_CI", "CI"); b != nil {
		resolved.CI = *b
		resolved.CISource = SourceEnv
	}

	// CLI flags
	if flags.Framework != "" {
		opts.TargetFrameworkVersion = flags.Framework
		resolved.FrameworkSource = SourceCLI
	}
	if flags.Verbosity != "" {
		opts.Verbosity = booc.Verbosity(flags.Verbosity)
		resolved.VerbositySource = SourceCLI
	}
	if flags.TargetType != "" {
		opts.TargetType = flags.TargetType
	}
	if flags.OutputAssembly != "" {
		opts.OutputAssembly = flags.OutputAssembly
	}
	if flags.Defines != "" {
		opts.DefineSymbols = flags.Defines
	}
	if len(flags.References) > 0 {
		opts.References = append(append([]string{}, opts.References...), flags.References...)
	}
	if flags.ToolDir != "" {
		resolved.Runner.ToolDir = flags.ToolDir
		resolved.ToolDirSource = SourceCLI
	}
	if flags.Launcher != "" {
		resolved.Runner.Launcher = strings.Fields(flags.Launcher)
	}
	if flags.Format != "" {
		resolved.Format = flags.Format
	}
	if flags.DebugSet {
		resolved.Debug = flags.Debug
	}
	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
		resolved.NoColorSource = SourceCLI
	}
	if flags.CISet {
		resolved.CI = flags.CI
		resolved.CISource = SourceCLI
	}
	if flags.LiveSet {
		resolved.Live = flags.Live
	}

	// CI mode implies no color and no live view
	if resolved.CI {
		resolved.NoColor = true
		resolved.Live = false
	}
	if resolved.Debug {
		logLevel = zerolog.LevelDebugValue
	}

	var err error
	if resolved.LogLevel, err = zerolog.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", logLevel, err)
	}
	if resolved.Runner.StdoutImportance, err = parseImportance("stdout_importance", file.StdoutImportance); err != nil {
		return nil, err
	}
	if resolved.Runner.StderrImportance, err = parseImportance("stderr_importance", file.StderrImportance); err != nil {
		return nil, err
	}

	sources, exclude := file.Sources, file.Exclude
	if len(flags.Sources) > 0 {
		sources = flags.Sources
	}
	exclude = append(append([]string{}, exclude...), flags.Exclude...)
	if opts.Sources, err = ExpandSources(flags.Dir, sources, exclude); err != nil {
		return nil, err
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

func parseImportance(key, v string) (diag.Importance, error) {
	if v == "" {
		return diag.ImportanceNormal, nil
	}
	imp, err := diag.ParseImportance(v)
	if err != nil {
		return imp, fmt.Errorf("%s: %w", key, err)
	}
	return imp, nil
}

func sourceOf(inFile bool) string {
	if inFile {
		return SourceFile
	}
	return SourceDefault
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// A set but unparsable value counts as true, as NO_COLOR conventionally does.
// Returns nil if none are set.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				b = true
			}
			return &b
		}
	}
	return nil
}

// validateResolvedConfig rejects invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	valid := false
	for _, f := range Formats {
		if cfg.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid format %q (must be: %s)", cfg.Format, strings.Join(Formats, ", "))
	}
	if cfg.Runner.MaxLineLength < 0 {
		return fmt.Errorf("max_line_length must not be negative, got: %d", cfg.Runner.MaxLineLength)
	}
	if cfg.Runner.ResponseFileThreshold < 0 {
		return fmt.Errorf("response_file_threshold must not be negative, got: %d", cfg.Runner.ResponseFileThreshold)
	}
	return nil
}
