// Package booc turns a build configuration into the command line of the Boo
// compiler.
//
// Options is a plain value record. Assemble renders it into an ordered list
// of Arguments; the same Options always yield the same Arguments. ParseArgs
// reverses the rendering for everything the command line encodes.
package booc

import (
	"errors"
	"strings"
)

// ErrNoSources is returned by Validate when there is nothing to compile.
var ErrNoSources = errors.New("no source files to compile")

// ResourceKind selects how a resource is embedded.
type ResourceKind string

const (
	// ResourceResx is a compiled .resx resource, passed with -resource:.
	ResourceResx ResourceKind = "Resx"
	// ResourceNonResx is any other embedded file, passed with -embedres:.
	ResourceNonResx ResourceKind = "Non-Resx"
)

// Resource is one item to embed into the output assembly.
type Resource struct {
	Spec        string       `yaml:"spec" json:"spec"`
	Kind        ResourceKind `yaml:"type" json:"type"`
	LogicalName string       `yaml:"logical_name" json:"logical_name"`
}

// Verbosity is the compiler's diagnostic verbosity. Values are matched
// case-insensitively.
type Verbosity string

const (
	VerbosityNormal  Verbosity = "Normal"
	VerbosityWarning Verbosity = "Warning"
	VerbosityInfo    Verbosity = "Info"
	VerbosityVerbose Verbosity = "Verbose"
)

// Options holds every setting that shapes one compiler invocation.
type Options struct {
	TargetType      string `yaml:"target_type" json:"target_type,omitempty"`
	OutputAssembly  string `yaml:"output_assembly" json:"output_assembly,omitempty"`
	Culture         string `yaml:"culture" json:"culture,omitempty"`
	SourceDirectory string `yaml:"source_directory" json:"source_directory,omitempty"`
	KeyFile         string `yaml:"key_file" json:"key_file,omitempty"`
	KeyContainer    string `yaml:"key_container" json:"key_container,omitempty"`
	DelaySign       bool   `yaml:"delay_sign" json:"delay_sign,omitempty"`

	// Pipeline names a custom compiler pipeline type. Empty selects the
	// framework build's own pipeline (see DefaultPipeline).
	Pipeline string `yaml:"pipeline" json:"pipeline,omitempty"`

	DefineSymbols      string   `yaml:"define_symbols" json:"define_symbols,omitempty"`
	AdditionalLibPaths []string `yaml:"additional_lib_paths" json:"additional_lib_paths,omitempty"`
	DisabledWarnings   string   `yaml:"disabled_warnings" json:"disabled_warnings,omitempty"`
	OptionalWarnings   string   `yaml:"optional_warnings" json:"optional_warnings,omitempty"`

	// TreatWarningsAsErrors wins over WarningsAsErrors when both are set.
	TreatWarningsAsErrors bool   `yaml:"treat_warnings_as_errors" json:"treat_warnings_as_errors,omitempty"`
	WarningsAsErrors      string `yaml:"warnings_as_errors" json:"warnings_as_errors,omitempty"`

	Platform             string `yaml:"platform" json:"platform,omitempty"`
	NoLogo               bool   `yaml:"no_logo" json:"no_logo,omitempty"`
	NoConfig             bool   `yaml:"no_config" json:"no_config,omitempty"`
	NoStandardLib        bool   `yaml:"no_standard_lib" json:"no_standard_lib,omitempty"`
	WhiteSpaceAgnostic   bool   `yaml:"white_space_agnostic" json:"white_space_agnostic,omitempty"`
	Ducky                bool   `yaml:"ducky" json:"ducky,omitempty"`
	Utf8Output           bool   `yaml:"utf8_output" json:"utf8_output,omitempty"`
	Strict               bool   `yaml:"strict" json:"strict,omitempty"`
	AllowUnsafeBlocks    bool   `yaml:"allow_unsafe_blocks" json:"allow_unsafe_blocks,omitempty"`
	EmitDebugInformation bool   `yaml:"emit_debug_information" json:"emit_debug_information,omitempty"`

	// CheckForOverflowUnderflow is tri-state; nil means enabled.
	CheckForOverflowUnderflow *bool `yaml:"check_for_overflow_underflow" json:"check_for_overflow_underflow,omitempty"`

	ResponseFiles []string   `yaml:"response_files" json:"response_files,omitempty"`
	References    []string   `yaml:"references" json:"references,omitempty"`
	Resources     []Resource `yaml:"resources" json:"resources,omitempty"`

	Verbosity              Verbosity `yaml:"verbosity" json:"verbosity,omitempty"`
	TargetFrameworkVersion string    `yaml:"target_framework_version" json:"target_framework_version,omitempty"`

	Sources []string `yaml:"sources" json:"sources,omitempty"`
}

// Validate reports caller errors that must stop the build before the
// compiler is started.
func (o Options) Validate() error {
	for _, src := range o.Sources {
		if strings.TrimSpace(src) != "" {
			return nil
		}
	}
	return ErrNoSources
}

// CheckOverflow resolves the tri-state overflow checking setting.
func (o Options) CheckOverflow() bool {
	if o.CheckForOverflowUnderflow == nil {
		return true
	}
	return *o.CheckForOverflowUnderflow
}

// Bool returns a pointer to v, for tri-state fields.
func Bool(v bool) *bool {
	return &v
}
