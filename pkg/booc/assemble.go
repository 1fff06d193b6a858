package booc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/booc/pkg/toolchain"
)

// Switch prefixes understood by the compiler.
const (
	SwitchTarget          = "-t:"
	SwitchOutput          = "-o:"
	SwitchCulture         = "-c:"
	SwitchSourceDir       = "-srcdir:"
	SwitchKeyFile         = "-keyfile:"
	SwitchKeyContainer    = "-keycontainer:"
	SwitchPipeline        = "-p:"
	SwitchDefine          = "-define:"
	SwitchLib             = "-lib:"
	SwitchNoWarn          = "-nowarn:"
	SwitchWarn            = "-warn:"
	SwitchPlatform        = "-platform:"
	SwitchWarnAsError     = "-warnaserror"
	SwitchWarnAsErrorList = "-warnaserror:"
	SwitchNoLogo          = "-nologo"
	SwitchNoConfig        = "-noconfig"
	SwitchNoStdLib        = "-nostdlib"
	SwitchDelaySign       = "-delaysign"
	SwitchWSA             = "-wsa"
	SwitchDucky           = "-ducky"
	SwitchUTF8            = "-utf8"
	SwitchStrict          = "-strict"
	SwitchUnsafe          = "-unsafe"
	SwitchDebugOn         = "-debug+"
	SwitchDebugOff        = "-debug-"
	SwitchCheckedOn       = "-checked+"
	SwitchCheckedOff      = "-checked-"
	SwitchResponseFile    = "@"
	SwitchReference       = "-r:"
	SwitchResource        = "-resource:"
	SwitchEmbedRes        = "-embedres:"
	SwitchVerbose1        = "-v"
	SwitchVerbose2        = "-vv"
	SwitchVerbose3        = "-vvv"
)

// lower folds s to lower case. A Caser holds state, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// DefaultPipeline is the pipeline type shipped inside the compiler build
// named by id.
func DefaultPipeline(id toolchain.Identity) string {
	name := id.AssemblyName
	return name + ".PipeLine, " + name + ", Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"
}

// Assemble renders opts into the compiler command line for id.
//
// Valued switches come first, then the warnings-as-errors switch, the bare
// flags, the debug and checked toggles, response files, references,
// resources, the verbosity switch, and finally the source files. Problems
// that do not stop the build are returned as Issues.
func Assemble(opts Options, id toolchain.Identity) (Arguments, []Issue) {
	b := &builder{}

	if opts.TargetType != "" {
		b.valued(SwitchTarget, lower(opts.TargetType))
	}
	b.valued(SwitchOutput, opts.OutputAssembly)
	b.valued(SwitchCulture, opts.Culture)
	b.valued(SwitchSourceDir, opts.SourceDirectory)
	b.valued(SwitchKeyFile, opts.KeyFile)
	b.valued(SwitchKeyContainer, opts.KeyContainer)

	pipeline := opts.Pipeline
	if pipeline == "" {
		pipeline = DefaultPipeline(id)
	}
	b.valued(SwitchPipeline, pipeline)

	b.valued(SwitchDefine, opts.DefineSymbols)
	b.valued(SwitchLib, strings.Join(opts.AdditionalLibPaths, ","))
	b.valued(SwitchNoWarn, opts.DisabledWarnings)
	b.valued(SwitchWarn, opts.OptionalWarnings)
	b.valued(SwitchPlatform, opts.Platform)

	if opts.TreatWarningsAsErrors {
		b.flag(SwitchWarnAsError, true)
	} else {
		b.valued(SwitchWarnAsErrorList, opts.WarningsAsErrors)
	}

	b.flag(SwitchNoLogo, opts.NoLogo)
	b.flag(SwitchNoConfig, opts.NoConfig)
	b.flag(SwitchNoStdLib, opts.NoStandardLib)
	b.flag(SwitchDelaySign, opts.DelaySign)
	b.flag(SwitchWSA, opts.WhiteSpaceAgnostic)
	b.flag(SwitchDucky, opts.Ducky)
	b.flag(SwitchUTF8, opts.Utf8Output)
	b.flag(SwitchStrict, opts.Strict)
	b.flag(SwitchUnsafe, opts.AllowUnsafeBlocks)

	b.toggle(opts.EmitDebugInformation, SwitchDebugOn, SwitchDebugOff)
	b.toggle(opts.CheckOverflow(), SwitchCheckedOn, SwitchCheckedOff)

	for _, rsp := range opts.ResponseFiles {
		b.valued(SwitchResponseFile, rsp)
	}
	for _, ref := range opts.References {
		b.valued(SwitchReference, ref)
	}
	for _, res := range opts.Resources {
		switch res.Kind {
		case ResourceResx:
			b.valued(SwitchResource, res.Spec+","+res.LogicalName)
		case ResourceNonResx:
			b.valued(SwitchEmbedRes, res.Spec+","+res.LogicalName)
		default:
			b.issues = append(b.issues, unknownResourceKind(res))
		}
	}

	if opts.Verbosity != "" {
		sw, ok := verbositySwitch(opts.Verbosity)
		switch {
		case !ok:
			b.issues = append(b.issues, invalidVerbosity(opts.Verbosity))
		case sw != "":
			b.flag(sw, true)
		}
	}

	for _, src := range opts.Sources {
		if strings.TrimSpace(src) != "" {
			b.args = append(b.args, Argument{Value: src})
		}
	}

	return b.args, b.issues
}

// verbositySwitch maps a verbosity to its switch. Normal maps to no switch;
// ok is false for unrecognized values.
func verbositySwitch(v Verbosity) (sw string, ok bool) {
	switch lower(string(v)) {
	case "normal":
		return "", true
	case "warning":
		return SwitchVerbose1, true
	case "info":
		return SwitchVerbose2, true
	case "verbose":
		return SwitchVerbose3, true
	default:
		return "", false
	}
}

type builder struct {
	args   Arguments
	issues []Issue
}

// valued appends sw with value, skipping empty values.
func (b *builder) valued(sw, value string) {
	if value == "" {
		return
	}
	b.args = append(b.args, Argument{Switch: sw, Value: value})
}

func (b *builder) flag(sw string, on bool) {
	if on {
		b.args = append(b.args, Argument{Switch: sw})
	}
}

func (b *builder) toggle(on bool, onSwitch, offSwitch string) {
	if on {
		b.flag(onSwitch, true)
		return
	}
	b.flag(offSwitch, true)
}
