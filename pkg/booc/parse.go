package booc

import (
	"fmt"
	"sort"
	"strings"
)

// ParseArgs rebuilds Options from a command line produced by Assemble.
//
// Everything the command line encodes is recovered. TargetFrameworkVersion is
// not part of the command line and stays empty. The default pipeline is
// returned verbatim in Pipeline, overflow checking is always set, and a
// Normal verbosity comes back empty. TargetType comes back lower-cased, as
// Assemble writes it.
func ParseArgs(args []string) (Options, error) {
	var opts Options
	for _, tok := range args {
		if tok == "" {
			continue
		}
		if set, ok := flagSetters[tok]; ok {
			set(&opts)
			continue
		}
		if !strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, SwitchResponseFile) {
			opts.Sources = append(opts.Sources, tok)
			continue
		}
		if !parseValued(&opts, tok) {
			return Options{}, fmt.Errorf("parse compiler arguments: unknown switch %q", tok)
		}
	}
	return opts, nil
}

var flagSetters = map[string]func(*Options){
	SwitchWarnAsError: func(o *Options) { o.TreatWarningsAsErrors = true },
	SwitchNoLogo:      func(o *Options) { o.NoLogo = true },
	SwitchNoConfig:    func(o *Options) { o.NoConfig = true },
	SwitchNoStdLib:    func(o *Options) { o.NoStandardLib = true },
	SwitchDelaySign:   func(o *Options) { o.DelaySign = true },
	SwitchWSA:         func(o *Options) { o.WhiteSpaceAgnostic = true },
	SwitchDucky:       func(o *Options) { o.Ducky = true },
	SwitchUTF8:        func(o *Options) { o.Utf8Output = true },
	SwitchStrict:      func(o *Options) { o.Strict = true },
	SwitchUnsafe:      func(o *Options) { o.AllowUnsafeBlocks = true },
	SwitchDebugOn:     func(o *Options) { o.EmitDebugInformation = true },
	SwitchDebugOff:    func(o *Options) { o.EmitDebugInformation = false },
	SwitchCheckedOn:   func(o *Options) { o.CheckForOverflowUnderflow = Bool(true) },
	SwitchCheckedOff:  func(o *Options) { o.CheckForOverflowUnderflow = Bool(false) },
	SwitchVerbose1:    func(o *Options) { o.Verbosity = VerbosityWarning },
	SwitchVerbose2:    func(o *Options) { o.Verbosity = VerbosityInfo },
	SwitchVerbose3:    func(o *Options) { o.Verbosity = VerbosityVerbose },
}

type valuedSetter struct {
	prefix string
	set    func(o *Options, v string)
}

// valuedSetters is ordered by descending prefix length so that longer
// switches win over their own prefixes.
var valuedSetters = func() []valuedSetter {
	s := []valuedSetter{
		{SwitchTarget, func(o *Options, v string) { o.TargetType = v }},
		{SwitchOutput, func(o *Options, v string) { o.OutputAssembly = v }},
		{SwitchCulture, func(o *Options, v string) { o.Culture = v }},
		{SwitchSourceDir, func(o *Options, v string) { o.SourceDirectory = v }},
		{SwitchKeyFile, func(o *Options, v string) { o.KeyFile = v }},
		{SwitchKeyContainer, func(o *Options, v string) { o.KeyContainer = v }},
		{SwitchPipeline, func(o *Options, v string) { o.Pipeline = v }},
		{SwitchDefine, func(o *Options, v string) { o.DefineSymbols = v }},
		{SwitchLib, func(o *Options, v string) { o.AdditionalLibPaths = strings.Split(v, ",") }},
		{SwitchNoWarn, func(o *Options, v string) { o.DisabledWarnings = v }},
		{SwitchWarn, func(o *Options, v string) { o.OptionalWarnings = v }},
		{SwitchPlatform, func(o *Options, v string) { o.Platform = v }},
		{SwitchWarnAsErrorList, func(o *Options, v string) { o.WarningsAsErrors = v }},
		{SwitchResponseFile, func(o *Options, v string) { o.ResponseFiles = append(o.ResponseFiles, v) }},
		{SwitchReference, func(o *Options, v string) { o.References = append(o.References, v) }},
		{SwitchResource, func(o *Options, v string) { o.Resources = append(o.Resources, splitResource(v, ResourceResx)) }},
		{SwitchEmbedRes, func(o *Options, v string) { o.Resources = append(o.Resources, splitResource(v, ResourceNonResx)) }},
	}
	sort.SliceStable(s, func(i, j int) bool { return len(s[i].prefix) > len(s[j].prefix) })
	return s
}()

func parseValued(opts *Options, tok string) bool {
	for _, vs := range valuedSetters {
		if v, ok := strings.CutPrefix(tok, vs.prefix); ok && v != "" {
			vs.set(opts, v)
			return true
		}
	}
	return false
}

// splitResource splits "spec,logicalName" at the last comma.
func splitResource(v string, kind ResourceKind) Resource {
	i := strings.LastIndex(v, ",")
	if i < 0 {
		return Resource{Spec: v, Kind: kind}
	}
	return Resource{Spec: v[:i], Kind: kind, LogicalName: v[i+1:]}
}
