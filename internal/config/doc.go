// Package config loads and merges booc build settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-framework, -verbosity, -tool-dir, -no-color, -ci, ...)
//  2. Environment variables (BOOC_FRAMEWORK, BOOC_VERBOSITY, BOOC_DEBUG,
//     BOOC_TOOL_DIR, NO_COLOR, CI)
//  3. Build file (.booc.yaml in the working directory, or
//     $XDG_CONFIG_HOME/booc/.booc.yaml)
//  4. Hardcoded defaults
//
// # Build File
//
// The build file holds every compiler option under its snake_case name plus
// runner settings:
//
//	target_framework_version: v4.5
//	target_type: library
//	output_assembly: bin/Foo.dll
//	sources: ["src/**/*.boo"]
//	exclude: ["src/**/*_scratch.boo"]
//	references: [System.Xml.dll]
//	resources:
//	  - spec: res/Strings.resources
//	    type: Resx
//	    logical_name: Foo.Strings.resources
//	tool_dir: /usr/lib/boo
//	launcher: [mono]
//	stderr_importance: high
//
// Source entries are doublestar glob patterns relative to the working
// directory; exclude patterns remove matches.
//
// # CI Mode
//
// When CI mode is enabled (via -ci, CI=true, or ci: true in the file) colors
// and the live view are disabled.
package config
