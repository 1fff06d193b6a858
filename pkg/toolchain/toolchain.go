// Package toolchain maps a target-framework tag to the compiler build that
// serves it.
package toolchain

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// Identity names one framework-specific build of the compiler.
type Identity struct {
	Tag          string `json:"tag"`
	AssemblyName string `json:"assembly_name"`
}

// ToolName is the executable file name of the compiler build.
func (id Identity) ToolName() string {
	return id.AssemblyName + ".exe"
}

// Path joins dir with the tool name.
func (id Identity) Path(dir string) string {
	if dir == "" {
		return id.ToolName()
	}
	return filepath.Join(dir, id.ToolName())
}

// ErrUnsupportedVersion matches every *UnsupportedVersionError under errors.Is.
var ErrUnsupportedVersion = errors.New("unsupported runtime version")

// UnsupportedVersionError reports a framework tag missing from the table.
type UnsupportedVersionError struct {
	Tag string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Unknown runtime version %s.", e.Tag)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// assemblies is built once and never written afterwards.
var assemblies = map[string]string{
	"v4.5":   "boocNET45",
	"v4.5.1": "boocNET451",
	"v4.5.2": "boocNET452",
	"v4.6":   "boocNET46",
	"v4.6.1": "boocNET461",
}

// Resolve returns the compiler identity for tag. Lookup is exact: there is no
// fallback for unknown or empty tags.
func Resolve(tag string) (Identity, error) {
	name, ok := assemblies[tag]
	if !ok {
		return Identity{}, &UnsupportedVersionError{Tag: tag}
	}
	return Identity{Tag: tag, AssemblyName: name}, nil
}

// Supported lists every known tag in ascending order.
func Supported() []string {
	tags := make([]string, 0, len(assemblies))
	for tag := range assemblies {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// All returns the identity of every known build, ordered by tag.
func All() []Identity {
	tags := Supported()
	ids := make([]Identity, len(tags))
	for i, tag := range tags {
		ids[i] = Identity{Tag: tag, AssemblyName: assemblies[tag]}
	}
	return ids
}
