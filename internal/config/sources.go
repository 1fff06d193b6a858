package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandSources resolves source patterns against dir. Entries without glob
// metacharacters are kept verbatim, existing or not, so the compiler can
// report a missing file itself. Matches of any exclude pattern are dropped
// and duplicates keep their first position.
func ExpandSources(dir string, patterns, excludes []string) ([]string, error) {
	for _, ex := range excludes {
		if !doublestar.ValidatePattern(filepath.ToSlash(ex)) {
			return nil, fmt.Errorf("invalid exclude pattern %q", ex)
		}
	}

	// part 1: gather candidates
	var includes []string
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if !hasMeta(p) {
			includes = append(includes, p)
			continue
		}
		names, err := glob(dir, p)
		if err != nil {
			return nil, err
		}
		includes = append(includes, names...)
	}

	// part 2: filter candidates
	seen := make(map[string]bool, len(includes))
	var srcs []string
loop:
	for _, name := range includes {
		for _, ex := range excludes {
			if ok, _ := doublestar.Match(filepath.ToSlash(ex), name); ok {
				continue loop
			}
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		srcs = append(srcs, filepath.FromSlash(name))
	}
	return srcs, nil
}

func glob(dir, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(pattern)
	root := base
	if !path.IsAbs(base) {
		root = filepath.Join(dir, filepath.FromSlash(base))
	}
	names, err := doublestar.Glob(os.DirFS(root), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand source pattern %q: %w", pattern, err)
	}
	sort.Strings(names)
	if base == "." {
		return names, nil
	}
	for i, n := range names {
		names[i] = path.Join(base, n)
	}
	return names, nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
