// Package version carries build metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/dkoosis/booc/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"io"
	"runtime"
)

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// Fprint writes the version block printed by "booc version".
func Fprint(w io.Writer, name string) {
	fmt.Fprintf(w, "%s version %s\n", name, Version)
	fmt.Fprintf(w, "Commit: %s\n", CommitHash)
	fmt.Fprintf(w, "Built: %s\n", BuildDate)
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
