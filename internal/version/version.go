// Package version provides version information for coderun.
// The Version variable is set at build time via ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Version is the current version of coderun.
// Set at build time via: -ldflags "-X github.com/xdg/coderun/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// String returns the version together with the Go toolchain and platform,
// as shown by "coderun --version".
func String() string {
	return fmt.Sprintf("%s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
