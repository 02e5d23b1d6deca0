package main

import (
	"fmt"
	"io"
	"runtime"
)

// Build-time variables set via -ldflags.
//
//	go build -ldflags="-X main.Version=v1.2.3 -X main.Commit=abc123" ./cmd/generate-golden
var (
	// Version is the semantic version of the generator (e.g., "v1.0.0").
	Version = "dev"
	// Commit is the short Git commit hash (e.g., "abc123").
	Commit = "unknown"
)

// printVersion outputs the generator version, commit, Go version and
// OS/architecture to out.
func printVersion(out io.Writer) {
	fmt.Fprintf(out, "generate-golden %s\n", Version)
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
