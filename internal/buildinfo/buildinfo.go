// Package buildinfo carries the version tag injected at build time.
package buildinfo

// Version is set via -ldflags "-X ti84/internal/buildinfo.Version=...".
var Version = "dev"

// Short returns the tag shown in the REPL banner and window titles.
func Short() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
