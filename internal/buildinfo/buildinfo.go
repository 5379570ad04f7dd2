// Package buildinfo holds release metadata set with
// -ldflags "-X github.com/aidanlsb/tripbook/internal/buildinfo.Version=...".
package buildinfo

// Empty for local builds; the version command then falls back to the
// module's build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
