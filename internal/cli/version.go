package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tripbook/internal/buildinfo"
)

// shortCommitLen is how much of a VCS revision the version line shows.
const shortCommitLen = 12

type versionInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Date     string `json:"date,omitempty"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// String renders the one-line form, e.g.
// "tripbook v1.2.0 (abc123def456, 2026-02-14T17:00:00Z) go1.23.4 linux/amd64".
func (v versionInfo) String() string {
	var b strings.Builder
	b.WriteString("tripbook " + v.Version)
	switch {
	case v.Commit != "" && v.Date != "":
		fmt.Fprintf(&b, " (%s, %s)", v.Commit, v.Date)
	case v.Commit != "":
		fmt.Fprintf(&b, " (%s)", v.Commit)
	}
	fmt.Fprintf(&b, " %s %s", v.Go, v.Platform)
	return b.String()
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the tripbook version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()
		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), info)
		return nil
	},
}

// currentVersionInfo prefers release metadata set with -ldflags and falls
// back to the VCS stamp go build embeds. A version taken from a modified
// checkout gets a "+dirty" suffix.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:  buildinfo.Version,
		Commit:   buildinfo.Commit,
		Date:     buildinfo.Date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		if bi.GoVersion != "" {
			info.Go = bi.GoVersion
		}
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		if info.Version == "" {
			info.Version = moduleVersion(bi.Main.Version)
			if info.Version != "" && settings["vcs.modified"] == "true" {
				info.Version += "+dirty"
			}
		}
		if info.Commit == "" {
			info.Commit = settings["vcs.revision"]
		}
		if info.Date == "" {
			info.Date = settings["vcs.time"]
		}
	}

	if info.Version == "" {
		info.Version = "devel"
	}
	if len(info.Commit) > shortCommitLen {
		info.Commit = info.Commit[:shortCommitLen]
	}
	return info
}

func moduleVersion(v string) string {
	if v == "(devel)" {
		return ""
	}
	return v
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
