package cli

import (
	"bytes"
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/aidanlsb/tripbook/internal/buildinfo"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	prev := readBuildInfo
	t.Cleanup(func() { readBuildInfo = prev })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func stubLdflags(t *testing.T, version, commit, date string) {
	t.Helper()
	prevVersion, prevCommit, prevDate := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() {
		buildinfo.Version, buildinfo.Commit, buildinfo.Date = prevVersion, prevCommit, prevDate
	})
	buildinfo.Version, buildinfo.Commit, buildinfo.Date = version, commit, date
}

func vcsBuild(version, revision, modified string) *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.23.4",
		Main:      debug.Module{Path: "github.com/aidanlsb/tripbook", Version: version},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: revision},
			{Key: "vcs.time", Value: "2026-02-14T17:00:00Z"},
			{Key: "vcs.modified", Value: modified},
		},
	}
}

func TestCurrentVersionInfo(t *testing.T) {
	platform := runtime.GOOS + "/" + runtime.GOARCH

	tests := []struct {
		name    string
		ldflags [3]string
		build   *debug.BuildInfo
		want    versionInfo
	}{
		{
			name:    "release ldflags win",
			ldflags: [3]string{"v1.4.0", "1111111", "2026-03-01"},
			build:   vcsBuild("v0.0.1", "2222222", "true"),
			want:    versionInfo{Version: "v1.4.0", Commit: "1111111", Date: "2026-03-01", Go: "go1.23.4", Platform: platform},
		},
		{
			name:  "module version from go install",
			build: vcsBuild("v1.2.3", "abc123def4567890", "false"),
			want:  versionInfo{Version: "v1.2.3", Commit: "abc123def456", Date: "2026-02-14T17:00:00Z", Go: "go1.23.4", Platform: platform},
		},
		{
			name:  "modified checkout",
			build: vcsBuild("v1.2.3", "abc123", "true"),
			want:  versionInfo{Version: "v1.2.3+dirty", Commit: "abc123", Date: "2026-02-14T17:00:00Z", Go: "go1.23.4", Platform: platform},
		},
		{
			name:  "local build",
			build: vcsBuild("(devel)", "deadbeef", "true"),
			want:  versionInfo{Version: "devel", Commit: "deadbeef", Date: "2026-02-14T17:00:00Z", Go: "go1.23.4", Platform: platform},
		},
		{
			name: "no build info",
			want: versionInfo{Version: "devel", Go: runtime.Version(), Platform: platform},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLdflags(t, tt.ldflags[0], tt.ldflags[1], tt.ldflags[2])
			stubBuildInfo(t, tt.build)

			if got := currentVersionInfo(); got != tt.want {
				t.Errorf("currentVersionInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVersionInfoString(t *testing.T) {
	tests := []struct {
		info versionInfo
		want string
	}{
		{
			versionInfo{Version: "v1.2.0", Commit: "abc123def456", Date: "2026-02-14", Go: "go1.23.4", Platform: "linux/amd64"},
			"tripbook v1.2.0 (abc123def456, 2026-02-14) go1.23.4 linux/amd64",
		},
		{
			versionInfo{Version: "devel", Commit: "abc", Go: "go1.23.4", Platform: "darwin/arm64"},
			"tripbook devel (abc) go1.23.4 darwin/arm64",
		},
		{
			versionInfo{Version: "devel", Go: "go1.23.4", Platform: "linux/amd64"},
			"tripbook devel go1.23.4 linux/amd64",
		},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestVersionCommandJSONOutput(t *testing.T) {
	stubLdflags(t, "", "", "")
	stubBuildInfo(t, vcsBuild("v2.0.0", "deadbeef", "false"))
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = true

	out := captureJSON(t, func() {
		if err := versionCmd.RunE(versionCmd, nil); err != nil {
			t.Fatalf("versionCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool        `json:"ok"`
		Data versionInfo `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK || resp.Data.Version != "v2.0.0" || resp.Data.Commit != "deadbeef" {
		t.Fatalf("unexpected response: %s", out)
	}
}

func TestVersionCommandText(t *testing.T) {
	stubLdflags(t, "v1.0.0", "", "")
	stubBuildInfo(t, nil)

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("versionCmd.RunE: %v", err)
	}
	want := "tripbook v1.0.0 " + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
