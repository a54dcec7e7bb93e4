package version

import (
	"runtime/debug"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	v, c := Version, Commit
	Version, Commit = "", ""
	t.Cleanup(func() { Version, Commit = v, c })
}

func TestFromBuildInfoModuleVersion(t *testing.T) {
	reset(t)

	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "false"},
		},
	}, true)

	if Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", Version)
	}
	if Commit != "0123456" {
		t.Errorf("Commit = %q, want 0123456", Commit)
	}
}

func TestFromBuildInfoDevBuild(t *testing.T) {
	reset(t)

	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-03-14T09:26:53Z"},
		},
	}, true)

	if Version != "dev-20260314" {
		t.Errorf("Version = %q, want dev-20260314", Version)
	}
	if Commit != "abc-dirty" {
		t.Errorf("Commit = %q, want abc-dirty", Commit)
	}
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	reset(t)
	Version, Commit = "v0.3.0", "feedbee"

	fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0000000000"}},
	}, true)

	if got := Full(); got != "v0.3.0 (commit: feedbee)" {
		t.Errorf("Full() = %q", got)
	}
}

func TestFromBuildInfoMissing(t *testing.T) {
	reset(t)

	fromBuildInfo(nil, false)

	if Version != "" || Commit != "" {
		t.Errorf("fromBuildInfo(nil, false) set %q/%q", Version, Commit)
	}
}
