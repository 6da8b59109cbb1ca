// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// IsolateConfigHome points the per-user config root at dir so code under
// test cannot read the developer's real settings. It registers cleanups on t
// and returns the directory winlaunch will use for its config files.
//
//	cfgDir := testutil.IsolateConfigHome(t, t.TempDir())
//	testutil.WriteFile(t, cfgDir, "config.cue", `escape: mode: "strict"`)
func IsolateConfigHome(t testing.TB, dir string) string {
	t.Helper()

	for _, key := range []string{
		"WINLAUNCH_ESCAPE_MODE",
		"WINLAUNCH_RANDOM_LENGTH",
		"WINLAUNCH_UI_VERBOSE",
		"WINLAUNCH_UI_COLOR_SCHEME",
	} {
		t.Cleanup(MustUnsetenv(t, key))
	}

	switch runtime.GOOS {
	case "windows":
		t.Cleanup(MustSetenv(t, "APPDATA", dir))
		return filepath.Join(dir, "winlaunch")
	case "darwin":
		t.Cleanup(MustSetenv(t, "HOME", dir))
		return filepath.Join(dir, "Library", "Application Support", "winlaunch")
	default:
		t.Cleanup(MustSetenv(t, "XDG_CONFIG_HOME", dir))
		return filepath.Join(dir, "winlaunch")
	}
}
