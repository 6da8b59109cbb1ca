// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "WINLAUNCH_TESTUTIL_VAR"
	t.Setenv(key, "before")

	restore := MustSetenv(t, key, "during")
	if got := os.Getenv(key); got != "during" {
		t.Fatalf("Getenv() = %q, want during", got)
	}
	restore()
	if got := os.Getenv(key); got != "before" {
		t.Errorf("after restore Getenv() = %q, want before", got)
	}
}

func TestMustUnsetenv_RestoresAbsence(t *testing.T) {
	const key = "WINLAUNCH_TESTUTIL_ABSENT"
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}

	restore := MustSetenv(t, key, "x")
	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Error("variable should be unset after restore")
	}

	t.Setenv(key, "present")
	restore = MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Error("MustUnsetenv() left the variable set")
	}
	restore()
	if got := os.Getenv(key); got != "present" {
		t.Errorf("after restore Getenv() = %q, want present", got)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("a", "b.txt"), "hello")
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
}

func TestIsolateConfigHome(t *testing.T) {
	t.Setenv("WINLAUNCH_ESCAPE_MODE", "strict")
	dir := t.TempDir()

	cfgDir := IsolateConfigHome(t, dir)
	if filepath.Base(cfgDir) != "winlaunch" {
		t.Errorf("IsolateConfigHome() = %q", cfgDir)
	}
	if _, ok := os.LookupEnv("WINLAUNCH_ESCAPE_MODE"); ok {
		t.Error("WINLAUNCH_ESCAPE_MODE should be cleared")
	}
}
