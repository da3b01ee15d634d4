package sdkmanager

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackupAndRestoreTools(t *testing.T) {
	root := t.TempDir()
	pm := testManager(t, &Config{SdkRoot: root})

	binDir := filepath.Join(root, ToolsDir, "latest", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("creating tools dir: %v", err)
	}
	toolFile := filepath.Join(binDir, "sdkmanager")
	if err := os.WriteFile(toolFile, []byte("original"), 0755); err != nil {
		t.Fatalf("writing tool file: %v", err)
	}

	if err := pm.backupTools(); err != nil {
		t.Fatalf("backupTools: %v", err)
	}
	if _, err := os.Stat(pm.toolsBackupPath()); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	// Simulate a broken install: the tool file is clobbered and a stray
	// file appears.
	if err := os.WriteFile(toolFile, []byte("broken"), 0755); err != nil {
		t.Fatalf("clobbering tool file: %v", err)
	}
	stray := filepath.Join(root, ToolsDir, "stray.tmp")
	if err := os.WriteFile(stray, []byte("leftover"), 0644); err != nil {
		t.Fatalf("writing stray file: %v", err)
	}

	if err := pm.restoreTools(); err != nil {
		t.Fatalf("restoreTools: %v", err)
	}

	data, err := os.ReadFile(toolFile)
	if err != nil {
		t.Fatalf("reading restored tool file: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("restored content = %q, want %q", data, "original")
	}
	if _, err := os.Stat(stray); !os.IsNotExist(err) {
		t.Error("stray file survived the restore")
	}

	pm.discardToolsBackup()
	if _, err := os.Stat(pm.toolsBackupPath()); !os.IsNotExist(err) {
		t.Error("snapshot not removed by discard")
	}
}

func TestBackupToolsMissingDir(t *testing.T) {
	pm := testManager(t, &Config{SdkRoot: t.TempDir()})

	if err := pm.backupTools(); err == nil {
		t.Error("expected an error when the tools directory does not exist")
	}
}
