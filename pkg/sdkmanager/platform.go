// pkg/sdkmanager/platform.go
package sdkmanager

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ToolName returns the platform-specific name of the sdkmanager executable.
func ToolName() string {
	if runtime.GOOS == "windows" {
		return "sdkmanager.bat"
	}
	return "sdkmanager"
}

// toolSearchDirs lists where the executable lives inside an SDK root,
// newest layout first. "cmdline-tools/latest" replaced the deprecated
// "tools" directory in 2019 but old roots still carry the latter.
var toolSearchDirs = []string{
	filepath.Join(ToolsDir, "latest", "bin"),
	filepath.Join(ToolsDir, "bin"),
	filepath.Join("tools", "bin"),
}

// FindTool locates the sdkmanager executable under the given SDK root,
// falling back to PATH.
func FindTool(sdkRoot string) (string, error) {
	name := ToolName()

	if sdkRoot != "" {
		for _, dir := range toolSearchDirs {
			path := filepath.Join(sdkRoot, dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("sdkmanager executable not found under %s or in PATH", sdkRoot)
}
