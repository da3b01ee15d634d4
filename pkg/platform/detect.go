// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Platform represents the detected system platform
type Platform struct {
	OS      string // linux, darwin, windows
	Arch    string // amd64, arm64, 386, arm
	SdkRoot string // detected Android SDK root, empty if none found
}

// sdkRootEnvVars are checked in order; ANDROID_SDK_ROOT is the current
// official variable, ANDROID_HOME its long-lived predecessor.
var sdkRootEnvVars = []string{"ANDROID_SDK_ROOT", "ANDROID_HOME"}

// Detect detects the current platform and the Android SDK root
func Detect() (*Platform, error) {
	p := &Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	switch p.OS {
	case "linux", "darwin", "windows":
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", p.OS)
	}

	if root, err := DetectSdkRoot(); err == nil {
		p.SdkRoot = root
	}

	return p, nil
}

// DetectSdkRoot finds the Android SDK root from the environment or from the
// conventional per-OS install location of Android Studio.
func DetectSdkRoot() (string, error) {
	for _, env := range sdkRootEnvVars {
		if root := os.Getenv(env); root != "" {
			return root, nil
		}
	}

	for _, root := range conventionalRoots() {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return root, nil
		}
	}

	return "", fmt.Errorf("android sdk root not found: set ANDROID_SDK_ROOT or ANDROID_HOME")
}

func conventionalRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return []string{filepath.Join(home, "Library", "Android", "sdk")}
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return []string{filepath.Join(local, "Android", "Sdk")}
		}
		return []string{filepath.Join(home, "AppData", "Local", "Android", "Sdk")}
	default:
		return []string{filepath.Join(home, "Android", "Sdk")}
	}
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	root := p.SdkRoot
	if root == "" {
		root = "<none>"
	}
	return fmt.Sprintf("%s/%s (sdk root: %s)", p.OS, p.Arch, root)
}
