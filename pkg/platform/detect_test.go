package platform

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	p, err := Detect()
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if p.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", p.OS, runtime.GOOS)
	}
	if p.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", p.Arch, runtime.GOARCH)
	}
}

func TestDetectSdkRootFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "ANDROID_SDK_ROOT wins",
			env:  map[string]string{"ANDROID_SDK_ROOT": "/opt/android-sdk", "ANDROID_HOME": "/ignored"},
			want: "/opt/android-sdk",
		},
		{
			name: "ANDROID_HOME fallback",
			env:  map[string]string{"ANDROID_SDK_ROOT": "", "ANDROID_HOME": "/opt/android-home"},
			want: "/opt/android-home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := DetectSdkRoot()
			if err != nil {
				t.Fatalf("DetectSdkRoot: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectSdkRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatformString(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		want     string
	}{
		{
			name:     "with sdk root",
			platform: Platform{OS: "linux", Arch: "amd64", SdkRoot: "/opt/android-sdk"},
			want:     "linux/amd64 (sdk root: /opt/android-sdk)",
		},
		{
			name:     "without sdk root",
			platform: Platform{OS: "darwin", Arch: "arm64"},
			want:     "darwin/arm64 (sdk root: <none>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.platform.String(); got != tt.want {
				t.Errorf("Platform.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConventionalRoots(t *testing.T) {
	roots := conventionalRoots()
	if len(roots) == 0 {
		t.Fatal("conventionalRoots returned nothing")
	}
	for _, root := range roots {
		if !strings.Contains(strings.ToLower(root), "android") {
			t.Errorf("unexpected conventional root: %q", root)
		}
	}
}
