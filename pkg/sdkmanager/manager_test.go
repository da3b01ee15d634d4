package sdkmanager

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func testManager(t *testing.T, cfg *Config) *PackageManager {
	t.Helper()
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &PackageManager{
		config: cfg,
		logger: log.New(io.Discard, "", 0),
		tool:   "sdkmanager",
	}
}

func TestProxyArgs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "no proxy",
			cfg:  Config{},
			want: nil,
		},
		{
			name: "host only",
			cfg:  Config{ProxyHost: "proxy.corp"},
			want: []string{"--proxy=http", "--proxy_host=proxy.corp"},
		},
		{
			name: "host and port",
			cfg:  Config{ProxyHost: "proxy.corp", ProxyPort: "8080"},
			want: []string{"--proxy=http", "--proxy_host=proxy.corp", "--proxy_port=8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := testManager(t, &tt.cfg)
			got := pm.proxyArgs()
			if len(got) != len(tt.want) {
				t.Fatalf("proxyArgs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("proxyArgs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTouchesTools(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  bool
	}{
		{"platform package", []string{"platforms;android-34"}, false},
		{"cmdline-tools", []string{"cmdline-tools;latest"}, true},
		{"legacy tools", []string{"tools"}, true},
		{"mixed", []string{"platform-tools", "cmdline-tools;latest"}, true},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := touchesTools(tt.names); got != tt.want {
				t.Errorf("touchesTools(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}
}

func TestLicensesAccepted(t *testing.T) {
	root := t.TempDir()
	pm := testManager(t, &Config{SdkRoot: root})

	if pm.LicensesAccepted() {
		t.Error("expected false with no licenses directory")
	}

	licensesDir := filepath.Join(root, LicensesDir)
	if err := os.MkdirAll(licensesDir, 0755); err != nil {
		t.Fatalf("creating licenses dir: %v", err)
	}
	if pm.LicensesAccepted() {
		t.Error("expected false with an empty licenses directory")
	}

	hashFile := filepath.Join(licensesDir, "android-sdk-license")
	if err := os.WriteFile(hashFile, []byte("d56f5187479451eabf01fb78af6dfcb131a6481e\n"), 0644); err != nil {
		t.Fatalf("writing license hash: %v", err)
	}
	if !pm.LicensesAccepted() {
		t.Error("expected true once a license hash exists")
	}
}

func TestNewPackageManagerExplicitTool(t *testing.T) {
	root := t.TempDir()

	pm, err := NewPackageManager(&Config{
		SdkRoot:  root,
		ToolPath: filepath.Join(root, "sdkmanager"),
	})
	if err != nil {
		t.Fatalf("NewPackageManager: %v", err)
	}

	if pm.SdkRoot() != root {
		t.Errorf("SdkRoot() = %q, want %q", pm.SdkRoot(), root)
	}
	if pm.config.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", pm.config.Timeout, DefaultTimeout)
	}
	if err := pm.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
