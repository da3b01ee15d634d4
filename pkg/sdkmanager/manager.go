// pkg/sdkmanager/manager.go
package sdkmanager

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/droidpkg/droidpkg/pkg/platform"
)

// PackageManager drives the Android sdkmanager executable and turns its
// listing output into catalogs. The parsing itself is pure (see ParseList);
// everything that can fail for environmental reasons lives here.
type PackageManager struct {
	config *Config
	logger *log.Logger
	tool   string
}

// licensePromptAnswers is streamed to the tool's stdin so interactive
// license prompts during install and update do not hang the process. One
// answer per prompt the tool could reasonably emit in a single run.
var licensePromptAnswers = strings.Repeat("y\n", 16)

// NewPackageManager creates a new sdkmanager frontend
func NewPackageManager(cfg *Config) (*PackageManager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Set defaults
	if cfg.SdkRoot == "" {
		root, err := platform.DetectSdkRoot()
		if err != nil {
			return nil, err
		}
		cfg.SdkRoot = root
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[SDK] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	tool := cfg.ToolPath
	if tool == "" {
		found, err := FindTool(cfg.SdkRoot)
		if err != nil {
			return nil, err
		}
		tool = found
	}

	pm := &PackageManager{
		config: cfg,
		logger: logger,
		tool:   tool,
	}

	if cfg.Debug {
		pm.logger.Printf("Initialized sdkmanager frontend")
		pm.logger.Printf("  SdkRoot: %s", cfg.SdkRoot)
		pm.logger.Printf("  Tool: %s", tool)
		if cfg.ProxyHost != "" {
			pm.logger.Printf("  Proxy: %s:%s", cfg.ProxyHost, cfg.ProxyPort)
		}
	}

	return pm, nil
}

// List runs "sdkmanager --list" and returns the reconciled catalog.
func (pm *PackageManager) List(ctx context.Context) ([]*Package, error) {
	out, err := pm.run(ctx, nil, "--list", "--verbose")
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}

	catalog := ParseList(out)
	pm.logger.Printf("Parsed %d packages from listing", len(catalog))
	return catalog, nil
}

// Install installs or updates the named packages. When the install touches
// the command-line tools themselves the tools directory is snapshotted
// first and restored on failure, since the tool cannot safely replace its
// own running directory on every platform.
func (pm *PackageManager) Install(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return fmt.Errorf("at least one package is required")
	}

	restorable := false
	if touchesTools(names) {
		if err := pm.backupTools(); err != nil {
			pm.logger.Printf("Skipping tools snapshot: %v", err)
		} else {
			restorable = true
		}
	}

	if _, err := pm.run(ctx, strings.NewReader(licensePromptAnswers), names...); err != nil {
		if restorable {
			if rerr := pm.restoreTools(); rerr != nil {
				pm.logger.Printf("Restoring tools snapshot failed: %v", rerr)
			}
		}
		return fmt.Errorf("installing %s: %w", strings.Join(names, ", "), err)
	}

	if restorable {
		pm.discardToolsBackup()
	}
	return nil
}

// Update updates every installed package to its available version.
func (pm *PackageManager) Update(ctx context.Context) error {
	if _, err := pm.run(ctx, strings.NewReader(licensePromptAnswers), "--update"); err != nil {
		return fmt.Errorf("updating packages: %w", err)
	}
	return nil
}

// AcceptLicenses runs the tool's interactive license review, answering yes
// to every prompt.
func (pm *PackageManager) AcceptLicenses(ctx context.Context) error {
	if _, err := pm.run(ctx, strings.NewReader(licensePromptAnswers), "--licenses"); err != nil {
		return fmt.Errorf("accepting licenses: %w", err)
	}
	return nil
}

// LicensesAccepted reports whether at least one SDK license has been
// accepted, by listing the licenses directory under the SDK root.
func (pm *PackageManager) LicensesAccepted() bool {
	entries, err := os.ReadDir(filepath.Join(pm.config.SdkRoot, LicensesDir))
	if err != nil {
		return false
	}
	return len(entries) > 0
}

// SdkRoot returns the SDK root the manager operates on.
func (pm *PackageManager) SdkRoot() string {
	return pm.config.SdkRoot
}

// Close cleans up any resources used by the manager
func (pm *PackageManager) Close() error {
	return nil
}

// run executes the tool with the given arguments plus the configured proxy
// flags, bounded by the configured timeout, and returns captured stdout.
func (pm *PackageManager) run(ctx context.Context, stdin io.Reader, args ...string) (string, error) {
	args = append(args, pm.proxyArgs()...)

	ctx, cancel := context.WithTimeout(ctx, pm.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, pm.tool, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	pm.logger.Printf("Running: %s %s", pm.tool, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", filepath.Base(pm.tool), err, msg)
		}
		return "", fmt.Errorf("%s: %w", filepath.Base(pm.tool), err)
	}

	return stdout.String(), nil
}

// proxyArgs translates the proxy configuration into the tool's flags.
func (pm *PackageManager) proxyArgs() []string {
	if pm.config.ProxyHost == "" {
		return nil
	}

	args := []string{"--proxy=http", "--proxy_host=" + pm.config.ProxyHost}
	if pm.config.ProxyPort != "" {
		args = append(args, "--proxy_port="+pm.config.ProxyPort)
	}
	return args
}

// touchesTools reports whether any of the named packages would replace the
// command-line tools directory.
func touchesTools(names []string) bool {
	for _, name := range names {
		if strings.HasPrefix(name, ToolsDir) || strings.HasPrefix(name, "tools") {
			return true
		}
	}
	return false
}
