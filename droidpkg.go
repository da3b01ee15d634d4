// droidpkg.go
package droidpkg

import (
	"context"

	"github.com/droidpkg/droidpkg/pkg/sdkmanager"
)

// Re-export catalog types for convenience
type (
	Package = sdkmanager.Package
	State   = sdkmanager.State
	Config  = sdkmanager.Config
)

// Re-export catalog states
const (
	StateInstalled  = sdkmanager.StateInstalled
	StateAvailable  = sdkmanager.StateAvailable
	StateUpdateable = sdkmanager.StateUpdateable
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return sdkmanager.DefaultConfig()
}

// ParseList converts captured "sdkmanager --list" output into a catalog
// without touching the tool itself. Useful when the listing was produced
// elsewhere, e.g. on a build machine.
func ParseList(out string) []*Package {
	return sdkmanager.ParseList(out)
}

// SortPackages orders a catalog for display, case-insensitively by
// identifier; descending unless ascending is set.
func SortPackages(catalog []*Package, ascending bool) []*Package {
	return sdkmanager.SortPackages(catalog, ascending)
}

// CompareVersions orders two dotted version strings as the SDK listing
// reports them.
func CompareVersions(a, b string) int {
	return sdkmanager.CompareVersions(a, b)
}

// Manager is the Android SDK package manager frontend
type Manager struct {
	pm *sdkmanager.PackageManager
}

// NewManager creates a new manager around the local sdkmanager tool
func NewManager(config *Config) (*Manager, error) {
	pm, err := sdkmanager.NewPackageManager(config)
	if err != nil {
		return nil, &Error{Op: "init", Err: err}
	}
	return &Manager{pm: pm}, nil
}

// List retrieves the reconciled package catalog
func (m *Manager) List(ctx context.Context) ([]*Package, error) {
	catalog, err := m.pm.List(ctx)
	if err != nil {
		return nil, &Error{Op: "list", Err: err}
	}
	return catalog, nil
}

// Install installs or updates the named packages. Licenses must have been
// accepted first; see AcceptLicenses.
func (m *Manager) Install(ctx context.Context, names ...string) error {
	if !m.pm.LicensesAccepted() {
		return &Error{Op: "install", Err: ErrLicensesNotAccepted}
	}
	if err := m.pm.Install(ctx, names...); err != nil {
		return &Error{Op: "install", Err: err}
	}
	return nil
}

// Update updates every installed package to its available version
func (m *Manager) Update(ctx context.Context) error {
	if !m.pm.LicensesAccepted() {
		return &Error{Op: "update", Err: ErrLicensesNotAccepted}
	}
	if err := m.pm.Update(ctx); err != nil {
		return &Error{Op: "update", Err: err}
	}
	return nil
}

// AcceptLicenses accepts all pending SDK licenses
func (m *Manager) AcceptLicenses(ctx context.Context) error {
	if err := m.pm.AcceptLicenses(ctx); err != nil {
		return &Error{Op: "licenses", Err: err}
	}
	return nil
}

// LicensesAccepted reports whether any SDK license has been accepted
func (m *Manager) LicensesAccepted() bool {
	return m.pm.LicensesAccepted()
}

// SdkRoot returns the SDK root the manager operates on
func (m *Manager) SdkRoot() string {
	return m.pm.SdkRoot()
}

// Close cleans up any resources used by the manager
func (m *Manager) Close() error {
	return m.pm.Close()
}
