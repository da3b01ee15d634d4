package sdkmanager

import (
	"log"
	"time"
)

// State classifies a catalog entry relative to the local installation.
type State string

const (
	// StateInstalled means the package appeared in the installed section
	// and no strictly newer version is available.
	StateInstalled State = "installed"
	// StateAvailable means the package appeared only in the available section.
	StateAvailable State = "available"
	// StateUpdateable means the package is installed and the available
	// section reports a strictly newer version.
	StateUpdateable State = "updateable"
)

// Package is one row of the reconciled catalog.
type Package struct {
	RawName     string   // tool-native semicolon-segmented identifier, the merge key
	Category    string   // first segment of RawName
	Name        string   // remaining segments, "; "-joined
	Version     string   // "1.0(2.0)" form when updateable: installed(available)
	Description string   // free text, may be empty
	Details     []string // reserved for per-package detail lines
	State       State
}

// Config configures the sdkmanager frontend
type Config struct {
	SdkRoot   string        // Android SDK root directory
	ToolPath  string        // Explicit path to the sdkmanager executable
	ProxyHost string        // HTTP proxy host forwarded to the tool
	ProxyPort string        // HTTP proxy port forwarded to the tool
	Timeout   time.Duration // Subprocess timeout
	Debug     bool          // Enable debug logging
	Logger    *log.Logger   // Custom logger
}

// DefaultTimeout bounds a single sdkmanager invocation. Installs pull
// packages over the network, so this is generous.
const DefaultTimeout = 10 * time.Minute

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Timeout: DefaultTimeout,
	}
}
