// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/droidpkg/droidpkg/pkg/core"
	"github.com/droidpkg/droidpkg/pkg/sdkmanager"
)

var (
	cfgFile string
	sdkRoot string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "droidpkg",
	Short: "Android SDK Package Manager",
	Long: `droidpkg - Android SDK Package Manager

A frontend for the Android sdkmanager tool that lists, installs and
updates SDK packages with a reconciled view of installed, available
and updateable entries.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/droidpkg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sdkRoot, "sdk-root", "", "Android SDK root (default is auto-detected)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(licensesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if sdkRoot != "" {
		config.SdkRoot = sdkRoot
	}
	if debug {
		config.Debug = true
	}
}

// newPackageManager builds a manager from the effective configuration.
func newPackageManager() (*sdkmanager.PackageManager, error) {
	return sdkmanager.NewPackageManager(&sdkmanager.Config{
		SdkRoot:   config.SdkRoot,
		ProxyHost: config.ProxyHost,
		ProxyPort: config.ProxyPort,
		Debug:     config.Debug,
	})
}
