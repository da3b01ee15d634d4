// internal/cli/install.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more SDK packages",
	Long: `Install SDK packages by their sdkmanager identifier.

Examples:
  droidpkg install "platforms;android-34"
  droidpkg install "build-tools;34.0.0" platform-tools
  droidpkg install "system-images;android-34;google_apis;x86_64"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	pm, err := newPackageManager()
	if err != nil {
		return fmt.Errorf("initializing sdkmanager: %w", err)
	}
	defer pm.Close()

	if !pm.LicensesAccepted() {
		return fmt.Errorf("sdk licenses not accepted; run 'droidpkg licenses --accept' first")
	}

	fmt.Printf("Installing %s...\n", strings.Join(args, ", "))

	if err := pm.Install(context.Background(), args...); err != nil {
		return err
	}

	fmt.Printf("✓ Successfully installed %s\n", strings.Join(args, ", "))
	return nil
}
