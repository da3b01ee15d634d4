// internal/cli/update.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/droidpkg/droidpkg/pkg/sdkmanager"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update all installed SDK packages",
	Long:  `Update every installed SDK package that has a newer version available.`,
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	pm, err := newPackageManager()
	if err != nil {
		return fmt.Errorf("initializing sdkmanager: %w", err)
	}
	defer pm.Close()

	if !pm.LicensesAccepted() {
		return fmt.Errorf("sdk licenses not accepted; run 'droidpkg licenses --accept' first")
	}

	ctx := context.Background()

	catalog, err := pm.List(ctx)
	if err != nil {
		return err
	}

	var pending []string
	for _, pkg := range catalog {
		if pkg.State == sdkmanager.StateUpdateable {
			pending = append(pending, pkg.RawName)
		}
	}

	if len(pending) == 0 {
		fmt.Println("All installed packages are up to date.")
		return nil
	}

	fmt.Printf("Updating %d package(s)...\n", len(pending))

	if err := pm.Update(ctx); err != nil {
		return err
	}

	fmt.Println("✓ Successfully updated all packages")
	return nil
}
