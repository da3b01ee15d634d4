// internal/cli/list.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/droidpkg/droidpkg/pkg/sdkmanager"
)

var (
	listInstalled bool
	listUpdates   bool
	listAscending bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List SDK packages",
	Long: `List Android SDK packages with their install state.

Examples:
  droidpkg list
  droidpkg list --installed
  droidpkg list --updates --ascending`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listInstalled, "installed", false, "show only installed packages")
	listCmd.Flags().BoolVar(&listUpdates, "updates", false, "show only packages with updates")
	listCmd.Flags().BoolVar(&listAscending, "ascending", false, "sort ascending instead of descending")
}

func runList(cmd *cobra.Command, args []string) error {
	pm, err := newPackageManager()
	if err != nil {
		return fmt.Errorf("initializing sdkmanager: %w", err)
	}
	defer pm.Close()

	catalog, err := pm.List(context.Background())
	if err != nil {
		return err
	}

	if !sdkmanager.HasInstalled(catalog) {
		fmt.Println("No SDK packages installed.")
	}

	for _, pkg := range sdkmanager.SortPackages(catalog, listAscending) {
		if listInstalled && pkg.State == sdkmanager.StateAvailable {
			continue
		}
		if listUpdates && pkg.State != sdkmanager.StateUpdateable {
			continue
		}
		fmt.Printf("  %-11s %-52s %-18s %s\n", pkg.State, pkg.RawName, pkg.Version, pkg.Description)
	}

	return nil
}
