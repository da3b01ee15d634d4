// internal/cli/licenses.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var licensesAccept bool

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "Show or accept SDK license status",
	Long: `Show whether the Android SDK licenses have been accepted, or accept
all pending licenses with --accept.`,
	RunE: runLicenses,
}

func init() {
	licensesCmd.Flags().BoolVar(&licensesAccept, "accept", false, "accept all pending licenses")
}

func runLicenses(cmd *cobra.Command, args []string) error {
	pm, err := newPackageManager()
	if err != nil {
		return fmt.Errorf("initializing sdkmanager: %w", err)
	}
	defer pm.Close()

	if licensesAccept {
		if err := pm.AcceptLicenses(context.Background()); err != nil {
			return err
		}
		fmt.Println("✓ Licenses accepted")
		return nil
	}

	if pm.LicensesAccepted() {
		fmt.Println("Licenses: accepted")
	} else {
		fmt.Println("Licenses: not accepted (run 'droidpkg licenses --accept')")
	}
	return nil
}
