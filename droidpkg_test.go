package droidpkg

import (
	"errors"
	"testing"
)

func TestParseListReexport(t *testing.T) {
	input := `Installed packages:
  Path | Version | Description
  ---- | ------- | -----------
  platform-tools| 30.0.4| Android SDK Platform-Tools

Available Packages:
  Path | Version | Description
  ---- | ------- | -----------
  platform-tools| 31.0.3| Android SDK Platform-Tools
`
	catalog := ParseList(input)

	if len(catalog) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(catalog))
	}
	if catalog[0].State != StateUpdateable {
		t.Errorf("state = %q, want %q", catalog[0].State, StateUpdateable)
	}
	if CompareVersions("30.0.4", "31.0.3") >= 0 {
		t.Error("CompareVersions re-export disagrees with the merge")
	}

	sorted := SortPackages(catalog, true)
	if len(sorted) != 1 || sorted[0].RawName != "platform-tools" {
		t.Errorf("unexpected sorted catalog: %+v", sorted)
	}
}

func TestErrorWrapping(t *testing.T) {
	err := &Error{Op: "install", Package: "platform-tools", Err: ErrLicensesNotAccepted}

	if !errors.Is(err, ErrLicensesNotAccepted) {
		t.Error("Error does not unwrap to its sentinel")
	}

	want := "install platform-tools: sdk licenses not accepted"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &Error{Op: "list", Err: ErrSdkRootNotFound}
	if bare.Error() != "list: android sdk root not found" {
		t.Errorf("Error() without package = %q", bare.Error())
	}
}
