// errors.go
package droidpkg

import (
	"errors"
	"fmt"
)

var (
	// ErrSdkRootNotFound indicates no Android SDK root could be located
	ErrSdkRootNotFound = errors.New("android sdk root not found")

	// ErrToolNotFound indicates the sdkmanager executable is missing
	ErrToolNotFound = errors.New("sdkmanager executable not found")

	// ErrLicensesNotAccepted indicates the SDK licenses have not been accepted
	ErrLicensesNotAccepted = errors.New("sdk licenses not accepted")

	// ErrPackageNotFound indicates the package was not found in the catalog
	ErrPackageNotFound = errors.New("package not found")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
