package sdkmanager

// Section header literals as printed by sdkmanager --list. The installed
// header is matched as a line suffix because older releases prepend a
// loading-progress fragment to it; the other two always start their line.
const (
	InstalledHeader = "Installed packages:"
	AvailableHeader = "Available Packages:"
	UpdatesHeader   = "Available Updates:"
)

// headerSkipLines is how many lines each section header occupies before the
// data rows start: the header itself plus the column-name row and the dashed
// separator row. sdkmanager has printed exactly three since cmdline-tools 1.0;
// if the format ever drifts this constant is the only thing to change.
const headerSkipLines = 3

const (
	// fieldDelimiter separates the columns of a table row.
	fieldDelimiter = "| "

	// nameSeparator separates the segments of a package identifier,
	// e.g. "system-images;android-30;google_apis;x86_64".
	nameSeparator = ";"
)

const (
	// LicensesDir is the directory under the SDK root that holds accepted
	// license hashes.
	LicensesDir = "licenses"

	// ToolsDir is the directory under the SDK root that contains the
	// command-line tools, including sdkmanager itself.
	ToolsDir = "cmdline-tools"
)
