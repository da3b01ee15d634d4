// pkg/sdkmanager/parser.go
package sdkmanager

import (
	"fmt"
	"strings"
)

// scanState tracks the section splitter's position inside the listing.
type scanState int

const (
	beforeInstalled scanState = iota
	inInstalled
	beforeAvailable
	inAvailable
)

// ParseList converts the captured stdout of "sdkmanager --list" into a
// package catalog: one entry per distinct identifier, annotated with its
// install state. Installed entries keep their encounter order, then newly
// seen available entries follow.
//
// The parse is total: missing sections, blank lines and truncated rows all
// degrade to empty values instead of errors, so a fresh SDK root with
// nothing installed yields an empty catalog.
func ParseList(out string) []*Package {
	installedLines, availableLines := splitSections(strings.Split(out, "\n"))

	catalog := make([]*Package, 0, len(installedLines)+len(availableLines))
	index := make(map[string]int, len(installedLines))

	for _, line := range installedLines {
		pkg := parseRecord(line)
		pkg.State = StateInstalled
		index[pkg.RawName] = len(catalog)
		catalog = append(catalog, pkg)
	}

	// The two tables overlap but are independently sorted, so the merge is
	// keyed on the identifier rather than positional.
	for _, line := range availableLines {
		candidate := parseRecord(line)

		i, ok := index[candidate.RawName]
		if !ok {
			candidate.State = StateAvailable
			index[candidate.RawName] = len(catalog)
			catalog = append(catalog, candidate)
			continue
		}

		// Same package in both tables: flag an update only when the
		// available version is strictly newer. An installed package that is
		// up to date, or ahead of the repository, stays StateInstalled.
		installed := catalog[i]
		if CompareVersions(installed.Version, candidate.Version) < 0 {
			catalog[i] = installed.withUpdate(candidate.Version)
		}
	}

	return catalog
}

// withUpdate returns a copy of an installed entry re-tagged as updateable,
// with the version rewritten to the "installed(available)" display form.
// Category, name and description keep the installed capture.
func (p *Package) withUpdate(available string) *Package {
	updated := *p
	updated.State = StateUpdateable
	updated.Version = fmt.Sprintf("%s(%s)", p.Version, available)
	return &updated
}

// splitSections partitions the listing into the data rows of the installed
// and available tables. It runs a single forward pass through the states
// beforeInstalled -> inInstalled -> beforeAvailable -> inAvailable; the
// updates table only terminates the scan and is never parsed.
//
// A missing header is not an error: without the installed header the scan
// for the available header starts at the first line, and an input with
// neither header yields two empty sections.
func splitSections(lines []string) (installed, available []string) {
	state := beforeInstalled
	if !hasInstalledHeader(lines) {
		state = beforeAvailable
	}

	skip := 0
	for _, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")

		if skip > 0 {
			skip--
			continue
		}

		switch state {
		case beforeInstalled:
			if strings.HasSuffix(line, InstalledHeader) {
				state = inInstalled
				skip = headerSkipLines - 1
			}
		case inInstalled:
			if strings.HasPrefix(line, AvailableHeader) {
				state = inAvailable
				skip = headerSkipLines - 1
				continue
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			installed = append(installed, line)
		case beforeAvailable:
			if strings.HasPrefix(line, AvailableHeader) {
				state = inAvailable
				skip = headerSkipLines - 1
			}
		case inAvailable:
			if strings.HasPrefix(line, UpdatesHeader) {
				return installed, available
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			available = append(available, line)
		}
	}

	return installed, available
}

func hasInstalledHeader(lines []string) bool {
	for _, raw := range lines {
		if strings.HasSuffix(strings.TrimSuffix(raw, "\r"), InstalledHeader) {
			return true
		}
	}
	return false
}

// parseRecord parses one data row of either table. Rows look like
//
//	platforms;android-30 | 30.0.0 | Android SDK Platform 30 | platforms/android-30/
//
// with the trailing location column present only in verbose installed
// listings; it carries nothing the catalog needs. Missing columns parse to
// empty strings so a truncated row still produces a record.
func parseRecord(line string) *Package {
	pkg := &Package{}

	fields := strings.Split(line, fieldDelimiter)
	if len(fields) > 0 {
		pkg.RawName = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		pkg.Version = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		pkg.Description = strings.TrimSpace(fields[2])
	}

	pkg.Category, pkg.Name = splitRawName(pkg.RawName)
	return pkg
}

// splitRawName derives the display category and name from the semicolon
// segmented identifier: "platforms;android-30" -> ("platforms", "android-30").
// A single-segment identifier like "emulator" is its own category.
func splitRawName(rawName string) (category, name string) {
	segments := strings.Split(rawName, nameSeparator)
	category = segments[0]
	if len(segments) == 1 {
		return category, category
	}
	return category, strings.Join(segments[1:], "; ")
}

// HasInstalled reports whether the catalog contains at least one package
// that is present on disk, i.e. installed or updateable.
func HasInstalled(catalog []*Package) bool {
	for _, pkg := range catalog {
		if pkg.State == StateInstalled || pkg.State == StateUpdateable {
			return true
		}
	}
	return false
}
