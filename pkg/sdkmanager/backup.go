// pkg/sdkmanager/backup.go
package sdkmanager

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// toolsBackupName is the snapshot written next to the tools directory
// before an install that replaces the command-line tools.
const toolsBackupName = "cmdline-tools.backup.tar.xz"

func (pm *PackageManager) toolsBackupPath() string {
	return filepath.Join(pm.config.SdkRoot, toolsBackupName)
}

// backupTools snapshots the cmdline-tools directory into a tar.xz archive
// under the SDK root.
func (pm *PackageManager) backupTools() error {
	src := filepath.Join(pm.config.SdkRoot, ToolsDir)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("tools directory: %w", err)
	}

	f, err := os.Create(pm.toolsBackupPath())
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()

	xzWriter, err := xz.NewWriter(f)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	tarWriter := tar.NewWriter(xzWriter)

	err = filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)

		if err := tarWriter.WriteHeader(header); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(tarWriter, file)
		return err
	})
	if err != nil {
		return fmt.Errorf("archiving tools: %w", err)
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("closing tar: %w", err)
	}
	if err := xzWriter.Close(); err != nil {
		return fmt.Errorf("closing xz: %w", err)
	}

	pm.logger.Printf("Snapshotted %s to %s", src, pm.toolsBackupPath())
	return nil
}

// restoreTools replaces the cmdline-tools directory with the last snapshot.
func (pm *PackageManager) restoreTools() error {
	f, err := os.Open(pm.toolsBackupPath())
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	xzReader, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("xz reader: %w", err)
	}
	tarReader := tar.NewReader(xzReader)

	dst := filepath.Join(pm.config.SdkRoot, ToolsDir)
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clearing tools directory: %w", err)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("recreating tools directory: %w", err)
	}

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading snapshot entry: %w", err)
		}

		// Entries were written with clean relative names, but never trust
		// archive paths on the way back out.
		name := filepath.FromSlash(header.Name)
		if filepath.IsAbs(name) || strings.Contains(name, "..") {
			continue
		}
		target := filepath.Join(dst, name)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("restoring directory %s: %w", name, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("restoring parent of %s: %w", name, err)
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return fmt.Errorf("restoring %s: %w", name, err)
			}
			if _, err := io.Copy(out, tarReader); err != nil {
				out.Close()
				return fmt.Errorf("restoring %s: %w", name, err)
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("restoring %s: %w", name, err)
			}
		}
	}

	pm.logger.Printf("Restored tools directory from %s", pm.toolsBackupPath())
	return nil
}

// discardToolsBackup removes the snapshot after a successful install.
func (pm *PackageManager) discardToolsBackup() {
	if err := os.Remove(pm.toolsBackupPath()); err != nil && !os.IsNotExist(err) {
		pm.logger.Printf("Removing tools snapshot failed: %v", err)
	}
}
