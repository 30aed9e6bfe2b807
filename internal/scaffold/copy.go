package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// excludedNames are entries never copied from the template tree.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// copyDir recursively copies src to dst, preserving relative paths, file
// contents, and modes. Entries in excludedNames, symlinks, and other special
// files are skipped.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode())
}

// summarize lists the top-level entries of dir in lexicographic order.
// Directories carry a recursive count of files whose name contains a dot,
// matching the "*.*" convention of the copy report.
func summarize(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			count, err := countDottedFiles(filepath.Join(dir, entry.Name()))
			if err != nil {
				return out, err
			}
			out = append(out, Entry{Name: entry.Name(), IsDir: true, FileCount: count})
		} else {
			out = append(out, Entry{Name: entry.Name()})
		}
	}

	return out, nil
}

// countDottedFiles counts regular files under dir whose name contains a dot.
func countDottedFiles(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.Contains(d.Name(), ".") {
			count++
		}
		return nil
	})
	return count, err
}
