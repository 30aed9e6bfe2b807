package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coursekit-labs/coursekit/internal/descriptor"
	"github.com/coursekit-labs/coursekit/internal/template"
)

// Entry describes one top-level entry of the scaffolded course directory.
type Entry struct {
	Name      string
	IsDir     bool
	FileCount int // recursive count of dotted file names; directories only
}

// Result holds the outcome of a scaffold run, consumed by the CLI layer
// for reporting.
type Result struct {
	TargetDir         string
	SourceDir         string
	Entries           []Entry
	Title             string
	CourseCode        string
	DescriptorUpdated bool
	Warnings          []string
}

// Create scaffolds a new course working directory at target by copying the
// template tree at source, then personalizing course.json and README.md for
// the target name.
//
// The target must not exist; an existing entry of any kind aborts before any
// mutation. A mid-copy I/O failure aborts and leaves the partial target in
// place. A course.json parse or write failure degrades to a warning; a
// README write failure is fatal.
func Create(source, target string) (*Result, error) {
	// Refuse to touch an existing target, file or directory.
	if _, err := os.Lstat(target); err == nil {
		return nil, fmt.Errorf("directory %s already exists; choose a different name or remove it", target)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking target %s: %w", target, err)
	}

	if err := template.Check(source); err != nil {
		return nil, err
	}

	if err := copyDir(source, target); err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}

	result := &Result{
		TargetDir: target,
		SourceDir: source,
	}

	entries, err := summarize(target)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not list copied structure: %v", err))
	}
	result.Entries = entries

	// Metadata derives from the directory name, not the full path.
	name := filepath.Base(filepath.Clean(target))
	d := descriptor.Derive(name)
	result.Title = d.Title
	result.CourseCode = d.CourseCode

	updateDescriptor(result, d)

	if err := writeReadme(target, name, d.Title); err != nil {
		return nil, fmt.Errorf("generating README.md: %w", err)
	}

	return result, nil
}

// updateDescriptor rewrites course.json at the target root if present.
// Failures degrade to warnings; a missing descriptor is skipped silently.
func updateDescriptor(result *Result, d descriptor.Derived) {
	path := filepath.Join(result.TargetDir, descriptor.FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := descriptor.UpdateFile(path, d); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not update %s: %v", descriptor.FileName, err))
		return
	}
	result.DescriptorUpdated = true

	// Post-rewrite schema check, warning-only.
	valResult, valErr := descriptor.ValidateFile(path)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", descriptor.FileName, valErr))
		return
	}
	if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: %s", descriptor.FileName, msg))
		}
	}
}
