package template

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/coursekit-labs/coursekit/internal/branding"
	"github.com/coursekit-labs/coursekit/internal/config"
	"github.com/coursekit-labs/coursekit/internal/descriptor"
)

// ModulesFileName is the module organization file at the template root.
const ModulesFileName = "modules.json"

// Locate returns the path to the course template directory.
// It checks the COURSEKIT_TEMPLATE_DIR environment variable first, then the
// template_dir config key, then falls back to the canvas-course-template
// directory next to the running executable.
func Locate() (string, error) {
	if v := os.Getenv(branding.EnvVar("TEMPLATE_DIR")); v != "" {
		return v, nil
	}
	if v := config.Get(config.KeyTemplateDir); v != "" {
		return v, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), branding.TemplateDirName()), nil
}

// Check verifies that dir exists and is a readable directory. It returns the
// "template not found" condition the scaffolder aborts on.
func Check(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("template directory not found at %s", dir)
	}
	if err != nil {
		return fmt.Errorf("checking template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template path %s is not a directory", dir)
	}
	if _, err := os.ReadDir(dir); err != nil {
		return fmt.Errorf("reading template directory %s: %w", dir, err)
	}
	return nil
}

// CheckHealth runs diagnostic checks on the template tree and writes
// [ OK ]/[WARN]/[FAIL] lines to w. It reports on the directory itself, the
// course descriptor, and modules.json. The returned error covers only checks
// that could not run at all.
func CheckHealth(w io.Writer, dir string) error {
	fmt.Fprintln(w, "Template check:")

	if err := Check(dir); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		fmt.Fprintf(w, "         Set %s or the %s config key to point at the template\n",
			branding.EnvVar("TEMPLATE_DIR"), config.KeyTemplateDir)
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", dir)

	checkDescriptor(w, filepath.Join(dir, descriptor.FileName))
	checkModules(w, filepath.Join(dir, ModulesFileName))

	return nil
}

func checkDescriptor(w io.Writer, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [WARN] %s missing (title and course code will not be personalized)\n", path)
		return
	}

	result, err := descriptor.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] Could not validate %s: %v\n", path, err)
		return
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(w, "  [WARN] %s: %s\n", path, msg)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s passes schema validation\n", path)
}

func checkModules(w io.Writer, path string) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [WARN] %s missing\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !json.Valid(data) {
		fmt.Fprintf(w, "  [WARN] %s is not valid JSON\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s parses\n", path)
}
