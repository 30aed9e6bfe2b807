package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReadme(t *testing.T) {
	dir := t.TempDir()

	if err := writeReadme(dir, "year9-programming", "Year9 Programming"); err != nil {
		t.Fatalf("writeReadme: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ReadmeFileName))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# Year9 Programming\n") {
		t.Errorf("README should open with the display title heading, got %q", content[:40])
	}
	if !strings.Contains(content, "imscc-build year9-programming") {
		t.Error("README should embed the verbatim directory name in the build command")
	}
	if !strings.Contains(content, "year9-programming/") {
		t.Error("README should embed the directory name in the folder structure figure")
	}
	if !strings.Contains(content, "canvas-course.css") {
		t.Error("README boilerplate missing styling system section")
	}
}

func TestWriteReadme_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ReadmeFileName)
	if err := os.WriteFile(path, []byte("# old template readme\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeReadme(dir, "biology_101", "Biology 101"); err != nil {
		t.Fatalf("writeReadme: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "old template readme") {
		t.Error("README should be fully replaced, not merged")
	}
	if !strings.Contains(string(data), "Biology 101") {
		t.Error("README missing display title")
	}
}
