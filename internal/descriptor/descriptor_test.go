package descriptor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		dirName   string
		wantTitle string
		wantCode  string
	}{
		{"hyphenated with digit", "year9-programming", "Year9 Programming", "YEAR9-PROGRAMMING"},
		{"underscored with number", "biology_101", "Biology 101", "BIOLOGY_101"},
		{"plain hyphenated", "my-course", "My Course", "MY-COURSE"},
		{"mixed separators", "gcse_computer-science", "Gcse Computer Science", "GCSE_COMPUTER-SCIENCE"},
		{"already capitalized", "PHYSICS-a", "Physics A", "PHYSICS-A"},
		{"single word", "chemistry", "Chemistry", "CHEMISTRY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derive(tt.dirName)
			if d.Title != tt.wantTitle {
				t.Errorf("Derive(%q).Title = %q, want %q", tt.dirName, d.Title, tt.wantTitle)
			}
			if d.CourseCode != tt.wantCode {
				t.Errorf("Derive(%q).CourseCode = %q, want %q", tt.dirName, d.CourseCode, tt.wantCode)
			}
		})
	}
}

func TestUpdateFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, FileName)

	original := map[string]interface{}{
		"title":        "Template Course",
		"course_code":  "TEMPLATE",
		"term":         "2026-T1",
		"is_public":    false,
		"default_view": "wiki",
		"settings": map[string]interface{}{
			"hide_final_grades": true,
		},
	}
	data, err := json.MarshalIndent(original, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, Derive("biology_101")); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var course map[string]interface{}
	if err := json.Unmarshal(updated, &course); err != nil {
		t.Fatalf("updated descriptor is not valid JSON: %v", err)
	}

	if course["title"] != "Biology 101" {
		t.Errorf("title = %v, want %q", course["title"], "Biology 101")
	}
	if course["course_code"] != "BIOLOGY_101" {
		t.Errorf("course_code = %v, want %q", course["course_code"], "BIOLOGY_101")
	}

	// All other fields pass through unchanged.
	if course["term"] != "2026-T1" {
		t.Errorf("term = %v, want %q", course["term"], "2026-T1")
	}
	if course["is_public"] != false {
		t.Errorf("is_public = %v, want false", course["is_public"])
	}
	if course["default_view"] != "wiki" {
		t.Errorf("default_view = %v, want %q", course["default_view"], "wiki")
	}
	settings, ok := course["settings"].(map[string]interface{})
	if !ok || settings["hide_final_grades"] != true {
		t.Errorf("settings not preserved: %v", course["settings"])
	}
}

func TestUpdateFile_MalformedJSON(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, FileName)

	malformed := []byte(`{"title": "broken",`)
	if err := os.WriteFile(path, malformed, 0644); err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, Derive("my-course")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	// The file must be left exactly as it was.
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(malformed) {
		t.Errorf("malformed descriptor was modified: %q", after)
	}
}

func TestUpdateFile_MissingFile(t *testing.T) {
	tmp := t.TempDir()
	if err := UpdateFile(filepath.Join(tmp, FileName), Derive("x")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
