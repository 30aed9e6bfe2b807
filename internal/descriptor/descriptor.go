package descriptor

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FileName is the course descriptor file name at the root of a course tree.
const FileName = "course.json"

// separators maps directory-name separators to spaces for title derivation.
var separators = strings.NewReplacer("-", " ", "_", " ")

// Derived holds the metadata values computed from a course directory name.
type Derived struct {
	Title      string // e.g., "Year9 Programming"
	CourseCode string // e.g., "YEAR9-PROGRAMMING"
}

// Derive computes the display title and course code for a directory name.
// Hyphens and underscores become spaces and each word is title-cased for the
// title; the course code is the name upper-cased with separators untouched.
func Derive(name string) Derived {
	// Casers are stateful; construct per call.
	title := cases.Title(language.English)
	return Derived{
		Title:      title.String(separators.Replace(name)),
		CourseCode: strings.ToUpper(name),
	}
}

// UpdateFile rewrites the title and course_code fields of the JSON object at
// path and writes it back with 2-space indentation. Every other field passes
// through unchanged.
func UpdateFile(path string, d Derived) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var course map[string]interface{}
	if err := json.Unmarshal(data, &course); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	course["title"] = d.Title
	course["course_code"] = d.CourseCode

	out, err := json.MarshalIndent(course, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
