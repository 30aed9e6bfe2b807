package scaffold

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/README.md.tmpl
var readmeTemplate string

// ReadmeFileName is the generated README at the root of a course tree.
const ReadmeFileName = "README.md"

type readmeData struct {
	Name  string // directory name, verbatim
	Title string // derived display title
}

// writeReadme renders the course README into dir, replacing whatever copy
// came over from the template.
func writeReadme(dir, name, title string) error {
	tmpl, err := template.New(ReadmeFileName).Parse(readmeTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, readmeData{Name: name, Title: title}); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, ReadmeFileName), buf.Bytes(), 0644)
}
