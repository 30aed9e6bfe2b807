package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coursekit-labs/coursekit/internal/config"
	"github.com/coursekit-labs/coursekit/internal/scaffold"
	"github.com/coursekit-labs/coursekit/internal/template"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <directory>",
	Short: "Scaffold a new course working directory from the template",
	Long: `Create a new Canvas course working directory by copying the shared course
template, then personalize course.json and README.md for the new name.

Examples:
  coursekit create my-course
  coursekit create biology_101
  coursekit create year9-programming`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		config.Load()
		source, err := template.Locate()
		if err != nil {
			return err
		}

		rule := strings.Repeat("=", 70)
		fmt.Println(rule)
		fmt.Printf("Creating course directory: %s\n", name)
		fmt.Println(rule)
		fmt.Printf("\nCopying from: %s\n", source)

		result, err := scaffold.Create(source, name)
		if err != nil {
			return err
		}

		printCreateResult(result)

		location := result.TargetDir
		if abs, absErr := filepath.Abs(result.TargetDir); absErr == nil {
			location = abs
		}

		fmt.Println()
		fmt.Println(rule)
		fmt.Println("Course directory created")
		fmt.Println(rule)
		fmt.Printf("\nLocation: %s\n", location)
		fmt.Println("\nNext steps:")
		fmt.Printf("  1. cd %s\n", name)
		fmt.Println("  2. Open wiki_content/welcome_TEMPLATE.html in your browser")
		fmt.Println("  3. Replace the _TEMPLATE pages with your own content")
		fmt.Printf("  4. Run 'imscc-build %s' to package for Canvas\n", name)
		return nil
	},
}

func printCreateResult(result *scaffold.Result) {
	fmt.Println("\nCopied structure:")
	for _, entry := range result.Entries {
		if entry.IsDir {
			fmt.Printf("  %s/ (%d files)\n", entry.Name, entry.FileCount)
		} else {
			fmt.Printf("  %s\n", entry.Name)
		}
	}

	if result.DescriptorUpdated {
		fmt.Println("\nUpdated course.json:")
		fmt.Printf("  title: %s\n", result.Title)
		fmt.Printf("  course_code: %s\n", result.CourseCode)
	}

	fmt.Println("\nGenerated README.md")

	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
