package cli

import (
	"fmt"
	"os"

	"github.com/coursekit-labs/coursekit/internal/config"
	"github.com/coursekit-labs/coursekit/internal/descriptor"
	"github.com/coursekit-labs/coursekit/internal/template"
	"github.com/spf13/cobra"
)

var (
	checkTemplate   bool
	checkDescriptor string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTemplate, "check-template", false, "Verify the course template tree")
	doctorCmd.Flags().StringVar(&checkDescriptor, "check-descriptor", "", "Validate a course.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the CourseKit environment",
	Long:  `Run diagnostic checks on the course template and tool configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		anyFlag := checkTemplate || checkDescriptor != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			return runTemplateCheck()
		}

		if checkTemplate {
			if err := runTemplateCheck(); err != nil {
				return err
			}
		}
		if checkDescriptor != "" {
			if err := runDescriptorCheck(checkDescriptor); err != nil {
				return err
			}
		}

		return nil
	},
}

func runTemplateCheck() error {
	dir, err := template.Locate()
	if err != nil {
		return fmt.Errorf("resolving template directory: %w", err)
	}
	return template.CheckHealth(os.Stdout, dir)
}

func runDescriptorCheck(path string) error {
	result, err := descriptor.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if result.Valid {
		fmt.Printf("%s is valid\n", path)
		return nil
	}

	fmt.Printf("%s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Printf("  - %s\n", msg)
	}
	return fmt.Errorf("descriptor validation failed")
}
