// Package cmd wires the command-line interface for the project file editor.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the application version (called from main)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "ebsedit",
	Short: "Command-line editor for EbSynth (EBS) project files",
	Long: `ebsedit reads, edits and writes EbSynth (.ebs) project files.

It supports:
  - Inspecting a project file with a formatted summary
  - Overwriting individual settings from the command line
  - Generating overlapping keyframe intervals from a compact range
  - Previewing keyframe images inline in the terminal
  - Editing a project interactively`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(tuiCmd)
}
