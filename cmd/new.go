package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebstools/ebsedit/internal/ebs"
	"github.com/ebstools/ebsedit/internal/models"
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Write a default project file",
	Long:  `Create a new project file with the stock EbSynth settings and a single default interval.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ebs.WriteFile(args[0], models.DefaultProject()); err != nil {
			return err
		}
		fmt.Printf("Wrote default project to %s\n", args[0])
		return nil
	},
}
