package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ebstools/ebsedit/internal/ebs"
	"github.com/ebstools/ebsedit/internal/models"
	"github.com/ebstools/ebsedit/internal/tui"
)

var tuiOutput string

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Edit a project interactively",
	Long: `Open the interactive project editor.

With a file argument the project is loaded from it and saved back to
the same file unless --output points elsewhere. Without a file the
default EbSynth project is edited; give --output to be able to save.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project := models.DefaultProject()
		savePath := tuiOutput

		if len(args) == 1 {
			var err error
			project, err = ebs.ReadFile(args[0])
			if err != nil {
				return err
			}
			if savePath == "" {
				savePath = args[0]
			}
		}

		return tui.Run(project, savePath)
	},
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiOutput, "output", "o", "", "File to save the project to")
}
