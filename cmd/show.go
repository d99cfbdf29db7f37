package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ebstools/ebsedit/internal/config"
	"github.com/ebstools/ebsedit/internal/ebs"
	"github.com/ebstools/ebsedit/internal/models"
	"github.com/ebstools/ebsedit/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print a formatted project summary",
	Long: `Display all settings and intervals of a project file.

Without a file argument the default EbSynth project is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg, err := config.Load(); err == nil && cfg.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		project := models.DefaultProject()
		if len(args) == 1 {
			var err error
			project, err = ebs.ReadFile(args[0])
			if err != nil {
				return err
			}
		}

		fmt.Print(render.Project(project))
		return nil
	},
}
