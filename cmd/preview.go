package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ebstools/ebsedit/internal/ebs"
	"github.com/ebstools/ebsedit/internal/preview"
)

var (
	previewWidth int
	previewVideo bool
	previewMask  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <file> <frame>",
	Short: "Render a frame image inline in the terminal",
	Long: `Resolve the key image path template of a project for the given frame
number and render the image in the terminal.

With --video or --mask the video or mask image template is used
instead. On terminals without inline image support only the resolved
path is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("frame number %q is not an integer", args[1])
		}

		project, err := ebs.ReadFile(args[0])
		if err != nil {
			return err
		}

		template := project.KeysPath
		switch {
		case previewVideo && previewMask:
			return fmt.Errorf("--video and --mask are mutually exclusive")
		case previewVideo:
			template = project.VideoPath
		case previewMask:
			template = project.MaskPath
		}

		path := preview.NormalizePath(preview.FramePath(template, frame))
		fmt.Println(path)

		if !preview.Supported() {
			return nil
		}

		rendered, err := preview.Render(path, previewWidth)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 60, "Preview width in terminal cells")
	previewCmd.Flags().BoolVar(&previewVideo, "video", false, "Preview the video image instead of the key image")
	previewCmd.Flags().BoolVar(&previewMask, "mask", false, "Preview the mask image instead of the key image")
}
