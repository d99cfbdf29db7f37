package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ebstools/ebsedit/internal/ebs"
	"github.com/ebstools/ebsedit/internal/intervals"
	"github.com/ebstools/ebsedit/internal/models"
	"github.com/ebstools/ebsedit/internal/render"
)

var (
	editInput          string
	editOutput         string
	editFPS            float32
	editKeysPath       string
	editVideoPath      string
	editMaskPath       string
	editUseMask        bool
	editKeysWeight     float32
	editVideoWeight    float32
	editMaskWeight     float32
	editMapping        float32
	editDeFlicker      float32
	editDiversity      float32
	editDetail         int32
	editUseGPU         bool
	editIntervalSpecs  []string
	editClearIntervals bool
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit project settings and intervals",
	Long: `Read a project, overwrite the settings given on the command line and
write the result back.

Without --input the default EbSynth project is used as the starting
point. Without --output the resulting project is printed instead of
written.

Intervals are generated from a compact range description
first:final:step:template, where the template may contain the 1-based
interval index as {i}, or {i%W} for an index zero-padded to width W:

  ebsedit edit -i in.ebs -o out.ebs --intervals "0:120:10:out{i%2}.png"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		project := models.DefaultProject()
		if editInput != "" {
			var err error
			project, err = ebs.ReadFile(editInput)
			if err != nil {
				return err
			}
		}

		applyOverrides(cmd.Flags(), &project)

		if editClearIntervals {
			project.Intervals = nil
		}
		for _, spec := range editIntervalSpecs {
			rs, err := intervals.ParseRangeSpec(spec)
			if err != nil {
				return err
			}
			for iv := range rs.Intervals() {
				project.Intervals = append(project.Intervals, iv)
			}
		}

		if editOutput == "" {
			fmt.Print(render.Project(project))
			return nil
		}
		return ebs.WriteFile(editOutput, project)
	},
}

// applyOverrides copies every edit flag that was set on the command line
// into the project, leaving unset fields untouched.
func applyOverrides(flags *pflag.FlagSet, p *models.Project) {
	if flags.Changed("fps") {
		p.FramesPerSecond = editFPS
	}
	if flags.Changed("keys-path") {
		p.KeysPath = editKeysPath
	}
	if flags.Changed("video-path") {
		p.VideoPath = editVideoPath
	}
	if flags.Changed("mask-path") {
		p.MaskPath = editMaskPath
	}
	if flags.Changed("use-mask") {
		p.UseMask = editUseMask
	}
	if flags.Changed("keys-weight") {
		p.KeysWeight = editKeysWeight
	}
	if flags.Changed("video-weight") {
		p.VideoWeight = editVideoWeight
	}
	if flags.Changed("mask-weight") {
		p.MaskWeight = editMaskWeight
	}
	if flags.Changed("mapping") {
		p.Mapping = editMapping
	}
	if flags.Changed("de-flicker") {
		p.DeFlicker = editDeFlicker
	}
	if flags.Changed("diversity") {
		p.Diversity = editDiversity
	}
	if flags.Changed("detail") {
		p.SynthesisDetail = editDetail
	}
	if flags.Changed("use-gpu") {
		p.UseGPU = editUseGPU
	}
}

func init() {
	f := editCmd.Flags()
	f.StringVarP(&editInput, "input", "i", "", "Input .ebs file (default: the default EbSynth project)")
	f.StringVarP(&editOutput, "output", "o", "", "Output .ebs file (default: print the project)")
	f.Float32Var(&editFPS, "fps", 30.0, "Frames per second for the After Effects export")
	f.StringVar(&editKeysPath, "keys-path", "", "Path template to the keyframe images")
	f.StringVar(&editVideoPath, "video-path", "", "Path template to the video images")
	f.StringVar(&editMaskPath, "mask-path", "", "Path template to the mask images")
	f.BoolVar(&editUseMask, "use-mask", false, "Enable the mask images")
	f.Float32Var(&editKeysWeight, "keys-weight", 1.0, "Weight of the keyframe images")
	f.Float32Var(&editVideoWeight, "video-weight", 4.0, "Weight of the video images")
	f.Float32Var(&editMaskWeight, "mask-weight", 1.0, "Weight of the mask images")
	f.Float32Var(&editMapping, "mapping", 10.0, "Mapping strength")
	f.Float32Var(&editDeFlicker, "de-flicker", 1.0, "De-flicker strength")
	f.Float32Var(&editDiversity, "diversity", 3500.0, "Style diversity")
	f.Int32Var(&editDetail, "detail", 2, "Synthesis detail level (1=High 2=Medium 3=Low 4=Garbage)")
	f.BoolVar(&editUseGPU, "use-gpu", true, "Use the GPU for the synthesis")
	f.StringArrayVar(&editIntervalSpecs, "intervals", nil, "Append intervals from a first:final:step:template range (repeatable)")
	f.BoolVar(&editClearIntervals, "clear-intervals", false, "Drop existing intervals before appending generated ones")
}
