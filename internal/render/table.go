package render

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ebstools/ebsedit/internal/models"
)

// Intervals renders the interval list as an aligned table with the same
// columns the EbSynth UI shows: range boundaries, boundary-used flags,
// key frame and output template.
func Intervals(intervals []models.Interval) string {
	if len(intervals) == 0 {
		return "(none)\n"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"First", "?", "Key", "Final", "?", "Output"})

	for _, iv := range intervals {
		tw.AppendRow(table.Row{
			strconv.Itoa(int(iv.FirstFrame)),
			usedSymbol(iv.FirstFrameIsUsed),
			strconv.Itoa(int(iv.KeyFrame)),
			strconv.Itoa(int(iv.FinalFrame)),
			usedSymbol(iv.FinalFrameIsUsed),
			iv.OutputPath,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render() + "\n"
}
