package fightsongs

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mwiater/fightsongs/internal/aggregate"
	"github.com/spf13/cobra"
)

var (
	heading   = color.New(color.FgCyan, color.Bold).SprintFunc()
	highlight = color.New(color.FgGreen).SprintFunc()
	warning   = color.New(color.FgYellow).SprintFunc()
)

// summaryCmd implements the 'summary' command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print trope counts and conference averages",
	Long:  `The 'summary' command prints how many schools use each trope and the average trope count per conference.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadDescriptors(cmd.Context(), GetConfig())
		if err != nil {
			return err
		}
		writeSummary(cmd.OutOrStdout(), data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func writeSummary(out io.Writer, data loaded) {
	ds := data.Dataset
	fmt.Fprintf(out, "%s %d schools", heading("Dataset:"), len(ds.Rows))
	if ds.Dropped > 0 || len(ds.Issues) > 0 {
		fmt.Fprintf(out, " %s", warning(fmt.Sprintf("(dropped %d, flagged %d)", ds.Dropped, len(ds.Issues))))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("Schools per trope:"))
	for _, f := range aggregate.TropeFrequencies(ds.Rows) {
		fmt.Fprintf(out, "  %-10s %s\n", f.Trope, highlight(f.Count))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("Average trope count by conference:"))
	for _, a := range data.Aggregates.ConferenceAverages {
		fmt.Fprintf(out, "  %-16s %s  (%d schools)\n", a.Conference, highlight(fmt.Sprintf("%.2f", a.Average)), a.Count)
	}
}
