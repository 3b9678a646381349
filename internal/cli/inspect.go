package fightsongs

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/spf13/cobra"
)

// descriptorView is the compact form of a chart descriptor dumped by inspect.
type descriptorView struct {
	Kind    charts.Kind
	Title   string
	Rows    int
	Tropes  int
	Schools []string
	Labels  []string
	Values  []float64
}

// inspectCmd implements the 'inspect' command, a debug dump of the chart sequence.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump the chart descriptors",
	Long:  `The 'inspect' command pretty-prints the chart descriptors in navigation order, without the row data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadDescriptors(cmd.Context(), GetConfig())
		if err != nil {
			return err
		}
		pp.Fprintln(cmd.OutOrStdout(), describe(data.Descriptors))
		if len(data.Dataset.Issues) > 0 {
			pp.Fprintln(cmd.OutOrStdout(), data.Dataset.Issues)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func describe(descs []charts.Descriptor) []descriptorView {
	views := make([]descriptorView, len(descs))
	for i, d := range descs {
		views[i] = descriptorView{
			Kind:    d.Kind,
			Title:   d.Title,
			Rows:    len(d.Rows),
			Tropes:  len(d.Tropes),
			Schools: d.Schools,
			Labels:  d.Labels,
			Values:  d.Values,
		}
	}
	return views
}
