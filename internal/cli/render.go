package fightsongs

import (
	"fmt"

	"github.com/mwiater/fightsongs/internal/render/htmlchart"
	"github.com/mwiater/fightsongs/internal/site"
	"github.com/spf13/cobra"
)

// renderCmd implements the 'render' command, which writes the static HTML site.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every chart as a linked HTML page",
	Long:  `The 'render' command loads the dataset, builds the five charts and writes index.html plus one page per chart, each with previous/next links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		data, err := loadDescriptors(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		backend := htmlchart.New(cfg.Width(), cfg.Height())
		paths, err := site.Write(cmd.Context(), cfg.OutputPath(), data.Descriptors, backend)
		if err != nil {
			return fmt.Errorf("write site: %w", err)
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
