package fightsongs

import (
	"github.com/mwiater/fightsongs/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd implements the 'browse' command, the interactive chart viewer.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the charts in the terminal",
	Long:  `The 'browse' command opens a full-screen viewer. Use right/l/n for the next chart, left/h/p for the previous one and q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		data, err := loadDescriptors(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return tui.Start(cmd.Context(), data.Descriptors, cfg.LogFilePath())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
