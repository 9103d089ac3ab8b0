package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlview/internal/app"
	"github.com/philipparndt/stlview/internal/config"
	"github.com/philipparndt/stlview/version"
	"github.com/spf13/cobra"
)

var viewerFlags *config.Flags

var rootCmd = &cobra.Command{
	Use:   "stlview [file]",
	Short: "Desktop viewer for STL models",
	Long: `stlview shows an STL model in a lit scene with orbit camera controls,
a ground plane and grid. Files can also be dropped onto the window or picked
with the Open button. Without an argument, test.stl is opened if it exists.`,
	Args:         cobra.MaximumNArgs(1),
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := viewerFlags.Resolve()
		if err != nil {
			return err
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		return app.Run(cfg, cfg.StartupPath(arg))
	},
}

func init() {
	viewerFlags = config.BindFlags(rootCmd.PersistentFlags())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
