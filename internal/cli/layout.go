package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capstage/internal/stage"
)

func newLayoutCmd() *cobra.Command {
	var cameras int

	cmd := &cobra.Command{
		Use:   "layout [session]",
		Short: "Create the folder structure for a session",
		Long: `Creates <data-dir>/<session>/Videos/Cam<N>/InputMedia for each camera.
Without a session name the current Unix time is used. An existing session is left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			if cameras < stage.MinCameras || cameras > stage.MaxCameras {
				return stage.Errorf(stage.ErrFormat, "camera count must be between %d and %d, got %d", stage.MinCameras, stage.MaxCameras, cameras)
			}
			var session string
			if len(args) == 1 {
				session = args[0]
			}
			dir, err := stage.NewLayout(s.DataDir).EnsureSessionLayout(session, cameras)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().IntVarP(&cameras, "cameras", "n", stage.DefaultCameras, fmt.Sprintf("number of cameras (%d-%d)", stage.MinCameras, stage.MaxCameras))

	return cmd
}
