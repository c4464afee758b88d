package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capstage/internal/stage"
)

func newAddVideosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-videos <session> <video1> <video2> [video3] [video4]",
		Short: "Copy videos into a session's camera slots",
		Long: `Copies each video (.mov or .avi) into <data-dir>/<session>/Videos/Cam<N>/InputMedia,
one camera per video in argument order, creating the session layout first.`,
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			session, videos := args[0], args[1:]
			l := stage.NewLayout(s.DataDir)
			if err := l.AddVideos(session, videos...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d videos to %s\n", len(videos), l.SessionDir(session))
			return nil
		},
	}
}
