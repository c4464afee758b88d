package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capstage/internal/reporter"
	"github.com/ppiankov/capstage/internal/stage"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <session>",
		Short: "Show what is staged in a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			// metadata --session writes the base name of the output inside the session
			st, err := reporter.Inspect(stage.NewLayout(s.DataDir), args[0], filepath.Base(s.MetadataOutput))
			if err != nil {
				return err
			}
			reporter.NewSessionReporter(cmd.OutOrStdout()).Print(st)
			return nil
		},
	}
}
