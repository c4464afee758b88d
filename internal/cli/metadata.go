package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capstage/internal/metadata"
	"github.com/ppiankov/capstage/internal/stage"
)

func newMetadataCmd() *cobra.Command {
	var (
		input       string
		output      string
		session     string
		checkerOnly bool
	)

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Convert metadata.txt into metadata.yaml",
		Long: `Reads one "parameter value" pair per line (mass_kg, height_m, subject_name,
device1, device2 and optionally device3, device4), validates it, adds the
pipeline defaults and writes a YAML document. Nothing is written if any line is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("input") {
				input = s.MetadataInput
			}
			if !cmd.Flags().Changed("output") {
				output = s.MetadataOutput
			}
			if !cmd.Flags().Changed("checker-only") {
				checkerOnly = s.CheckerOnly
			}
			if session != "" {
				l := stage.NewLayout(s.DataDir)
				if _, err := l.EnsureSessionLayout(session, stage.DefaultCameras); err != nil {
					return err
				}
				output = sessionDocument(l, session, output)
			}

			rec, err := metadata.Load(input, output, checkerOnly)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s for %s\n", output, rec.SubjectName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", metadata.DefaultInput, "metadata text file")
	cmd.Flags().StringVarP(&output, "output", "o", metadata.DefaultOutput, "metadata YAML file")
	cmd.Flags().StringVar(&session, "session", "", "write the output inside this session directory")
	cmd.Flags().BoolVar(&checkerOnly, "checker-only", false, "only add checkerboard parameters (calibration)")

	return cmd
}

// sessionDocument is where a session's metadata document lives: the base
// name of the configured output, inside the session directory.
func sessionDocument(l stage.Layout, session, output string) string {
	return filepath.Join(l.SessionDir(session), filepath.Base(output))
}
