package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capstage/internal/metadata"
	"github.com/ppiankov/capstage/internal/stage"
)

func newDevicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List recognized capture device identifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range metadata.Devices() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <identifier>",
		Short: "Check whether a device identifier is recognized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !metadata.IsValidDevice(args[0]) {
				return stage.Errorf(stage.ErrValidation, "%s is not a recognized device identifier; see %s", args[0], metadata.DeviceReference)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", args[0])
			return nil
		},
	})

	return cmd
}
