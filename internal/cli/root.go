package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capstage/internal/config"
)

// Version and Commit are set via LDFLAGS at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configFile string
	dataDir    string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "capstage",
		Short: "Stage capture sessions for offline processing",
		Long: `capstage prepares the Data/<session>/Videos/Cam<N>/InputMedia layout, converts a
hand-written metadata.txt into metadata.yaml, and copies operator-supplied videos into
their camera slots so the processing pipeline can run without the capture client.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "path to config file")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "base data directory (default from config, then ../Data)")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newMetadataCmd())
	root.AddCommand(newAddVideosCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newDevicesCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadSettings reads the config file and applies the --data-dir override.
func loadSettings() (*config.Settings, error) {
	s, err := config.LoadSettings(configFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		s.DataDir = dataDir
	}
	slog.Debug("settings loaded", "config", configFile, "data_dir", s.DataDir)
	return s, nil
}
