// Package cli implements the porchlight CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"porchlight/internal/community"
	"porchlight/internal/config"
)

var (
	dataDir    string
	configPath string
	formatFlag string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "porchlight",
	Short: "A neighborly directory for the community",
	Long: "porchlight is a small social demo for a retirement community: a resident\n" +
		"directory with porch lights, message threads, and a director dashboard.\n" +
		"Single binary, local SQLite, no server.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal; keep zap off its screen.
		if cmd.Name() == "ui" {
			logger = zap.NewNop()
		} else {
			zc := zap.NewProductionConfig()
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
		}

		var err error
		cfg, err = config.Load(getConfigPath())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Data directory (default: $PORCHLIGHT_DATA or ~/.porchlight)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.porchlight/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func openCommunity(cmd *cobra.Command) (*community.Community, error) {
	return community.Open(cmd.Context(), cfg.DBPath(), logger)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
