package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	// Global flags
	configPath string
	logLevel   string
	devLogs    bool

	// Loaded in PersistentPreRunE
	cfg     config.File
	logger  *zap.Logger
	session string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adaptive-nav",
	Short: "Adaptive navigation shell for phones, tablets and desktops",
	Long: `adaptive-nav shows one set of destinations through the navigation
shell that fits the available width: a bottom bar below 600px, a rail
up to 800px and a drawer beyond that.

Run without arguments to open the GUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("dev") {
			cfg.Log.Development = devLogs
		}

		base, err := logging.New(cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return err
		}
		logger, session = logging.WithSession(base)
		logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("version", version))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&devLogs, "dev", false, "Human-readable development logs")

	guiCmd.Flags().Float32Var(&guiWidth, "width", 0, "Initial window width (overrides config)")
	guiCmd.Flags().Float32Var(&guiHeight, "height", 0, "Initial window height (overrides config)")
	classifyCmd.SetFlagErrorFunc(classifyFlagError)
	tuiCmd.Flags().Float32Var(&cellWidth, "cell-width", 0, "Logical pixels per terminal column (overrides config)")

	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(routesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
