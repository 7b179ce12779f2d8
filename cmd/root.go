package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/config"
)

var (
	configPath string // directory holding config.yaml, or the file itself
	logLevel   string // overrides log_level from the config file

	cfg *config.SchedulerConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "os-scheduler",
	Short:         "Discrete-time CPU scheduling simulator (FCFS, SJF, Round Robin, Priority)",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadSchedulerConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./", "Directory containing config.yaml, or a YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(serveCmd, simulateCmd)
}
