package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	settings   *config.Settings
)

var rootCmd = &cobra.Command{
	Use:               "portalfx",
	Short:             "Real-time OpenGL demos, starring the portal illusion",
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo("portal")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/portalfx/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default from settings)")
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(level string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetSettingsPath()
}

// loadSettings runs before every demo command. The flag wins over the
// settings file for the log level.
func loadSettings(cmd *cobra.Command, args []string) error {
	if err := setupLogging(logLevel); err != nil {
		return err
	}
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	s, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	if logLevel == "" {
		if err := setupLogging(s.LogLevel); err != nil {
			log.Warn().Err(err).Msg("ignoring log_level setting")
		}
	}
	settings = s
	return nil
}
