package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var force bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
	// the settings file is not loaded here, so path and init never create it
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd)
	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
}

func initConfig(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking settings file: %w", err)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("wrote default settings")
	return nil
}
