package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and set persisted CLI configuration values",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := map[string]interface{}{
				"api":       viper.GetString("api"),
				"client_id": viper.GetString("client_id"),
				"output":    viper.GetString("output"),
			}

			if viper.GetString("token") != "" {
				settings["token"] = "(set)"
			}

			if viper.GetString("client_secret") != "" {
				settings["client_secret"] = "(set)"
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(settings)
			default:
				return StandardYAMLRenderer(settings)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Persist one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], args[1])

			return writeConfig()
		},
	}
}

// writeConfig persists the current viper state to ~/.iconic/config.yml.
func writeConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".iconic")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yml")

	err = viper.WriteConfigAs(configFile)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return os.Chmod(configFile, constants.ConfigFilePerm)
}
