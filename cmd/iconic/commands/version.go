package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Date    string `json:"date"    yaml:"date"`
			}{version, commit, date}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(info)
			case OutputFormatYAML:
				return StandardYAMLRenderer(info)
			default:
				fmt.Printf("iconic %s (commit %s, built %s)\n", version, commit, date)

				return nil
			}
		},
	}
}
