package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ufm/internal/constants"
)

// VersionInfo is the structured output of the version command.
type VersionInfo struct {
	Version    string `json:"version"     yaml:"version"`
	Commit     string `json:"commit"      yaml:"commit"`
	Built      string `json:"built"       yaml:"built"`
	UFMVersion string `json:"ufm_version" yaml:"ufm_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get the version of UFM",
		Long:  "Display the UFM release version along with the CLI build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ufmVersion, err := client.Version(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to get UFM version: %w", err)
			}

			versionInfo := VersionInfo{
				Version:    version,
				Commit:     commit,
				Built:      date,
				UFMVersion: ufmVersion,
			}

			if format != constants.FormatTable {
				return renderStructured(cmd.OutOrStdout(), format, versionInfo)
			}

			return renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, [][]string{
				{"UFM Version", ufmVersion},
				{"Version", version},
				{"Commit", commit},
				{"Built", date},
			})
		},
	}
}
