package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/ufm/internal/constants"
)

// NewRootCommand creates the ufm command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ufm",
		Short: "UFM command line",
		Long: `A command-line interface for managing InfiniBand partitions through
the NVIDIA UFM REST API.

Connection settings are read from flags, UFM_* environment variables and
$HOME/.ufm/config.yml, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(cmd)

			return ConfigureLogging(viper.GetBool("verbose"))
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.ufm/config.yml)")
	flags.StringP("address", "a", "", "UFM address, e.g. https://ufm.example.com")
	flags.StringP("username", "u", "", "UFM username")
	flags.StringP("password", "p", "", "UFM password")
	flags.StringP("token", "t", "", "UFM access token, used instead of username/password")
	flags.String("output", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("skip-ssl-validation", false, "skip SSL certificate validation")
	flags.Int("retry-max", constants.DefaultRetryMax, "retries for connection errors and 5xx responses")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "timeout for a single HTTP request")
	flags.String("metrics-textfile", "", "write request metrics to this Prometheus textfile on exit")

	// Bind flags to viper
	for _, name := range []string{
		"config", "address", "username", "password", "token", "output", "verbose",
		"skip-ssl-validation", "retry-max", "timeout", "metrics-textfile",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewCreateCommand())
	rootCmd.AddCommand(NewDeleteCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewViewCommand())
	rootCmd.AddCommand(NewBindCommand())
	rootCmd.AddCommand(NewUnbindCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in ~/.ufm/config.yml
			viper.AddConfigPath(filepath.Join(home, ".ufm"))
			viper.SetConfigType("yml")
			viper.SetConfigName("config")
		}
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("UFM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
		}
	}
}
