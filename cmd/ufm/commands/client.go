package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
	"github.com/fivetwenty-io/ufm/pkg/ufmclient"
)

// MetricsRegistry collects request metrics for --metrics-textfile.
var MetricsRegistry = prometheus.NewRegistry()

// BuildConfig assembles the client configuration from flags, environment
// and config file.
func BuildConfig(cmd *cobra.Command) (*ufm.Config, error) {
	address := viper.GetString("address")
	if address == "" {
		return nil, constants.ErrNoAddressConfigured
	}

	config := &ufm.Config{
		Address:       address,
		Username:      viper.GetString("username"),
		Password:      viper.GetString("password"),
		Token:         viper.GetString("token"),
		HTTPTimeout:   viper.GetDuration("timeout"),
		RetryMax:      viper.GetInt("retry-max"),
		SkipTLSVerify: viper.GetBool("skip-ssl-validation"),
		Debug:         viper.GetBool("verbose"),
		Logger:        NewLogger(),
	}

	if config.Token == "" && config.Username != "" && config.Password == "" {
		password, err := promptPassword(cmd)
		if err != nil {
			return nil, err
		}

		config.Password = password
	}

	if viper.GetString("metrics-textfile") != "" {
		collector, err := ufm.NewMetricsCollector(MetricsRegistry)
		if err != nil {
			return nil, fmt.Errorf("failed to set up metrics: %w", err)
		}

		chain := ufm.NewInterceptorChain()
		collector.Register(chain)
		config.Interceptors = chain
	}

	return config, nil
}

// CreateClient creates a UFM client from the command's configuration.
func CreateClient(cmd *cobra.Command) (ufm.Client, error) {
	config, err := BuildConfig(cmd)
	if err != nil {
		return nil, err
	}

	return ufmclient.New(commandContext(cmd), config)
}

// WriteMetrics writes collected request metrics when --metrics-textfile is
// set.
func WriteMetrics() error {
	path := viper.GetString("metrics-textfile")
	if path == "" {
		return nil
	}

	err := prometheus.WriteToTextfile(path, MetricsRegistry)
	if err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}

// promptPassword reads the password from the terminal. Without a terminal
// the password stays empty.
func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	bytePassword, err := term.ReadPassword(fd)

	fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(bytePassword), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
