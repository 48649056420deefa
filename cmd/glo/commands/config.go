package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
	"github.com/fivetwenty-io/glo/pkg/gloclient"
)

// Config is the CLI configuration persisted in ~/.glo/config.yml.
type Config struct {
	API      string `json:"api,omitempty"       yaml:"api,omitempty"`
	Token    string `json:"token,omitempty"     yaml:"token,omitempty"`
	Output   string `json:"output,omitempty"    yaml:"output,omitempty"`
	RetryMax int    `json:"retry_max,omitempty" yaml:"retry_max,omitempty"`
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// configKeys lists the keys accepted by "config set" and "config unset".
var configKeys = map[string]func(*Config, string) error{
	"api": func(c *Config, v string) error {
		c.API = v

		return nil
	},
	"token": func(c *Config, v string) error {
		c.Token = v

		return nil
	},
	"output": func(c *Config, v string) error {
		if v != "" {
			err := validateOutputFormat(v)
			if err != nil {
				return err
			}
		}

		c.Output = v

		return nil
	},
	"retry_max": func(c *Config, v string) error {
		if v == "" {
			c.RetryMax = 0

			return nil
		}

		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("retry_max must be a non-negative integer, got %q", v)
		}

		c.RetryMax = n

		return nil
	},
	"log_level": func(c *Config, v string) error {
		if v != "" {
			_, err := parseLogLevel(v)
			if err != nil {
				return err
			}
		}

		c.LogLevel = v

		return nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.glo/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = maskToken(config.Token)

			return renderOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header("Setting", "Value")
				_ = table.Append("api", valueOrDefault(config.API, constants.DefaultBaseURL))
				_ = table.Append("token", valueOrDefault(config.Token, constants.NotAvailable))
				_ = table.Append("output", valueOrDefault(config.Output, constants.FormatTable))
				_ = table.Append("retry_max", strconv.Itoa(config.RetryMax))
				_ = table.Append("log_level", valueOrDefault(config.LogLevel, defaultLogLevel.String()))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(sortedConfigKeys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigKey(cmd, args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Reset a configuration value to its default. Keys: " + strings.Join(sortedConfigKeys(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigKey(cmd, args[0], "")
		},
	}
}

func updateConfigKey(cmd *cobra.Command, key, value string) error {
	setter, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	config, err := loadConfigFile()
	if err != nil {
		return err
	}

	err = setter(config, value)
	if err != nil {
		return err
	}

	err = saveConfigStruct(config, key)
	if err != nil {
		return err
	}

	if value == "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
	}

	return nil
}

func sortedConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for key := range configKeys {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// loadConfig returns the effective configuration: flags, then GLO_*
// environment variables, then the config file.
func loadConfig() *Config {
	return &Config{
		API:      viper.GetString("api"),
		Token:    viper.GetString("token"),
		Output:   viper.GetString("output"),
		RetryMax: viper.GetInt("retry_max"),
		LogLevel: viper.GetString("log_level"),
	}
}

// loadConfigFile reads the config file alone, without flags or GLO_*
// variables. A missing file yields an empty Config.
func loadConfigFile() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	_, err = os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")

	err = file.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return &Config{
		API:      file.GetString("api"),
		Token:    file.GetString("token"),
		Output:   file.GetString("output"),
		RetryMax: file.GetInt("retry_max"),
		LogLevel: file.GetString("log_level"),
	}, nil
}

func (c *Config) values() map[string]interface{} {
	return map[string]interface{}{
		"api":       c.API,
		"token":     c.Token,
		"output":    c.Output,
		"retry_max": c.RetryMax,
		"log_level": c.LogLevel,
	}
}

func configFilePath() (string, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".glo", "config.yml"), nil
}

// saveConfigStruct writes config to the config file and makes the changed
// keys effective for the rest of the process.
func saveConfigStruct(config *Config, changed ...string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	values := config.values()
	for _, key := range changed {
		viper.Set(key, values[key])
	}

	return nil
}

// CreateClient builds an API client from the effective configuration.
func CreateClient() (glo.Client, error) {
	return newClientFromConfig(loadConfig())
}

func newClientFromConfig(config *Config) (glo.Client, error) {
	if config.Token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	logger, err := newCLILogger(os.Stderr, config.LogLevel, viper.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	chain := glo.NewInterceptorChain().AddRequestInterceptor(glo.RequestIDInterceptor())

	client, err := gloclient.New(&glo.Config{
		APIEndpoint:  config.API,
		Token:        config.Token,
		RetryMax:     config.RetryMax,
		Debug:        viper.GetBool("verbose"),
		Logger:       logger,
		UserAgent:    cliUserAgent,
		Interceptors: chain,
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}

	if len(token) <= constants.TokenPreviewLength {
		return constants.MaskedSecret
	}

	return token[:constants.TokenPreviewLength] + constants.MaskedSecret
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
