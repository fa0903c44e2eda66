package config

import (
	"fmt"
	"strings"

	"ngc-di/packages/compiler/pipeline"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Output formats of the command line tool
const (
	OutputFormatText = "text"
	OutputFormatYAML = "yaml"
)

// Config is the file and environment configuration of the command line tool
type Config struct {
	Directives        string `yaml:"directives" envconfig:"NGC_DIRECTIVES"`
	ViewRootAttribute string `yaml:"viewRootAttribute" envconfig:"NGC_VIEW_ROOT_ATTRIBUTE"`
	LogLevel          string `yaml:"logLevel" envconfig:"NGC_LOG_LEVEL"`
	LogFormat         string `yaml:"logFormat" envconfig:"NGC_LOG_FORMAT"`
	OutputFormat      string `yaml:"outputFormat" envconfig:"NGC_OUTPUT_FORMAT"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		ViewRootAttribute: pipeline.DefaultViewRootAttribute,
		LogLevel:          "info",
		LogFormat:         "text",
		OutputFormat:      OutputFormatText,
	}
}

// Apply returns c with every non-empty field of other applied on top
func (c Config) Apply(other Config) Config {
	if other.Directives != "" {
		c.Directives = other.Directives
	}
	if other.ViewRootAttribute != "" {
		c.ViewRootAttribute = other.ViewRootAttribute
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
	if other.OutputFormat != "" {
		c.OutputFormat = other.OutputFormat
	}
	return c
}

// Validate checks the enumerated settings
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, expected text or json", c.LogFormat)
	}
	switch c.OutputFormat {
	case OutputFormatText, OutputFormatYAML:
	default:
		return fmt.Errorf("invalid output format %q, expected %s or %s", c.OutputFormat, OutputFormatText, OutputFormatYAML)
	}
	return nil
}

// ReadConfigFile reads a YAML configuration file
func ReadConfigFile(fs afero.Fs, path string) (Config, error) {
	var conf Config
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return conf, nil
}

// ReadEnvConfig reads the configuration set through NGC_* environment variables
func ReadEnvConfig() (Config, error) {
	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return conf, fmt.Errorf("failed to read environment: %w", err)
	}
	return conf, nil
}

// GetConsolidatedConfig merges defaults, the config file (if path is set),
// the environment and the command line flags, in that order of precedence
func GetConsolidatedConfig(fs afero.Fs, path string, cliConf Config) (Config, error) {
	conf := DefaultConfig()
	if path != "" {
		fileConf, err := ReadConfigFile(fs, path)
		if err != nil {
			return conf, err
		}
		conf = conf.Apply(fileConf)
	}
	envConf, err := ReadEnvConfig()
	if err != nil {
		return conf, err
	}
	conf = conf.Apply(envConf).Apply(cliConf)
	if err := conf.Validate(); err != nil {
		return conf, err
	}
	return conf, nil
}
