package main

import (
	"io"
	"os"
	"strings"

	"ngc-di/packages/compiler/config"
	"ngc-di/packages/compiler/core"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalState holds the process wide dependencies of the commands, so tests
// can swap in an in-memory filesystem and buffers
type globalState struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	logger *logrus.Logger
}

func newGlobalState() *globalState {
	return &globalState{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: &logrus.Logger{
			Out:       os.Stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
}

type rootCommand struct {
	gs         *globalState
	cmd        *cobra.Command
	configPath string
	// flags holds the settings given on the command line
	flags config.Config
	// conf is the consolidated configuration, set before any subcommand runs
	conf config.Config
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{
		gs:         gs,
		configPath: os.Getenv("NGC_CONFIG"),
	}
	c.cmd = &cobra.Command{
		Use:               "ngc-go",
		Short:             "compile templates into proto element injector trees",
		Version:           core.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	c.cmd.AddCommand(
		getCmdCompile(c),
		getCmdDirectives(c),
	)
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&c.configPath, "config", "c", c.configPath, "YAML config file (env NGC_CONFIG)")
	flags.StringVarP(&c.flags.Directives, "directives", "d", "", "YAML directive registry (env NGC_DIRECTIVES)")
	flags.StringVar(&c.flags.ViewRootAttribute, "view-root-attribute", "", "attribute marking embedded view roots (default \"viewroot\")")
	flags.StringVar(&c.flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (default \"info\")")
	flags.StringVar(&c.flags.LogFormat, "log-format", "", "log format: text or json (default \"text\")")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	conf, err := config.GetConsolidatedConfig(c.gs.fs, c.configPath, c.flags)
	if err != nil {
		return err
	}
	c.conf = conf
	if err := configureLogger(c.gs.logger, conf); err != nil {
		return err
	}
	c.gs.logger.Debugf("ngc-go version: v%s", core.Version)
	return nil
}

func configureLogger(logger *logrus.Logger, conf config.Config) error {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	switch strings.ToLower(conf.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return nil
}
