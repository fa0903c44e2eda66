package main

import (
	"errors"
	"fmt"

	"ngc-di/packages/compiler"
	"ngc-di/packages/compiler/config"
	"ngc-di/packages/compiler/directive"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoRegistry = errors.New("no directive registry given, use --directives or NGC_DIRECTIVES")

func getCmdCompile(c *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [flags] <template.html>...",
		Short: "Print the proto element injectors of templates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(c, args)
		},
	}
	cmd.Flags().StringVarP(&c.flags.OutputFormat, "format", "f", "", "output format: text or yaml (default \"text\")")
	return cmd
}

func loadRegistry(c *rootCommand) (*directive.Registry, error) {
	if c.conf.Directives == "" {
		return nil, errNoRegistry
	}
	return directive.LoadRegistry(c.gs.fs, c.conf.Directives, c.gs.logger)
}

func runCompile(c *rootCommand, templates []string) error {
	registry, err := loadRegistry(c)
	if err != nil {
		return err
	}
	comp, err := compiler.NewCompiler(registry,
		config.WithLogger(c.gs.logger),
		config.WithViewRootAttribute(c.conf.ViewRootAttribute),
	)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range templates {
		logger := c.gs.logger.WithField("template", path)
		result, err := comp.CompileFile(c.gs.fs, path)
		if err != nil {
			logger.WithError(err).Error("Compilation failed")
			failed++
			continue
		}
		logger.WithFields(logrus.Fields{
			"elements":  len(result.Elements),
			"injectors": result.NumInjectors(),
		}).Info("Compiled template")

		if len(templates) > 1 {
			if _, err := fmt.Fprintf(c.gs.stdout, "# %s\n", path); err != nil {
				return err
			}
		}
		if c.conf.OutputFormat == config.OutputFormatYAML {
			err = result.WriteYAML(c.gs.stdout)
		} else {
			err = result.WriteText(c.gs.stdout)
		}
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed to compile", failed, len(templates))
	}
	return nil
}
