package main

import (
	"strings"

	"ngc-di/packages/compiler/config"
)

func fields(line []byte) []string {
	return strings.Fields(string(line))
}

func configWith(level, format string) config.Config {
	return config.DefaultConfig().Apply(config.Config{LogLevel: level, LogFormat: format})
}
