package main

import (
	"os"
)

func main() {
	gs := newGlobalState()
	if err := newRootCommand(gs).cmd.Execute(); err != nil {
		gs.logger.Error(err)
		os.Exit(1)
	}
}
